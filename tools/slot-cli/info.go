package main

import (
	"fmt"
	"log"

	"github.com/evmkit/slotstore/common"
	"github.com/urfave/cli/v2"
)

var infoCommand = cli.Command{
	Action: getInfo,
	Name:   "info",
	Usage:  "prints summary information about a word store directory",
	Flags: []cli.Flag{
		&dbDirectoryFlag,
	},
}

var dumpCommand = cli.Command{
	Action: dump,
	Name:   "dump",
	Usage:  "lists every stored slot and its word",
	Flags: []cli.Flag{
		&dbDirectoryFlag,
	},
}

func getInfo(ctx *cli.Context) error {
	store, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Failure closing the store: %v", err)
		}
	}()

	slots := 0
	zero := 0
	err = store.Visit(func(slot common.Slot, value common.Word) bool {
		slots++
		if value == (common.Word{}) {
			zero++
		}
		return true
	})
	if err != nil {
		return err
	}
	fmt.Printf("Stored slots:  %d\n", slots)
	fmt.Printf("Zero words:    %d\n", zero)
	return nil
}

func dump(ctx *cli.Context) error {
	store, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Failure closing the store: %v", err)
		}
	}()

	return store.Visit(func(slot common.Slot, value common.Word) bool {
		fmt.Printf("%v: 0x%x\n", slot, value[:])
		return true
	})
}
