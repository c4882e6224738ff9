package main

import (
	"fmt"
	"log"

	"github.com/evmkit/slotstore/common"
	"github.com/urfave/cli/v2"
)

var getCommand = cli.Command{
	Action:    getWord,
	Name:      "get",
	Usage:     "prints the word stored at a slot",
	ArgsUsage: "<slot>",
	Flags: []cli.Flag{
		&dbDirectoryFlag,
	},
}

var setCommand = cli.Command{
	Action:    setWord,
	Name:      "set",
	Usage:     "overwrites the word stored at a slot",
	ArgsUsage: "<slot> <word>",
	Flags: []cli.Flag{
		&dbDirectoryFlag,
	},
}

func getWord(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("expected one slot argument, got %d", ctx.Args().Len())
	}
	slot, err := parse32(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	store, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Failure closing the store: %v", err)
		}
	}()

	value, err := store.Load(common.Slot(slot))
	if err != nil {
		return err
	}
	fmt.Printf("0x%x\n", value[:])
	return nil
}

func setWord(ctx *cli.Context) error {
	if ctx.Args().Len() != 2 {
		return fmt.Errorf("expected slot and word arguments, got %d", ctx.Args().Len())
	}
	slot, err := parse32(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	value, err := parse32(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	store, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Failure closing the store: %v", err)
		}
	}()

	return store.Store(common.Slot(slot), common.Word(value))
}
