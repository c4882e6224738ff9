package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/evmkit/slotstore/backend/ldb"
	"github.com/urfave/cli/v2"
)

var dbDirectoryFlag = cli.StringFlag{
	Name:     "dir",
	Usage:    "the targeted word store directory",
	Required: true,
}

func open(ctx *cli.Context) (*ldb.Store, error) {
	return ldb.OpenStore(ctx.String(dbDirectoryFlag.Name), ldb.WordStoreKey)
}

// parse32 decodes a hex argument of up to 32 bytes into a right-aligned
// 32-byte array, the encoding used for slot keys and numeric words.
func parse32(arg string) ([32]byte, error) {
	var res [32]byte
	arg = strings.TrimPrefix(arg, "0x")
	if len(arg)%2 != 0 {
		arg = "0" + arg
	}
	data, err := hex.DecodeString(arg)
	if err != nil {
		return res, fmt.Errorf("invalid hex argument %q: %w", arg, err)
	}
	if len(data) > len(res) {
		return res, fmt.Errorf("argument %q exceeds 32 bytes", arg)
	}
	copy(res[len(res)-len(data):], data)
	return res, nil
}
