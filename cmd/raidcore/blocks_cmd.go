package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/raidkit/raidcore/blocks"
	"github.com/raidkit/raidcore/codec"
)

type blocksCommand struct {
	Limit int `short:"l" long:"limit" description:"Truncate each block's hex dump to this many bytes (0 = unlimited)" default:"64"`
	Args  struct {
		File string `positional-arg-name:"file" description:"Save container to read" required:"true"`
	} `positional-args:"yes"`
}

func (c *blocksCommand) Execute(args []string) error {
	data, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	list, err := codec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode container: %w", err)
	}

	fmt.Printf("File: %s (%d bytes)\n", c.Args.File, len(data))
	fmt.Printf("Blocks: %d\n\n", len(list))

	for i, b := range list {
		fmt.Printf("Block %d: key=%#08x type=%d", i, b.Key, b.Type)
		if b.Type == blocks.TypeArray {
			fmt.Printf(" subtype=%d len=%d", b.SubType, b.ArrayLen())
		}
		fmt.Println()

		if v, ok := b.Bool(); ok {
			fmt.Printf("  Bool: %v\n", v)
			continue
		}

		dump := b.Data
		truncated := false
		if c.Limit > 0 && len(dump) > c.Limit {
			dump = dump[:c.Limit]
			truncated = true
		}
		if len(dump) > 0 {
			fmt.Printf("  Data: %s", hex.EncodeToString(dump))
			if truncated {
				fmt.Printf(" ... (%d more bytes)", len(b.Data)-len(dump))
			}
			fmt.Println()
		}
	}

	return nil
}

func addBlocksCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("blocks",
		"Dump the decoded blocks of a save container",
		"Decodes a save container and prints each block's key, type, and a hex dump\n"+
			"of its decrypted payload. Useful for locating a new fixed key or verifying\n"+
			"a container decodes at all.",
		&blocksCommand{})
	if err != nil {
		panic(err)
	}
}
