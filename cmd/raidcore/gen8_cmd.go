package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/raidkit/raidcore/codec"
	"github.com/raidkit/raidcore/snapshot"
)

type gen8Command struct {
	Resources string `short:"r" long:"resources" description:"Directory of resource sidecar files" required:"true"`
	Args      struct {
		File string `positional-arg-name:"file" description:"Sword/Shield save container" required:"true"`
	} `positional-args:"yes"`
}

func (c *gen8Command) Execute(args []string) error {
	res, err := loadResourceDir(c.Resources)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	list, err := codec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode container: %w", err)
	}

	snap, err := snapshot.BuildGen8Snapshot(list, res)
	if err != nil {
		return fmt.Errorf("failed to build snapshot: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func addGen8Command(parser *flags.Parser) {
	_, err := parser.AddCommand("gen8",
		"Resolve every Max Raid Den in a Sword/Shield save",
		"Decodes a save container, resolves every den across the base game,\n"+
			"Isle of Armor, and Crown Tundra regions, and prints the result as JSON.",
		&gen8Command{})
	if err != nil {
		panic(err)
	}
}
