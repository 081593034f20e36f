package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/raidkit/raidcore/codec"
	"github.com/raidkit/raidcore/platform"
	"github.com/raidkit/raidcore/snapshot"
	"github.com/raidkit/raidcore/tables"
)

type gen9Command struct {
	Resources string `short:"r" long:"resources" description:"Directory of resource sidecar files" required:"true"`
	Version   string `long:"version" description:"Game version: scarlet or violet" default:"scarlet"`
	Coords    string `long:"coords" description:"Optional JSON coordinate sidecar for map positions"`
	Args      struct {
		File string `positional-arg-name:"file" description:"Scarlet/Violet save container" required:"true"`
	} `positional-args:"yes"`
}

func parseGen9Version(s string) (tables.Version, error) {
	switch s {
	case "scarlet":
		return tables.VersionScarlet, nil
	case "violet":
		return tables.VersionViolet, nil
	default:
		return 0, fmt.Errorf("unknown version %q (want scarlet or violet)", s)
	}
}

func loadCoordSidecar(path string) (platform.CoordinateSidecar, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading coordinate sidecar: %w", err)
	}
	return platform.LoadJSONCoordinateSidecar(data)
}

func (c *gen9Command) Execute(args []string) error {
	version, err := parseGen9Version(c.Version)
	if err != nil {
		return err
	}

	res, err := loadResourceDir(c.Resources)
	if err != nil {
		return err
	}

	coords, err := loadCoordSidecar(c.Coords)
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

	snap, err := snapshot.BuildGen9SaveSnapshot(list, version, res, coords)
	if err != nil {
		return fmt.Errorf("failed to build snapshot: %w", err)
	}

	trainer := snap.TrainerID()
	fmt.Fprintf(os.Stderr, "trainer TID %d / SID %d\n", trainer.TID16(), trainer.SID16())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func addGen9Command(parser *flags.Parser) {
	_, err := parser.AddCommand("gen9",
		"Resolve every Tera Raid in a Scarlet/Violet save",
		"Decodes a save container, resolves every relevant raid slot across\n"+
			"Paldea, Kitakami, and Blueberry, and prints the result as JSON.",
		&gen9Command{})
	if err != nil {
		panic(err)
	}
}
