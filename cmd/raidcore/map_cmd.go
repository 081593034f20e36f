package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/raidkit/raidcore/codec"
	"github.com/raidkit/raidcore/platform"
	"github.com/raidkit/raidcore/platform/mapimage"
	"github.com/raidkit/raidcore/snapshot"
)

type mapCommand struct {
	Resources string `short:"r" long:"resources" description:"Directory of resource sidecar files" required:"true"`
	Coords    string `long:"coords" description:"JSON coordinate sidecar" required:"true"`
	Mode      string `short:"m" long:"mode" description:"gen9 or gen8" default:"gen9"`
	Version   string `long:"version" description:"Game version for gen9 mode: scarlet or violet" default:"scarlet"`
	Output    string `short:"o" long:"output" description:"Output PNG path" default:"map.png"`
	Width     int    `short:"W" long:"width" description:"Image width in pixels" default:"800"`
	Height    int    `short:"H" long:"height" description:"Image height in pixels" default:"600"`
	Labels    bool   `short:"n" long:"labels" description:"Show star-tier labels next to each marker"`
	Args      struct {
		File string `positional-arg-name:"file" description:"Save container to render" required:"true"`
	} `positional-args:"yes"`
}

func (c *mapCommand) Execute(args []string) error {
	res, err := loadResourceDir(c.Resources)
	if err != nil {
		return err
	}
	coords, err := loadCoordSidecar(c.Coords)
	if err != nil {
		return err
	}
	if coords == nil {
		return fmt.Errorf("map rendering requires a coordinate sidecar")
	}

	data, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	list, err := codec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode container: %w", err)
	}

	var points []mapimage.Point
	switch c.Mode {
	case "gen9":
		version, verr := parseGen9Version(c.Version)
		if verr != nil {
			return verr
		}
		snap, serr := snapshot.BuildGen9SaveSnapshot(list, version, res, coords)
		if serr != nil {
			return fmt.Errorf("failed to build snapshot: %w", serr)
		}
		for _, raid := range snap.Raids {
			if !raid.HasCoord {
				continue
			}
			points = append(points, mapimage.Point{
				X:     raid.Coord.X,
				Y:     raid.Coord.Y,
				Stars: raid.Creature.Stars,
				Label: fmt.Sprintf("#%d", raid.Creature.Species),
			})
		}
	case "gen8":
		snap, serr := snapshot.BuildGen8Snapshot(list, res)
		if serr != nil {
			return fmt.Errorf("failed to build snapshot: %w", serr)
		}
		for _, den := range snap.Dens {
			// Dens have no (area, lottery, spawn) triple; the sidecar is
			// reused keyed by global den index alone.
			key := platform.RegionKey{Area: uint32(den.GlobalIndex)}
			coord, ok := coords.Lookup(key)
			if !ok {
				continue
			}
			points = append(points, mapimage.Point{
				X:     coord.X,
				Y:     coord.Y,
				Stars: den.Stars,
				Label: fmt.Sprintf("#%d", den.Species),
			})
		}
	default:
		return fmt.Errorf("unknown mode %q (want gen9 or gen8)", c.Mode)
	}

	opts := mapimage.DefaultOptions()
	opts.Width = c.Width
	opts.Height = c.Height
	opts.ShowLabels = c.Labels

	out, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()
	if err := mapimage.WritePNG(out, points, opts); err != nil {
		return fmt.Errorf("failed to render map: %w", err)
	}

	fmt.Printf("Created %s (%d markers)\n", c.Output, len(points))
	return nil
}

func addMapCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("map",
		"Render a PNG of raid or den locations colored by star tier",
		"Resolves a snapshot and rasterizes every coordinate-bearing entry as a\n"+
			"colored marker sized by star tier, using a coordinate sidecar to place\n"+
			"each raid or den in 2D space.",
		&mapCommand{})
	if err != nil {
		panic(err)
	}
}
