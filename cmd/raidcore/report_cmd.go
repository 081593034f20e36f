package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/raidkit/raidcore/codec"
	"github.com/raidkit/raidcore/gen8"
	"github.com/raidkit/raidcore/gen9"
	"github.com/raidkit/raidcore/platform/report"
	"github.com/raidkit/raidcore/snapshot"
	"github.com/raidkit/raidcore/tables"
)

type reportCommand struct {
	Resources string `short:"r" long:"resources" description:"Directory of resource sidecar files" required:"true"`
	Gen9File  string `long:"gen9" description:"Scarlet/Violet save container"`
	Gen8File  string `long:"gen8" description:"Sword/Shield save container"`
	Version   string `long:"version" description:"Game version for --gen9: scarlet or violet" default:"scarlet"`
	Output    string `short:"o" long:"output" description:"Output PDF path" default:"report.pdf"`
	Title     string `long:"title" description:"Report title" default:"Raid Summary"`
}

func regionName(r tables.Region) string {
	switch r {
	case tables.RegionPaldea:
		return "Paldea"
	case tables.RegionKitakami:
		return "Kitakami"
	case tables.RegionBlueberry:
		return "Blueberry"
	default:
		return "Unknown"
	}
}

func denRegionName(r snapshot.DenRegion) string {
	switch r {
	case snapshot.DenRegionVanilla:
		return "Galar"
	case snapshot.DenRegionIslandOfArmor:
		return "Isle of Armor"
	case snapshot.DenRegionCrownTundra:
		return "Crown Tundra"
	default:
		return "Unknown"
	}
}

func gen9ShinyKind(k gen9.ShinyKind) report.ShinyKind {
	switch k {
	case gen9.ShinyStar:
		return report.ShinyStar
	case gen9.ShinySquare:
		return report.ShinySquare
	default:
		return report.ShinyNone
	}
}

func gen8ShinyKind(k gen8.ShinyKind) report.ShinyKind {
	switch k {
	case gen8.ShinyStar:
		return report.ShinyStar
	case gen8.ShinySquare:
		return report.ShinySquare
	default:
		return report.ShinyNone
	}
}

func (c *reportCommand) Execute(args []string) error {
	if c.Gen9File == "" && c.Gen8File == "" {
		return fmt.Errorf("at least one of --gen9 or --gen8 is required")
	}

	res, err := loadResourceDir(c.Resources)
	if err != nil {
		return err
	}

	summary := report.Summary{Title: c.Title}

	if c.Gen9File != "" {
		version, verr := parseGen9Version(c.Version)
		if verr != nil {
			return verr
		}
		data, rerr := os.ReadFile(c.Gen9File)
		if rerr != nil {
			return fmt.Errorf("failed to read %s: %w", c.Gen9File, rerr)
		}
		list, derr := codec.Decode(data)
		if derr != nil {
			return fmt.Errorf("failed to decode %s: %w", c.Gen9File, derr)
		}
		snap, serr := snapshot.BuildGen9SaveSnapshot(list, version, res, nil)
		if serr != nil {
			return fmt.Errorf("failed to build gen9 snapshot: %w", serr)
		}
		for _, raid := range snap.Raids {
			summary.Gen9 = append(summary.Gen9, report.RaidEntry{
				Region:   regionName(raid.Region),
				Stars:    raid.Creature.Stars,
				Species:  raid.Creature.Species,
				Form:     raid.Creature.Form,
				TeraType: raid.Creature.TeraType,
				Shiny:    gen9ShinyKind(raid.Creature.Shiny),
			})
		}
	}

	if c.Gen8File != "" {
		data, rerr := os.ReadFile(c.Gen8File)
		if rerr != nil {
			return fmt.Errorf("failed to read %s: %w", c.Gen8File, rerr)
		}
		list, derr := codec.Decode(data)
		if derr != nil {
			return fmt.Errorf("failed to decode %s: %w", c.Gen8File, derr)
		}
		snap, serr := snapshot.BuildGen8Snapshot(list, res)
		if serr != nil {
			return fmt.Errorf("failed to build gen8 snapshot: %w", serr)
		}
		for _, den := range snap.Dens {
			summary.Gen8 = append(summary.Gen8, report.RaidEntry{
				Region:  denRegionName(den.Region),
				Stars:   den.Stars,
				Species: den.Species,
				Shiny:   gen8ShinyKind(den.Shiny.Kind),
			})
		}
	}

	if err := report.GenerateToFile(c.Output, summary, report.DefaultOptions()); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	fmt.Printf("Created %s\n", c.Output)
	return nil
}

func addReportCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("report",
		"Render a PDF summary of resolved raids",
		"Resolves one or both snapshot kinds and writes a tabular PDF summary,\n"+
			"grouped by generation and sorted by star tier within each.",
		&reportCommand{})
	if err != nil {
		panic(err)
	}
}
