// Command raidcore is a CLI for decoding Pokemon Scarlet/Violet and
// Sword/Shield save containers into raid and den snapshots.
//
// Usage:
//
//	raidcore <command> [options]
//
// Commands:
//
//	blocks     Dump the decoded blocks of a save container
//	roundtrip  Decode and re-encode a save container as a self-check
//	gen9       Resolve every Tera Raid in a Scarlet/Violet save
//	gen8       Resolve every Max Raid Den in a Sword/Shield save
//	map        Render a PNG of raid or den locations colored by star tier
//	report     Render a PDF summary of resolved raids
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/raidkit/raidcore/log"
)

var version = "dev"

type globalOptions struct {
	Version func() `short:"V" long:"version" description:"Print version and exit"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging to stderr"`
}

func main() {
	var globals globalOptions
	globals.Version = func() {
		fmt.Printf("raidcore %s\n", version)
		os.Exit(0)
	}

	parser := flags.NewParser(&globals, flags.Default)
	parser.Name = "raidcore"
	parser.LongDescription = "A toolkit for resolving Pokemon raid save data"

	addBlocksCommand(parser)
	addRoundtripCommand(parser)
	addGen9Command(parser)
	addGen8Command(parser)
	addMapCommand(parser)
	addReportCommand(parser)

	// -v/--verbose has to be known before any command's Execute runs, so it
	// is scanned out of argv directly rather than read off globals after
	// Parse returns.
	for _, a := range os.Args[1:] {
		if a == "-v" || a == "--verbose" {
			zlog := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
			log.SetLogger(log.NewZerologAdapter(zlog))
			break
		}
	}

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			if flagsErr.Type == flags.ErrCommandRequired {
				parser.WriteHelp(os.Stderr)
				os.Exit(1)
			}
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
