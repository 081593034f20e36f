package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/raidkit/raidcore/snapshot"
)

// loadResourceDir reads the fixed set of sidecar filenames a resources
// directory may hold. A missing file loads as an empty blob rather than
// failing: a caller only resolving Gen8 dens, for instance, need not
// supply the Gen9 encounter pools.
func loadResourceDir(dir string) (*snapshot.Resources, error) {
	var bytes snapshot.ResourceBytes
	targets := map[string]*[]byte{
		"personal.bin":           &bytes.Personal,
		"paldea_standard.bin":    &bytes.PaldeaStandard,
		"paldea_black.bin":       &bytes.PaldeaBlack,
		"kitakami_standard.bin":  &bytes.KitakamiStandard,
		"kitakami_black.bin":     &bytes.KitakamiBlack,
		"blueberry_standard.bin": &bytes.BlueberryStandard,
		"blueberry_black.bin":    &bytes.BlueberryBlack,
		"fixed_rewards.bin":      &bytes.FixedRewards,
		"lottery_rewards.bin":    &bytes.LotteryRewards,
		"gen8_nest_hashes.bin":   &bytes.Gen8NestHashes,
		"gen8_nest_pools.bin":    &bytes.Gen8NestPools,
	}

	for name, dst := range targets {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		*dst = data
	}

	res, err := snapshot.LoadResources(bytes)
	if err != nil {
		return nil, fmt.Errorf("loading resources from %s: %w", dir, err)
	}
	return res, nil
}
