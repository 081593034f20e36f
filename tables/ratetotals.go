package tables

// Rate totals by (region, version, stars 1..6). Index 0 of every row is
// unused; star 6 is identical across each version pair. Paldea's star 4
// total and Kitakami's star 6 total are the only entries that actually
// differ between the Scarlet and Violet columns.
var (
	paldeaScarlet   = [7]int16{0, 5800, 5300, 7400, 8800, 9100, 6500}
	paldeaViolet    = [7]int16{0, 5800, 5300, 7400, 8700, 9100, 6500}
	kitakamiScarlet = [7]int16{0, 1500, 1500, 2500, 2100, 2250, 2475}
	kitakamiViolet  = [7]int16{0, 1500, 1500, 2500, 2100, 2250, 2574}
	blueberryTotals = [7]int16{0, 1100, 1100, 2000, 1900, 2100, 2600}
)

// RateTotal returns the total encounter weight for (stars, region,
// version). Out-of-range stars (not 1..6) yield 0, which the resolver
// treats as a failed resolve.
func RateTotal(stars int, region Region, v Version) int16 {
	if stars < 1 || stars > 6 {
		return 0
	}
	scarlet := v == VersionScarlet
	switch region {
	case RegionPaldea:
		if scarlet {
			return paldeaScarlet[stars]
		}
		return paldeaViolet[stars]
	case RegionKitakami:
		if scarlet {
			return kitakamiScarlet[stars]
		}
		return kitakamiViolet[stars]
	case RegionBlueberry:
		return blueberryTotals[stars]
	default:
		return 0
	}
}
