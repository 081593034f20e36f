package platform

import "encoding/json"

// JSONCoordinateSidecar is an in-memory CoordinateSidecar backed by a
// JSON object mapping "area-lottery-spawn" strings to [x, y, z] arrays,
// the sidecar format the text-file based coordinate lookup uses on disk.
type JSONCoordinateSidecar struct {
	coords map[RegionKey]Coord
}

// LoadJSONCoordinateSidecar parses a JSON document of the form
// {"12-0-3": [100.5, 0, -42.25], ...}. Malformed keys are skipped rather
// than rejecting the whole file: a sidecar is always optional.
func LoadJSONCoordinateSidecar(data []byte) (*JSONCoordinateSidecar, error) {
	var raw map[string][3]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	coords := make(map[RegionKey]Coord, len(raw))
	for k, v := range raw {
		key, ok := ParseRegionKey(k)
		if !ok {
			continue
		}
		coords[key] = Coord{X: v[0], Y: v[1], Z: v[2]}
	}
	return &JSONCoordinateSidecar{coords: coords}, nil
}

// Lookup implements CoordinateSidecar.
func (s *JSONCoordinateSidecar) Lookup(key RegionKey) (Coord, bool) {
	c, ok := s.coords[key]
	return c, ok
}
