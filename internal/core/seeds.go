package core

import (
	"sort"

	pcore "eca/pkg/core"
	"eca/pkg/eca"
)

// SeedFunc builds an initial row of width w. seed is only consulted by
// randomized generators.
type SeedFunc func(w int, seed int64) []uint8

var seeds = map[string]SeedFunc{}

// Register adds a seed generator under the provided name.
func Register(name string, f SeedFunc) {
	if name == "" || f == nil {
		return
	}
	seeds[name] = f
}

// Seeds exposes the registry of available seed generators.
func Seeds() map[string]SeedFunc {
	return seeds
}

// SeedNames returns the registered names in sorted order.
func SeedNames() []string {
	names := make([]string, 0, len(seeds))
	for name := range seeds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("center", func(w int, _ int64) []uint8 { return eca.DefaultRow(w) })
	Register("left", func(w int, _ int64) []uint8 {
		row := make([]uint8, max(w, 0))
		if w >= 3 {
			row[1] = 1
		}
		return row
	})
	Register("random", func(w int, seed int64) []uint8 {
		return pcore.RandomRow(pcore.NewRNG(seed), w)
	})
}
