package patterns

import (
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"

	"github.com/dshinzaki/Life/model"
)

// Builder places a pattern around offset using only engine mutations.
type Builder func(e model.GridEngine, offset int) error

var builders = map[string]Builder{
	"glider":         Glider,
	"blinker":        Blinker,
	"pentadecathlon": Pentadecathlon,
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName looks up a registered pattern.
func ByName(name string) (Builder, error) {
	b, ok := builders[name]
	if !ok {
		return nil, errors.Wrapf(model.ErrInvalidArgument, "[patterns.ByName] unknown pattern: %+v", name)
	}
	return b, nil
}

func place(e model.GridEngine, cells []model.Point) error {
	for _, p := range cells {
		if err := e.SetLive(p.X, p.Y); err != nil {
			return errors.Wrapf(err, "[patterns.place] failed to set (%d, %d)", p.X, p.Y)
		}
	}
	return nil
}

// Glider adds a glider with its corner at (o, o). It travels one cell
// towards lower rows and higher columns every 4 generations.
func Glider(e model.GridEngine, o int) error {
	return place(e, []model.Point{
		{X: o, Y: o}, {X: o, Y: o + 1}, {X: o, Y: o + 2},
		{X: o + 1, Y: o + 2},
		{X: o + 2, Y: o + 1},
	})
}

// Blinker adds a period 2 oscillator centred on (o, o).
func Blinker(e model.GridEngine, o int) error {
	return place(e, []model.Point{{X: o - 1, Y: o}, {X: o, Y: o}, {X: o + 1, Y: o}})
}

// Pentadecathlon adds the period 15 oscillator centred on (o, o).
func Pentadecathlon(e model.GridEngine, o int) error {
	return place(e, []model.Point{
		{X: o - 5, Y: o}, {X: o - 4, Y: o},
		{X: o - 3, Y: o - 1}, {X: o - 3, Y: o + 1},
		{X: o - 2, Y: o}, {X: o - 1, Y: o}, {X: o, Y: o}, {X: o + 1, Y: o},
		{X: o + 2, Y: o - 1}, {X: o + 2, Y: o + 1},
		{X: o + 3, Y: o}, {X: o + 4, Y: o},
	})
}

// Random fills the size x size square whose corner is origin, setting each
// cell live with probability density.
func Random(e model.GridEngine, origin model.Point, size int, density float64, rng *rand.Rand) error {
	for i := range size {
		for j := range size {
			if rng.Float64() >= density {
				continue
			}
			if err := e.SetLive(origin.X+i, origin.Y+j); err != nil {
				return errors.Wrap(err, "[patterns.Random] failed to seed cell")
			}
		}
	}
	return nil
}
