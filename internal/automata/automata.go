// Package automata implements the cell automata that feed the renderer.
package automata

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/avasek/gridterm/internal/grid"
)

// Sim is the contract a cell automaton fulfills to feed the renderer: it
// advances one generation per Step and exposes its state as a frame.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step()
	Frame() grid.Frame
}

// Factory builds a simulation at the given grid size.
type Factory func(w, h int) Sim

var registry = map[string]Factory{}

func register(name string, f Factory) {
	registry[name] = f
}

// New builds a named simulation, or an error listing the known models.
func New(name string, w, h int) (Sim, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("automata: unknown model %q (have %v)", name, Names())
	}
	return f(w, h), nil
}

// Names lists registered models, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fillBinary randomizes a cell buffer to roughly half alive.
func fillBinary(rng *rand.Rand, cells []uint8) {
	for i := range cells {
		cells[i] = uint8(rng.Intn(2))
	}
}
