package eca

import "eca/pkg/core"

// Automaton pairs a rule with an initial row. Its history is absent until
// Simulate is called.
type Automaton struct {
	rule    Rule
	input   []uint8
	history *core.ByteGrid
}

// New creates an automaton for rule and a copy of input. Rows narrower than
// three cells have no interior and never change.
func New(rule Rule, input []uint8) *Automaton {
	return &Automaton{rule: rule, input: append([]uint8(nil), input...)}
}

// Rule returns the automaton's rule.
func (a *Automaton) Rule() Rule { return a.rule }

// Input returns the initial row. The slice must not be modified.
func (a *Automaton) Input() []uint8 { return a.input }

// Width returns the number of cells per row.
func (a *Automaton) Width() int { return len(a.input) }

// Generations returns the number of rows in the history, or 0 before Simulate.
func (a *Automaton) Generations() int {
	if a.history == nil {
		return 0
	}
	return a.history.H
}

// Simulate computes a history of the given number of generations, replacing
// any previous one. Row 0 is the initial row; counts below 1 are treated as 1.
func (a *Automaton) Simulate(generations int) {
	if generations < 1 {
		generations = 1
	}
	w := len(a.input)
	grid := core.NewByteGrid(w, generations)
	copy(grid.Row(0), a.input)

	for t := 1; t < generations && w > 0; t++ {
		prev, next := grid.Row(t-1), grid.Row(t)
		// Boundaries are carried forward, never evaluated.
		next[0] = prev[0]
		next[w-1] = prev[w-1]
		for i := 1; i < w-1; i++ {
			next[i] = a.rule.Lookup(Neighborhood(prev[i-1], prev[i], prev[i+1]))
		}
	}
	a.history = grid
}

// History returns the simulated grid with one row per generation.
func (a *Automaton) History() (*core.ByteGrid, error) {
	if a.history == nil {
		return nil, ErrNotSimulated
	}
	return a.history, nil
}

// CountOn returns the number of 1-cells across the whole history.
func (a *Automaton) CountOn() (int, error) {
	if a.history == nil {
		return 0, ErrNotSimulated
	}
	return a.history.Count(1), nil
}

// CountOff returns the number of 0-cells across the whole history.
func (a *Automaton) CountOff() (int, error) {
	if a.history == nil {
		return 0, ErrNotSimulated
	}
	return a.history.Count(0), nil
}

// DefaultRow returns w zero cells with a single 1 at index w/2.
func DefaultRow(w int) []uint8 {
	if w <= 0 {
		return []uint8{}
	}
	row := make([]uint8, w)
	row[w/2] = 1
	return row
}
