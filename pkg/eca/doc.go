// Package eca simulates elementary cellular automata: the 256 Wolfram-numbered
// rules over a finite row of binary cells with fixed boundaries.
//
// A Rule maps each neighborhood (left, center, right), encoded as the integer
// left*4 + center*2 + right, to the next state of the center cell. An
// Automaton applies a Rule to its initial row and materializes every
// generation into a history grid. SimulateAll runs one Automaton per binary
// row of a given width across a pool of workers.
//
// The first and last cell of a row are never evaluated; they keep the value
// the initial row placed there on every generation.
package eca
