package app

import (
	"fmt"

	"eca/pkg/eca"
)

// Playback tracks how many generations of a history the viewer has revealed.
type Playback struct {
	total    int
	revealed int
	paused   bool
	tickOnce bool
}

// NewPlayback starts a playback of total generations with the initial row
// visible.
func NewPlayback(total int) *Playback {
	return &Playback{total: total, revealed: min(1, total)}
}

// Advance reveals up to due more generations. While paused only a pending
// single step is applied.
func (p *Playback) Advance(due int) {
	if p.paused {
		if !p.tickOnce {
			return
		}
		due = 1
	}
	p.tickOnce = false
	p.revealed = min(p.revealed+max(due, 0), p.total)
}

// TogglePause flips the paused state.
func (p *Playback) TogglePause() { p.paused = !p.paused }

// StepOnce requests a single generation on the next Advance.
func (p *Playback) StepOnce() { p.tickOnce = true }

// Restart hides every generation but the first.
func (p *Playback) Restart() {
	p.revealed = min(1, p.total)
	p.tickOnce = false
}

// Revealed returns the number of visible generations.
func (p *Playback) Revealed() int { return p.revealed }

// Paused reports whether playback is paused.
func (p *Playback) Paused() bool { return p.paused }

// Done reports whether every generation is visible.
func (p *Playback) Done() bool { return p.revealed >= p.total }

// Caption summarizes the playback state for the overlay.
func Caption(rule eca.Rule, p *Playback) string {
	s := fmt.Sprintf("%s  generation %d/%d", rule, p.revealed, p.total)
	if p.paused {
		s += "  paused"
	}
	return s
}
