package core

import "time"

// maxCatchUp bounds how many steps a single Due call reports after a stall.
const maxCatchUp = 4

// Pacer releases steps at a steady rate, used to reveal one generation per
// tick in the viewer.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer releasing rate steps per second. Non-positive
// rates default to 30.
func NewPacer(rate int) *Pacer {
	p := &Pacer{}
	p.SetRate(rate)
	return p
}

// SetRate changes the step rate without resetting accumulated time.
func (p *Pacer) SetRate(rate int) {
	if rate <= 0 {
		rate = 30
	}
	p.step = time.Second / time.Duration(rate)
}

// Due reports how many steps are owed at now. The first call only starts the
// clock.
func (p *Pacer) Due(now time.Time) int {
	if p.last.IsZero() {
		p.last = now
		return 0
	}
	if now.After(p.last) {
		p.accumulator += now.Sub(p.last)
	}
	p.last = now
	n := int(p.accumulator / p.step)
	p.accumulator -= time.Duration(n) * p.step
	if n > maxCatchUp {
		n = maxCatchUp
		p.accumulator = 0
	}
	return n
}
