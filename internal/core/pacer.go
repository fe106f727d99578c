package core

import "time"

// maxCatchUp bounds how many generations a single frame may run after a stall.
const maxCatchUp = 4

// Pacer spaces generation steps at a target rate, independent of the frame
// rate the front end draws at.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer constructs a Pacer targeting gps generations per second.
func NewPacer(gps int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetRate(gps)
	p.accumulator = p.step
	return p
}

// SetRate changes the generation rate. Non-positive rates fall back to 25.
func (p *Pacer) SetRate(gps int) {
	if gps <= 0 {
		gps = 25
	}
	p.step = time.Second / time.Duration(gps)
}

// Due reports how many generations should run now.
func (p *Pacer) Due() int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	n := 0
	for p.accumulator >= p.step && n < maxCatchUp {
		p.accumulator -= p.step
		n++
	}
	if n == maxCatchUp {
		p.accumulator = 0
	}
	return n
}

// Hold discards elapsed time, so resuming after a pause does not burst.
func (p *Pacer) Hold() {
	p.last = time.Time{}
	p.accumulator = 0
}
