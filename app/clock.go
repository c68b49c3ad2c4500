package app

import (
	"math"

	"glint/hal"
)

// fallbackTickMS is the step assumed when the HAL has no time source.
const fallbackTickMS = 10

// clock turns the HAL millisecond sequence into per-pass deltas.
type clock struct {
	ticks <-chan uint64
	last  uint64
	init  bool
}

func newClock(t hal.Time) clock {
	if t == nil {
		return clock{}
	}
	return clock{ticks: t.Ticks()}
}

func (c *clock) advance(seq uint64) uint32 {
	if !c.init || seq < c.last {
		c.init = true
		c.last = seq
		return 0
	}
	dt := seq - c.last
	c.last = seq
	return uint32(min(dt, math.MaxUint32))
}

// elapsed drains the ticks that are already queued.
func (c *clock) elapsed() uint32 {
	if c.ticks == nil {
		return fallbackTickMS
	}
	var dt uint32
	for {
		select {
		case seq, ok := <-c.ticks:
			if !ok {
				c.ticks = nil
				return dt
			}
			dt += c.advance(seq)
		default:
			return dt
		}
	}
}

// wait blocks for the next tick, then drains the rest.
func (c *clock) wait() uint32 {
	if c.ticks == nil {
		return fallbackTickMS
	}
	seq, ok := <-c.ticks
	if !ok {
		c.ticks = nil
		return fallbackTickMS
	}
	return c.advance(seq) + c.elapsed()
}
