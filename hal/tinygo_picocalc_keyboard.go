//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

const (
	picoCalcKbdAddr  uint16 = 0x1F
	picoCalcKbdFIFO  byte   = 0x09
	picoCalcKbdPoll         = 2 * time.Millisecond
	picoCalcKbdQueue        = 64
)

// picoCalcKeyboard polls the keyboard controller FIFO over I2C and queues
// the decoded reports.
type picoCalcKeyboard struct {
	bus *machine.I2C
	cmd [1]byte
	rep [2]byte
	ch  chan KeyEvent
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

// newPicoCalcKeyboard looks for the controller on I2C1 (stock PicoCalc
// wiring) and then I2C0, at 100 and 400 kHz, and starts polling it.
func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	k := &picoCalcKeyboard{
		cmd: [1]byte{picoCalcKbdFIFO},
		ch:  make(chan KeyEvent, picoCalcKbdQueue),
	}
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			cfg := machine.I2CConfig{SCL: machine.GP7, SDA: machine.GP6, Frequency: freq}
			if bus.Configure(cfg) != nil {
				continue
			}
			k.bus = bus
			if k.await(50) {
				go k.poll()
				return k, nil
			}
		}
	}
	return nil, errors.New("keyboard: controller not found on I2C")
}

// await retries the controller while its MCU boots.
func (k *picoCalcKeyboard) await(tries int) bool {
	for range tries {
		if k.read() == nil {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func (k *picoCalcKeyboard) read() error {
	return k.bus.Tx(picoCalcKbdAddr, k.cmd[:], k.rep[:])
}

func (k *picoCalcKeyboard) poll() {
	for {
		if k.read() == nil {
			if ev, ok := decodePicoCalcReport(k.rep[0], k.rep[1]); ok {
				select {
				case k.ch <- ev:
				default:
				}
			}
		}
		time.Sleep(picoCalcKbdPoll)
	}
}
