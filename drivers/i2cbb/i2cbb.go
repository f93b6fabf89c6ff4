// Package i2cbb is a bit-banged I2C master over two GPIO pins. It
// implements the tinygo.org/x/drivers I2C interface so device drivers
// written against that seam run unchanged on pins of this HAL.
//
// Both pins are driven open-drain with the weak pull-up enabled: writing
// 1 releases a line, writing 0 pulls it low, and reading an output pin's
// data bit returns the level actually on the pad.
package i2cbb

import (
	"tinygo.org/x/drivers"

	"tivacode-go/errcode"
	"tivacode-go/gpio"
)

// Bus is one bit-banged I2C master. It is not safe for concurrent use;
// like every peripheral here it has exactly one owning context.
type Bus struct {
	scl *gpio.Pin
	sda *gpio.Pin

	// Delay, when set, runs between line transitions to stretch the
	// clock for slow peripherals. Nil means full speed.
	Delay func()
}

var _ drivers.I2C = (*Bus)(nil)

// New configures two output pins as open-drain with pull-ups and idles
// both lines high.
func New(scl, sda *gpio.Pin) (*Bus, error) {
	if scl == nil || sda == nil || scl == sda {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "i2cbb.New",
			Msg: "need two distinct pins"}
	}
	if scl.Direction() != gpio.Output || sda.Direction() != gpio.Output {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "i2cbb.New",
			Msg: "pins must be outputs"}
	}
	pad := gpio.PadConfig{Drive: gpio.Drive2mA, OpenDrain: true, PullUp: true}
	if err := scl.ConfigurePad(pad); err != nil {
		return nil, err
	}
	if err := sda.ConfigurePad(pad); err != nil {
		return nil, err
	}
	b := &Bus{scl: scl, sda: sda}
	b.release(b.sda)
	b.release(b.scl)
	return b, nil
}

// Tx performs a write followed by a read against a 7-bit address, with a
// repeated start between the phases. Either slice may be empty. A
// missing acknowledge surfaces as no_ack.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if addr > 0x7F {
		return &errcode.E{C: errcode.InvalidConfig, Op: "i2cbb.Tx",
			Msg: "only 7-bit addresses"}
	}
	if len(w) > 0 || len(r) == 0 {
		b.start()
		if err := b.writeByte(uint8(addr)<<1 | 0); err != nil {
			b.stop()
			return err
		}
		for _, c := range w {
			if err := b.writeByte(c); err != nil {
				b.stop()
				return err
			}
		}
	}
	if len(r) > 0 {
		b.start() // repeated start when a write phase ran
		if err := b.writeByte(uint8(addr)<<1 | 1); err != nil {
			b.stop()
			return err
		}
		for i := range r {
			r[i] = b.readByte(i == len(r)-1)
		}
	}
	b.stop()
	return nil
}

// start: SDA falls while SCL is high.
func (b *Bus) start() {
	b.release(b.sda)
	b.release(b.scl)
	b.low(b.sda)
	b.low(b.scl)
}

// stop: SDA rises while SCL is high.
func (b *Bus) stop() {
	b.low(b.sda)
	b.release(b.scl)
	b.release(b.sda)
}

// writeByte shifts out MSB first, then samples the acknowledge bit with
// SDA released.
func (b *Bus) writeByte(c uint8) error {
	for i := 7; i >= 0; i-- {
		b.sda.Write(uint32(c>>i) & 1)
		b.tick()
		b.release(b.scl)
		b.low(b.scl)
	}
	b.release(b.sda)
	b.release(b.scl)
	ack := b.sda.Read()
	b.low(b.scl)
	if ack != 0 {
		return &errcode.E{C: errcode.NoAck, Op: "i2cbb.writeByte"}
	}
	return nil
}

// readByte shifts in MSB first and answers with ACK, or NACK on the
// final byte.
func (b *Bus) readByte(last bool) uint8 {
	b.release(b.sda)
	var c uint8
	for i := 7; i >= 0; i-- {
		b.release(b.scl)
		c |= uint8(b.sda.Read()) << i
		b.low(b.scl)
	}
	if last {
		b.release(b.sda) // NACK
	} else {
		b.low(b.sda) // ACK
	}
	b.release(b.scl)
	b.low(b.scl)
	b.release(b.sda)
	return c
}

func (b *Bus) release(p *gpio.Pin) {
	p.Write(1)
	b.tick()
}

func (b *Bus) low(p *gpio.Pin) {
	p.Write(0)
	b.tick()
}

func (b *Bus) tick() {
	if b.Delay != nil {
		b.Delay()
	}
}
