// Package intc is the interrupt-controller collaborator consumed by the
// GPIO and timer drivers when a configuration is interrupt-driven.
package intc

import (
	"tivacode-go/errcode"
	"tivacode-go/mmio"
	"tivacode-go/regmap"
)

// Controller activates one interrupt line at a priority. The vector
// dispatch itself lives outside this module; drivers only arm the line.
type Controller interface {
	ActivateInterrupt(irq uint32, priority uint32) error
}

// NVIC programs the Cortex-M4 nested vectored interrupt controller
// through the injected memory backend: one enable-set register per 32
// interrupt lines and one priority byte lane per line, priority held in
// the top three bits of its byte.
type NVIC struct {
	mem  mmio.Memory
	base uint32
}

// Enable-set and priority banks, relative to the core peripheral base.
const (
	enOffset  = 0x100
	priOffset = 0x400

	// TM4C123 exposes interrupt lines 0..138.
	maxIRQ = 138
)

// NewNVIC returns an NVIC at the given core-peripheral aperture base;
// base 0 selects the default.
func NewNVIC(m mmio.Memory, base uint32) *NVIC {
	if base == 0 {
		base = regmap.CorePeriphBase
	}
	return &NVIC{mem: m, base: base}
}

// ActivateInterrupt sets the enable bit for irq and programs its
// priority (0 highest .. 7 lowest).
func (n *NVIC) ActivateInterrupt(irq uint32, priority uint32) error {
	if irq > maxIRQ {
		return &errcode.E{C: errcode.InvalidConfig, Op: "intc.ActivateInterrupt",
			Msg: "interrupt number out of range"}
	}
	if priority > 7 {
		return &errcode.E{C: errcode.InvalidConfig, Op: "intc.ActivateInterrupt",
			Msg: "priority must be 0..7"}
	}

	en := mmio.Bit(n.base+enOffset+4*(irq/32), uint8(irq%32), mmio.RW)
	if err := mmio.Set(n.mem, en, 1); err != nil {
		return err
	}
	pri := mmio.Field{
		Addr:   n.base + priOffset + 4*(irq/4),
		Start:  uint8((irq%4)*8 + 5),
		Width:  3,
		Access: mmio.RW,
	}
	return mmio.Set(n.mem, pri, priority)
}
