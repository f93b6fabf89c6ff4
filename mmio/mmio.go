// Package mmio is the bit-field read/modify/write primitive over volatile
// 32-bit memory-mapped registers. Every peripheral driver in this module
// goes through it; nothing else touches register memory directly.
//
// The physical backend is injected through the Memory interface so that
// host tests (and the demo binaries) can substitute a simulated register
// file for real silicon.
package mmio

import (
	"tivacode-go/errcode"
)

// Access describes how a bit-field may be touched.
type Access uint8

const (
	// RW fields read back what was written.
	RW Access = iota
	// RO fields reject writes.
	RO
	// WO fields are write-only; reads return whatever the bus gives us.
	WO
	// RW1C status fields: writing 1 clears the bit, writing 0 is a no-op,
	// reads never clear.
	RW1C
)

func (a Access) String() string {
	switch a {
	case RW:
		return "RW"
	case RO:
		return "RO"
	case WO:
		return "WO"
	case RW1C:
		return "RW1C"
	}
	return "?"
}

// Memory is the volatile load/store backend a Field operates on.
// HardwareMemory dereferences physical addresses; SimMemory backs tests.
type Memory interface {
	Load(addr uint32) uint32
	Store(addr uint32, v uint32)
}

// Field locates one bit-field inside a 32-bit register: absolute register
// address, start bit, width in bits and the access mode of the field.
type Field struct {
	Addr   uint32
	Start  uint8
	Width  uint8
	Access Access
}

// Reg is shorthand for a whole-register field.
func Reg(addr uint32, access Access) Field {
	return Field{Addr: addr, Start: 0, Width: 32, Access: access}
}

// Bit is shorthand for a single-bit field.
func Bit(addr uint32, bit uint8, access Access) Field {
	return Field{Addr: addr, Start: bit, Width: 1, Access: access}
}

func (f Field) valid() bool {
	return f.Width >= 1 && f.Width <= 32 && uint16(f.Start)+uint16(f.Width) <= 32
}

// mask returns the field mask in place (already shifted to Start).
func (f Field) mask() uint32 {
	if f.Width == 32 {
		return ^uint32(0)
	}
	return ((uint32(1) << f.Width) - 1) << f.Start
}

// Set writes value into the field, leaving every bit outside
// [Start, Start+Width) untouched.
//
// RW and WO fields are updated with a read-modify-write. RW1C fields are
// written directly — the masked value is the only thing driven onto the
// register, so sibling write-one-to-clear bits see zeros and stay put.
// Values wider than the field are rejected, not truncated.
func Set(m Memory, f Field, value uint32) error {
	if !f.valid() {
		return &errcode.E{C: errcode.InvalidField, Op: "mmio.Set",
			Msg: "start+width exceeds 32"}
	}
	if f.Access == RO {
		return &errcode.E{C: errcode.ReadOnly, Op: "mmio.Set"}
	}
	if f.Width < 32 && value>>f.Width != 0 {
		return &errcode.E{C: errcode.OutOfRange, Op: "mmio.Set",
			Msg: "value wider than field"}
	}
	if f.Access == RW1C {
		m.Store(f.Addr, (value<<f.Start)&f.mask())
		return nil
	}
	old := m.Load(f.Addr)
	m.Store(f.Addr, (old&^f.mask())|(value<<f.Start))
	return nil
}

// Get returns the current field value, right-shifted and masked.
// Reading never clears an RW1C field; only an explicit Set does.
func Get(m Memory, f Field) (uint32, error) {
	if !f.valid() {
		return 0, &errcode.E{C: errcode.InvalidField, Op: "mmio.Get",
			Msg: "start+width exceeds 32"}
	}
	return (m.Load(f.Addr) & f.mask()) >> f.Start, nil
}

// MustGet is Get for descriptors known good at compile time.
func MustGet(m Memory, f Field) uint32 {
	v, err := Get(m, f)
	if err != nil {
		panic(err.Error())
	}
	return v
}
