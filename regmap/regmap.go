// Package regmap is the declarative register descriptor table for the
// TM4C123GH6PM. One table, indexed by (peripheral kind, register name),
// replaces the per-driver offset constant blocks; drivers resolve their
// registers here once at construction and cache the absolute addresses.
//
// Offsets and access modes are bit-exact against the vendor datasheet.
// The ADC, QEI and MPU entries are pure data: no driver logic exists for
// them, they exercise the same descriptor/bit-field machinery.
package regmap

import "tivacode-go/mmio"

// Kind selects one peripheral register map. Short and wide general
// purpose timers share a layout and therefore a kind; only their
// system-control gating registers differ.
type Kind uint8

const (
	SysCtl Kind = iota
	GPIO
	Timer
	ADC
	QEI
	MPU
)

func (k Kind) String() string {
	switch k {
	case SysCtl:
		return "sysctl"
	case GPIO:
		return "gpio"
	case Timer:
		return "timer"
	case ADC:
		return "adc"
	case QEI:
		return "qei"
	case MPU:
		return "mpu"
	}
	return "?"
}

// Register describes one register within its peripheral aperture.
type Register struct {
	Offset uint32
	Access mmio.Access
}

// At returns a whole-register field descriptor at the given aperture base.
func (r Register) At(base uint32) mmio.Field {
	return mmio.Field{Addr: base + r.Offset, Start: 0, Width: 32, Access: r.Access}
}

// Bit returns a single-bit field descriptor at the given aperture base.
func (r Register) Bit(base uint32, bit uint8) mmio.Field {
	return mmio.Field{Addr: base + r.Offset, Start: bit, Width: 1, Access: r.Access}
}

// Field returns an arbitrary field descriptor at the given aperture base.
func (r Register) Field(base uint32, start, width uint8) mmio.Field {
	return mmio.Field{Addr: base + r.Offset, Start: start, Width: width, Access: r.Access}
}

// Lookup finds a register descriptor by kind and datasheet name.
func Lookup(kind Kind, name string) (Register, bool) {
	t, ok := tables[kind]
	if !ok {
		return Register{}, false
	}
	r, ok := t[name]
	return r, ok
}

// MustRegister is Lookup for names known at compile time; a miss is a
// programmer error.
func MustRegister(kind Kind, name string) Register {
	r, ok := Lookup(kind, name)
	if !ok {
		panic("regmap: no register " + name + " in " + kind.String())
	}
	return r
}

// Names returns every register name known for a kind (test support).
func Names(kind Kind) []string {
	t := tables[kind]
	out := make([]string, 0, len(t))
	for name := range t {
		out = append(out, name)
	}
	return out
}
