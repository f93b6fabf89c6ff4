// Package sysctl drives the system-control clock-gating registers: one
// run-mode gate bit and one peripheral-ready bit per physical instance
// of each peripheral family.
package sysctl

import (
	"tivacode-go/errcode"
	"tivacode-go/mmio"
	"tivacode-go/regmap"
)

// Family is a clock-gated peripheral family.
type Family uint8

const (
	GPIO Family = iota
	Timer
	WideTimer
	ADC
	QEI
)

// DefaultBase is the system-control aperture base.
const DefaultBase = regmap.SysCtlBase

// ReadyRetries bounds the peripheral-ready poll. The silicon raises the
// ready bit within a handful of system clocks; if it has not come up
// after this many reads the clock path is mis-configured and we fail
// with hw_not_ready instead of spinning forever.
const ReadyRetries = 10000

type familyRegs struct {
	gate      string
	ready     string
	instances uint8
}

var families = map[Family]familyRegs{
	GPIO:      {"RCGCGPIO", "PRGPIO", 6},
	Timer:     {"RCGCTIMER", "PRTIMER", 6},
	WideTimer: {"RCGCWTIMER", "PRWTIMER", 6},
	ADC:       {"RCGCADC", "PRADC", 2},
	QEI:       {"RCGCQEI", "PRQEI", 2},
}

func (f Family) String() string {
	switch f {
	case GPIO:
		return "gpio"
	case Timer:
		return "timer"
	case WideTimer:
		return "wtimer"
	case ADC:
		return "adc"
	case QEI:
		return "qei"
	}
	return "?"
}

// GateAddr returns the absolute address of the family's run-mode
// clock-gate register at the given system-control base.
func GateAddr(base uint32, f Family) uint32 {
	return base + regmap.MustRegister(regmap.SysCtl, families[f].gate).Offset
}

// ReadyAddr returns the absolute address of the family's
// peripheral-ready register at the given system-control base.
func ReadyAddr(base uint32, f Family) uint32 {
	return base + regmap.MustRegister(regmap.SysCtl, families[f].ready).Offset
}

// EnableClock sets the run-mode clock-gate bit for one instance of a
// family and polls its peripheral-ready bit until it reads 1.
//
// The reference behavior blocks indefinitely on an unready peripheral;
// this implementation bounds the poll at ReadyRetries and reports
// hw_not_ready so the caller can decide between retry and abort.
func EnableClock(m mmio.Memory, base uint32, f Family, instance uint8) error {
	fr, ok := families[f]
	if !ok {
		return &errcode.E{C: errcode.InvalidConfig, Op: "sysctl.EnableClock",
			Msg: "unknown peripheral family"}
	}
	if instance >= fr.instances {
		return &errcode.E{C: errcode.InvalidConfig, Op: "sysctl.EnableClock",
			Msg: "instance out of range for " + f.String()}
	}

	gate := regmap.MustRegister(regmap.SysCtl, fr.gate).Bit(base, instance)
	ready := regmap.MustRegister(regmap.SysCtl, fr.ready).Bit(base, instance)

	if err := mmio.Set(m, gate, 1); err != nil {
		return err
	}
	for i := 0; i < ReadyRetries; i++ {
		if mmio.MustGet(m, ready) == 1 {
			return nil
		}
	}
	return &errcode.E{C: errcode.HardwareNotReady, Op: "sysctl.EnableClock",
		Msg: f.String() + " ready bit stuck low"}
}
