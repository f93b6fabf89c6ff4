package sysctl

import (
	"testing"

	"tivacode-go/errcode"
	"tivacode-go/mmio"
)

const base = DefaultBase

func TestEnableClockSetsGateAndSeesReady(t *testing.T) {
	m := mmio.NewSimMemory()
	m.MirrorReady(GateAddr(base, GPIO), ReadyAddr(base, GPIO))

	if err := EnableClock(m, base, GPIO, 5); err != nil {
		t.Fatalf("EnableClock: %v", err)
	}
	if m.Peek(GateAddr(base, GPIO))&(1<<5) == 0 {
		t.Fatalf("gate bit for port F not set: %#x", m.Peek(GateAddr(base, GPIO)))
	}
	// Other ports' gate bits stay untouched.
	if m.Peek(GateAddr(base, GPIO)) != 1<<5 {
		t.Fatalf("gate register has stray bits: %#x", m.Peek(GateAddr(base, GPIO)))
	}
}

func TestEnableClockBoundedNotReady(t *testing.T) {
	m := mmio.NewSimMemory() // ready bit never comes up
	err := EnableClock(m, base, Timer, 0)
	if errcode.Of(err) != errcode.HardwareNotReady {
		t.Fatalf("want hw_not_ready, got %v", err)
	}
}

func TestEnableClockRejectsBadInstance(t *testing.T) {
	m := mmio.NewSimMemory()
	for _, c := range []struct {
		f Family
		i uint8
	}{
		{GPIO, 6}, {Timer, 6}, {WideTimer, 6}, {ADC, 2}, {QEI, 2},
	} {
		if err := EnableClock(m, base, c.f, c.i); errcode.Of(err) != errcode.InvalidConfig {
			t.Fatalf("%v instance %d: want invalid_config, got %v", c.f, c.i, err)
		}
	}
}

func TestFamilyRegisterAddresses(t *testing.T) {
	cases := []struct {
		f           Family
		gate, ready uint32
	}{
		{GPIO, 0x400FE608, 0x400FEA08},
		{Timer, 0x400FE604, 0x400FEA04},
		{WideTimer, 0x400FE65C, 0x400FEA5C},
		{ADC, 0x400FE638, 0x400FEA38},
		{QEI, 0x400FE644, 0x400FEA44},
	}
	for _, c := range cases {
		if got := GateAddr(base, c.f); got != c.gate {
			t.Fatalf("%v gate = %#x, want %#x", c.f, got, c.gate)
		}
		if got := ReadyAddr(base, c.f); got != c.ready {
			t.Fatalf("%v ready = %#x, want %#x", c.f, got, c.ready)
		}
	}
}

func TestWideTimerUsesOwnGate(t *testing.T) {
	m := mmio.NewSimMemory()
	m.MirrorReady(GateAddr(base, WideTimer), ReadyAddr(base, WideTimer))
	if err := EnableClock(m, base, WideTimer, 2); err != nil {
		t.Fatalf("EnableClock: %v", err)
	}
	if m.Peek(GateAddr(base, Timer)) != 0 {
		t.Fatalf("short-timer gate touched for a wide block")
	}
	if m.Peek(GateAddr(base, WideTimer)) != 1<<2 {
		t.Fatalf("wide gate = %#x", m.Peek(GateAddr(base, WideTimer)))
	}
}
