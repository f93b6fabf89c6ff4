package i2cbb

import (
	"testing"

	"tivacode-go/errcode"
	"tivacode-go/gpio"
	"tivacode-go/mmio"
	"tivacode-go/regmap"
	"tivacode-go/sysctl"
)

// SCL on port B pin 0, SDA on port C pin 0: separate ports keep the two
// data registers independent so the wire trace below stays honest.
const (
	sclData = regmap.GPIOPortAHBBase + 1*0x1000 + 0x3FC
	sdaData = regmap.GPIOPortAHBBase + 2*0x1000 + 0x3FC
)

type wire struct {
	scl, sda uint32
	samples  []uint32 // SDA as driven by the master at each SCL rising edge
}

func newBus(t *testing.T, ackLow bool) (*Bus, *mmio.SimMemory, *wire) {
	t.Helper()
	m := mmio.NewSimMemory()
	m.MirrorReady(sysctl.GateAddr(sysctl.DefaultBase, sysctl.GPIO),
		sysctl.ReadyAddr(sysctl.DefaultBase, sysctl.GPIO))

	w := &wire{scl: 1, sda: 1}
	prev := m.OnStore
	m.OnStore = func(sm *mmio.SimMemory, addr, v uint32) {
		if prev != nil {
			prev(sm, addr, v)
		}
		switch addr {
		case sdaData:
			w.sda = v & 1
		case sclData:
			if w.scl == 0 && v&1 == 1 {
				w.samples = append(w.samples, w.sda)
			}
			w.scl = v & 1
		}
	}
	if ackLow {
		// A permanently acknowledging slave holds SDA low whenever the
		// master has released it.
		m.OnLoad = func(sm *mmio.SimMemory, addr, v uint32) uint32 {
			if addr == sdaData {
				return v &^ 1
			}
			return v
		}
	}

	scl, err := gpio.NewPin(m, gpio.PB0, gpio.Output)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(scl.Release)
	sda, err := gpio.NewPin(m, gpio.PC0, gpio.Output)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sda.Release)

	b, err := New(scl, sda)
	if err != nil {
		t.Fatal(err)
	}
	return b, m, w
}

func bitsOf(b uint8) []uint32 {
	out := make([]uint32, 8)
	for i := 0; i < 8; i++ {
		out[i] = uint32(b>>(7-i)) & 1
	}
	return out
}

func TestNewConfiguresOpenDrainPullUp(t *testing.T) {
	_, m, _ := newBus(t, true)
	for _, port := range []uint32{1, 2} {
		base := uint32(regmap.GPIOPortAHBBase) + port*0x1000
		odr := base + regmap.MustRegister(regmap.GPIO, "ODR").Offset
		pur := base + regmap.MustRegister(regmap.GPIO, "PUR").Offset
		if m.Peek(odr)&1 == 0 {
			t.Fatalf("port %d not open-drain", port)
		}
		if m.Peek(pur)&1 == 0 {
			t.Fatalf("port %d pull-up off", port)
		}
	}
}

func TestWriteFrameOnTheWire(t *testing.T) {
	b, _, w := newBus(t, true)
	if err := b.Tx(0x42, []byte{0xA5}, nil); err != nil {
		t.Fatalf("Tx: %v", err)
	}

	// 8 address bits, ack clock, 8 data bits, ack clock, and the SCL
	// rise inside the stop condition.
	if len(w.samples) != 19 {
		t.Fatalf("saw %d clock pulses, want 19", len(w.samples))
	}
	wantAddr := bitsOf(0x42<<1 | 0)
	for i, bit := range wantAddr {
		if w.samples[i] != bit {
			t.Fatalf("address bit %d = %d, want %d (frame %v)", i, w.samples[i], bit, w.samples[:9])
		}
	}
	if w.samples[8] != 1 {
		t.Fatal("master did not release SDA for the address ack")
	}
	wantData := bitsOf(0xA5)
	for i, bit := range wantData {
		if w.samples[9+i] != bit {
			t.Fatalf("data bit %d = %d, want %d", i, w.samples[9+i], bit)
		}
	}
}

func TestReadPhase(t *testing.T) {
	b, _, w := newBus(t, true)
	r := make([]byte, 2)
	if err := b.Tx(0x10, nil, r); err != nil {
		t.Fatalf("Tx: %v", err)
	}
	if r[0] != 0 || r[1] != 0 {
		t.Fatalf("slave drives low, read %#x %#x", r[0], r[1])
	}
	// Address byte carries the read bit.
	wantAddr := bitsOf(0x10<<1 | 1)
	for i, bit := range wantAddr {
		if w.samples[i] != bit {
			t.Fatalf("address bit %d = %d, want %d", i, w.samples[i], bit)
		}
	}
}

func TestNoAck(t *testing.T) {
	b, _, _ := newBus(t, false) // nobody on the bus
	err := b.Tx(0x42, []byte{1}, nil)
	if errcode.Of(err) != errcode.NoAck {
		t.Fatalf("want no_ack, got %v", err)
	}
}

func TestNewValidation(t *testing.T) {
	m := mmio.NewSimMemory()
	m.MirrorReady(sysctl.GateAddr(sysctl.DefaultBase, sysctl.GPIO),
		sysctl.ReadyAddr(sysctl.DefaultBase, sysctl.GPIO))
	in, err := gpio.NewPin(m, gpio.PD0, gpio.Input)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(in.Release)
	out, err := gpio.NewPin(m, gpio.PD1, gpio.Output)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(out.Release)

	if _, err := New(out, out); errcode.Of(err) != errcode.InvalidConfig {
		t.Fatalf("same pin twice: %v", err)
	}
	if _, err := New(out, in); errcode.Of(err) != errcode.InvalidConfig {
		t.Fatalf("input pin: %v", err)
	}
	if _, err := New(nil, out); errcode.Of(err) != errcode.InvalidConfig {
		t.Fatalf("nil pin: %v", err)
	}
}

func TestRejectsTenBitAddress(t *testing.T) {
	b, _, _ := newBus(t, true)
	if err := b.Tx(0x80, nil, nil); errcode.Of(err) != errcode.InvalidConfig {
		t.Fatalf("want invalid_config, got %v", err)
	}
}
