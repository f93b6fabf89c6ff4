package regmap

import (
	"testing"

	"tivacode-go/mmio"
)

func TestVendorOffsets(t *testing.T) {
	cases := []struct {
		kind   Kind
		name   string
		offset uint32
		access mmio.Access
	}{
		{SysCtl, "RCGCGPIO", 0x608, mmio.RW},
		{SysCtl, "PRGPIO", 0xA08, mmio.RO},
		{SysCtl, "RCGCTIMER", 0x604, mmio.RW},
		{SysCtl, "PRTIMER", 0xA04, mmio.RO},
		{SysCtl, "RCGCWTIMER", 0x65C, mmio.RW},
		{SysCtl, "PRWTIMER", 0xA5C, mmio.RO},
		{SysCtl, "RCGCADC", 0x638, mmio.RW},
		{SysCtl, "RCGCQEI", 0x644, mmio.RW},

		{GPIO, "DATA", 0x3FC, mmio.RW},
		{GPIO, "DIR", 0x400, mmio.RW},
		{GPIO, "AFSEL", 0x420, mmio.RW},
		{GPIO, "PUR", 0x510, mmio.RW},
		{GPIO, "DEN", 0x51C, mmio.RW},
		{GPIO, "LOCK", 0x520, mmio.RW},
		{GPIO, "CR", 0x524, mmio.RW},
		{GPIO, "AMSEL", 0x528, mmio.RW},
		{GPIO, "ICR", 0x41C, mmio.RW1C},
		{GPIO, "RIS", 0x414, mmio.RO},
		{GPIO, "PCellID3", 0xFFC, mmio.RO},

		{Timer, "CFG", 0x000, mmio.RW},
		{Timer, "TAMR", 0x004, mmio.RW},
		{Timer, "TBMR", 0x008, mmio.RW},
		{Timer, "CTL", 0x00C, mmio.RW},
		{Timer, "TAILR", 0x028, mmio.RW},
		{Timer, "TBILR", 0x02C, mmio.RW},
		{Timer, "RIS", 0x01C, mmio.RO},
		{Timer, "ICR", 0x024, mmio.RW1C},
		{Timer, "PP", 0xFC0, mmio.RO},

		{ADC, "ISC", 0x00C, mmio.RW1C},
		{ADC, "SSFIFO3", 0x0A8, mmio.RO},
		{ADC, "CC", 0xFC8, mmio.RW},
		{QEI, "POS", 0x008, mmio.RW},
		{MPU, "CTRL", 0xD94, mmio.RW},
	}
	for _, c := range cases {
		r, ok := Lookup(c.kind, c.name)
		if !ok {
			t.Fatalf("%s/%s missing", c.kind, c.name)
		}
		if r.Offset != c.offset || r.Access != c.access {
			t.Fatalf("%s/%s = {%#x %v}, want {%#x %v}",
				c.kind, c.name, r.Offset, r.Access, c.offset, c.access)
		}
	}
}

func TestTimerBases(t *testing.T) {
	want := [12]uint32{
		0x40030000, 0x40031000, 0x40032000, 0x40033000, 0x40034000, 0x40035000,
		0x40036000, 0x40037000, 0x4004C000, 0x4004D000, 0x4004E000, 0x4004F000,
	}
	if TimerBases != want {
		t.Fatalf("timer base table drifted: %#x", TimerBases)
	}
}

func TestDescriptorHelpers(t *testing.T) {
	r := MustRegister(GPIO, "DATA")
	f := r.Bit(GPIOPortAHBBase+0x1000, 3)
	if f.Addr != 0x40059000+0x3FC || f.Start != 3 || f.Width != 1 {
		t.Fatalf("Bit descriptor wrong: %+v", f)
	}
	w := r.At(GPIOPortAHBBase)
	if w.Width != 32 || w.Addr != 0x40058000+0x3FC {
		t.Fatalf("At descriptor wrong: %+v", w)
	}
}

func TestMustRegisterPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("no panic for unknown register")
		}
	}()
	MustRegister(GPIO, "NOPE")
}

// The data-only peripherals are templates for the same field machinery:
// drive an ADC status/clear cycle purely through descriptors.
func TestADCDescriptorDrivesRW1C(t *testing.T) {
	m := mmio.NewSimMemory()
	isc := MustRegister(ADC, "ISC").Bit(ADC0Base, 3)

	m.Store(ADC0Base+0x00C, 1<<3)
	m.OnStore = func(sm *mmio.SimMemory, addr, v uint32) {
		if addr == ADC0Base+0x00C {
			sm.Poke(addr, sm.Peek(addr)&^v)
		}
	}
	if err := mmio.Set(m, isc, 1); err != nil {
		t.Fatal(err)
	}
	if got := mmio.MustGet(m, isc); got != 0 {
		t.Fatalf("ISC bit not cleared, got %d", got)
	}
}
