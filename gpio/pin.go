// Package gpio owns one pin per driver instance: identity and base
// resolution, the clock/unlock/direction/digital-enable bring-up
// sequence, optional both-edge interrupt arming, and the data-bit
// read/write/interrupt-clear operations.
package gpio

import (
	"tivacode-go/errcode"
	"tivacode-go/intc"
	"tivacode-go/mmio"
	"tivacode-go/regmap"
	"tivacode-go/sysctl"
)

// Direction of a pin.
type Direction uint8

const (
	Input Direction = iota
	Output
)

// PinID identifies one physical pin: port letter times eight plus the
// pin index within the port.
type PinID uint8

const (
	PA0 PinID = iota
	PA1
	PA2
	PA3
	PA4
	PA5
	PA6
	PA7
	PB0
	PB1
	PB2
	PB3
	PB4
	PB5
	PB6
	PB7
	PC0
	PC1
	PC2
	PC3
	PC4
	PC5
	PC6
	PC7
	PD0
	PD1
	PD2
	PD3
	PD4
	PD5
	PD6
	PD7
	PE0
	PE1
	PE2
	PE3
	PE4
	PE5
	PF0 PinID = 40
	PF1 PinID = 41
	PF2 PinID = 42
	PF3 PinID = 43
	PF4 PinID = 44
)

// Port returns the port index, 0 for A through 5 for F.
func (id PinID) Port() uint8 { return uint8(id) / 8 }

// Index returns the pin's bit position within its port.
func (id PinID) Index() uint8 { return uint8(id) % 8 }

func (id PinID) String() string {
	if id.Port() > 5 {
		return "P?"
	}
	return string([]byte{'P', 'A' + id.Port(), '0' + id.Index()})
}

// MakePinID builds a PinID from a port index (0..5 for A..F) and a pin
// index, rejecting coordinates outside the package.
func MakePinID(port, index uint8) (PinID, error) {
	id := PinID(port*8 + index)
	if port > 5 || index > 7 {
		return 0, &errcode.E{C: errcode.UnknownPin, Op: "gpio.MakePinID"}
	}
	if err := id.Check(); err != nil {
		return 0, err
	}
	return id, nil
}

// Check rejects pins that do not exist on the TM4C123GH6PM package:
// PE6, PE7, PF5, PF6 and PF7 are not bonded out.
func (id PinID) Check() error {
	switch {
	case id > PF4:
		return &errcode.E{C: errcode.UnknownPin, Op: "gpio.Check", Msg: id.String()}
	case id == PE0+6 || id == PE0+7:
		return &errcode.E{C: errcode.UnknownPin, Op: "gpio.Check",
			Msg: id.String() + " not present on package"}
	}
	return nil
}

// commitProtected lists the pins whose configuration bits sit behind the
// lock/commit registers and need the unlock ritual before bring-up. Only
// PF0 (the NMI pin) is repurposed by this module.
var commitProtected = map[PinID]bool{
	PF0: true,
}

// unlockKey opens the commit register for write access.
const unlockKey = 0x4C4F434B

// Params carries the injectable aperture bases. Zero values select the
// hardware defaults.
type Params struct {
	SysCtl   uint32 // system-control base
	Aperture uint32 // port A window; port n sits n*0x1000 above it
}

func (p Params) withDefaults() Params {
	if p.SysCtl == 0 {
		p.SysCtl = sysctl.DefaultBase
	}
	if p.Aperture == 0 {
		p.Aperture = regmap.GPIOPortAHBBase
	}
	return p
}

// Pin is one configured GPIO pin. Exactly one live Pin exists per
// identity; construction claims the identity and Release gives it back.
type Pin struct {
	mem  mmio.Memory
	id   PinID
	dir  Direction
	base uint32 // resolved port window
	bit  uint8
}

// NewPin brings a pin up as plain digital GPIO with the hardware default
// aperture bases: clock enable and ready poll, the unlock ritual iff the
// pin is commit-protected, direction (plus pull-up for inputs), then
// alternate-function off, digital on, analog off.
func NewPin(m mmio.Memory, id PinID, dir Direction) (*Pin, error) {
	return NewPinAt(m, id, dir, Params{})
}

// NewPinAt is NewPin with explicit aperture bases.
func NewPinAt(m mmio.Memory, id PinID, dir Direction, params Params) (*Pin, error) {
	if err := id.Check(); err != nil {
		return nil, err
	}
	if dir != Input && dir != Output {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "gpio.NewPin",
			Msg: "bad direction"}
	}
	if err := claim(id); err != nil {
		return nil, err
	}

	params = params.withDefaults()
	p := &Pin{
		mem:  m,
		id:   id,
		dir:  dir,
		base: params.Aperture + uint32(id.Port())*0x1000,
		bit:  id.Index(),
	}
	if err := p.bringUp(params.SysCtl); err != nil {
		p.Release()
		return nil, err
	}
	return p, nil
}

// NewInterruptPin is NewPin plus both-edge interrupt arming at the given
// priority (0 highest .. 7 lowest). Only both-edge sensing is exposed.
func NewInterruptPin(m mmio.Memory, id PinID, dir Direction, ic intc.Controller, priority uint32) (*Pin, error) {
	return NewInterruptPinAt(m, id, dir, ic, priority, Params{})
}

// NewInterruptPinAt is NewInterruptPin with explicit aperture bases.
func NewInterruptPinAt(m mmio.Memory, id PinID, dir Direction, ic intc.Controller, priority uint32, params Params) (*Pin, error) {
	if priority > 7 {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "gpio.NewInterruptPin",
			Msg: "priority must be 0..7"}
	}
	if ic == nil {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "gpio.NewInterruptPin",
			Msg: "nil interrupt controller"}
	}
	p, err := NewPinAt(m, id, dir, params)
	if err != nil {
		return nil, err
	}
	if err := p.armInterrupt(ic, priority); err != nil {
		p.Release()
		return nil, err
	}
	return p, nil
}

func (p *Pin) bringUp(sysctlBase uint32) error {
	if err := sysctl.EnableClock(p.mem, sysctlBase, sysctl.GPIO, p.id.Port()); err != nil {
		return err
	}

	// Commit-protected configuration bits only take writes after the
	// unlock key lands in the lock register and the pin's commit bit is
	// set. All other pins skip this entirely.
	if commitProtected[p.id] {
		if err := mmio.Set(p.mem, p.reg("LOCK"), unlockKey); err != nil {
			return err
		}
		if err := mmio.Set(p.mem, p.regBit("CR"), 1); err != nil {
			return err
		}
	}

	if err := mmio.Set(p.mem, p.regBit("DIR"), dirBit(p.dir)); err != nil {
		return err
	}
	if p.dir == Input {
		if err := mmio.Set(p.mem, p.regBit("PUR"), 1); err != nil {
			return err
		}
	}

	// Plain GPIO, digital pad, analog path off.
	if err := mmio.Set(p.mem, p.regBit("AFSEL"), 0); err != nil {
		return err
	}
	if err := mmio.Set(p.mem, p.regBit("DEN"), 1); err != nil {
		return err
	}
	return mmio.Set(p.mem, p.regBit("AMSEL"), 0)
}

func (p *Pin) armInterrupt(ic intc.Controller, priority uint32) error {
	// Mask while reconfiguring: sense = edge, both edges, drop anything
	// already pending, then unmask.
	steps := []struct {
		reg string
		v   uint32
	}{
		{"IM", 0},
		{"IS", 0},
		{"IBE", 1},
		{"ICR", 1},
		{"IM", 1},
	}
	for _, s := range steps {
		if err := mmio.Set(p.mem, p.regBit(s.reg), s.v); err != nil {
			return err
		}
	}
	return ic.ActivateInterrupt(p.InterruptNumber(), priority)
}

// InterruptNumber maps the pin's port to its vector: ports A..E take
// lines 0..4, port F takes line 30.
func (p *Pin) InterruptNumber() uint32 {
	if p.id.Port() == 5 {
		return 30
	}
	return uint32(p.id.Port())
}

// ID returns the pin's identity.
func (p *Pin) ID() PinID { return p.id }

// Direction returns the direction the pin was configured with.
func (p *Pin) Direction() Direction { return p.dir }

// Write drives the pin's data bit. Accepted values are 0 and 1; anything
// else leaves the data bit untouched, matching the hardware-facing
// contract this driver has always had.
func (p *Pin) Write(value uint32) {
	if value > 1 {
		return
	}
	_ = mmio.Set(p.mem, p.regBit("DATA"), value)
}

// Read returns the pin's data bit, 0 or 1.
func (p *Pin) Read() uint32 {
	return mmio.MustGet(p.mem, p.regBit("DATA"))
}

// ClearInterrupt acknowledges a pending edge event. Call it from the
// interrupt handling context after servicing the edge.
func (p *Pin) ClearInterrupt() {
	_ = mmio.Set(p.mem, p.regBit("ICR"), 1)
}

// reg resolves a whole register in this pin's port window.
func (p *Pin) reg(name string) mmio.Field {
	return regmap.MustRegister(regmap.GPIO, name).At(p.base)
}

// regBit resolves this pin's bit within a port register.
func (p *Pin) regBit(name string) mmio.Field {
	return regmap.MustRegister(regmap.GPIO, name).Bit(p.base, p.bit)
}

func dirBit(d Direction) uint32 {
	if d == Output {
		return 1
	}
	return 0
}
