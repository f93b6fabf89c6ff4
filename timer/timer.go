// Package timer drives the general purpose timer blocks: six 16/32-bit
// short blocks and six 32/64-bit wide blocks, each split into an A and a
// B sub-timer that can also run concatenated as one double-width timer.
package timer

import (
	"tivacode-go/errcode"
	"tivacode-go/intc"
	"tivacode-go/mmio"
	"tivacode-go/regmap"
	"tivacode-go/sysctl"
	"tivacode-go/x/mathx"
)

// Block selects one of the twelve timer blocks: 0..5 short, 6..11 wide.
type Block uint8

const (
	Short0 Block = iota
	Short1
	Short2
	Short3
	Short4
	Short5
	Wide0
	Wide1
	Wide2
	Wide3
	Wide4
	Wide5
)

// Wide reports whether the block is a 32/64-bit wide timer.
func (b Block) Wide() bool { return b >= Wide0 }

// Use selects a sub-timer, or both halves concatenated.
type Use uint8

const (
	TimerA Use = iota
	TimerB
	Concatenated
)

// Mode of the timer.
type Mode uint8

const (
	OneShot Mode = iota
	Periodic
	RealTimeClock
	EdgeCount
	EdgeTime
	PWM
)

// Dir is the count direction.
type Dir uint8

const (
	Up Dir = iota
	Down
)

// GPTMCFG values: one concatenated timer, the RTC variant, or two
// independent halves.
const (
	cfgConcatenated = 0x0
	cfgRTC          = 0x1
	cfgSplit        = 0x4
)

// Per-sub-timer register name tables, indexed 0 for A, 1 for B.
var (
	tnMR  = [2]string{"TAMR", "TBMR"}
	tnILR = [2]string{"TAILR", "TBILR"}
	tnPR  = [2]string{"TAPR", "TBPR"}
)

// Timeout status/enable bits sit at bit 0 for the A half and bit 8 for
// the B half in CTL, IMR, RIS and ICR alike.
func halfBit(half int) uint8 {
	if half == 1 {
		return 8
	}
	return 0
}

// Vector numbers per block for the A and B timeout interrupts.
var vectors = [12][2]uint32{
	{19, 20}, {21, 22}, {23, 24}, {35, 36}, {70, 71}, {92, 93},
	{94, 95}, {96, 97}, {98, 99}, {100, 101}, {102, 103}, {104, 105},
}

// Config describes one timer channel. Interval is the interval-load
// value in clock cycles. SysCtl and Base are injectable aperture bases;
// zero selects the hardware defaults.
type Config struct {
	Block    Block
	Use      Use
	Mode     Mode
	Dir      Dir
	Interval uint32

	SysCtl uint32
	Base   uint32
}

// Channel is one configured block/sub-timer pairing.
type Channel struct {
	mem    mmio.Memory
	cfg    Config
	base   uint32
	action func() // polling mode only
}

// NewForPolling configures the channel and stores action to run from
// PollStatus when the timeout status bit is seen. No interrupt
// controller is involved; the owner must call PollStatus from its own
// loop.
func NewForPolling(m mmio.Memory, cfg Config, action func()) (*Channel, error) {
	if action == nil {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "timer.NewForPolling",
			Msg: "nil action"}
	}
	c, err := initialize(m, cfg)
	if err != nil {
		return nil, err
	}
	c.action = action
	return c, nil
}

// NewForInterrupt configures the channel, unmasks its timeout interrupt
// and registers the block's vector with the interrupt controller at the
// given priority. Notification arrives asynchronously; the owner calls
// ClearInterrupt from that context.
func NewForInterrupt(m mmio.Memory, cfg Config, ic intc.Controller, priority uint32) (*Channel, error) {
	if ic == nil {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "timer.NewForInterrupt",
			Msg: "nil interrupt controller"}
	}
	c, err := initialize(m, cfg)
	if err != nil {
		return nil, err
	}
	for _, half := range c.halves() {
		if err := mmio.Set(m, c.bit("IMR", halfBit(half)), 1); err != nil {
			return nil, err
		}
	}
	if err := ic.ActivateInterrupt(c.InterruptNumber(), priority); err != nil {
		return nil, err
	}
	return c, nil
}

func initialize(m mmio.Memory, cfg Config) (*Channel, error) {
	if cfg.Block > Wide5 {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "timer.initialize",
			Msg: "block id out of range"}
	}
	if cfg.Use > Concatenated || cfg.Mode > PWM || cfg.Dir > Down {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "timer.initialize",
			Msg: "bad use/mode/direction"}
	}
	if err := checkInterval(cfg); err != nil {
		return nil, err
	}

	c := &Channel{mem: m, cfg: cfg, base: cfg.Base}
	if c.base == 0 {
		c.base = regmap.TimerBases[cfg.Block]
	}

	family, instance := sysctl.Timer, uint8(cfg.Block)
	if cfg.Block.Wide() {
		family, instance = sysctl.WideTimer, uint8(cfg.Block-Wide0)
	}
	sysBase := cfg.SysCtl
	if sysBase == 0 {
		sysBase = sysctl.DefaultBase
	}
	if err := sysctl.EnableClock(m, sysBase, family, instance); err != nil {
		return nil, err
	}

	// The halves must be stopped while their mode registers change.
	for _, half := range c.halves() {
		if err := mmio.Set(m, c.bit("CTL", halfBit(half)), 0); err != nil {
			return nil, err
		}
	}

	gcfg := uint32(cfgSplit)
	switch {
	case cfg.Mode == RealTimeClock:
		gcfg = cfgRTC
	case cfg.Use == Concatenated:
		gcfg = cfgConcatenated
	}
	if err := mmio.Set(m, c.field("CFG", 0, 3), gcfg); err != nil {
		return nil, err
	}

	for _, half := range c.halves() {
		if err := c.programHalf(half); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// programHalf writes one sub-timer's mode, direction, prescale spill and
// interval load, picking the A or B register set from the name tables.
func (c *Channel) programHalf(half int) error {
	if err := mmio.Set(c.mem, c.field(tnMR[half], 0, 4), modeBits(c.cfg.Mode)); err != nil {
		return err
	}
	if err := mmio.Set(c.mem, c.bit(tnMR[half], 4), dirBit(c.cfg.Dir)); err != nil {
		return err
	}

	interval, prescale := c.cfg.Interval, uint32(0)
	if c.splitShort() {
		prescale = interval >> 16
		interval &= 0xFFFF
	}
	if prescale != 0 {
		if err := mmio.Set(c.mem, c.field(tnPR[half], 0, 8), prescale); err != nil {
			return err
		}
	}
	return mmio.Set(c.mem, c.reg(tnILR[half]), interval)
}

// Enable sets the enable bit(s) for the configured sub-timer(s),
// starting the count.
func (c *Channel) Enable() error {
	for _, half := range c.halves() {
		if err := mmio.Set(c.mem, c.bit("CTL", halfBit(half)), 1); err != nil {
			return err
		}
	}
	return nil
}

// PollStatus is a single non-blocking check of the raw timeout status
// bit: when set it runs the stored action and clears the status. It
// never waits; the owner drives it from its own loop.
func (c *Channel) PollStatus() {
	if mmio.MustGet(c.mem, c.bit("RIS", c.statusBit())) == 0 {
		return
	}
	if c.action != nil {
		c.action()
	}
	c.ClearInterrupt()
}

// ClearInterrupt acknowledges the timeout event for the configured
// sub-timer(s).
func (c *Channel) ClearInterrupt() {
	for _, half := range c.halves() {
		_ = mmio.Set(c.mem, c.bit("ICR", halfBit(half)), 1)
	}
}

// InterruptNumber returns the vector for this block and sub-timer; a
// concatenated channel signals through the A half.
func (c *Channel) InterruptNumber() uint32 {
	half := 0
	if c.cfg.Use == TimerB {
		half = 1
	}
	return vectors[c.cfg.Block][half]
}

// Base returns the resolved block aperture.
func (c *Channel) Base() uint32 { return c.base }

// halves lists the sub-timer indexes this channel programs: {0} for A,
// {1} for B, both for concatenated.
func (c *Channel) halves() []int {
	switch c.cfg.Use {
	case TimerA:
		return []int{0}
	case TimerB:
		return []int{1}
	default:
		return []int{0, 1}
	}
}

// statusBit is the raw-interrupt-status bit position watched by
// PollStatus; a concatenated channel times out through the A half.
func (c *Channel) statusBit() uint8 {
	if c.cfg.Use == TimerB {
		return 8
	}
	return 0
}

// splitShort reports whether the channel is an individually used half of
// a short block, whose counter is 16 bits wide with an 8-bit prescaler.
func (c *Channel) splitShort() bool {
	return !c.cfg.Block.Wide() && c.cfg.Use != Concatenated
}

func checkInterval(cfg Config) error {
	limit := uint64(0xFFFFFFFF)
	if !cfg.Block.Wide() && cfg.Use != Concatenated {
		limit = 0xFFFFFF // 16-bit counter plus 8-bit prescale spill
	}
	if !mathx.Between(uint64(cfg.Interval), 0, limit) {
		return &errcode.E{C: errcode.OutOfRange, Op: "timer.checkInterval",
			Msg: "interval too large for a split short sub-timer"}
	}
	return nil
}

// modeBits maps a Mode onto the TnMR mode/capture/alternate fields
// (bits 3:0). The RTC variant is selected in GPTMCFG instead and leaves
// the mode field alone.
func modeBits(m Mode) uint32 {
	switch m {
	case OneShot:
		return 0x1
	case Periodic:
		return 0x2
	case EdgeCount:
		return 0x3 // capture, count mode
	case EdgeTime:
		return 0x3 | 0x4 // capture, time mode
	case PWM:
		return 0x2 | 0x8 // periodic with the alternate (PWM) path
	default: // RealTimeClock
		return 0
	}
}

func dirBit(d Dir) uint32 {
	if d == Up {
		return 1
	}
	return 0
}

func (c *Channel) reg(name string) mmio.Field {
	return regmap.MustRegister(regmap.Timer, name).At(c.base)
}

func (c *Channel) bit(name string, bit uint8) mmio.Field {
	return regmap.MustRegister(regmap.Timer, name).Bit(c.base, bit)
}

func (c *Channel) field(name string, start, width uint8) mmio.Field {
	return regmap.MustRegister(regmap.Timer, name).Field(c.base, start, width)
}
