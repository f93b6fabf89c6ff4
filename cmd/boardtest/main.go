// cmd/boardtest/main.go
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"tivacode-go/drivers/i2cbb"
	"tivacode-go/gpio"
	"tivacode-go/intc"
	"tivacode-go/mmio"
	"tivacode-go/regmap"
	"tivacode-go/sysctl"
	"tivacode-go/timer"
	"tivacode-go/x/mathx"
)

// ---------- Configuration ----------

const (
	buttonPin = gpio.PF0
	ledPin    = gpio.PF1

	blinkTimer    = timer.Short0
	blinkInterval = 8_000_000 // 500 ms at 16 MHz

	buttonPriority = 9 // clamped to the NVIC range below
	timerPriority  = 3

	sensorAddr = 0x38
)

// ---------- Simulated board ----------

// newBoard wires a simulated memory so that every peripheral clock gate
// reports ready as soon as it is enabled, the way real silicon does a
// few cycles after RCGC is written.
func newBoard() *mmio.SimMemory {
	m := mmio.NewSimMemory()
	for _, f := range []sysctl.Family{
		sysctl.GPIO, sysctl.Timer, sysctl.WideTimer, sysctl.ADC, sysctl.QEI,
	} {
		m.MirrorReady(sysctl.GateAddr(sysctl.DefaultBase, f), sysctl.ReadyAddr(sysctl.DefaultBase, f))
	}
	return m
}

func dump(o *out, m *mmio.SimMemory) {
	snap := m.Snapshot()
	addrs := make([]uint32, 0, len(snap))
	for a := range snap {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	o.println("register state:")
	for _, a := range addrs {
		o.printf("  %#08x = %#08x\n", a, snap[a])
	}
}

// ---------- Minimal output ----------

type out struct {
	w io.Writer
}

func (o *out) println(a ...any) { fmt.Fprintln(o.w, a...) }

func (o *out) printf(format string, a ...any) { fmt.Fprintf(o.w, format, a...) }

// ---------- Main ----------

func main() {
	o := &out{w: os.Stdout}
	if err := run(o, newBoard()); err != nil {
		o.println("boardtest:", err)
		os.Exit(1)
	}
}

func run(o *out, mem *mmio.SimMemory) error {
	ic := intc.NewNVIC(mem, 0)

	o.println("== button (edge interrupt, commit-protected pin) ==")
	prio := mathx.Clamp(uint32(buttonPriority), 0, 7)
	button, err := gpio.NewInterruptPin(mem, buttonPin, gpio.Input, ic, prio)
	if err != nil {
		return err
	}
	defer button.Release()
	o.printf("button %s armed, irq %d prio %d\n", buttonPin, button.InterruptNumber(), prio)

	o.println("== LED ==")
	led, err := gpio.NewPin(mem, ledPin, gpio.Output)
	if err != nil {
		return err
	}
	defer led.Release()
	led.Write(1)
	o.printf("led %s on, reads back %d\n", ledPin, led.Read())

	o.println("== periodic blink timer (polled) ==")
	toggled := 0
	blink, err := timer.NewForPolling(mem, timer.Config{
		Block:    blinkTimer,
		Use:      timer.Concatenated,
		Mode:     timer.Periodic,
		Dir:      timer.Down,
		Interval: blinkInterval,
	}, func() {
		toggled++
		led.Write(1 - led.Read())
	})
	if err != nil {
		return err
	}
	if err := blink.Enable(); err != nil {
		return err
	}

	// Simulate two expiries by raising the raw status bit, then poll.
	ris := regmap.MustRegister(regmap.Timer, "RIS").At(regmap.TimerBases[blinkTimer])
	for i := 0; i < 2; i++ {
		mem.Poke(ris.Addr, 1)
		blink.PollStatus()
		o.printf("poll %d: led=%d\n", i, led.Read())
	}
	o.printf("timer callback ran %d times\n", toggled)

	o.println("== interrupt-driven one-shot alarm ==")
	alarm, err := timer.NewForInterrupt(mem, timer.Config{
		Block:    timer.Wide0,
		Use:      timer.TimerA,
		Mode:     timer.OneShot,
		Dir:      timer.Down,
		Interval: 0xF000_0000,
	}, ic, timerPriority)
	if err != nil {
		return err
	}
	if err := alarm.Enable(); err != nil {
		return err
	}
	o.printf("alarm armed, irq %d\n", alarm.InterruptNumber())

	o.println("== bit-banged I2C probe ==")
	scl, err := gpio.NewPin(mem, gpio.PB2, gpio.Output)
	if err != nil {
		return err
	}
	defer scl.Release()
	sda, err := gpio.NewPin(mem, gpio.PB3, gpio.Output)
	if err != nil {
		return err
	}
	defer sda.Release()
	i2c, err := i2cbb.New(scl, sda)
	if err != nil {
		return err
	}
	// No device on the simulated wire, so the probe reports no ACK.
	if err := i2c.Tx(sensorAddr, []byte{0x00}, nil); err != nil {
		o.printf("probe %#02x: %v\n", sensorAddr, err)
	} else {
		o.printf("probe %#02x: ack\n", sensorAddr)
	}

	dump(o, mem)
	return nil
}
