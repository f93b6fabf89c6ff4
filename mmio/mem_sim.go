package mmio

// SimMemory is a sparse register file for host tests and demos. Registers
// read as zero until written, matching the documented power-on defaults
// for the registers the drivers program.
//
// OnStore, when set, runs after every store and may write further
// addresses through Poke — tests use it to mirror a clock-gate write into
// the matching peripheral-ready register. OnLoad, when set, may override
// the value a load would return (e.g. to drive a data bit low during an
// I2C ACK window).
type SimMemory struct {
	regs map[uint32]uint32

	OnStore func(m *SimMemory, addr, v uint32)
	OnLoad  func(m *SimMemory, addr, v uint32) uint32
}

// NewSimMemory returns an empty simulated register file.
func NewSimMemory() *SimMemory {
	return &SimMemory{regs: make(map[uint32]uint32)}
}

func (m *SimMemory) Load(addr uint32) uint32 {
	v := m.regs[addr]
	if m.OnLoad != nil {
		return m.OnLoad(m, addr, v)
	}
	return v
}

func (m *SimMemory) Store(addr uint32, v uint32) {
	m.regs[addr] = v
	if m.OnStore != nil {
		m.OnStore(m, addr, v)
	}
}

// Poke writes without running OnStore. For use inside hooks.
func (m *SimMemory) Poke(addr uint32, v uint32) { m.regs[addr] = v }

// Peek reads without running OnLoad.
func (m *SimMemory) Peek(addr uint32) uint32 { return m.regs[addr] }

// Snapshot copies the register file (zero-valued registers that were
// never stored are absent).
func (m *SimMemory) Snapshot() map[uint32]uint32 {
	out := make(map[uint32]uint32, len(m.regs))
	for a, v := range m.regs {
		out[a] = v
	}
	return out
}

// MirrorReady wires a clock-gate register to its peripheral-ready
// register: any value stored to gateAddr is reflected at readyAddr, so
// constructors see the clock domain come up immediately.
func (m *SimMemory) MirrorReady(gateAddr, readyAddr uint32) {
	prev := m.OnStore
	m.OnStore = func(sm *SimMemory, addr, v uint32) {
		if prev != nil {
			prev(sm, addr, v)
		}
		if addr == gateAddr {
			sm.Poke(readyAddr, v)
		}
	}
}
