package gpio

import "tivacode-go/mmio"

// Drive selects the output pad drive strength.
type Drive uint8

const (
	Drive2mA Drive = iota
	Drive4mA
	Drive8mA
)

// PadConfig adjusts the electrical behavior of an already configured
// pin. Exactly one drive-strength register bit is set per pin; slew-rate
// limiting only applies to the 8-mA drive.
type PadConfig struct {
	Drive     Drive
	OpenDrain bool
	PullUp    bool
	PullDown  bool
	SlewLimit bool
}

// ConfigurePad programs drive strength, open drain, pulls and slew rate
// for this pin. Safe to call any time after construction.
func (p *Pin) ConfigurePad(pc PadConfig) error {
	drives := map[Drive]string{Drive2mA: "DR2R", Drive4mA: "DR4R", Drive8mA: "DR8R"}
	sel, ok := drives[pc.Drive]
	if !ok {
		sel = "DR2R"
	}
	for _, name := range []string{"DR2R", "DR4R", "DR8R"} {
		v := uint32(0)
		if name == sel {
			v = 1
		}
		if err := mmio.Set(p.mem, p.regBit(name), v); err != nil {
			return err
		}
	}

	flags := []struct {
		reg string
		on  bool
	}{
		{"ODR", pc.OpenDrain},
		{"PUR", pc.PullUp},
		{"PDR", pc.PullDown},
		{"SLR", pc.SlewLimit && pc.Drive == Drive8mA},
	}
	for _, f := range flags {
		v := uint32(0)
		if f.on {
			v = 1
		}
		if err := mmio.Set(p.mem, p.regBit(f.reg), v); err != nil {
			return err
		}
	}
	return nil
}
