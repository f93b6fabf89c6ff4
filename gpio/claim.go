package gpio

import (
	"sync"

	"tivacode-go/errcode"
)

// One logical owner per pin: registers are brought up and mutated by a
// single Pin instance, never by aliases. Construction claims the
// identity here and fails with pin_in_use on a second claim.
var (
	mu      sync.Mutex
	claimed = map[PinID]bool{}
)

func claim(id PinID) error {
	mu.Lock()
	defer mu.Unlock()
	if claimed[id] {
		return &errcode.E{C: errcode.PinInUse, Op: "gpio.claim", Msg: id.String()}
	}
	claimed[id] = true
	return nil
}

// Release gives the identity back so the pin can be constructed again.
// It does not reset any hardware state; there is no teardown sequence.
func (p *Pin) Release() {
	mu.Lock()
	defer mu.Unlock()
	delete(claimed, p.id)
}
