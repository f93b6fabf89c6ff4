//go:build !tinygo

package mmio

import "unsafe"

// HardwareMemory dereferences physical addresses directly. On gc builds
// there is no volatile qualifier; bare-metal images must use the tinygo
// build of this type, which goes through runtime/volatile.
type HardwareMemory struct{}

func (HardwareMemory) Load(addr uint32) uint32 {
	return *(*uint32)(unsafe.Pointer(uintptr(addr)))
}

func (HardwareMemory) Store(addr uint32, v uint32) {
	*(*uint32)(unsafe.Pointer(uintptr(addr))) = v
}
