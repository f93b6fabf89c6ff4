//go:build tinygo

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

// HardwareMemory dereferences physical addresses through runtime/volatile
// so the compiler neither reorders nor caches register traffic.
type HardwareMemory struct{}

func (HardwareMemory) Load(addr uint32) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(uintptr(addr))))
}

func (HardwareMemory) Store(addr uint32, v uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(uintptr(addr))), v)
}
