package dieseldx

import (
	"syscall"
	"unsafe"
)

func (a *CommandAllocator) Release()     { release(&a.inner) }
func (a *CommandAllocator) IsNull() bool { return a.inner == nil }

func (a *CommandAllocator) Clone() *CommandAllocator {
	return &CommandAllocator{inner: addRef(a.inner)}
}

// Reset reclaims the memory of every list recorded from a.
func (a *CommandAllocator) Reset() error {
	r, _, _ := syscall.SyscallN(a.inner.vtbl.Reset, uintptr(unsafe.Pointer(a.inner)))
	return newError(r)
}
