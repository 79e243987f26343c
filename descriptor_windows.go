package dieseldx

import (
	"syscall"
	"unsafe"
)

func (h *DescriptorHeap) Release()     { release(&h.inner) }
func (h *DescriptorHeap) IsNull() bool { return h.inner == nil }

func (h *DescriptorHeap) Clone() *DescriptorHeap {
	return &DescriptorHeap{inner: addRef(h.inner)}
}

// Struct returns go through a hidden pointer argument after this.

func (h *DescriptorHeap) StartCPU() CPUDescriptor {
	var d CPUDescriptor
	syscall.SyscallN(h.inner.vtbl.GetCPUDescriptorHandleForHeapStart, uintptr(unsafe.Pointer(h.inner)), uintptr(unsafe.Pointer(&d)))
	return d
}

// StartGPU is only meaningful for shader-visible heaps.
func (h *DescriptorHeap) StartGPU() GPUDescriptor {
	var d GPUDescriptor
	syscall.SyscallN(h.inner.vtbl.GetGPUDescriptorHandleForHeapStart, uintptr(unsafe.Pointer(h.inner)), uintptr(unsafe.Pointer(&d)))
	return d
}
