package dieseldx

import (
	"syscall"
	"unsafe"
)

func (h *Heap) Release()     { release(&h.inner) }
func (h *Heap) IsNull() bool { return h.inner == nil }
func (h *Heap) Clone() *Heap { return &Heap{inner: addRef(h.inner)} }

func (h *Heap) Desc() HeapDesc {
	var n _D3D12_HEAP_DESC
	syscall.SyscallN(h.inner.vtbl.GetDesc, uintptr(unsafe.Pointer(h.inner)), uintptr(unsafe.Pointer(&n)))
	t, _ := heapTypeFromNative(n.Properties.Type)
	page, _ := cpuPageFromNative(n.Properties.CPUPageProperty)
	pool, _ := memoryPoolFromNative(n.Properties.MemoryPoolPreference)
	return HeapDesc{
		Size:       n.SizeInBytes,
		Properties: NewHeapProperties(t, page, pool, n.Properties.CreationNodeMask, n.Properties.VisibleNodeMask),
		Alignment:  n.Alignment,
		Flags:      HeapFlags(n.Flags),
	}
}
