package dieseldx

import (
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

func (r *Resource) Release()     { release(&r.inner) }
func (r *Resource) IsNull() bool { return r.inner == nil }
func (r *Resource) Clone() *Resource {
	return &Resource{inner: addRef(r.inner)}
}

// Map returns a CPU pointer to subresource sub. read is the range the CPU
// will read; nil means all of it, an empty Range means none.
func (r *Resource) Map(sub Subresource, read *Range) (unsafe.Pointer, error) {
	var p unsafe.Pointer
	n := read.native()
	ret, _, _ := syscall.SyscallN(r.inner.vtbl.Map, r.ptr(), uintptr(sub),
		uintptr(unsafe.Pointer(n)), uintptr(unsafe.Pointer(&p)))
	runtime.KeepAlive(n)
	if err := newError(ret); err != nil {
		return nil, err
	}
	return p, nil
}

// Unmap releases a Map. written is the range the CPU modified; nil means
// all of it.
func (r *Resource) Unmap(sub Subresource, written *Range) {
	n := written.native()
	syscall.SyscallN(r.inner.vtbl.Unmap, r.ptr(), uintptr(sub), uintptr(unsafe.Pointer(n)))
	runtime.KeepAlive(n)
}

// GPUVirtualAddress is the buffer's address for root views and vertex or
// index buffer views. Textures return 0.
func (r *Resource) GPUVirtualAddress() GPUAddress {
	ret, _, _ := syscall.SyscallN(r.inner.vtbl.GetGPUVirtualAddress, r.ptr())
	return GPUAddress(ret)
}

// SetName labels the resource for debug layer messages and capture tools.
func (r *Resource) SetName(name string) error {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	ret, _, _ := syscall.SyscallN(r.inner.vtbl.SetName, r.ptr(), uintptr(unsafe.Pointer(p)))
	return newError(ret)
}
