package dieseldx

import (
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// CreateFactory4 creates the DXGI factory used for adapters and swap
// chains.
func CreateFactory4(flags FactoryCreationFlags) (*Factory, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	var f *iDXGIFactory4
	r, _, _ := procCreateDXGIFactory2.Call(uintptr(flags),
		uintptr(unsafe.Pointer(&_IID_IDXGIFactory4)), uintptr(unsafe.Pointer(&f)))
	if err := newError(r); err != nil {
		return nil, errors.WithMessage(err, "CreateDXGIFactory2")
	}
	return &Factory{inner: f}, nil
}

func (f *Factory) Release()        { release(&f.inner) }
func (f *Factory) IsNull() bool    { return f.inner == nil }
func (f *Factory) Clone() *Factory { return &Factory{inner: addRef(f.inner)} }

func (f *Factory) this() uintptr { return uintptr(unsafe.Pointer(f.inner)) }

// EnumAdapters returns adapter i. Past the last adapter the error wraps
// DXGI_ERROR_NOT_FOUND.
func (f *Factory) EnumAdapters(i uint32) (*Adapter, error) {
	var a *iDXGIAdapter1
	r, _, _ := syscall.SyscallN(f.inner.vtbl.EnumAdapters1, f.this(), uintptr(i), uintptr(unsafe.Pointer(&a)))
	if err := newError(r); err != nil {
		return nil, err
	}
	return &Adapter{inner: a}, nil
}

// Adapters enumerates every adapter in preference order.
func (f *Factory) Adapters() ([]*Adapter, error) {
	var out []*Adapter
	for i := uint32(0); ; i++ {
		a, err := f.EnumAdapters(i)
		if hr, ok := AsHRESULT(err); ok && hr == DXGI_ERROR_NOT_FOUND {
			return out, nil
		}
		if err != nil {
			for _, a := range out {
				a.Release()
			}
			return nil, err
		}
		out = append(out, a)
	}
}

// EnumWarpAdapter returns the software rasterizer.
func (f *Factory) EnumWarpAdapter() (*Adapter, error) {
	var a *iDXGIAdapter1
	r, _, _ := syscall.SyscallN(f.inner.vtbl.EnumWarpAdapter, f.this(),
		uintptr(unsafe.Pointer(&_IID_IDXGIAdapter1)), uintptr(unsafe.Pointer(&a)))
	if err := newError(r); err != nil {
		return nil, err
	}
	return &Adapter{inner: a}, nil
}

// swapChain3 queries a freshly created swap chain up to IDXGISwapChain3
// and drops the creation reference.
func swapChain3(p unsafe.Pointer) (*SwapChain, error) {
	defer comRelease(p)
	var sc *iDXGISwapChain3
	if err := comQueryInterface(p, &_IID_IDXGISwapChain3, unsafe.Pointer(&sc)); err != nil {
		return nil, errors.WithMessage(err, "IDXGISwapChain3")
	}
	return &SwapChain{inner: sc}, nil
}

// CreateSwapChainForHwnd creates a flip-model swap chain presenting to a
// window. For D3D12 the device is the queue that will present.
func (f *Factory) CreateSwapChainForHwnd(queue *CommandQueue, hwnd uintptr, desc *SwapchainDesc) (*SwapChain, error) {
	n := desc.toDesc1()
	var p unsafe.Pointer
	r, _, _ := syscall.SyscallN(f.inner.vtbl.CreateSwapChainForHwnd, f.this(),
		queue.this(), hwnd, uintptr(unsafe.Pointer(&n)), 0, 0, uintptr(unsafe.Pointer(&p)))
	if err := newError(r); err != nil {
		return nil, err
	}
	Logger().Debug("dieseldx: created swap chain", "kind", "hwnd", "width", desc.Width, "height", desc.Height, "buffers", desc.BufferCount)
	return swapChain3(p)
}

func (f *Factory) CreateSwapChainForComposition(queue *CommandQueue, desc *SwapchainDesc) (*SwapChain, error) {
	n := desc.toDesc1()
	var p unsafe.Pointer
	r, _, _ := syscall.SyscallN(f.inner.vtbl.CreateSwapChainForComposition, f.this(),
		queue.this(), uintptr(unsafe.Pointer(&n)), 0, uintptr(unsafe.Pointer(&p)))
	if err := newError(r); err != nil {
		return nil, err
	}
	Logger().Debug("dieseldx: created swap chain", "kind", "composition", "width", desc.Width, "height", desc.Height)
	return swapChain3(p)
}

// CreateSwapChain is the IDXGIFactory entry point. The chain is windowed
// with a 1/60 refresh rate.
func (f *Factory) CreateSwapChain(queue *CommandQueue, hwnd uintptr, desc *SwapchainDesc) (*SwapChain, error) {
	n := desc.toLegacy(hwnd)
	var p unsafe.Pointer
	r, _, _ := syscall.SyscallN(f.inner.vtbl.CreateSwapChain, f.this(),
		queue.this(), uintptr(unsafe.Pointer(&n)), uintptr(unsafe.Pointer(&p)))
	if err := newError(r); err != nil {
		return nil, err
	}
	Logger().Debug("dieseldx: created swap chain", "kind", "legacy", "width", desc.Width, "height", desc.Height)
	return swapChain3(p)
}

// Media queries the factory for IDXGIFactoryMedia.
func (f *Factory) Media() (*FactoryMedia, error) {
	var m *iDXGIFactoryMedia
	if err := comQueryInterface(unsafe.Pointer(f.inner), &_IID_IDXGIFactoryMedia, unsafe.Pointer(&m)); err != nil {
		return nil, err
	}
	return &FactoryMedia{inner: m}, nil
}

func (m *FactoryMedia) Release()     { release(&m.inner) }
func (m *FactoryMedia) IsNull() bool { return m.inner == nil }

func (m *FactoryMedia) Clone() *FactoryMedia {
	return &FactoryMedia{inner: addRef(m.inner)}
}

func (m *FactoryMedia) CreateSwapChainForCompositionSurfaceHandle(queue *CommandQueue, surface uintptr, desc *SwapchainDesc) (*SwapChain, error) {
	n := desc.toDesc1()
	var p unsafe.Pointer
	r, _, _ := syscall.SyscallN(m.inner.vtbl.CreateSwapChainForCompositionSurfaceHandle, uintptr(unsafe.Pointer(m.inner)),
		queue.this(), surface, uintptr(unsafe.Pointer(&n)), 0, uintptr(unsafe.Pointer(&p)))
	if err := newError(r); err != nil {
		return nil, err
	}
	return swapChain3(p)
}

func (a *Adapter) Release()        { release(&a.inner) }
func (a *Adapter) IsNull() bool    { return a.inner == nil }
func (a *Adapter) Clone() *Adapter { return &Adapter{inner: addRef(a.inner)} }

func (a *Adapter) Desc() (AdapterDesc, error) {
	var n _DXGI_ADAPTER_DESC1
	r, _, _ := syscall.SyscallN(a.inner.vtbl.GetDesc1, uintptr(unsafe.Pointer(a.inner)), uintptr(unsafe.Pointer(&n)))
	if err := newError(r); err != nil {
		return AdapterDesc{}, err
	}
	return AdapterDesc{
		Description:           windows.UTF16ToString(n.Description[:]),
		VendorID:              n.VendorId,
		DeviceID:              n.DeviceId,
		SubSysID:              n.SubSysId,
		Revision:              n.Revision,
		DedicatedVideoMemory:  uint64(n.DedicatedVideoMemory),
		DedicatedSystemMemory: uint64(n.DedicatedSystemMemory),
		SharedSystemMemory:    uint64(n.SharedSystemMemory),
		LUID:                  uint64(uint32(n.AdapterLuid.HighPart))<<32 | uint64(n.AdapterLuid.LowPart),
		Software:              n.Flags&_DXGI_ADAPTER_FLAG_SOFTWARE != 0,
	}, nil
}

// GetDebugInfoQueue returns the DXGI debug message queue. It needs the
// graphics tools feature installed.
func GetDebugInfoQueue() (*InfoQueue, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	var q *iDXGIInfoQueue
	r, _, _ := procDXGIGetDebugInterface1.Call(0,
		uintptr(unsafe.Pointer(&_IID_IDXGIInfoQueue)), uintptr(unsafe.Pointer(&q)))
	if err := newError(r); err != nil {
		return nil, errors.WithMessage(err, "DXGIGetDebugInterface1")
	}
	return &InfoQueue{inner: q}, nil
}

func (p DebugProducer) guid() *windows.GUID {
	if p == DebugDXGI {
		return &_DXGI_DEBUG_DXGI
	}
	return &_DXGI_DEBUG_ALL
}

func (q *InfoQueue) Release()     { release(&q.inner) }
func (q *InfoQueue) IsNull() bool { return q.inner == nil }

func (q *InfoQueue) Clone() *InfoQueue {
	return &InfoQueue{inner: addRef(q.inner)}
}

func (q *InfoQueue) this() uintptr { return uintptr(unsafe.Pointer(q.inner)) }

// The producer GUID is passed by value, which the x64 ABI turns into a
// pointer to a copy.

func (q *InfoQueue) MessageCount(p DebugProducer) uint64 {
	r, _, _ := syscall.SyscallN(q.inner.vtbl.GetNumStoredMessages, q.this(), uintptr(unsafe.Pointer(p.guid())))
	return uint64(r)
}

func (q *InfoQueue) ClearStoredMessages(p DebugProducer) {
	syscall.SyscallN(q.inner.vtbl.ClearStoredMessages, q.this(), uintptr(unsafe.Pointer(p.guid())))
}

func (q *InfoQueue) SetMessageCountLimit(p DebugProducer, limit uint64) error {
	r, _, _ := syscall.SyscallN(q.inner.vtbl.SetMessageCountLimit, q.this(), uintptr(unsafe.Pointer(p.guid())), uintptr(limit))
	return newError(r)
}

func (q *InfoQueue) MessageCountLimit(p DebugProducer) uint64 {
	r, _, _ := syscall.SyscallN(q.inner.vtbl.GetMessageCountLimit, q.this(), uintptr(unsafe.Pointer(p.guid())))
	return uint64(r)
}
