package dieseldx

import (
	"syscall"
	"unsafe"
)

func (s *SwapChain) Release()          { release(&s.inner) }
func (s *SwapChain) IsNull() bool      { return s.inner == nil }
func (s *SwapChain) Clone() *SwapChain { return &SwapChain{inner: addRef(s.inner)} }

func (s *SwapChain) this() uintptr { return uintptr(unsafe.Pointer(s.inner)) }

// Buffer returns back buffer i. An index past BufferCount fails with the
// native error.
func (s *SwapChain) Buffer(i uint32) (*Resource, error) {
	var r *iD3D12Resource
	ret, _, _ := syscall.SyscallN(s.inner.vtbl.GetBuffer, s.this(), uintptr(i),
		uintptr(unsafe.Pointer(&_IID_ID3D12Resource)), uintptr(unsafe.Pointer(&r)))
	if err := newError(ret); err != nil {
		return nil, err
	}
	return &Resource{inner: r}, nil
}

// Present queues the current back buffer. interval is the number of
// vertical blanks to wait, 0 to present immediately. Use IsDeviceLost on
// the error to decide whether the device must be recreated.
func (s *SwapChain) Present(interval uint32, flags PresentFlags) error {
	r, _, _ := syscall.SyscallN(s.inner.vtbl.Present, s.this(), uintptr(interval), uintptr(flags))
	err := newError(r)
	switch {
	case err == nil:
	case IsDeviceLost(err):
		Logger().Error("dieseldx: present lost the device", "err", err)
	default:
		Logger().Warn("dieseldx: present failed", "err", err)
	}
	return err
}

// CurrentBackBufferIndex is the buffer the next Present shows.
func (s *SwapChain) CurrentBackBufferIndex() uint32 {
	r, _, _ := syscall.SyscallN(s.inner.vtbl.GetCurrentBackBufferIndex, s.this())
	return uint32(r)
}

// ResizeBuffers changes the buffer size after a window resize. Every
// reference to the old buffers must be released first. Zero width,
// height or count keep the current value.
func (s *SwapChain) ResizeBuffers(count, width, height uint32, format Format, flags SwapChainFlags) error {
	r, _, _ := syscall.SyscallN(s.inner.vtbl.ResizeBuffers, s.this(),
		uintptr(count), uintptr(width), uintptr(height), uintptr(format), uintptr(flags))
	return newError(r)
}

// Desc reads the chain's description back. Unknown native values map to
// the zero variant.
func (s *SwapChain) Desc() (SwapchainDesc, error) {
	var n _DXGI_SWAP_CHAIN_DESC1
	r, _, _ := syscall.SyscallN(s.inner.vtbl.GetDesc1, s.this(), uintptr(unsafe.Pointer(&n)))
	if err := newError(r); err != nil {
		return SwapchainDesc{}, err
	}
	scaling, _ := scalingFromNative(n.Scaling)
	effect, _ := swapEffectFromNative(n.SwapEffect)
	alpha, _ := alphaModeFromNative(n.AlphaMode)
	return SwapchainDesc{
		Width:       n.Width,
		Height:      n.Height,
		Format:      n.Format,
		Stereo:      n.Stereo != 0,
		Sample:      SampleDesc{Count: n.SampleDesc.Count, Quality: n.SampleDesc.Quality},
		BufferUsage: n.BufferUsage,
		BufferCount: n.BufferCount,
		Scaling:     scaling,
		SwapEffect:  effect,
		AlphaMode:   alpha,
		Flags:       SwapChainFlags(n.Flags),
	}, nil
}
