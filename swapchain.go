package dieseldx

type SwapChainFlags uint32

const (
	SwapChainFlagNone                       SwapChainFlags = 0
	SwapChainFlagAllowModeSwitch            SwapChainFlags = 0x2
	SwapChainFlagFrameLatencyWaitableObject SwapChainFlags = 0x40
	SwapChainFlagAllowTearing               SwapChainFlags = 0x800
)

// SwapchainDesc describes a swap chain for any of the factory entry
// points.
type SwapchainDesc struct {
	Width       uint32
	Height      uint32
	Format      Format
	Stereo      bool
	Sample      SampleDesc
	BufferUsage Usage
	BufferCount uint32
	Scaling     Scaling
	SwapEffect  SwapEffect
	AlphaMode   AlphaMode
	Flags       SwapChainFlags
}

// DefaultSwapchainDesc is a double-buffered flip-discard chain of RGBA8
// render targets.
func DefaultSwapchainDesc(width, height uint32) SwapchainDesc {
	return SwapchainDesc{
		Width:       width,
		Height:      height,
		Format:      FormatR8G8B8A8Unorm,
		Sample:      SampleDesc{Count: 1},
		BufferUsage: UsageRenderTargetOutput,
		BufferCount: 2,
		Scaling:     ScalingStretch,
		SwapEffect:  SwapEffectFlipDiscard,
		AlphaMode:   AlphaModeUnspecified,
	}
}

func (d *SwapchainDesc) toDesc1() _DXGI_SWAP_CHAIN_DESC1 {
	var stereo int32
	if d.Stereo {
		stereo = 1
	}
	return _DXGI_SWAP_CHAIN_DESC1{
		Width:       d.Width,
		Height:      d.Height,
		Format:      d.Format,
		Stereo:      stereo,
		SampleDesc:  d.Sample.native(),
		BufferUsage: d.BufferUsage,
		BufferCount: d.BufferCount,
		Scaling:     d.Scaling.native(),
		SwapEffect:  d.SwapEffect.native(),
		AlphaMode:   d.AlphaMode.native(),
		Flags:       uint32(d.Flags),
	}
}

// toLegacy fills the IDXGIFactory::CreateSwapChain description for a
// windowed chain. Scaling, stereo and alpha mode have no legacy field.
func (d *SwapchainDesc) toLegacy(hwnd uintptr) _DXGI_SWAP_CHAIN_DESC {
	return _DXGI_SWAP_CHAIN_DESC{
		BufferDesc: _DXGI_MODE_DESC{
			Width:       d.Width,
			Height:      d.Height,
			RefreshRate: _DXGI_RATIONAL{Numerator: 1, Denominator: 60},
			Format:      d.Format,
		},
		SampleDesc:   d.Sample.native(),
		BufferUsage:  d.BufferUsage,
		BufferCount:  d.BufferCount,
		OutputWindow: hwnd,
		Windowed:     1,
		SwapEffect:   d.SwapEffect.native(),
		Flags:        uint32(d.Flags),
	}
}

// SwapChain is an IDXGISwapChain3, whichever factory call produced it.
type SwapChain struct {
	inner *iDXGISwapChain3
}
