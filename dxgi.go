package dieseldx

type FactoryCreationFlags uint32

const (
	FactoryCreationNone  FactoryCreationFlags = 0
	FactoryCreationDebug FactoryCreationFlags = _DXGI_CREATE_FACTORY_DEBUG
)

// Scaling is how a back buffer is stretched to the output.
type Scaling int

const (
	ScalingStretch Scaling = iota
	ScalingIdentity
	ScalingAspect
)

var scalingNative = [...]_DXGI_SCALING{
	ScalingStretch:  _DXGI_SCALING_STRETCH,
	ScalingIdentity: _DXGI_SCALING_NONE,
	ScalingAspect:   _DXGI_SCALING_ASPECT_RATIO_STRETCH,
}

func (s Scaling) native() _DXGI_SCALING { return scalingNative[s] }

func scalingFromNative(n _DXGI_SCALING) (Scaling, bool) {
	return fromNative[Scaling](scalingNative[:], n)
}

type SwapEffect int

const (
	SwapEffectDiscard SwapEffect = iota
	SwapEffectSequential
	SwapEffectFlipDiscard
	SwapEffectFlipSequential
)

var swapEffectNative = [...]_DXGI_SWAP_EFFECT{
	SwapEffectDiscard:        _DXGI_SWAP_EFFECT_DISCARD,
	SwapEffectSequential:     _DXGI_SWAP_EFFECT_SEQUENTIAL,
	SwapEffectFlipDiscard:    _DXGI_SWAP_EFFECT_FLIP_DISCARD,
	SwapEffectFlipSequential: _DXGI_SWAP_EFFECT_FLIP_SEQUENTIAL,
}

func (e SwapEffect) native() _DXGI_SWAP_EFFECT { return swapEffectNative[e] }

func swapEffectFromNative(n _DXGI_SWAP_EFFECT) (SwapEffect, bool) {
	return fromNative[SwapEffect](swapEffectNative[:], n)
}

type AlphaMode int

const (
	AlphaModeUnspecified AlphaMode = iota
	AlphaModePremultiplied
	AlphaModeStraight
	AlphaModeIgnore
	AlphaModeForceDword
)

var alphaModeNative = [...]_DXGI_ALPHA_MODE{
	AlphaModeUnspecified:   _DXGI_ALPHA_MODE_UNSPECIFIED,
	AlphaModePremultiplied: _DXGI_ALPHA_MODE_PREMULTIPLIED,
	AlphaModeStraight:      _DXGI_ALPHA_MODE_STRAIGHT,
	AlphaModeIgnore:        _DXGI_ALPHA_MODE_IGNORE,
	AlphaModeForceDword:    _DXGI_ALPHA_MODE_FORCE_DWORD,
}

func (a AlphaMode) native() _DXGI_ALPHA_MODE { return alphaModeNative[a] }

func alphaModeFromNative(n _DXGI_ALPHA_MODE) (AlphaMode, bool) {
	return fromNative[AlphaMode](alphaModeNative[:], n)
}

// Usage carries the native DXGI_USAGE bits of swap-chain buffers.
type Usage uint32

const (
	UsageShaderInput        Usage = 0x10
	UsageRenderTargetOutput Usage = 0x20
	UsageBackBuffer         Usage = 0x40
	UsageShared             Usage = 0x80
	UsageReadOnly           Usage = 0x100
	UsageDiscardOnPresent   Usage = 0x200
	UsageUnorderedAccess    Usage = 0x400
)

type PresentFlags uint32

const (
	PresentNone                PresentFlags = 0
	PresentTest                PresentFlags = 0x1
	PresentDoNotSequence       PresentFlags = 0x2
	PresentRestart             PresentFlags = 0x4
	PresentDoNotWait           PresentFlags = 0x8
	PresentStereoPreferRight   PresentFlags = 0x10
	PresentStereoTemporaryMono PresentFlags = 0x20
	PresentRestrictToOutput    PresentFlags = 0x40
	PresentUseDuration         PresentFlags = 0x100
	PresentAllowTearing        PresentFlags = 0x200
)

// AdapterDesc is the decoded DXGI_ADAPTER_DESC1.
type AdapterDesc struct {
	Description           string
	VendorID              uint32
	DeviceID              uint32
	SubSysID              uint32
	Revision              uint32
	DedicatedVideoMemory  uint64
	DedicatedSystemMemory uint64
	SharedSystemMemory    uint64
	LUID                  uint64
	Software              bool
}

// Factory is an IDXGIFactory4. It also answers the Factory1 and Factory2
// swap chain calls.
type Factory struct {
	inner *iDXGIFactory4
}

// Adapter is a display adapter found by a Factory.
type Adapter struct {
	inner *iDXGIAdapter1
}

// FactoryMedia creates swap chains over composition surface handles.
type FactoryMedia struct {
	inner *iDXGIFactoryMedia
}

// DebugProducer selects whose messages an InfoQueue call addresses.
type DebugProducer int

const (
	DebugAll DebugProducer = iota
	DebugDXGI
)

// InfoQueue is the DXGI debug message store.
type InfoQueue struct {
	inner *iDXGIInfoQueue
}
