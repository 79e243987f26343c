package dieseldx

import "unsafe"

// RootParameterKind names the variant held by a RootParameter.
type RootParameterKind int

const (
	RootParameterDescriptorTable RootParameterKind = iota
	RootParameterConstants
	RootParameterCBV
	RootParameterSRV
	RootParameterUAV
)

var rootParameterKindNative = [...]_D3D12_ROOT_PARAMETER_TYPE{
	RootParameterDescriptorTable: _D3D12_ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE,
	RootParameterConstants:       _D3D12_ROOT_PARAMETER_TYPE_32BIT_CONSTANTS,
	RootParameterCBV:             _D3D12_ROOT_PARAMETER_TYPE_CBV,
	RootParameterSRV:             _D3D12_ROOT_PARAMETER_TYPE_SRV,
	RootParameterUAV:             _D3D12_ROOT_PARAMETER_TYPE_UAV,
}

// RootParameter is one slot of a root signature: a descriptor table, a
// block of 32-bit constants, or a single root CBV/SRV/UAV. The zero value
// is not usable; build parameters with the constructors below.
type RootParameter struct {
	kind       RootParameterKind
	visibility ShaderVisibility
	binding    Binding
	num32Bit   uint32
	ranges     []DescriptorRange
}

func DescriptorTableParameter(visibility ShaderVisibility, ranges ...DescriptorRange) RootParameter {
	return RootParameter{
		kind:       RootParameterDescriptorTable,
		visibility: visibility,
		ranges:     append([]DescriptorRange(nil), ranges...),
	}
}

func ConstantsParameter(visibility ShaderVisibility, binding Binding, num32Bit uint32) RootParameter {
	return RootParameter{
		kind:       RootParameterConstants,
		visibility: visibility,
		binding:    binding,
		num32Bit:   num32Bit,
	}
}

func CBVParameter(visibility ShaderVisibility, binding Binding) RootParameter {
	return RootParameter{kind: RootParameterCBV, visibility: visibility, binding: binding}
}

func SRVParameter(visibility ShaderVisibility, binding Binding) RootParameter {
	return RootParameter{kind: RootParameterSRV, visibility: visibility, binding: binding}
}

func UAVParameter(visibility ShaderVisibility, binding Binding) RootParameter {
	return RootParameter{kind: RootParameterUAV, visibility: visibility, binding: binding}
}

func (p RootParameter) Kind() RootParameterKind      { return p.kind }
func (p RootParameter) Visibility() ShaderVisibility { return p.visibility }
func (p RootParameter) Binding() Binding             { return p.binding }
func (p RootParameter) Num32BitValues() uint32       { return p.num32Bit }
func (p RootParameter) Ranges() []DescriptorRange    { return p.ranges }

type StaticBorderColor int

const (
	BorderTransparentBlack StaticBorderColor = iota
	BorderOpaqueBlack
	BorderOpaqueWhite
)

var staticBorderColorNative = [...]_D3D12_STATIC_BORDER_COLOR{
	BorderTransparentBlack: _D3D12_STATIC_BORDER_COLOR_TRANSPARENT_BLACK,
	BorderOpaqueBlack:      _D3D12_STATIC_BORDER_COLOR_OPAQUE_BLACK,
	BorderOpaqueWhite:      _D3D12_STATIC_BORDER_COLOR_OPAQUE_WHITE,
}

func (c StaticBorderColor) native() _D3D12_STATIC_BORDER_COLOR { return staticBorderColorNative[c] }

// StaticSampler is a sampler baked into the root signature.
type StaticSampler struct {
	Visibility    ShaderVisibility
	Binding       Binding
	Filter        Filter
	AddressMode   [3]TextureAddressMode
	MipLODBias    float32
	MaxAnisotropy uint32
	Comparison    ComparisonFunc
	BorderColor   StaticBorderColor
	MinLOD        float32
	MaxLOD        float32
}

func NewStaticSampler(visibility ShaderVisibility, binding Binding, filter Filter, addressMode [3]TextureAddressMode,
	mipLODBias float32, maxAnisotropy uint32, comparison ComparisonFunc, border StaticBorderColor, lod [2]float32) StaticSampler {
	return StaticSampler{
		Visibility:    visibility,
		Binding:       binding,
		Filter:        filter,
		AddressMode:   addressMode,
		MipLODBias:    mipLODBias,
		MaxAnisotropy: maxAnisotropy,
		Comparison:    comparison,
		BorderColor:   border,
		MinLOD:        lod[0],
		MaxLOD:        lod[1],
	}
}

func (s StaticSampler) native() _D3D12_STATIC_SAMPLER_DESC {
	return _D3D12_STATIC_SAMPLER_DESC{
		Filter:           s.Filter,
		AddressU:         s.AddressMode[0],
		AddressV:         s.AddressMode[1],
		AddressW:         s.AddressMode[2],
		MipLODBias:       s.MipLODBias,
		MaxAnisotropy:    s.MaxAnisotropy,
		ComparisonFunc:   s.Comparison,
		BorderColor:      s.BorderColor.native(),
		MinLOD:           s.MinLOD,
		MaxLOD:           s.MaxLOD,
		ShaderRegister:   s.Binding.Register,
		RegisterSpace:    s.Binding.Space,
		ShaderVisibility: s.Visibility.native(),
	}
}

type RootSignatureVersion int

const (
	RootSignatureV1_0 RootSignatureVersion = iota
	RootSignatureV1_1
)

var rootSignatureVersionNative = [...]_D3D_ROOT_SIGNATURE_VERSION{
	RootSignatureV1_0: _D3D_ROOT_SIGNATURE_VERSION_1_0,
	RootSignatureV1_1: _D3D_ROOT_SIGNATURE_VERSION_1_1,
}

func (v RootSignatureVersion) native() _D3D_ROOT_SIGNATURE_VERSION {
	return rootSignatureVersionNative[v]
}

type RootSignatureFlags uint32

const (
	RootSignatureFlagNone                           RootSignatureFlags = 0
	RootSignatureFlagAllowInputAssemblerInputLayout RootSignatureFlags = 0x1
	RootSignatureFlagDenyVertexShaderRootAccess     RootSignatureFlags = 0x2
	RootSignatureFlagDenyHullShaderRootAccess       RootSignatureFlags = 0x4
	RootSignatureFlagDenyDomainShaderRootAccess     RootSignatureFlags = 0x8
	RootSignatureFlagDenyGeometryShaderRootAccess   RootSignatureFlags = 0x10
	RootSignatureFlagDenyPixelShaderRootAccess      RootSignatureFlags = 0x20
	RootSignatureFlagAllowStreamOutput              RootSignatureFlags = 0x40
)

// RootSignature is the binding layout a pipeline is created against.
type RootSignature struct {
	inner *iD3D12RootSignature
}

func (r *RootSignature) ptr() uintptr {
	if r == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(r.inner))
}

// rootSignatureLayout owns the native arrays behind a
// _D3D12_ROOT_SIGNATURE_DESC. It must stay reachable until the native
// call that reads desc returns.
type rootSignatureLayout struct {
	desc     _D3D12_ROOT_SIGNATURE_DESC
	params   []_D3D12_ROOT_PARAMETER
	ranges   [][]_D3D12_DESCRIPTOR_RANGE
	samplers []_D3D12_STATIC_SAMPLER_DESC
}

func newRootSignatureLayout(params []RootParameter, samplers []StaticSampler, flags RootSignatureFlags) *rootSignatureLayout {
	l := &rootSignatureLayout{
		params:   make([]_D3D12_ROOT_PARAMETER, len(params)),
		ranges:   make([][]_D3D12_DESCRIPTOR_RANGE, len(params)),
		samplers: make([]_D3D12_STATIC_SAMPLER_DESC, len(samplers)),
	}
	for i, p := range params {
		n := &l.params[i]
		n.ParameterType = rootParameterKindNative[p.kind]
		n.ShaderVisibility = p.visibility.native()
		switch p.kind {
		case RootParameterDescriptorTable:
			rs := make([]_D3D12_DESCRIPTOR_RANGE, len(p.ranges))
			for j, r := range p.ranges {
				rs[j] = r.native()
			}
			l.ranges[i] = rs
			t := n.DescriptorTable()
			t.NumDescriptorRanges = uint32(len(rs))
			t.pDescriptorRanges = sliceAddr(rs)
		case RootParameterConstants:
			c := n.Constants()
			c.ShaderRegister = p.binding.Register
			c.RegisterSpace = p.binding.Space
			c.Num32BitValues = p.num32Bit
		default:
			d := n.Descriptor()
			d.ShaderRegister = p.binding.Register
			d.RegisterSpace = p.binding.Space
		}
	}
	for i, s := range samplers {
		l.samplers[i] = s.native()
	}
	l.desc = _D3D12_ROOT_SIGNATURE_DESC{
		NumParameters:     uint32(len(l.params)),
		pParameters:       sliceAddr(l.params),
		NumStaticSamplers: uint32(len(l.samplers)),
		pStaticSamplers:   sliceAddr(l.samplers),
		Flags:             flags,
	}
	return l
}
