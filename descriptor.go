package dieseldx

import "unsafe"

type DescriptorHeapType int

const (
	DescriptorHeapCbvSrvUav DescriptorHeapType = iota
	DescriptorHeapSampler
	DescriptorHeapRtv
	DescriptorHeapDsv
)

var descriptorHeapTypeNative = [...]_D3D12_DESCRIPTOR_HEAP_TYPE{
	DescriptorHeapCbvSrvUav: _D3D12_DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV,
	DescriptorHeapSampler:   _D3D12_DESCRIPTOR_HEAP_TYPE_SAMPLER,
	DescriptorHeapRtv:       _D3D12_DESCRIPTOR_HEAP_TYPE_RTV,
	DescriptorHeapDsv:       _D3D12_DESCRIPTOR_HEAP_TYPE_DSV,
}

func (t DescriptorHeapType) native() _D3D12_DESCRIPTOR_HEAP_TYPE {
	return descriptorHeapTypeNative[t]
}

func descriptorHeapTypeFromNative(n _D3D12_DESCRIPTOR_HEAP_TYPE) (DescriptorHeapType, bool) {
	return fromNative[DescriptorHeapType](descriptorHeapTypeNative[:], n)
}

type DescriptorHeapFlags uint32

const (
	DescriptorHeapFlagNone          DescriptorHeapFlags = 0
	DescriptorHeapFlagShaderVisible DescriptorHeapFlags = 0x1
)

// ShaderVisibility restricts a root parameter to one pipeline stage.
type ShaderVisibility int

const (
	ShaderVisibilityAll ShaderVisibility = iota
	ShaderVisibilityVS
	ShaderVisibilityHS
	ShaderVisibilityDS
	ShaderVisibilityGS
	ShaderVisibilityPS
)

var shaderVisibilityNative = [...]_D3D12_SHADER_VISIBILITY{
	ShaderVisibilityAll: _D3D12_SHADER_VISIBILITY_ALL,
	ShaderVisibilityVS:  _D3D12_SHADER_VISIBILITY_VERTEX,
	ShaderVisibilityHS:  _D3D12_SHADER_VISIBILITY_HULL,
	ShaderVisibilityDS:  _D3D12_SHADER_VISIBILITY_DOMAIN,
	ShaderVisibilityGS:  _D3D12_SHADER_VISIBILITY_GEOMETRY,
	ShaderVisibilityPS:  _D3D12_SHADER_VISIBILITY_PIXEL,
}

func (v ShaderVisibility) native() _D3D12_SHADER_VISIBILITY { return shaderVisibilityNative[v] }

func shaderVisibilityFromNative(n _D3D12_SHADER_VISIBILITY) (ShaderVisibility, bool) {
	return fromNative[ShaderVisibility](shaderVisibilityNative[:], n)
}

type DescriptorRangeType int

const (
	DescriptorRangeSRV DescriptorRangeType = iota
	DescriptorRangeUAV
	DescriptorRangeCBV
	DescriptorRangeSampler
)

var descriptorRangeTypeNative = [...]_D3D12_DESCRIPTOR_RANGE_TYPE{
	DescriptorRangeSRV:     _D3D12_DESCRIPTOR_RANGE_TYPE_SRV,
	DescriptorRangeUAV:     _D3D12_DESCRIPTOR_RANGE_TYPE_UAV,
	DescriptorRangeCBV:     _D3D12_DESCRIPTOR_RANGE_TYPE_CBV,
	DescriptorRangeSampler: _D3D12_DESCRIPTOR_RANGE_TYPE_SAMPLER,
}

func (t DescriptorRangeType) native() _D3D12_DESCRIPTOR_RANGE_TYPE {
	return descriptorRangeTypeNative[t]
}

func descriptorRangeTypeFromNative(n _D3D12_DESCRIPTOR_RANGE_TYPE) (DescriptorRangeType, bool) {
	return fromNative[DescriptorRangeType](descriptorRangeTypeNative[:], n)
}

// Binding names a shader register in a register space.
type Binding struct {
	Space    uint32
	Register uint32
}

// DescriptorRangeOffsetAppend places a range directly after the previous
// one in its table.
const DescriptorRangeOffsetAppend = 0xffffffff

// DescriptorRange is a run of descriptors of one type inside a table.
type DescriptorRange struct {
	Type   DescriptorRangeType
	Count  uint32
	Base   Binding
	Offset uint32
}

func NewDescriptorRange(t DescriptorRangeType, count uint32, base Binding, offset uint32) DescriptorRange {
	return DescriptorRange{Type: t, Count: count, Base: base, Offset: offset}
}

func (r DescriptorRange) native() _D3D12_DESCRIPTOR_RANGE {
	return _D3D12_DESCRIPTOR_RANGE{
		RangeType:                         r.Type.native(),
		NumDescriptors:                    r.Count,
		BaseShaderRegister:                r.Base.Register,
		RegisterSpace:                     r.Base.Space,
		OffsetInDescriptorsFromTableStart: r.Offset,
	}
}

// DescriptorHeap is a contiguous table of descriptors. Callers compute
// slots from the start handles with DescriptorIncrementSize.
type DescriptorHeap struct {
	inner *iD3D12DescriptorHeap
}

// RenderTargetViewDesc describes how a resource is viewed as a render
// target. Build one with RenderTargetViewTexture2D or
// RenderTargetViewTexture2DArray.
type RenderTargetViewDesc struct {
	n _D3D12_RENDER_TARGET_VIEW_DESC
}

func RenderTargetViewTexture2D(format Format, mipSlice, planeSlice uint32) *RenderTargetViewDesc {
	d := &RenderTargetViewDesc{n: _D3D12_RENDER_TARGET_VIEW_DESC{
		Format:        format,
		ViewDimension: _D3D12_RTV_DIMENSION_TEXTURE2D,
	}}
	u := (*[4]uint32)(unsafe.Pointer(&d.n.union))
	u[0], u[1] = mipSlice, planeSlice
	return d
}

func RenderTargetViewTexture2DArray(format Format, mipSlice, firstSlice, arraySize, planeSlice uint32) *RenderTargetViewDesc {
	d := &RenderTargetViewDesc{n: _D3D12_RENDER_TARGET_VIEW_DESC{
		Format:        format,
		ViewDimension: _D3D12_RTV_DIMENSION_TEXTURE2DARRAY,
	}}
	u := (*[4]uint32)(unsafe.Pointer(&d.n.union))
	u[0], u[1], u[2], u[3] = mipSlice, firstSlice, arraySize, planeSlice
	return d
}

func RenderTargetViewBuffer(format Format, firstElement uint64, numElements uint32) *RenderTargetViewDesc {
	d := &RenderTargetViewDesc{n: _D3D12_RENDER_TARGET_VIEW_DESC{
		Format:        format,
		ViewDimension: _D3D12_RTV_DIMENSION_BUFFER,
	}}
	d.n.union[0] = firstElement
	d.n.union[1] = uint64(numElements)
	return d
}

type DSVFlags uint32

const (
	DSVFlagNone            DSVFlags = 0
	DSVFlagReadOnlyDepth   DSVFlags = 0x1
	DSVFlagReadOnlyStencil DSVFlags = 0x2
)

type DepthStencilViewDesc struct {
	n _D3D12_DEPTH_STENCIL_VIEW_DESC
}

func DepthStencilViewTexture2D(format Format, flags DSVFlags, mipSlice uint32) *DepthStencilViewDesc {
	d := &DepthStencilViewDesc{n: _D3D12_DEPTH_STENCIL_VIEW_DESC{
		Format:        format,
		ViewDimension: _D3D12_DSV_DIMENSION_TEXTURE2D,
		Flags:         flags,
	}}
	d.n.union[0] = mipSlice
	return d
}

func DepthStencilViewTexture2DArray(format Format, flags DSVFlags, mipSlice, firstSlice, arraySize uint32) *DepthStencilViewDesc {
	d := &DepthStencilViewDesc{n: _D3D12_DEPTH_STENCIL_VIEW_DESC{
		Format:        format,
		ViewDimension: _D3D12_DSV_DIMENSION_TEXTURE2DARRAY,
		Flags:         flags,
	}}
	d.n.union = [3]uint32{mipSlice, firstSlice, arraySize}
	return d
}

// FilterType is the point/linear choice for one sampling axis.
type FilterType uint32

const (
	FilterPoint  FilterType = 0
	FilterLinear FilterType = 1
)

type FilterReduction uint32

const (
	FilterReductionStandard   FilterReduction = 0
	FilterReductionComparison FilterReduction = 1
	FilterReductionMinimum    FilterReduction = 2
	FilterReductionMaximum    FilterReduction = 3
)

// Filter is a native D3D12_FILTER value.
type Filter uint32

const filterAnisotropicBit = 0x40

// NewFilter encodes min/mag/mip filtering the way D3D12_ENCODE_BASIC_FILTER
// does.
func NewFilter(minify, magnify, mip FilterType, reduction FilterReduction) Filter {
	return Filter((uint32(minify)&3)<<4 | (uint32(magnify)&3)<<2 | uint32(mip)&3 | (uint32(reduction)&3)<<7)
}

func NewAnisotropicFilter(reduction FilterReduction) Filter {
	return filterAnisotropicBit | NewFilter(FilterLinear, FilterLinear, FilterLinear, reduction)
}

type TextureAddressMode int32

const (
	AddressWrap       TextureAddressMode = 1
	AddressMirror     TextureAddressMode = 2
	AddressClamp      TextureAddressMode = 3
	AddressBorder     TextureAddressMode = 4
	AddressMirrorOnce TextureAddressMode = 5
)

type ComparisonFunc int32

const (
	ComparisonNever        ComparisonFunc = 1
	ComparisonLess         ComparisonFunc = 2
	ComparisonEqual        ComparisonFunc = 3
	ComparisonLessEqual    ComparisonFunc = 4
	ComparisonGreater      ComparisonFunc = 5
	ComparisonNotEqual     ComparisonFunc = 6
	ComparisonGreaterEqual ComparisonFunc = 7
	ComparisonAlways       ComparisonFunc = 8
)

// SamplerDesc is a sampler written into a sampler descriptor heap.
type SamplerDesc struct {
	Filter        Filter
	AddressMode   [3]TextureAddressMode
	MipLODBias    float32
	MaxAnisotropy uint32
	Comparison    ComparisonFunc
	BorderColor   [4]float32
	MinLOD        float32
	MaxLOD        float32
}

func (s SamplerDesc) native() _D3D12_SAMPLER_DESC {
	return _D3D12_SAMPLER_DESC{
		Filter:         s.Filter,
		AddressU:       s.AddressMode[0],
		AddressV:       s.AddressMode[1],
		AddressW:       s.AddressMode[2],
		MipLODBias:     s.MipLODBias,
		MaxAnisotropy:  s.MaxAnisotropy,
		ComparisonFunc: s.Comparison,
		BorderColor:    s.BorderColor,
		MinLOD:         s.MinLOD,
		MaxLOD:         s.MaxLOD,
	}
}
