// Package gpuinterop maps WebGPU types from gputypes onto DXGI formats and
// D3D12 sampler state.
package gpuinterop

import (
	"github.com/gogpu/gputypes"

	dx "github.com/andewx/dieseldx"
)

var textureFormats = map[gputypes.TextureFormat]dx.Format{
	gputypes.TextureFormatUndefined:            dx.FormatUnknown,
	gputypes.TextureFormatR8Unorm:              dx.FormatR8Unorm,
	gputypes.TextureFormatR8Uint:               dx.FormatR8Uint,
	gputypes.TextureFormatR16Unorm:             dx.FormatR16Unorm,
	gputypes.TextureFormatR16Uint:              dx.FormatR16Uint,
	gputypes.TextureFormatR16Float:             dx.FormatR16Float,
	gputypes.TextureFormatRG8Unorm:             dx.FormatR8G8Unorm,
	gputypes.TextureFormatR32Float:             dx.FormatR32Float,
	gputypes.TextureFormatR32Uint:              dx.FormatR32Uint,
	gputypes.TextureFormatR32Sint:              dx.FormatR32Sint,
	gputypes.TextureFormatRG16Float:            dx.FormatR16G16Float,
	gputypes.TextureFormatRGBA8Unorm:           dx.FormatR8G8B8A8Unorm,
	gputypes.TextureFormatRGBA8UnormSrgb:       dx.FormatR8G8B8A8UnormSRGB,
	gputypes.TextureFormatRGBA8Snorm:           dx.FormatR8G8B8A8Snorm,
	gputypes.TextureFormatRGBA8Uint:            dx.FormatR8G8B8A8Uint,
	gputypes.TextureFormatBGRA8Unorm:           dx.FormatB8G8R8A8Unorm,
	gputypes.TextureFormatBGRA8UnormSrgb:       dx.FormatB8G8R8A8UnormSRGB,
	gputypes.TextureFormatRGB10A2Unorm:         dx.FormatR10G10B10A2Unorm,
	gputypes.TextureFormatRG11B10Ufloat:        dx.FormatR11G11B10Float,
	gputypes.TextureFormatRG32Float:            dx.FormatR32G32Float,
	gputypes.TextureFormatRGBA16Unorm:          dx.FormatR16G16B16A16Unorm,
	gputypes.TextureFormatRGBA16Float:          dx.FormatR16G16B16A16Float,
	gputypes.TextureFormatRGBA32Float:          dx.FormatR32G32B32A32Float,
	gputypes.TextureFormatRGBA32Uint:           dx.FormatR32G32B32A32Uint,
	gputypes.TextureFormatDepth16Unorm:         dx.FormatD16Unorm,
	gputypes.TextureFormatDepth24PlusStencil8:  dx.FormatD24UnormS8Uint,
	gputypes.TextureFormatDepth32Float:         dx.FormatD32Float,
	gputypes.TextureFormatDepth32FloatStencil8: dx.FormatD32FloatS8X24Uint,
}

// TextureFormat returns the DXGI format for f. Depth24Plus has no exact
// DXGI twin and is served by D24_UNORM_S8_UINT.
func TextureFormat(f gputypes.TextureFormat) (dx.Format, bool) {
	if f == gputypes.TextureFormatDepth24Plus {
		return dx.FormatD24UnormS8Uint, true
	}
	d, ok := textureFormats[f]
	return d, ok
}

func FromFormat(f dx.Format) (gputypes.TextureFormat, bool) {
	for g, d := range textureFormats {
		if d == f {
			return g, true
		}
	}
	return gputypes.TextureFormatUndefined, false
}

// CompareFunction shares numbering with D3D12_COMPARISON_FUNC; Undefined
// has no native value.
func CompareFunction(c gputypes.CompareFunction) (dx.ComparisonFunc, bool) {
	if c < gputypes.CompareFunctionNever || c > gputypes.CompareFunctionAlways {
		return 0, false
	}
	return dx.ComparisonFunc(c), true
}

func AddressMode(m gputypes.AddressMode) (dx.TextureAddressMode, bool) {
	switch m {
	case gputypes.AddressModeClampToEdge:
		return dx.AddressClamp, true
	case gputypes.AddressModeRepeat:
		return dx.AddressWrap, true
	case gputypes.AddressModeMirrorRepeat:
		return dx.AddressMirror, true
	}
	return 0, false
}

func FilterMode(m gputypes.FilterMode) dx.FilterType {
	if m == gputypes.FilterModeLinear {
		return dx.FilterLinear
	}
	return dx.FilterPoint
}

// Sampler converts a WebGPU sampler descriptor. Undefined address modes
// clamp; MaxAnisotropy above 1 selects anisotropic filtering.
func Sampler(desc *gputypes.SamplerDescriptor) dx.SamplerDesc {
	reduction := dx.FilterReductionStandard
	cmp, compare := CompareFunction(desc.Compare)
	if compare {
		reduction = dx.FilterReductionComparison
	} else {
		cmp = dx.ComparisonNever
	}

	mip := dx.FilterPoint
	if desc.MipmapFilter == gputypes.MipmapFilterModeLinear {
		mip = dx.FilterLinear
	}

	d := dx.SamplerDesc{
		Filter:     dx.NewFilter(FilterMode(desc.MinFilter), FilterMode(desc.MagFilter), mip, reduction),
		Comparison: cmp,
		MinLOD:     desc.LodMinClamp,
		MaxLOD:     desc.LodMaxClamp,
	}
	if desc.MaxAnisotropy > 1 {
		d.Filter = dx.NewAnisotropicFilter(reduction)
		d.MaxAnisotropy = uint32(desc.MaxAnisotropy)
	}
	for i, m := range [3]gputypes.AddressMode{desc.AddressModeU, desc.AddressModeV, desc.AddressModeW} {
		a, ok := AddressMode(m)
		if !ok {
			a = dx.AddressClamp
		}
		d.AddressMode[i] = a
	}
	return d
}
