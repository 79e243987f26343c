// Package vkinterop translates Vulkan enums and sampler state into their
// Direct3D 12 and DXGI equivalents, for renderers that describe resources
// with vulkan-go types and submit through dieseldx.
package vkinterop

import (
	vk "github.com/vulkan-go/vulkan"

	dx "github.com/andewx/dieseldx"
)

type formatPair struct {
	vk vk.Format
	dx dx.Format
}

// Vulkan orders packed formats by bit position and DXGI by component, so
// A2B10G10R10_PACK32 is R10G10B10A2.
var formats = []formatPair{
	{vk.FormatUndefined, dx.FormatUnknown},
	{vk.FormatR32g32b32a32Sfloat, dx.FormatR32G32B32A32Float},
	{vk.FormatR32g32b32a32Uint, dx.FormatR32G32B32A32Uint},
	{vk.FormatR32g32b32Sfloat, dx.FormatR32G32B32Float},
	{vk.FormatR16g16b16a16Sfloat, dx.FormatR16G16B16A16Float},
	{vk.FormatR16g16b16a16Unorm, dx.FormatR16G16B16A16Unorm},
	{vk.FormatR32g32Sfloat, dx.FormatR32G32Float},
	{vk.FormatD32SfloatS8Uint, dx.FormatD32FloatS8X24Uint},
	{vk.FormatA2b10g10r10UnormPack32, dx.FormatR10G10B10A2Unorm},
	{vk.FormatB10g11r11UfloatPack32, dx.FormatR11G11B10Float},
	{vk.FormatR8g8b8a8Unorm, dx.FormatR8G8B8A8Unorm},
	{vk.FormatR8g8b8a8Srgb, dx.FormatR8G8B8A8UnormSRGB},
	{vk.FormatR8g8b8a8Uint, dx.FormatR8G8B8A8Uint},
	{vk.FormatR8g8b8a8Snorm, dx.FormatR8G8B8A8Snorm},
	{vk.FormatR16g16Sfloat, dx.FormatR16G16Float},
	{vk.FormatD32Sfloat, dx.FormatD32Float},
	{vk.FormatR32Sfloat, dx.FormatR32Float},
	{vk.FormatR32Uint, dx.FormatR32Uint},
	{vk.FormatR32Sint, dx.FormatR32Sint},
	{vk.FormatD24UnormS8Uint, dx.FormatD24UnormS8Uint},
	{vk.FormatR8g8Unorm, dx.FormatR8G8Unorm},
	{vk.FormatR16Sfloat, dx.FormatR16Float},
	{vk.FormatD16Unorm, dx.FormatD16Unorm},
	{vk.FormatR16Unorm, dx.FormatR16Unorm},
	{vk.FormatR16Uint, dx.FormatR16Uint},
	{vk.FormatR8Unorm, dx.FormatR8Unorm},
	{vk.FormatR8Uint, dx.FormatR8Uint},
	{vk.FormatB8g8r8a8Unorm, dx.FormatB8G8R8A8Unorm},
	{vk.FormatB8g8r8a8Srgb, dx.FormatB8G8R8A8UnormSRGB},
}

// Format returns the DXGI format with the same memory layout as f.
func Format(f vk.Format) (dx.Format, bool) {
	for _, p := range formats {
		if p.vk == f {
			return p.dx, true
		}
	}
	return dx.FormatUnknown, false
}

// VkFormat is the reverse of Format.
func VkFormat(f dx.Format) (vk.Format, bool) {
	for _, p := range formats {
		if p.dx == f {
			return p.vk, true
		}
	}
	return vk.FormatUndefined, false
}

func CompareOp(op vk.CompareOp) (dx.ComparisonFunc, bool) {
	switch op {
	case vk.CompareOpNever:
		return dx.ComparisonNever, true
	case vk.CompareOpLess:
		return dx.ComparisonLess, true
	case vk.CompareOpEqual:
		return dx.ComparisonEqual, true
	case vk.CompareOpLessOrEqual:
		return dx.ComparisonLessEqual, true
	case vk.CompareOpGreater:
		return dx.ComparisonGreater, true
	case vk.CompareOpNotEqual:
		return dx.ComparisonNotEqual, true
	case vk.CompareOpGreaterOrEqual:
		return dx.ComparisonGreaterEqual, true
	case vk.CompareOpAlways:
		return dx.ComparisonAlways, true
	}
	return 0, false
}

func AddressMode(m vk.SamplerAddressMode) (dx.TextureAddressMode, bool) {
	switch m {
	case vk.SamplerAddressModeRepeat:
		return dx.AddressWrap, true
	case vk.SamplerAddressModeMirroredRepeat:
		return dx.AddressMirror, true
	case vk.SamplerAddressModeClampToEdge:
		return dx.AddressClamp, true
	case vk.SamplerAddressModeClampToBorder:
		return dx.AddressBorder, true
	case vk.SamplerAddressModeMirrorClampToEdge:
		return dx.AddressMirrorOnce, true
	}
	return 0, false
}

func filterType(f vk.Filter) dx.FilterType {
	if f == vk.FilterLinear {
		return dx.FilterLinear
	}
	return dx.FilterPoint
}

// Filter encodes Vulkan min/mag/mip filtering as a D3D12 filter.
func Filter(minify, magnify vk.Filter, mip vk.SamplerMipmapMode, anisotropic, compare bool) dx.Filter {
	reduction := dx.FilterReductionStandard
	if compare {
		reduction = dx.FilterReductionComparison
	}
	if anisotropic {
		return dx.NewAnisotropicFilter(reduction)
	}
	mipType := dx.FilterPoint
	if mip == vk.SamplerMipmapModeLinear {
		mipType = dx.FilterLinear
	}
	return dx.NewFilter(filterType(minify), filterType(magnify), mipType, reduction)
}

var borderColors = map[vk.BorderColor][4]float32{
	vk.BorderColorFloatTransparentBlack: {0, 0, 0, 0},
	vk.BorderColorIntTransparentBlack:   {0, 0, 0, 0},
	vk.BorderColorFloatOpaqueBlack:      {0, 0, 0, 1},
	vk.BorderColorIntOpaqueBlack:        {0, 0, 0, 1},
	vk.BorderColorFloatOpaqueWhite:      {1, 1, 1, 1},
	vk.BorderColorIntOpaqueWhite:        {1, 1, 1, 1},
}

// Sampler converts a Vulkan sampler description. Unknown address modes
// fall back to clamp and a disabled comparison maps to Never.
func Sampler(info *vk.SamplerCreateInfo) dx.SamplerDesc {
	compare := info.CompareEnable == vk.True
	anisotropic := info.AnisotropyEnable == vk.True

	d := dx.SamplerDesc{
		Filter:      Filter(info.MinFilter, info.MagFilter, info.MipmapMode, anisotropic, compare),
		MipLODBias:  info.MipLodBias,
		Comparison:  dx.ComparisonNever,
		BorderColor: borderColors[info.BorderColor],
		MinLOD:      info.MinLod,
		MaxLOD:      info.MaxLod,
	}
	for i, m := range [3]vk.SamplerAddressMode{info.AddressModeU, info.AddressModeV, info.AddressModeW} {
		a, ok := AddressMode(m)
		if !ok {
			a = dx.AddressClamp
		}
		d.AddressMode[i] = a
	}
	if anisotropic {
		d.MaxAnisotropy = uint32(info.MaxAnisotropy)
	}
	if compare {
		if c, ok := CompareOp(info.CompareOp); ok {
			d.Comparison = c
		}
	}
	return d
}
