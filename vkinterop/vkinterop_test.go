package vkinterop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"

	dx "github.com/andewx/dieseldx"
)

func TestFormatRoundTrip(t *testing.T) {
	seenVk := map[vk.Format]bool{}
	seenDx := map[dx.Format]bool{}
	for _, p := range formats {
		require.False(t, seenVk[p.vk], "duplicate vk format %d", p.vk)
		require.False(t, seenDx[p.dx], "duplicate dxgi format %s", p.dx)
		seenVk[p.vk], seenDx[p.dx] = true, true

		d, ok := Format(p.vk)
		require.True(t, ok)
		assert.Equal(t, p.dx, d)

		v, ok := VkFormat(d)
		require.True(t, ok)
		assert.Equal(t, p.vk, v)
	}
}

func TestFormatUnknown(t *testing.T) {
	_, ok := Format(vk.FormatR64Sfloat)
	assert.False(t, ok)
}

func TestDepthFormatsStayDepth(t *testing.T) {
	for _, f := range []vk.Format{vk.FormatD16Unorm, vk.FormatD32Sfloat, vk.FormatD24UnormS8Uint, vk.FormatD32SfloatS8Uint} {
		d, ok := Format(f)
		require.True(t, ok)
		assert.True(t, d.IsDepth(), d.String())
	}
}

func TestCompareOp(t *testing.T) {
	c, ok := CompareOp(vk.CompareOpLessOrEqual)
	require.True(t, ok)
	assert.Equal(t, dx.ComparisonLessEqual, c)

	c, ok = CompareOp(vk.CompareOpAlways)
	require.True(t, ok)
	assert.Equal(t, dx.ComparisonAlways, c)
}

func TestSampler(t *testing.T) {
	info := vk.SamplerCreateInfo{
		MagFilter:     vk.FilterLinear,
		MinFilter:     vk.FilterNearest,
		MipmapMode:    vk.SamplerMipmapModeLinear,
		AddressModeU:  vk.SamplerAddressModeRepeat,
		AddressModeV:  vk.SamplerAddressModeClampToBorder,
		AddressModeW:  vk.SamplerAddressModeMirroredRepeat,
		CompareEnable: vk.True,
		CompareOp:     vk.CompareOpLess,
		BorderColor:   vk.BorderColorFloatOpaqueWhite,
		MaxLod:        12,
	}
	d := Sampler(&info)

	assert.Equal(t, dx.NewFilter(dx.FilterPoint, dx.FilterLinear, dx.FilterLinear, dx.FilterReductionComparison), d.Filter)
	assert.Equal(t, [3]dx.TextureAddressMode{dx.AddressWrap, dx.AddressBorder, dx.AddressMirror}, d.AddressMode)
	assert.Equal(t, dx.ComparisonLess, d.Comparison)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, d.BorderColor)
	assert.Equal(t, float32(12), d.MaxLOD)
	assert.Zero(t, d.MaxAnisotropy)
}

func TestSamplerAnisotropic(t *testing.T) {
	info := vk.SamplerCreateInfo{
		AnisotropyEnable: vk.True,
		MaxAnisotropy:    8,
	}
	d := Sampler(&info)
	assert.Equal(t, dx.NewAnisotropicFilter(dx.FilterReductionStandard), d.Filter)
	assert.Equal(t, uint32(8), d.MaxAnisotropy)
	assert.Equal(t, dx.ComparisonNever, d.Comparison)
}
