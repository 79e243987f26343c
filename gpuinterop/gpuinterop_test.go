package gpuinterop

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dx "github.com/andewx/dieseldx"
)

func TestTextureFormatRoundTrip(t *testing.T) {
	seen := map[dx.Format]gputypes.TextureFormat{}
	for g, d := range textureFormats {
		prev, dup := seen[d]
		require.False(t, dup, "%s mapped from both %v and %v", d, prev, g)
		seen[d] = g

		got, ok := TextureFormat(g)
		require.True(t, ok)
		assert.Equal(t, d, got)

		back, ok := FromFormat(d)
		require.True(t, ok)
		assert.Equal(t, g, back)
	}
}

func TestTextureFormatDepth24Plus(t *testing.T) {
	d, ok := TextureFormat(gputypes.TextureFormatDepth24Plus)
	require.True(t, ok)
	assert.Equal(t, dx.FormatD24UnormS8Uint, d)

	_, ok = TextureFormat(gputypes.TextureFormatASTC4x4Unorm)
	assert.False(t, ok)
}

func TestCompareFunction(t *testing.T) {
	_, ok := CompareFunction(gputypes.CompareFunctionUndefined)
	assert.False(t, ok)

	pairs := map[gputypes.CompareFunction]dx.ComparisonFunc{
		gputypes.CompareFunctionNever:        dx.ComparisonNever,
		gputypes.CompareFunctionLess:         dx.ComparisonLess,
		gputypes.CompareFunctionLessEqual:    dx.ComparisonLessEqual,
		gputypes.CompareFunctionNotEqual:     dx.ComparisonNotEqual,
		gputypes.CompareFunctionGreaterEqual: dx.ComparisonGreaterEqual,
		gputypes.CompareFunctionAlways:       dx.ComparisonAlways,
	}
	for g, want := range pairs {
		got, ok := CompareFunction(g)
		require.True(t, ok, g.String())
		assert.Equal(t, want, got, g.String())
	}
}

func TestSampler(t *testing.T) {
	desc := gputypes.SamplerDescriptor{
		AddressModeU: gputypes.AddressModeRepeat,
		AddressModeV: gputypes.AddressModeMirrorRepeat,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.MipmapFilterModeNearest,
		LodMaxClamp:  32,
		Compare:      gputypes.CompareFunctionGreater,
	}
	d := Sampler(&desc)

	assert.Equal(t, dx.NewFilter(dx.FilterLinear, dx.FilterLinear, dx.FilterPoint, dx.FilterReductionComparison), d.Filter)
	assert.Equal(t, [3]dx.TextureAddressMode{dx.AddressWrap, dx.AddressMirror, dx.AddressClamp}, d.AddressMode)
	assert.Equal(t, dx.ComparisonGreater, d.Comparison)
	assert.Equal(t, float32(32), d.MaxLOD)
}

func TestSamplerDefaults(t *testing.T) {
	desc := gputypes.DefaultSamplerDescriptor()
	desc.MaxAnisotropy = 16
	d := Sampler(&desc)

	assert.Equal(t, dx.NewAnisotropicFilter(dx.FilterReductionStandard), d.Filter)
	assert.Equal(t, uint32(16), d.MaxAnisotropy)
	assert.Equal(t, dx.ComparisonNever, d.Comparison)
	assert.Equal(t, dx.AddressClamp, d.AddressMode[0])
}
