package dieseldx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapchainDesc1(t *testing.T) {
	d := DefaultSwapchainDesc(1280, 720)
	d.Stereo = true
	d.Flags = SwapChainFlagAllowTearing

	n := d.toDesc1()
	assert.Equal(t, uint32(1280), n.Width)
	assert.Equal(t, uint32(720), n.Height)
	assert.Equal(t, FormatR8G8B8A8Unorm, n.Format)
	assert.Equal(t, int32(1), n.Stereo)
	assert.Equal(t, _DXGI_SAMPLE_DESC{Count: 1}, n.SampleDesc)
	assert.Equal(t, UsageRenderTargetOutput, n.BufferUsage)
	assert.Equal(t, uint32(2), n.BufferCount)
	assert.Equal(t, _DXGI_SCALING_STRETCH, n.Scaling)
	assert.Equal(t, _DXGI_SWAP_EFFECT_FLIP_DISCARD, n.SwapEffect)
	assert.Equal(t, _DXGI_ALPHA_MODE_UNSPECIFIED, n.AlphaMode)
	assert.Equal(t, uint32(SwapChainFlagAllowTearing), n.Flags)
}

func TestSwapchainLegacyUsesHeight(t *testing.T) {
	d := DefaultSwapchainDesc(800, 600)
	d.SwapEffect = SwapEffectDiscard

	n := d.toLegacy(0xabc)
	assert.Equal(t, uint32(800), n.BufferDesc.Width)
	assert.Equal(t, uint32(600), n.BufferDesc.Height)
	assert.Equal(t, _DXGI_RATIONAL{Numerator: 1, Denominator: 60}, n.BufferDesc.RefreshRate)
	assert.Equal(t, FormatR8G8B8A8Unorm, n.BufferDesc.Format)
	assert.Equal(t, uintptr(0xabc), n.OutputWindow)
	assert.Equal(t, int32(1), n.Windowed)
	assert.Equal(t, _DXGI_SWAP_EFFECT_DISCARD, n.SwapEffect)
	assert.Equal(t, uint32(2), n.BufferCount)
}
