package dieseldx

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// Sizes of the native structs on 64-bit Windows.
func TestNativeLayout(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("64-bit layouts only")
	}
	assert.EqualValues(t, 32, unsafe.Sizeof(_D3D12_RESOURCE_BARRIER{}))
	assert.EqualValues(t, 32, unsafe.Sizeof(_D3D12_ROOT_PARAMETER{}))
	assert.EqualValues(t, 20, unsafe.Sizeof(_D3D12_DESCRIPTOR_RANGE{}))
	assert.EqualValues(t, 52, unsafe.Sizeof(_D3D12_STATIC_SAMPLER_DESC{}))
	assert.EqualValues(t, 52, unsafe.Sizeof(_D3D12_SAMPLER_DESC{}))
	assert.EqualValues(t, 40, unsafe.Sizeof(_D3D12_ROOT_SIGNATURE_DESC{}))
	assert.EqualValues(t, 16, unsafe.Sizeof(_D3D12_INDIRECT_ARGUMENT_DESC{}))
	assert.EqualValues(t, 24, unsafe.Sizeof(_D3D12_DISCARD_REGION{}))
	assert.EqualValues(t, 48, unsafe.Sizeof(_DXGI_SWAP_CHAIN_DESC1{}))
	assert.EqualValues(t, 72, unsafe.Sizeof(_DXGI_SWAP_CHAIN_DESC{}))

	var p _D3D12_ROOT_PARAMETER
	assert.EqualValues(t, 8, unsafe.Offsetof(p.union))
	assert.EqualValues(t, 24, unsafe.Offsetof(p.ShaderVisibility))
}
