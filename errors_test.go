package dieseldx

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	assert.NoError(t, newError(0))
	assert.NoError(t, newError(1), "S_FALSE is a success code")

	err := newError(uintptr(uint32(E_INVALIDARG)))
	require.Error(t, err)
	hr, ok := AsHRESULT(err)
	require.True(t, ok)
	assert.Equal(t, E_INVALIDARG, hr)
	assert.True(t, hr.Failed())
	assert.Contains(t, err.Error(), "E_INVALIDARG")
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestNewError", "stack is recorded")
}

func TestHRESULTString(t *testing.T) {
	assert.Equal(t, "dieseldx: DXGI_ERROR_NOT_FOUND (0x887A0002)", DXGI_ERROR_NOT_FOUND.Error())
	assert.Equal(t, "dieseldx: HRESULT 0x80001234", HRESULT(-0x7fffedcc).Error())
	assert.True(t, S_FALSE.Succeeded())
}

func TestIsDeviceLost(t *testing.T) {
	for _, hr := range []HRESULT{DXGI_ERROR_DEVICE_REMOVED, DXGI_ERROR_DEVICE_RESET, DXGI_ERROR_DEVICE_HUNG, DXGI_ERROR_DRIVER_INTERNAL_ERROR} {
		assert.True(t, IsDeviceLost(errors.WithMessage(errors.WithStack(hr), "Present")), hr.Error())
	}
	assert.False(t, IsDeviceLost(errors.WithStack(E_OUTOFMEMORY)))
	assert.False(t, IsDeviceLost(errors.New("plain")))
	assert.False(t, IsDeviceLost(nil))
}

func TestDiagnosticError(t *testing.T) {
	err := error(&DiagnosticError{Op: "D3DCompile", HR: E_FAIL, Message: "shader.hlsl(3,1): error X3000: syntax error"})
	assert.ErrorIs(t, err, E_FAIL)
	assert.Contains(t, err.Error(), "D3DCompile")
	assert.Contains(t, err.Error(), "X3000")

	var d *DiagnosticError
	require.ErrorAs(t, errors.WithStack(err), &d)
	assert.Equal(t, "D3DCompile", d.Op)

	bare := &DiagnosticError{Op: "D3D12SerializeRootSignature", HR: E_INVALIDARG}
	assert.Equal(t, "dieseldx: D3D12SerializeRootSignature: "+E_INVALIDARG.Error(), bare.Error())
}
