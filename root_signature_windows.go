package dieseldx

import (
	"runtime"
	"unsafe"
)

func (r *RootSignature) Release()     { release(&r.inner) }
func (r *RootSignature) IsNull() bool { return r.inner == nil }

func (r *RootSignature) Clone() *RootSignature {
	return &RootSignature{inner: addRef(r.inner)}
}

// SerializeRootSignature encodes a root signature for
// Device.CreateRootSignature. On failure the error is a *DiagnosticError
// carrying the serializer's message.
func SerializeRootSignature(version RootSignatureVersion, params []RootParameter, samplers []StaticSampler, flags RootSignatureFlags) (*Blob, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	layout := newRootSignatureLayout(params, samplers, flags)
	var blob, errBlob *iD3DBlob
	r, _, _ := procD3D12SerializeRootSignature.Call(
		uintptr(unsafe.Pointer(&layout.desc)), uintptr(version.native()),
		uintptr(unsafe.Pointer(&blob)), uintptr(unsafe.Pointer(&errBlob)))
	runtime.KeepAlive(layout)
	if isError(r) {
		return nil, diagnosticError("D3D12SerializeRootSignature", r, errBlob)
	}
	if errBlob != nil {
		release(&errBlob)
	}
	return &Blob{inner: blob}, nil
}
