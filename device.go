// Package dieseldx is a thin typed binding over Direct3D 12 and DXGI.
//
// Every handle type owns one native reference. Release drops it, Clone
// takes another. Methods forward to exactly one native entry point and
// return native failures as errors wrapping an HRESULT.
package dieseldx

// Device creates every other D3D12 object.
type Device struct {
	inner *iD3D12Device
}

// Debug is the D3D12 debug layer controller.
type Debug struct {
	inner *iD3D12Debug
}
