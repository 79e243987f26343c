package dieseldx

import (
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

const is64bit = uint64(^uintptr(0)) == ^uint64(0)

var (
	d3d12       = windows.NewLazySystemDLL("d3d12.dll")
	dxgi        = windows.NewLazySystemDLL("dxgi.dll")
	d3dcompiler = windows.NewLazySystemDLL("d3dcompiler_47.dll")

	procD3D12CreateDevice           = d3d12.NewProc("D3D12CreateDevice")
	procD3D12GetDebugInterface      = d3d12.NewProc("D3D12GetDebugInterface")
	procD3D12SerializeRootSignature = d3d12.NewProc("D3D12SerializeRootSignature")

	procCreateDXGIFactory2     = dxgi.NewProc("CreateDXGIFactory2")
	procDXGIGetDebugInterface1 = dxgi.NewProc("DXGIGetDebugInterface1")

	procD3DCompile = d3dcompiler.NewProc("D3DCompile")
)

var (
	_IID_ID3D12Device              = windows.GUID{Data1: 0x189819f1, Data2: 0x1db6, Data3: 0x4b57, Data4: [...]byte{0xbe, 0x54, 0x18, 0x21, 0x33, 0x9b, 0x85, 0xf7}}
	_IID_ID3D12Device2             = windows.GUID{Data1: 0x30baa41e, Data2: 0xb15b, Data3: 0x475c, Data4: [...]byte{0xa0, 0xbb, 0x1a, 0xf5, 0xc5, 0xb6, 0x43, 0x28}}
	_IID_ID3D12Debug               = windows.GUID{Data1: 0x344488b7, Data2: 0x6846, Data3: 0x474b, Data4: [...]byte{0xb9, 0x89, 0xf0, 0x27, 0x44, 0x82, 0x45, 0xe0}}
	_IID_ID3D12CommandQueue        = windows.GUID{Data1: 0x0ec870a6, Data2: 0x5d7e, Data3: 0x4c22, Data4: [...]byte{0x8c, 0xfc, 0x5b, 0xaa, 0xe0, 0x76, 0x16, 0xed}}
	_IID_ID3D12CommandAllocator    = windows.GUID{Data1: 0x6102dee4, Data2: 0xaf59, Data3: 0x4b09, Data4: [...]byte{0xb9, 0x99, 0xb4, 0x4d, 0x73, 0xf0, 0x9b, 0x24}}
	_IID_ID3D12GraphicsCommandList = windows.GUID{Data1: 0x5b160d0f, Data2: 0xac1b, Data3: 0x4185, Data4: [...]byte{0x8b, 0xa8, 0xb3, 0xae, 0x42, 0xa5, 0xa4, 0x55}}
	_IID_ID3D12DescriptorHeap      = windows.GUID{Data1: 0x8efb471d, Data2: 0x616c, Data3: 0x4f49, Data4: [...]byte{0x90, 0xf7, 0x12, 0x7b, 0xb7, 0x63, 0xfa, 0x51}}
	_IID_ID3D12Fence               = windows.GUID{Data1: 0x0a753dcf, Data2: 0xc4d8, Data3: 0x4b91, Data4: [...]byte{0xad, 0xf6, 0xbe, 0x5a, 0x60, 0xd9, 0x5a, 0x76}}
	_IID_ID3D12Resource            = windows.GUID{Data1: 0x696442be, Data2: 0xa72e, Data3: 0x4059, Data4: [...]byte{0xbc, 0x79, 0x5b, 0x5c, 0x98, 0x04, 0x0f, 0xad}}
	_IID_ID3D12RootSignature       = windows.GUID{Data1: 0xc54a6b66, Data2: 0x72df, Data3: 0x4ee8, Data4: [...]byte{0x8b, 0xe5, 0xa9, 0x46, 0xa1, 0x42, 0x92, 0x14}}
	_IID_ID3D12PipelineState       = windows.GUID{Data1: 0x765a30f3, Data2: 0xf624, Data3: 0x4c6f, Data4: [...]byte{0xa8, 0x28, 0xac, 0xe9, 0x48, 0x62, 0x24, 0x45}}
	_IID_ID3D12Heap                = windows.GUID{Data1: 0x6b3b2502, Data2: 0x6e51, Data3: 0x45b3, Data4: [...]byte{0x90, 0xee, 0x98, 0x84, 0x26, 0x5e, 0x8d, 0xf3}}
	_IID_ID3D12QueryHeap           = windows.GUID{Data1: 0x0d9658ae, Data2: 0xed45, Data3: 0x469e, Data4: [...]byte{0xa6, 0x1d, 0x97, 0x0e, 0xc5, 0x83, 0xca, 0xb4}}
	_IID_ID3D12CommandSignature    = windows.GUID{Data1: 0xc36a797c, Data2: 0xec80, Data3: 0x4f0a, Data4: [...]byte{0x89, 0x85, 0xa7, 0xb2, 0x47, 0x50, 0x82, 0xd1}}

	_IID_IDXGIFactory4     = windows.GUID{Data1: 0x1bc6ea02, Data2: 0xef36, Data3: 0x464f, Data4: [...]byte{0xbf, 0x0c, 0x21, 0xca, 0x39, 0xe5, 0x16, 0x8a}}
	_IID_IDXGIFactoryMedia = windows.GUID{Data1: 0x41e7d1f2, Data2: 0xa591, Data3: 0x4f7b, Data4: [...]byte{0xa2, 0xe5, 0xfa, 0x9c, 0x84, 0x3e, 0x1c, 0x12}}
	_IID_IDXGIAdapter1     = windows.GUID{Data1: 0x29038f61, Data2: 0x3839, Data3: 0x4626, Data4: [...]byte{0x91, 0xfd, 0x08, 0x68, 0x79, 0x01, 0x1a, 0x05}}
	_IID_IDXGISwapChain3   = windows.GUID{Data1: 0x94d99bdb, Data2: 0xf1f8, Data3: 0x4ab0, Data4: [...]byte{0xb2, 0x36, 0x7d, 0xa0, 0x17, 0x0e, 0xda, 0xb1}}
	_IID_IDXGIInfoQueue    = windows.GUID{Data1: 0xd67441c7, Data2: 0x672a, Data3: 0x476f, Data4: [...]byte{0x9e, 0x82, 0xcd, 0x55, 0xb4, 0x49, 0x49, 0xce}}

	_DXGI_DEBUG_ALL  = windows.GUID{Data1: 0xe48ae283, Data2: 0xda80, Data3: 0x490b, Data4: [...]byte{0x87, 0xe6, 0x43, 0xe9, 0xa9, 0xcf, 0xda, 0x08}}
	_DXGI_DEBUG_DXGI = windows.GUID{Data1: 0x25cddaa4, Data2: 0xb1c6, Data3: 0x47e1, Data4: [...]byte{0xac, 0x3e, 0x98, 0x87, 0x5b, 0x5a, 0x2e, 0x2a}}
)

// Load resolves the native entry points. Creation functions call it; it
// is exported so callers can probe for D3D12 support up front.
func Load() error {
	if !is64bit {
		return errors.New("dieseldx: D3D12 requires a 64-bit process")
	}
	if err := d3d12.Load(); err != nil {
		return errors.Wrap(err, "dieseldx: loading d3d12.dll")
	}
	if err := dxgi.Load(); err != nil {
		return errors.Wrap(err, "dieseldx: loading dxgi.dll")
	}
	return nil
}

// comPtr returns the vtable head shared by every COM object.
func comPtr(obj unsafe.Pointer) *iUnknownVtbl {
	return *(**iUnknownVtbl)(obj)
}

func comAddRef(obj unsafe.Pointer) {
	if obj == nil {
		return
	}
	syscall.SyscallN(comPtr(obj).AddRef, uintptr(obj))
}

func comRelease(obj unsafe.Pointer) uint32 {
	if obj == nil {
		return 0
	}
	r, _, _ := syscall.SyscallN(comPtr(obj).Release, uintptr(obj))
	return uint32(r)
}

func comQueryInterface(obj unsafe.Pointer, iid *windows.GUID, out unsafe.Pointer) error {
	r, _, _ := syscall.SyscallN(comPtr(obj).QueryInterface, uintptr(obj), uintptr(unsafe.Pointer(iid)), uintptr(out))
	return newError(r)
}

// release drops the reference held in *p and clears it.
func release[T any](p **T) {
	if *p == nil {
		return
	}
	comRelease(unsafe.Pointer(*p))
	*p = nil
}

// addRef takes a new reference on p and returns it.
func addRef[T any](p *T) *T {
	comAddRef(unsafe.Pointer(p))
	return p
}

func boolToUintptr(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}
