package dieseldx

import (
	"runtime"
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
)

// CreateDevice creates a device on adapter, or on the default adapter when
// adapter is nil.
func CreateDevice(adapter *Adapter, level FeatureLevel) (*Device, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	var a uintptr
	if adapter != nil {
		a = uintptr(unsafe.Pointer(adapter.inner))
	}
	var d *iD3D12Device
	r, _, _ := procD3D12CreateDevice.Call(a, uintptr(level.native()),
		uintptr(unsafe.Pointer(&_IID_ID3D12Device)), uintptr(unsafe.Pointer(&d)))
	if err := newError(r); err != nil {
		return nil, errors.WithMessage(err, "D3D12CreateDevice")
	}
	Logger().Info("dieseldx: created device", "level", level.String(), "default_adapter", adapter == nil)
	return &Device{inner: d}, nil
}

func (d *Device) Release()       { release(&d.inner) }
func (d *Device) Clone() *Device { return &Device{inner: addRef(d.inner)} }
func (d *Device) IsNull() bool   { return d.inner == nil }

func (d *Device) this() uintptr { return uintptr(unsafe.Pointer(d.inner)) }

func (d *Device) NodeCount() uint32 {
	r, _, _ := syscall.SyscallN(d.inner.vtbl.GetNodeCount, d.this())
	return uint32(r)
}

// RemovedReason returns why the device was removed, or nil while it is
// still usable.
func (d *Device) RemovedReason() error {
	r, _, _ := syscall.SyscallN(d.inner.vtbl.GetDeviceRemovedReason, d.this())
	err := newError(r)
	if err != nil {
		Logger().Error("dieseldx: device removed", "reason", err)
	}
	return err
}

func (d *Device) CreateHeap(size uint64, props HeapProperties, alignment uint64, flags HeapFlags) (*Heap, error) {
	desc := HeapDesc{Size: size, Properties: props, Alignment: alignment, Flags: flags}.native()
	var h *iD3D12Heap
	r, _, _ := syscall.SyscallN(d.inner.vtbl.CreateHeap, d.this(),
		uintptr(unsafe.Pointer(&desc)),
		uintptr(unsafe.Pointer(&_IID_ID3D12Heap)), uintptr(unsafe.Pointer(&h)))
	if err := newError(r); err != nil {
		return nil, err
	}
	return &Heap{inner: h}, nil
}

func (d *Device) CreateCommandAllocator(t CmdListType) (*CommandAllocator, error) {
	var a *iD3D12CommandAllocator
	r, _, _ := syscall.SyscallN(d.inner.vtbl.CreateCommandAllocator, d.this(), uintptr(t.native()),
		uintptr(unsafe.Pointer(&_IID_ID3D12CommandAllocator)), uintptr(unsafe.Pointer(&a)))
	if err := newError(r); err != nil {
		return nil, err
	}
	return &CommandAllocator{inner: a}, nil
}

func (d *Device) CreateCommandQueue(t CmdListType, priority Priority, flags CommandQueueFlags, nodeMask uint32) (*CommandQueue, error) {
	desc := CommandQueueDesc{Type: t, Priority: priority, Flags: flags, NodeMask: nodeMask}.native()
	var q *iD3D12CommandQueue
	r, _, _ := syscall.SyscallN(d.inner.vtbl.CreateCommandQueue, d.this(),
		uintptr(unsafe.Pointer(&desc)),
		uintptr(unsafe.Pointer(&_IID_ID3D12CommandQueue)), uintptr(unsafe.Pointer(&q)))
	if err := newError(r); err != nil {
		return nil, err
	}
	Logger().Debug("dieseldx: created command queue", "type", t, "priority", priority)
	return &CommandQueue{inner: q}, nil
}

func (d *Device) CreateDescriptorHeap(num uint32, t DescriptorHeapType, flags DescriptorHeapFlags, nodeMask uint32) (*DescriptorHeap, error) {
	desc := _D3D12_DESCRIPTOR_HEAP_DESC{
		Type:           t.native(),
		NumDescriptors: num,
		Flags:          uint32(flags),
		NodeMask:       nodeMask,
	}
	var h *iD3D12DescriptorHeap
	r, _, _ := syscall.SyscallN(d.inner.vtbl.CreateDescriptorHeap, d.this(),
		uintptr(unsafe.Pointer(&desc)),
		uintptr(unsafe.Pointer(&_IID_ID3D12DescriptorHeap)), uintptr(unsafe.Pointer(&h)))
	if err := newError(r); err != nil {
		return nil, err
	}
	return &DescriptorHeap{inner: h}, nil
}

// DescriptorIncrementSize is the byte stride between descriptors of type t.
func (d *Device) DescriptorIncrementSize(t DescriptorHeapType) uint32 {
	r, _, _ := syscall.SyscallN(d.inner.vtbl.GetDescriptorHandleIncrementSize, d.this(), uintptr(t.native()))
	return uint32(r)
}

// CreateGraphicsCommandList creates a list in the recording state. pso may
// be nil.
func (d *Device) CreateGraphicsCommandList(t CmdListType, alloc *CommandAllocator, pso *PipelineState, nodeMask uint32) (*GraphicsCommandList, error) {
	var l *iD3D12GraphicsCommandList
	r, _, _ := syscall.SyscallN(d.inner.vtbl.CreateCommandList, d.this(),
		uintptr(nodeMask), uintptr(t.native()),
		uintptr(unsafe.Pointer(alloc.inner)), pso.ptr(),
		uintptr(unsafe.Pointer(&_IID_ID3D12GraphicsCommandList)), uintptr(unsafe.Pointer(&l)))
	if err := newError(r); err != nil {
		return nil, err
	}
	return &GraphicsCommandList{inner: l}, nil
}

func (d *Device) CreateQueryHeap(t QueryHeapType, count, nodeMask uint32) (*QueryHeap, error) {
	desc := _D3D12_QUERY_HEAP_DESC{Type: t.native(), Count: count, NodeMask: nodeMask}
	var h *iD3D12QueryHeap
	r, _, _ := syscall.SyscallN(d.inner.vtbl.CreateQueryHeap, d.this(),
		uintptr(unsafe.Pointer(&desc)),
		uintptr(unsafe.Pointer(&_IID_ID3D12QueryHeap)), uintptr(unsafe.Pointer(&h)))
	if err := newError(r); err != nil {
		return nil, err
	}
	return &QueryHeap{inner: h}, nil
}

// CreateGraphicsPipelineState is not wired to the native call and panics
// with ErrNotImplemented. Use CreatePipelineStateFromStream.
func (d *Device) CreateGraphicsPipelineState(desc GraphicsPipelineStateDesc) (*PipelineState, error) {
	panic(ErrNotImplemented)
}

func (d *Device) CreateComputePipelineState(rs *RootSignature, cs Shader, nodeMask uint32, cached CachedPSO, flags PipelineStateFlags) (*PipelineState, error) {
	desc := _D3D12_COMPUTE_PIPELINE_STATE_DESC{
		pRootSignature: rs.ptr(),
		CS:             cs.native(),
		NodeMask:       nodeMask,
		CachedPSO:      cached.native(),
		Flags:          flags,
	}
	var p *iD3D12PipelineState
	r, _, _ := syscall.SyscallN(d.inner.vtbl.CreateComputePipelineState, d.this(),
		uintptr(unsafe.Pointer(&desc)),
		uintptr(unsafe.Pointer(&_IID_ID3D12PipelineState)), uintptr(unsafe.Pointer(&p)))
	runtime.KeepAlive(cs.code)
	runtime.KeepAlive(cached.data)
	if err := newError(r); err != nil {
		return nil, err
	}
	return &PipelineState{inner: p}, nil
}

// CreatePipelineStateFromStream builds a pipeline from packed subobjects.
// It needs ID3D12Device2.
func (d *Device) CreatePipelineStateFromStream(stream *PipelineStream) (*PipelineState, error) {
	var d2 *iD3D12Device2
	if err := comQueryInterface(unsafe.Pointer(d.inner), &_IID_ID3D12Device2, unsafe.Pointer(&d2)); err != nil {
		return nil, errors.WithMessage(err, "ID3D12Device2")
	}
	defer release(&d2)

	desc := stream.native()
	var p *iD3D12PipelineState
	r, _, _ := syscall.SyscallN(d2.vtbl.CreatePipelineState, uintptr(unsafe.Pointer(d2)),
		uintptr(unsafe.Pointer(&desc)),
		uintptr(unsafe.Pointer(&_IID_ID3D12PipelineState)), uintptr(unsafe.Pointer(&p)))
	runtime.KeepAlive(stream)
	if err := newError(r); err != nil {
		return nil, err
	}
	return &PipelineState{inner: p}, nil
}

func (d *Device) CreateSampler(dst CPUDescriptor, desc SamplerDesc) {
	n := desc.native()
	syscall.SyscallN(d.inner.vtbl.CreateSampler, d.this(), uintptr(unsafe.Pointer(&n)), dst.Ptr)
}

// CreateRootSignature creates a root signature from a blob returned by
// SerializeRootSignature.
func (d *Device) CreateRootSignature(blob *Blob, nodeMask uint32) (*RootSignature, error) {
	code := blob.Bytes()
	var rs *iD3D12RootSignature
	r, _, _ := syscall.SyscallN(d.inner.vtbl.CreateRootSignature, d.this(),
		uintptr(nodeMask), sliceAddr(code), uintptr(len(code)),
		uintptr(unsafe.Pointer(&_IID_ID3D12RootSignature)), uintptr(unsafe.Pointer(&rs)))
	if err := newError(r); err != nil {
		return nil, err
	}
	return &RootSignature{inner: rs}, nil
}

// CreateCommandSignature describes an ExecuteIndirect argument buffer. rs
// may be nil when no argument changes root bindings.
func (d *Device) CreateCommandSignature(rs *RootSignature, args []IndirectArgument, stride, nodeMask uint32) (*CommandSignature, error) {
	descs := make([]_D3D12_INDIRECT_ARGUMENT_DESC, len(args))
	for i, a := range args {
		descs[i] = a.native()
	}
	desc := _D3D12_COMMAND_SIGNATURE_DESC{
		ByteStride:       stride,
		NumArgumentDescs: uint32(len(descs)),
		pArgumentDescs:   sliceAddr(descs),
		NodeMask:         nodeMask,
	}
	var s *iD3D12CommandSignature
	r, _, _ := syscall.SyscallN(d.inner.vtbl.CreateCommandSignature, d.this(),
		uintptr(unsafe.Pointer(&desc)), rs.ptr(),
		uintptr(unsafe.Pointer(&_IID_ID3D12CommandSignature)), uintptr(unsafe.Pointer(&s)))
	runtime.KeepAlive(descs)
	if err := newError(r); err != nil {
		return nil, err
	}
	return &CommandSignature{inner: s}, nil
}

// CreateRenderTargetView writes a view of res at dst. A nil desc views
// the whole first mip with the resource's own format.
func (d *Device) CreateRenderTargetView(res *Resource, desc *RenderTargetViewDesc, dst CPUDescriptor) {
	var p uintptr
	if desc != nil {
		p = uintptr(unsafe.Pointer(&desc.n))
	}
	syscall.SyscallN(d.inner.vtbl.CreateRenderTargetView, d.this(), res.ptr(), p, dst.Ptr)
	runtime.KeepAlive(desc)
}

func (d *Device) CreateDepthStencilView(res *Resource, desc *DepthStencilViewDesc, dst CPUDescriptor) {
	var p uintptr
	if desc != nil {
		p = uintptr(unsafe.Pointer(&desc.n))
	}
	syscall.SyscallN(d.inner.vtbl.CreateDepthStencilView, d.this(), res.ptr(), p, dst.Ptr)
	runtime.KeepAlive(desc)
}

func (d *Device) CreateFence(initial uint64) (*Fence, error) {
	var f *iD3D12Fence
	r, _, _ := syscall.SyscallN(d.inner.vtbl.CreateFence, d.this(), uintptr(initial), 0,
		uintptr(unsafe.Pointer(&_IID_ID3D12Fence)), uintptr(unsafe.Pointer(&f)))
	if err := newError(r); err != nil {
		return nil, err
	}
	return &Fence{inner: f}, nil
}

// CreateCommittedResource creates a resource with its own implicit heap.
// clear may be nil.
func (d *Device) CreateCommittedResource(props HeapProperties, heapFlags HeapFlags, desc ResourceDesc, state ResourceStates, clear *ClearValue) (*Resource, error) {
	np := props.native()
	nc := clear.native()
	var res *iD3D12Resource
	r, _, _ := syscall.SyscallN(d.inner.vtbl.CreateCommittedResource, d.this(),
		uintptr(unsafe.Pointer(&np)), uintptr(heapFlags),
		uintptr(unsafe.Pointer(&desc.n)), uintptr(state), uintptr(unsafe.Pointer(nc)),
		uintptr(unsafe.Pointer(&_IID_ID3D12Resource)), uintptr(unsafe.Pointer(&res)))
	runtime.KeepAlive(nc)
	if err := newError(r); err != nil {
		return nil, err
	}
	return &Resource{inner: res}, nil
}

// GetDebugInterface returns the debug layer controller. Enable the layer
// before creating any device.
func GetDebugInterface() (*Debug, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	var dbg *iD3D12Debug
	r, _, _ := procD3D12GetDebugInterface.Call(
		uintptr(unsafe.Pointer(&_IID_ID3D12Debug)), uintptr(unsafe.Pointer(&dbg)))
	if err := newError(r); err != nil {
		return nil, errors.WithMessage(err, "D3D12GetDebugInterface")
	}
	return &Debug{inner: dbg}, nil
}

func (d *Debug) Release()      { release(&d.inner) }
func (d *Debug) Clone() *Debug { return &Debug{inner: addRef(d.inner)} }
func (d *Debug) IsNull() bool  { return d.inner == nil }

func (d *Debug) EnableLayer() {
	syscall.SyscallN(d.inner.vtbl.EnableDebugLayer, uintptr(unsafe.Pointer(d.inner)))
	Logger().Debug("dieseldx: debug layer enabled")
}
