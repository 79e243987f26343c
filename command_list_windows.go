package dieseldx

import (
	"math"
	"runtime"
	"syscall"
	"unsafe"
)

func (l *GraphicsCommandList) Release()     { release(&l.inner) }
func (l *GraphicsCommandList) IsNull() bool { return l.inner == nil }

func (l *GraphicsCommandList) Clone() *GraphicsCommandList {
	return &GraphicsCommandList{inner: addRef(l.inner)}
}

func (l *GraphicsCommandList) this() uintptr { return uintptr(unsafe.Pointer(l.inner)) }

// Close ends recording. The list can then be executed or reset.
func (l *GraphicsCommandList) Close() error {
	r, _, _ := syscall.SyscallN(l.inner.vtbl.Close, l.this())
	return newError(r)
}

// Reset reopens the list for recording into alloc. initial may be nil.
func (l *GraphicsCommandList) Reset(alloc *CommandAllocator, initial *PipelineState) error {
	r, _, _ := syscall.SyscallN(l.inner.vtbl.Reset, l.this(), uintptr(unsafe.Pointer(alloc.inner)), initial.ptr())
	return newError(r)
}

func (l *GraphicsCommandList) ResourceBarrier(barriers []ResourceBarrier) {
	if len(barriers) == 0 {
		return
	}
	n := make([]_D3D12_RESOURCE_BARRIER, len(barriers))
	for i, b := range barriers {
		n[i] = b.native()
	}
	syscall.SyscallN(l.inner.vtbl.ResourceBarrier, l.this(), uintptr(len(n)), sliceAddr(n))
	runtime.KeepAlive(n)
	runtime.KeepAlive(barriers)
}

// ClearDepthStencilView clears dsv, or only rects of it when rects is
// non-empty.
func (l *GraphicsCommandList) ClearDepthStencilView(dsv CPUDescriptor, flags ClearFlags, depth float32, stencil uint8, rects []Rect) {
	n, p := rectsNative(rects)
	syscall.SyscallN(l.inner.vtbl.ClearDepthStencilView, l.this(), dsv.Ptr, uintptr(flags),
		uintptr(math.Float32bits(depth)), uintptr(stencil), uintptr(len(n)), p)
	runtime.KeepAlive(n)
}

func (l *GraphicsCommandList) ClearRenderTargetView(rtv CPUDescriptor, color [4]float32, rects []Rect) {
	n, p := rectsNative(rects)
	syscall.SyscallN(l.inner.vtbl.ClearRenderTargetView, l.this(), rtv.Ptr,
		uintptr(unsafe.Pointer(&color[0])), uintptr(len(n)), p)
	runtime.KeepAlive(n)
}

func (l *GraphicsCommandList) Draw(numVertices, numInstances, startVertex, startInstance uint32) {
	syscall.SyscallN(l.inner.vtbl.DrawInstanced, l.this(),
		uintptr(numVertices), uintptr(numInstances), uintptr(startVertex), uintptr(startInstance))
}

func (l *GraphicsCommandList) DrawIndexed(numIndices, numInstances, startIndex uint32, baseVertex int32, startInstance uint32) {
	syscall.SyscallN(l.inner.vtbl.DrawIndexedInstanced, l.this(),
		uintptr(numIndices), uintptr(numInstances), uintptr(startIndex), uintptr(baseVertex), uintptr(startInstance))
}

func (l *GraphicsCommandList) Dispatch(count WorkGroupCount) {
	syscall.SyscallN(l.inner.vtbl.Dispatch, l.this(), uintptr(count[0]), uintptr(count[1]), uintptr(count[2]))
}

func (l *GraphicsCommandList) SetIndexBuffer(location GPUAddress, size uint32, format Format) {
	v := _D3D12_INDEX_BUFFER_VIEW{BufferLocation: uint64(location), SizeInBytes: size, Format: format}
	syscall.SyscallN(l.inner.vtbl.IASetIndexBuffer, l.this(), uintptr(unsafe.Pointer(&v)))
}

func (l *GraphicsCommandList) SetVertexBuffers(startSlot uint32, views []VertexBufferView) {
	n := make([]_D3D12_VERTEX_BUFFER_VIEW, len(views))
	for i, v := range views {
		n[i] = _D3D12_VERTEX_BUFFER_VIEW{BufferLocation: uint64(v.Location), SizeInBytes: v.Size, StrideInBytes: v.Stride}
	}
	syscall.SyscallN(l.inner.vtbl.IASetVertexBuffers, l.this(), uintptr(startSlot), uintptr(len(n)), sliceAddr(n))
	runtime.KeepAlive(n)
}

func (l *GraphicsCommandList) SetPrimitiveTopology(t PrimitiveTopology) {
	syscall.SyscallN(l.inner.vtbl.IASetPrimitiveTopology, l.this(), uintptr(t))
}

func (l *GraphicsCommandList) SetViewports(viewports []Viewport) {
	n := make([]_D3D12_VIEWPORT, len(viewports))
	for i, v := range viewports {
		n[i] = _D3D12_VIEWPORT{
			TopLeftX: v.X,
			TopLeftY: v.Y,
			Width:    v.Width,
			Height:   v.Height,
			MinDepth: v.MinDepth,
			MaxDepth: v.MaxDepth,
		}
	}
	syscall.SyscallN(l.inner.vtbl.RSSetViewports, l.this(), uintptr(len(n)), sliceAddr(n))
	runtime.KeepAlive(n)
}

func (l *GraphicsCommandList) SetScissors(rects []Rect) {
	n, p := rectsNative(rects)
	syscall.SyscallN(l.inner.vtbl.RSSetScissorRects, l.this(), uintptr(len(n)), p)
	runtime.KeepAlive(n)
}

func (l *GraphicsCommandList) SetBlendFactor(factor [4]float32) {
	syscall.SyscallN(l.inner.vtbl.OMSetBlendFactor, l.this(), uintptr(unsafe.Pointer(&factor[0])))
}

func (l *GraphicsCommandList) SetStencilReference(ref uint32) {
	syscall.SyscallN(l.inner.vtbl.OMSetStencilRef, l.this(), uintptr(ref))
}

// SetRenderTargets binds render targets and an optional depth buffer.
// With singleRange the targets are len(rtvs) consecutive descriptors
// starting at rtvs[0].
func (l *GraphicsCommandList) SetRenderTargets(rtvs []CPUDescriptor, singleRange bool, dsv *CPUDescriptor) {
	var pDSV uintptr
	if dsv != nil {
		pDSV = uintptr(unsafe.Pointer(dsv))
	}
	syscall.SyscallN(l.inner.vtbl.OMSetRenderTargets, l.this(),
		uintptr(len(rtvs)), sliceAddr(rtvs), boolToUintptr(singleRange), pDSV)
	runtime.KeepAlive(rtvs)
	runtime.KeepAlive(dsv)
}

func (l *GraphicsCommandList) SetPipelineState(pso *PipelineState) {
	syscall.SyscallN(l.inner.vtbl.SetPipelineState, l.this(), pso.ptr())
}

func (l *GraphicsCommandList) SetDescriptorHeaps(heaps []*DescriptorHeap) {
	ptrs := make([]uintptr, len(heaps))
	for i, h := range heaps {
		ptrs[i] = uintptr(unsafe.Pointer(h.inner))
	}
	syscall.SyscallN(l.inner.vtbl.SetDescriptorHeaps, l.this(), uintptr(len(ptrs)), sliceAddr(ptrs))
	runtime.KeepAlive(ptrs)
}

func (l *GraphicsCommandList) SetComputeRootSignature(rs *RootSignature) {
	syscall.SyscallN(l.inner.vtbl.SetComputeRootSignature, l.this(), rs.ptr())
}

func (l *GraphicsCommandList) SetGraphicsRootSignature(rs *RootSignature) {
	syscall.SyscallN(l.inner.vtbl.SetGraphicsRootSignature, l.this(), rs.ptr())
}

func (l *GraphicsCommandList) SetComputeRootDescriptorTable(root uint32, base GPUDescriptor) {
	syscall.SyscallN(l.inner.vtbl.SetComputeRootDescriptorTable, l.this(), uintptr(root), uintptr(base.Ptr))
}

func (l *GraphicsCommandList) SetGraphicsRootDescriptorTable(root uint32, base GPUDescriptor) {
	syscall.SyscallN(l.inner.vtbl.SetGraphicsRootDescriptorTable, l.this(), uintptr(root), uintptr(base.Ptr))
}

func (l *GraphicsCommandList) SetComputeRootConstant(root, value, destOffset uint32) {
	syscall.SyscallN(l.inner.vtbl.SetComputeRoot32BitConstant, l.this(), uintptr(root), uintptr(value), uintptr(destOffset))
}

func (l *GraphicsCommandList) SetGraphicsRootConstant(root, value, destOffset uint32) {
	syscall.SyscallN(l.inner.vtbl.SetGraphicsRoot32BitConstant, l.this(), uintptr(root), uintptr(value), uintptr(destOffset))
}

func (l *GraphicsCommandList) SetComputeRootConstants(root uint32, values []uint32, destOffset uint32) {
	syscall.SyscallN(l.inner.vtbl.SetComputeRoot32BitConstants, l.this(),
		uintptr(root), uintptr(len(values)), sliceAddr(values), uintptr(destOffset))
	runtime.KeepAlive(values)
}

func (l *GraphicsCommandList) SetGraphicsRootConstants(root uint32, values []uint32, destOffset uint32) {
	syscall.SyscallN(l.inner.vtbl.SetGraphicsRoot32BitConstants, l.this(),
		uintptr(root), uintptr(len(values)), sliceAddr(values), uintptr(destOffset))
	runtime.KeepAlive(values)
}

func (l *GraphicsCommandList) SetComputeRootConstantBufferView(root uint32, location GPUAddress) {
	syscall.SyscallN(l.inner.vtbl.SetComputeRootConstantBufferView, l.this(), uintptr(root), uintptr(location))
}

func (l *GraphicsCommandList) SetGraphicsRootConstantBufferView(root uint32, location GPUAddress) {
	syscall.SyscallN(l.inner.vtbl.SetGraphicsRootConstantBufferView, l.this(), uintptr(root), uintptr(location))
}

func (l *GraphicsCommandList) SetComputeRootShaderResourceView(root uint32, location GPUAddress) {
	syscall.SyscallN(l.inner.vtbl.SetComputeRootShaderResourceView, l.this(), uintptr(root), uintptr(location))
}

func (l *GraphicsCommandList) SetGraphicsRootShaderResourceView(root uint32, location GPUAddress) {
	syscall.SyscallN(l.inner.vtbl.SetGraphicsRootShaderResourceView, l.this(), uintptr(root), uintptr(location))
}

func (l *GraphicsCommandList) SetComputeRootUnorderedAccessView(root uint32, location GPUAddress) {
	syscall.SyscallN(l.inner.vtbl.SetComputeRootUnorderedAccessView, l.this(), uintptr(root), uintptr(location))
}

func (l *GraphicsCommandList) SetGraphicsRootUnorderedAccessView(root uint32, location GPUAddress) {
	syscall.SyscallN(l.inner.vtbl.SetGraphicsRootUnorderedAccessView, l.this(), uintptr(root), uintptr(location))
}

func (l *GraphicsCommandList) ExecuteBundle(bundle *GraphicsCommandList) {
	syscall.SyscallN(l.inner.vtbl.ExecuteBundle, l.this(), bundle.this())
}

// DiscardResource marks res contents undefined. A nil region discards the
// whole resource. A region with an empty subresource range is rejected
// before anything is recorded.
func (l *GraphicsCommandList) DiscardResource(res *Resource, region *DiscardRegion) error {
	var p uintptr
	var layout *discardLayout
	if region != nil {
		var err error
		if layout, err = region.native(); err != nil {
			return err
		}
		p = uintptr(unsafe.Pointer(&layout.region))
	}
	syscall.SyscallN(l.inner.vtbl.DiscardResource, l.this(), res.ptr(), p)
	runtime.KeepAlive(layout)
	return nil
}

// ExecuteIndirect runs up to maxCount commands described by sig from args.
// countBuffer may be nil.
func (l *GraphicsCommandList) ExecuteIndirect(sig *CommandSignature, maxCount uint32, args *Resource, argsOffset uint64, countBuffer *Resource, countOffset uint64) {
	syscall.SyscallN(l.inner.vtbl.ExecuteIndirect, l.this(),
		uintptr(unsafe.Pointer(sig.inner)), uintptr(maxCount),
		args.ptr(), uintptr(argsOffset), countBuffer.ptr(), uintptr(countOffset))
}

func (l *GraphicsCommandList) CopyBufferRegion(dst *Resource, dstOffset uint64, src *Resource, srcOffset, size uint64) {
	syscall.SyscallN(l.inner.vtbl.CopyBufferRegion, l.this(),
		dst.ptr(), uintptr(dstOffset), src.ptr(), uintptr(srcOffset), uintptr(size))
}

func (l *GraphicsCommandList) CopyResource(dst, src *Resource) {
	syscall.SyscallN(l.inner.vtbl.CopyResource, l.this(), dst.ptr(), src.ptr())
}

func (l *GraphicsCommandList) BeginQuery(heap *QueryHeap, t QueryType, index uint32) {
	syscall.SyscallN(l.inner.vtbl.BeginQuery, l.this(), uintptr(unsafe.Pointer(heap.inner)), uintptr(t), uintptr(index))
}

func (l *GraphicsCommandList) EndQuery(heap *QueryHeap, t QueryType, index uint32) {
	syscall.SyscallN(l.inner.vtbl.EndQuery, l.this(), uintptr(unsafe.Pointer(heap.inner)), uintptr(t), uintptr(index))
}

// ResolveQueryData copies count results starting at start into dst at an
// 8-byte aligned offset.
func (l *GraphicsCommandList) ResolveQueryData(heap *QueryHeap, t QueryType, start, count uint32, dst *Resource, dstOffset uint64) {
	syscall.SyscallN(l.inner.vtbl.ResolveQueryData, l.this(), uintptr(unsafe.Pointer(heap.inner)),
		uintptr(t), uintptr(start), uintptr(count), dst.ptr(), uintptr(dstOffset))
}

func (c *CommandSignature) Release()     { release(&c.inner) }
func (c *CommandSignature) IsNull() bool { return c.inner == nil }

func (c *CommandSignature) Clone() *CommandSignature {
	return &CommandSignature{inner: addRef(c.inner)}
}
