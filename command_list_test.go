package dieseldx

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeResource() *Resource {
	return &Resource{inner: &iD3D12Resource{}}
}

func TestTransitionBarrier(t *testing.T) {
	res := fakeResource()
	b := TransitionBarrier(res, 3, ResourceStatePresent, ResourceStateRenderTarget, BarrierFlagBeginOnly)

	assert.Equal(t, BarrierTransition, b.Kind())
	assert.Same(t, res, b.Resource())
	assert.Equal(t, BarrierFlagBeginOnly, b.Flags())

	n := b.native()
	assert.Equal(t, _D3D12_RESOURCE_BARRIER_TYPE_TRANSITION, n.Type)
	assert.Equal(t, BarrierFlagBeginOnly, n.Flags)
	tr := n.Transition()
	assert.Equal(t, uintptr(unsafe.Pointer(res.inner)), tr.pResource)
	assert.Equal(t, uint32(3), tr.Subresource)
	assert.Equal(t, ResourceStatePresent, tr.StateBefore)
	assert.Equal(t, ResourceStateRenderTarget, tr.StateAfter)
}

func TestAliasingBarrier(t *testing.T) {
	before, after := fakeResource(), fakeResource()
	n := AliasingBarrier(before, after, BarrierFlagNone).native()

	assert.Equal(t, _D3D12_RESOURCE_BARRIER_TYPE_ALIASING, n.Type)
	assert.Equal(t, before.ptr(), n.Aliasing().pResourceBefore)
	assert.Equal(t, after.ptr(), n.Aliasing().pResourceAfter)

	n = AliasingBarrier(nil, after, BarrierFlagNone).native()
	assert.Zero(t, n.Aliasing().pResourceBefore)
}

func TestUAVBarrier(t *testing.T) {
	res := fakeResource()
	b := UAVBarrier(res, BarrierFlagEndOnly)
	assert.Equal(t, BarrierUAV, b.Kind())

	n := b.native()
	assert.Equal(t, _D3D12_RESOURCE_BARRIER_TYPE_UAV, n.Type)
	assert.Equal(t, res.ptr(), n.UAV().pResource)

	assert.Zero(t, UAVBarrier(nil, BarrierFlagNone).native().UAV().pResource)
}

func TestIndirectArguments(t *testing.T) {
	cases := []struct {
		arg  IndirectArgument
		kind _D3D12_INDIRECT_ARGUMENT_TYPE
		args [3]uint32
	}{
		{IndirectDraw(), _D3D12_INDIRECT_ARGUMENT_TYPE_DRAW, [3]uint32{}},
		{IndirectDrawIndexed(), _D3D12_INDIRECT_ARGUMENT_TYPE_DRAW_INDEXED, [3]uint32{}},
		{IndirectDispatch(), _D3D12_INDIRECT_ARGUMENT_TYPE_DISPATCH, [3]uint32{}},
		{IndirectVertexBuffer(2), _D3D12_INDIRECT_ARGUMENT_TYPE_VERTEX_BUFFER_VIEW, [3]uint32{2}},
		{IndirectIndexBuffer(), _D3D12_INDIRECT_ARGUMENT_TYPE_INDEX_BUFFER_VIEW, [3]uint32{}},
		{IndirectConstant(1, 4, 3), _D3D12_INDIRECT_ARGUMENT_TYPE_CONSTANT, [3]uint32{1, 4, 3}},
		{IndirectCBV(5), _D3D12_INDIRECT_ARGUMENT_TYPE_CONSTANT_BUFFER_VIEW, [3]uint32{5}},
		{IndirectSRV(6), _D3D12_INDIRECT_ARGUMENT_TYPE_SHADER_RESOURCE_VIEW, [3]uint32{6}},
		{IndirectUAV(7), _D3D12_INDIRECT_ARGUMENT_TYPE_UNORDERED_ACCESS_VIEW, [3]uint32{7}},
	}
	for _, c := range cases {
		n := c.arg.native()
		assert.Equal(t, c.kind, n.Type)
		assert.Equal(t, c.args, n.union)
	}
}

func TestDiscardRegion(t *testing.T) {
	r := &DiscardRegion{
		Rects:        []Rect{{0, 0, 16, 16}, {16, 16, 32, 32}},
		Subresources: SubresourceRange{Begin: 2, End: 5},
	}
	l, err := r.native()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), l.region.NumRects)
	assert.Equal(t, uint32(2), l.region.FirstSubresource)
	assert.Equal(t, uint32(3), l.region.NumSubresources)
	require.Len(t, l.rects, 2)
	assert.Equal(t, sliceAddr(l.rects), l.region.pRects)
	assert.Equal(t, int32(32), l.rects[1].Right)
}

func TestDiscardRegionRejectsEmptyRange(t *testing.T) {
	for _, sr := range []SubresourceRange{{Begin: 4, End: 4}, {Begin: 5, End: 1}} {
		_, err := (&DiscardRegion{Subresources: sr}).native()
		assert.ErrorIs(t, err, ErrEmptySubresourceRange)
	}
}

func TestDiscardRegionNoRects(t *testing.T) {
	l, err := (&DiscardRegion{Subresources: SubresourceRange{Begin: 0, End: 1}}).native()
	require.NoError(t, err)
	assert.Zero(t, l.region.NumRects)
	assert.Zero(t, l.region.pRects)
}

func TestDescriptorOffset(t *testing.T) {
	cpu := CPUDescriptor{Ptr: 0x1000}
	assert.Equal(t, uintptr(0x1000+3*32), cpu.Offset(3, 32).Ptr)
	assert.Equal(t, uintptr(0x1000-32), cpu.Offset(-1, 32).Ptr)

	gpu := GPUDescriptor{Ptr: 0x10000}
	assert.Equal(t, uint64(0x10000+2*64), gpu.Offset(2, 64).Ptr)
}

func TestRangeNative(t *testing.T) {
	var r *Range
	assert.Nil(t, r.native())

	n := (&Range{Begin: 16, End: 64}).native()
	require.NotNil(t, n)
	assert.Equal(t, uintptr(16), n.Begin)
	assert.Equal(t, uintptr(64), n.End)
}

func TestClearValue(t *testing.T) {
	var nilClear *ClearValue
	assert.Nil(t, nilClear.native())

	color := (&ClearValue{Format: FormatR8G8B8A8Unorm, Color: [4]float32{0.1, 0.2, 0.3, 1}}).native()
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, color.union)

	depth := (&ClearValue{Format: FormatD24UnormS8Uint, Depth: 1, Stencil: 7, Color: [4]float32{9, 9, 9, 9}}).native()
	assert.Equal(t, float32(1), depth.union[0])
	assert.Equal(t, uint8(7), *(*uint8)(unsafe.Pointer(&depth.union[1])))
}
