package dieseldx_test

import (
	"errors"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dx "github.com/andewx/dieseldx"
	"github.com/andewx/dieseldx/display"
)

type warp struct {
	factory *dx.Factory
	device  *dx.Device
	queue   *dx.CommandQueue
}

// newWarp creates a device on the software adapter. Machines without
// D3D12 skip.
func newWarp(t *testing.T) *warp {
	t.Helper()
	if err := dx.Load(); err != nil {
		t.Skipf("D3D12 unavailable: %v", err)
	}
	factory, err := dx.CreateFactory4(dx.FactoryCreationNone)
	if err != nil {
		t.Skipf("DXGI factory unavailable: %v", err)
	}
	t.Cleanup(factory.Release)

	adapter, err := factory.EnumWarpAdapter()
	if err != nil {
		t.Skipf("WARP adapter unavailable: %v", err)
	}
	defer adapter.Release()

	device, err := dx.CreateDevice(adapter, dx.FeatureLevel11_0)
	if err != nil {
		t.Skipf("WARP device unavailable: %v", err)
	}
	t.Cleanup(device.Release)

	queue, err := device.CreateCommandQueue(dx.CmdListDirect, dx.PriorityNormal, dx.CommandQueueFlagNone, 0)
	require.NoError(t, err)
	t.Cleanup(queue.Release)

	return &warp{factory: factory, device: device, queue: queue}
}

func TestFenceSignalAndWait(t *testing.T) {
	w := newWarp(t)

	fence, err := w.device.CreateFence(0)
	require.NoError(t, err)
	defer fence.Release()

	ev, err := dx.CreateEvent(false, false)
	require.NoError(t, err)
	defer ev.Close()

	require.NoError(t, w.queue.Signal(fence, 1))
	require.NoError(t, fence.SetEventOnCompletion(1, ev))
	res, err := ev.Wait(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, dx.WaitSignaled, res)
	assert.GreaterOrEqual(t, fence.Value(), uint64(1))

	require.NoError(t, fence.SetEventOnCompletion(100, ev))
	res, err = ev.Wait(10 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, dx.WaitTimeout, res)

	require.NoError(t, fence.Signal(100))
	assert.Equal(t, uint64(100), fence.Value())
}

func TestFenceManagerFlush(t *testing.T) {
	w := newWarp(t)

	fm, err := dx.NewFenceManager(w.device)
	require.NoError(t, err)
	defer fm.Destroy()

	require.NoError(t, fm.Flush(w.queue, 5*time.Second))
	require.NoError(t, fm.Flush(w.queue, 5*time.Second))
	assert.Equal(t, uint64(2), fm.Completed())

	err = fm.WaitFor(50, 10*time.Millisecond)
	hr, ok := dx.AsHRESULT(err)
	require.True(t, ok)
	assert.Equal(t, dx.DXGI_ERROR_WAIT_TIMEOUT, hr)
}

func TestSerializeRootSignature(t *testing.T) {
	w := newWarp(t)

	blob, err := dx.SerializeRootSignature(dx.RootSignatureV1_0, nil, nil, dx.RootSignatureFlagNone)
	require.NoError(t, err)
	defer blob.Release()
	assert.NotEmpty(t, blob.Bytes())

	rs, err := w.device.CreateRootSignature(blob, 0)
	require.NoError(t, err)
	rs.Release()

	params := []dx.RootParameter{
		dx.ConstantsParameter(dx.ShaderVisibilityAll, dx.Binding{}, 4),
		dx.DescriptorTableParameter(dx.ShaderVisibilityPS,
			dx.NewDescriptorRange(dx.DescriptorRangeSRV, 1, dx.Binding{}, 0)),
	}
	blob2, err := dx.SerializeRootSignature(dx.RootSignatureV1_0, params, nil, dx.RootSignatureFlagAllowInputAssemblerInputLayout)
	require.NoError(t, err)
	blob2.Release()
}

func TestSerializeRootSignatureDiagnostic(t *testing.T) {
	newWarp(t)

	// Samplers may not share a table with other descriptor types.
	mixed := dx.DescriptorTableParameter(dx.ShaderVisibilityAll,
		dx.NewDescriptorRange(dx.DescriptorRangeSRV, 1, dx.Binding{}, 0),
		dx.NewDescriptorRange(dx.DescriptorRangeSampler, 1, dx.Binding{}, dx.DescriptorRangeOffsetAppend),
	)
	_, err := dx.SerializeRootSignature(dx.RootSignatureV1_0, []dx.RootParameter{mixed}, nil, dx.RootSignatureFlagNone)
	var diag *dx.DiagnosticError
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, "D3D12SerializeRootSignature", diag.Op)
	assert.True(t, diag.HR.Failed())
}

const computeSource = `
RWByteAddressBuffer output : register(u0);

[numthreads(1, 1, 1)]
void main(uint3 id : SV_DispatchThreadID)
{
	output.Store(id.x * 4, id.x);
}
`

func TestComputePipeline(t *testing.T) {
	w := newWarp(t)

	code, err := dx.CompileShader([]byte(computeSource), dx.TargetCS50, "main", dx.CompileOptimizationLevel3)
	var diag *dx.DiagnosticError
	if err != nil && !errors.As(err, &diag) {
		t.Skipf("shader compiler unavailable: %v", err)
	}
	require.NoError(t, err)
	defer code.Release()

	blob, err := dx.SerializeRootSignature(dx.RootSignatureV1_0,
		[]dx.RootParameter{dx.UAVParameter(dx.ShaderVisibilityAll, dx.Binding{})}, nil, dx.RootSignatureFlagNone)
	require.NoError(t, err)
	defer blob.Release()
	rs, err := w.device.CreateRootSignature(blob, 0)
	require.NoError(t, err)
	defer rs.Release()

	pso, err := w.device.CreateComputePipelineState(rs, dx.ShaderFromBlob(code), 0, dx.CachedPSO{}, dx.PipelineStateFlagNone)
	require.NoError(t, err)
	defer pso.Release()

	cached, err := pso.CachedBlob()
	require.NoError(t, err)
	defer cached.Release()
	assert.NotEmpty(t, cached.Bytes())

	var stream dx.PipelineStream
	stream.RootSignature(rs)
	stream.Shader(dx.SubobjectCS, dx.ShaderFromBlob(code))
	pso2, err := w.device.CreatePipelineStateFromStream(&stream)
	require.NoError(t, err)
	pso2.Release()

	buf, err := w.device.CreateCommittedResource(
		dx.NewHeapProperties(dx.HeapTypeDefault, dx.CpuPageUnknown, dx.MemoryPoolUnknown, 0, 0),
		dx.HeapFlagNone, dx.BufferDesc(256, dx.ResourceFlagAllowUnorderedAccess),
		dx.ResourceStateUnorderedAccess, nil)
	require.NoError(t, err)
	defer buf.Release()
	assert.NotZero(t, buf.GPUVirtualAddress())

	frames, err := dx.NewFrameContext(w.device, w.queue, 1, 5*time.Second)
	require.NoError(t, err)
	defer frames.Destroy()

	require.NoError(t, frames.BeginFrame(0))
	list, err := frames.NewCommandList(pso)
	require.NoError(t, err)
	list.SetComputeRootSignature(rs)
	list.SetComputeRootUnorderedAccessView(0, buf.GPUVirtualAddress())
	list.Dispatch(dx.WorkGroupCount{64, 1, 1})
	list.ResourceBarrier([]dx.ResourceBarrier{dx.UAVBarrier(buf, dx.BarrierFlagNone)})
	require.NoError(t, list.Close())
	require.NoError(t, frames.Submit(list))
	require.NoError(t, frames.Wait())
	assert.NoError(t, w.device.RemovedReason())
}

func TestCompileShaderDiagnostic(t *testing.T) {
	newWarp(t)

	_, err := dx.CompileShader([]byte("void main( {"), dx.TargetCS50, "main", 0)
	require.Error(t, err)
	var diag *dx.DiagnosticError
	if !errors.As(err, &diag) {
		t.Skipf("shader compiler unavailable: %v", err)
	}
	assert.True(t, diag.HR.Failed())
	assert.NotEmpty(t, diag.Message)
}

func TestUploadBufferMap(t *testing.T) {
	w := newWarp(t)

	buf, err := w.device.CreateCommittedResource(
		dx.NewHeapProperties(dx.HeapTypeUpload, dx.CpuPageUnknown, dx.MemoryPoolUnknown, 0, 0),
		dx.HeapFlagNone, dx.BufferDesc(64, dx.ResourceFlagNone),
		dx.ResourceStateGenericRead, nil)
	require.NoError(t, err)
	defer buf.Release()
	require.NoError(t, buf.SetName("upload"))

	p, err := buf.Map(0, &dx.Range{})
	require.NoError(t, err)
	data := unsafe.Slice((*byte)(p), 64)
	for i := range data {
		data[i] = byte(i)
	}
	buf.Unmap(0, nil)
}

func TestSwapChainBuffers(t *testing.T) {
	w := newWarp(t)

	if err := display.Init(); err != nil {
		t.Skipf("no display: %v", err)
	}
	defer display.Terminate()
	win, err := display.NewWindow("dieseldx test", 64, 64, false)
	if err != nil {
		t.Skipf("no window: %v", err)
	}
	defer win.Destroy()

	desc := dx.DefaultSwapchainDesc(64, 64)
	sc, err := w.factory.CreateSwapChainForHwnd(w.queue, win.HWND(), &desc)
	require.NoError(t, err)
	defer sc.Release()

	got, err := sc.Desc()
	require.NoError(t, err)
	assert.Equal(t, desc.BufferCount, got.BufferCount)
	assert.Equal(t, desc.SwapEffect, got.SwapEffect)

	for i := uint32(0); i < desc.BufferCount; i++ {
		b, err := sc.Buffer(i)
		require.NoError(t, err, "buffer %d", i)
		b.Release()
	}
	_, err = sc.Buffer(desc.BufferCount)
	assert.Error(t, err)

	assert.Less(t, sc.CurrentBackBufferIndex(), desc.BufferCount)

	require.NoError(t, sc.ResizeBuffers(0, 32, 48, dx.FormatUnknown, dx.SwapChainFlagNone))
	got, err = sc.Desc()
	require.NoError(t, err)
	assert.Equal(t, uint32(32), got.Width)
	assert.Equal(t, uint32(48), got.Height)
}

func TestDepthStencilAndSampler(t *testing.T) {
	w := newWarp(t)

	depth, err := w.device.CreateCommittedResource(
		dx.NewHeapProperties(dx.HeapTypeDefault, dx.CpuPageUnknown, dx.MemoryPoolUnknown, 0, 0),
		dx.HeapFlagNone,
		dx.Texture2DDesc(dx.FormatD32Float, 64, 64, 1, 1, dx.SampleDesc{Count: 1}, dx.ResourceFlagAllowDepthStencil),
		dx.ResourceStateDepthWrite, &dx.ClearValue{Format: dx.FormatD32Float, Depth: 1})
	require.NoError(t, err)
	defer depth.Release()

	dsvHeap, err := w.device.CreateDescriptorHeap(1, dx.DescriptorHeapDsv, dx.DescriptorHeapFlagNone, 0)
	require.NoError(t, err)
	defer dsvHeap.Release()
	dsv := dsvHeap.StartCPU()
	w.device.CreateDepthStencilView(depth, dx.DepthStencilViewTexture2D(dx.FormatD32Float, dx.DSVFlagNone, 0), dsv)

	samplers, err := w.device.CreateDescriptorHeap(1, dx.DescriptorHeapSampler, dx.DescriptorHeapFlagShaderVisible, 0)
	require.NoError(t, err)
	defer samplers.Release()
	w.device.CreateSampler(samplers.StartCPU(), dx.SamplerDesc{
		Filter:      dx.NewFilter(dx.FilterLinear, dx.FilterLinear, dx.FilterPoint, dx.FilterReductionStandard),
		AddressMode: [3]dx.TextureAddressMode{dx.AddressWrap, dx.AddressWrap, dx.AddressWrap},
		Comparison:  dx.ComparisonNever,
		MaxLOD:      1000,
	})

	alloc, err := w.device.CreateCommandAllocator(dx.CmdListDirect)
	require.NoError(t, err)
	defer alloc.Release()
	list, err := w.device.CreateGraphicsCommandList(dx.CmdListDirect, alloc, nil, 0)
	require.NoError(t, err)
	defer list.Release()

	list.SetDescriptorHeaps([]*dx.DescriptorHeap{samplers})
	list.ClearDepthStencilView(dsv, dx.ClearDepth, 1, 0, nil)
	require.NoError(t, list.Close())

	fences, err := dx.NewFenceManager(w.device)
	require.NoError(t, err)
	defer fences.Destroy()
	w.queue.ExecuteCommandLists(list)
	require.NoError(t, fences.Flush(w.queue, 5*time.Second))
	assert.NoError(t, w.device.RemovedReason())
}

func TestConstantBuffer(t *testing.T) {
	w := newWarp(t)

	_, err := dx.NewConstantBuffer(w.device, 0, 2)
	assert.Error(t, err)

	cb, err := dx.NewConstantBuffer(w.device, 48, 3)
	require.NoError(t, err)
	defer cb.Destroy()

	assert.Equal(t, uint64(dx.ConstantBufferAlignment), cb.Stride())
	assert.Equal(t, cb.Address(0)+dx.ConstantBufferAlignment, cb.Address(1))

	require.NoError(t, cb.Write(2, make([]byte, 48)))
	assert.Error(t, cb.Write(3, nil))
	assert.Error(t, cb.Write(0, make([]byte, 257)))
}

func TestQueueDesc(t *testing.T) {
	w := newWarp(t)

	desc := w.queue.Desc()
	assert.Equal(t, dx.CmdListDirect, desc.Type)
	assert.Equal(t, dx.PriorityNormal, desc.Priority)

	freq, err := w.queue.TimestampFrequency()
	require.NoError(t, err)
	assert.NotZero(t, freq)
}

func TestHeapDesc(t *testing.T) {
	w := newWarp(t)

	props := dx.NewHeapProperties(dx.HeapTypeDefault, dx.CpuPageUnknown, dx.MemoryPoolUnknown, 1, 1)
	heap, err := w.device.CreateHeap(1<<16, props, 0, dx.HeapFlagAllowOnlyBuffers)
	require.NoError(t, err)
	defer heap.Release()

	desc := heap.Desc()
	assert.Equal(t, uint64(1<<16), desc.Size)
	assert.Equal(t, dx.HeapTypeDefault, desc.Properties.Type)
	assert.Equal(t, dx.HeapFlagAllowOnlyBuffers, desc.Flags&dx.HeapFlagAllowOnlyBuffers)
}

func TestQueryHeapAndCommandSignature(t *testing.T) {
	w := newWarp(t)

	qh, err := w.device.CreateQueryHeap(dx.QueryHeapTimestamp, 4, 0)
	require.NoError(t, err)
	defer qh.Release()

	sig, err := w.device.CreateCommandSignature(nil, []dx.IndirectArgument{dx.IndirectDispatch()}, 12, 0)
	require.NoError(t, err)
	defer sig.Release()

	_, err = w.device.CreateCommandSignature(nil, []dx.IndirectArgument{dx.IndirectCBV(0)}, 16, 0)
	assert.Error(t, err, "root arguments need a root signature")
}

func TestInfoQueue(t *testing.T) {
	if err := dx.Load(); err != nil {
		t.Skipf("D3D12 unavailable: %v", err)
	}
	q, err := dx.GetDebugInfoQueue()
	if err != nil {
		t.Skipf("DXGI debug layer unavailable: %v", err)
	}
	defer q.Release()

	require.NoError(t, q.SetMessageCountLimit(dx.DebugAll, 64))
	assert.Equal(t, uint64(64), q.MessageCountLimit(dx.DebugAll))
	q.ClearStoredMessages(dx.DebugAll)
	assert.Zero(t, q.MessageCount(dx.DebugAll))
}
