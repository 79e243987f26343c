package dieseldx

// COM objects are a pointer to a vtable of method addresses. Each struct
// lists the vtable slots in declaration order, inherited slots first.

type iUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// iD3D12ObjectVtbl covers ID3D12Object and ID3D12DeviceChild.
type iD3D12ObjectVtbl struct {
	iUnknownVtbl
	GetPrivateData          uintptr
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	SetName                 uintptr
	GetDevice               uintptr
}

type iD3D12Device struct {
	vtbl *iD3D12DeviceVtbl
}

type iD3D12DeviceVtbl struct {
	iUnknownVtbl
	GetPrivateData                   uintptr
	SetPrivateData                   uintptr
	SetPrivateDataInterface          uintptr
	SetName                          uintptr
	GetNodeCount                     uintptr
	CreateCommandQueue               uintptr
	CreateCommandAllocator           uintptr
	CreateGraphicsPipelineState      uintptr
	CreateComputePipelineState       uintptr
	CreateCommandList                uintptr
	CheckFeatureSupport              uintptr
	CreateDescriptorHeap             uintptr
	GetDescriptorHandleIncrementSize uintptr
	CreateRootSignature              uintptr
	CreateConstantBufferView         uintptr
	CreateShaderResourceView         uintptr
	CreateUnorderedAccessView        uintptr
	CreateRenderTargetView           uintptr
	CreateDepthStencilView           uintptr
	CreateSampler                    uintptr
	CopyDescriptors                  uintptr
	CopyDescriptorsSimple            uintptr
	GetResourceAllocationInfo        uintptr
	GetCustomHeapProperties          uintptr
	CreateCommittedResource          uintptr
	CreateHeap                       uintptr
	CreatePlacedResource             uintptr
	CreateReservedResource           uintptr
	CreateSharedHandle               uintptr
	OpenSharedHandle                 uintptr
	OpenSharedHandleByName           uintptr
	MakeResident                     uintptr
	Evict                            uintptr
	CreateFence                      uintptr
	GetDeviceRemovedReason           uintptr
	GetCopyableFootprints            uintptr
	CreateQueryHeap                  uintptr
	SetStablePowerState              uintptr
	CreateCommandSignature           uintptr
	GetResourceTiling                uintptr
	GetAdapterLuid                   uintptr
}

type iD3D12Device2 struct {
	vtbl *iD3D12Device2Vtbl
}

type iD3D12Device2Vtbl struct {
	iD3D12DeviceVtbl
	CreatePipelineLibrary             uintptr
	SetEventOnMultipleFenceCompletion uintptr
	SetResidencyPriority              uintptr
	CreatePipelineState               uintptr
}

type iD3D12CommandQueue struct {
	vtbl *iD3D12CommandQueueVtbl
}

type iD3D12CommandQueueVtbl struct {
	iD3D12ObjectVtbl
	UpdateTileMappings    uintptr
	CopyTileMappings      uintptr
	ExecuteCommandLists   uintptr
	SetMarker             uintptr
	BeginEvent            uintptr
	EndEvent              uintptr
	Signal                uintptr
	Wait                  uintptr
	GetTimestampFrequency uintptr
	GetClockCalibration   uintptr
	GetDesc               uintptr
}

type iD3D12CommandAllocator struct {
	vtbl *iD3D12CommandAllocatorVtbl
}

type iD3D12CommandAllocatorVtbl struct {
	iD3D12ObjectVtbl
	Reset uintptr
}

type iD3D12GraphicsCommandList struct {
	vtbl *iD3D12GraphicsCommandListVtbl
}

type iD3D12GraphicsCommandListVtbl struct {
	iD3D12ObjectVtbl
	GetType                            uintptr
	Close                              uintptr
	Reset                              uintptr
	ClearState                         uintptr
	DrawInstanced                      uintptr
	DrawIndexedInstanced               uintptr
	Dispatch                           uintptr
	CopyBufferRegion                   uintptr
	CopyTextureRegion                  uintptr
	CopyResource                       uintptr
	CopyTiles                          uintptr
	ResolveSubresource                 uintptr
	IASetPrimitiveTopology             uintptr
	RSSetViewports                     uintptr
	RSSetScissorRects                  uintptr
	OMSetBlendFactor                   uintptr
	OMSetStencilRef                    uintptr
	SetPipelineState                   uintptr
	ResourceBarrier                    uintptr
	ExecuteBundle                      uintptr
	SetDescriptorHeaps                 uintptr
	SetComputeRootSignature            uintptr
	SetGraphicsRootSignature           uintptr
	SetComputeRootDescriptorTable      uintptr
	SetGraphicsRootDescriptorTable     uintptr
	SetComputeRoot32BitConstant        uintptr
	SetGraphicsRoot32BitConstant       uintptr
	SetComputeRoot32BitConstants       uintptr
	SetGraphicsRoot32BitConstants      uintptr
	SetComputeRootConstantBufferView   uintptr
	SetGraphicsRootConstantBufferView  uintptr
	SetComputeRootShaderResourceView   uintptr
	SetGraphicsRootShaderResourceView  uintptr
	SetComputeRootUnorderedAccessView  uintptr
	SetGraphicsRootUnorderedAccessView uintptr
	IASetIndexBuffer                   uintptr
	IASetVertexBuffers                 uintptr
	SOSetTargets                       uintptr
	OMSetRenderTargets                 uintptr
	ClearDepthStencilView              uintptr
	ClearRenderTargetView              uintptr
	ClearUnorderedAccessViewUint       uintptr
	ClearUnorderedAccessViewFloat      uintptr
	DiscardResource                    uintptr
	BeginQuery                         uintptr
	EndQuery                           uintptr
	ResolveQueryData                   uintptr
	SetPredication                     uintptr
	SetMarker                          uintptr
	BeginEvent                         uintptr
	EndEvent                           uintptr
	ExecuteIndirect                    uintptr
}

type iD3D12DescriptorHeap struct {
	vtbl *iD3D12DescriptorHeapVtbl
}

type iD3D12DescriptorHeapVtbl struct {
	iD3D12ObjectVtbl
	GetDesc                            uintptr
	GetCPUDescriptorHandleForHeapStart uintptr
	GetGPUDescriptorHandleForHeapStart uintptr
}

type iD3D12Resource struct {
	vtbl *iD3D12ResourceVtbl
}

type iD3D12ResourceVtbl struct {
	iD3D12ObjectVtbl
	Map                  uintptr
	Unmap                uintptr
	GetDesc              uintptr
	GetGPUVirtualAddress uintptr
	WriteToSubresource   uintptr
	ReadFromSubresource  uintptr
	GetHeapProperties    uintptr
}

type iD3D12Fence struct {
	vtbl *iD3D12FenceVtbl
}

type iD3D12FenceVtbl struct {
	iD3D12ObjectVtbl
	GetCompletedValue    uintptr
	SetEventOnCompletion uintptr
	Signal               uintptr
}

type iD3D12Heap struct {
	vtbl *iD3D12HeapVtbl
}

type iD3D12HeapVtbl struct {
	iD3D12ObjectVtbl
	GetDesc uintptr
}

type iD3D12PipelineState struct {
	vtbl *iD3D12PipelineStateVtbl
}

type iD3D12PipelineStateVtbl struct {
	iD3D12ObjectVtbl
	GetCachedBlob uintptr
}

// Root signatures, query heaps and command signatures add nothing past
// ID3D12DeviceChild.

type iD3D12RootSignature struct {
	vtbl *iD3D12ObjectVtbl
}

type iD3D12QueryHeap struct {
	vtbl *iD3D12ObjectVtbl
}

type iD3D12CommandSignature struct {
	vtbl *iD3D12ObjectVtbl
}

type iD3D12Debug struct {
	vtbl *iD3D12DebugVtbl
}

type iD3D12DebugVtbl struct {
	iUnknownVtbl
	EnableDebugLayer uintptr
}

type iD3DBlob struct {
	vtbl *iD3DBlobVtbl
}

type iD3DBlobVtbl struct {
	iUnknownVtbl
	GetBufferPointer uintptr
	GetBufferSize    uintptr
}

type iDXGIObjectVtbl struct {
	iUnknownVtbl
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	GetPrivateData          uintptr
	GetParent               uintptr
}

type iDXGIFactory4 struct {
	vtbl *iDXGIFactory4Vtbl
}

type iDXGIFactory4Vtbl struct {
	iDXGIObjectVtbl
	EnumAdapters                  uintptr
	MakeWindowAssociation         uintptr
	GetWindowAssociation          uintptr
	CreateSwapChain               uintptr
	CreateSoftwareAdapter         uintptr
	EnumAdapters1                 uintptr
	IsCurrent                     uintptr
	IsWindowedStereoEnabled       uintptr
	CreateSwapChainForHwnd        uintptr
	CreateSwapChainForCoreWindow  uintptr
	GetSharedResourceAdapterLuid  uintptr
	RegisterStereoStatusWindow    uintptr
	RegisterStereoStatusEvent     uintptr
	UnregisterStereoStatus        uintptr
	RegisterOcclusionStatusWindow uintptr
	RegisterOcclusionStatusEvent  uintptr
	UnregisterOcclusionStatus     uintptr
	CreateSwapChainForComposition uintptr
	GetCreationFlags              uintptr
	EnumAdapterByLuid             uintptr
	EnumWarpAdapter               uintptr
}

type iDXGIFactoryMedia struct {
	vtbl *iDXGIFactoryMediaVtbl
}

type iDXGIFactoryMediaVtbl struct {
	iUnknownVtbl
	CreateSwapChainForCompositionSurfaceHandle       uintptr
	CreateDecodeSwapChainForCompositionSurfaceHandle uintptr
}

type iDXGIAdapter1 struct {
	vtbl *iDXGIAdapter1Vtbl
}

type iDXGIAdapter1Vtbl struct {
	iDXGIObjectVtbl
	EnumOutputs           uintptr
	GetDesc               uintptr
	CheckInterfaceSupport uintptr
	GetDesc1              uintptr
}

// iDXGISwapChain3 also serves swap chains created through the older
// factory methods once queried up to IDXGISwapChain3.
type iDXGISwapChain3 struct {
	vtbl *iDXGISwapChain3Vtbl
}

type iDXGISwapChain3Vtbl struct {
	iDXGIObjectVtbl
	GetDevice                     uintptr
	Present                       uintptr
	GetBuffer                     uintptr
	SetFullscreenState            uintptr
	GetFullscreenState            uintptr
	GetDesc                       uintptr
	ResizeBuffers                 uintptr
	ResizeTarget                  uintptr
	GetContainingOutput           uintptr
	GetFrameStatistics            uintptr
	GetLastPresentCount           uintptr
	GetDesc1                      uintptr
	GetFullscreenDesc             uintptr
	GetHwnd                       uintptr
	GetCoreWindow                 uintptr
	Present1                      uintptr
	IsTemporaryMonoSupported      uintptr
	GetRestrictToOutput           uintptr
	SetBackgroundColor            uintptr
	GetBackgroundColor            uintptr
	SetRotation                   uintptr
	GetRotation                   uintptr
	SetSourceSize                 uintptr
	GetSourceSize                 uintptr
	SetMaximumFrameLatency        uintptr
	GetMaximumFrameLatency        uintptr
	GetFrameLatencyWaitableObject uintptr
	SetMatrixTransform            uintptr
	GetMatrixTransform            uintptr
	GetCurrentBackBufferIndex     uintptr
	CheckColorSpaceSupport        uintptr
	SetColorSpace1                uintptr
	ResizeBuffers1                uintptr
}

type iDXGIInfoQueue struct {
	vtbl *iDXGIInfoQueueVtbl
}

// iDXGIInfoQueueVtbl lists the leading slots only; later ones are unused.
type iDXGIInfoQueueVtbl struct {
	iUnknownVtbl
	SetMessageCountLimit                          uintptr
	ClearStoredMessages                           uintptr
	GetMessage                                    uintptr
	GetNumStoredMessagesAllowedByRetrievalFilters uintptr
	GetNumStoredMessages                          uintptr
	GetNumMessagesDiscardedByMessageCountLimit    uintptr
	GetMessageCountLimit                          uintptr
}
