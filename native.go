package dieseldx

import "unsafe"

// Native layouts for D3D12 and DXGI. Field order and padding follow the
// Windows SDK headers for 64-bit targets; pointers are carried as uintptr.

type _D3D_FEATURE_LEVEL int32

const (
	_D3D_FEATURE_LEVEL_9_1  _D3D_FEATURE_LEVEL = 0x9100
	_D3D_FEATURE_LEVEL_9_2  _D3D_FEATURE_LEVEL = 0x9200
	_D3D_FEATURE_LEVEL_9_3  _D3D_FEATURE_LEVEL = 0x9300
	_D3D_FEATURE_LEVEL_10_0 _D3D_FEATURE_LEVEL = 0xa000
	_D3D_FEATURE_LEVEL_10_1 _D3D_FEATURE_LEVEL = 0xa100
	_D3D_FEATURE_LEVEL_11_0 _D3D_FEATURE_LEVEL = 0xb000
	_D3D_FEATURE_LEVEL_11_1 _D3D_FEATURE_LEVEL = 0xb100
	_D3D_FEATURE_LEVEL_12_0 _D3D_FEATURE_LEVEL = 0xc000
	_D3D_FEATURE_LEVEL_12_1 _D3D_FEATURE_LEVEL = 0xc100
)

type _D3D12_COMMAND_LIST_TYPE int32

const (
	_D3D12_COMMAND_LIST_TYPE_DIRECT  _D3D12_COMMAND_LIST_TYPE = 0
	_D3D12_COMMAND_LIST_TYPE_BUNDLE  _D3D12_COMMAND_LIST_TYPE = 1
	_D3D12_COMMAND_LIST_TYPE_COMPUTE _D3D12_COMMAND_LIST_TYPE = 2
	_D3D12_COMMAND_LIST_TYPE_COPY    _D3D12_COMMAND_LIST_TYPE = 3
)

type _D3D12_COMMAND_QUEUE_PRIORITY int32

const (
	_D3D12_COMMAND_QUEUE_PRIORITY_NORMAL          _D3D12_COMMAND_QUEUE_PRIORITY = 0
	_D3D12_COMMAND_QUEUE_PRIORITY_HIGH            _D3D12_COMMAND_QUEUE_PRIORITY = 100
	_D3D12_COMMAND_QUEUE_PRIORITY_GLOBAL_REALTIME _D3D12_COMMAND_QUEUE_PRIORITY = 10000
)

type _D3D12_COMMAND_QUEUE_DESC struct {
	Type     _D3D12_COMMAND_LIST_TYPE
	Priority _D3D12_COMMAND_QUEUE_PRIORITY
	Flags    uint32
	NodeMask uint32
}

type _D3D12_DESCRIPTOR_HEAP_TYPE int32

const (
	_D3D12_DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV _D3D12_DESCRIPTOR_HEAP_TYPE = 0
	_D3D12_DESCRIPTOR_HEAP_TYPE_SAMPLER     _D3D12_DESCRIPTOR_HEAP_TYPE = 1
	_D3D12_DESCRIPTOR_HEAP_TYPE_RTV         _D3D12_DESCRIPTOR_HEAP_TYPE = 2
	_D3D12_DESCRIPTOR_HEAP_TYPE_DSV         _D3D12_DESCRIPTOR_HEAP_TYPE = 3
)

type _D3D12_DESCRIPTOR_HEAP_DESC struct {
	Type           _D3D12_DESCRIPTOR_HEAP_TYPE
	NumDescriptors uint32
	Flags          uint32
	NodeMask       uint32
}

type _D3D12_HEAP_TYPE int32

const (
	_D3D12_HEAP_TYPE_DEFAULT  _D3D12_HEAP_TYPE = 1
	_D3D12_HEAP_TYPE_UPLOAD   _D3D12_HEAP_TYPE = 2
	_D3D12_HEAP_TYPE_READBACK _D3D12_HEAP_TYPE = 3
	_D3D12_HEAP_TYPE_CUSTOM   _D3D12_HEAP_TYPE = 4
)

type _D3D12_CPU_PAGE_PROPERTY int32

const (
	_D3D12_CPU_PAGE_PROPERTY_UNKNOWN       _D3D12_CPU_PAGE_PROPERTY = 0
	_D3D12_CPU_PAGE_PROPERTY_NOT_AVAILABLE _D3D12_CPU_PAGE_PROPERTY = 1
	_D3D12_CPU_PAGE_PROPERTY_WRITE_COMBINE _D3D12_CPU_PAGE_PROPERTY = 2
	_D3D12_CPU_PAGE_PROPERTY_WRITE_BACK    _D3D12_CPU_PAGE_PROPERTY = 3
)

type _D3D12_MEMORY_POOL int32

const (
	_D3D12_MEMORY_POOL_UNKNOWN _D3D12_MEMORY_POOL = 0
	_D3D12_MEMORY_POOL_L0      _D3D12_MEMORY_POOL = 1
	_D3D12_MEMORY_POOL_L1      _D3D12_MEMORY_POOL = 2
)

type _D3D12_HEAP_PROPERTIES struct {
	Type                 _D3D12_HEAP_TYPE
	CPUPageProperty      _D3D12_CPU_PAGE_PROPERTY
	MemoryPoolPreference _D3D12_MEMORY_POOL
	CreationNodeMask     uint32
	VisibleNodeMask      uint32
}

type _D3D12_HEAP_DESC struct {
	SizeInBytes uint64
	Properties  _D3D12_HEAP_PROPERTIES
	Alignment   uint64
	Flags       uint32
}

type _DXGI_SAMPLE_DESC struct {
	Count   uint32
	Quality uint32
}

const (
	_D3D12_RESOURCE_DIMENSION_BUFFER    = 1
	_D3D12_RESOURCE_DIMENSION_TEXTURE2D = 3

	_D3D12_TEXTURE_LAYOUT_UNKNOWN   = 0
	_D3D12_TEXTURE_LAYOUT_ROW_MAJOR = 1
)

type _D3D12_RESOURCE_DESC struct {
	Dimension        int32
	Alignment        uint64
	Width            uint64
	Height           uint32
	DepthOrArraySize uint16
	MipLevels        uint16
	Format           Format
	SampleDesc       _DXGI_SAMPLE_DESC
	Layout           int32
	Flags            uint32
}

type _D3D12_RANGE struct {
	Begin uintptr
	End   uintptr
}

type _D3D12_RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type _D3D12_VIEWPORT struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type _D3D12_INDEX_BUFFER_VIEW struct {
	BufferLocation uint64
	SizeInBytes    uint32
	Format         Format
}

type _D3D12_VERTEX_BUFFER_VIEW struct {
	BufferLocation uint64
	SizeInBytes    uint32
	StrideInBytes  uint32
}

type _D3D12_DISCARD_REGION struct {
	NumRects         uint32
	pRects           uintptr
	FirstSubresource uint32
	NumSubresources  uint32
}

type _D3D12_RESOURCE_BARRIER_TYPE int32

const (
	_D3D12_RESOURCE_BARRIER_TYPE_TRANSITION _D3D12_RESOURCE_BARRIER_TYPE = 0
	_D3D12_RESOURCE_BARRIER_TYPE_ALIASING   _D3D12_RESOURCE_BARRIER_TYPE = 1
	_D3D12_RESOURCE_BARRIER_TYPE_UAV        _D3D12_RESOURCE_BARRIER_TYPE = 2
)

type _D3D12_RESOURCE_TRANSITION_BARRIER struct {
	pResource   uintptr
	Subresource uint32
	StateBefore ResourceStates
	StateAfter  ResourceStates
}

type _D3D12_RESOURCE_ALIASING_BARRIER struct {
	pResourceBefore uintptr
	pResourceAfter  uintptr
}

type _D3D12_RESOURCE_UAV_BARRIER struct {
	pResource uintptr
}

// _D3D12_RESOURCE_BARRIER carries the union as raw storage sized for the
// largest member, the transition barrier.
type _D3D12_RESOURCE_BARRIER struct {
	Type  _D3D12_RESOURCE_BARRIER_TYPE
	Flags BarrierFlags
	union [3]uint64
}

func (b *_D3D12_RESOURCE_BARRIER) Transition() *_D3D12_RESOURCE_TRANSITION_BARRIER {
	return (*_D3D12_RESOURCE_TRANSITION_BARRIER)(unsafe.Pointer(&b.union))
}

func (b *_D3D12_RESOURCE_BARRIER) Aliasing() *_D3D12_RESOURCE_ALIASING_BARRIER {
	return (*_D3D12_RESOURCE_ALIASING_BARRIER)(unsafe.Pointer(&b.union))
}

func (b *_D3D12_RESOURCE_BARRIER) UAV() *_D3D12_RESOURCE_UAV_BARRIER {
	return (*_D3D12_RESOURCE_UAV_BARRIER)(unsafe.Pointer(&b.union))
}

type _D3D12_SHADER_VISIBILITY int32

const (
	_D3D12_SHADER_VISIBILITY_ALL      _D3D12_SHADER_VISIBILITY = 0
	_D3D12_SHADER_VISIBILITY_VERTEX   _D3D12_SHADER_VISIBILITY = 1
	_D3D12_SHADER_VISIBILITY_HULL     _D3D12_SHADER_VISIBILITY = 2
	_D3D12_SHADER_VISIBILITY_DOMAIN   _D3D12_SHADER_VISIBILITY = 3
	_D3D12_SHADER_VISIBILITY_GEOMETRY _D3D12_SHADER_VISIBILITY = 4
	_D3D12_SHADER_VISIBILITY_PIXEL    _D3D12_SHADER_VISIBILITY = 5
)

type _D3D12_DESCRIPTOR_RANGE_TYPE int32

const (
	_D3D12_DESCRIPTOR_RANGE_TYPE_SRV     _D3D12_DESCRIPTOR_RANGE_TYPE = 0
	_D3D12_DESCRIPTOR_RANGE_TYPE_UAV     _D3D12_DESCRIPTOR_RANGE_TYPE = 1
	_D3D12_DESCRIPTOR_RANGE_TYPE_CBV     _D3D12_DESCRIPTOR_RANGE_TYPE = 2
	_D3D12_DESCRIPTOR_RANGE_TYPE_SAMPLER _D3D12_DESCRIPTOR_RANGE_TYPE = 3
)

type _D3D12_DESCRIPTOR_RANGE struct {
	RangeType                         _D3D12_DESCRIPTOR_RANGE_TYPE
	NumDescriptors                    uint32
	BaseShaderRegister                uint32
	RegisterSpace                     uint32
	OffsetInDescriptorsFromTableStart uint32
}

type _D3D12_ROOT_PARAMETER_TYPE int32

const (
	_D3D12_ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE _D3D12_ROOT_PARAMETER_TYPE = 0
	_D3D12_ROOT_PARAMETER_TYPE_32BIT_CONSTANTS  _D3D12_ROOT_PARAMETER_TYPE = 1
	_D3D12_ROOT_PARAMETER_TYPE_CBV              _D3D12_ROOT_PARAMETER_TYPE = 2
	_D3D12_ROOT_PARAMETER_TYPE_SRV              _D3D12_ROOT_PARAMETER_TYPE = 3
	_D3D12_ROOT_PARAMETER_TYPE_UAV              _D3D12_ROOT_PARAMETER_TYPE = 4
)

type _D3D12_ROOT_DESCRIPTOR_TABLE struct {
	NumDescriptorRanges uint32
	pDescriptorRanges   uintptr
}

type _D3D12_ROOT_CONSTANTS struct {
	ShaderRegister uint32
	RegisterSpace  uint32
	Num32BitValues uint32
}

type _D3D12_ROOT_DESCRIPTOR struct {
	ShaderRegister uint32
	RegisterSpace  uint32
}

type _D3D12_ROOT_PARAMETER struct {
	ParameterType    _D3D12_ROOT_PARAMETER_TYPE
	union            [2]uint64
	ShaderVisibility _D3D12_SHADER_VISIBILITY
}

func (p *_D3D12_ROOT_PARAMETER) DescriptorTable() *_D3D12_ROOT_DESCRIPTOR_TABLE {
	return (*_D3D12_ROOT_DESCRIPTOR_TABLE)(unsafe.Pointer(&p.union))
}

func (p *_D3D12_ROOT_PARAMETER) Constants() *_D3D12_ROOT_CONSTANTS {
	return (*_D3D12_ROOT_CONSTANTS)(unsafe.Pointer(&p.union))
}

func (p *_D3D12_ROOT_PARAMETER) Descriptor() *_D3D12_ROOT_DESCRIPTOR {
	return (*_D3D12_ROOT_DESCRIPTOR)(unsafe.Pointer(&p.union))
}

type _D3D12_STATIC_BORDER_COLOR int32

const (
	_D3D12_STATIC_BORDER_COLOR_TRANSPARENT_BLACK _D3D12_STATIC_BORDER_COLOR = 0
	_D3D12_STATIC_BORDER_COLOR_OPAQUE_BLACK      _D3D12_STATIC_BORDER_COLOR = 1
	_D3D12_STATIC_BORDER_COLOR_OPAQUE_WHITE      _D3D12_STATIC_BORDER_COLOR = 2
)

type _D3D12_STATIC_SAMPLER_DESC struct {
	Filter           Filter
	AddressU         TextureAddressMode
	AddressV         TextureAddressMode
	AddressW         TextureAddressMode
	MipLODBias       float32
	MaxAnisotropy    uint32
	ComparisonFunc   ComparisonFunc
	BorderColor      _D3D12_STATIC_BORDER_COLOR
	MinLOD           float32
	MaxLOD           float32
	ShaderRegister   uint32
	RegisterSpace    uint32
	ShaderVisibility _D3D12_SHADER_VISIBILITY
}

type _D3D_ROOT_SIGNATURE_VERSION int32

const (
	_D3D_ROOT_SIGNATURE_VERSION_1_0 _D3D_ROOT_SIGNATURE_VERSION = 0x1
	_D3D_ROOT_SIGNATURE_VERSION_1_1 _D3D_ROOT_SIGNATURE_VERSION = 0x2
)

type _D3D12_ROOT_SIGNATURE_DESC struct {
	NumParameters     uint32
	pParameters       uintptr
	NumStaticSamplers uint32
	pStaticSamplers   uintptr
	Flags             RootSignatureFlags
}

type _D3D12_SAMPLER_DESC struct {
	Filter         Filter
	AddressU       TextureAddressMode
	AddressV       TextureAddressMode
	AddressW       TextureAddressMode
	MipLODBias     float32
	MaxAnisotropy  uint32
	ComparisonFunc ComparisonFunc
	BorderColor    [4]float32
	MinLOD         float32
	MaxLOD         float32
}

type _D3D12_INDIRECT_ARGUMENT_TYPE int32

const (
	_D3D12_INDIRECT_ARGUMENT_TYPE_DRAW                  _D3D12_INDIRECT_ARGUMENT_TYPE = 0
	_D3D12_INDIRECT_ARGUMENT_TYPE_DRAW_INDEXED          _D3D12_INDIRECT_ARGUMENT_TYPE = 1
	_D3D12_INDIRECT_ARGUMENT_TYPE_DISPATCH              _D3D12_INDIRECT_ARGUMENT_TYPE = 2
	_D3D12_INDIRECT_ARGUMENT_TYPE_VERTEX_BUFFER_VIEW    _D3D12_INDIRECT_ARGUMENT_TYPE = 3
	_D3D12_INDIRECT_ARGUMENT_TYPE_INDEX_BUFFER_VIEW     _D3D12_INDIRECT_ARGUMENT_TYPE = 4
	_D3D12_INDIRECT_ARGUMENT_TYPE_CONSTANT              _D3D12_INDIRECT_ARGUMENT_TYPE = 5
	_D3D12_INDIRECT_ARGUMENT_TYPE_CONSTANT_BUFFER_VIEW  _D3D12_INDIRECT_ARGUMENT_TYPE = 6
	_D3D12_INDIRECT_ARGUMENT_TYPE_SHADER_RESOURCE_VIEW  _D3D12_INDIRECT_ARGUMENT_TYPE = 7
	_D3D12_INDIRECT_ARGUMENT_TYPE_UNORDERED_ACCESS_VIEW _D3D12_INDIRECT_ARGUMENT_TYPE = 8
)

// _D3D12_INDIRECT_ARGUMENT_DESC stores its union as three 32-bit words:
// vertex buffer {slot}, constant {root index, dest offset, count},
// views {root index}.
type _D3D12_INDIRECT_ARGUMENT_DESC struct {
	Type  _D3D12_INDIRECT_ARGUMENT_TYPE
	union [3]uint32
}

type _D3D12_COMMAND_SIGNATURE_DESC struct {
	ByteStride       uint32
	NumArgumentDescs uint32
	pArgumentDescs   uintptr
	NodeMask         uint32
}

const (
	_D3D12_RTV_DIMENSION_BUFFER         = 1
	_D3D12_RTV_DIMENSION_TEXTURE2D      = 4
	_D3D12_RTV_DIMENSION_TEXTURE2DARRAY = 5

	_D3D12_DSV_DIMENSION_TEXTURE2D      = 3
	_D3D12_DSV_DIMENSION_TEXTURE2DARRAY = 4
)

type _D3D12_RENDER_TARGET_VIEW_DESC struct {
	Format        Format
	ViewDimension int32
	union         [2]uint64
}

type _D3D12_DEPTH_STENCIL_VIEW_DESC struct {
	Format        Format
	ViewDimension int32
	Flags         DSVFlags
	union         [3]uint32
}

type _D3D12_SHADER_BYTECODE struct {
	pShaderBytecode uintptr
	BytecodeLength  uintptr
}

type _D3D12_CACHED_PIPELINE_STATE struct {
	pCachedBlob           uintptr
	CachedBlobSizeInBytes uintptr
}

type _D3D12_COMPUTE_PIPELINE_STATE_DESC struct {
	pRootSignature uintptr
	CS             _D3D12_SHADER_BYTECODE
	NodeMask       uint32
	CachedPSO      _D3D12_CACHED_PIPELINE_STATE
	Flags          PipelineStateFlags
}

type _D3D12_PIPELINE_STATE_STREAM_DESC struct {
	SizeInBytes                   uintptr
	pPipelineStateSubobjectStream uintptr
}

type _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE int32

const (
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_ROOT_SIGNATURE        _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 0
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_VS                    _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 1
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_PS                    _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 2
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_DS                    _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 3
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_HS                    _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 4
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_GS                    _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 5
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_CS                    _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 6
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_STREAM_OUTPUT         _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 7
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_BLEND                 _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 8
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_SAMPLE_MASK           _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 9
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_RASTERIZER            _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 10
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_DEPTH_STENCIL         _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 11
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_INPUT_LAYOUT          _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 12
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_IB_STRIP_CUT_VALUE    _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 13
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_PRIMITIVE_TOPOLOGY    _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 14
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_RENDER_TARGET_FORMATS _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 15
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_DEPTH_STENCIL_FORMAT  _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 16
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_SAMPLE_DESC           _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 17
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_NODE_MASK             _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 18
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_CACHED_PSO            _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 19
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_FLAGS                 _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 20
	_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_DEPTH_STENCIL1        _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE = 21
)

type _D3D12_QUERY_HEAP_TYPE int32

const (
	_D3D12_QUERY_HEAP_TYPE_OCCLUSION           _D3D12_QUERY_HEAP_TYPE = 0
	_D3D12_QUERY_HEAP_TYPE_TIMESTAMP           _D3D12_QUERY_HEAP_TYPE = 1
	_D3D12_QUERY_HEAP_TYPE_PIPELINE_STATISTICS _D3D12_QUERY_HEAP_TYPE = 2
	_D3D12_QUERY_HEAP_TYPE_SO_STATISTICS       _D3D12_QUERY_HEAP_TYPE = 3
)

type _D3D12_QUERY_HEAP_DESC struct {
	Type     _D3D12_QUERY_HEAP_TYPE
	Count    uint32
	NodeMask uint32
}

type _DXGI_SCALING int32

const (
	_DXGI_SCALING_STRETCH              _DXGI_SCALING = 0
	_DXGI_SCALING_NONE                 _DXGI_SCALING = 1
	_DXGI_SCALING_ASPECT_RATIO_STRETCH _DXGI_SCALING = 2
)

type _DXGI_SWAP_EFFECT int32

const (
	_DXGI_SWAP_EFFECT_DISCARD         _DXGI_SWAP_EFFECT = 0
	_DXGI_SWAP_EFFECT_SEQUENTIAL      _DXGI_SWAP_EFFECT = 1
	_DXGI_SWAP_EFFECT_FLIP_SEQUENTIAL _DXGI_SWAP_EFFECT = 3
	_DXGI_SWAP_EFFECT_FLIP_DISCARD    _DXGI_SWAP_EFFECT = 4
)

type _DXGI_ALPHA_MODE uint32

const (
	_DXGI_ALPHA_MODE_UNSPECIFIED   _DXGI_ALPHA_MODE = 0
	_DXGI_ALPHA_MODE_PREMULTIPLIED _DXGI_ALPHA_MODE = 1
	_DXGI_ALPHA_MODE_STRAIGHT      _DXGI_ALPHA_MODE = 2
	_DXGI_ALPHA_MODE_IGNORE        _DXGI_ALPHA_MODE = 3
	_DXGI_ALPHA_MODE_FORCE_DWORD   _DXGI_ALPHA_MODE = 0xffffffff
)

type _DXGI_SWAP_CHAIN_DESC1 struct {
	Width       uint32
	Height      uint32
	Format      Format
	Stereo      int32
	SampleDesc  _DXGI_SAMPLE_DESC
	BufferUsage Usage
	BufferCount uint32
	Scaling     _DXGI_SCALING
	SwapEffect  _DXGI_SWAP_EFFECT
	AlphaMode   _DXGI_ALPHA_MODE
	Flags       uint32
}

type _DXGI_RATIONAL struct {
	Numerator   uint32
	Denominator uint32
}

type _DXGI_MODE_DESC struct {
	Width            uint32
	Height           uint32
	RefreshRate      _DXGI_RATIONAL
	Format           Format
	ScanlineOrdering int32
	Scaling          int32
}

type _DXGI_SWAP_CHAIN_DESC struct {
	BufferDesc   _DXGI_MODE_DESC
	SampleDesc   _DXGI_SAMPLE_DESC
	BufferUsage  Usage
	BufferCount  uint32
	OutputWindow uintptr
	Windowed     int32
	SwapEffect   _DXGI_SWAP_EFFECT
	Flags        uint32
}

type _LUID struct {
	LowPart  uint32
	HighPart int32
}

type _DXGI_ADAPTER_DESC1 struct {
	Description           [128]uint16
	VendorId              uint32
	DeviceId              uint32
	SubSysId              uint32
	Revision              uint32
	DedicatedVideoMemory  uintptr
	DedicatedSystemMemory uintptr
	SharedSystemMemory    uintptr
	AdapterLuid           _LUID
	Flags                 uint32
}

const (
	_DXGI_ADAPTER_FLAG_SOFTWARE = 2
	_DXGI_CREATE_FACTORY_DEBUG  = 0x1
)
