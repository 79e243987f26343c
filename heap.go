package dieseldx

// HeapType selects the CPU/GPU visibility class of a heap.
type HeapType int

const (
	HeapTypeDefault HeapType = iota
	HeapTypeUpload
	HeapTypeReadback
	HeapTypeCustom
)

var heapTypeNative = [...]_D3D12_HEAP_TYPE{
	HeapTypeDefault:  _D3D12_HEAP_TYPE_DEFAULT,
	HeapTypeUpload:   _D3D12_HEAP_TYPE_UPLOAD,
	HeapTypeReadback: _D3D12_HEAP_TYPE_READBACK,
	HeapTypeCustom:   _D3D12_HEAP_TYPE_CUSTOM,
}

func (t HeapType) native() _D3D12_HEAP_TYPE { return heapTypeNative[t] }

func heapTypeFromNative(n _D3D12_HEAP_TYPE) (HeapType, bool) {
	return fromNative[HeapType](heapTypeNative[:], n)
}

type CpuPageProperty int

const (
	CpuPageUnknown CpuPageProperty = iota
	CpuPageNotAvailable
	CpuPageWriteCombine
	CpuPageWriteBack
)

var cpuPageNative = [...]_D3D12_CPU_PAGE_PROPERTY{
	CpuPageUnknown:      _D3D12_CPU_PAGE_PROPERTY_UNKNOWN,
	CpuPageNotAvailable: _D3D12_CPU_PAGE_PROPERTY_NOT_AVAILABLE,
	CpuPageWriteCombine: _D3D12_CPU_PAGE_PROPERTY_WRITE_COMBINE,
	CpuPageWriteBack:    _D3D12_CPU_PAGE_PROPERTY_WRITE_BACK,
}

func (p CpuPageProperty) native() _D3D12_CPU_PAGE_PROPERTY { return cpuPageNative[p] }

func cpuPageFromNative(n _D3D12_CPU_PAGE_PROPERTY) (CpuPageProperty, bool) {
	return fromNative[CpuPageProperty](cpuPageNative[:], n)
}

type MemoryPool int

const (
	MemoryPoolUnknown MemoryPool = iota
	MemoryPoolL0
	MemoryPoolL1
)

var memoryPoolNative = [...]_D3D12_MEMORY_POOL{
	MemoryPoolUnknown: _D3D12_MEMORY_POOL_UNKNOWN,
	MemoryPoolL0:      _D3D12_MEMORY_POOL_L0,
	MemoryPoolL1:      _D3D12_MEMORY_POOL_L1,
}

func (p MemoryPool) native() _D3D12_MEMORY_POOL { return memoryPoolNative[p] }

func memoryPoolFromNative(n _D3D12_MEMORY_POOL) (MemoryPool, bool) {
	return fromNative[MemoryPool](memoryPoolNative[:], n)
}

// HeapFlags carry the native D3D12_HEAP_FLAGS bits.
type HeapFlags uint32

const (
	HeapFlagNone                    HeapFlags = 0
	HeapFlagShared                  HeapFlags = 0x1
	HeapFlagDenyBuffers             HeapFlags = 0x4
	HeapFlagAllowDisplay            HeapFlags = 0x8
	HeapFlagSharedCrossAdapter      HeapFlags = 0x20
	HeapFlagDenyRTDSTextures        HeapFlags = 0x40
	HeapFlagDenyNonRTDSTextures     HeapFlags = 0x80
	HeapFlagAllowOnlyBuffers        HeapFlags = 0xc0
	HeapFlagAllowOnlyNonRTDSTexture HeapFlags = 0x44
	HeapFlagAllowOnlyRTDSTextures   HeapFlags = 0x84
)

// HeapProperties describes where a heap lives and who can see it.
type HeapProperties struct {
	Type             HeapType
	CpuPage          CpuPageProperty
	MemoryPool       MemoryPool
	CreationNodeMask uint32
	VisibleNodeMask  uint32
}

func NewHeapProperties(t HeapType, page CpuPageProperty, pool MemoryPool, creationMask, visibleMask uint32) HeapProperties {
	return HeapProperties{
		Type:             t,
		CpuPage:          page,
		MemoryPool:       pool,
		CreationNodeMask: creationMask,
		VisibleNodeMask:  visibleMask,
	}
}

func (p HeapProperties) native() _D3D12_HEAP_PROPERTIES {
	return _D3D12_HEAP_PROPERTIES{
		Type:                 p.Type.native(),
		CPUPageProperty:      p.CpuPage.native(),
		MemoryPoolPreference: p.MemoryPool.native(),
		CreationNodeMask:     p.CreationNodeMask,
		VisibleNodeMask:      p.VisibleNodeMask,
	}
}

// HeapDesc is the full description of an explicit heap.
type HeapDesc struct {
	Size       uint64
	Properties HeapProperties
	Alignment  uint64
	Flags      HeapFlags
}

func (d HeapDesc) native() _D3D12_HEAP_DESC {
	return _D3D12_HEAP_DESC{
		SizeInBytes: d.Size,
		Properties:  d.Properties.native(),
		Alignment:   d.Alignment,
		Flags:       uint32(d.Flags),
	}
}

// Heap is an explicit memory heap resources can be placed into.
type Heap struct {
	inner *iD3D12Heap
}
