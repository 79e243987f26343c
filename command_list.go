package dieseldx

// CmdListType is the kind of queue a command list or allocator targets.
type CmdListType int

const (
	CmdListDirect CmdListType = iota
	CmdListBundle
	CmdListCompute
	CmdListCopy
)

var cmdListTypeNative = [...]_D3D12_COMMAND_LIST_TYPE{
	CmdListDirect:  _D3D12_COMMAND_LIST_TYPE_DIRECT,
	CmdListBundle:  _D3D12_COMMAND_LIST_TYPE_BUNDLE,
	CmdListCompute: _D3D12_COMMAND_LIST_TYPE_COMPUTE,
	CmdListCopy:    _D3D12_COMMAND_LIST_TYPE_COPY,
}

func (t CmdListType) native() _D3D12_COMMAND_LIST_TYPE { return cmdListTypeNative[t] }

func cmdListTypeFromNative(n _D3D12_COMMAND_LIST_TYPE) (CmdListType, bool) {
	return fromNative[CmdListType](cmdListTypeNative[:], n)
}

type ClearFlags uint32

const (
	ClearDepth   ClearFlags = 0x1
	ClearStencil ClearFlags = 0x2
)

// ResourceStates carry the native D3D12_RESOURCE_STATES bits.
type ResourceStates uint32

const (
	ResourceStateCommon                  ResourceStates = 0
	ResourceStateVertexAndConstantBuffer ResourceStates = 0x1
	ResourceStateIndexBuffer             ResourceStates = 0x2
	ResourceStateRenderTarget            ResourceStates = 0x4
	ResourceStateUnorderedAccess         ResourceStates = 0x8
	ResourceStateDepthWrite              ResourceStates = 0x10
	ResourceStateDepthRead               ResourceStates = 0x20
	ResourceStateNonPixelShaderResource  ResourceStates = 0x40
	ResourceStatePixelShaderResource     ResourceStates = 0x80
	ResourceStateStreamOut               ResourceStates = 0x100
	ResourceStateIndirectArgument        ResourceStates = 0x200
	ResourceStateCopyDest                ResourceStates = 0x400
	ResourceStateCopySource              ResourceStates = 0x800
	ResourceStateResolveDest             ResourceStates = 0x1000
	ResourceStateResolveSource           ResourceStates = 0x2000
	ResourceStateGenericRead             ResourceStates = 0xac3
	ResourceStatePresent                 ResourceStates = 0
)

type BarrierFlags uint32

const (
	BarrierFlagNone      BarrierFlags = 0
	BarrierFlagBeginOnly BarrierFlags = 0x1
	BarrierFlagEndOnly   BarrierFlags = 0x2
)

type BarrierKind int

const (
	BarrierTransition BarrierKind = iota
	BarrierAliasing
	BarrierUAV
)

// ResourceBarrier is a transition, aliasing or UAV barrier. Build it with
// TransitionBarrier, AliasingBarrier or UAVBarrier. The barrier keeps the
// caller's *Resource, it does not take a reference.
type ResourceBarrier struct {
	kind        BarrierKind
	flags       BarrierFlags
	resource    *Resource
	after       *Resource
	subresource Subresource
	before      ResourceStates
	stateAfter  ResourceStates
}

func TransitionBarrier(resource *Resource, subresource Subresource, before, after ResourceStates, flags BarrierFlags) ResourceBarrier {
	return ResourceBarrier{
		kind:        BarrierTransition,
		flags:       flags,
		resource:    resource,
		subresource: subresource,
		before:      before,
		stateAfter:  after,
	}
}

// AliasingBarrier orders use of two resources placed over the same heap
// memory. Either may be nil.
func AliasingBarrier(before, after *Resource, flags BarrierFlags) ResourceBarrier {
	return ResourceBarrier{kind: BarrierAliasing, flags: flags, resource: before, after: after}
}

func UAVBarrier(resource *Resource, flags BarrierFlags) ResourceBarrier {
	return ResourceBarrier{kind: BarrierUAV, flags: flags, resource: resource}
}

func (b ResourceBarrier) Kind() BarrierKind   { return b.kind }
func (b ResourceBarrier) Resource() *Resource { return b.resource }
func (b ResourceBarrier) Flags() BarrierFlags { return b.flags }

func (b ResourceBarrier) native() _D3D12_RESOURCE_BARRIER {
	n := _D3D12_RESOURCE_BARRIER{Flags: b.flags}
	switch b.kind {
	case BarrierTransition:
		n.Type = _D3D12_RESOURCE_BARRIER_TYPE_TRANSITION
		t := n.Transition()
		t.pResource = b.resource.ptr()
		t.Subresource = b.subresource
		t.StateBefore = b.before
		t.StateAfter = b.stateAfter
	case BarrierAliasing:
		n.Type = _D3D12_RESOURCE_BARRIER_TYPE_ALIASING
		a := n.Aliasing()
		a.pResourceBefore = b.resource.ptr()
		a.pResourceAfter = b.after.ptr()
	case BarrierUAV:
		n.Type = _D3D12_RESOURCE_BARRIER_TYPE_UAV
		n.UAV().pResource = b.resource.ptr()
	}
	return n
}

// IndirectArgument is one record of a command signature.
type IndirectArgument struct {
	kind _D3D12_INDIRECT_ARGUMENT_TYPE
	args [3]uint32
}

func IndirectDraw() IndirectArgument {
	return IndirectArgument{kind: _D3D12_INDIRECT_ARGUMENT_TYPE_DRAW}
}

func IndirectDrawIndexed() IndirectArgument {
	return IndirectArgument{kind: _D3D12_INDIRECT_ARGUMENT_TYPE_DRAW_INDEXED}
}

func IndirectDispatch() IndirectArgument {
	return IndirectArgument{kind: _D3D12_INDIRECT_ARGUMENT_TYPE_DISPATCH}
}

func IndirectVertexBuffer(slot uint32) IndirectArgument {
	return IndirectArgument{kind: _D3D12_INDIRECT_ARGUMENT_TYPE_VERTEX_BUFFER_VIEW, args: [3]uint32{slot}}
}

func IndirectIndexBuffer() IndirectArgument {
	return IndirectArgument{kind: _D3D12_INDIRECT_ARGUMENT_TYPE_INDEX_BUFFER_VIEW}
}

func IndirectConstant(rootIndex, destOffset, count uint32) IndirectArgument {
	return IndirectArgument{kind: _D3D12_INDIRECT_ARGUMENT_TYPE_CONSTANT, args: [3]uint32{rootIndex, destOffset, count}}
}

func IndirectCBV(rootIndex uint32) IndirectArgument {
	return IndirectArgument{kind: _D3D12_INDIRECT_ARGUMENT_TYPE_CONSTANT_BUFFER_VIEW, args: [3]uint32{rootIndex}}
}

func IndirectSRV(rootIndex uint32) IndirectArgument {
	return IndirectArgument{kind: _D3D12_INDIRECT_ARGUMENT_TYPE_SHADER_RESOURCE_VIEW, args: [3]uint32{rootIndex}}
}

func IndirectUAV(rootIndex uint32) IndirectArgument {
	return IndirectArgument{kind: _D3D12_INDIRECT_ARGUMENT_TYPE_UNORDERED_ACCESS_VIEW, args: [3]uint32{rootIndex}}
}

func (a IndirectArgument) native() _D3D12_INDIRECT_ARGUMENT_DESC {
	return _D3D12_INDIRECT_ARGUMENT_DESC{Type: a.kind, union: a.args}
}

// CommandSignature describes the argument buffer layout for ExecuteIndirect.
type CommandSignature struct {
	inner *iD3D12CommandSignature
}

type PrimitiveTopology int32

const (
	TopologyUndefined     PrimitiveTopology = 0
	TopologyPointList     PrimitiveTopology = 1
	TopologyLineList      PrimitiveTopology = 2
	TopologyLineStrip     PrimitiveTopology = 3
	TopologyTriangleList  PrimitiveTopology = 4
	TopologyTriangleStrip PrimitiveTopology = 5
)

type VertexBufferView struct {
	Location GPUAddress
	Size     uint32
	Stride   uint32
}

// GraphicsCommandList records GPU work. It is not safe for concurrent use;
// the order of calls is the order the GPU executes them.
type GraphicsCommandList struct {
	inner *iD3D12GraphicsCommandList
}

// CommandAllocator backs the memory of recorded command lists. Reset it
// only after the GPU has finished with everything recorded from it.
type CommandAllocator struct {
	inner *iD3D12CommandAllocator
}
