package dieseldx

// Priority of a command queue relative to others on the device.
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityHigh
	PriorityGlobalRealtime
)

var priorityNative = [...]_D3D12_COMMAND_QUEUE_PRIORITY{
	PriorityNormal:         _D3D12_COMMAND_QUEUE_PRIORITY_NORMAL,
	PriorityHigh:           _D3D12_COMMAND_QUEUE_PRIORITY_HIGH,
	PriorityGlobalRealtime: _D3D12_COMMAND_QUEUE_PRIORITY_GLOBAL_REALTIME,
}

func (p Priority) native() _D3D12_COMMAND_QUEUE_PRIORITY { return priorityNative[p] }

func priorityFromNative(n _D3D12_COMMAND_QUEUE_PRIORITY) (Priority, bool) {
	return fromNative[Priority](priorityNative[:], n)
}

type CommandQueueFlags uint32

const (
	CommandQueueFlagNone              CommandQueueFlags = 0
	CommandQueueFlagDisableGPUTimeout CommandQueueFlags = 0x1
)

// CommandQueueDesc mirrors the queue's creation parameters.
type CommandQueueDesc struct {
	Type     CmdListType
	Priority Priority
	Flags    CommandQueueFlags
	NodeMask uint32
}

func (d CommandQueueDesc) native() _D3D12_COMMAND_QUEUE_DESC {
	return _D3D12_COMMAND_QUEUE_DESC{
		Type:     d.Type.native(),
		Priority: d.Priority.native(),
		Flags:    uint32(d.Flags),
		NodeMask: d.NodeMask,
	}
}

// CommandQueue submits command lists and orders them against fences.
type CommandQueue struct {
	inner *iD3D12CommandQueue
}
