package dieseldx

import (
	"runtime"
	"syscall"
	"unsafe"
)

func (q *CommandQueue) Release()     { release(&q.inner) }
func (q *CommandQueue) IsNull() bool { return q.inner == nil }

func (q *CommandQueue) Clone() *CommandQueue {
	return &CommandQueue{inner: addRef(q.inner)}
}

func (q *CommandQueue) this() uintptr { return uintptr(unsafe.Pointer(q.inner)) }

// ExecuteCommandLists submits closed lists in order.
func (q *CommandQueue) ExecuteCommandLists(lists ...*GraphicsCommandList) {
	if len(lists) == 0 {
		return
	}
	ptrs := make([]uintptr, len(lists))
	for i, l := range lists {
		ptrs[i] = l.this()
	}
	syscall.SyscallN(q.inner.vtbl.ExecuteCommandLists, q.this(), uintptr(len(ptrs)), sliceAddr(ptrs))
	runtime.KeepAlive(ptrs)
}

// Signal sets fence to value once all prior work on q completes.
func (q *CommandQueue) Signal(fence *Fence, value uint64) error {
	r, _, _ := syscall.SyscallN(q.inner.vtbl.Signal, q.this(), uintptr(unsafe.Pointer(fence.inner)), uintptr(value))
	return newError(r)
}

// Wait stalls q on the GPU until fence reaches value.
func (q *CommandQueue) Wait(fence *Fence, value uint64) error {
	r, _, _ := syscall.SyscallN(q.inner.vtbl.Wait, q.this(), uintptr(unsafe.Pointer(fence.inner)), uintptr(value))
	return newError(r)
}

// TimestampFrequency is the tick rate of timestamp queries on q.
func (q *CommandQueue) TimestampFrequency() (uint64, error) {
	var freq uint64
	r, _, _ := syscall.SyscallN(q.inner.vtbl.GetTimestampFrequency, q.this(), uintptr(unsafe.Pointer(&freq)))
	return freq, newError(r)
}

// Desc returns the creation parameters. Unknown native values read back as
// the zero variant.
func (q *CommandQueue) Desc() CommandQueueDesc {
	var n _D3D12_COMMAND_QUEUE_DESC
	syscall.SyscallN(q.inner.vtbl.GetDesc, q.this(), uintptr(unsafe.Pointer(&n)))
	t, _ := cmdListTypeFromNative(n.Type)
	p, _ := priorityFromNative(n.Priority)
	return CommandQueueDesc{Type: t, Priority: p, Flags: CommandQueueFlags(n.Flags), NodeMask: n.NodeMask}
}
