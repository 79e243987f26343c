//go:build windows

package dieseldx

import (
	"time"

	"github.com/pkg/errors"
)

// FenceManager pairs a fence with an event so the CPU can wait for GPU
// progress. Each Signal uses the next fence value.
// The manager is not thread-safe; use one per submitting thread.
type FenceManager struct {
	fence *Fence
	event Event
	value uint64
}

func NewFenceManager(device *Device) (*FenceManager, error) {
	fence, err := device.CreateFence(0)
	if err != nil {
		return nil, err
	}
	event, err := CreateEvent(false, false)
	if err != nil {
		fence.Release()
		return nil, err
	}
	return &FenceManager{fence: fence, event: event}, nil
}

// Signal enqueues a signal on queue and returns the value that marks the
// work submitted so far.
func (f *FenceManager) Signal(queue *CommandQueue) (uint64, error) {
	f.value++
	if err := queue.Signal(f.fence, f.value); err != nil {
		return 0, err
	}
	return f.value, nil
}

// WaitFor blocks until the fence reaches value. On timeout the error wraps
// DXGI_ERROR_WAIT_TIMEOUT.
func (f *FenceManager) WaitFor(value uint64, timeout time.Duration) error {
	if f.fence.Value() >= value {
		return nil
	}
	if err := f.fence.SetEventOnCompletion(value, f.event); err != nil {
		return err
	}
	res, err := f.event.Wait(timeout)
	if err != nil {
		return err
	}
	if res == WaitTimeout {
		return errors.WithStack(DXGI_ERROR_WAIT_TIMEOUT)
	}
	return nil
}

// Flush waits for everything submitted to queue so far.
func (f *FenceManager) Flush(queue *CommandQueue, timeout time.Duration) error {
	v, err := f.Signal(queue)
	if err != nil {
		return err
	}
	return f.WaitFor(v, timeout)
}

func (f *FenceManager) Completed() uint64 { return f.fence.Value() }
func (f *FenceManager) Fence() *Fence     { return f.fence }

func (f *FenceManager) Destroy() {
	f.fence.Release()
	f.event.Close()
}

// CommandListManager records through one allocator and recycles the lists
// it hands out. Reset it only after the GPU is done with the lists.
// The manager is not thread-safe; use one per recording thread.
type CommandListManager struct {
	device *Device
	kind   CmdListType
	alloc  *CommandAllocator
	lists  []*GraphicsCommandList
	count  int
}

func NewCommandListManager(device *Device, kind CmdListType) (*CommandListManager, error) {
	alloc, err := device.CreateCommandAllocator(kind)
	if err != nil {
		return nil, err
	}
	return &CommandListManager{device: device, kind: kind, alloc: alloc}, nil
}

// Reset reclaims the allocator. Every list handed out before is free for
// reuse.
func (c *CommandListManager) Reset() error {
	c.count = 0
	return c.alloc.Reset()
}

// NewCommandList returns a fresh or recycled list in the recording state.
func (c *CommandListManager) NewCommandList(initial *PipelineState) (*GraphicsCommandList, error) {
	if c.count < len(c.lists) {
		l := c.lists[c.count]
		if err := l.Reset(c.alloc, initial); err != nil {
			return nil, err
		}
		c.count++
		return l, nil
	}
	l, err := c.device.CreateGraphicsCommandList(c.kind, c.alloc, initial, 0)
	if err != nil {
		return nil, err
	}
	c.lists = append(c.lists, l)
	c.count++
	return l, nil
}

func (c *CommandListManager) Destroy() {
	for _, l := range c.lists {
		l.Release()
	}
	c.lists = nil
	c.alloc.Release()
}
