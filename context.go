//go:build windows

package dieseldx

import "time"

// FrameContext rotates per-frame command memory for a swap chain. Every
// back buffer gets its own allocator and remembers the fence value of its
// last submission, so a frame only waits for the GPU when it comes back
// around to a buffer that is still in flight.
type FrameContext struct {
	queue   *CommandQueue
	fences  *FenceManager
	frames  []*perFrameCtx
	current int
	timeout time.Duration
}

type perFrameCtx struct {
	commandManager *CommandListManager
	fenceValue     uint64
}

// NewFrameContext creates count frames recording for queue. timeout bounds
// every wait for the GPU.
func NewFrameContext(device *Device, queue *CommandQueue, count int, timeout time.Duration) (*FrameContext, error) {
	fences, err := NewFenceManager(device)
	if err != nil {
		return nil, err
	}
	c := &FrameContext{queue: queue, fences: fences, timeout: timeout}
	for i := 0; i < count; i++ {
		m, err := NewCommandListManager(device, CmdListDirect)
		if err != nil {
			c.Destroy()
			return nil, err
		}
		c.frames = append(c.frames, &perFrameCtx{commandManager: m})
	}
	return c, nil
}

// BeginFrame makes frame index current, waiting until the GPU has
// finished its previous use.
func (c *FrameContext) BeginFrame(index uint32) error {
	c.current = int(index)
	p := c.frames[c.current]
	if err := c.fences.WaitFor(p.fenceValue, c.timeout); err != nil {
		return err
	}
	return p.commandManager.Reset()
}

// NewCommandList returns a recording list whose memory belongs to the
// current frame.
func (c *FrameContext) NewCommandList(initial *PipelineState) (*GraphicsCommandList, error) {
	return c.frames[c.current].commandManager.NewCommandList(initial)
}

// Submit executes closed lists and tags the current frame with a fence
// value.
func (c *FrameContext) Submit(lists ...*GraphicsCommandList) error {
	c.queue.ExecuteCommandLists(lists...)
	v, err := c.fences.Signal(c.queue)
	if err != nil {
		return err
	}
	c.frames[c.current].fenceValue = v
	return nil
}

// Wait blocks until the queue is idle.
func (c *FrameContext) Wait() error {
	return c.fences.Flush(c.queue, c.timeout)
}

func (c *FrameContext) Destroy() {
	for _, p := range c.frames {
		p.commandManager.Destroy()
	}
	c.frames = nil
	c.fences.Destroy()
}
