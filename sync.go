package dieseldx

import (
	"fmt"
	"time"
)

// Infinite makes Event.Wait block until the event is signaled.
const Infinite time.Duration = -1

// WaitResult is the outcome of Event.Wait.
type WaitResult int

const (
	WaitSignaled WaitResult = iota
	WaitTimeout
	WaitFailed
)

func (r WaitResult) String() string {
	switch r {
	case WaitSignaled:
		return "signaled"
	case WaitTimeout:
		return "timeout"
	case WaitFailed:
		return "failed"
	}
	return fmt.Sprintf("WaitResult(%d)", int(r))
}

// waitMillis converts a timeout to the native millisecond count. Negative
// durations wait forever; others round up to whole milliseconds.
func waitMillis(d time.Duration) uint32 {
	const infinite = 0xffffffff
	if d < 0 {
		return infinite
	}
	ms := (d + time.Millisecond - 1) / time.Millisecond
	if ms >= infinite {
		return infinite - 1
	}
	return uint32(ms)
}

// Fence is a GPU/CPU synchronization counter.
type Fence struct {
	inner *iD3D12Fence
}

// Event is an OS event object a fence can signal. It is a plain handle;
// Close it when done.
type Event struct {
	handle uintptr
}

func (e Event) IsNull() bool { return e.handle == 0 }
