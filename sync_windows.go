package dieseldx

import (
	"syscall"
	"time"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

const _WAIT_TIMEOUT = 0x102

func (f *Fence) Release()      { release(&f.inner) }
func (f *Fence) IsNull() bool  { return f.inner == nil }
func (f *Fence) Clone() *Fence { return &Fence{inner: addRef(f.inner)} }

func (f *Fence) this() uintptr { return uintptr(unsafe.Pointer(f.inner)) }

// Signal sets the fence to value from the CPU.
func (f *Fence) Signal(value uint64) error {
	r, _, _ := syscall.SyscallN(f.inner.vtbl.Signal, f.this(), uintptr(value))
	return newError(r)
}

// Value is the last completed value.
func (f *Fence) Value() uint64 {
	r, _, _ := syscall.SyscallN(f.inner.vtbl.GetCompletedValue, f.this())
	return uint64(r)
}

// SetEventOnCompletion signals ev once the fence reaches value. If it
// already has, ev is signaled immediately.
func (f *Fence) SetEventOnCompletion(value uint64, ev Event) error {
	r, _, _ := syscall.SyscallN(f.inner.vtbl.SetEventOnCompletion, f.this(), uintptr(value), ev.handle)
	return newError(r)
}

// CreateEvent creates an unnamed event object.
func CreateEvent(manualReset, initialState bool) (Event, error) {
	h, err := windows.CreateEvent(nil, uint32(boolToUintptr(manualReset)), uint32(boolToUintptr(initialState)), nil)
	if err != nil {
		return Event{}, errors.Wrap(err, "dieseldx: CreateEvent")
	}
	return Event{handle: uintptr(h)}, nil
}

// Wait blocks the calling thread until the event is signaled or timeout
// passes. Use Infinite to wait without a timeout.
func (e Event) Wait(timeout time.Duration) (WaitResult, error) {
	r, err := windows.WaitForSingleObject(windows.Handle(e.handle), waitMillis(timeout))
	switch {
	case err != nil:
		return WaitFailed, errors.Wrap(err, "dieseldx: WaitForSingleObject")
	case r == windows.WAIT_OBJECT_0:
		return WaitSignaled, nil
	case r == _WAIT_TIMEOUT:
		return WaitTimeout, nil
	}
	return WaitFailed, errors.Errorf("dieseldx: WaitForSingleObject returned 0x%x", r)
}

func (e Event) Close() error {
	if e.handle == 0 {
		return nil
	}
	return windows.CloseHandle(windows.Handle(e.handle))
}
