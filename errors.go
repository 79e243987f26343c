package dieseldx

import (
	"fmt"

	"github.com/pkg/errors"
)

// HRESULT is a native status code. Negative values are failures.
type HRESULT int32

const (
	S_OK    HRESULT = 0
	S_FALSE HRESULT = 1

	E_NOTIMPL     HRESULT = 0x80004001 - 1<<32
	E_NOINTERFACE HRESULT = 0x80004002 - 1<<32
	E_POINTER     HRESULT = 0x80004003 - 1<<32
	E_FAIL        HRESULT = 0x80004005 - 1<<32
	E_OUTOFMEMORY HRESULT = 0x8007000E - 1<<32
	E_INVALIDARG  HRESULT = 0x80070057 - 1<<32

	DXGI_ERROR_INVALID_CALL          HRESULT = 0x887A0001 - 1<<32
	DXGI_ERROR_NOT_FOUND             HRESULT = 0x887A0002 - 1<<32
	DXGI_ERROR_UNSUPPORTED           HRESULT = 0x887A0004 - 1<<32
	DXGI_ERROR_DEVICE_REMOVED        HRESULT = 0x887A0005 - 1<<32
	DXGI_ERROR_DEVICE_HUNG           HRESULT = 0x887A0006 - 1<<32
	DXGI_ERROR_DEVICE_RESET          HRESULT = 0x887A0007 - 1<<32
	DXGI_ERROR_WAS_STILL_DRAWING     HRESULT = 0x887A000A - 1<<32
	DXGI_ERROR_DRIVER_INTERNAL_ERROR HRESULT = 0x887A0020 - 1<<32
	DXGI_ERROR_ACCESS_LOST           HRESULT = 0x887A0026 - 1<<32
	DXGI_ERROR_WAIT_TIMEOUT          HRESULT = 0x887A0027 - 1<<32
	DXGI_STATUS_OCCLUDED             HRESULT = 0x087A0001

	D3D12_ERROR_ADAPTER_NOT_FOUND       HRESULT = 0x887E0001 - 1<<32
	D3D12_ERROR_DRIVER_VERSION_MISMATCH HRESULT = 0x887E0002 - 1<<32
)

var hresultNames = map[HRESULT]string{
	S_OK:                                "S_OK",
	S_FALSE:                             "S_FALSE",
	E_NOTIMPL:                           "E_NOTIMPL",
	E_NOINTERFACE:                       "E_NOINTERFACE",
	E_POINTER:                           "E_POINTER",
	E_FAIL:                              "E_FAIL",
	E_OUTOFMEMORY:                       "E_OUTOFMEMORY",
	E_INVALIDARG:                        "E_INVALIDARG",
	DXGI_ERROR_INVALID_CALL:             "DXGI_ERROR_INVALID_CALL",
	DXGI_ERROR_NOT_FOUND:                "DXGI_ERROR_NOT_FOUND",
	DXGI_ERROR_UNSUPPORTED:              "DXGI_ERROR_UNSUPPORTED",
	DXGI_ERROR_DEVICE_REMOVED:           "DXGI_ERROR_DEVICE_REMOVED",
	DXGI_ERROR_DEVICE_HUNG:              "DXGI_ERROR_DEVICE_HUNG",
	DXGI_ERROR_DEVICE_RESET:             "DXGI_ERROR_DEVICE_RESET",
	DXGI_ERROR_WAS_STILL_DRAWING:        "DXGI_ERROR_WAS_STILL_DRAWING",
	DXGI_ERROR_DRIVER_INTERNAL_ERROR:    "DXGI_ERROR_DRIVER_INTERNAL_ERROR",
	DXGI_ERROR_ACCESS_LOST:              "DXGI_ERROR_ACCESS_LOST",
	DXGI_ERROR_WAIT_TIMEOUT:             "DXGI_ERROR_WAIT_TIMEOUT",
	DXGI_STATUS_OCCLUDED:                "DXGI_STATUS_OCCLUDED",
	D3D12_ERROR_ADAPTER_NOT_FOUND:       "D3D12_ERROR_ADAPTER_NOT_FOUND",
	D3D12_ERROR_DRIVER_VERSION_MISMATCH: "D3D12_ERROR_DRIVER_VERSION_MISMATCH",
}

func (hr HRESULT) Error() string {
	if name, ok := hresultNames[hr]; ok {
		return fmt.Sprintf("dieseldx: %s (0x%08X)", name, uint32(hr))
	}
	return fmt.Sprintf("dieseldx: HRESULT 0x%08X", uint32(hr))
}

func (hr HRESULT) Failed() bool    { return hr < 0 }
func (hr HRESULT) Succeeded() bool { return hr >= 0 }

var (
	// ErrNotImplemented is the panic value of operations with no native
	// counterpart wired yet.
	ErrNotImplemented = errors.New("dieseldx: not implemented")

	ErrEmptySubresourceRange = errors.New("dieseldx: discard region subresource range is empty")
	ErrNullHandle            = errors.New("dieseldx: null handle")
)

// isError reports whether a raw return value from a native call is a
// failing HRESULT.
func isError(ret uintptr) bool {
	return int32(uint32(ret)) < 0
}

// newError wraps a failing native return value with the caller's stack.
// Success codes yield nil.
func newError(ret uintptr) error {
	if !isError(ret) {
		return nil
	}
	return errors.WithStack(HRESULT(int32(uint32(ret))))
}

// AsHRESULT extracts the native status from err.
func AsHRESULT(err error) (HRESULT, bool) {
	var hr HRESULT
	if errors.As(err, &hr) {
		return hr, true
	}
	return 0, false
}

// IsDeviceLost reports whether err means the device is gone and every
// object created from it must be recreated.
func IsDeviceLost(err error) bool {
	hr, ok := AsHRESULT(err)
	if !ok {
		return false
	}
	switch hr {
	case DXGI_ERROR_DEVICE_REMOVED, DXGI_ERROR_DEVICE_RESET,
		DXGI_ERROR_DEVICE_HUNG, DXGI_ERROR_DRIVER_INTERNAL_ERROR:
		return true
	}
	return false
}

// DiagnosticError is a failure that came back with a native error blob,
// from root signature serialization or shader compilation.
type DiagnosticError struct {
	Op      string
	HR      HRESULT
	Message string
}

func (e *DiagnosticError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("dieseldx: %s: %v", e.Op, e.HR)
	}
	return fmt.Sprintf("dieseldx: %s: %v: %s", e.Op, e.HR, e.Message)
}

func (e *DiagnosticError) Unwrap() error { return e.HR }
