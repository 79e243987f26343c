package display

import "unsafe"

// HWND returns the native handle for swap chain creation.
func (w *Window) HWND() uintptr {
	return uintptr(unsafe.Pointer(w.window.GetWin32Window()))
}
