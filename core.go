package dieseldx

import (
	"fmt"
	"strings"
	"unsafe"
)

// FeatureLevel is the Direct3D feature level a device is created for.
type FeatureLevel int

const (
	FeatureLevel9_1 FeatureLevel = iota
	FeatureLevel9_2
	FeatureLevel9_3
	FeatureLevel10_0
	FeatureLevel10_1
	FeatureLevel11_0
	FeatureLevel11_1
	FeatureLevel12_0
	FeatureLevel12_1
)

var featureLevelNative = [...]_D3D_FEATURE_LEVEL{
	FeatureLevel9_1:  _D3D_FEATURE_LEVEL_9_1,
	FeatureLevel9_2:  _D3D_FEATURE_LEVEL_9_2,
	FeatureLevel9_3:  _D3D_FEATURE_LEVEL_9_3,
	FeatureLevel10_0: _D3D_FEATURE_LEVEL_10_0,
	FeatureLevel10_1: _D3D_FEATURE_LEVEL_10_1,
	FeatureLevel11_0: _D3D_FEATURE_LEVEL_11_0,
	FeatureLevel11_1: _D3D_FEATURE_LEVEL_11_1,
	FeatureLevel12_0: _D3D_FEATURE_LEVEL_12_0,
	FeatureLevel12_1: _D3D_FEATURE_LEVEL_12_1,
}

var featureLevelNames = [...]string{
	FeatureLevel9_1:  "9_1",
	FeatureLevel9_2:  "9_2",
	FeatureLevel9_3:  "9_3",
	FeatureLevel10_0: "10_0",
	FeatureLevel10_1: "10_1",
	FeatureLevel11_0: "11_0",
	FeatureLevel11_1: "11_1",
	FeatureLevel12_0: "12_0",
	FeatureLevel12_1: "12_1",
}

func (l FeatureLevel) native() _D3D_FEATURE_LEVEL { return featureLevelNative[l] }

func featureLevelFromNative(n _D3D_FEATURE_LEVEL) (FeatureLevel, bool) {
	return fromNative[FeatureLevel](featureLevelNative[:], n)
}

func (l FeatureLevel) String() string {
	if int(l) < 0 || int(l) >= len(featureLevelNames) {
		return fmt.Sprintf("FeatureLevel(%d)", int(l))
	}
	return featureLevelNames[l]
}

// ParseFeatureLevel accepts "11_0", "11.0" or "12_1" style names.
func ParseFeatureLevel(s string) (FeatureLevel, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", "_")
	for i, name := range featureLevelNames {
		if name == s {
			return FeatureLevel(i), nil
		}
	}
	return 0, fmt.Errorf("dieseldx: unknown feature level %q", s)
}

// fromNative is the reverse lookup for the variant->native tables.
func fromNative[T ~int, N comparable](table []N, n N) (T, bool) {
	for i, v := range table {
		if v == n {
			return T(i), true
		}
	}
	return 0, false
}

// GPUAddress is a GPU virtual address.
type GPUAddress uint64

// Subresource is a flat mip/array-slice index into a resource.
type Subresource = uint32

// AllSubresources addresses every subresource in a barrier.
const AllSubresources Subresource = 0xffffffff

// Rect is a clip rectangle in pixels.
type Rect struct {
	Left, Top, Right, Bottom int32
}

func rectsNative(rects []Rect) ([]_D3D12_RECT, uintptr) {
	if len(rects) == 0 {
		return nil, 0
	}
	out := make([]_D3D12_RECT, len(rects))
	for i, r := range rects {
		out[i] = _D3D12_RECT{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
	}
	return out, sliceAddr(out)
}

// Viewport maps normalized device coordinates to a render target region.
type Viewport struct {
	X, Y, Width, Height float32
	MinDepth, MaxDepth  float32
}

// SampleDesc is the multisample count and quality.
type SampleDesc struct {
	Count   uint32
	Quality uint32
}

func (s SampleDesc) native() _DXGI_SAMPLE_DESC {
	return _DXGI_SAMPLE_DESC{Count: s.Count, Quality: s.Quality}
}

// WorkGroupCount is a dispatch size in thread groups.
type WorkGroupCount [3]uint32

// Range is a byte range [Begin, End) inside a subresource.
type Range struct {
	Begin, End uintptr
}

// CPUDescriptor is a CPU descriptor handle.
type CPUDescriptor struct {
	Ptr uintptr
}

// Offset advances the handle by n descriptors of size increment.
func (d CPUDescriptor) Offset(n int, increment uint32) CPUDescriptor {
	return CPUDescriptor{Ptr: uintptr(int64(d.Ptr) + int64(n)*int64(increment))}
}

// GPUDescriptor is a shader-visible descriptor handle.
type GPUDescriptor struct {
	Ptr uint64
}

func (d GPUDescriptor) Offset(n int, increment uint32) GPUDescriptor {
	return GPUDescriptor{Ptr: uint64(int64(d.Ptr) + int64(n)*int64(increment))}
}

// sliceAddr returns the address of the first element, or 0 for an empty
// slice. The caller keeps the slice alive across the native call.
func sliceAddr[T any](s []T) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&s[0]))
}
