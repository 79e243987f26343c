package dieseldx

import "unsafe"

// Resource is a buffer or texture allocation.
type Resource struct {
	inner *iD3D12Resource
}

func (r *Resource) ptr() uintptr {
	if r == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(r.inner))
}

type ResourceFlags uint32

const (
	ResourceFlagNone                    ResourceFlags = 0
	ResourceFlagAllowRenderTarget       ResourceFlags = 0x1
	ResourceFlagAllowDepthStencil       ResourceFlags = 0x2
	ResourceFlagAllowUnorderedAccess    ResourceFlags = 0x4
	ResourceFlagDenyShaderResource      ResourceFlags = 0x8
	ResourceFlagAllowCrossAdapter       ResourceFlags = 0x10
	ResourceFlagAllowSimultaneousAccess ResourceFlags = 0x20
)

// ResourceDesc describes a committed or placed resource. Use BufferDesc or
// Texture2DDesc for the common shapes.
type ResourceDesc struct {
	n _D3D12_RESOURCE_DESC
}

func BufferDesc(size uint64, flags ResourceFlags) ResourceDesc {
	return ResourceDesc{n: _D3D12_RESOURCE_DESC{
		Dimension:        _D3D12_RESOURCE_DIMENSION_BUFFER,
		Width:            size,
		Height:           1,
		DepthOrArraySize: 1,
		MipLevels:        1,
		Format:           FormatUnknown,
		SampleDesc:       _DXGI_SAMPLE_DESC{Count: 1},
		Layout:           _D3D12_TEXTURE_LAYOUT_ROW_MAJOR,
		Flags:            uint32(flags),
	}}
}

func Texture2DDesc(format Format, width uint64, height uint32, arraySize, mipLevels uint16, sample SampleDesc, flags ResourceFlags) ResourceDesc {
	return ResourceDesc{n: _D3D12_RESOURCE_DESC{
		Dimension:        _D3D12_RESOURCE_DIMENSION_TEXTURE2D,
		Width:            width,
		Height:           height,
		DepthOrArraySize: arraySize,
		MipLevels:        mipLevels,
		Format:           format,
		SampleDesc:       sample.native(),
		Layout:           _D3D12_TEXTURE_LAYOUT_UNKNOWN,
		Flags:            uint32(flags),
	}}
}

// ClearValue is the optimized clear value for render targets and depth
// buffers. Color is ignored for depth formats.
type ClearValue struct {
	Format  Format
	Color   [4]float32
	Depth   float32
	Stencil uint8
}

type _D3D12_CLEAR_VALUE struct {
	Format Format
	union  [4]float32
}

func (c *ClearValue) native() *_D3D12_CLEAR_VALUE {
	if c == nil {
		return nil
	}
	n := &_D3D12_CLEAR_VALUE{Format: c.Format}
	if c.Format.IsDepth() {
		n.union[0] = c.Depth
		*(*uint8)(unsafe.Pointer(&n.union[1])) = c.Stencil
	} else {
		n.union = c.Color
	}
	return n
}

// DiscardRegion limits DiscardResource to some rectangles of a run of
// subresources [Subresources.Begin, Subresources.End).
type DiscardRegion struct {
	Rects        []Rect
	Subresources SubresourceRange
}

// SubresourceRange is a half-open range of subresource indices.
type SubresourceRange struct {
	Begin, End Subresource
}

// discardLayout keeps the rect storage alive next to the native region.
type discardLayout struct {
	region _D3D12_DISCARD_REGION
	rects  []_D3D12_RECT
}

func (d *DiscardRegion) native() (*discardLayout, error) {
	if d.Subresources.Begin >= d.Subresources.End {
		return nil, ErrEmptySubresourceRange
	}
	rects, p := rectsNative(d.Rects)
	return &discardLayout{
		region: _D3D12_DISCARD_REGION{
			NumRects:         uint32(len(rects)),
			pRects:           p,
			FirstSubresource: d.Subresources.Begin,
			NumSubresources:  d.Subresources.End - d.Subresources.Begin,
		},
		rects: rects,
	}, nil
}

func (r *Range) native() *_D3D12_RANGE {
	if r == nil {
		return nil
	}
	return &_D3D12_RANGE{Begin: r.Begin, End: r.End}
}
