//go:build windows

package dieseldx

import (
	"unsafe"

	"github.com/pkg/errors"
)

// ConstantBufferAlignment is the placement alignment of constant buffer
// views and root CBVs.
const ConstantBufferAlignment = 256

// ConstantBuffer keeps one upload-heap copy of a constant block per frame
// in flight, mapped for the life of the buffer. Write to the current
// frame's copy only; the GPU may still read the others.
type ConstantBuffer struct {
	resource *Resource
	mapped   []byte
	stride   uint64
	frames   int
}

func NewConstantBuffer(device *Device, size uint64, frames int) (*ConstantBuffer, error) {
	if size == 0 || frames <= 0 {
		return nil, errors.Errorf("dieseldx: constant buffer needs a size and at least one frame, got %d bytes, %d frames", size, frames)
	}
	stride := (size + ConstantBufferAlignment - 1) &^ (ConstantBufferAlignment - 1)
	res, err := device.CreateCommittedResource(
		NewHeapProperties(HeapTypeUpload, CpuPageUnknown, MemoryPoolUnknown, 0, 0),
		HeapFlagNone, BufferDesc(stride*uint64(frames), ResourceFlagNone),
		ResourceStateGenericRead, nil)
	if err != nil {
		return nil, err
	}
	p, err := res.Map(0, &Range{})
	if err != nil {
		res.Release()
		return nil, err
	}
	Logger().Debug("dieseldx: created constant buffer", "size", size, "frames", frames)
	return &ConstantBuffer{
		resource: res,
		mapped:   unsafe.Slice((*byte)(p), stride*uint64(frames)),
		stride:   stride,
		frames:   frames,
	}, nil
}

// Write copies data into frame's copy.
func (c *ConstantBuffer) Write(frame int, data []byte) error {
	if frame < 0 || frame >= c.frames {
		return errors.Errorf("dieseldx: frame %d out of range [0, %d)", frame, c.frames)
	}
	if uint64(len(data)) > c.stride {
		return errors.Errorf("dieseldx: %d bytes do not fit a %d byte constant buffer", len(data), c.stride)
	}
	off := uint64(frame) * c.stride
	copy(c.mapped[off:off+c.stride], data)
	return nil
}

// Address is the GPU address of frame's copy, for root CBVs.
func (c *ConstantBuffer) Address(frame int) GPUAddress {
	return c.resource.GPUVirtualAddress() + GPUAddress(uint64(frame)*c.stride)
}

func (c *ConstantBuffer) Stride() uint64      { return c.stride }
func (c *ConstantBuffer) Resource() *Resource { return c.resource }

func (c *ConstantBuffer) Destroy() {
	if c.resource == nil {
		return
	}
	c.resource.Unmap(0, nil)
	c.mapped = nil
	c.resource.Release()
	c.resource = nil
}
