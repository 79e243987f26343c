package dieseldx

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagAt(b []byte, off int) _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE {
	return _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE(binary.LittleEndian.Uint32(b[off:]))
}

func TestPipelineStreamAlignment(t *testing.T) {
	if ptrAlign != 8 {
		t.Skip("64-bit layout")
	}
	code := []byte{0x44, 0x58, 0x42, 0x43}

	var s PipelineStream
	assert.Zero(t, s.Len())
	assert.Nil(t, s.Bytes())

	s.RootSignature(nil)
	assert.Equal(t, 16, s.Len(), "tag, pad, pointer")
	s.SampleMask(0xffffffff)
	assert.Equal(t, 24, s.Len(), "tag and mask share a word")
	s.Shader(SubobjectCS, ShaderFromBytes(code))
	assert.Equal(t, 48, s.Len(), "tag, pad, pointer, length")
	s.RenderTargetFormats(FormatR8G8B8A8Unorm, FormatR16G16B16A16Float)
	assert.Equal(t, 88, s.Len(), "tag, eight formats, count")
	s.SampleDesc(SampleDesc{Count: 4})
	assert.Equal(t, 104, s.Len())

	b := s.Bytes()
	require.Len(t, b, 104)

	assert.Equal(t, _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_ROOT_SIGNATURE, tagAt(b, 0))
	assert.Zero(t, binary.LittleEndian.Uint64(b[8:]))

	assert.Equal(t, _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_SAMPLE_MASK, tagAt(b, 16))
	assert.Equal(t, uint32(0xffffffff), binary.LittleEndian.Uint32(b[20:]))

	assert.Equal(t, _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_CS, tagAt(b, 24))
	assert.Equal(t, uint64(uintptr(unsafe.Pointer(&code[0]))), binary.LittleEndian.Uint64(b[32:]))
	assert.Equal(t, uint64(len(code)), binary.LittleEndian.Uint64(b[40:]))

	assert.Equal(t, _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_RENDER_TARGET_FORMATS, tagAt(b, 48))
	assert.Equal(t, uint32(FormatR8G8B8A8Unorm), binary.LittleEndian.Uint32(b[52:]))
	assert.Equal(t, uint32(FormatR16G16B16A16Float), binary.LittleEndian.Uint32(b[56:]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(b[84:]))

	assert.Equal(t, _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_SAMPLE_DESC, tagAt(b, 88))
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(b[92:]))

	n := s.native()
	assert.Equal(t, uintptr(104), n.SizeInBytes)
	assert.Equal(t, uintptr(unsafe.Pointer(&b[0])), n.pPipelineStateSubobjectStream)
}

func TestPipelineStreamRecordsStartAligned(t *testing.T) {
	var s PipelineStream
	s.NodeMask(1)
	s.Flags(PipelineStateFlagToolDebug)
	s.PrimitiveTopology(TopologyTypeTriangle)
	s.DepthStencilFormat(FormatD32Float)
	s.CachedPSO(CachedPSO{})
	s.Raw(SubobjectIBStripCut, []byte{1, 0, 0, 0}, 4)

	assert.Zero(t, uintptr(s.Len())%ptrAlign)

	b := s.Bytes()
	off := 0
	for _, want := range []_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE{
		_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_NODE_MASK,
		_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_FLAGS,
		_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_PRIMITIVE_TOPOLOGY,
		_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_DEPTH_STENCIL_FORMAT,
	} {
		assert.Equal(t, want, tagAt(b, off))
		off += int(alignUp(8, ptrAlign))
	}
	assert.Equal(t, _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_CACHED_PSO, tagAt(b, off))
}

func TestPipelineStreamGrowKeepsRecords(t *testing.T) {
	var s PipelineStream
	for i := 0; i < 64; i++ {
		s.NodeMask(uint32(i))
	}
	b := s.Bytes()
	for i := 0; i < 64; i++ {
		off := i * int(alignUp(8, ptrAlign))
		require.Equal(t, _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_NODE_MASK, tagAt(b, off))
		require.Equal(t, uint32(i), binary.LittleEndian.Uint32(b[off+4:]))
	}
}

func TestShaderAndCachedPSO(t *testing.T) {
	var null Shader
	assert.True(t, null.IsNull())
	assert.Equal(t, _D3D12_SHADER_BYTECODE{}, null.native())

	code := []byte{1, 2, 3}
	sh := ShaderFromBytes(code)
	assert.False(t, sh.IsNull())
	assert.Equal(t, code, sh.Bytes())
	assert.Equal(t, uintptr(3), sh.native().BytecodeLength)

	c := CachedPSOFromBytes([]byte{9, 9}).native()
	assert.Equal(t, uintptr(2), c.CachedBlobSizeInBytes)
	assert.Equal(t, _D3D12_CACHED_PIPELINE_STATE{}, CachedPSO{}.native())

	var pso *PipelineState
	assert.Zero(t, pso.ptr())
}
