package dieseldx

import "unsafe"

type PipelineStateFlags uint32

const (
	PipelineStateFlagNone      PipelineStateFlags = 0
	PipelineStateFlagToolDebug PipelineStateFlags = 0x1
)

// ShaderCompileFlags are the D3DCOMPILE_* bits passed to CompileShader.
type ShaderCompileFlags uint32

const (
	CompileDebug                 ShaderCompileFlags = 1 << 0
	CompileSkipValidation        ShaderCompileFlags = 1 << 1
	CompileSkipOptimization      ShaderCompileFlags = 1 << 2
	CompilePackMatrixRowMajor    ShaderCompileFlags = 1 << 3
	CompilePackMatrixColumnMajor ShaderCompileFlags = 1 << 4
	CompilePartialPrecision      ShaderCompileFlags = 1 << 5
	CompileEnableStrictness      ShaderCompileFlags = 1 << 11
	CompileOptimizationLevel3    ShaderCompileFlags = 1 << 15
)

// Shader is compiled bytecode handed to a pipeline. The zero value is the
// null shader. A Shader built from a Blob is only valid while the blob is.
type Shader struct {
	code []byte
}

// ShaderFromBytes wraps precompiled bytecode. The slice is not copied.
func ShaderFromBytes(code []byte) Shader {
	return Shader{code: code}
}

func (s Shader) Bytes() []byte { return s.code }
func (s Shader) IsNull() bool  { return len(s.code) == 0 }

func (s Shader) native() _D3D12_SHADER_BYTECODE {
	return _D3D12_SHADER_BYTECODE{
		pShaderBytecode: sliceAddr(s.code),
		BytecodeLength:  uintptr(len(s.code)),
	}
}

// CachedPSO is a pipeline blob previously returned by the driver. The zero
// value asks for a fresh compile.
type CachedPSO struct {
	data []byte
}

func CachedPSOFromBytes(data []byte) CachedPSO {
	return CachedPSO{data: data}
}

func (c CachedPSO) native() _D3D12_CACHED_PIPELINE_STATE {
	return _D3D12_CACHED_PIPELINE_STATE{
		pCachedBlob:           sliceAddr(c.data),
		CachedBlobSizeInBytes: uintptr(len(c.data)),
	}
}

// PipelineState is a compiled graphics or compute pipeline.
type PipelineState struct {
	inner *iD3D12PipelineState
}

type PrimitiveTopologyType int32

const (
	TopologyTypeUndefined PrimitiveTopologyType = 0
	TopologyTypePoint     PrimitiveTopologyType = 1
	TopologyTypeLine      PrimitiveTopologyType = 2
	TopologyTypeTriangle  PrimitiveTopologyType = 3
	TopologyTypePatch     PrimitiveTopologyType = 4
)

// GraphicsPipelineStateDesc names the parts of a graphics pipeline. Device
// has no native translation for it yet; build graphics pipelines with a
// PipelineStream and CreatePipelineStateFromStream.
type GraphicsPipelineStateDesc struct {
	RootSignature *RootSignature
	VS, PS        Shader
	Topology      PrimitiveTopologyType
	RTVFormats    []Format
	DSVFormat     Format
	Sample        SampleDesc
	NodeMask      uint32
	Flags         PipelineStateFlags
}

// Subobject tags one record of a pipeline state stream.
type Subobject int

const (
	SubobjectRootSignature Subobject = iota
	SubobjectVS
	SubobjectPS
	SubobjectDS
	SubobjectHS
	SubobjectGS
	SubobjectCS
	SubobjectStreamOutput
	SubobjectBlend
	SubobjectSampleMask
	SubobjectRasterizer
	SubobjectDepthStencil
	SubobjectInputLayout
	SubobjectIBStripCut
	SubobjectPrimitiveTopology
	SubobjectRTFormats
	SubobjectDSFormat
	SubobjectSampleDesc
	SubobjectNodeMask
	SubobjectCachedPSO
	SubobjectFlags
	SubobjectDepthStencil1
)

var subobjectNative = [...]_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE{
	SubobjectRootSignature:     _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_ROOT_SIGNATURE,
	SubobjectVS:                _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_VS,
	SubobjectPS:                _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_PS,
	SubobjectDS:                _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_DS,
	SubobjectHS:                _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_HS,
	SubobjectGS:                _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_GS,
	SubobjectCS:                _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_CS,
	SubobjectStreamOutput:      _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_STREAM_OUTPUT,
	SubobjectBlend:             _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_BLEND,
	SubobjectSampleMask:        _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_SAMPLE_MASK,
	SubobjectRasterizer:        _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_RASTERIZER,
	SubobjectDepthStencil:      _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_DEPTH_STENCIL,
	SubobjectInputLayout:       _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_INPUT_LAYOUT,
	SubobjectIBStripCut:        _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_IB_STRIP_CUT_VALUE,
	SubobjectPrimitiveTopology: _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_PRIMITIVE_TOPOLOGY,
	SubobjectRTFormats:         _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_RENDER_TARGET_FORMATS,
	SubobjectDSFormat:          _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_DEPTH_STENCIL_FORMAT,
	SubobjectSampleDesc:        _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_SAMPLE_DESC,
	SubobjectNodeMask:          _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_NODE_MASK,
	SubobjectCachedPSO:         _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_CACHED_PSO,
	SubobjectFlags:             _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_FLAGS,
	SubobjectDepthStencil1:     _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_DEPTH_STENCIL1,
}

func (s Subobject) native() _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE { return subobjectNative[s] }

func subobjectFromNative(n _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE) (Subobject, bool) {
	return fromNative[Subobject](subobjectNative[:], n)
}

const ptrAlign = unsafe.Sizeof(uintptr(0))

func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

// PipelineStream packs pipeline subobjects the way ID3D12Device2 expects:
// each record is a 32-bit type tag followed by its payload, and every
// record starts on a pointer boundary.
//
// The stream holds references to the shaders, root signature and byte
// slices added to it until it is dropped.
type PipelineStream struct {
	buf  []uint64
	size uintptr
	keep []any
}

// Len is the packed size in bytes.
func (s *PipelineStream) Len() int { return int(s.size) }

// Bytes returns a view of the packed records.
func (s *PipelineStream) Bytes() []byte {
	if s.size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.buf[0])), s.size)
}

// Raw appends a record with a caller-encoded payload. align is the
// payload's natural alignment.
func (s *PipelineStream) Raw(kind Subobject, payload []byte, align uintptr) {
	if align < 4 {
		align = 4
	}
	start := s.size
	off := alignUp(4, align)
	end := alignUp(start+off+uintptr(len(payload)), ptrAlign)
	s.grow(end)

	b := unsafe.Slice((*byte)(unsafe.Pointer(&s.buf[0])), end)
	*(*_D3D12_PIPELINE_STATE_SUBOBJECT_TYPE)(unsafe.Pointer(&b[start])) = kind.native()
	copy(b[start+off:], payload)
	s.size = end
}

func (s *PipelineStream) grow(n uintptr) {
	words := int((n + 7) / 8)
	if words <= cap(s.buf) {
		s.buf = s.buf[:words]
		return
	}
	buf := make([]uint64, words, words*2)
	copy(buf, s.buf)
	s.buf = buf
}

func appendValue[T any](s *PipelineStream, kind Subobject, v *T) {
	size := unsafe.Sizeof(*v)
	payload := unsafe.Slice((*byte)(unsafe.Pointer(v)), size)
	s.Raw(kind, payload, unsafe.Alignof(*v))
}

func (s *PipelineStream) RootSignature(rs *RootSignature) {
	p := uintptr(0)
	if rs != nil {
		p = uintptr(unsafe.Pointer(rs.inner))
		s.keep = append(s.keep, rs)
	}
	appendValue(s, SubobjectRootSignature, &p)
}

// Shader adds a shader stage; kind is one of SubobjectVS through
// SubobjectCS.
func (s *PipelineStream) Shader(kind Subobject, sh Shader) {
	n := sh.native()
	s.keep = append(s.keep, sh.code)
	appendValue(s, kind, &n)
}

func (s *PipelineStream) SampleMask(mask uint32) { appendValue(s, SubobjectSampleMask, &mask) }
func (s *PipelineStream) NodeMask(mask uint32)   { appendValue(s, SubobjectNodeMask, &mask) }
func (s *PipelineStream) Flags(f PipelineStateFlags) {
	appendValue(s, SubobjectFlags, &f)
}

func (s *PipelineStream) PrimitiveTopology(t PrimitiveTopologyType) {
	appendValue(s, SubobjectPrimitiveTopology, &t)
}

func (s *PipelineStream) DepthStencilFormat(f Format) { appendValue(s, SubobjectDSFormat, &f) }

func (s *PipelineStream) SampleDesc(d SampleDesc) {
	n := d.native()
	appendValue(s, SubobjectSampleDesc, &n)
}

// RenderTargetFormats sets up to eight render target formats.
func (s *PipelineStream) RenderTargetFormats(formats ...Format) {
	var n struct {
		RTFormats        [8]Format
		NumRenderTargets uint32
	}
	n.NumRenderTargets = uint32(copy(n.RTFormats[:], formats))
	appendValue(s, SubobjectRTFormats, &n)
}

func (s *PipelineStream) CachedPSO(c CachedPSO) {
	n := c.native()
	s.keep = append(s.keep, c.data)
	appendValue(s, SubobjectCachedPSO, &n)
}

func (s *PipelineStream) native() _D3D12_PIPELINE_STATE_STREAM_DESC {
	if s.size == 0 {
		return _D3D12_PIPELINE_STATE_STREAM_DESC{}
	}
	return _D3D12_PIPELINE_STATE_STREAM_DESC{
		SizeInBytes:                   s.size,
		pPipelineStateSubobjectStream: uintptr(unsafe.Pointer(&s.buf[0])),
	}
}

func (p *PipelineState) ptr() uintptr {
	if p == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(p.inner))
}
