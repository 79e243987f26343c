package dieseldx

import (
	"runtime"
	"strings"
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

func (b *Blob) Release()     { release(&b.inner) }
func (b *Blob) IsNull() bool { return b.inner == nil }
func (b *Blob) Clone() *Blob { return &Blob{inner: addRef(b.inner)} }

// Bytes returns a view of the blob's buffer. It is valid until the blob is
// released.
func (b *Blob) Bytes() []byte {
	if b == nil || b.inner == nil {
		return nil
	}
	this := uintptr(unsafe.Pointer(b.inner))
	p, _, _ := syscall.SyscallN(b.inner.vtbl.GetBufferPointer, this)
	n, _, _ := syscall.SyscallN(b.inner.vtbl.GetBufferSize, this)
	if p == 0 || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// String reads the blob as the NUL-terminated text compilers and
// serializers put in their error blobs.
func (b *Blob) String() string {
	s := string(b.Bytes())
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// diagnosticError builds a DiagnosticError from a failing call and takes
// ownership of its error blob.
func diagnosticError(op string, ret uintptr, errBlob *iD3DBlob) error {
	e := &DiagnosticError{Op: op, HR: HRESULT(int32(uint32(ret)))}
	if errBlob != nil {
		msg := &Blob{inner: errBlob}
		e.Message = msg.String()
		msg.Release()
	}
	return errors.WithStack(e)
}

// ShaderFromBlob wraps a compiled blob. The blob must outlive the shader.
func ShaderFromBlob(b *Blob) Shader {
	return Shader{code: b.Bytes()}
}

func CachedPSOFromBlob(b *Blob) CachedPSO {
	return CachedPSO{data: b.Bytes()}
}

// CompileShader compiles HLSL source with d3dcompiler_47. target is a
// profile such as "cs_5_1". Compiler errors come back as a
// *DiagnosticError with the compiler output; warnings are logged.
func CompileShader(code []byte, target CompileTarget, entry string, flags ShaderCompileFlags) (*Blob, error) {
	if err := d3dcompiler.Load(); err != nil {
		return nil, errors.Wrap(err, "dieseldx: loading d3dcompiler_47.dll")
	}
	pEntry, err := windows.BytePtrFromString(entry)
	if err != nil {
		return nil, err
	}
	pTarget, err := windows.BytePtrFromString(string(target))
	if err != nil {
		return nil, err
	}
	var blob, errBlob *iD3DBlob
	r, _, _ := procD3DCompile.Call(
		sliceAddr(code), uintptr(len(code)),
		0, 0, 0,
		uintptr(unsafe.Pointer(pEntry)), uintptr(unsafe.Pointer(pTarget)),
		uintptr(flags), 0,
		uintptr(unsafe.Pointer(&blob)), uintptr(unsafe.Pointer(&errBlob)))
	runtime.KeepAlive(code)
	if isError(r) {
		return nil, diagnosticError("D3DCompile", r, errBlob)
	}
	if errBlob != nil {
		warn := &Blob{inner: errBlob}
		if msg := warn.String(); msg != "" {
			Logger().Warn("dieseldx: shader compiled with warnings", "entry", entry, "target", string(target), "output", msg)
		}
		warn.Release()
	}
	return &Blob{inner: blob}, nil
}

func (p *PipelineState) Release()     { release(&p.inner) }
func (p *PipelineState) IsNull() bool { return p.inner == nil }

func (p *PipelineState) Clone() *PipelineState {
	return &PipelineState{inner: addRef(p.inner)}
}

// CachedBlob returns the driver's serialized form of p for CachedPSO.
func (p *PipelineState) CachedBlob() (*Blob, error) {
	var b *iD3DBlob
	r, _, _ := syscall.SyscallN(p.inner.vtbl.GetCachedBlob, p.ptr(), uintptr(unsafe.Pointer(&b)))
	if err := newError(r); err != nil {
		return nil, err
	}
	return &Blob{inner: b}, nil
}
