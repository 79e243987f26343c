package dieseldx

// Blob is a reference-counted byte buffer owned by the native runtime:
// serialized root signatures, compiled shaders and compiler messages.
type Blob struct {
	inner *iD3DBlob
}

// CompileTarget names a shader model profile such as "cs_5_1" or "ps_5_0".
type CompileTarget string

const (
	TargetVS50 CompileTarget = "vs_5_0"
	TargetPS50 CompileTarget = "ps_5_0"
	TargetCS50 CompileTarget = "cs_5_0"
	TargetVS51 CompileTarget = "vs_5_1"
	TargetPS51 CompileTarget = "ps_5_1"
	TargetCS51 CompileTarget = "cs_5_1"
)
