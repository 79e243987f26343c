package dieseldx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTable asserts a variant->native table is injective and that the
// reverse lookup returns every variant.
func checkTable[T ~int, N comparable](t *testing.T, name string, table []N, from func(N) (T, bool)) {
	t.Helper()
	require.NotEmpty(t, table, name)
	seen := make(map[N]T, len(table))
	for i, n := range table {
		v := T(i)
		prev, dup := seen[n]
		require.False(t, dup, "%s: %d and %d share native %v", name, prev, v, n)
		seen[n] = v

		got, ok := from(n)
		require.True(t, ok, "%s: %v", name, n)
		assert.Equal(t, v, got, name)
	}
}

func TestEnumTables(t *testing.T) {
	checkTable(t, "CmdListType", cmdListTypeNative[:], cmdListTypeFromNative)
	checkTable(t, "FeatureLevel", featureLevelNative[:], featureLevelFromNative)
	checkTable(t, "DescriptorHeapType", descriptorHeapTypeNative[:], descriptorHeapTypeFromNative)
	checkTable(t, "ShaderVisibility", shaderVisibilityNative[:], shaderVisibilityFromNative)
	checkTable(t, "DescriptorRangeType", descriptorRangeTypeNative[:], descriptorRangeTypeFromNative)
	checkTable(t, "Scaling", scalingNative[:], scalingFromNative)
	checkTable(t, "SwapEffect", swapEffectNative[:], swapEffectFromNative)
	checkTable(t, "AlphaMode", alphaModeNative[:], alphaModeFromNative)
	checkTable(t, "HeapType", heapTypeNative[:], heapTypeFromNative)
	checkTable(t, "CpuPageProperty", cpuPageNative[:], cpuPageFromNative)
	checkTable(t, "MemoryPool", memoryPoolNative[:], memoryPoolFromNative)
	checkTable(t, "Subobject", subobjectNative[:], subobjectFromNative)
	checkTable(t, "QueryHeapType", queryHeapTypeNative[:], queryHeapTypeFromNative)
	checkTable(t, "Priority", priorityNative[:], priorityFromNative)

	checkTable(t, "RootParameterKind", rootParameterKindNative[:], func(n _D3D12_ROOT_PARAMETER_TYPE) (RootParameterKind, bool) {
		return fromNative[RootParameterKind](rootParameterKindNative[:], n)
	})
	checkTable(t, "StaticBorderColor", staticBorderColorNative[:], func(n _D3D12_STATIC_BORDER_COLOR) (StaticBorderColor, bool) {
		return fromNative[StaticBorderColor](staticBorderColorNative[:], n)
	})
	checkTable(t, "RootSignatureVersion", rootSignatureVersionNative[:], func(n _D3D_ROOT_SIGNATURE_VERSION) (RootSignatureVersion, bool) {
		return fromNative[RootSignatureVersion](rootSignatureVersionNative[:], n)
	})
}

func TestFromNativeUnknown(t *testing.T) {
	_, ok := swapEffectFromNative(_DXGI_SWAP_EFFECT(99))
	assert.False(t, ok)
	_, ok = featureLevelFromNative(_D3D_FEATURE_LEVEL(0x1234))
	assert.False(t, ok)
}

func TestEnumNative(t *testing.T) {
	assert.Equal(t, _D3D12_COMMAND_LIST_TYPE_DIRECT, CmdListDirect.native())
	assert.Equal(t, _DXGI_SWAP_EFFECT_FLIP_DISCARD, SwapEffectFlipDiscard.native())
	assert.Equal(t, _D3D12_SHADER_VISIBILITY_ALL, ShaderVisibilityAll.native())
	assert.Equal(t, _D3D12_PIPELINE_STATE_SUBOBJECT_TYPE_CS, SubobjectCS.native())
}

func TestFeatureLevelNames(t *testing.T) {
	for i := range featureLevelNative {
		l := FeatureLevel(i)
		got, err := ParseFeatureLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	l, err := ParseFeatureLevel(" 12.1 ")
	require.NoError(t, err)
	assert.Equal(t, FeatureLevel12_1, l)

	_, err = ParseFeatureLevel("13_0")
	assert.Error(t, err)
	assert.Equal(t, "FeatureLevel(42)", FeatureLevel(42).String())
}

func TestFormatNames(t *testing.T) {
	for f, name := range formatNames {
		assert.Equal(t, name, f.String())
		got, err := ParseFormat("DXGI_FORMAT_" + name)
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	f, err := ParseFormat("r8g8b8a8_unorm_srgb")
	require.NoError(t, err)
	assert.Equal(t, FormatR8G8B8A8UnormSRGB, f)

	_, err = ParseFormat("R4G4")
	assert.Error(t, err)
	assert.Equal(t, "Format(1000)", Format(1000).String())

	assert.True(t, FormatD24UnormS8Uint.IsDepth())
	assert.False(t, FormatR32Float.IsDepth())
}
