package dieseldx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootParameterConstructors(t *testing.T) {
	b := Binding{Space: 1, Register: 2}

	c := ConstantsParameter(ShaderVisibilityPS, b, 4)
	assert.Equal(t, RootParameterConstants, c.Kind())
	assert.Equal(t, ShaderVisibilityPS, c.Visibility())
	assert.Equal(t, b, c.Binding())
	assert.Equal(t, uint32(4), c.Num32BitValues())

	assert.Equal(t, RootParameterCBV, CBVParameter(ShaderVisibilityAll, b).Kind())
	assert.Equal(t, RootParameterSRV, SRVParameter(ShaderVisibilityAll, b).Kind())
	assert.Equal(t, RootParameterUAV, UAVParameter(ShaderVisibilityAll, b).Kind())

	ranges := []DescriptorRange{NewDescriptorRange(DescriptorRangeSRV, 3, Binding{}, 0)}
	table := DescriptorTableParameter(ShaderVisibilityAll, ranges...)
	ranges[0].Count = 99
	assert.Equal(t, uint32(3), table.Ranges()[0].Count, "table keeps its own copy of the ranges")
}

func TestRootSignatureLayout(t *testing.T) {
	params := []RootParameter{
		DescriptorTableParameter(ShaderVisibilityPS,
			NewDescriptorRange(DescriptorRangeSRV, 2, Binding{Register: 0}, 0),
			NewDescriptorRange(DescriptorRangeCBV, 1, Binding{Space: 1, Register: 3}, DescriptorRangeOffsetAppend),
		),
		ConstantsParameter(ShaderVisibilityVS, Binding{Register: 1}, 16),
		UAVParameter(ShaderVisibilityAll, Binding{Space: 2, Register: 5}),
	}
	samplers := []StaticSampler{
		NewStaticSampler(ShaderVisibilityPS, Binding{Register: 0}, NewFilter(FilterLinear, FilterLinear, FilterPoint, FilterReductionStandard),
			[3]TextureAddressMode{AddressWrap, AddressClamp, AddressBorder}, 0, 1, ComparisonNever, BorderOpaqueWhite, [2]float32{0, 8}),
	}
	l := newRootSignatureLayout(params, samplers, RootSignatureFlagAllowInputAssemblerInputLayout)

	assert.Equal(t, uint32(3), l.desc.NumParameters)
	assert.Equal(t, sliceAddr(l.params), l.desc.pParameters)
	assert.Equal(t, uint32(1), l.desc.NumStaticSamplers)
	assert.Equal(t, sliceAddr(l.samplers), l.desc.pStaticSamplers)
	assert.Equal(t, RootSignatureFlagAllowInputAssemblerInputLayout, l.desc.Flags)

	p0 := &l.params[0]
	assert.Equal(t, _D3D12_ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE, p0.ParameterType)
	assert.Equal(t, _D3D12_SHADER_VISIBILITY_PIXEL, p0.ShaderVisibility)
	table := p0.DescriptorTable()
	require.Equal(t, uint32(2), table.NumDescriptorRanges)
	assert.Equal(t, sliceAddr(l.ranges[0]), table.pDescriptorRanges)
	ranges := l.ranges[0]
	require.Len(t, ranges, 2)
	assert.Equal(t, _D3D12_DESCRIPTOR_RANGE_TYPE_CBV, ranges[1].RangeType)
	assert.Equal(t, uint32(3), ranges[1].BaseShaderRegister)
	assert.Equal(t, uint32(1), ranges[1].RegisterSpace)
	assert.Equal(t, uint32(DescriptorRangeOffsetAppend), ranges[1].OffsetInDescriptorsFromTableStart)

	p1 := &l.params[1]
	assert.Equal(t, _D3D12_ROOT_PARAMETER_TYPE_32BIT_CONSTANTS, p1.ParameterType)
	assert.Equal(t, _D3D12_ROOT_CONSTANTS{ShaderRegister: 1, Num32BitValues: 16}, *p1.Constants())
	assert.Nil(t, l.ranges[1])

	p2 := &l.params[2]
	assert.Equal(t, _D3D12_ROOT_PARAMETER_TYPE_UAV, p2.ParameterType)
	assert.Equal(t, _D3D12_ROOT_DESCRIPTOR{ShaderRegister: 5, RegisterSpace: 2}, *p2.Descriptor())

	s := l.samplers[0]
	assert.Equal(t, AddressBorder, s.AddressW)
	assert.Equal(t, _D3D12_STATIC_BORDER_COLOR_OPAQUE_WHITE, s.BorderColor)
	assert.Equal(t, float32(8), s.MaxLOD)
	assert.Equal(t, _D3D12_SHADER_VISIBILITY_PIXEL, s.ShaderVisibility)
}

func TestRootSignatureLayoutEmpty(t *testing.T) {
	l := newRootSignatureLayout(nil, nil, RootSignatureFlagNone)
	assert.Zero(t, l.desc.NumParameters)
	assert.Zero(t, l.desc.pParameters)
	assert.Zero(t, l.desc.NumStaticSamplers)
	assert.Zero(t, l.desc.pStaticSamplers)
}

func TestFilterEncoding(t *testing.T) {
	// Values of the D3D12_FILTER enumerators.
	assert.Equal(t, Filter(0x0), NewFilter(FilterPoint, FilterPoint, FilterPoint, FilterReductionStandard))
	assert.Equal(t, Filter(0x15), NewFilter(FilterLinear, FilterLinear, FilterLinear, FilterReductionStandard))
	assert.Equal(t, Filter(0x14), NewFilter(FilterLinear, FilterLinear, FilterPoint, FilterReductionStandard))
	assert.Equal(t, Filter(0x10), NewFilter(FilterLinear, FilterPoint, FilterPoint, FilterReductionStandard))
	assert.Equal(t, Filter(0x95), NewFilter(FilterLinear, FilterLinear, FilterLinear, FilterReductionComparison))
	assert.Equal(t, Filter(0x55), NewAnisotropicFilter(FilterReductionStandard))
	assert.Equal(t, Filter(0xd5), NewAnisotropicFilter(FilterReductionComparison))
	assert.Equal(t, Filter(0x195), NewFilter(FilterLinear, FilterLinear, FilterLinear, FilterReductionMaximum))
}

func TestSamplerDescNative(t *testing.T) {
	d := SamplerDesc{
		Filter:        NewAnisotropicFilter(FilterReductionStandard),
		AddressMode:   [3]TextureAddressMode{AddressMirror, AddressMirrorOnce, AddressWrap},
		MaxAnisotropy: 16,
		Comparison:    ComparisonLessEqual,
		BorderColor:   [4]float32{1, 0, 0, 1},
		MaxLOD:        1000,
	}
	n := d.native()
	assert.Equal(t, AddressMirror, n.AddressU)
	assert.Equal(t, AddressMirrorOnce, n.AddressV)
	assert.Equal(t, AddressWrap, n.AddressW)
	assert.Equal(t, uint32(16), n.MaxAnisotropy)
	assert.Equal(t, ComparisonLessEqual, n.ComparisonFunc)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, n.BorderColor)
}
