package dieseldx

import (
	"fmt"
	"strings"
)

// Format is a DXGI_FORMAT value. Constants carry the native numbering.
type Format uint32

const (
	FormatUnknown           Format = 0
	FormatR32G32B32A32Float Format = 2
	FormatR32G32B32A32Uint  Format = 3
	FormatR32G32B32Float    Format = 6
	FormatR16G16B16A16Float Format = 10
	FormatR16G16B16A16Unorm Format = 11
	FormatR32G32Float       Format = 16
	FormatD32FloatS8X24Uint Format = 20
	FormatR10G10B10A2Unorm  Format = 24
	FormatR11G11B10Float    Format = 26
	FormatR8G8B8A8Unorm     Format = 28
	FormatR8G8B8A8UnormSRGB Format = 29
	FormatR8G8B8A8Uint      Format = 30
	FormatR8G8B8A8Snorm     Format = 31
	FormatR16G16Float       Format = 34
	FormatR32Typeless       Format = 39
	FormatD32Float          Format = 40
	FormatR32Float          Format = 41
	FormatR32Uint           Format = 42
	FormatR32Sint           Format = 43
	FormatD24UnormS8Uint    Format = 45
	FormatR8G8Unorm         Format = 49
	FormatR16Float          Format = 54
	FormatD16Unorm          Format = 55
	FormatR16Unorm          Format = 56
	FormatR16Uint           Format = 57
	FormatR8Unorm           Format = 61
	FormatR8Uint            Format = 62
	FormatB8G8R8A8Unorm     Format = 87
	FormatB8G8R8A8UnormSRGB Format = 91
)

var formatNames = map[Format]string{
	FormatUnknown:           "UNKNOWN",
	FormatR32G32B32A32Float: "R32G32B32A32_FLOAT",
	FormatR32G32B32A32Uint:  "R32G32B32A32_UINT",
	FormatR32G32B32Float:    "R32G32B32_FLOAT",
	FormatR16G16B16A16Float: "R16G16B16A16_FLOAT",
	FormatR16G16B16A16Unorm: "R16G16B16A16_UNORM",
	FormatR32G32Float:       "R32G32_FLOAT",
	FormatD32FloatS8X24Uint: "D32_FLOAT_S8X24_UINT",
	FormatR10G10B10A2Unorm:  "R10G10B10A2_UNORM",
	FormatR11G11B10Float:    "R11G11B10_FLOAT",
	FormatR8G8B8A8Unorm:     "R8G8B8A8_UNORM",
	FormatR8G8B8A8UnormSRGB: "R8G8B8A8_UNORM_SRGB",
	FormatR8G8B8A8Uint:      "R8G8B8A8_UINT",
	FormatR8G8B8A8Snorm:     "R8G8B8A8_SNORM",
	FormatR16G16Float:       "R16G16_FLOAT",
	FormatR32Typeless:       "R32_TYPELESS",
	FormatD32Float:          "D32_FLOAT",
	FormatR32Float:          "R32_FLOAT",
	FormatR32Uint:           "R32_UINT",
	FormatR32Sint:           "R32_SINT",
	FormatD24UnormS8Uint:    "D24_UNORM_S8_UINT",
	FormatR8G8Unorm:         "R8G8_UNORM",
	FormatR16Float:          "R16_FLOAT",
	FormatD16Unorm:          "D16_UNORM",
	FormatR16Unorm:          "R16_UNORM",
	FormatR16Uint:           "R16_UINT",
	FormatR8Unorm:           "R8_UNORM",
	FormatR8Uint:            "R8_UINT",
	FormatB8G8R8A8Unorm:     "B8G8R8A8_UNORM",
	FormatB8G8R8A8UnormSRGB: "B8G8R8A8_UNORM_SRGB",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}

// ParseFormat looks up a format by its DXGI name, with or without the
// DXGI_FORMAT_ prefix.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "DXGI_FORMAT_")
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return FormatUnknown, fmt.Errorf("dieseldx: unknown format %q", s)
}

// IsDepth reports whether f is a depth-stencil format.
func (f Format) IsDepth() bool {
	switch f {
	case FormatD32Float, FormatD32FloatS8X24Uint, FormatD24UnormS8Uint, FormatD16Unorm:
		return true
	}
	return false
}
