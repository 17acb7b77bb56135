package buffers

import (
	"fmt"

	"github.com/bloeys/nmgl/assert"
	"github.com/bloeys/nmgl/glapi"
)

// DataType describes how pixel components are stored, e.g. 'f1' is one
// normalized unsigned byte per component and 'i4' is one int32 per component.
type DataType struct {
	Name string
	// Size is the size in bytes of one component
	Size      int
	PixelType glapi.Enum
	// IsInteger types use the *_INTEGER base formats and are not normalized
	IsInteger bool

	// Both arrays are indexed by component count (1-4). Index 0 is unused.
	baseFormats     [5]glapi.Enum
	internalFormats [5]glapi.Enum
}

var (
	floatFormats   = [5]glapi.Enum{0, glapi.RED, glapi.RG, glapi.RGB, glapi.RGBA}
	integerFormats = [5]glapi.Enum{0, glapi.RED_INTEGER, glapi.RG_INTEGER, glapi.RGB_INTEGER, glapi.RGBA_INTEGER}

	dataTypes = map[string]*DataType{
		"f1": {Name: "f1", Size: 1, PixelType: glapi.UNSIGNED_BYTE, baseFormats: floatFormats, internalFormats: [5]glapi.Enum{0, glapi.R8, glapi.RG8, glapi.RGB8, glapi.RGBA8}},
		"f2": {Name: "f2", Size: 2, PixelType: glapi.HALF_FLOAT, baseFormats: floatFormats, internalFormats: [5]glapi.Enum{0, glapi.R16F, glapi.RG16F, glapi.RGB16F, glapi.RGBA16F}},
		"f4": {Name: "f4", Size: 4, PixelType: glapi.FLOAT, baseFormats: floatFormats, internalFormats: [5]glapi.Enum{0, glapi.R32F, glapi.RG32F, glapi.RGB32F, glapi.RGBA32F}},

		"u1": {Name: "u1", Size: 1, PixelType: glapi.UNSIGNED_BYTE, IsInteger: true, baseFormats: integerFormats, internalFormats: [5]glapi.Enum{0, glapi.R8UI, glapi.RG8UI, glapi.RGB8UI, glapi.RGBA8UI}},
		"u2": {Name: "u2", Size: 2, PixelType: glapi.UNSIGNED_SHORT, IsInteger: true, baseFormats: integerFormats, internalFormats: [5]glapi.Enum{0, glapi.R16UI, glapi.RG16UI, glapi.RGB16UI, glapi.RGBA16UI}},
		"u4": {Name: "u4", Size: 4, PixelType: glapi.UNSIGNED_INT, IsInteger: true, baseFormats: integerFormats, internalFormats: [5]glapi.Enum{0, glapi.R32UI, glapi.RG32UI, glapi.RGB32UI, glapi.RGBA32UI}},

		"i1": {Name: "i1", Size: 1, PixelType: glapi.BYTE, IsInteger: true, baseFormats: integerFormats, internalFormats: [5]glapi.Enum{0, glapi.R8I, glapi.RG8I, glapi.RGB8I, glapi.RGBA8I}},
		"i2": {Name: "i2", Size: 2, PixelType: glapi.SHORT, IsInteger: true, baseFormats: integerFormats, internalFormats: [5]glapi.Enum{0, glapi.R16I, glapi.RG16I, glapi.RGB16I, glapi.RGBA16I}},
		"i4": {Name: "i4", Size: 4, PixelType: glapi.INT, IsInteger: true, baseFormats: integerFormats, internalFormats: [5]glapi.Enum{0, glapi.R32I, glapi.RG32I, glapi.RGB32I, glapi.RGBA32I}},
	}

	// depthDataType backs depth textures and renderbuffers. It is not reachable by name.
	depthDataType = &DataType{
		Name:            "depth",
		Size:            4,
		PixelType:       glapi.FLOAT,
		baseFormats:     [5]glapi.Enum{0, glapi.DEPTH_COMPONENT},
		internalFormats: [5]glapi.Enum{0, glapi.DEPTH_COMPONENT24},
	}
)

// LookupDataType returns the data type registered under name (e.g. 'f4').
func LookupDataType(name string) (*DataType, error) {

	dt, ok := dataTypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidDataType, name)
	}

	return dt, nil
}

// GlFormat returns the base format used for uploads and readbacks with the given component count
func (dt *DataType) GlFormat(components int) glapi.Enum {
	assert.T(validComponents(components), "invalid component count=%d for dtype=%s", components, dt.Name)
	return dt.baseFormats[components]
}

// GlInternalFormat returns the sized internal format used for storage with the given component count
func (dt *DataType) GlInternalFormat(components int) glapi.Enum {
	assert.T(validComponents(components), "invalid component count=%d for dtype=%s", components, dt.Name)
	return dt.internalFormats[components]
}

func (dt *DataType) String() string {
	return dt.Name
}

func validComponents(components int) bool {
	return components >= 1 && components <= 4
}
