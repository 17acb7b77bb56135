package buffers

import (
	"testing"

	"github.com/bloeys/nmgl/glapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTexture(t *testing.T) {

	ctx, rec := newTestContext(t)

	tex, err := ctx.NewTexture(16, 8, 4, "f1", 0)
	require.NoError(t, err)
	assert.NotZero(t, tex.Id)
	assert.Equal(t, glapi.Enum(glapi.TEXTURE_2D), tex.Target())

	call, ok := rec.Last("TexImage2D")
	require.True(t, ok)
	assert.Equal(t, []any{
		glapi.Enum(glapi.TEXTURE_2D), int32(0), glapi.Enum(glapi.RGBA8), int32(16), int32(8), glapi.Enum(glapi.RGBA), glapi.Enum(glapi.UNSIGNED_BYTE),
	}, call.Args)

	call, ok = rec.Last("TexParameteri")
	require.True(t, ok)
	assert.Equal(t, int32(glapi.LINEAR), call.Args[2])

	w, h := tex.Size()
	assert.Equal(t, int32(16), w)
	assert.Equal(t, int32(8), h)

	tex.Level = 2
	w, h = tex.Size()
	assert.Equal(t, int32(4), w)
	assert.Equal(t, int32(2), h)
}

func TestNewTextureVariants(t *testing.T) {

	ctx, rec := newTestContext(t)

	tex, err := ctx.NewTexture(4, 4, 2, "u4", 0)
	require.NoError(t, err)
	call, _ := rec.Last("TexImage2D")
	assert.Equal(t, glapi.Enum(glapi.RG32UI), call.Args[2])
	assert.Equal(t, glapi.Enum(glapi.RG_INTEGER), call.Args[5])
	call, _ = rec.Last("TexParameteri")
	assert.Equal(t, int32(glapi.NEAREST), call.Args[2])
	assert.False(t, tex.IsDepth())

	rec.Reset()
	ms, err := ctx.NewTexture(4, 4, 4, "f4", 4)
	require.NoError(t, err)
	assert.Equal(t, glapi.Enum(glapi.TEXTURE_2D_MULTISAMPLE), ms.Target())
	assert.Equal(t, int32(4), ms.SampleCount())
	assert.Zero(t, rec.Count("TexImage2D"))
	call, ok := rec.Last("TexImage2DMultisample")
	require.True(t, ok)
	assert.Equal(t, []any{
		glapi.Enum(glapi.TEXTURE_2D_MULTISAMPLE), int32(4), glapi.Enum(glapi.RGBA32F), int32(4), int32(4), true,
	}, call.Args)

	rec.Reset()
	depth, err := ctx.NewDepthTexture(4, 4, 0)
	require.NoError(t, err)
	assert.True(t, depth.IsDepth())
	call, _ = rec.Last("TexImage2D")
	assert.Equal(t, glapi.Enum(glapi.DEPTH_COMPONENT24), call.Args[2])
	assert.Equal(t, glapi.Enum(glapi.DEPTH_COMPONENT), call.Args[5])
	assert.Equal(t, glapi.Enum(glapi.FLOAT), call.Args[6])
}

func TestNewTextureErrors(t *testing.T) {

	ctx, rec := newTestContext(t)

	_, err := ctx.NewTexture(4, 4, 5, "f1", 0)
	assert.ErrorIs(t, err, ErrInvalidComponents)

	_, err = ctx.NewTexture(4, 4, 4, "f8", 0)
	assert.ErrorIs(t, err, ErrInvalidDataType)

	_, err = ctx.NewTexture(0, 4, 4, "f1", 0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = ctx.NewTexture(4, 4, 4, "f1", -1)
	assert.ErrorIs(t, err, ErrInvalidSamples)

	assert.Zero(t, rec.Count("GenTexture"))

	rec.FailGen = true
	_, err = ctx.NewTexture(4, 4, 4, "f1", 0)
	assert.ErrorIs(t, err, ErrCannotCreateTexture)
}

func TestNewRenderbuffer(t *testing.T) {

	ctx, rec := newTestContext(t)

	rb, err := ctx.NewRenderbuffer(32, 16, 4, "f1", 0)
	require.NoError(t, err)
	call, ok := rec.Last("RenderbufferStorage")
	require.True(t, ok)
	assert.Equal(t, []any{glapi.Enum(glapi.RENDERBUFFER), glapi.Enum(glapi.RGBA8), int32(32), int32(16)}, call.Args)
	assert.Equal(t, []any{glapi.Enum(glapi.RENDERBUFFER), uint32(0)}, rec.Calls[len(rec.Calls)-1].Args)

	w, h := rb.Size()
	assert.Equal(t, int32(32), w)
	assert.Equal(t, int32(16), h)

	rec.Reset()
	_, err = ctx.NewDepthRenderbuffer(32, 16, 8)
	require.NoError(t, err)
	call, ok = rec.Last("RenderbufferStorageMultisample")
	require.True(t, ok)
	assert.Equal(t, []any{glapi.Enum(glapi.RENDERBUFFER), int32(8), glapi.Enum(glapi.DEPTH_COMPONENT24), int32(32), int32(16)}, call.Args)

	_, err = ctx.NewRenderbuffer(32, 16, 0, "f1", 0)
	assert.ErrorIs(t, err, ErrInvalidComponents)

	_, err = ctx.NewRenderbuffer(32, -1, 4, "f1", 0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	rec.FailGen = true
	_, err = ctx.NewRenderbuffer(32, 16, 4, "f1", 0)
	assert.ErrorIs(t, err, ErrCannotCreateRbo)

	rec.Reset()
	rb.Release()
	rb.Release()
	assert.Equal(t, 1, rec.Count("DeleteRenderbuffer"))
}

func TestLookupDataType(t *testing.T) {

	tests := []struct {
		name      string
		size      int
		pixelType glapi.Enum
		isInteger bool
	}{
		{"f1", 1, glapi.UNSIGNED_BYTE, false},
		{"f2", 2, glapi.HALF_FLOAT, false},
		{"f4", 4, glapi.FLOAT, false},
		{"u1", 1, glapi.UNSIGNED_BYTE, true},
		{"u2", 2, glapi.UNSIGNED_SHORT, true},
		{"u4", 4, glapi.UNSIGNED_INT, true},
		{"i1", 1, glapi.BYTE, true},
		{"i2", 2, glapi.SHORT, true},
		{"i4", 4, glapi.INT, true},
	}

	for _, tt := range tests {
		dt, err := LookupDataType(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.name, dt.String())
		assert.Equal(t, tt.size, dt.Size, tt.name)
		assert.Equal(t, tt.pixelType, dt.PixelType, tt.name)
		assert.Equal(t, tt.isInteger, dt.IsInteger, tt.name)
	}

	f4, _ := LookupDataType("f4")
	assert.Equal(t, glapi.Enum(glapi.RED), f4.GlFormat(1))
	assert.Equal(t, glapi.Enum(glapi.RGB), f4.GlFormat(3))
	i2, _ := LookupDataType("i2")
	assert.Equal(t, glapi.Enum(glapi.RGBA_INTEGER), i2.GlFormat(4))
	assert.Equal(t, glapi.Enum(glapi.R16I), i2.GlInternalFormat(1))

	_, err := LookupDataType("d4")
	assert.ErrorIs(t, err, ErrInvalidDataType)
}
