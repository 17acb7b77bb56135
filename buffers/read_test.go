package buffers

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/bloeys/nmgl/glapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSize(t *testing.T) {

	tests := []struct {
		width, height                    int32
		components, compSize, alignment int
		want                             int
	}{
		{4, 4, 4, 1, 1, 64},
		{3, 2, 3, 1, 4, 24},
		{3, 2, 3, 1, 1, 18},
		{5, 1, 1, 4, 8, 24},
		{1, 1, 1, 1, 8, 8},
		{2, 3, 4, 4, 8, 96},
		{7, 3, 3, 2, 2, 126},
		{0, 10, 4, 1, 8, 0},
	}

	for _, tt := range tests {
		got := ReadSize(tt.width, tt.height, tt.components, tt.compSize, tt.alignment)
		assert.Equal(t, tt.want, got, "%+v", tt)

		// Each row is the unpadded row rounded up to the alignment
		row := int(tt.width) * tt.components * tt.compSize
		padded := (row + tt.alignment - 1) / tt.alignment * tt.alignment
		assert.Zero(t, padded%tt.alignment)
		assert.Equal(t, padded*int(tt.height), got)
	}
}

func TestFramebufferRead(t *testing.T) {

	ctx, rec := newTestContext(t)

	fb, err := ctx.NewFramebuffer(newColorTexture(t, ctx, 64, 32))
	require.NoError(t, err)

	rec.Reset()
	pixels, err := fb.Read(ReadOptions{})
	require.NoError(t, err)
	assert.Len(t, pixels, 64*32*4)

	assert.Equal(t, []string{
		"BindFramebuffer",
		"ReadBuffer",
		"PixelStorei",
		"PixelStorei",
		"ReadPixels",
		"BindFramebuffer",
	}, rec.Names())

	assert.Equal(t, []any{glapi.Enum(glapi.COLOR_ATTACHMENT0)}, rec.Calls[1].Args)
	assert.Equal(t, []any{glapi.Enum(glapi.PACK_ALIGNMENT), int32(1)}, rec.Calls[2].Args)
	assert.Equal(t, []any{glapi.Enum(glapi.UNPACK_ALIGNMENT), int32(1)}, rec.Calls[3].Args)
	assert.Equal(t, []any{
		int32(0), int32(0), int32(64), int32(32), glapi.Enum(glapi.RGBA), glapi.Enum(glapi.UNSIGNED_BYTE), 64 * 32 * 4,
	}, rec.Calls[4].Args)
	assert.Equal(t, uint32(0), rec.BoundFramebuffer)
}

func TestFramebufferReadOptions(t *testing.T) {

	ctx, rec := newTestContext(t)

	fb, err := ctx.NewFramebuffer(newColorTexture(t, ctx, 64, 32), newColorTexture(t, ctx, 64, 32))
	require.NoError(t, err)

	rec.Reset()
	pixels, err := fb.Read(ReadOptions{
		Viewport:   []int32{2, 3, 5, 7},
		Components: 3,
		Attachment: 1,
		Alignment:  8,
		DataType:   "f2",
	})
	require.NoError(t, err)
	assert.Len(t, pixels, ReadSize(5, 7, 3, 2, 8))
	assert.Len(t, pixels, 32*7)

	call, _ := rec.Last("ReadBuffer")
	assert.Equal(t, []any{glapi.Enum(glapi.COLOR_ATTACHMENT0 + 1)}, call.Args)
	call, _ = rec.Last("PixelStorei")
	assert.Equal(t, []any{glapi.Enum(glapi.UNPACK_ALIGNMENT), int32(8)}, call.Args)
	call, _ = rec.Last("ReadPixels")
	assert.Equal(t, []any{
		int32(2), int32(3), int32(5), int32(7), glapi.Enum(glapi.RGB), glapi.Enum(glapi.HALF_FLOAT), 32 * 7,
	}, call.Args)

	// Two value viewports read up to the framebuffer size
	rec.Reset()
	pixels, err = fb.Read(ReadOptions{Viewport: []int32{10, 20}, Components: 2, DataType: "u4"})
	require.NoError(t, err)
	assert.Len(t, pixels, 64*32*2*4)
	call, _ = rec.Last("ReadPixels")
	assert.Equal(t, []any{
		int32(10), int32(20), int32(64), int32(32), glapi.Enum(glapi.RG_INTEGER), glapi.Enum(glapi.UNSIGNED_INT), 64 * 32 * 2 * 4,
	}, call.Args)
}

func TestFramebufferReadErrors(t *testing.T) {

	ctx, rec := newTestContext(t)

	fb, err := ctx.NewFramebuffer(newColorTexture(t, ctx, 8, 8))
	require.NoError(t, err)
	rec.Reset()

	for _, alignment := range []int{3, 5, 16, -1} {
		_, err = fb.Read(ReadOptions{Alignment: alignment})
		assert.ErrorIs(t, err, ErrInvalidAlignment)
	}

	_, err = fb.Read(ReadOptions{DataType: "f3"})
	assert.ErrorIs(t, err, ErrInvalidDataType)

	_, err = fb.Read(ReadOptions{Components: 5})
	assert.ErrorIs(t, err, ErrInvalidComponents)

	_, err = fb.Read(ReadOptions{Viewport: []int32{1, 2, 3}})
	assert.ErrorIs(t, err, ErrInvalidViewport)

	for _, vp := range [][]int32{{0, 0, -4, 4}, {0, 0, 4, -4}, {2, 2, -1, -1}} {
		assert.NotPanics(t, func() {
			_, err = fb.Read(ReadOptions{Viewport: vp})
		})
		assert.ErrorIs(t, err, ErrInvalidViewport, "viewport %v", vp)

		assert.NotPanics(t, func() {
			_, err = ReadArray[float32](fb, ReadOptions{Viewport: vp, DataType: "f4"})
		})
		assert.ErrorIs(t, err, ErrInvalidViewport, "viewport %v", vp)
	}

	// One color attachment
	for _, attachment := range []int{-1, 1, 8} {
		_, err = fb.Read(ReadOptions{Attachment: attachment})
		assert.ErrorIs(t, err, ErrInvalidAttachment, "attachment %d", attachment)
	}

	_, err = fb.ReadImage(1)
	assert.ErrorIs(t, err, ErrInvalidAttachment)

	_, err = ctx.Screen().Read(ReadOptions{Attachment: -1})
	assert.ErrorIs(t, err, ErrInvalidAttachment)

	assert.Empty(t, rec.Calls)
}

func TestReadArray(t *testing.T) {

	ctx, rec := newTestContext(t)

	tex, err := ctx.NewTexture(4, 2, 1, "f4", 0)
	require.NoError(t, err)
	fb, err := ctx.NewFramebuffer(tex)
	require.NoError(t, err)

	rec.FillPixels = func(x, y, width, height int32, format, ty glapi.Enum, pixels []byte) {
		for i := 0; i < len(pixels)/4; i++ {
			binary.NativeEndian.PutUint32(pixels[i*4:], math.Float32bits(float32(i)*0.5))
		}
	}

	values, err := ReadArray[float32](fb, ReadOptions{Components: 1, DataType: "f4", Alignment: 4})
	require.NoError(t, err)
	require.Len(t, values, 8)
	for i := 0; i < len(values); i++ {
		assert.Equal(t, float32(i)*0.5, values[i])
	}

	_, err = ReadArray[uint16](fb, ReadOptions{Components: 1, DataType: "f4"})
	assert.ErrorIs(t, err, ErrElementSizeMismatch)

	_, err = ReadArray[float64](fb, ReadOptions{Components: 1, DataType: "f4"})
	assert.ErrorIs(t, err, ErrElementSizeMismatch)

	half, err := ReadArray[uint16](fb, ReadOptions{Components: 1, DataType: "f2"})
	require.NoError(t, err)
	assert.Len(t, half, 8)

	empty, err := ReadArray[uint8](fb, ReadOptions{Viewport: []int32{0, 0, 0, 0}})
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ReadArray[int32](fb, ReadOptions{Alignment: 7, DataType: "i4"})
	assert.ErrorIs(t, err, ErrInvalidAlignment)
}

func TestReadImage(t *testing.T) {

	ctx, rec := newTestContext(t)

	fb, err := ctx.NewFramebuffer(newColorTexture(t, ctx, 2, 2))
	require.NoError(t, err)

	// GL returns the bottom row first
	rec.FillPixels = func(x, y, width, height int32, format, ty glapi.Enum, pixels []byte) {
		stride := int(width) * 4
		for row := 0; row < int(height); row++ {
			for i := 0; i < stride; i++ {
				pixels[row*stride+i] = byte(10 * (row + 1))
			}
		}
	}

	img, err := fb.ReadImage(0)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, uint8(20), img.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(20), img.NRGBAAt(1, 0).A)
	assert.Equal(t, uint8(10), img.NRGBAAt(0, 1).R)
}

func TestReadScreen(t *testing.T) {

	ctx, rec := newTestContext(t)

	pixels, err := ctx.Screen().Read(ReadOptions{Viewport: []int32{0, 0, 4, 4}})
	require.NoError(t, err)
	assert.Len(t, pixels, 4*4*4)

	// The default framebuffer has no color attachments to select
	assert.Zero(t, rec.Count("ReadBuffer"))
}
