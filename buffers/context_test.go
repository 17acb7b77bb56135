package buffers

import (
	"io"
	"testing"

	"github.com/bloeys/nmgl/glapi"
	"github.com/bloeys/nmgl/glapi/glapitest"
	"github.com/bloeys/nmgl/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*Context, *glapitest.Recorder) {

	t.Helper()
	logging.SetOutput(io.Discard)

	rec := glapitest.NewRecorder()
	rec.Integers[glapi.VIEWPORT] = []int32{0, 0, 800, 600}
	rec.Strings[glapi.VENDOR] = "nmgl"
	rec.Strings[glapi.RENDERER] = "recorder"
	rec.Strings[glapi.VERSION] = "4.1"
	rec.Strings[glapi.SHADING_LANGUAGE_VERSION] = "4.10"

	ctx, err := NewContext(rec)
	require.NoError(t, err)

	rec.Reset()
	return ctx, rec
}

func newColorTexture(t *testing.T, ctx *Context, width, height int32) *Texture {
	t.Helper()
	tex, err := ctx.NewTexture(width, height, 4, "f1", 0)
	require.NoError(t, err)
	return tex
}

func TestNewContext(t *testing.T) {

	_, err := NewContext(nil)
	require.ErrorIs(t, err, ErrNoFunctions)

	ctx, _ := newTestContext(t)

	screen := ctx.Screen()
	assert.Equal(t, uint32(0), screen.Id)
	assert.Equal(t, int32(800), screen.Width)
	assert.Equal(t, int32(600), screen.Height)
	assert.Equal(t, Viewport{0, 0, 800, 600}, screen.Viewport())
	assert.Same(t, screen, ctx.Active())
	assert.True(t, screen.IsActive())

	fb, ok := ctx.Framebuffer(0)
	require.True(t, ok)
	assert.Same(t, screen, fb)
	assert.Equal(t, 1, ctx.FramebufferCount())
}

func TestContextInfo(t *testing.T) {

	ctx, rec := newTestContext(t)

	assert.Equal(t, Info{Vendor: "nmgl", Renderer: "recorder", Version: "4.1", GlslVersion: "4.10"}, ctx.Info())

	rec.Integers[glapi.NUM_EXTENSIONS] = []int32{2}
	rec.Exts = []string{"GL_ARB_debug_output", "GL_ARB_texture_float"}
	assert.Equal(t, []string{"GL_ARB_debug_output", "GL_ARB_texture_float"}, ctx.Extensions())

	rec.Integers[glapi.NUM_EXTENSIONS] = []int32{0}
	assert.Empty(t, ctx.Extensions())
}

func TestContextRelease(t *testing.T) {

	ctx, rec := newTestContext(t)

	tex := newColorTexture(t, ctx, 16, 16)
	depth, err := ctx.NewDepthRenderbuffer(16, 16, 0)
	require.NoError(t, err)

	fb, err := ctx.NewFramebuffer(tex, depth)
	require.NoError(t, err)
	require.NoError(t, fb.Use())
	assert.Equal(t, 2, ctx.FramebufferCount())

	rec.Reset()
	ctx.Release()

	assert.Equal(t, 1, rec.Count("DeleteFramebuffer"))
	assert.Equal(t, 1, rec.Count("DeleteTexture"))
	assert.Equal(t, 1, rec.Count("DeleteRenderbuffer"))
	assert.Equal(t, 1, ctx.FramebufferCount())
	assert.Same(t, ctx.Screen(), ctx.Active())
	assert.Equal(t, uint32(0), rec.BoundFramebuffer)
	assert.Equal(t, [4]int32{0, 0, 800, 600}, rec.CurrentViewport)

	// Nothing left to release
	rec.Reset()
	ctx.Release()
	assert.Empty(t, rec.Calls)
}
