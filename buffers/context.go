package buffers

import (
	"github.com/bloeys/nmgl/glapi"
	"github.com/bloeys/nmgl/logging"
)

type Info struct {
	Vendor      string
	Renderer    string
	Version     string
	GlslVersion string
}

// Context owns the GL function table and every object created through it.
// It also tracks which framebuffer is active so that operations that bind
// another framebuffer can restore it afterwards.
//
// A Context is not safe for concurrent use. GL calls must come from the
// thread the GL context is current on.
type Context struct {
	fns    glapi.Functions
	screen *Framebuffer
	active *Framebuffer

	framebuffers  map[uint32]*Framebuffer
	textures      map[uint32]*Texture
	renderbuffers map[uint32]*Renderbuffer
}

// NewContext wraps an already current GL context. The default framebuffer (id 0)
// becomes the screen framebuffer, sized from the current GL viewport.
func NewContext(fns glapi.Functions) (*Context, error) {

	if fns == nil {
		return nil, ErrNoFunctions
	}

	c := &Context{
		fns:           fns,
		framebuffers:  make(map[uint32]*Framebuffer),
		textures:      make(map[uint32]*Texture),
		renderbuffers: make(map[uint32]*Renderbuffer),
	}

	var vp [4]int32
	fns.GetIntegerv(glapi.VIEWPORT, vp[:])

	c.screen = &Framebuffer{
		Id:       0,
		Width:    vp[2],
		Height:   vp[3],
		viewport: Viewport{X: vp[0], Y: vp[1], Width: vp[2], Height: vp[3]},
		ctx:      c,
	}
	c.framebuffers[0] = c.screen
	c.active = c.screen

	info := c.Info()
	logging.InfoLog.Printf("OpenGL context created. Vendor=%s; Renderer=%s; Version=%s; GLSL=%s\n", info.Vendor, info.Renderer, info.Version, info.GlslVersion)

	return c, nil
}

func (c *Context) Functions() glapi.Functions {
	return c.fns
}

func (c *Context) Info() Info {
	return Info{
		Vendor:      c.fns.GetString(glapi.VENDOR),
		Renderer:    c.fns.GetString(glapi.RENDERER),
		Version:     c.fns.GetString(glapi.VERSION),
		GlslVersion: c.fns.GetString(glapi.SHADING_LANGUAGE_VERSION),
	}
}

func (c *Context) Extensions() []string {

	var count [1]int32
	c.fns.GetIntegerv(glapi.NUM_EXTENSIONS, count[:])

	exts := make([]string, 0, count[0])
	for i := int32(0); i < count[0]; i++ {
		exts = append(exts, c.fns.GetStringi(glapi.EXTENSIONS, uint32(i)))
	}

	return exts
}

// Screen returns the wrapper of the default framebuffer
func (c *Context) Screen() *Framebuffer {
	return c.screen
}

// Active returns the framebuffer last made active with Framebuffer.Use
func (c *Context) Active() *Framebuffer {
	return c.active
}

// Framebuffer returns the live framebuffer wrapper with the given native id
func (c *Context) Framebuffer(id uint32) (*Framebuffer, bool) {
	fb, ok := c.framebuffers[id]
	return fb, ok
}

// FramebufferCount includes the screen framebuffer
func (c *Context) FramebufferCount() int {
	return len(c.framebuffers)
}

// restoreBinding rebinds the active framebuffer after an operation bound a different one
func (c *Context) restoreBinding() {
	c.fns.BindFramebuffer(glapi.FRAMEBUFFER, c.active.Id)
}

// Release deletes every framebuffer, texture and renderbuffer created through this context.
// The screen framebuffer is kept and made active.
func (c *Context) Release() {

	for _, fb := range c.framebuffers {
		fb.Release()
	}

	for _, t := range c.textures {
		t.Release()
	}

	for _, rb := range c.renderbuffers {
		rb.Release()
	}
}
