package buffers

import (
	"fmt"

	"github.com/bloeys/nmgl/glapi"
	"github.com/bloeys/nmgl/logging"
)

type Texture struct {
	Id         uint32
	Width      int32
	Height     int32
	Samples    int32
	Components int
	DataType   *DataType
	Depth      bool

	// Level is the mip level used when this texture is attached to a framebuffer.
	// The attached size is (Width>>Level, Height>>Level).
	//
	// Only level 0 has storage after creation. Use SetLevel to allocate the level
	// before attaching, otherwise the framebuffer is incomplete.
	Level int32

	ctx      *Context
	released bool
}

// Size is the size of the attached mip level. An invalid Level gives 0x0.
func (t *Texture) Size() (width, height int32) {

	if t.Level < 0 || t.Level > 31 {
		return 0, 0
	}

	return t.Width >> t.Level, t.Height >> t.Level
}

func (t *Texture) checkLevel(level int32) error {

	if level < 0 || level > 31 {
		return fmt.Errorf("%w, got %d", ErrInvalidLevel, level)
	}

	if t.Samples > 0 && level != 0 {
		return fmt.Errorf("%w: multisampled textures only have level 0, got %d", ErrInvalidLevel, level)
	}

	if t.Width>>level == 0 || t.Height>>level == 0 {
		return fmt.Errorf("%w: level %d of a %dx%d texture is empty", ErrInvalidLevel, level, t.Width, t.Height)
	}

	return nil
}

// SetLevel allocates storage for a mip level and makes it the attached level.
// The texture binding is reset to 0 afterwards.
func (t *Texture) SetLevel(level int32) error {

	if t.released {
		return ErrReleased
	}

	if err := t.checkLevel(level); err != nil {
		return err
	}

	if level > 0 {
		fns := t.ctx.fns
		target := t.Target()
		fns.BindTexture(target, t.Id)
		fns.TexImage2D(target, level, t.DataType.GlInternalFormat(t.Components), t.Width>>level, t.Height>>level, t.DataType.GlFormat(t.Components), t.DataType.PixelType)
		fns.BindTexture(target, 0)
	}

	t.Level = level
	return nil
}

func (t *Texture) SampleCount() int32 {
	return t.Samples
}

func (t *Texture) IsDepth() bool {
	return t.Depth
}

// Target is TEXTURE_2D_MULTISAMPLE for multisampled textures and TEXTURE_2D otherwise
func (t *Texture) Target() glapi.Enum {

	if t.Samples > 0 {
		return glapi.TEXTURE_2D_MULTISAMPLE
	}

	return glapi.TEXTURE_2D
}

func (t *Texture) Release() {

	if t.released {
		return
	}

	t.ctx.fns.DeleteTexture(t.Id)
	delete(t.ctx.textures, t.Id)
	t.released = true
}

// NewTexture allocates an uninitialized 2D texture. A samples value above zero creates a multisampled texture.
func (c *Context) NewTexture(width, height int32, components int, dtype string, samples int32) (*Texture, error) {

	if !validComponents(components) {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidComponents, components)
	}

	dt, err := LookupDataType(dtype)
	if err != nil {
		return nil, err
	}

	return c.newTexture(width, height, components, dt, samples, false)
}

// NewDepthTexture allocates a 24-bit depth texture
func (c *Context) NewDepthTexture(width, height int32, samples int32) (*Texture, error) {
	return c.newTexture(width, height, 1, depthDataType, samples, true)
}

func (c *Context) newTexture(width, height int32, components int, dt *DataType, samples int32, depth bool) (*Texture, error) {

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w, got %dx%d", ErrInvalidSize, width, height)
	}

	if samples < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSamples, samples)
	}

	t := &Texture{
		Width:      width,
		Height:     height,
		Samples:    samples,
		Components: components,
		DataType:   dt,
		Depth:      depth,
		ctx:        c,
	}

	t.Id = c.fns.GenTexture()
	if t.Id == 0 {
		logging.ErrLog.Printf("failed to generate texture. GlError=%d\n", c.fns.GetError())
		return nil, ErrCannotCreateTexture
	}

	target := t.Target()
	c.fns.BindTexture(target, t.Id)

	if samples > 0 {
		c.fns.TexImage2DMultisample(target, samples, dt.GlInternalFormat(components), width, height, true)
	} else {

		c.fns.TexImage2D(target, 0, dt.GlInternalFormat(components), width, height, dt.GlFormat(components), dt.PixelType)

		filter := int32(glapi.LINEAR)
		if depth || dt.IsInteger {
			filter = glapi.NEAREST
		}

		c.fns.TexParameteri(target, glapi.TEXTURE_MIN_FILTER, filter)
		c.fns.TexParameteri(target, glapi.TEXTURE_MAG_FILTER, filter)
	}

	c.fns.BindTexture(target, 0)
	c.textures[t.Id] = t
	return t, nil
}
