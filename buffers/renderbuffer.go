package buffers

import (
	"fmt"

	"github.com/bloeys/nmgl/glapi"
	"github.com/bloeys/nmgl/logging"
)

type Renderbuffer struct {
	Id         uint32
	Width      int32
	Height     int32
	Samples    int32
	Components int
	DataType   *DataType
	Depth      bool

	ctx      *Context
	released bool
}

func (rb *Renderbuffer) Size() (width, height int32) {
	return rb.Width, rb.Height
}

func (rb *Renderbuffer) SampleCount() int32 {
	return rb.Samples
}

func (rb *Renderbuffer) IsDepth() bool {
	return rb.Depth
}

func (rb *Renderbuffer) Release() {

	if rb.released {
		return
	}

	rb.ctx.fns.DeleteRenderbuffer(rb.Id)
	delete(rb.ctx.renderbuffers, rb.Id)
	rb.released = true
}

func (c *Context) NewRenderbuffer(width, height int32, components int, dtype string, samples int32) (*Renderbuffer, error) {

	if !validComponents(components) {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidComponents, components)
	}

	dt, err := LookupDataType(dtype)
	if err != nil {
		return nil, err
	}

	return c.newRenderbuffer(width, height, components, dt, samples, false)
}

func (c *Context) NewDepthRenderbuffer(width, height int32, samples int32) (*Renderbuffer, error) {
	return c.newRenderbuffer(width, height, 1, depthDataType, samples, true)
}

func (c *Context) newRenderbuffer(width, height int32, components int, dt *DataType, samples int32, depth bool) (*Renderbuffer, error) {

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w, got %dx%d", ErrInvalidSize, width, height)
	}

	if samples < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSamples, samples)
	}

	rb := &Renderbuffer{
		Width:      width,
		Height:     height,
		Samples:    samples,
		Components: components,
		DataType:   dt,
		Depth:      depth,
		ctx:        c,
	}

	rb.Id = c.fns.GenRenderbuffer()
	if rb.Id == 0 {
		logging.ErrLog.Printf("failed to generate render buffer. GlError=%d\n", c.fns.GetError())
		return nil, ErrCannotCreateRbo
	}

	c.fns.BindRenderbuffer(glapi.RENDERBUFFER, rb.Id)
	if samples > 0 {
		c.fns.RenderbufferStorageMultisample(glapi.RENDERBUFFER, samples, dt.GlInternalFormat(components), width, height)
	} else {
		c.fns.RenderbufferStorage(glapi.RENDERBUFFER, dt.GlInternalFormat(components), width, height)
	}
	c.fns.BindRenderbuffer(glapi.RENDERBUFFER, 0)

	c.renderbuffers[rb.Id] = rb
	return rb, nil
}
