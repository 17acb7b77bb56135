package buffers

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nmgl/assert"
	"github.com/bloeys/nmgl/glapi"
	"github.com/bloeys/nmgl/logging"
)

// MaxColorAttachments is the minimum GL_MAX_COLOR_ATTACHMENTS every GL 3.0+ driver supports
const MaxColorAttachments = 8

type Framebuffer struct {
	Id                    uint32
	Attachments           []Attachment
	ColorAttachmentsCount uint32
	Width                 int32
	Height                int32
	Samples               int32

	viewport Viewport
	ctx      *Context
	released bool
}

// NewFramebuffer creates a framebuffer backed by the given attachments.
// Color attachments take the slots COLOR_ATTACHMENT0, COLOR_ATTACHMENT1, ... in
// the order given, and at most one depth attachment may appear anywhere in the list.
//
// All attachments must agree on size and sample count. The framebuffer that was
// active before the call is bound again when NewFramebuffer returns.
func (c *Context) NewFramebuffer(attachments ...Attachment) (*Framebuffer, error) {

	fb := &Framebuffer{
		Attachments: make([]Attachment, 0, len(attachments)),
		ctx:         c,
	}

	fb.Id = c.fns.GenFramebuffer()
	if fb.Id == 0 {
		logging.ErrLog.Printf("failed to generate framebuffer. GlError=%d\n", c.fns.GetError())
		return nil, ErrCannotCreate
	}

	c.fns.BindFramebuffer(glapi.FRAMEBUFFER, fb.Id)

	if err := fb.attach(attachments); err != nil {
		c.restoreBinding()
		c.fns.DeleteFramebuffer(fb.Id)
		return nil, err
	}

	status := c.fns.CheckFramebufferStatus(glapi.FRAMEBUFFER)
	c.restoreBinding()

	if status != glapi.FRAMEBUFFER_COMPLETE {
		c.fns.DeleteFramebuffer(fb.Id)
		err := &IncompleteError{Status: status}
		logging.ErrLog.Printf("failed creating framebuffer. Err=%s\n", err)
		return nil, err
	}

	fb.viewport = Viewport{X: 0, Y: 0, Width: fb.Width, Height: fb.Height}
	c.framebuffers[fb.Id] = fb
	return fb, nil
}

// attach issues the attach call for every attachment on the currently bound framebuffer
// and records the shared size and sample count on fb.
func (fb *Framebuffer) attach(attachments []Attachment) error {

	fns := fb.ctx.fns
	drawBufs := make([]glapi.Enum, 0, len(attachments))
	hasDepth := false

	for i, a := range attachments {

		// Nil pointers of a supported type are just as unusable as foreign types
		switch at := a.(type) {
		case *Texture:
			if at == nil {
				return fmt.Errorf("%w: attachment %d is a nil *Texture", ErrUnsupportedAttachment, i)
			}
			if at.released {
				return fmt.Errorf("%w: attachment %d is a released texture", ErrReleased, i)
			}
			if err := at.checkLevel(at.Level); err != nil {
				return fmt.Errorf("attachment %d: %w", i, err)
			}
		case *Renderbuffer:
			if at == nil {
				return fmt.Errorf("%w: attachment %d is a nil *Renderbuffer", ErrUnsupportedAttachment, i)
			}
			if at.released {
				return fmt.Errorf("%w: attachment %d is a released renderbuffer", ErrReleased, i)
			}
		default:
			return fmt.Errorf("%w: attachment %d has type %T", ErrUnsupportedAttachment, i, a)
		}

		width, height := a.Size()
		samples := a.SampleCount()

		if i == 0 {
			fb.Width = width
			fb.Height = height
			fb.Samples = samples
		} else if width != fb.Width || height != fb.Height || samples != fb.Samples {
			return fmt.Errorf(
				"%w: attachment %d is %dx%d with %d samples but attachment 0 is %dx%d with %d samples",
				ErrDifferentAttachments,
				i, width, height, samples,
				fb.Width, fb.Height, fb.Samples,
			)
		}

		var slot glapi.Enum
		if a.IsDepth() {

			if hasDepth {
				return fmt.Errorf("%w: attachment %d", ErrMultipleDepth, i)
			}

			hasDepth = true
			slot = glapi.DEPTH_ATTACHMENT

		} else {

			if fb.ColorAttachmentsCount == MaxColorAttachments {
				return fmt.Errorf("%w: attachment %d exceeds the limit of %d", ErrTooManyAttachments, i, MaxColorAttachments)
			}

			slot = glapi.Enum(glapi.COLOR_ATTACHMENT0 + fb.ColorAttachmentsCount)
			drawBufs = append(drawBufs, slot)
			fb.ColorAttachmentsCount++
		}

		switch at := a.(type) {
		case *Texture:
			fns.FramebufferTexture2D(glapi.FRAMEBUFFER, slot, at.Target(), at.Id, at.Level)
		case *Renderbuffer:
			fns.FramebufferRenderbuffer(glapi.FRAMEBUFFER, slot, glapi.RENDERBUFFER, at.Id)
		default:
			assert.T(false, "attachment %d passed the type check with type %T", i, a)
		}

		fb.Attachments = append(fb.Attachments, a)
	}

	fns.DrawBuffers(drawBufs)
	return nil
}

// checkColorAttachment rejects indices with no color attachment behind them.
// The screen framebuffer has no attachment list, so only negative indices fail there.
func (fb *Framebuffer) checkColorAttachment(attachment int) error {

	if attachment < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidAttachment, attachment)
	}

	if fb.Id != 0 && attachment >= int(fb.ColorAttachmentsCount) {
		return fmt.Errorf("%w: %d but the framebuffer has %d color attachments", ErrInvalidAttachment, attachment, fb.ColorAttachmentsCount)
	}

	return nil
}

func (fb *Framebuffer) Bind() {
	fb.ctx.fns.BindFramebuffer(glapi.FRAMEBUFFER, fb.Id)
}

// IsActive reports whether this is the framebuffer most recently made active with Use
func (fb *Framebuffer) IsActive() bool {
	return fb.ctx.active == fb
}

func (fb *Framebuffer) IsReleased() bool {
	return fb.released
}

func (fb *Framebuffer) HasColorAttachment() bool {
	return fb.ColorAttachmentsCount > 0
}

func (fb *Framebuffer) HasDepthAttachment() bool {

	for i := 0; i < len(fb.Attachments); i++ {
		if fb.Attachments[i].IsDepth() {
			return true
		}
	}

	return false
}

// Use binds the framebuffer as the render target, applies its viewport and makes it the context's active framebuffer
func (fb *Framebuffer) Use() error {

	if fb.released {
		return ErrReleased
	}

	fns := fb.ctx.fns
	fns.BindFramebuffer(glapi.FRAMEBUFFER, fb.Id)
	fns.Viewport(fb.viewport.X, fb.viewport.Y, fb.viewport.Width, fb.viewport.Height)
	fb.ctx.active = fb
	return nil
}

func (fb *Framebuffer) Viewport() Viewport {
	return fb.viewport
}

// SetViewport accepts (x, y) or (x, y, width, height). With two values the size
// defaults to the full framebuffer size.
//
// The viewport is always stored, but it only reaches GL immediately if this
// framebuffer is active. Otherwise it is applied by the next Use.
func (fb *Framebuffer) SetViewport(rect ...int32) error {

	vp, err := unpackViewport(rect, fb.Width, fb.Height)
	if err != nil {
		return err
	}

	fb.viewport = vp
	if fb.IsActive() {
		fb.ctx.fns.Viewport(vp.X, vp.Y, vp.Width, vp.Height)
	}

	return nil
}

// Clear clears one attachment. A negative attachment clears the depth buffer and
// value must hold exactly one depth value. Otherwise value holds up to 4 color
// components for color attachment 'attachment', and missing components are zero.
//
// If the viewport does not cover the whole framebuffer only the viewport area is cleared.
func (fb *Framebuffer) Clear(value []float32, attachment int) error {

	if fb.released {
		return ErrReleased
	}

	fns := fb.ctx.fns
	fns.BindFramebuffer(glapi.FRAMEBUFFER, fb.Id)
	defer fb.ctx.restoreBinding()

	if !fb.viewport.Covers(fb.Width, fb.Height) {
		fns.Enable(glapi.SCISSOR_TEST)
		fns.Scissor(fb.viewport.X, fb.viewport.Y, fb.viewport.Width, fb.viewport.Height)
		defer fns.Disable(glapi.SCISSOR_TEST)
	}

	var color [4]float32
	if attachment < 0 {

		if len(value) != 1 {
			return fmt.Errorf("%w, got %d", ErrDepthClearValue, len(value))
		}

		color[0] = value[0]
		fns.ClearBufferfv(glapi.DEPTH, 0, color[:1])
		return nil
	}

	if len(value) > 4 {
		return fmt.Errorf("%w, got %d", ErrClearValueTooLong, len(value))
	}

	if err := fb.checkColorAttachment(attachment); err != nil {
		return err
	}

	copy(color[:], value)
	fns.ClearBufferfv(glapi.COLOR, int32(attachment), color[:])
	return nil
}

func (fb *Framebuffer) ClearDepth(depth float32) error {
	return fb.Clear([]float32{depth}, -1)
}

func (fb *Framebuffer) ClearColor(attachment int, color gglm.Vec4) error {

	if attachment < 0 {
		return fmt.Errorf("color attachment index must not be negative, got %d", attachment)
	}

	return fb.Clear(color.Data[:], attachment)
}

// Release deletes the native framebuffer and removes it from the context.
// Releasing the active framebuffer makes the screen framebuffer active.
// The screen framebuffer itself is never deleted.
func (fb *Framebuffer) Release() {

	if fb.released || fb.Id == 0 {
		return
	}

	c := fb.ctx
	c.fns.DeleteFramebuffer(fb.Id)
	delete(c.framebuffers, fb.Id)
	fb.released = true

	if c.active == fb {
		c.screen.Use()
	}
}
