package buffers

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/bloeys/nmgl/glapi"
	"github.com/disintegration/imaging"
	"golang.org/x/exp/constraints"
)

type ReadOptions struct {
	// Viewport is (x, y) or (x, y, width, height). Nil reads the whole framebuffer.
	Viewport []int32
	// Components per pixel, 1-4. Zero means 4.
	Components int
	// Attachment is the color attachment index to read from. It must be below
	// ColorAttachmentsCount, except on the screen framebuffer where it is ignored.
	Attachment int
	// Alignment of each row in bytes: 1, 2, 4 or 8. Zero means 1.
	Alignment int
	// DataType name such as 'f1' or 'f4'. Empty means 'f1'.
	DataType string
}

type readRequest struct {
	vp         Viewport
	components int
	attachment int
	alignment  int
	dtype      *DataType
	size       int
}

// ReadSize returns the number of bytes a readback of a width*height rectangle takes
// when every row is padded to a multiple of alignment.
func ReadSize(width, height int32, components, componentSize, alignment int) int {
	rowSize := int(width) * components * componentSize
	rowSize = (rowSize + alignment - 1) / alignment * alignment
	return rowSize * int(height)
}

func (fb *Framebuffer) prepareRead(opts ReadOptions) (readRequest, error) {

	if fb.released {
		return readRequest{}, ErrReleased
	}

	req := readRequest{
		components: opts.Components,
		attachment: opts.Attachment,
		alignment:  opts.Alignment,
	}

	if req.components == 0 {
		req.components = 4
	}

	if req.alignment == 0 {
		req.alignment = 1
	}

	if req.alignment != 1 && req.alignment != 2 && req.alignment != 4 && req.alignment != 8 {
		return readRequest{}, fmt.Errorf("%w, got %d", ErrInvalidAlignment, req.alignment)
	}

	if !validComponents(req.components) {
		return readRequest{}, fmt.Errorf("%w, got %d", ErrInvalidComponents, req.components)
	}

	if err := fb.checkColorAttachment(req.attachment); err != nil {
		return readRequest{}, err
	}

	dtypeName := opts.DataType
	if dtypeName == "" {
		dtypeName = "f1"
	}

	var err error
	req.dtype, err = LookupDataType(dtypeName)
	if err != nil {
		return readRequest{}, err
	}

	if opts.Viewport == nil {
		req.vp = Viewport{X: 0, Y: 0, Width: fb.Width, Height: fb.Height}
	} else {
		req.vp, err = unpackViewport(opts.Viewport, fb.Width, fb.Height)
		if err != nil {
			return readRequest{}, err
		}
	}

	req.size = ReadSize(req.vp.Width, req.vp.Height, req.components, req.dtype.Size, req.alignment)
	return req, nil
}

func (fb *Framebuffer) readPixels(req readRequest, pixels []byte) {

	fns := fb.ctx.fns
	fns.BindFramebuffer(glapi.FRAMEBUFFER, fb.Id)
	if fb.Id != 0 {
		fns.ReadBuffer(glapi.Enum(glapi.COLOR_ATTACHMENT0 + req.attachment))
	}
	fns.PixelStorei(glapi.PACK_ALIGNMENT, int32(req.alignment))
	fns.PixelStorei(glapi.UNPACK_ALIGNMENT, int32(req.alignment))
	fns.ReadPixels(req.vp.X, req.vp.Y, req.vp.Width, req.vp.Height, req.dtype.GlFormat(req.components), req.dtype.PixelType, pixels)
	fb.ctx.restoreBinding()
}

// Read returns the raw pixel bytes of a color attachment, bottom row first.
// Each row is padded to opts.Alignment.
func (fb *Framebuffer) Read(opts ReadOptions) ([]byte, error) {

	req, err := fb.prepareRead(opts)
	if err != nil {
		return nil, err
	}

	pixels := make([]byte, req.size)
	fb.readPixels(req, pixels)
	return pixels, nil
}

type Pixel interface {
	constraints.Integer | constraints.Float
}

// ReadArray is like Read but returns the pixels as a slice of T.
// T must have the same size as one component of opts.DataType, so half floats ('f2') are read as uint16.
func ReadArray[T Pixel](fb *Framebuffer, opts ReadOptions) ([]T, error) {

	req, err := fb.prepareRead(opts)
	if err != nil {
		return nil, err
	}

	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize != req.dtype.Size {
		return nil, fmt.Errorf("%w: %T has %d bytes but dtype '%s' has %d", ErrElementSizeMismatch, zero, elemSize, req.dtype.Name, req.dtype.Size)
	}

	out := make([]T, req.size/elemSize)
	if len(out) == 0 {
		return out, nil
	}

	fb.readPixels(req, unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), req.size))
	return out, nil
}

// ReadImage reads a color attachment as 8-bit RGBA with the top row first
func (fb *Framebuffer) ReadImage(attachment int) (*image.NRGBA, error) {

	pixels, err := fb.Read(ReadOptions{Components: 4, Attachment: attachment, Alignment: 1, DataType: "f1"})
	if err != nil {
		return nil, err
	}

	img := &image.NRGBA{
		Pix:    pixels,
		Stride: int(fb.Width) * 4,
		Rect:   image.Rect(0, 0, int(fb.Width), int(fb.Height)),
	}

	// GL rows start at the bottom
	return imaging.FlipV(img), nil
}
