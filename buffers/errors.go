package buffers

import (
	"errors"
	"fmt"

	"github.com/bloeys/nmgl/glapi"
)

var (
	ErrCannotCreate          = errors.New("cannot create framebuffer")
	ErrCannotCreateTexture   = errors.New("cannot create texture")
	ErrCannotCreateRbo       = errors.New("cannot create renderbuffer")
	ErrUnsupportedAttachment = errors.New("wrong attachment type")
	ErrDifferentAttachments  = errors.New("different attachments")
	ErrTooManyAttachments    = errors.New("too many color attachments")
	ErrMultipleDepth         = errors.New("more than one depth attachment")
	ErrIncompleteFramebuffer = errors.New("the framebuffer is not complete")
	ErrInvalidViewport       = errors.New("invalid viewport")
	ErrInvalidAttachment     = errors.New("invalid color attachment index")
	ErrInvalidLevel          = errors.New("invalid mip level")
	ErrInvalidAlignment      = errors.New("the alignment must be 1, 2, 4 or 8")
	ErrInvalidDataType       = errors.New("invalid dtype")
	ErrInvalidComponents     = errors.New("the components must be 1, 2, 3 or 4")
	ErrInvalidSize           = errors.New("width and height must be positive")
	ErrInvalidSamples        = errors.New("samples must not be negative")
	ErrDepthClearValue       = errors.New("a depth clear takes exactly one value")
	ErrClearValueTooLong     = errors.New("a color clear takes at most 4 values")
	ErrElementSizeMismatch   = errors.New("element size does not match dtype")
	ErrReleased              = errors.New("object was released")
	ErrNoFunctions           = errors.New("no GL functions given")
)

// IncompleteError is returned when CheckFramebufferStatus does not report
// FRAMEBUFFER_COMPLETE. It matches ErrIncompleteFramebuffer with errors.Is.
type IncompleteError struct {
	Status glapi.Enum
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s (%s)", ErrIncompleteFramebuffer.Error(), glapi.FramebufferStatusString(e.Status))
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncompleteFramebuffer
}
