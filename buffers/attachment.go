package buffers

// Attachment is storage that can back a framebuffer slot.
// Only *Texture and *Renderbuffer can be attached; NewFramebuffer rejects any
// other implementation.
type Attachment interface {
	// Size returns the size of the attached image, which for textures depends on the attached level
	Size() (width, height int32)
	SampleCount() int32
	IsDepth() bool
}

var (
	_ Attachment = &Texture{}
	_ Attachment = &Renderbuffer{}
)
