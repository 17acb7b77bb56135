package glapi

import "fmt"

// FramebufferStatusString returns the short name of a CheckFramebufferStatus result,
// e.g. 'INCOMPLETE_ATTACHMENT' for FRAMEBUFFER_INCOMPLETE_ATTACHMENT.
// Unknown values are printed in hex.
func FramebufferStatusString(status Enum) string {

	switch status {
	case FRAMEBUFFER_COMPLETE:
		return "COMPLETE"
	case FRAMEBUFFER_UNDEFINED:
		return "UNDEFINED"
	case FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return "INCOMPLETE_ATTACHMENT"
	case FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return "INCOMPLETE_MISSING_ATTACHMENT"
	case FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return "INCOMPLETE_DRAW_BUFFER"
	case FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return "INCOMPLETE_READ_BUFFER"
	case FRAMEBUFFER_UNSUPPORTED:
		return "UNSUPPORTED"
	case FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return "INCOMPLETE_MULTISAMPLE"
	case FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS:
		return "INCOMPLETE_LAYER_TARGETS"
	default:
		return fmt.Sprintf("0x%x", uint32(status))
	}
}
