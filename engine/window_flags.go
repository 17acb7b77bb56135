package engine

import "github.com/veandco/go-sdl2/sdl"

type WindowFlags uint32

const (
	WindowFlags_FULLSCREEN         WindowFlags = sdl.WINDOW_FULLSCREEN
	WindowFlags_OPENGL             WindowFlags = sdl.WINDOW_OPENGL
	WindowFlags_SHOWN              WindowFlags = sdl.WINDOW_SHOWN
	WindowFlags_HIDDEN             WindowFlags = sdl.WINDOW_HIDDEN
	WindowFlags_BORDERLESS         WindowFlags = sdl.WINDOW_BORDERLESS
	WindowFlags_RESIZABLE          WindowFlags = sdl.WINDOW_RESIZABLE
	WindowFlags_ALLOW_HIGHDPI      WindowFlags = sdl.WINDOW_ALLOW_HIGHDPI
	WindowFlags_FULLSCREEN_DESKTOP WindowFlags = sdl.WINDOW_FULLSCREEN_DESKTOP
)

func (f WindowFlags) Has(flags WindowFlags) bool {
	return f&flags == flags
}

// windowFlagsFor returns the SDL window flags a config needs
func windowFlagsFor(cfg Config) WindowFlags {

	flags := WindowFlags_OPENGL | WindowFlags_ALLOW_HIGHDPI
	if cfg.Hidden {
		flags |= WindowFlags_HIDDEN
	} else {
		flags |= WindowFlags_SHOWN | WindowFlags_RESIZABLE
	}

	return flags
}
