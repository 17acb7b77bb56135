package engine

import "github.com/veandco/go-sdl2/sdl"

// PollEvents drains the SDL event queue, fires the window callbacks and
// keeps the screen framebuffer sized to the drawable.
func (w *Window) PollEvents() {

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		//Fire callbacks
		for i := 0; i < len(w.EventCallbacks); i++ {
			w.EventCallbacks[i](event)
		}

		//Internal processing
		switch e := event.(type) {

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				w.isQuitRequested = true
			}

		case *sdl.WindowEvent:

			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.HandleResize()
			}

			if e.Event == sdl.WINDOWEVENT_CLOSE {
				w.isQuitRequested = true
			}

		case *sdl.QuitEvent:
			w.isQuitRequested = true
		}
	}
}

func (w *Window) IsQuitRequested() bool {
	return w.isQuitRequested
}
