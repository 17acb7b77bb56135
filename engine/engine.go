// Package engine creates SDL windows with an OpenGL context and wraps the
// context in a buffers.Context.
//
// All functions in this package, and every GL call made through the returned
// context, must run on the thread that called Init.
package engine

import (
	"fmt"
	"runtime"

	"github.com/bloeys/nmgl/assert"
	"github.com/bloeys/nmgl/buffers"
	"github.com/bloeys/nmgl/glapi"
	"github.com/bloeys/nmgl/glapi/gogl"
	"github.com/bloeys/nmgl/logging"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	isInited = false
)

type Window struct {
	SDLWin         *sdl.Window
	GlCtx          sdl.GLContext
	Ctx            *buffers.Context
	EventCallbacks []func(sdl.Event)

	isQuitRequested bool
}

// Swap presents the default framebuffer
func (w *Window) Swap() {
	w.SDLWin.GLSwap()
}

// HandleResize resizes the screen framebuffer to the current drawable size
func (w *Window) HandleResize() {

	fbWidth, fbHeight := w.SDLWin.GLGetDrawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	screen := w.Ctx.Screen()
	screen.Width = fbWidth
	screen.Height = fbHeight
	if err := screen.SetViewport(0, 0, fbWidth, fbHeight); err != nil {
		logging.ErrLog.Printf("Failed to resize screen viewport. Err=%v\n", err)
	}
}

func (w *Window) Destroy() error {

	w.Ctx.Release()
	sdl.GLDeleteContext(w.GlCtx)
	return w.SDLWin.Destroy()
}

func Init(cfg Config) error {

	isInited = true

	runtime.LockOSThread()
	return initSDL(cfg)
}

func Quit() {
	sdl.Quit()
	isInited = false
}

func initSDL(cfg Config) error {

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, cfg.GlMajorVersion)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, cfg.GlMinorVersion)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	if cfg.Samples > 0 {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, cfg.Samples)
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	return nil
}

// CreateWindow opens a centered window with a current GL context.
// With cfg.Hidden the window never shows and its default framebuffer is only useful
// as the screen framebuffer of the context; render into framebuffers instead.
func CreateWindow(cfg Config) (*Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	flags := windowFlagsFor(cfg)
	sdlWin, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, cfg.Width, cfg.Height, uint32(flags))
	if err != nil {
		return nil, err
	}

	win := &Window{
		SDLWin:         sdlWin,
		EventCallbacks: make([]func(sdl.Event), 0),
	}

	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		sdlWin.Destroy()
		return nil, err
	}

	fns, err := gogl.New()
	if err != nil {
		sdl.GLDeleteContext(win.GlCtx)
		sdlWin.Destroy()
		return nil, fmt.Errorf("failed to load OpenGL functions: %w", err)
	}

	SetVSync(cfg.VSync)

	win.Ctx, err = buffers.NewContext(fns)
	if err != nil {
		sdl.GLDeleteContext(win.GlCtx)
		sdlWin.Destroy()
		return nil, err
	}

	if cfg.Samples > 0 {
		fns.Enable(glapi.MULTISAMPLE)
	}

	return win, nil
}

func SetVSync(enabled bool) {

	if enabled {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}
}
