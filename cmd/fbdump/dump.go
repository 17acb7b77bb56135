package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bloeys/nmgl/buffers"
	"github.com/bloeys/nmgl/engine"
	"github.com/bloeys/nmgl/logging"
	"github.com/disintegration/imaging"
	"github.com/urfave/cli/v2"
)

var infoCommand = &cli.Command{
	Name:  "info",
	Usage: "print the OpenGL driver strings and extensions",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "extensions",
			Usage: "also list every supported extension",
		},
	},
	Action: func(ctx *cli.Context) error {

		win, err := openOffscreen(1, 1)
		if err != nil {
			return err
		}
		defer closeOffscreen(win)

		info := win.Ctx.Info()
		fmt.Printf("vendor:   %s\nrenderer: %s\nversion:  %s\nglsl:     %s\n", info.Vendor, info.Renderer, info.Version, info.GlslVersion)

		exts := win.Ctx.Extensions()
		fmt.Printf("extensions: %d\n", len(exts))
		if ctx.Bool("extensions") {
			fmt.Println(strings.Join(exts, "\n"))
		}

		return nil
	},
}

func openOffscreen(width, height int32) (*engine.Window, error) {

	cfg := engine.DefaultConfig()
	cfg.Title = "fbdump"
	cfg.Width = width
	cfg.Height = height
	cfg.Hidden = true
	cfg.VSync = false

	if err := engine.Init(cfg); err != nil {
		return nil, fmt.Errorf("failed to init SDL: %w", err)
	}

	win, err := engine.CreateWindow(cfg)
	if err != nil {
		engine.Quit()
		return nil, fmt.Errorf("failed to create offscreen context: %w", err)
	}

	return win, nil
}

func closeOffscreen(win *engine.Window) {

	if err := win.Destroy(); err != nil {
		logging.ErrLog.Printf("Failed to destroy window. Err=%v\n", err)
	}
	engine.Quit()
}

func dumpAction(ctx *cli.Context) error {

	width, height := int32(ctx.Int(WidthFlag.Name)), int32(ctx.Int(HeightFlag.Name))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}

	color, err := parseColor(ctx.String(ColorFlag.Name))
	if err != nil {
		return err
	}

	viewport, err := parseInts(ctx.String(ViewportFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid viewport: %w", err)
	}

	win, err := openOffscreen(width, height)
	if err != nil {
		return err
	}
	defer closeOffscreen(win)

	dtype := "f1"
	components := 4
	if ctx.Bool(RawFlag.Name) {
		dtype = ctx.String(DataTypeFlag.Name)
		components = ctx.Int(ComponentsFlag.Name)
	}

	fb, err := buildFramebuffer(win.Ctx, width, height, components, dtype)
	if err != nil {
		return err
	}
	defer fb.Release()

	if err := fb.Use(); err != nil {
		return err
	}

	if len(viewport) > 0 {
		if err := fb.SetViewport(viewport...); err != nil {
			return err
		}
	}

	if err := fb.ClearDepth(float32(ctx.Float64(DepthFlag.Name))); err != nil {
		return err
	}

	if err := fb.ClearColor(0, color); err != nil {
		return err
	}

	out := ctx.String(OutFlag.Name)
	if ctx.Bool(RawFlag.Name) {

		data, err := fb.Read(buffers.ReadOptions{
			Components: components,
			Alignment:  ctx.Int(AlignmentFlag.Name),
			DataType:   dtype,
		})
		if err != nil {
			return err
		}

		if err := os.WriteFile(out, data, 0644); err != nil {
			return err
		}

		logging.InfoLog.Printf("Wrote %d bytes to '%s'\n", len(data), out)
		return nil
	}

	img, err := fb.ReadImage(0)
	if err != nil {
		return err
	}

	if err := imaging.Save(img, out); err != nil {
		return err
	}

	logging.InfoLog.Printf("Wrote %dx%d image to '%s'\n", width, height, out)
	return nil
}

// buildFramebuffer creates a colour texture and a depth renderbuffer and attaches both.
// The attachments are owned by the context and released with it.
func buildFramebuffer(ctx *buffers.Context, width, height int32, components int, dtype string) (*buffers.Framebuffer, error) {

	color, err := ctx.NewTexture(width, height, components, dtype, 0)
	if err != nil {
		return nil, err
	}

	depth, err := ctx.NewDepthRenderbuffer(width, height, 0)
	if err != nil {
		return nil, err
	}

	return ctx.NewFramebuffer(color, depth)
}
