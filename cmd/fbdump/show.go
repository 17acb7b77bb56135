package main

import (
	"fmt"

	"github.com/bloeys/nmgl/engine"
	"github.com/urfave/cli/v2"
)

var showCommand = &cli.Command{
	Name:  "show",
	Usage: "clear the screen framebuffer of a visible window until it is closed",
	Flags: []cli.Flag{
		WidthFlag,
		HeightFlag,
		ColorFlag,
		ViewportFlag,
	},
	Action: showAction,
}

func showAction(ctx *cli.Context) error {

	color, err := parseColor(ctx.String(ColorFlag.Name))
	if err != nil {
		return err
	}

	viewport, err := parseInts(ctx.String(ViewportFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid viewport: %w", err)
	}

	cfg := engine.DefaultConfig()
	cfg.Title = "fbdump"
	cfg.Width = int32(ctx.Int(WidthFlag.Name))
	cfg.Height = int32(ctx.Int(HeightFlag.Name))

	if err := engine.Init(cfg); err != nil {
		return err
	}
	defer engine.Quit()

	win, err := engine.CreateWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	screen := win.Ctx.Screen()
	for !win.IsQuitRequested() {

		win.PollEvents()

		// Resizes reset the viewport, so the requested one is re-applied each frame
		if len(viewport) > 0 {
			if err := screen.SetViewport(viewport...); err != nil {
				return err
			}
		}

		if err := screen.ClearColor(0, color); err != nil {
			return err
		}

		win.Swap()
	}

	return nil
}
