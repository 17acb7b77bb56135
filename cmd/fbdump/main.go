// fbdump renders a cleared framebuffer in an offscreen GL context and writes
// the readback to disk.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	WidthFlag = &cli.IntFlag{
		Name:  "width",
		Value: 256,
		Usage: "framebuffer width in pixels",
	}
	HeightFlag = &cli.IntFlag{
		Name:  "height",
		Value: 256,
		Usage: "framebuffer height in pixels",
	}
	ColorFlag = &cli.StringFlag{
		Name:  "color",
		Value: "0,0,0,1",
		Usage: "clear colour as r,g,b,a floats",
	}
	ViewportFlag = &cli.StringFlag{
		Name:  "viewport",
		Usage: "restrict the clear to x,y or x,y,w,h",
	}
	DepthFlag = &cli.Float64Flag{
		Name:  "depth",
		Value: 1,
		Usage: "depth clear value",
	}
	OutFlag = &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Value:   "framebuffer.png",
		Usage:   "output file; the extension picks the image format",
	}
	RawFlag = &cli.BoolFlag{
		Name:  "raw",
		Usage: "write the raw readback bytes instead of an image",
	}
	DataTypeFlag = &cli.StringFlag{
		Name:  "dtype",
		Value: "f1",
		Usage: "readback data type for --raw (f1, f2, f4, u1, u2, u4, i1, i2, i4)",
	}
	ComponentsFlag = &cli.IntFlag{
		Name:  "components",
		Value: 4,
		Usage: "readback components for --raw",
	}
	AlignmentFlag = &cli.IntFlag{
		Name:  "alignment",
		Value: 1,
		Usage: "readback row alignment for --raw (1, 2, 4 or 8)",
	}
)

var dumpFlags = []cli.Flag{
	WidthFlag,
	HeightFlag,
	ColorFlag,
	ViewportFlag,
	DepthFlag,
	OutFlag,
	RawFlag,
	DataTypeFlag,
	ComponentsFlag,
	AlignmentFlag,
}

var app = &cli.App{
	Name:  "fbdump",
	Usage: "clear an offscreen framebuffer and dump its pixels",
}

func init() {
	app.Flags = dumpFlags
	app.Action = dumpAction
	app.Commands = []*cli.Command{
		infoCommand,
		showCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
