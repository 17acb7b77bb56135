package engine

type Config struct {
	Title  string
	Width  int32
	Height int32

	GlMajorVersion int
	GlMinorVersion int

	// Samples enables MSAA on the default framebuffer when above zero
	Samples int

	// Hidden creates the window without showing it, which gives an offscreen GL context
	Hidden bool
	VSync  bool
}

func DefaultConfig() Config {
	return Config{
		Title:          "nmgl",
		Width:          1280,
		Height:         720,
		GlMajorVersion: 4,
		GlMinorVersion: 1,
		Samples:        0,
		Hidden:         false,
		VSync:          true,
	}
}
