// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Defaults of the emulation options.
const (
	DefaultHz     = 700
	DefaultScale  = 10
	DefaultFrames = 60
)

// Frontends lists all supported frontend names.
var Frontends = []string{FrontendWindow, FrontendTerminal, FrontendHeadless}

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend string `flag:"f" usage:"frontend: window, terminal, headless (default: auto-detect)"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction"`
	Mute     bool   `flag:"mute" usage:"disable the sound timer beep"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Emulation contains the machine speed and display options.
type Emulation struct {
	Hz     int `flag:"hz" usage:"instructions executed per second" default:"700"`
	Scale  int `flag:"scale" usage:"window scale factor" default:"10"`
	Frames int `flag:"frames" usage:"number of 60 Hz frames to run in headless mode" default:"60"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Emulation
}

// New returns a new options instance with default options.
func New() Program {
	return Program{
		Emulation: Emulation{
			Hz:     DefaultHz,
			Scale:  DefaultScale,
			Frames: DefaultFrames,
		},
	}
}
