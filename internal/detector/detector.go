// Package detector handles frontend detection.
package detector

import (
	"os"
	"runtime"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// Detector selects the frontend from options or the environment the program runs in.
type Detector struct {
	logger *log.Logger

	goos       string
	getenv     func(string) string
	isTerminal func(fd int) bool
}

// New creates a new frontend detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger:     logger,
		goos:       runtime.GOOS,
		getenv:     os.Getenv,
		isTerminal: term.IsTerminal,
	}
}

// Detect determines the frontend to use. An explicitly requested frontend is returned
// unchanged, otherwise a window is preferred if a display is available, followed by the
// terminal if the output is a terminal and headless mode as fallback.
func (d *Detector) Detect(opts options.Program) string {
	if opts.Frontend != "" {
		return opts.Frontend
	}

	frontend := d.detectFromEnvironment()
	d.logger.Debug("Auto-detected frontend",
		log.String("frontend", frontend),
		log.String("os", d.goos))
	return frontend
}

func (d *Detector) detectFromEnvironment() string {
	switch {
	case d.hasDisplay():
		return options.FrontendWindow
	case d.isTerminal(int(os.Stdout.Fd())) && d.isTerminal(int(os.Stdin.Fd())):
		return options.FrontendTerminal
	default:
		return options.FrontendHeadless
	}
}

// hasDisplay returns whether a graphical display is available.
func (d *Detector) hasDisplay() bool {
	switch d.goos {
	case "windows", "darwin":
		return true
	case "js", "android", "ios":
		return false
	}
	return d.getenv("DISPLAY") != "" || d.getenv("WAYLAND_DISPLAY") != ""
}
