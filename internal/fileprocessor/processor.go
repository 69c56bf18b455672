// Package fileprocessor handles ROM loading and running it on the selected frontend
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile loads the ROM file and runs it until the frontend finishes.
// The headless frontend writes its screen dump to out.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, out io.Writer) error {
	rom, err := loader.New(logger).Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	machine, err := emulator.New(logger, rom, emulator.Options{
		Hz:    opts.Hz,
		Trace: opts.Trace,
	})
	if err != nil {
		return fmt.Errorf("creating machine: %w", err)
	}

	name := detector.New(logger).Detect(opts)
	logger.Debug("Starting frontend", log.String("frontend", name))

	switch name {
	case options.FrontendWindow:
		sound := createSound(logger, opts)
		if closer, ok := sound.(io.Closer); ok {
			defer func() { _ = closer.Close() }()
		}
		return window.Run(ctx, logger, machine, window.Options{
			Title: windowTitle(opts.Input),
			Scale: opts.Scale,
			Sound: sound,
		})

	case options.FrontendTerminal:
		return terminal.Run(ctx, logger, machine, terminal.Options{Mute: opts.Mute})

	case options.FrontendHeadless:
		return headless.Run(ctx, logger, machine, out, opts.Frames)

	default:
		return fmt.Errorf("unsupported frontend '%s'", name)
	}
}

// createSound opens the audio device, running without sound if that fails.
func createSound(logger *log.Logger, opts options.Program) frontend.Sound {
	if opts.Mute {
		return frontend.NoSound{}
	}

	beeper, err := audio.NewBeeper(logger)
	if err != nil {
		logger.Warn("Audio output not available", log.Err(err))
		return frontend.NoSound{}
	}
	return beeper
}

func windowTitle(input string) string {
	base := filepath.Base(input)
	return "retrochip8 - " + strings.TrimSuffix(base, filepath.Ext(base))
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
