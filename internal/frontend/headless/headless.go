// Package headless runs a machine for a fixed number of frames without any user
// interaction and prints the resulting screen.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrogolib/log"
)

// Run executes the given number of frames of emulated time and writes the final
// framebuffer to out.
func Run(ctx context.Context, logger *log.Logger, machine *emulator.Machine, out io.Writer, frames int) error {
	frameTime := time.Second / frontend.FrameRate

	var runErr error
	for frame := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if runErr = machine.RunFrame(frameTime); runErr != nil {
			logger.Error("Execution stopped", log.Int("frame", frame), log.Err(runErr))
			break
		}
	}

	fb := machine.Framebuffer()
	if _, err := fmt.Fprint(out, render.Text(&fb, "\n")); err != nil {
		return fmt.Errorf("writing screen: %w", err)
	}

	regs := machine.Registers()
	logger.Info("Run finished",
		log.Int("frames", frames),
		log.Stringer("state", machine.State()),
		log.Hex("pc", regs.PC),
		log.Hex("i", regs.I),
		log.Int("lit_pixels", fb.Lit()))
	return runErr
}
