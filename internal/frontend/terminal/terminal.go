// Package terminal implements a text frontend that runs in a raw mode terminal.
package terminal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// keyHold is how long a key counts as pressed after the terminal reported it.
// Terminals only send key presses and repeats, no releases.
const keyHold = 150 * time.Millisecond

// Control characters.
const (
	ctrlC  = 0x03
	escape = 0x1b
)

// Host commands.
const (
	commandPause   = 'p'
	commandRestart = 'o'
)

const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	bell        = "\a"
)

// Options configures the terminal frontend.
type Options struct {
	Mute bool
}

type host struct {
	logger  *log.Logger
	machine *emulator.Machine
	out     io.Writer
	opts    Options

	input    chan []byte   // chunks as returned by a single read
	done     chan struct{} // closed when the host stops
	held     [chip8.NumKeys]time.Time // release deadline per key
	sounding bool
}

// Run switches the terminal into raw mode and runs the machine until Ctrl+C or
// Escape is pressed or the context is cancelled.
func Run(ctx context.Context, logger *log.Logger, machine *emulator.Machine, opts Options) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting terminal raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if width < chip8.Width || height < chip8.Height/2+1 {
			logger.Warn("Terminal is smaller than the screen",
				log.Int("width", width),
				log.Int("height", height))
		}
	}

	h := newHost(logger, machine, os.Stdout, opts)
	go h.readInput(os.Stdin)

	fmt.Fprint(h.out, clearScreen+hideCursor)
	defer fmt.Fprint(h.out, showCursor+"\r\n")

	return h.run(ctx)
}

func newHost(logger *log.Logger, machine *emulator.Machine, out io.Writer, opts Options) *host {
	return &host{
		logger:  logger,
		machine: machine,
		out:     out,
		opts:    opts,
		input:   make(chan []byte, 16),
		done:    make(chan struct{}),
	}
}

func (h *host) run(ctx context.Context) error {
	defer close(h.done)

	err := h.machine.Run(ctx, frontend.FrameRate, h.present)
	if err != nil && h.machine.State() == chip8.StateHalted {
		h.draw()
	}
	return err
}

// readInput forwards the read chunks until the reader fails or the host stops.
// Escape sequences of special keys arrive as one chunk.
func (h *host) readInput(r io.Reader) {
	buf := make([]byte, 32)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			select {
			case h.input <- bytes.Clone(buf[:n]):
			case <-h.done:
				return
			}
		}
		if err != nil {
			close(h.input)
			return
		}
	}
}

// present handles the pending input, draws the screen and returns false if the user quits.
func (h *host) present(*emulator.Machine) bool {
	now := time.Now()
	if !h.processInput(now) {
		return false
	}
	h.machine.SetKeys(h.keys(now))

	h.draw()
	h.beep()
	return true
}

func (h *host) processInput(now time.Time) bool {
	for {
		select {
		case chunk, ok := <-h.input:
			if !ok {
				return false
			}
			if !h.handleChunk(chunk, now) {
				return false
			}
		default:
			return true
		}
	}
}

// handleChunk processes the bytes of one read. A lone Escape quits, an Escape
// followed by more bytes starts the sequence of a special key, which is ignored.
func (h *host) handleChunk(chunk []byte, now time.Time) bool {
	for i, b := range chunk {
		if b == escape {
			return i < len(chunk)-1
		}
		if !h.handleByte(b, now) {
			return false
		}
	}
	return true
}

func (h *host) handleByte(b byte, now time.Time) bool {
	switch b {
	case ctrlC:
		return false

	case commandPause:
		paused := h.machine.TogglePause()
		h.logger.Debug("Pause toggled", log.String("paused", fmt.Sprint(paused)))

	case commandRestart:
		if err := h.machine.Restart(); err != nil {
			h.logger.Error("Restarting failed", log.Err(err))
			return false
		}

	default:
		if key, ok := keymap.FromRune(rune(b)); ok {
			h.held[key] = now.Add(keyHold)
		}
	}
	return true
}

// keys returns the keys whose hold window did not expire yet.
func (h *host) keys(now time.Time) chip8.Keypad {
	var keys chip8.Keypad
	for key, deadline := range h.held {
		keys[key] = now.Before(deadline)
	}
	return keys
}

func (h *host) draw() {
	fb := h.machine.Framebuffer()

	var sb strings.Builder
	sb.WriteString(cursorHome)
	sb.WriteString(render.Text(&fb, "\r\n"))
	sb.WriteString(h.status())
	sb.WriteString("\x1b[K")
	fmt.Fprint(h.out, sb.String())
}

func (h *host) status() string {
	switch {
	case h.machine.State() == chip8.StateHalted:
		return fmt.Sprintf("halted: %v", h.machine.Err())
	case h.machine.Paused():
		return "paused, p resumes"
	default:
		return "esc quits, p pauses, o restarts"
	}
}

// beep rings the terminal bell when the sound timer starts.
func (h *host) beep() {
	active := h.machine.SoundActive() && !h.machine.Paused()
	if active && !h.sounding && !h.opts.Mute {
		fmt.Fprint(h.out, bell)
	}
	h.sounding = active
}
