// Package emulator drives the interpreter on behalf of a frontend.
package emulator

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// MaxHz is the highest supported instruction rate.
const MaxHz = 1_000_000

// maxFrameTime limits the real time a single frame can account for, so that a
// stalled host does not make the machine race to catch up.
const maxFrameTime = 250 * time.Millisecond

// Options configures a Machine.
type Options struct {
	Hz    int  // instructions per second
	Trace bool // log every executed instruction

	CPUOptions []chip8.Option
}

// Machine owns an interpreter together with the ROM it runs and paces its
// instruction execution in real time.
type Machine struct {
	logger *log.Logger
	cpu    *chip8.CPU
	rom    []byte

	interval time.Duration // real time per instruction
	pending  time.Duration // real time not yet spent on instructions
	paused   bool
}

// New creates a machine and loads the ROM into its interpreter.
func New(logger *log.Logger, rom []byte, opts Options) (*Machine, error) {
	if opts.Hz <= 0 || opts.Hz > MaxHz {
		return nil, fmt.Errorf("invalid instruction rate %d, must be between 1 and %d", opts.Hz, MaxHz)
	}

	cpuOptions := append([]chip8.Option{chip8.WithTrace(opts.Trace)}, opts.CPUOptions...)
	m := &Machine{
		logger:   logger,
		cpu:      chip8.New(logger, cpuOptions...),
		rom:      rom,
		interval: time.Second / time.Duration(opts.Hz),
	}

	if err := m.cpu.Load(rom); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	logger.Debug("Machine created",
		log.Int("hz", opts.Hz),
		log.Int("rom_size", len(rom)))
	return m, nil
}

// RunFrame executes the instructions that fit into the elapsed real time. Time that
// does not add up to a full instruction is carried over to the next frame.
func (m *Machine) RunFrame(elapsed time.Duration) error {
	if m.paused {
		return nil
	}

	m.pending += min(elapsed, maxFrameTime)
	for m.pending >= m.interval {
		m.pending -= m.interval
		if err := m.cpu.Cycle(m.interval); err != nil {
			m.pending = 0
			return fmt.Errorf("running cycle: %w", err)
		}
	}
	return nil
}

// Advance runs a frame for a host that keeps presenting a halted machine.
// It does nothing once the machine halted, the fatal error is reported by the
// interpreter and available through Err. Other errors are returned.
func (m *Machine) Advance(elapsed time.Duration) error {
	if m.cpu.State() == chip8.StateHalted {
		return nil
	}

	err := m.RunFrame(elapsed)
	if err == nil {
		return nil
	}
	if chip8.IsFatal(err) {
		m.logger.Debug("Execution halted", log.Err(err))
		return nil
	}
	return err
}

// Run executes frames at the given rate until the context is cancelled, the machine
// fails or the present callback returns false. present is called after every frame.
func (m *Machine) Run(ctx context.Context, frameRate int, present func(m *Machine) bool) error {
	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now

			if err := m.RunFrame(elapsed); err != nil {
				return err
			}
			if !present(m) {
				return nil
			}
		}
	}
}

// Restart resets the interpreter and reloads the ROM.
func (m *Machine) Restart() error {
	m.cpu.Reset()
	m.pending = 0
	m.paused = false
	if err := m.cpu.Load(m.rom); err != nil {
		return fmt.Errorf("reloading program: %w", err)
	}
	m.logger.Info("Machine restarted")
	return nil
}

// TogglePause pauses or resumes the execution and returns whether the machine is paused.
func (m *Machine) TogglePause() bool {
	m.paused = !m.paused
	return m.paused
}

// Paused returns whether the execution is paused.
func (m *Machine) Paused() bool {
	return m.paused
}

// SetKeys sets the pressed state of all keypad keys.
func (m *Machine) SetKeys(keys chip8.Keypad) {
	m.cpu.SetKeys(keys)
}

// Framebuffer returns a copy of the screen content.
func (m *Machine) Framebuffer() chip8.Framebuffer {
	return m.cpu.Framebuffer()
}

// SoundActive returns whether the beep should currently be played.
func (m *Machine) SoundActive() bool {
	return m.cpu.SoundActive()
}

// State returns the execution state of the interpreter.
func (m *Machine) State() chip8.State {
	return m.cpu.State()
}

// Err returns the fatal error that halted the interpreter, if any.
func (m *Machine) Err() error {
	return m.cpu.Err()
}

// Registers returns a snapshot of the interpreter registers.
func (m *Machine) Registers() chip8.Registers {
	return m.cpu.Registers()
}
