// Package window implements a desktop window frontend using ebiten.
package window

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

var (
	colorOn     = color.RGBA{R: 0xe0, G: 0xf0, B: 0xd0, A: 0xff}
	colorOff    = color.RGBA{R: 0x10, G: 0x18, B: 0x10, A: 0xff}
	colorStatus = color.RGBA{R: 0xff, G: 0x60, B: 0x40, A: 0xff}
)

// hostKeys maps the keymap layout characters to window keys.
var hostKeys = map[rune]ebiten.Key{
	'1': ebiten.KeyDigit1, '2': ebiten.KeyDigit2, '3': ebiten.KeyDigit3, '4': ebiten.KeyDigit4,
	'q': ebiten.KeyQ, 'w': ebiten.KeyW, 'e': ebiten.KeyE, 'r': ebiten.KeyR,
	'a': ebiten.KeyA, 's': ebiten.KeyS, 'd': ebiten.KeyD, 'f': ebiten.KeyF,
	'z': ebiten.KeyZ, 'x': ebiten.KeyX, 'c': ebiten.KeyC, 'v': ebiten.KeyV,
}

// Options configures the window frontend.
type Options struct {
	Title string
	Scale int
	Sound frontend.Sound
}

type game struct {
	ctx     context.Context
	logger  *log.Logger
	machine *emulator.Machine
	sound   frontend.Sound
	scale   int

	bindings []keymap.Binding
	screen   *ebiten.Image
	pixels   []byte
}

// Run opens the window and runs the machine until the window gets closed,
// Escape is pressed or the context is cancelled.
func Run(ctx context.Context, logger *log.Logger, machine *emulator.Machine, opts Options) error {
	if opts.Sound == nil {
		opts.Sound = frontend.NoSound{}
	}

	g := &game{
		ctx:      ctx,
		logger:   logger,
		machine:  machine,
		sound:    opts.Sound,
		scale:    opts.Scale,
		bindings: keymap.Bindings(),
		pixels:   make([]byte, render.BufferSize),
	}

	ebiten.SetWindowSize(chip8.Width*opts.Scale, chip8.Height*opts.Scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(frontend.FrameRate)

	logger.Debug("Opening window", log.Int("scale", opts.Scale))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	g.sound.SetActive(false)
	return g.ctx.Err()
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := g.machine.Restart(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		paused := g.machine.TogglePause()
		g.logger.Info("Pause toggled", log.String("state", pauseState(paused)))
	}

	var keys chip8.Keypad
	for _, binding := range g.bindings {
		keys[binding.Key] = ebiten.IsKeyPressed(hostKeys[binding.Char])
	}
	g.machine.SetKeys(keys)

	// a halted machine keeps the window open to show the error until restart
	if err := g.machine.Advance(time.Second / frontend.FrameRate); err != nil {
		return fmt.Errorf("running frame: %w", err)
	}

	g.sound.SetActive(g.machine.SoundActive() && !g.machine.Paused())
	return nil
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(chip8.Width, chip8.Height)
	}

	fb := g.machine.Framebuffer()
	render.RGBA(&fb, g.pixels, colorOn, colorOff)
	g.screen.WritePixels(g.pixels)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.screen, opts)

	if status := g.status(); status != "" {
		text.Draw(screen, status, basicfont.Face7x13, 4, 14, colorStatus)
	}
}

// Layout implements ebiten.Game.
func (g *game) Layout(_, _ int) (int, int) {
	return chip8.Width * g.scale, chip8.Height * g.scale
}

func (g *game) status() string {
	switch {
	case g.machine.State() == chip8.StateHalted:
		return fmt.Sprintf("halted: %v (F5 restarts)", g.machine.Err())
	case g.machine.Paused():
		return "paused (P resumes)"
	default:
		return ""
	}
}

func pauseState(paused bool) string {
	if paused {
		return "paused"
	}
	return "running"
}
