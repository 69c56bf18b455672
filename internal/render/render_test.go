package render

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// drawZero returns a framebuffer showing the glyph 0 at the top left corner.
func drawZero(t *testing.T) chip8.Framebuffer {
	t.Helper()

	// 6000 F029 D005: draw glyph 0 at (0,0)
	c := chip8.New(log.NewTestLogger(t))
	assert.NoError(t, c.Load([]byte{0x60, 0x00, 0xF0, 0x29, 0xD0, 0x05}))
	for range 3 {
		assert.NoError(t, c.Cycle(time.Millisecond))
	}
	return c.Framebuffer()
}

func TestRGBA(t *testing.T) {
	fb := drawZero(t)
	on := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	off := color.RGBA{A: 0xff}

	buf := make([]byte, BufferSize)
	RGBA(&fb, buf, on, off)

	// glyph 0 first row is 0xF0
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, buf[0:4])
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, buf[3*4:4*4])
	assert.Equal(t, []byte{0, 0, 0, 0xff}, buf[4*4:5*4])

	// second row is 0x90, pixel (1,1) is off
	offset := (chip8.Width + 1) * 4
	assert.Equal(t, []byte{0, 0, 0, 0xff}, buf[offset:offset+4])
}

func TestText(t *testing.T) {
	fb := drawZero(t)

	lines := strings.Split(Text(&fb, "\n"), "\n")
	assert.Len(t, lines, chip8.Height/2+1)
	assert.Equal(t, "", lines[len(lines)-1])

	// row pairs 0xF0/0x90, 0x90/0x90 and 0xF0/0x00
	assert.True(t, strings.HasPrefix(lines[0], "█▀▀█ "))
	assert.True(t, strings.HasPrefix(lines[1], "█  █ "))
	assert.True(t, strings.HasPrefix(lines[2], "▀▀▀▀ "))
	assert.Equal(t, strings.Repeat(" ", chip8.Width), lines[3])
}
