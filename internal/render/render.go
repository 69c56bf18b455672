// Package render converts framebuffer snapshots into host image formats.
package render

import (
	"image/color"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// BufferSize is the size of an RGBA pixel buffer of the screen in bytes.
const BufferSize = chip8.Width * chip8.Height * 4

// Half block characters used to draw two pixel rows per text line.
const (
	blockFull  = "█"
	blockUpper = "▀"
	blockLower = "▄"
	blockEmpty = " "
)

// RGBA writes the framebuffer into an RGBA pixel buffer of BufferSize bytes.
func RGBA(fb *chip8.Framebuffer, buf []byte, on, off color.RGBA) {
	for y := range chip8.Height {
		for x := range chip8.Width {
			c := off
			if fb.Pixel(x, y) {
				c = on
			}
			offset := (y*chip8.Width + x) * 4
			buf[offset] = c.R
			buf[offset+1] = c.G
			buf[offset+2] = c.B
			buf[offset+3] = c.A
		}
	}
}

// Text renders the framebuffer as text, combining two pixel rows into one line of
// half block characters. Lines are terminated by newline.
func Text(fb *chip8.Framebuffer, newline string) string {
	var sb strings.Builder
	for y := 0; y < chip8.Height; y += 2 {
		for x := range chip8.Width {
			upper := fb.Pixel(x, y)
			lower := fb.Pixel(x, y+1)

			switch {
			case upper && lower:
				sb.WriteString(blockFull)
			case upper:
				sb.WriteString(blockUpper)
			case lower:
				sb.WriteString(blockLower)
			default:
				sb.WriteString(blockEmpty)
			}
		}
		sb.WriteString(newline)
	}
	return sb.String()
}
