package chip8

// spriteWidth is the width of every sprite row in pixels.
const spriteWidth = 8

// Framebuffer is the monochrome 64x32 pixel screen. Pixel (0,0) is the top left corner.
type Framebuffer struct {
	pixels [Height][Width]bool
}

// Pixel returns whether the pixel at the given coordinates is set.
// Coordinates outside of the screen return false.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f.pixels[y][x]
}

// Lit returns the number of set pixels.
func (f *Framebuffer) Lit() int {
	var count int
	for y := range f.pixels {
		for x := range f.pixels[y] {
			if f.pixels[y][x] {
				count++
			}
		}
	}
	return count
}

func (f *Framebuffer) clear() {
	f.pixels = [Height][Width]bool{}
}

// drawSprite XORs the sprite rows onto the screen with the top left corner at x,y.
// Pixels that fall outside of the screen wrap around to the opposite edge.
// It returns whether any set pixel was turned off.
func (f *Framebuffer) drawSprite(x, y byte, sprite []byte) bool {
	var collision bool
	for row, data := range sprite {
		py := (int(y) + row) % Height
		for column := range spriteWidth {
			if data&(0x80>>column) == 0 {
				continue
			}
			px := (int(x) + column) % Width
			if f.pixels[py][px] {
				collision = true
			}
			f.pixels[py][px] = !f.pixels[py][px]
		}
	}
	return collision
}
