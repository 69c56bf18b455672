// Package keymap maps host keyboard characters to keypad keys.
//
// The 4x4 keypad is placed on the left side of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
package keymap

import "unicode"

// Layout lists the host characters row by row in keypad order.
const Layout = "1234qwerasdfzxcv"

// keys contains the keypad key value for every character of Layout.
var keys = [len(Layout)]byte{
	0x1, 0x2, 0x3, 0xC,
	0x4, 0x5, 0x6, 0xD,
	0x7, 0x8, 0x9, 0xE,
	0xA, 0x0, 0xB, 0xF,
}

// Binding connects a host character to a keypad key.
type Binding struct {
	Char rune
	Key  byte
}

// Bindings returns all host character bindings in layout order.
func Bindings() []Binding {
	bindings := make([]Binding, 0, len(Layout))
	for i, char := range Layout {
		bindings = append(bindings, Binding{Char: char, Key: keys[i]})
	}
	return bindings
}

// FromRune returns the keypad key for a host character, letters match case insensitive.
func FromRune(char rune) (byte, bool) {
	char = unicode.ToLower(char)
	for i, layoutChar := range Layout {
		if layoutChar == char {
			return keys[i], true
		}
	}
	return 0, false
}
