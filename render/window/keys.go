package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyTable maps binding key names to ebiten keys
var keyTable = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD, "e": ebiten.KeyE,
	"f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH, "i": ebiten.KeyI, "j": ebiten.KeyJ,
	"k": ebiten.KeyK, "l": ebiten.KeyL, "m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO,
	"p": ebiten.KeyP, "q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX, "y": ebiten.KeyY,
	"z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2, "3": ebiten.KeyDigit3,
	"4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5, "6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7,
	"8": ebiten.KeyDigit8, "9": ebiten.KeyDigit9,

	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"space":     ebiten.KeySpace,
	"esc":       ebiten.KeyEscape,
	"enter":     ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
}

// keyCombo is a resolved binding, optionally requiring Ctrl
type keyCombo struct {
	key  ebiten.Key
	ctrl bool
}

// resolveKey parses a normalized key name, false for names with no window equivalent
func resolveKey(name string) (keyCombo, bool) {
	ctrl := false
	if rest, ok := strings.CutPrefix(name, "ctrl-"); ok {
		ctrl = true
		name = rest
	}
	k, ok := keyTable[name]
	return keyCombo{key: k, ctrl: ctrl}, ok
}

func ctrlDown() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
}

// down reports whether the combo is held now
func (c keyCombo) down() bool {
	if c.ctrl && !ctrlDown() {
		return false
	}
	return ebiten.IsKeyPressed(c.key)
}
