package tty

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/input"
)

// KeyName converts a tcell key event into the binding key name space
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := unicode.ToLower(ev.Rune())
		name := string(r)
		if r == ' ' {
			name = "space"
		}
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			name = "ctrl-" + name
		}
		return input.NormalizeKey(name)
	}

	if name, ok := tcell.KeyNames[ev.Key()]; ok {
		return input.NormalizeKey(strings.ReplaceAll(name, " ", ""))
	}
	return ""
}
