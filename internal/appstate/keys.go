package appstate

import (
	"unicode"

	"golang.org/x/mobile/event/key"
)

// command names a user action reachable from keys, buttons or shortcuts.
type command string

const (
	cmdUndo     command = "undo"
	cmdSave     command = "save"
	cmdCopy     command = "copy"
	cmdReset    command = "reset"
	cmdQuit     command = "quit"
	cmdSmear    command = "smear"
	cmdBlur     command = "blur"
	cmdPixelate command = "pixelate"
	cmdLight    command = "light"
	cmdMedium   command = "medium"
	cmdHeavy    command = "heavy"
	cmdGrow     command = "grow"
	cmdShrink   command = "shrink"
)

// KeyShortcut describes a keyboard combination that triggers an action.
// Either Rune or Code is set.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

func ctrl(r rune, c key.Code) shortcutList {
	return shortcutList{{Rune: r, Modifiers: key.ModControl}, {Code: c, Modifiers: key.ModControl}}
}

func plain(r rune) shortcutList { return shortcutList{{Rune: r}} }

var keyBindings = []struct {
	cmd  command
	keys KeyboardShortcuts
}{
	{cmdUndo, ctrl('z', key.CodeZ)},
	{cmdSave, ctrl('s', key.CodeS)},
	{cmdCopy, ctrl('c', key.CodeC)},
	{cmdReset, plain('r')},
	{cmdQuit, append(plain('q'), KeyShortcut{Code: key.CodeEscape})},
	{cmdSmear, plain('s')},
	{cmdBlur, plain('b')},
	{cmdPixelate, plain('p')},
	{cmdLight, plain('1')},
	{cmdMedium, plain('2')},
	{cmdHeavy, plain('3')},
	{cmdGrow, append(plain(']'), plain('+')...)},
	{cmdShrink, append(plain('['), plain('-')...)},
}

type keymap map[KeyShortcut]command

func newKeymap() keymap {
	m := keymap{}
	for _, b := range keyBindings {
		for _, sc := range b.keys.KeyboardShortcuts() {
			m[sc] = b.cmd
		}
	}
	return m
}

// lookup matches the event by rune first and by key code second. Shift is
// ignored so upper case letters behave like lower case ones.
func (m keymap) lookup(e key.Event) (command, bool) {
	mods := e.Modifiers &^ key.ModShift
	if e.Rune > 0 {
		r := unicode.ToLower(e.Rune)
		// Control combinations may arrive as ASCII control characters.
		if mods&key.ModControl != 0 && r < 0x20 {
			r += 'a' - 1
		}
		if c, ok := m[KeyShortcut{Rune: r, Modifiers: mods}]; ok {
			return c, true
		}
	}
	c, ok := m[KeyShortcut{Code: e.Code, Modifiers: mods}]
	return c, ok
}
