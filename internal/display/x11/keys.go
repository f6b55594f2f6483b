package x11

import (
	"fmt"
	"strconv"
	"strings"
)

// keystroke is a single X keysym name plus whether Shift must be held
type keystroke struct {
	keysym string
	shift  bool
}

var (
	shiftedKeysyms = map[rune]string{
		'!': "exclam", '@': "at", '#': "numbersign", '$': "dollar",
		'%': "percent", '^': "asciicircum", '&': "ampersand", '*': "asterisk",
		'(': "parenleft", ')': "parenright", '_': "underscore", '+': "plus",
		'{': "braceleft", '}': "braceright", '|': "bar", ':': "colon",
		'"': "quotedbl", '<': "less", '>': "greater", '?': "question",
		'~': "asciitilde",
	}

	plainKeysyms = map[rune]string{
		'.': "period", ',': "comma", ';': "semicolon", '\'': "apostrophe",
		'/': "slash", '\\': "backslash", '-': "minus", '=': "equal",
		'[': "bracketleft", ']': "bracketright", '`': "grave",
		' ': "space", '\n': "Return", '\t': "Tab",
	}

	modifierKeysyms = map[string]string{
		"ctrl":    "Control_L",
		"control": "Control_L",
		"alt":     "Alt_L",
		"option":  "Alt_L",
		"shift":   "Shift_L",
		"super":   "Super_L",
		"win":     "Super_L",
		"cmd":     "Super_L",
		"command": "Super_L",
		"meta":    "Meta_L",
	}

	namedKeysyms = map[string]string{
		"enter":     "Return",
		"return":    "Return",
		"tab":       "Tab",
		"space":     "space",
		"backspace": "BackSpace",
		"delete":    "Delete",
		"del":       "Delete",
		"esc":       "Escape",
		"escape":    "Escape",
		"up":        "Up",
		"down":      "Down",
		"left":      "Left",
		"right":     "Right",
		"home":      "Home",
		"end":       "End",
		"pageup":    "Prior",
		"pagedown":  "Next",
		"insert":    "Insert",
	}
)

// charKeystroke returns the keystroke that types char on a US layout
func charKeystroke(char rune) keystroke {
	if char >= 'A' && char <= 'Z' {
		return keystroke{keysym: strings.ToLower(string(char)), shift: true}
	}
	if name, ok := shiftedKeysyms[char]; ok {
		return keystroke{keysym: name, shift: true}
	}
	if name, ok := plainKeysyms[char]; ok {
		return keystroke{keysym: name}
	}
	return keystroke{keysym: string(char)}
}

// keyName resolves a viewer key name ("enter", "f5", "a") to an X keysym name
func keyName(key string) string {
	lower := strings.ToLower(key)
	if name, ok := namedKeysyms[lower]; ok {
		return name
	}
	if len(lower) >= 2 && lower[0] == 'f' {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 12 {
			return "F" + strconv.Itoa(n)
		}
	}
	if len([]rune(key)) == 1 {
		return charKeystroke([]rune(key)[0]).keysym
	}
	return key
}

// parseCombo splits "ctrl+shift+t" into modifier keysyms and the main keysym.
// A single key with no modifiers is a valid combo.
func parseCombo(combo string) (modifiers []string, key string, err error) {
	combo = strings.TrimSpace(combo)
	if combo == "" {
		return nil, "", fmt.Errorf("empty key combination")
	}

	parts := strings.Split(combo, "+")
	if len(parts) > 1 {
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
	}
	main := parts[len(parts)-1]
	if main == "" {
		// "ctrl++" names the plus key
		if strings.HasSuffix(combo, "++") {
			main = "+"
			parts = parts[:len(parts)-1]
		} else {
			return nil, "", fmt.Errorf("invalid key combination: %s", combo)
		}
	}

	for _, mod := range parts[:len(parts)-1] {
		name, ok := modifierKeysyms[strings.ToLower(mod)]
		if !ok {
			return nil, "", fmt.Errorf("unknown modifier %q in key combination: %s", mod, combo)
		}
		modifiers = append(modifiers, name)
	}

	return modifiers, keyName(main), nil
}
