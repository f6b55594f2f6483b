package robot

import (
	"fmt"
	"strings"

	display "github.com/inference-gateway/deskcast/internal/display"
)

var (
	modifierNames = map[string]string{
		"super":   "cmd",
		"command": "cmd",
		"cmd":     "cmd",
		"win":     "cmd",
		"ctrl":    "ctrl",
		"control": "ctrl",
		"alt":     "alt",
		"option":  "alt",
		"shift":   "shift",
	}

	keyNames = map[string]string{
		"return": "enter",
		"del":    "delete",
		"escape": "esc",
		"+":      "plus",
	}
)

// robotButton names a mouse button the way robotgo expects it
func robotButton(button display.MouseButton) (string, error) {
	switch button {
	case display.MouseButtonLeft:
		return "left", nil
	case display.MouseButtonMiddle:
		return "center", nil
	case display.MouseButtonRight:
		return "right", nil
	default:
		return "", fmt.Errorf("invalid button: %s", button)
	}
}

// parseCombo splits "ctrl+shift+t" into the robotgo key and its modifiers
func parseCombo(combo string) (key string, modifiers []any, err error) {
	combo = strings.TrimSpace(combo)
	if combo == "" {
		return "", nil, fmt.Errorf("empty key combination")
	}

	parts := strings.Split(combo, "+")
	if strings.HasSuffix(combo, "++") {
		parts = append(parts[:len(parts)-2], "+")
	}

	key = strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
	if key == "" {
		return "", nil, fmt.Errorf("invalid key combination: %s", combo)
	}
	if mapped, ok := keyNames[key]; ok {
		key = mapped
	}

	for _, part := range parts[:len(parts)-1] {
		mod := strings.ToLower(strings.TrimSpace(part))
		mapped, ok := modifierNames[mod]
		if !ok {
			return "", nil, fmt.Errorf("unknown modifier %q in key combination: %s", mod, combo)
		}
		modifiers = append(modifiers, mapped)
	}

	return key, modifiers, nil
}
