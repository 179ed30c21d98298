package config

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
)

// Modifiers is a bit set of key modifiers.
type Modifiers uint8

const (
	ModAlt Modifiers = 1 << iota
	ModCtrl
	ModSuper
	ModHyper
	ModMeta
	ModShift
)

// ParseModifiers reads a modifier string where each letter adds one
// modifier: a for alt, c for ctrl, l for super, h for hyper, m for
// meta and s for shift. Letters fold case and may repeat.
func ParseModifiers(s string) (Modifiers, error) {
	var mods Modifiers
	for _, ch := range strings.ToLower(s) {
		switch ch {
		case 'a':
			mods |= ModAlt
		case 'c':
			mods |= ModCtrl
		case 'l':
			mods |= ModSuper
		case 'h':
			mods |= ModHyper
		case 'm':
			mods |= ModMeta
		case 's':
			mods |= ModShift
		default:
			return 0, &ErrUnknown{What: "key modifier", Name: string(ch)}
		}
	}
	return mods, nil
}

// keyRenames maps key names to the different spelling the terminal
// event loop reports them under.
var keyRenames = map[string]string{
	"page-up":   "pgup",
	"page-down": "pgdown",
	"back-tab":  "shift+tab",
	"null":      "ctrl+@",
}

// passthroughKeys are the remaining named keys. Most terminals never
// report the lock, media, and bare modifier keys; bindings on them
// simply never fire there.
var passthroughKeys = map[string]bool{
	"backspace":            true,
	"enter":                true,
	"left":                 true,
	"right":                true,
	"up":                   true,
	"down":                 true,
	"home":                 true,
	"end":                  true,
	"tab":                  true,
	"delete":               true,
	"insert":               true,
	"esc":                  true,
	"caps-lock":            true,
	"scroll-lock":          true,
	"num-lock":             true,
	"print-screen":         true,
	"pause":                true,
	"menu":                 true,
	"keypad-begin":         true,
	"media-play":           true,
	"media-pause":          true,
	"media-play-pause":     true,
	"media-reverse":        true,
	"media-stop":           true,
	"media-fast-forward":   true,
	"media-rewind":         true,
	"media-track-next":     true,
	"media-track-previous": true,
	"media-record":         true,
	"media-lower-volume":   true,
	"media-raise-volume":   true,
	"media-mute-volume":    true,
	"left-shift":           true,
	"left-control":         true,
	"left-alt":             true,
	"left-super":           true,
	"left-hyper":           true,
	"left-meta":            true,
	"right-shift":          true,
	"right-control":        true,
	"right-alt":            true,
	"right-super":          true,
	"right-hyper":          true,
	"right-meta":           true,
	"iso-level-3-shift":    true,
	"iso-level-5-shift":    true,
}

// ParseKey resolves a key name: a named key, f followed by a number up
// to 255, or a single character.
func ParseKey(name string) (string, error) {
	if renamed, ok := keyRenames[name]; ok {
		return renamed, nil
	}
	if passthroughKeys[name] {
		return name, nil
	}
	if rest, ok := strings.CutPrefix(name, "f"); ok && rest != "" {
		if n, err := strconv.ParseUint(rest, 10, 8); err == nil {
			return "f" + strconv.FormatUint(n, 10), nil
		}
	}
	if utf8.RuneCountInString(name) == 1 {
		return name, nil
	}
	return "", &ErrUnknown{What: "key", Name: name}
}

// Stroke is one chord of modifiers plus a key.
type Stroke struct {
	Mods Modifiers
	Key  string
}

// ParseStroke reads a (modifiers key) pair already split into its two
// strings.
func ParseStroke(mods, name string) (Stroke, error) {
	m, err := ParseModifiers(mods)
	if err != nil {
		return Stroke{}, err
	}
	k, err := ParseKey(name)
	if err != nil {
		return Stroke{}, err
	}
	return Stroke{Mods: m, Key: k}, nil
}

// String renders the stroke the way the terminal event loop names
// incoming keys, alt first.
func (s Stroke) String() string {
	var b strings.Builder
	if s.Mods&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if s.Mods&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if s.Mods&ModShift != 0 {
		b.WriteString("shift+")
	}
	if s.Mods&ModSuper != 0 {
		b.WriteString("super+")
	}
	if s.Mods&ModHyper != 0 {
		b.WriteString("hyper+")
	}
	if s.Mods&ModMeta != 0 {
		b.WriteString("meta+")
	}
	b.WriteString(s.Key)
	return b.String()
}

// KeyBinding binds an action to one or more strokes.
type KeyBinding struct {
	Action  Action
	Strokes []Stroke
	Keys    key.Binding
}

// NewKeyBinding builds the matchable binding for the given strokes.
func NewKeyBinding(action Action, strokes []Stroke) KeyBinding {
	keys := make([]string, 0, len(strokes))
	for _, stroke := range strokes {
		keys = append(keys, stroke.String())
	}
	help := ""
	if len(keys) > 0 {
		help = keys[0]
	}
	return KeyBinding{
		Action:  action,
		Strokes: strokes,
		Keys: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(help, string(action)),
		),
	}
}
