package component

import (
	"fmt"
	"strings"
)

// ComponentType tags a component payload with the kind the remote service
// expects. Values match the public API component type enumeration.
type ComponentType int

const (
	ComponentTypeActionRow  ComponentType = 1
	ComponentTypeButton     ComponentType = 2
	ComponentTypeSelectMenu ComponentType = 3
	ComponentTypeTextInput  ComponentType = 4
)

// TextInputStyle selects between a single-line and a multi-line text field.
type TextInputStyle int

const (
	// TextInputStyleShort renders a single-line input.
	TextInputStyleShort TextInputStyle = 1
	// TextInputStyleParagraph renders a multi-line input.
	TextInputStyleParagraph TextInputStyle = 2
)

// Valid reports whether the style is a member of the enumeration.
func (s TextInputStyle) Valid() bool {
	return s == TextInputStyleShort || s == TextInputStyleParagraph
}

func (s TextInputStyle) String() string {
	switch s {
	case TextInputStyleShort:
		return "short"
	case TextInputStyleParagraph:
		return "paragraph"
	default:
		return fmt.Sprintf("TextInputStyle(%d)", int(s))
	}
}

// ParseTextInputStyle maps the textual style names used by manifests and CLI
// flags onto the enumeration. The empty string resolves to the short style.
func ParseTextInputStyle(raw string) (TextInputStyle, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "short":
		return TextInputStyleShort, nil
	case "paragraph", "long", "multiline":
		return TextInputStyleParagraph, nil
	default:
		return 0, &TypeError{Field: "style", Message: fmt.Sprintf("unknown text input style %q", raw)}
	}
}
