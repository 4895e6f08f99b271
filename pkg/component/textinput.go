package component

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"unicode/utf8"
)

// Field bounds enforced by the remote service. Lengths count Unicode code
// points, not bytes.
const (
	maxLabelLength       = 45
	maxPlaceholderLength = 100
	maxValueLength       = 4000
	minLengthFloor       = 0
	minLengthCeil        = 4000
	maxLengthFloor       = 1
	maxLengthCeil        = 4000
	maxRowIndex          = 4
)

// TextInput is a single text field inside a modal dialog. It owns a validated
// configuration (style, identifiers, label, bounds, pre-fill) plus the
// transient response state recorded after an end user submits the dialog.
// Instances are not safe for concurrent mutation; each one belongs to exactly
// one modal.
type TextInput struct {
	style       TextInputStyle
	customID    string
	label       string
	placeholder string
	minLength   *int
	maxLength   *int
	required    bool
	value       string
	hasValue    bool
	id          *int
	row         *int

	// response holds the submitted value once RefreshState has run. A nil
	// pointer means "no response yet"; an empty string is a real response.
	response *string
}

// Option configures a TextInput during construction. Options run through the
// same validation as the corresponding setters.
type Option func(*TextInput) error

// WithStyle sets the input style. Defaults to TextInputStyleShort.
func WithStyle(style TextInputStyle) Option {
	return func(t *TextInput) error { return t.SetStyle(style) }
}

// WithCustomID overrides the generated custom id.
func WithCustomID(customID string) Option {
	return func(t *TextInput) error { return t.SetCustomID(customID) }
}

// WithPlaceholder sets the placeholder text shown before anything is entered.
func WithPlaceholder(placeholder string) Option {
	return func(t *TextInput) error { return t.SetPlaceholder(placeholder) }
}

// WithMinLength sets the minimum number of characters that must be entered.
func WithMinLength(n int) Option {
	return func(t *TextInput) error { return t.SetMinLength(n) }
}

// WithMaxLength sets the maximum number of characters that can be entered.
func WithMaxLength(n int) Option {
	return func(t *TextInput) error { return t.SetMaxLength(n) }
}

// WithRequired marks the field optional or required. Defaults to required.
func WithRequired(required bool) Option {
	return func(t *TextInput) error { t.SetRequired(required); return nil }
}

// WithValue pre-fills the field.
func WithValue(value string) Option {
	return func(t *TextInput) error { return t.SetValue(value) }
}

// WithRow pins the field to a specific layout row (0 through 4).
func WithRow(row int) Option {
	return func(t *TextInput) error { return t.SetRow(row) }
}

// WithID sets the component id normally assigned by the remote service.
func WithID(id int) Option {
	return func(t *TextInput) error { t.id = intPtr(id); return nil }
}

// New constructs a TextInput with the given label. When no WithCustomID
// option is supplied, a custom id is generated from 16 cryptographically
// random bytes, hex encoded. Construction fails with a ValidationError or
// TypeError when an argument violates its bounds; no partially constructed
// field is returned.
func New(label string, opts ...Option) (*TextInput, error) {
	t := &TextInput{
		style:    TextInputStyleShort,
		required: true,
	}
	if err := t.SetLabel(label); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	if t.customID == "" {
		customID, err := GenerateCustomID()
		if err != nil {
			return nil, err
		}
		t.customID = customID
	}
	return t, nil
}

// Type returns the wire component type tag.
func (t *TextInput) Type() ComponentType { return ComponentTypeTextInput }

// Width reports how much of a 5-unit layout row the field occupies. Text
// inputs always span the full row.
func (t *TextInput) Width() int { return 5 }

// Style returns the input style.
func (t *TextInput) Style() TextInputStyle { return t.style }

// SetStyle replaces the input style. Non-member values fail with a TypeError.
func (t *TextInput) SetStyle(style TextInputStyle) error {
	if !style.Valid() {
		return &TypeError{Field: "style", Message: fmt.Sprintf("%d is not a valid text input style", int(style))}
	}
	t.style = style
	return nil
}

// CustomID returns the id relayed back with the user's submission.
func (t *TextInput) CustomID() string { return t.customID }

// SetCustomID replaces the custom id. The id must not be empty.
func (t *TextInput) SetCustomID(customID string) error {
	if customID == "" {
		return validationErrorf("custom_id", "must not be empty")
	}
	t.customID = customID
	return nil
}

// Label returns the field label.
func (t *TextInput) Label() string { return t.label }

// SetLabel replaces the label. Labels are limited to 45 characters.
func (t *TextInput) SetLabel(label string) error {
	if utf8.RuneCountInString(label) > maxLabelLength {
		return validationErrorf("label", "must be %d characters or fewer", maxLabelLength)
	}
	t.label = label
	return nil
}

// Placeholder returns the placeholder text, or the empty string when unset.
func (t *TextInput) Placeholder() string { return t.placeholder }

// SetPlaceholder replaces the placeholder. Limited to 100 characters.
func (t *TextInput) SetPlaceholder(placeholder string) error {
	if utf8.RuneCountInString(placeholder) > maxPlaceholderLength {
		return validationErrorf("placeholder", "must be %d characters or fewer", maxPlaceholderLength)
	}
	t.placeholder = placeholder
	return nil
}

// ClearPlaceholder removes the placeholder from the wire record.
func (t *TextInput) ClearPlaceholder() { t.placeholder = "" }

// MinLength returns the minimum input length and whether one is set.
func (t *TextInput) MinLength() (int, bool) {
	if t.minLength == nil {
		return 0, false
	}
	return *t.minLength, true
}

// SetMinLength sets the minimum input length. Must be between 0 and 4000.
func (t *TextInput) SetMinLength(n int) error {
	if n < minLengthFloor || n > minLengthCeil {
		return validationErrorf("min_length", "must be between %d and %d", minLengthFloor, minLengthCeil)
	}
	t.minLength = intPtr(n)
	return nil
}

// ClearMinLength removes the minimum length bound.
func (t *TextInput) ClearMinLength() { t.minLength = nil }

// MaxLength returns the maximum input length and whether one is set.
func (t *TextInput) MaxLength() (int, bool) {
	if t.maxLength == nil {
		return 0, false
	}
	return *t.maxLength, true
}

// SetMaxLength sets the maximum input length. Must be between 1 and 4000;
// unlike min_length, zero is not a valid bound.
func (t *TextInput) SetMaxLength(n int) error {
	if n < maxLengthFloor || n > maxLengthCeil {
		return validationErrorf("max_length", "must be between %d and %d", maxLengthFloor, maxLengthCeil)
	}
	t.maxLength = intPtr(n)
	return nil
}

// ClearMaxLength removes the maximum length bound.
func (t *TextInput) ClearMaxLength() { t.maxLength = nil }

// Required reports whether the field must be filled in before submission.
func (t *TextInput) Required() bool { return t.required }

// SetRequired marks the field optional or required.
func (t *TextInput) SetRequired(required bool) { t.required = required }

// Value returns the field's current value. Once a response has been ingested
// via RefreshState the submitted value is returned, even when it is the empty
// string; before that, the pre-fill set at construction or via SetValue is
// returned.
func (t *TextInput) Value() string {
	if t.response != nil {
		return *t.response
	}
	return t.value
}

// Responded reports whether a submission response has been ingested.
func (t *TextInput) Responded() bool { return t.response != nil }

// SetValue replaces the pre-fill value. Limited to 4000 characters. It does
// not affect an already ingested response.
func (t *TextInput) SetValue(value string) error {
	if utf8.RuneCountInString(value) > maxValueLength {
		return validationErrorf("value", "must be %d characters or fewer", maxValueLength)
	}
	t.value = value
	t.hasValue = true
	return nil
}

// ClearValue removes the pre-fill value from the wire record.
func (t *TextInput) ClearValue() {
	t.value = ""
	t.hasValue = false
}

// Row returns the layout row hint and whether one is set. The hint is
// consumed by the parent modal's layout; it never appears on the wire.
func (t *TextInput) Row() (int, bool) {
	if t.row == nil {
		return 0, false
	}
	return *t.row, true
}

// SetRow pins the field to a layout row between 0 and 4.
func (t *TextInput) SetRow(row int) error {
	if row < 0 || row > maxRowIndex {
		return validationErrorf("row", "must be between 0 and %d", maxRowIndex)
	}
	t.row = intPtr(row)
	return nil
}

// ClearRow returns the field to automatic row placement.
func (t *TextInput) ClearRow() { t.row = nil }

// ID returns the component id assigned by the remote service, if known.
func (t *TextInput) ID() (int, bool) {
	if t.id == nil {
		return 0, false
	}
	return *t.id, true
}

// Payload produces the wire record for the field. The pre-fill value is
// serialized, not an ingested response: the record is what gets sent when the
// dialog is shown, before any submission exists.
func (t *TextInput) Payload() TextInputPayload {
	p := TextInputPayload{
		Type:        ComponentTypeTextInput,
		Style:       t.style,
		CustomID:    t.customID,
		Label:       t.label,
		Placeholder: t.placeholder,
		Required:    t.required,
	}
	if t.minLength != nil {
		p.MinLength = intPtr(*t.minLength)
	}
	if t.maxLength != nil {
		p.MaxLength = intPtr(*t.maxLength)
	}
	if t.hasValue {
		p.Value = t.value
	}
	if t.id != nil {
		p.ID = intPtr(*t.id)
	}
	return p
}

// RefreshState records the value an end user submitted for this field. The
// transition is one-way: after the first call the pre-fill is no longer
// observable through Value, even when the submitted value is empty. The
// response is trusted as-is; the remote service already validated it.
func (t *TextInput) RefreshState(res TextInputResponse) {
	value := res.Value
	t.response = &value
}

// GenerateCustomID returns a fresh opaque identifier: 16 cryptographically
// random bytes encoded as 32 lowercase hex characters.
func GenerateCustomID() (string, error) {
	buf := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("component: generate custom id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func intPtr(n int) *int { return &n }
