package modal

import (
	"fmt"
	"unicode/utf8"

	"github.com/interactkit/modalgen/internal/layout"
	"github.com/interactkit/modalgen/pkg/component"
)

const (
	maxTitleLength    = 45
	maxCustomIDLength = 100
)

// Modal is a dialog composed of up to five text inputs. It is built once by
// the application, sent to the remote service as a payload, and fed the
// user's submission exactly once through RefreshState. Not safe for
// concurrent mutation.
type Modal struct {
	title    string
	customID string

	items   []*component.TextInput
	rows    map[*component.TextInput]int
	weights layout.Weights
}

// Option configures a Modal during construction.
type Option func(*Modal) error

// WithCustomID overrides the generated modal custom id.
func WithCustomID(customID string) Option {
	return func(m *Modal) error { return m.SetCustomID(customID) }
}

// WithInputs adds the given inputs in order.
func WithInputs(inputs ...*component.TextInput) Option {
	return func(m *Modal) error {
		for _, in := range inputs {
			if err := m.Add(in); err != nil {
				return err
			}
		}
		return nil
	}
}

// New constructs a modal with the given title. When no WithCustomID option is
// supplied a custom id is generated the same way text inputs generate theirs.
func New(title string, opts ...Option) (*Modal, error) {
	m := &Modal{rows: make(map[*component.TextInput]int)}
	if err := m.SetTitle(title); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	if m.customID == "" {
		generated, err := component.GenerateCustomID()
		if err != nil {
			return nil, err
		}
		m.customID = generated
	}
	return m, nil
}

// Title returns the dialog title.
func (m *Modal) Title() string { return m.title }

// SetTitle replaces the dialog title. Titles are required and limited to 45
// characters.
func (m *Modal) SetTitle(title string) error {
	if title == "" {
		return &component.ValidationError{Field: "title", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return &component.ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must be %d characters or fewer", maxTitleLength),
		}
	}
	m.title = title
	return nil
}

// CustomID returns the id relayed back with the dialog's submission.
func (m *Modal) CustomID() string { return m.customID }

// SetCustomID replaces the modal custom id. Limited to 100 characters.
func (m *Modal) SetCustomID(customID string) error {
	if customID == "" {
		return &component.ValidationError{Field: "custom_id", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(customID) > maxCustomIDLength {
		return &component.ValidationError{
			Field:   "custom_id",
			Message: fmt.Sprintf("must be %d characters or fewer", maxCustomIDLength),
		}
	}
	m.customID = customID
	return nil
}

// Add places an input into the dialog's grid. A row hint on the input pins it
// to that row; otherwise the first free row is used. Text inputs span a full
// row, so a dialog holds at most five.
func (m *Modal) Add(in *component.TextInput) error {
	if in == nil {
		return &component.ValidationError{Field: "item", Message: "must not be nil"}
	}
	if _, exists := m.rows[in]; exists {
		return &component.ValidationError{Field: "item", Message: "already added to this modal"}
	}
	hint, hasHint := in.Row()
	row, err := m.weights.Place(hint, hasHint, in.Width())
	if err != nil {
		return &component.ValidationError{Field: "row", Message: err.Error()}
	}
	m.items = append(m.items, in)
	m.rows[in] = row
	return nil
}

// Remove detaches an input and frees its row.
func (m *Modal) Remove(in *component.TextInput) {
	row, ok := m.rows[in]
	if !ok {
		return
	}
	m.weights.Release(row, in.Width())
	delete(m.rows, in)
	for i, item := range m.items {
		if item == in {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
}

// Items returns the inputs in the order they occupy rows.
func (m *Modal) Items() []*component.TextInput {
	out := make([]*component.TextInput, 0, len(m.items))
	for row := 0; row < layout.Rows; row++ {
		for _, in := range m.items {
			if m.rows[in] == row {
				out = append(out, in)
			}
		}
	}
	return out
}

// InputByCustomID looks an input up by its custom id.
func (m *Modal) InputByCustomID(customID string) (*component.TextInput, bool) {
	for _, in := range m.items {
		if in.CustomID() == customID {
			return in, true
		}
	}
	return nil, false
}

// Payload produces the dialog's wire record: one action row per occupied
// grid row, in row order. Row hints themselves never reach the wire.
func (m *Modal) Payload() component.ModalPayload {
	p := component.ModalPayload{
		Title:    m.title,
		CustomID: m.customID,
	}
	for _, in := range m.Items() {
		p.Components = append(p.Components, component.ActionRowPayload{
			Type:       component.ComponentTypeActionRow,
			Components: []component.TextInputPayload{in.Payload()},
		})
	}
	return p
}

// RefreshState relays a submission into the dialog's inputs, matching each
// response to its field by custom id. A response that names an unknown custom
// id means the relay layer and this dialog disagree about the form's shape
// and is reported as an error; responses before it have already been applied.
func (m *Modal) RefreshState(data component.ModalSubmitData) error {
	if data.CustomID != "" && data.CustomID != m.customID {
		return fmt.Errorf("modal: submission custom_id %q does not match %q", data.CustomID, m.customID)
	}
	for _, res := range data.Responses {
		in, ok := m.InputByCustomID(res.CustomID)
		if !ok {
			return fmt.Errorf("modal: no input with custom_id %q", res.CustomID)
		}
		in.RefreshState(res)
	}
	return nil
}
