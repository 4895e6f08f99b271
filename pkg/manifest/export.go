package manifest

import (
	"github.com/interactkit/modalgen/pkg/component"
	"github.com/interactkit/modalgen/pkg/modal"
)

// ConfigFromModal captures a built dialog as a manifest definition, so
// generated modals (for example from an OpenAPI operation) can be written
// back out as editable manifests. Defaults are omitted: short style, required
// fields, and automatic rows round-trip as absent keys.
func ConfigFromModal(m *modal.Modal) ModalConfig {
	cfg := ModalConfig{
		Title:    m.Title(),
		CustomID: m.CustomID(),
	}
	for _, in := range m.Items() {
		cfg.Fields = append(cfg.Fields, configFromInput(in))
	}
	return cfg
}

func configFromInput(in *component.TextInput) FieldConfig {
	field := FieldConfig{
		Label:       in.Label(),
		CustomID:    in.CustomID(),
		Placeholder: in.Placeholder(),
	}
	if in.Style() != component.TextInputStyleShort {
		field.Style = in.Style().String()
	}
	if min, ok := in.MinLength(); ok {
		field.MinLength = &min
	}
	if max, ok := in.MaxLength(); ok {
		field.MaxLength = &max
	}
	if !in.Required() {
		required := false
		field.Required = &required
	}
	if !in.Responded() && in.Value() != "" {
		field.Value = in.Value()
	}
	if row, ok := in.Row(); ok {
		field.Row = &row
	}
	return field
}
