package manifest

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/interactkit/modalgen/pkg/component"
	"github.com/interactkit/modalgen/pkg/modal"
)

func TestConfigFromModal_RoundTrip(t *testing.T) {
	body, err := component.New("Your feedback",
		component.WithCustomID("feedback_text"),
		component.WithStyle(component.TextInputStyleParagraph),
		component.WithMinLength(10),
		component.WithMaxLength(500),
		component.WithPlaceholder("Tell us what you think"),
	)
	if err != nil {
		t.Fatalf("new input: %v", err)
	}
	contact, err := component.New("Contact",
		component.WithCustomID("contact"),
		component.WithRequired(false),
		component.WithRow(4),
	)
	if err != nil {
		t.Fatalf("new input: %v", err)
	}
	m, err := modal.New("Send feedback",
		modal.WithCustomID("feedback_modal"),
		modal.WithInputs(body, contact),
	)
	if err != nil {
		t.Fatalf("new modal: %v", err)
	}

	doc := Document{Modals: map[string]ModalConfig{"feedback": ConfigFromModal(m)}}
	raw, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	store, err := Load(raw)
	if err != nil {
		t.Fatalf("reload exported manifest: %v", err)
	}
	rebuilt, ok := store.Modal("feedback")
	if !ok {
		t.Fatal("feedback modal missing after round-trip")
	}
	if rebuilt.Title() != m.Title() || rebuilt.CustomID() != m.CustomID() {
		t.Fatalf("header mismatch: %q/%q", rebuilt.Title(), rebuilt.CustomID())
	}

	in, ok := rebuilt.InputByCustomID("feedback_text")
	if !ok {
		t.Fatal("feedback_text missing after round-trip")
	}
	if in.Style() != component.TextInputStyleParagraph {
		t.Fatalf("style lost in round-trip: %v", in.Style())
	}
	if min, _ := in.MinLength(); min != 10 {
		t.Fatalf("min_length lost: %d", min)
	}

	second, ok := rebuilt.InputByCustomID("contact")
	if !ok {
		t.Fatal("contact missing after round-trip")
	}
	if second.Required() {
		t.Fatal("required=false lost in round-trip")
	}
	if row, ok := second.Row(); !ok || row != 4 {
		t.Fatalf("row hint lost: %d (ok=%v)", row, ok)
	}
}

func TestConfigFromModal_OmitsDefaults(t *testing.T) {
	in, err := component.New("Name", component.WithCustomID("name"))
	if err != nil {
		t.Fatalf("new input: %v", err)
	}
	m, err := modal.New("Hello", modal.WithInputs(in))
	if err != nil {
		t.Fatalf("new modal: %v", err)
	}
	cfg := ConfigFromModal(m)
	field := cfg.Fields[0]
	if field.Style != "" || field.Required != nil || field.Row != nil || field.MinLength != nil {
		t.Fatalf("defaults should be omitted: %+v", field)
	}
}
