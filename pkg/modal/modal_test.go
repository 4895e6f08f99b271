package modal

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/interactkit/modalgen/pkg/component"
)

func mustInput(t *testing.T, label string, opts ...component.Option) *component.TextInput {
	t.Helper()
	in, err := component.New(label, opts...)
	if err != nil {
		t.Fatalf("new input: %v", err)
	}
	return in
}

func TestNew_TitleBounds(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected empty title to fail")
	}
	if _, err := New(strings.Repeat("t", 46)); err == nil {
		t.Fatal("expected oversized title to fail")
	}
	m, err := New(strings.Repeat("t", 45))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if len(m.CustomID()) != 32 {
		t.Fatalf("generated custom id length: want 32, got %d", len(m.CustomID()))
	}
}

func TestAdd_CapacityAndHints(t *testing.T) {
	m, err := New("Survey")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	pinned := mustInput(t, "pinned", component.WithRow(2), component.WithCustomID("pinned"))
	if err := m.Add(pinned); err != nil {
		t.Fatalf("add pinned: %v", err)
	}

	conflicting := mustInput(t, "conflict", component.WithRow(2))
	var verr *component.ValidationError
	if err := m.Add(conflicting); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for occupied row, got %v", err)
	}

	for i := 0; i < 4; i++ {
		if err := m.Add(mustInput(t, "auto")); err != nil {
			t.Fatalf("add auto %d: %v", i, err)
		}
	}
	if err := m.Add(mustInput(t, "overflow")); err == nil {
		t.Fatal("expected full modal to reject sixth input")
	}

	if err := m.Add(pinned); err == nil {
		t.Fatal("expected duplicate add to fail")
	}
}

func TestRemove_FreesRow(t *testing.T) {
	m, err := New("Survey")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	in := mustInput(t, "a", component.WithRow(0))
	if err := m.Add(in); err != nil {
		t.Fatalf("add: %v", err)
	}
	m.Remove(in)
	if len(m.Items()) != 0 {
		t.Fatalf("items after remove: %d", len(m.Items()))
	}
	if err := m.Add(mustInput(t, "b", component.WithRow(0))); err != nil {
		t.Fatalf("row should be free again: %v", err)
	}
}

func TestPayload_RowOrder(t *testing.T) {
	m, err := New("Feedback", WithCustomID("feedback_modal"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	second := mustInput(t, "Second", component.WithRow(3), component.WithCustomID("second"))
	first := mustInput(t, "First", component.WithRow(1), component.WithCustomID("first"))
	if err := m.Add(second); err != nil {
		t.Fatalf("add second: %v", err)
	}
	if err := m.Add(first); err != nil {
		t.Fatalf("add first: %v", err)
	}

	want := component.ModalPayload{
		Title:    "Feedback",
		CustomID: "feedback_modal",
		Components: []component.ActionRowPayload{
			{
				Type:       component.ComponentTypeActionRow,
				Components: []component.TextInputPayload{first.Payload()},
			},
			{
				Type:       component.ComponentTypeActionRow,
				Components: []component.TextInputPayload{second.Payload()},
			},
		},
	}
	if diff := cmp.Diff(want, m.Payload()); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestRefreshState_DispatchesByCustomID(t *testing.T) {
	m, err := New("Feedback", WithCustomID("feedback_modal"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	text := mustInput(t, "Text", component.WithCustomID("text"), component.WithValue("pre"))
	contact := mustInput(t, "Contact", component.WithCustomID("contact"))
	if err := m.Add(text); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.Add(contact); err != nil {
		t.Fatalf("add: %v", err)
	}

	err = m.RefreshState(component.ModalSubmitData{
		CustomID: "feedback_modal",
		Responses: []component.TextInputResponse{
			{CustomID: "text", Value: "hello"},
			{CustomID: "contact", Value: ""},
		},
	})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := text.Value(); got != "hello" {
		t.Fatalf("text value: want %q, got %q", "hello", got)
	}
	if got := contact.Value(); got != "" || !contact.Responded() {
		t.Fatalf("contact: value=%q responded=%v", got, contact.Responded())
	}
}

func TestRefreshState_Mismatches(t *testing.T) {
	m, err := New("Feedback", WithCustomID("feedback_modal"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := m.Add(mustInput(t, "a", component.WithCustomID("a"))); err != nil {
		t.Fatalf("add: %v", err)
	}

	err = m.RefreshState(component.ModalSubmitData{CustomID: "other_modal"})
	if err == nil {
		t.Fatal("expected modal custom_id mismatch to fail")
	}

	err = m.RefreshState(component.ModalSubmitData{
		CustomID:  "feedback_modal",
		Responses: []component.TextInputResponse{{CustomID: "ghost", Value: "x"}},
	})
	if err == nil {
		t.Fatal("expected unknown input custom_id to fail")
	}
}

func TestInputByCustomID(t *testing.T) {
	m, err := New("Feedback")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	in := mustInput(t, "a", component.WithCustomID("a"))
	if err := m.Add(in); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got, ok := m.InputByCustomID("a"); !ok || got != in {
		t.Fatalf("lookup failed: ok=%v", ok)
	}
	if _, ok := m.InputByCustomID("missing"); ok {
		t.Fatal("lookup of missing id should fail")
	}
}
