package preview

import (
	"context"
	"errors"
	"testing"

	"github.com/interactkit/modalgen/pkg/component"
	"github.com/interactkit/modalgen/pkg/modal"
)

// fakeDriver replays scripted answers and records the prompts it saw.
type fakeDriver struct {
	answers  map[string]string
	prompts  []InputConfig
	areas    int
	inputs   int
	failWith error
}

func (d *fakeDriver) answer(cfg InputConfig) (string, error) {
	if d.failWith != nil {
		return "", d.failWith
	}
	d.prompts = append(d.prompts, cfg)
	answer := d.answers[cfg.Message]
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (d *fakeDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.inputs++
	return d.answer(cfg)
}

func (d *fakeDriver) TextArea(_ context.Context, cfg InputConfig) (string, error) {
	d.areas++
	return d.answer(cfg)
}

func (d *fakeDriver) Info(context.Context, string) error { return nil }

func buildModal(t *testing.T) *modal.Modal {
	t.Helper()
	body, err := component.New("Feedback",
		component.WithCustomID("body"),
		component.WithStyle(component.TextInputStyleParagraph),
		component.WithMinLength(5),
	)
	if err != nil {
		t.Fatalf("new input: %v", err)
	}
	contact, err := component.New("Contact",
		component.WithCustomID("contact"),
		component.WithRequired(false),
		component.WithMaxLength(10),
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
	return m
}

func TestRun_CollectsAndRefreshes(t *testing.T) {
	m := buildModal(t)
	driver := &fakeDriver{answers: map[string]string{
		"Feedback":           "hello there",
		"Contact (optional)": "",
	}}

	data, err := Run(context.Background(), m, WithDriver(driver))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if data.CustomID != "feedback_modal" {
		t.Fatalf("submit custom_id: %q", data.CustomID)
	}
	if len(data.Responses) != 2 {
		t.Fatalf("responses: want 2, got %d", len(data.Responses))
	}
	if driver.areas != 1 || driver.inputs != 1 {
		t.Fatalf("prompt kinds: areas=%d inputs=%d", driver.areas, driver.inputs)
	}

	body, _ := m.InputByCustomID("body")
	if body.Value() != "hello there" || !body.Responded() {
		t.Fatalf("body not refreshed: value=%q", body.Value())
	}
	contact, _ := m.InputByCustomID("contact")
	if !contact.Responded() || contact.Value() != "" {
		t.Fatalf("contact not refreshed: value=%q responded=%v", contact.Value(), contact.Responded())
	}
}

func TestRun_WithoutRefresh(t *testing.T) {
	m := buildModal(t)
	driver := &fakeDriver{answers: map[string]string{
		"Feedback":           "hello there",
		"Contact (optional)": "",
	}}

	if _, err := Run(context.Background(), m, WithDriver(driver), WithoutRefresh()); err != nil {
		t.Fatalf("run: %v", err)
	}
	body, _ := m.InputByCustomID("body")
	if body.Responded() {
		t.Fatal("refresh should have been skipped")
	}
}

func TestRun_ValidatorEnforcesBounds(t *testing.T) {
	m := buildModal(t)
	driver := &fakeDriver{answers: map[string]string{
		"Feedback":           "hey", // under the min_length of 5
		"Contact (optional)": "",
	}}

	if _, err := Run(context.Background(), m, WithDriver(driver)); err == nil {
		t.Fatal("expected validator to reject a too-short answer")
	}

	required := inputValidator(mustInput(t, "Name", component.WithCustomID("n")))
	if err := required(""); err == nil {
		t.Fatal("required field must reject empty answers")
	}

	optional := mustInput(t, "Nick", component.WithCustomID("k"),
		component.WithRequired(false), component.WithMinLength(3))
	if err := inputValidator(optional)(""); err != nil {
		t.Fatalf("optional field must accept empty answers: %v", err)
	}
	if err := inputValidator(optional)("ab"); err == nil {
		t.Fatal("non-empty answers still hit the length bounds")
	}

	capped := mustInput(t, "Tag", component.WithCustomID("t"), component.WithMaxLength(3))
	if err := inputValidator(capped)("abcd"); err == nil {
		t.Fatal("expected max_length violation")
	}
}

func TestRun_PropagatesDriverErrors(t *testing.T) {
	m := buildModal(t)
	driver := &fakeDriver{failWith: ErrAborted}
	if _, err := Run(context.Background(), m, WithDriver(driver)); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func mustInput(t *testing.T, label string, opts ...component.Option) *component.TextInput {
	t.Helper()
	in, err := component.New(label, opts...)
	if err != nil {
		t.Fatalf("new input: %v", err)
	}
	return in
}
