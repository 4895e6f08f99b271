// Package preview walks a modal dialog in the terminal, prompting for each
// text input the way the remote service would render it. The collected
// answers form the same submission record the response-relay layer produces,
// so a preview run exercises the full ingestion path of a dialog before any
// bot is deployed.
package preview

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/interactkit/modalgen/pkg/component"
	"github.com/interactkit/modalgen/pkg/modal"
)

// Option adjusts a preview run.
type Option func(*runOptions)

type runOptions struct {
	driver  PromptDriver
	refresh bool
}

// WithDriver overrides the terminal-backed prompt driver.
func WithDriver(d PromptDriver) Option {
	return func(o *runOptions) { o.driver = d }
}

// WithoutRefresh collects the submission without feeding it back into the
// dialog's inputs.
func WithoutRefresh() Option {
	return func(o *runOptions) { o.refresh = false }
}

// Run prompts for every input of the dialog in layout order and returns the
// assembled submission. Unless WithoutRefresh is given, the submission is
// also ingested through Modal.RefreshState so the inputs' Value reads switch
// to the answered values.
func Run(ctx context.Context, m *modal.Modal, opts ...Option) (component.ModalSubmitData, error) {
	cfg := runOptions{driver: NewSurveyDriver(), refresh: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.driver.Info(ctx, fmt.Sprintf("== %s ==", m.Title())); err != nil {
		return component.ModalSubmitData{}, err
	}

	data := component.ModalSubmitData{CustomID: m.CustomID()}
	for _, in := range m.Items() {
		answer, err := promptOne(ctx, cfg.driver, in)
		if err != nil {
			return component.ModalSubmitData{}, err
		}
		data.Responses = append(data.Responses, component.TextInputResponse{
			CustomID: in.CustomID(),
			Value:    answer,
		})
	}

	if cfg.refresh {
		if err := m.RefreshState(data); err != nil {
			return component.ModalSubmitData{}, err
		}
	}
	return data, nil
}

func promptOne(ctx context.Context, driver PromptDriver, in *component.TextInput) (string, error) {
	message := in.Label()
	if message == "" {
		message = in.CustomID()
	}
	if !in.Required() {
		message += " (optional)"
	}

	cfg := InputConfig{
		Message:   message,
		Default:   in.Value(),
		Help:      in.Placeholder(),
		Validator: inputValidator(in),
	}

	if in.Style() == component.TextInputStyleParagraph {
		return driver.TextArea(ctx, cfg)
	}
	return driver.Input(ctx, cfg)
}

// inputValidator enforces the field's bounds the way the remote service does
// at submission time: requiredness only bites on empty answers, and the
// length bounds only apply once something was entered.
func inputValidator(in *component.TextInput) func(string) error {
	return func(value string) error {
		length := utf8.RuneCountInString(value)
		if length == 0 {
			if in.Required() {
				return fmt.Errorf("%s is required", in.Label())
			}
			return nil
		}
		if min, ok := in.MinLength(); ok && length < min {
			return fmt.Errorf("must be at least %d characters (got %d)", min, length)
		}
		if max, ok := in.MaxLength(); ok && length > max {
			return fmt.Errorf("must be %d characters or fewer (got %d)", max, length)
		}
		return nil
	}
}
