package manifest

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips any HTML markup from manifest-sourced display text.
// Modal labels, placeholders, and pre-fills are plain text on the wire, but
// manifests are often produced by templates or third-party generators that
// leak markup into them.
func sanitizeText(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(textSanitizer().Sanitize(raw))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

func sanitizeField(cfg FieldConfig) FieldConfig {
	cfg.Label = sanitizeText(cfg.Label)
	cfg.Placeholder = sanitizeText(cfg.Placeholder)
	cfg.Value = sanitizeText(cfg.Value)
	return cfg
}

func sanitizeModal(cfg ModalConfig) ModalConfig {
	cfg.Title = sanitizeText(cfg.Title)
	fields := make([]FieldConfig, len(cfg.Fields))
	for i, field := range cfg.Fields {
		fields[i] = sanitizeField(field)
	}
	cfg.Fields = fields
	return cfg
}
