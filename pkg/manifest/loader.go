package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"

	"github.com/interactkit/modalgen/pkg/component"
	"github.com/interactkit/modalgen/pkg/modal"
)

// LoadOption adjusts how manifests are loaded.
type LoadOption func(*loadOptions)

type loadOptions struct {
	sanitize bool
}

// WithSanitizer strips HTML markup from labels, placeholders, and pre-fill
// values before validation.
func WithSanitizer() LoadOption {
	return func(opts *loadOptions) { opts.sanitize = true }
}

// Store keeps the parsed modal definitions. It is immutable after
// construction and safe for concurrent readers.
type Store struct {
	modals map[string]ModalConfig
}

// Load parses a single manifest document.
func Load(data []byte, opts ...LoadOption) (*Store, error) {
	store := &Store{modals: make(map[string]ModalConfig)}
	if err := store.ingest(data, "manifest", applyLoadOptions(opts)); err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFS walks the provided filesystem and parses every JSON/YAML manifest
// file. When fsys is nil or holds no manifests, the returned store is empty.
// Modal ids must be unique across all files.
func LoadFS(fsys fs.FS, opts ...LoadOption) (*Store, error) {
	store := &Store{modals: make(map[string]ModalConfig)}
	if fsys == nil {
		return store, nil
	}
	cfg := applyLoadOptions(opts)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("manifest: read %s: %w", path, err)
		}
		return store.ingest(data, path, cfg)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func applyLoadOptions(opts []LoadOption) loadOptions {
	var cfg loadOptions
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (s *Store) ingest(data []byte, source string, cfg loadOptions) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}
	if len(doc.Modals) == 0 {
		return fmt.Errorf("manifest: file %s defines no modals", source)
	}

	validate := validator.New()
	for id, raw := range doc.Modals {
		trimmed := strings.TrimSpace(id)
		if trimmed == "" {
			return fmt.Errorf("manifest: file %s defines an empty modal id", source)
		}
		if _, exists := s.modals[trimmed]; exists {
			return fmt.Errorf("manifest: duplicate modal %q (file %s)", trimmed, source)
		}
		if cfg.sanitize {
			raw = sanitizeModal(raw)
		}
		if err := validate.Struct(raw); err != nil {
			return fmt.Errorf("manifest: modal %q (file %s): %w", trimmed, source, err)
		}
		// Build once to surface component-level errors at load time rather
		// than on first use.
		if _, err := buildModal(raw); err != nil {
			return fmt.Errorf("manifest: modal %q (file %s): %w", trimmed, source, err)
		}
		s.modals[trimmed] = raw
	}
	return nil
}

// Modal builds the dialog registered under the given id. Every call returns
// a fresh instance: dialogs carry response state once submitted, so handing
// out a shared one would leak responses across interactions.
func (s *Store) Modal(id string) (*modal.Modal, bool) {
	if s == nil {
		return nil, false
	}
	cfg, ok := s.modals[id]
	if !ok {
		return nil, false
	}
	m, err := buildModal(cfg)
	if err != nil {
		// ingest already built this config once; a failure here means the
		// stored config was mutated, which the immutable store rules out.
		return nil, false
	}
	return m, true
}

// Config returns the raw definition registered under the given id.
func (s *Store) Config(id string) (ModalConfig, bool) {
	if s == nil {
		return ModalConfig{}, false
	}
	cfg, ok := s.modals[id]
	return cfg, ok
}

// IDs returns the registered modal ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.modals))
	for id := range s.modals {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Empty reports whether the store holds any modals.
func (s *Store) Empty() bool {
	return s == nil || len(s.modals) == 0
}

func parseDocument(data []byte, source string) (Document, error) {
	var doc Document
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("manifest: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return Document{}, fmt.Errorf("manifest: parse %s: invalid JSON or YAML", source)
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func buildModal(cfg ModalConfig) (*modal.Modal, error) {
	var modalOpts []modal.Option
	if cfg.CustomID != "" {
		modalOpts = append(modalOpts, modal.WithCustomID(cfg.CustomID))
	}
	m, err := modal.New(cfg.Title, modalOpts...)
	if err != nil {
		return nil, err
	}
	for i, field := range cfg.Fields {
		in, err := buildField(field)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		if err := m.Add(in); err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
	}
	return m, nil
}

func buildField(cfg FieldConfig) (*component.TextInput, error) {
	style, err := component.ParseTextInputStyle(cfg.Style)
	if err != nil {
		return nil, err
	}
	opts := []component.Option{component.WithStyle(style)}
	if cfg.CustomID != "" {
		opts = append(opts, component.WithCustomID(cfg.CustomID))
	}
	if cfg.Placeholder != "" {
		opts = append(opts, component.WithPlaceholder(cfg.Placeholder))
	}
	if cfg.MinLength != nil {
		opts = append(opts, component.WithMinLength(*cfg.MinLength))
	}
	if cfg.MaxLength != nil {
		opts = append(opts, component.WithMaxLength(*cfg.MaxLength))
	}
	if cfg.Required != nil {
		opts = append(opts, component.WithRequired(*cfg.Required))
	}
	if cfg.Value != "" {
		opts = append(opts, component.WithValue(cfg.Value))
	}
	if cfg.Row != nil {
		opts = append(opts, component.WithRow(*cfg.Row))
	}
	return component.New(cfg.Label, opts...)
}
