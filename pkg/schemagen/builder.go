package schemagen

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/interactkit/modalgen/internal/layout"
	"github.com/interactkit/modalgen/pkg/component"
	"github.com/interactkit/modalgen/pkg/modal"
)

const (
	maxTitleLength       = 45
	maxLabelLength       = 45
	maxPlaceholderLength = 100
	maxValueLength       = 4000
	maxBound             = 4000

	// DefaultParagraphThreshold is the max_length above which a field is
	// rendered as a multi-line paragraph input.
	DefaultParagraphThreshold = 150
)

var paragraphFormats = map[string]struct{}{
	"textarea":  {},
	"multiline": {},
	"paragraph": {},
}

// Options configures the builder.
type Options struct {
	// ResolveReferences validates the document and follows external refs.
	ResolveReferences bool
	// ParagraphThreshold is the max_length above which inputs become
	// paragraph-styled. Defaults to DefaultParagraphThreshold.
	ParagraphThreshold int
}

// Option mutates the builder options.
type Option func(*Options)

// WithResolveReferences enables reference resolution while loading.
func WithResolveReferences() Option {
	return func(o *Options) { o.ResolveReferences = true }
}

// WithParagraphThreshold overrides the paragraph style cut-over length.
func WithParagraphThreshold(n int) Option {
	return func(o *Options) { o.ParagraphThreshold = n }
}

// Builder converts OpenAPI operations into modal dialogs.
type Builder struct {
	options Options
}

// New constructs a Builder.
func New(opts ...Option) *Builder {
	options := Options{ParagraphThreshold: DefaultParagraphThreshold}
	for _, opt := range opts {
		opt(&options)
	}
	if options.ParagraphThreshold <= 0 {
		options.ParagraphThreshold = DefaultParagraphThreshold
	}
	return &Builder{options: options}
}

// Build loads an OpenAPI document and derives a modal from the operation with
// the given operationId.
func (b *Builder) Build(ctx context.Context, raw []byte, operationID string) (*modal.Modal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("schemagen: document payload is empty")
	}
	if strings.TrimSpace(operationID) == "" {
		return nil, errors.New("schemagen: operation id is required")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: b.options.ResolveReferences,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("schemagen: load document: %w", err)
	}
	if b.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("schemagen: validate: %w", err)
		}
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("schemagen: operation %q not found", operationID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil {
		return nil, fmt.Errorf("schemagen: operation %q has no request body schema", operationID)
	}

	title := truncate(strings.TrimSpace(operation.Summary), maxTitleLength)
	if title == "" {
		title = truncate(operationID, maxTitleLength)
	}

	m, err := modal.New(title, modal.WithCustomID(truncate(operationID, 100)))
	if err != nil {
		return nil, fmt.Errorf("schemagen: operation %q: %w", operationID, err)
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := stringPropertyNames(schema)
	if len(names) == 0 {
		return nil, fmt.Errorf("schemagen: operation %q has no string properties to map", operationID)
	}
	if len(names) > layout.Rows {
		return nil, fmt.Errorf("schemagen: operation %q has %d string properties, a modal holds at most %d", operationID, len(names), layout.Rows)
	}

	for _, name := range names {
		_, isRequired := required[name]
		in, err := b.buildInput(name, schema.Properties[name].Value, isRequired)
		if err != nil {
			return nil, fmt.Errorf("schemagen: property %q: %w", name, err)
		}
		if err := m.Add(in); err != nil {
			return nil, fmt.Errorf("schemagen: property %q: %w", name, err)
		}
	}
	return m, nil
}

func (b *Builder) buildInput(name string, schema *openapi3.Schema, required bool) (*component.TextInput, error) {
	label := truncate(strings.TrimSpace(schema.Title), maxLabelLength)
	if label == "" {
		label = truncate(labelFromName(name), maxLabelLength)
	}

	opts := []component.Option{
		component.WithCustomID(name),
		component.WithRequired(required),
	}

	maxLength := 0
	if schema.MaxLength != nil {
		maxLength = clamp(int(*schema.MaxLength), 1, maxBound)
		opts = append(opts, component.WithMaxLength(maxLength))
	}
	if schema.MinLength != 0 {
		opts = append(opts, component.WithMinLength(clamp(int(schema.MinLength), 0, maxBound)))
	}
	if placeholder := truncate(strings.TrimSpace(schema.Description), maxPlaceholderLength); placeholder != "" {
		opts = append(opts, component.WithPlaceholder(placeholder))
	}
	if def, ok := schema.Default.(string); ok && def != "" {
		opts = append(opts, component.WithValue(truncate(def, maxValueLength)))
	}

	style := component.TextInputStyleShort
	if _, ok := paragraphFormats[strings.ToLower(schema.Format)]; ok {
		style = component.TextInputStyleParagraph
	} else if maxLength > b.options.ParagraphThreshold {
		style = component.TextInputStyleParagraph
	}
	opts = append(opts, component.WithStyle(style))

	return component.New(label, opts...)
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(requestBody *openapi3.RequestBodyRef) *openapi3.Schema {
	if requestBody == nil || requestBody.Value == nil {
		return nil
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// stringPropertyNames returns the string-typed property names in sorted
// order so generated modals are deterministic.
func stringPropertyNames(schema *openapi3.Schema) []string {
	var names []string
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		if isStringType(ref.Value.Type) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func isStringType(types *openapi3.Types) bool {
	if types == nil {
		return false
	}
	values := types.Slice()
	return len(values) == 1 && values[0] == "string"
}

// labelFromName turns snake_case or camelCase property names into a
// human-readable label.
func labelFromName(name string) string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(unicode.ToLower(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()
	if len(words) == 0 {
		return name
	}
	out := strings.Join(words, " ")
	return strings.ToUpper(out[:1]) + out[1:]
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func clamp(n, low, high int) int {
	if n < low {
		return low
	}
	if n > high {
		return high
	}
	return n
}
