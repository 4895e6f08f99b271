package manifest

// Document is the top-level shape of a manifest file: a map of modal ids to
// their definitions.
type Document struct {
	Modals map[string]ModalConfig `json:"modals" yaml:"modals"`
}

// ModalConfig describes one modal dialog.
type ModalConfig struct {
	Title    string        `json:"title" yaml:"title" validate:"required,max=45"`
	CustomID string        `json:"custom_id,omitempty" yaml:"custom_id,omitempty" validate:"omitempty,max=100"`
	Fields   []FieldConfig `json:"fields" yaml:"fields" validate:"required,min=1,max=5,dive"`
}

// FieldConfig describes one text input inside a modal. Optional integers are
// pointers so zero values survive the trip through YAML.
type FieldConfig struct {
	Label       string `json:"label" yaml:"label" validate:"max=45"`
	Style       string `json:"style,omitempty" yaml:"style,omitempty"`
	CustomID    string `json:"custom_id,omitempty" yaml:"custom_id,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty" validate:"omitempty,max=100"`
	MinLength   *int   `json:"min_length,omitempty" yaml:"min_length,omitempty" validate:"omitempty,min=0,max=4000"`
	MaxLength   *int   `json:"max_length,omitempty" yaml:"max_length,omitempty" validate:"omitempty,min=1,max=4000"`
	Required    *bool  `json:"required,omitempty" yaml:"required,omitempty"`
	Value       string `json:"value,omitempty" yaml:"value,omitempty" validate:"omitempty,max=4000"`
	Row         *int   `json:"row,omitempty" yaml:"row,omitempty" validate:"omitempty,min=0,max=4"`
}
