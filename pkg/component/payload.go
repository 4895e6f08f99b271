package component

import (
	"encoding/json"
	"fmt"
)

// TextInputPayload is the wire record for a text input component. Optional
// integers are pointers so absent and zero stay distinct; the row layout hint
// is deliberately not part of the record.
type TextInputPayload struct {
	Type        ComponentType  `json:"type"`
	Style       TextInputStyle `json:"style"`
	CustomID    string         `json:"custom_id"`
	Label       string         `json:"label"`
	Placeholder string         `json:"placeholder,omitempty"`
	MinLength   *int           `json:"min_length,omitempty"`
	MaxLength   *int           `json:"max_length,omitempty"`
	Required    bool           `json:"required"`
	Value       string         `json:"value,omitempty"`
	ID          *int           `json:"id,omitempty"`
}

// ActionRowPayload wraps components into a single layout row on the wire.
type ActionRowPayload struct {
	Type       ComponentType      `json:"type"`
	Components []TextInputPayload `json:"components"`
}

// ModalPayload is the wire record for a whole modal dialog.
type ModalPayload struct {
	Title      string             `json:"title"`
	CustomID   string             `json:"custom_id"`
	Components []ActionRowPayload `json:"components"`
}

// TextInputResponse carries the value an end user submitted for one field.
type TextInputResponse struct {
	CustomID string `json:"custom_id"`
	Value    string `json:"value"`
}

// ModalSubmitData is the parsed interaction data of a modal submission,
// flattened to the per-field responses the relay layer dispatches.
type ModalSubmitData struct {
	CustomID  string              `json:"custom_id"`
	Responses []TextInputResponse `json:"responses"`
}

type rawSubmitComponent struct {
	Type       ComponentType        `json:"type"`
	CustomID   string               `json:"custom_id"`
	Value      string               `json:"value"`
	Components []rawSubmitComponent `json:"components"`
}

type rawSubmitData struct {
	CustomID   string               `json:"custom_id"`
	Components []rawSubmitComponent `json:"components"`
}

// ParseModalSubmit decodes the raw interaction data of a modal submission.
// The payload nests each text input inside an action row; the result is
// flattened in document order. No value validation is performed: the remote
// service already enforced the field bounds before relaying the submission.
func ParseModalSubmit(data []byte) (ModalSubmitData, error) {
	var raw rawSubmitData
	if err := json.Unmarshal(data, &raw); err != nil {
		return ModalSubmitData{}, fmt.Errorf("component: parse modal submit: %w", err)
	}
	out := ModalSubmitData{CustomID: raw.CustomID}
	for _, row := range raw.Components {
		collectResponses(&out, row)
	}
	return out, nil
}

func collectResponses(out *ModalSubmitData, node rawSubmitComponent) {
	if node.Type == ComponentTypeTextInput {
		out.Responses = append(out.Responses, TextInputResponse{
			CustomID: node.CustomID,
			Value:    node.Value,
		})
		return
	}
	for _, child := range node.Components {
		collectResponses(out, child)
	}
}
