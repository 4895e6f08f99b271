// Package component defines the typed building blocks of a Discord modal
// dialog: the wire-level enums and payload records exchanged with the
// gateway/REST layer, the error kinds raised on invalid configuration, and
// the TextInput field itself. Validation happens at assignment time with
// fixed bounds (label <= 45, placeholder <= 100, value <= 4000, min_length in
// [0,4000], max_length in [1,4000], row in [0,4]); a field that fails
// validation is left unchanged. Payload records carry optional integers as
// pointers so that absent and zero remain distinguishable on the wire.
package component
