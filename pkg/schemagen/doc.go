// Package schemagen derives modal dialogs from OpenAPI operations. The
// string-typed properties of an operation's JSON request body become text
// inputs: property names map to custom ids, schema length bounds map to the
// field bounds (clamped to what the remote service accepts), and the
// operation summary becomes the dialog title. Non-string properties are
// skipped because modal dialogs only carry text inputs.
package schemagen
