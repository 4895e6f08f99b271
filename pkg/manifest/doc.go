// Package manifest loads declarative modal dialog definitions from JSON or
// YAML documents. Documents are pre-validated with struct tags for early,
// field-addressed messages, optionally sanitized (stripping HTML markup from
// labels, placeholders, and pre-fill values), and then materialised through
// the component constructors, which remain the authority on field bounds.
// The resulting Store is immutable and safe for concurrent readers; every
// Modal call builds a fresh dialog because dialogs become stateful once a
// submission is ingested.
package manifest
