// Package modal assembles text input components into a modal dialog: a
// titled, five-row form the remote service presents to an end user. The
// package owns row placement (honoring per-field row hints), produces the
// dialog's wire payload, and relays submission responses back into the
// individual fields by custom id.
package modal
