// Package encode serializes deparse trees to the wire.
//
// The canonical wire format is JSON: one object per node, the "fmt" key first
// when the node has a format string, then one key per param in attachment
// order.  Encoding is deterministic, total, and lossless; any suppression of
// optional content happens structurally at build time (present flags, empty
// array elision), never here.
//
// A YAML rendering is available for human review of blobs; it is not a wire
// format.
package encode
