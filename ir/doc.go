// Package ir provides the object-tree representation of a deparsed DDL
// command.
//
// A command is represented as a Node: an ordered collection of named Values
// plus a format string that references each value through a %{name[:sep]}C
// placeholder.  Values form a small closed tagged union (null, bool, int,
// float, string, array, nested node), so the encoder and expander can match
// exhaustively without reflection.
//
// Trees are built top-down by producers and are append-only: a node is never
// mutated after being attached to a parent, and a tree is consumed exactly
// once (encoded to the wire or expanded to text) before being discarded.
//
// Construction keeps the format string and the params synchronized: Attach
// derives the param name from the placeholder text it appends, so every
// placeholder has a param and every param has exactly one placeholder.
// AttachArray drops empty arrays entirely, and SetPresent records explicit
// absence, which together express all optionality structurally; neither the
// JSON encoding nor expansion needs any out-of-band flags.
//
// Related packages:
//
//   - github.com/signadot/ddl-format/go-ddl/encode - encodes trees to the wire
//   - github.com/signadot/ddl-format/go-ddl/parse - decodes wire blobs to trees
//   - github.com/signadot/ddl-format/go-ddl/expand - expands trees to SQL text
package ir
