// Package ddl captures schema-modification commands as canonical,
// machine-editable JSON blobs and reconstitutes those blobs into
// fully-qualified command text.
//
// A Producer inspects one command and builds its deparse tree; EncodeToJSON
// turns the tree into the wire blob; ExpandJSONToText regenerates equivalent
// command text from a blob, independent of any session state on either side.
package ddl

import (
	"bytes"

	"github.com/signadot/ddl-format/go-ddl/encode"
	"github.com/signadot/ddl-format/go-ddl/expand"
	"github.com/signadot/ddl-format/go-ddl/ir"
	"github.com/signadot/ddl-format/go-ddl/parse"
)

// A Producer builds the deparse tree for one command descriptor.  Returning
// a nil tree with a nil error means the command kind is intentionally not
// deparsable; callers skip it rather than treating it as a failure.
type Producer interface {
	Produce(cmd any) (*ir.Node, error)
}

// ProducerFunc adapts a function to the Producer interface.
type ProducerFunc func(cmd any) (*ir.Node, error)

func (f ProducerFunc) Produce(cmd any) (*ir.Node, error) {
	return f(cmd)
}

// EncodeToJSON drives producer -> builder -> encoder for one command,
// returning the compact wire blob.  A nil result with nil error means the
// command is not deparsable (the producer declined, or marked the whole
// command not-present).
func EncodeToJSON(p Producer, cmd any) ([]byte, error) {
	node, err := p.Produce(cmd)
	if err != nil {
		return nil, err
	}
	if node == nil || !node.Present {
		return nil, nil
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExpandJSONToText drives decoder -> expander for one wire blob.
func ExpandJSONToText(d []byte) (string, error) {
	return expand.JSON(d)
}

// Decode decodes a wire blob into its tree.
func Decode(d []byte) (*ir.Node, error) {
	return parse.Parse(d)
}
