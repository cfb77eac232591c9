package ddl

import (
	"bytes"
	"fmt"

	"github.com/signadot/ddl-format/go-ddl/debug"
	"github.com/signadot/ddl-format/go-ddl/encode"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 JSON patch to a wire blob and returns the
// patched blob re-encoded in canonical wire form.  Blobs exist to be
// machine-edited; this is the supported way to do it.
func Patch(blob, patch []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("cannot decode patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patch %d ops on %d byte blob\n", len(ops), len(blob))
	}
	out, err := ops.Apply(blob)
	if err != nil {
		return nil, fmt.Errorf("cannot apply patch: %w", err)
	}
	return Canonical(out)
}

// Canonical re-encodes a blob in compact wire form, validating it on the
// way through the decoder.
func Canonical(blob []byte) ([]byte, error) {
	node, err := Decode(blob)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
