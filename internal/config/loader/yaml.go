package loader

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLDecoder decodes YAML documents.
type YAMLDecoder struct{}

// Decode implements Decoder. Unknown keys are rejected and an empty
// document leaves v untouched.
func (YAMLDecoder) Decode(source string, data []byte, v any) error {
	dec := yaml.NewDecoder(bytesReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}

		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
			pe.Message = typeErr.Errors[0]
		}
		return pe
	}
	return nil
}

func bytesReader(data []byte) io.Reader {
	return bytes.NewReader(data)
}
