package loader

import (
	"errors"

	"github.com/pelletier/go-toml/v2"
)

// TOMLDecoder decodes TOML documents.
type TOMLDecoder struct{}

// Decode implements Decoder. Unknown keys are rejected.
func (TOMLDecoder) Decode(source string, data []byte, v any) error {
	dec := toml.NewDecoder(bytesReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}

		var decErr *toml.DecodeError
		if errors.As(err, &decErr) {
			pe.Line, pe.Column = decErr.Position()
		}
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			pe.Message = strictErr.String()
		}
		return pe
	}
	return nil
}
