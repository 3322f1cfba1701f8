package encoding

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// EncodeJSON writes the indented JSON encoding of the specified value to the
// writer, followed by a newline.
func EncodeJSON(writer io.Writer, value interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return errors.Wrap(err, "unable to encode value")
	}
	return nil
}
