package encoding

import (
	"io"

	"github.com/pkg/errors"

	yamlv2 "gopkg.in/yaml.v2"
	"gopkg.in/yaml.v3"
)

// LoadAndUnmarshalYAML loads data from the specified path and decodes it into
// the specified structure. Unknown fields are treated as errors.
func LoadAndUnmarshalYAML(path string, value interface{}) error {
	return LoadAndUnmarshal(path, func(data []byte) error {
		return yamlv2.UnmarshalStrict(data, value)
	})
}

// yamlIndent is the indentation width used when encoding YAML.
const yamlIndent = 2

// EncodeYAML writes the YAML encoding of the specified value to the writer.
// Multiple values encoded to the same writer should be separated by the
// caller.
func EncodeYAML(writer io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(value); err != nil {
		return errors.Wrap(err, "unable to encode value")
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrap(err, "unable to flush encoder")
	}
	return nil
}
