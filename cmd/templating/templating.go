package templating

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	humanize "github.com/dustin/go-humanize"
)

// jsonify is the built-in JSON encoder that's made available to templates.
func jsonify(value any) (string, error) {
	// Create and configure a JSON encoder.
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)

	// Marshal the value.
	if err := encoder.Encode(value); err != nil {
		return "", err
	}

	// Remove the trailing newline that's automatically added by Encode.
	return strings.TrimSuffix(buffer.String(), "\n"), nil
}

// bytesize renders a size in IEC units (e.g. "4.0 KiB"). Nil pointers, used
// for unknown values, render as "nil".
func bytesize(value any) string {
	switch v := value.(type) {
	case uint64:
		return humanize.IBytes(v)
	case *uint64:
		if v == nil {
			return "nil"
		}
		return humanize.IBytes(*v)
	case uint32:
		return humanize.IBytes(uint64(v))
	case int:
		if v < 0 {
			return "nil"
		}
		return humanize.IBytes(uint64(v))
	default:
		return "nil"
	}
}

// builtins are the builtin functions supported in output templates.
var builtins = template.FuncMap{
	"json":  jsonify,
	"bytes": bytesize,
	"comma": humanize.Comma,
}
