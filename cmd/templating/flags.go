package templating

import (
	"os"
	"text/template"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// TemplateFlags stores command line formatting flags and provides for their
// registration and handling.
type TemplateFlags struct {
	// template stores the value of the --template flag.
	template string
	// templateFile stores the value of the --template-file flag.
	templateFile string
}

// Register registers the flags into the specified flag set.
func (f *TemplateFlags) Register(flags *pflag.FlagSet) {
	flags.StringVar(&f.template, "template", "", "Specify an output template applied to each status")
	flags.StringVar(&f.templateFile, "template-file", "", "Specify a file containing an output template")
}

// Specified indicates whether or not a template has been specified.
func (f *TemplateFlags) Specified() bool {
	return f.template != "" || f.templateFile != ""
}

// LoadTemplate loads the template specified by the flags. If no template has
// been specified, then it returns nil with no error.
func (f *TemplateFlags) LoadTemplate() (*template.Template, error) {
	// Figure out if there's a template to be processed.
	var literal string
	if f.template != "" {
		literal = f.template
	} else if f.templateFile != "" {
		data, err := os.ReadFile(f.templateFile)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load template")
		} else if !utf8.Valid(data) {
			return nil, errors.New("template file is not UTF-8 encoded")
		}
		literal = string(data)
	} else {
		return nil, nil
	}

	// Create the template, register built-in functions, and parse.
	result, err := template.New("status").Funcs(builtins).Parse(literal)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse template")
	}
	return result, nil
}
