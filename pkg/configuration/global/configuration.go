package global

import (
	"github.com/pkg/errors"

	"github.com/mutagen-io/winstat/pkg/encoding"
)

// Output formats supported by the command line tool.
const (
	// FormatInspect renders statuses on a single line per path.
	FormatInspect = "inspect"
	// FormatPretty renders statuses as aligned, colorized name/value tables.
	FormatPretty = "pretty"
	// FormatJSON renders statuses as JSON.
	FormatJSON = "json"
	// FormatYAML renders statuses as YAML.
	FormatYAML = "yaml"
)

// Configuration is the global YAML configuration object type. Its values act
// as defaults for command line flags.
type Configuration struct {
	// Format is the default output format.
	Format string `yaml:"format"`
	// HumanReadable indicates whether or not sizes should be rendered in
	// human-readable units by default.
	HumanReadable bool `yaml:"humanReadable"`
	// Parallelism is the default number of concurrent status queries. A value
	// of 0 indicates that the number of CPUs should be used.
	Parallelism int `yaml:"parallelism"`
}

// Default returns the configuration used when no configuration file exists.
func Default() *Configuration {
	return &Configuration{Format: FormatInspect}
}

// EnsureValid ensures that the configuration is valid.
func (c *Configuration) EnsureValid() error {
	switch c.Format {
	case "", FormatInspect, FormatPretty, FormatJSON, FormatYAML:
	default:
		return errors.Errorf("unknown output format: %s", c.Format)
	}
	if c.Parallelism < 0 {
		return errors.New("negative parallelism")
	}
	return nil
}

// LoadConfiguration attempts to load a YAML-based global configuration file
// from the specified path. Unspecified values take their defaults.
func LoadConfiguration(path string) (*Configuration, error) {
	// Create the target configuration object.
	result := Default()

	// Attempt to load. We pass-through os.IsNotExist errors.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		return nil, err
	}

	// Handle explicitly emptied formats.
	if result.Format == "" {
		result.Format = FormatInspect
	}

	// Validate the result.
	if err := result.EnsureValid(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	// Success.
	return result, nil
}
