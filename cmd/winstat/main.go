package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/winstat/cmd"
	"github.com/mutagen-io/winstat/cmd/templating"
	"github.com/mutagen-io/winstat/pkg/configuration/global"
	"github.com/mutagen-io/winstat/pkg/filesystem"
	"github.com/mutagen-io/winstat/pkg/stat"
	"github.com/mutagen-io/winstat/pkg/winstat"
)

// loadConfiguration loads the global configuration, falling back to defaults
// if no configuration file exists.
func loadConfiguration() (*global.Configuration, error) {
	path, err := global.ConfigurationPath()
	if err != nil {
		return nil, errors.Wrap(err, "unable to compute configuration path")
	}
	configuration, err := global.LoadConfiguration(path)
	if os.IsNotExist(err) {
		return global.Default(), nil
	} else if err != nil {
		return nil, errors.Wrap(err, "unable to load global configuration")
	}
	return configuration, nil
}

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, arguments []string) error {
	// Configure logging.
	logger, err := cmd.ConfigureLogging(rootConfiguration.logLevel)
	if err != nil {
		return err
	}

	// Load the global configuration and let explicitly specified flags
	// override it.
	configuration, err := loadConfiguration()
	if err != nil {
		return err
	}
	flags := command.Flags()
	if flags.Changed("format") {
		configuration.Format = rootConfiguration.format
	}
	if flags.Changed("human") {
		configuration.HumanReadable = rootConfiguration.human
	}
	if flags.Changed("parallelism") {
		configuration.Parallelism = rootConfiguration.parallelism
	}
	if err := configuration.EnsureValid(); err != nil {
		return errors.Wrap(err, "invalid options")
	}

	// Create the renderer.
	template, err := rootConfiguration.templateFlags.LoadTemplate()
	if err != nil {
		return errors.Wrap(err, "unable to load formatting template")
	}
	output, err := newRenderer(color.Output, configuration.Format, configuration.HumanReadable, template)
	if err != nil {
		return err
	}

	// Compute the paths to query.
	paths, err := filesystem.ExpandArguments(arguments, rootConfiguration.glob)
	if err != nil {
		return errors.Wrap(err, "unable to process arguments")
	}
	logger.Debugf("Querying %d paths", len(paths))

	// Perform the queries and render the results in argument order.
	statLogger := logger.Sublogger("stat")
	querier := stat.New(stat.DefaultNative(statLogger), statLogger)
	var failures int
	for i, result := range query(querier, paths, configuration.Parallelism) {
		if result.err != nil {
			cmd.Error(errors.Wrapf(result.err, "unable to query %s", paths[i]))
			failures++
			continue
		}
		if err := output.add(result.status); err != nil {
			return errors.Wrap(err, "unable to render status")
		}
	}
	if err := output.flush(); err != nil {
		return errors.Wrap(err, "unable to render statuses")
	}

	// Report failures.
	if failures > 0 {
		return errors.Errorf("%d of %d status queries failed", failures, len(paths))
	}

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:          "winstat [flags] <path>...",
	Version:      winstat.Version,
	Short:        "Show POSIX-style file status information for Windows paths",
	Args:         cobra.MinimumNArgs(1),
	Run:          cmd.Mainify(rootMain),
	SilenceUsage: true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// format is the output format.
	format string
	// human indicates whether or not sizes should be rendered in IEC units.
	human bool
	// glob indicates whether or not arguments should be treated as doublestar
	// patterns.
	glob bool
	// parallelism is the number of concurrent status queries.
	parallelism int
	// logLevel is the log level name.
	logLevel string
	// templateFlags store custom templating behavior.
	templateFlags templating.TemplateFlags
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("winstat version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Wire up output flags.
	flags.StringVarP(&rootConfiguration.format, "format", "f", global.FormatInspect, "Specify the output format (inspect|pretty|json|yaml)")
	flags.BoolVar(&rootConfiguration.human, "human", false, "Render sizes in human-readable units (pretty format only)")
	rootConfiguration.templateFlags.Register(flags)

	// Wire up query flags.
	flags.BoolVarP(&rootConfiguration.glob, "glob", "g", false, "Expand arguments as doublestar (**) patterns")
	flags.IntVarP(&rootConfiguration.parallelism, "parallelism", "j", 0, "Specify the number of concurrent queries (0 uses one per CPU)")
	flags.StringVarP(&rootConfiguration.logLevel, "log-level", "l", "", "Specify the log level (disabled|error|warn|info|debug|trace)")

	// Register commands.
	rootCommand.AddCommand(versionCommand)
}

func main() {
	// Handle terminal compatibility issues and configure colorized output.
	cmd.HandleTerminalCompatibility()
	cmd.ConfigureColor()

	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
