package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/atlascfg/internal/cli/config"
	"github.com/yndnr/atlascfg/internal/cli/output"
	"github.com/yndnr/atlascfg/internal/infra/buildinfo"
	"github.com/yndnr/atlascfg/internal/telemetry/logger"
)

const (
	metaLogger      = "logger"
	defaultLogLevel = "warn"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "atlascfg",
		Usage:   "Inspect and validate Atlas CLI configuration files",
		Version: buildinfo.Get().String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ConfigCommand(),
			VersionCommand(),
		},
		Before: setup,
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file path (default: user config dir/atlascli/config.toml)",
			EnvVars: []string{"ATLASCFG_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   string(output.FormatTable),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level: debug, info, warn, error",
			EnvVars: []string{"ATLASCFG_LOG_LEVEL"},
			Value:   defaultLogLevel,
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Log format: text, json",
			EnvVars: []string{"ATLASCFG_LOG_FORMAT"},
			Value:   "text",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output (debug logging)",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Config    string
	Output    string
	LogLevel  string
	LogFormat string
	Verbose   bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config:    c.String("config"),
		Output:    c.String("output"),
		LogLevel:  c.String("log-level"),
		LogFormat: c.String("log-format"),
		Verbose:   c.Bool("verbose"),
	}
}

// setup validates the output format and installs the logger for this run.
func setup(c *cli.Context) error {
	flags := ParseGlobalFlags(c)

	if _, err := output.ParseFormat(flags.Output); err != nil {
		return err
	}

	l, err := logger.New(logger.Config{
		Format: flags.LogFormat,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetLevel(logLevel(flags))
	logger.SetDefault(l)

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithInvocationID(logger.WithLogger(ctx, l), logger.NewInvocationID())
	c.Context = ctx
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[metaLogger] = logger.L(ctx)

	GetLogger(c).Debug("logger ready", "level", logger.GetLevel())
	return nil
}

// logLevel returns the requested level. An empty ATLASCFG_LOG_LEVEL falls
// back to the flag default.
func logLevel(flags *GlobalFlags) string {
	switch {
	case flags.Verbose:
		return "debug"
	case flags.LogLevel == "":
		return defaultLogLevel
	}
	return flags.LogLevel
}

// GetLogger retrieves the invocation logger from context.
func GetLogger(c *cli.Context) logger.Logger {
	if l, ok := c.App.Metadata[metaLogger].(logger.Logger); ok {
		return l
	}
	return logger.Default()
}

// resolveConfigPath returns the --config value or the default location.
func resolveConfigPath(flags *GlobalFlags) (string, error) {
	if flags.Config != "" {
		return flags.Config, nil
	}
	return config.DefaultConfigPath()
}

// render writes data in the selected output format. Table output uses
// view when it is not nil.
func render(c *cli.Context, data any, view output.Tabular) error {
	format, err := output.ParseFormat(ParseGlobalFlags(c).Output)
	if err != nil {
		return err
	}
	if format == output.FormatTable && view != nil {
		data = view
	}
	return output.NewFormatter(format).Format(stdout(c), data)
}

func stdout(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			info := buildinfo.Get()
			if f, _ := output.ParseFormat(ParseGlobalFlags(c).Output); f == output.FormatTable {
				_, err := fmt.Fprintf(stdout(c), "%s %s\n", c.App.Name, info)
				return err
			}
			return render(c, info, nil)
		},
	}
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
