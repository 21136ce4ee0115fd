package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/atlascfg/internal/cli/config"
	"github.com/yndnr/atlascfg/internal/infra/confloader"
	"github.com/yndnr/atlascfg/internal/infra/shutdown"
	"github.com/yndnr/atlascfg/internal/telemetry/logger"
	"github.com/yndnr/atlascfg/internal/telemetry/metric"
)

// ErrInvalidConfig is returned by `config validate` when the document
// does not decode.
var ErrInvalidConfig = errors.New("config is invalid")

// shutdownTimeout bounds the watcher teardown.
const shutdownTimeout = 5 * time.Second

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Atlas CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "path",
				Usage:  "Print the config file path",
				Action: configPath,
			},
			{
				Name:   "show",
				Usage:  "Show the decoded configuration",
				Action: configShow,
			},
			{
				Name:      "validate",
				Usage:     "Validate a configuration file",
				ArgsUsage: "[FILE]",
				Action:    configValidate,
			},
			{
				Name:    "profiles",
				Aliases: []string{"ls"},
				Usage:   "List profiles",
				Action:  configProfiles,
			},
			{
				Name:      "describe",
				Usage:     "Show one profile",
				ArgsUsage: "PROFILE",
				Action:    configDescribe,
			},
			{
				Name:      "get",
				Usage:     "Print the effective value of a key (e.g. telemetry_enabled, profile_1.org_id), or of every key",
				ArgsUsage: "[KEY]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "env-prefix",
						Usage: "Prefix of environment variables that override top-level settings",
						Value: confloader.DefaultEnvPrefix,
					},
				},
				Action: configGet,
			},
			{
				Name:  "watch",
				Usage: "Print the configuration and again on every change",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "metrics-textfile",
						Usage: "Write parse metrics to this file in Prometheus text format",
					},
				},
				Action: configWatch,
			},
		},
	}
}

func configPath(c *cli.Context) error {
	path, err := resolveConfigPath(ParseGlobalFlags(c))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout(c), path)
	return err
}

// loadConfig resolves the config path and decodes the file.
func loadConfig(c *cli.Context) (*config.Config, error) {
	path, err := resolveConfigPath(ParseGlobalFlags(c))
	if err != nil {
		return nil, err
	}

	GetLogger(c).Debug("loading config", "path", path)
	return config.Load(path)
}

func configShow(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	return render(c, cfg, configView{cfg})
}

func configValidate(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		p, err := resolveConfigPath(ParseGlobalFlags(c))
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil && config.KindOf(err) == "" {
		return err
	}

	result := validation{Path: path, Valid: err == nil}
	if err == nil {
		result.Profiles = len(cfg.Profiles)
	} else {
		var de *config.DecodeError
		errors.As(err, &de)
		result.Kind = string(de.Kind)
		result.Field = de.Field
		result.Line = de.Line
		result.Column = de.Column
		result.Error = de.Error()
		GetLogger(c).Debug("config failed validation", "path", path, "kind", de.Kind, "error", de)
	}

	if rerr := render(c, result, result); rerr != nil {
		return rerr
	}
	if !result.Valid {
		return ErrInvalidConfig
	}
	return nil
}

func configProfiles(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	list := newProfileList(cfg)
	return render(c, list, list)
}

func configDescribe(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("profile name required")
	}
	name := c.Args().First()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	p, ok := cfg.Profile(name)
	if !ok {
		return fmt.Errorf("profile %q not found", name)
	}
	np := namedProfile{Name: name, Profile: p}
	return render(c, np, np)
}

// configGet reads the raw document through confloader so that
// MONGODB_ATLAS_* variables override the fixed top-level settings.
// Without a key every effective key is listed.
func configGet(c *cli.Context) error {
	path, err := resolveConfigPath(ParseGlobalFlags(c))
	if err != nil {
		return err
	}

	l := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithEnvPrefix(c.String("env-prefix")),
		confloader.WithEnvFilter(config.IsFixedKey),
	)
	if err := l.Load(); err != nil {
		return err
	}

	if c.NArg() == 0 {
		return render(c, redactTree("", l.Raw()), newKeyValues(l))
	}

	key := c.Args().First()
	if !l.Exists(key) {
		return fmt.Errorf("key %q is not set", key)
	}

	value := l.Get(key)
	if m, ok := value.(map[string]any); ok {
		return render(c, redactTree(key, m), nil)
	}
	_, err = fmt.Fprintln(stdout(c), logger.RedactValue(key, fmt.Sprint(value)))
	return err
}

// redactTree copies m with credential values masked. prefix is the dotted
// path of m, empty for the root.
func redactTree(prefix string, m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			out[k] = redactTree(key, val)
		case string:
			out[k] = logger.RedactValue(key, val)
		default:
			out[k] = v
		}
	}
	return out
}

func configWatch(c *cli.Context) error {
	path, err := resolveConfigPath(ParseGlobalFlags(c))
	if err != nil {
		return err
	}

	log := GetLogger(c).With("path", path)
	reg := metric.NewRegistry()
	textfile := c.String("metrics-textfile")

	reload := func() {
		cfg, err := config.Load(path)
		profiles := 0
		if cfg != nil {
			profiles = len(cfg.Profiles)
		}
		reg.ObserveParse(parseResult(err), profiles)
		if textfile != "" {
			if werr := reg.WriteTextfile(textfile); werr != nil {
				log.Warn("failed to write metrics textfile", "file", textfile, "error", werr)
			}
		}
		if err != nil {
			log.Error("config reload failed", "kind", parseResult(err), "error", err)
			return
		}

		log.Info("config loaded", "profiles", profiles)
		if rerr := render(c, cfg, configView{cfg}); rerr != nil {
			log.Error("failed to render config", "error", rerr)
		}
	}

	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(log.Slog()))
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Watch(path); err != nil {
		return errors.Join(fmt.Errorf("watch %s: %w", path, err), w.Stop())
	}

	reload()
	w.OnChange(func(string) {
		reg.Reloads.Inc()
		reload()
	})

	h := shutdown.NewHandler(shutdownTimeout)
	h.OnShutdown(func(context.Context) error {
		return w.Stop()
	})
	w.StartAsync()

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return h.Wait(ctx)
}

// parseResult maps a Load error to a metric result label.
func parseResult(err error) string {
	if err == nil {
		return metric.ResultOK
	}
	if kind := config.KindOf(err); kind != "" {
		return string(kind)
	}
	return metric.ResultIOError
}
