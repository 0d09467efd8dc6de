package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/talekit/pkg/config"
	"github.com/dmitrymomot/talekit/pkg/logger"
	"github.com/dmitrymomot/talekit/pkg/thematic"
)

// Config is read from the environment; flags win over it.
type Config struct {
	Seed      string `env:"THEMATIC_SEED"`
	Pack      string `env:"THEMATIC_PACK"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	AppEnv    string `env:"APP_ENV"`
}

type runIDKey struct{}

// app holds the state shared by the subcommands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	seed      int64
	pack      string
	logLevel  string
	logFormat string

	log *slog.Logger
	gen *thematic.Generator
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "thematic",
		Short: "Generate thematic names for stories and scenes",
		Long: `thematic draws random words and phrases from themed categories:
colors, personalities, sci-fi tropes, desserts, human names and more.

Pass --seed to make every run reproducible. Extra categories can be
loaded from a YAML pack with --pack.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.Int64Var(&a.seed, "seed", 0, "seed for reproducible output (env THEMATIC_SEED)")
	flags.StringVar(&a.pack, "pack", "", "YAML category pack to install (env THEMATIC_PACK)")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	flags.StringVar(&a.logFormat, "log-format", "", "text or json (env LOG_FORMAT)")

	root.AddCommand(
		newGenerateCmd(a),
		newCategoriesCmd(a),
		newNameCmd(a),
	)
	return root
}

// setup resolves configuration, builds the logger and the generator, and
// tags the command context with a run id.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("log-level") {
		a.logLevel = cfg.LogLevel
	}
	if !flags.Changed("log-format") {
		a.logFormat = cfg.LogFormat
	}
	if !flags.Changed("pack") {
		a.pack = cfg.Pack
	}
	if a.logFormat == "" && cfg.AppEnv == "" {
		a.logFormat = string(logger.FormatText)
	}

	log, err := a.newLogger(cfg.AppEnv)
	if err != nil {
		return err
	}
	a.log = log

	var opts []thematic.Option
	switch {
	case flags.Changed("seed"):
		opts = append(opts, thematic.WithSeed(a.seed))
	case cfg.Seed != "":
		seed, err := strconv.ParseInt(strings.TrimSpace(cfg.Seed), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid THEMATIC_SEED %q: %w", cfg.Seed, err)
		}
		opts = append(opts, thematic.WithSeed(seed))
	}
	a.gen = thematic.New(opts...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())
	cmd.SetContext(ctx)

	seed, seeded := a.gen.Seed()
	a.log.DebugContext(ctx, "generator ready", logger.Command(cmd.Name()), logger.Seed(seed, seeded))

	if a.pack == "" {
		return nil
	}
	pack, err := thematic.LoadPackFile(a.pack)
	if err != nil {
		return fmt.Errorf("load pack: %w", err)
	}
	if err := a.gen.Install(pack); err != nil {
		return fmt.Errorf("install pack %s: %w", a.pack, err)
	}
	a.log.DebugContext(ctx, "pack installed",
		slog.String("path", a.pack),
		slog.Int("categories", len(pack.Categories)),
	)
	return nil
}

var errInvalidLogFormat = errors.New("invalid log format")

func (a *app) newLogger(appEnv string) (*slog.Logger, error) {
	level := new(slog.LevelVar)
	opts := []logger.Option{
		logger.WithOutput(a.errOut),
		logger.WithLevelVar(level),
		logger.WithContextValue("run_id", runIDKey{}),
	}
	if appEnv != "" {
		opts = append(opts, logger.WithEnvironment(appEnv, "thematic"))
	}

	switch f := logger.Format(strings.ToLower(strings.TrimSpace(a.logFormat))); f {
	case "":
	case logger.FormatText, logger.FormatJSON:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("%w %q: must be %q or %q", errInvalidLogFormat, a.logFormat, logger.FormatText, logger.FormatJSON)
	}

	log := logger.New(opts...)
	if a.logLevel != "" {
		level.Set(logger.ParseLevel(a.logLevel))
	}
	return log, nil
}
