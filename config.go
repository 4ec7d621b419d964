/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Seednode/guessbox/games/guesser"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	bind           string
	metrics        bool
	port           int
	prefix         string
	profile        bool
	sessionTimeout time.Duration
	tlsCert        string
	tlsKey         string
	verbose        bool
	version        bool

	catalog      string
	earlyGame    float64
	entities     string
	lateGame     float64
	matrix       string
	maxQuestions int
	quotas       map[string]int
	seed         uint64
	tieEpsilon   float64

	logger *zap.Logger
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.sessionTimeout < 0 {
		return fmt.Errorf("invalid session timeout (must not be negative): %s", c.sessionTimeout)
	}

	_, err := c.engineConfig()

	return err
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

// engineConfig applies the game flags on top of the engine defaults. Quota
// overrides replace the default for their category only.
func (c *Config) engineConfig() (guesser.Config, error) {
	ec := guesser.DefaultConfig()
	ec.MaxQuestions = c.maxQuestions
	ec.TieEpsilon = c.tieEpsilon
	ec.EarlyGameFraction = c.earlyGame
	ec.LateGameFraction = c.lateGame

	for name, quota := range c.quotas {
		category, err := guesser.ParseCategory(name)
		if err != nil {
			return guesser.Config{}, fmt.Errorf("invalid --quota: %w", err)
		}
		ec.Quotas[category] = quota
	}

	if err := ec.Validate(); err != nil {
		return guesser.Config{}, err
	}

	return ec, nil
}

func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// bindEnv lets GUESSBOX_* variables stand in for any flag not given on the
// command line.
func bindEnv(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("GUESSBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "guessbox",
		Short:         "A twenty-questions style guessing game that learns from every answer.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cfg.verbose)
			if err != nil {
				return err
			}
			cfg.logger = logger

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	pfs := cmd.PersistentFlags()
	pfs.SetNormalizeFunc(normalizeFlag)

	pfs.StringVar(&cfg.catalog, "catalog", "", "path to a yaml trait catalog, replacing the built-in one (env: GUESSBOX_CATALOG)")
	pfs.Float64Var(&cfg.earlyGame, "early-game", guesser.DefaultEarlyGameFraction, "fraction of questions considered early game (env: GUESSBOX_EARLY_GAME)")
	pfs.StringVar(&cfg.entities, "entities", "", "path to a json entity list, replacing the built-in one (env: GUESSBOX_ENTITIES)")
	pfs.Float64Var(&cfg.lateGame, "late-game", guesser.DefaultLateGameFraction, "fraction of questions after which late game begins (env: GUESSBOX_LATE_GAME)")
	pfs.StringVar(&cfg.matrix, "matrix", "", "path to a json trait matrix, replacing the built-in one (env: GUESSBOX_MATRIX)")
	pfs.IntVar(&cfg.maxQuestions, "max-questions", guesser.DefaultMaxQuestions, "questions to ask before guessing (env: GUESSBOX_MAX_QUESTIONS)")
	pfs.StringToIntVar(&cfg.quotas, "quota", map[string]int{}, "per-category question quota overrides, e.g. type=2,color=1 (env: GUESSBOX_QUOTA)")
	pfs.Uint64Var(&cfg.seed, "seed", 0, "seed for confidence jitter, 0 picks one at startup (env: GUESSBOX_SEED)")
	pfs.Float64Var(&cfg.tieEpsilon, "tie-epsilon", guesser.DefaultTieEpsilon, "confidence gap below which candidates count as tied (env: GUESSBOX_TIE_EPSILON)")
	pfs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: GUESSBOX_VERBOSE)")

	fs := cmd.Flags()
	fs.SetNormalizeFunc(normalizeFlag)

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: GUESSBOX_BIND)")
	fs.BoolVar(&cfg.metrics, "metrics", false, "expose prometheus metrics at /metrics (env: GUESSBOX_METRICS)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: GUESSBOX_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: GUESSBOX_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: GUESSBOX_PROFILE)")
	fs.DurationVar(&cfg.sessionTimeout, "session-timeout", 60*time.Minute, "time before idle games are ended, 0 keeps them forever (env: GUESSBOX_SESSION_TIMEOUT)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: GUESSBOX_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: GUESSBOX_TLS_KEY)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: GUESSBOX_VERSION)")

	bindEnv(v, pfs)
	bindEnv(v, fs)

	cmd.AddCommand(newPlayCmd(cfg))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("guessbox v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
