package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/wordgraph/internal/config"
	"github.com/katalvlaran/wordgraph/internal/logging"
	"github.com/katalvlaran/wordgraph/internal/metrics"
	"github.com/katalvlaran/wordgraph/session"
)

// app holds the state shared by subcommands for one invocation.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	sess     *session.Session
}

var current app

var rootCmd = &cobra.Command{
	Use:   "wordgraph",
	Short: "Query the word-adjacency graph of a text",
	Long: "wordgraph reads a text file, links every word to the word that follows it, " +
		"and answers structural queries over the resulting directed weighted graph.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown(cmd)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .wordgraph.yaml)")
	pf.StringP("file", "f", "", "text file to build the graph from (required)")
	pf.StringSlice("merge", nil, "additional text files merged into the graph")
	pf.Int64("seed", 0, "random seed for generate and walk (0 = random)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.Bool("metrics", false, "dump Prometheus metrics to stderr on exit")
}

// bindFlags ties persistent flags to their viper keys. It runs on every
// invocation so the binding survives viper.Reset.
func bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	_ = viper.BindPFlag(config.KeySeed, flags.Lookup("seed"))
	_ = viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyMetrics, flags.Lookup("metrics"))
}

// setup resolves configuration, builds the logger and session and loads the
// input files.
func setup(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(cfgFile); err != nil {
		return err
	}
	bindFlags(cmd)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithDamping(cfg.Damping),
		session.WithPathCacheSize(cfg.PathCacheSize),
	}
	if cfg.Seed != 0 {
		opts = append(opts, session.WithSeed(cfg.Seed))
	}
	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		opts = append(opts, session.WithMetrics(metrics.New(reg)))
	}

	current = app{cfg: cfg, logger: logger, registry: reg, sess: session.New(opts...)}

	return loadInputs(cmd)
}

func loadInputs(cmd *cobra.Command) error {
	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		return fmt.Errorf("wordgraph: --file is required")
	}
	text, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("wordgraph: read %s: %w", file, err)
	}
	if err := current.sess.Load(string(text)); err != nil {
		return fmt.Errorf("wordgraph: load %s: %w", file, err)
	}

	merges, _ := cmd.Flags().GetStringSlice("merge")
	for _, m := range merges {
		text, err := os.ReadFile(m)
		if err != nil {
			return fmt.Errorf("wordgraph: read %s: %w", m, err)
		}
		if err := current.sess.Merge(string(text)); err != nil {
			return fmt.Errorf("wordgraph: merge %s: %w", m, err)
		}
	}

	return nil
}

func teardown(cmd *cobra.Command) error {
	if current.logger != nil {
		_ = current.logger.Sync()
	}
	if current.registry == nil {
		return nil
	}
	return metrics.Dump(cmd.ErrOrStderr(), current.registry)
}
