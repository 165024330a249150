package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/noahmasoud/autodoc/fs"
	"github.com/noahmasoud/autodoc/jsonl"
	"github.com/noahmasoud/autodoc/koanf"
	"github.com/noahmasoud/autodoc/rest"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "autodoc",
	Short: "AutoDoc review client",
	Long: `autodoc is a terminal client for the AutoDoc documentation-automation
backend. It reviews proposed documentation patches (approve/reject with a
side-by-side diff), and manages connections, rules, templates, prompts and
the backend's LLM configuration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(patchesCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(connectionsCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(llmConfigCmd)
	rootCmd.AddCommand(configCmd)
}

// cmdContext holds common resources for CLI commands.
type cmdContext struct {
	Config  *koanf.Config
	Client  *rest.Client
	Tokens  *fs.TokenStore
	Prefs   *fs.PreferenceStore
	Journal *jsonl.Journal
	Logger  zerolog.Logger
}

// initContext loads configuration and builds the API client.
func initContext() *cmdContext {
	cfg, err := koanf.Load(configFlag, filepath.Join(fs.DefaultConfigDir(), "config.toml"))
	if err != nil {
		exitError("%v", err)
	}
	if err := koanf.Validate(cfg); err != nil {
		exitError("%v", err)
	}

	level := zerolog.InfoLevel
	if verboseFlag {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	dataDir := fs.DefaultDataDir()
	tokens := fs.NewTokenStore(filepath.Join(dataDir, "token"))
	prefs := fs.NewPreferenceStore(filepath.Join(dataDir, "preferences.json"))
	journal := jsonl.NewJournal(filepath.Join(dataDir, "reviews.jsonl"))

	opts := []rest.Option{
		rest.WithLogger(logger),
		rest.WithTokenStore(tokens, func() {
			fmt.Fprintln(os.Stderr, "session expired, run `autodoc login` to sign in again")
		}),
		rest.WithRetryPolicy(cfg.RetryPolicy()),
		rest.WithTimeout(cfg.Timeout()),
	}
	if cfg.RateLimit.RPS > 0 {
		opts = append(opts, rest.WithRateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	client, err := rest.NewClient(cfg.Server.URL, opts...)
	if err != nil {
		exitError("%v", err)
	}

	return &cmdContext{
		Config:  cfg,
		Client:  client,
		Tokens:  tokens,
		Prefs:   prefs,
		Journal: journal,
		Logger:  logger,
	}
}

// exitError prints an error and exits.
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
