package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jladdjr/typey-type/internal/app"
	"github.com/jladdjr/typey-type/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	loadTimeout time.Duration
	v           = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "typey",
	Short: "typey: steno lesson compiler and typing matcher",
	Long: `typey turns word lists and your typing history into steno lessons
(phrase<TAB>stroke) using the Plover dictionaries you configure, and checks
what you typed against the expected material.

Configuration hierarchy (highest to lowest priority):
  1. CLI flags
  2. Environment variables (TYPEY_*)
  3. Config file (~/.typey/config.yaml)
  4. Defaults`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.typey/config.yaml)")
	pf.String("profile", "", "progress profile (default: default)")
	pf.String("data-dir", "", "data directory (default: $HOME/.typey)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.DurationVar(&loadTimeout, "timeout", 60*time.Second, "how long to wait for dictionaries to load")

	_ = v.BindPFlag("profile", pf.Lookup("profile"))
	_ = v.BindPFlag("data_dir", pf.Lookup("data-dir"))
	_ = v.BindPFlag("log.level", pf.Lookup("log-level"))

	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(reviseCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(seenCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(dictCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initErr holds a config read failure until a command loads the config,
// so that help and version still work with a broken file.
var initErr error

// initConfig reads in the config file and TYPEY_* environment variables.
func initConfig() {
	initErr = config.Init(v, cfgFile)
}

// loadConfig returns the validated configuration.
func loadConfig() (*config.Config, error) {
	if initErr != nil {
		return nil, initErr
	}
	return config.Load(v)
}

// openApp loads config, installs the logger and opens the app.
// The caller must Stop it.
func openApp() (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)
	a, err := app.New(cfg, logger)
	if err != nil {
		if isDBLockError(err) {
			return nil, fmt.Errorf("%w\n%s", err, diagnoseDBLock(app.NewPaths(cfg.DataDir)))
		}
		return nil, fmt.Errorf("init: %w", err)
	}
	return a, nil
}

// loadDictionaries waits for every source up to --timeout. A failed
// source is reported on stderr; whatever loaded is still used.
func loadDictionaries(ctx context.Context, a *app.App) {
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()
	if err := a.LoadDictionaries(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%swarning:%s %v\n", colorYellow, colorReset, err)
	}
}
