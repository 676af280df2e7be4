package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jladdjr/typey-type/internal/app"
	"github.com/jladdjr/typey-type/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if used := v.ConfigFileUsed(); used != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "# from %s\n", used)
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return enc.Close()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if dir := v.GetString("data_dir"); dir != "" {
		cfg.DataDir = config.ExpandHome(dir)
	}
	target := initTarget(cfg, cfgFile)

	if _, err := os.Stat(target); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", target)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := config.WriteDefault(f, cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s✓%s wrote %s\n", colorGreen, colorReset, target)
	return nil
}

// initTarget is the file `config init` writes: --config when given,
// otherwise config.yaml in the data directory.
func initTarget(cfg *config.Config, cfgFile string) string {
	if cfgFile != "" {
		return config.ExpandHome(cfgFile)
	}
	return app.NewPaths(cfg.DataDir).Config
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
