package cli

import (
	"github.com/shadow-js/create-shadow-app/internal/config"
	"github.com/shadow-js/create-shadow-app/internal/filesystem"
	"github.com/shadow-js/create-shadow-app/internal/templates"
	"github.com/spf13/cobra"
)

const (
	configFlag       = "config"
	templatesDirFlag = "templates-dir"
)

// loadConfig reads the config file named by --config (or the default
// location) with environment overrides applied.
func loadConfig(fs filesystem.FileSystem, cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString(configFlag)
	return config.Load(fs, path)
}

// registryFromCmd returns the template registry: --templates-dir, then the
// config value, then the embedded templates.
func registryFromCmd(cmd *cobra.Command, cfg *config.Config) (*templates.Registry, error) {
	dir := cfg.TemplatesDir
	if cmd.Flags().Changed(templatesDirFlag) {
		dir, _ = cmd.Flags().GetString(templatesDirFlag)
	}

	if dir == "" {
		return templates.Default(), nil
	}
	return templates.FromDir(dir)
}
