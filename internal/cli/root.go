package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/shadow-js/create-shadow-app/internal/filesystem"
	"github.com/shadow-js/create-shadow-app/internal/git"
	"github.com/shadow-js/create-shadow-app/internal/github"
	"github.com/shadow-js/create-shadow-app/internal/tui"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, newGit git.Factory, ghClient github.GitHubClient) *cobra.Command {
	create := newCreateCommand(fs, newGit, ghClient)

	rootCmd := &cobra.Command{
		Use:   "create-shadow-app [name]",
		Short: "Scaffold a new ShadowJS application",
		Long: `Create a new ShadowJS project from a starter template.

Pick a language, a template and optional features (router, Tailwind CSS,
git). Runs interactively in a terminal; pass --yes to use flags and defaults.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          create.Run,
	}

	rootCmd.PersistentFlags().String(configFlag, "", "Path to the config file")
	rootCmd.PersistentFlags().String(templatesDirFlag, "", "Directory with custom templates (<template>/<language>/)")
	addCreateFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(create.command())
	rootCmd.AddCommand(NewTemplatesCommand(fs))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	var ghClient github.GitHubClient
	if client, err := github.NewClientFromEnv(); err == nil {
		ghClient = client
	}

	rootCmd := NewRootCommand(fs, git.New, ghClient)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), tui.ErrorStyle.Render("Error:"), err)
		return err
	}

	return nil
}
