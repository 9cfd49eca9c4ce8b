package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/shadow-js/create-shadow-app/internal/config"
	"github.com/shadow-js/create-shadow-app/internal/filesystem"
	"github.com/shadow-js/create-shadow-app/internal/git"
	"github.com/shadow-js/create-shadow-app/internal/github"
	"github.com/shadow-js/create-shadow-app/internal/models"
	"github.com/shadow-js/create-shadow-app/internal/scaffold"
	"github.com/shadow-js/create-shadow-app/internal/tui/create"
	"github.com/spf13/cobra"
)

// CreateCommand handles the create command
type CreateCommand struct {
	fs       filesystem.FileSystem
	newGit   git.Factory
	ghClient github.GitHubClient

	// interactive reports whether prompts can be shown.
	interactive func() bool
}

func newCreateCommand(fs filesystem.FileSystem, newGit git.Factory, ghClient github.GitHubClient) *CreateCommand {
	return &CreateCommand{
		fs:       fs,
		newGit:   newGit,
		ghClient: ghClient,
		interactive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

func (c *CreateCommand) command() *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new project",
		Long:  `Copies a starter template into ./<name> and generates package.json, vite.config and tsconfig.json.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.Run,
	}
	addCreateFlags(cobraCmd)
	return cobraCmd
}

func addCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("language", "l", "", "Language variant (ts or js)")
	cmd.Flags().StringP("template", "t", "", "Starter template (counter or todo)")
	cmd.Flags().Bool("router", false, "Add @shadow-js/router")
	cmd.Flags().Bool("tailwind", false, "Add Tailwind CSS")
	cmd.Flags().Bool("git", false, "Initialize a git repository with an initial commit")
	cmd.Flags().String("git-backend", "", "Git implementation (exec or builtin)")
	cmd.Flags().String("github-repo", "", "Create this GitHub repository (owner/name or name) and push")
	cmd.Flags().Bool("private", false, "Make the GitHub repository private")
	cmd.Flags().BoolP("yes", "y", false, "Skip prompts and use flags and defaults")
}

// Run executes the create command
func (c *CreateCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(c.fs, cmd)
	if err != nil {
		return err
	}

	registry, err := registryFromCmd(cmd, cfg)
	if err != nil {
		return err
	}

	opts, fixed, err := optionsFromFlags(cmd, args, cfg)
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && c.interactive() {
		list, err := registry.List()
		if err != nil {
			return err
		}

		answered, err := create.NewFlow(list).Run(opts, fixed)
		if err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		if answered == nil {
			return nil
		}
		opts = *answered
	}

	opts.Normalize()
	if err := opts.Validate(); err != nil {
		return err
	}

	backend := cfg.Backend()
	if cmd.Flags().Changed("git-backend") {
		value, _ := cmd.Flags().GetString("git-backend")
		if backend, err = git.ParseBackend(value); err != nil {
			return err
		}
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, create.RenderSummary(opts))

	creatorOpts := []scaffold.Option{
		scaffold.WithRegistry(registry),
		scaffold.WithCatalog(catalog),
		scaffold.WithProgress(func(step string) {
			_, _ = io.WriteString(out, create.RenderStep(step))
		}),
	}
	if c.ghClient != nil {
		creatorOpts = append(creatorOpts, scaffold.WithGitHubClient(c.ghClient))
	}

	creator := scaffold.NewCreator(c.fs, c.newGit(backend, c.pushAuth()...), creatorOpts...)
	result, err := creator.Create(cmd.Context(), opts)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(out, create.RenderSuccess(opts, result))
	return nil
}

// pushAuth lets the builtin backend push over HTTPS with the GitHub token.
func (c *CreateCommand) pushAuth() []git.BuiltinOption {
	tokener, ok := c.ghClient.(interface{ Token() string })
	if !ok || tokener.Token() == "" {
		return nil
	}
	return []git.BuiltinOption{git.WithBasicAuth("x-access-token", tokener.Token())}
}

// optionsFromFlags overlays explicitly set flags on the configured
// defaults and reports which answers are fixed.
func optionsFromFlags(cmd *cobra.Command, args []string, cfg *config.Config) (models.Options, create.Fixed, error) {
	opts := cfg.Options()
	var fixed create.Fixed
	flags := cmd.Flags()

	if len(args) == 1 {
		opts.ProjectName = args[0]
		fixed.Name = true
	}

	if flags.Changed("language") {
		value, _ := flags.GetString("language")
		lang, err := models.ParseLanguage(value)
		if err != nil {
			return opts, fixed, err
		}
		opts.Language = lang
		fixed.Language = true
	}

	if flags.Changed("template") {
		value, _ := flags.GetString("template")
		tmpl, err := models.ParseTemplateID(value)
		if err != nil {
			return opts, fixed, err
		}
		opts.Template = tmpl
		fixed.Template = true
	}

	if flags.Changed("router") {
		opts.UseRouter, _ = flags.GetBool("router")
		fixed.Router = true
	}
	if flags.Changed("tailwind") {
		opts.UseTailwind, _ = flags.GetBool("tailwind")
		fixed.Tailwind = true
	}
	if flags.Changed("git") {
		opts.InitGit, _ = flags.GetBool("git")
		fixed.Git = true
	}

	opts.GitHubRepo, _ = flags.GetString("github-repo")
	opts.Private, _ = flags.GetBool("private")
	if opts.GitHubRepo != "" && !fixed.Git {
		// Publishing needs a commit to push.
		opts.InitGit = true
		fixed.Git = true
	}

	return opts, fixed, nil
}
