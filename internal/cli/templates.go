package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/shadow-js/create-shadow-app/internal/filesystem"
	"github.com/shadow-js/create-shadow-app/internal/models"
	"github.com/shadow-js/create-shadow-app/internal/templates"
	"github.com/shadow-js/create-shadow-app/internal/tui"
	"github.com/spf13/cobra"
)

// TemplatesCommand handles the templates command
type TemplatesCommand struct {
	fs filesystem.FileSystem
}

// NewTemplatesCommand creates a new templates command
func NewTemplatesCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &TemplatesCommand{fs: fs}

	return &cobra.Command{
		Use:   "templates [id]",
		Short: "List available templates or describe one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  cmd.Run,
	}
}

// Run executes the templates command
func (c *TemplatesCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(c.fs, cmd)
	if err != nil {
		return err
	}

	registry, err := registryFromCmd(cmd, cfg)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		id, err := models.ParseTemplateID(args[0])
		if err != nil {
			return err
		}
		tmpl, err := registry.Get(id)
		if err != nil {
			return err
		}
		return describeTemplate(out, tmpl)
	}

	list, err := registry.List()
	if err != nil {
		return err
	}

	if len(list) == 0 {
		_, _ = fmt.Fprintln(out, "⚠️  No templates found")
		return nil
	}

	_, _ = fmt.Fprintln(out, tui.TitleStyle.Render("Available templates"))
	for _, tmpl := range list {
		_, _ = fmt.Fprintf(out, "  %-8s %s %s\n", tmpl.ID, tmpl.Label(), tui.SubtleStyle.Render("("+languageList(tmpl)+")"))
	}

	return nil
}

func describeTemplate(out io.Writer, tmpl templates.Template) error {
	_, _ = fmt.Fprintln(out, tui.TitleStyle.Render(tmpl.Title))
	if tmpl.Description != "" {
		_, _ = fmt.Fprintln(out, tui.DescStyle.Render(tmpl.Description))
	}
	_, _ = fmt.Fprintf(out, "%s %s\n", tui.HeaderStyle.Render("Languages:"), languageList(tmpl))

	if tmpl.Body == "" {
		return nil
	}

	body, err := renderMarkdown(out, tmpl.Body)
	if err != nil {
		return fmt.Errorf("failed to render %s description: %w", tmpl.ID, err)
	}
	_, _ = fmt.Fprint(out, body)
	return nil
}

// renderMarkdown uses the terminal's color scheme when writing to a TTY and
// plain text otherwise.
func renderMarkdown(out io.Writer, md string) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		style = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func languageList(tmpl templates.Template) string {
	langs := make([]string, 0, len(tmpl.Languages))
	for _, lang := range tmpl.Languages {
		langs = append(langs, string(lang))
	}
	return strings.Join(langs, ", ")
}
