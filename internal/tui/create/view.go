package create

import (
	"fmt"
	"strings"

	"github.com/shadow-js/create-shadow-app/internal/models"
	"github.com/shadow-js/create-shadow-app/internal/scaffold"
	"github.com/shadow-js/create-shadow-app/internal/tui"
)

// DocsURL is printed after a successful run.
const DocsURL = "https://shadowjs.dev"

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// RenderSummary renders the options about to be used.
func RenderSummary(opts models.Options) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Language:  %s\n", opts.Language.DisplayName()))
	b.WriteString(fmt.Sprintf("Template:  %s\n", opts.Template))
	b.WriteString(fmt.Sprintf("Router:    %s\n", yesNo(opts.UseRouter)))
	b.WriteString(fmt.Sprintf("Tailwind:  %s\n", yesNo(opts.UseTailwind)))
	b.WriteString(fmt.Sprintf("Git:       %s\n", yesNo(opts.InitGit)))
	if opts.GitHubRepo != "" {
		visibility := "public"
		if opts.Private {
			visibility = "private"
		}
		b.WriteString(fmt.Sprintf("GitHub:    %s (%s)\n", opts.GitHubRepo, visibility))
	}

	body := tui.BorderStyle.Render(strings.TrimSuffix(b.String(), "\n"))
	return tui.TitleStyle.Render("Creating "+opts.ProjectName) + "\n" + body + "\n"
}

// RenderStep renders one progress line.
func RenderStep(step string) string {
	return tui.StepStyle.Render("→ "+step) + "\n"
}

// RenderWarning renders a degraded condition.
func RenderWarning(msg string) string {
	return tui.WarningStyle.Render("⚠  Warning:") + " " + msg + "\n"
}

// RenderSuccess renders the outcome and next steps after a successful run.
func RenderSuccess(opts models.Options, result *scaffold.Result) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(tui.SuccessStyle.Render("✓ Project created"))
	b.WriteString(fmt.Sprintf(" at %s\n", result.ProjectPath))
	b.WriteString(fmt.Sprintf("  %d files written\n", len(result.Files)))
	if result.GitInitialized {
		b.WriteString("  git repository initialized\n")
	}
	if result.RemoteURL != "" {
		b.WriteString(fmt.Sprintf("  pushed to %s\n", result.RemoteURL))
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range result.Warnings {
			b.WriteString(RenderWarning(w))
		}
	}

	b.WriteString("\n")
	b.WriteString("Next steps:\n")
	for _, cmd := range []string{"cd " + opts.ProjectName, "npm install", "npm run dev"} {
		b.WriteString("  " + tui.CommandStyle.Render(cmd) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(tui.HelpStyle.Render("Visit " + DocsURL + " for documentation."))
	b.WriteString("\n")

	return b.String()
}
