package create

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/shadow-js/create-shadow-app/internal/models"
	"github.com/shadow-js/create-shadow-app/internal/templates"
	"github.com/shadow-js/create-shadow-app/internal/tui"
)

// Fixed marks the answers already given on the command line; their
// questions are not asked.
type Fixed struct {
	Name     bool
	Language bool
	Template bool
	Router   bool
	Tailwind bool
	Git      bool
}

// Flow asks for the project options using huh forms.
type Flow struct {
	templates []templates.Template
	theme     *huh.Theme
}

// NewFlow constructs a Flow offering the given templates.
func NewFlow(list []templates.Template) *Flow {
	return &Flow{
		templates: list,
		theme:     tui.NewHuhTheme(),
	}
}

// Run executes the forms sequentially starting from defaults; returns nil
// options on user abort.
func (f *Flow) Run(defaults models.Options, fixed Fixed) (*models.Options, error) {
	opts := defaults

	steps := []struct {
		skip bool
		ask  func(*models.Options) error
	}{
		{fixed.Name, f.askName},
		{fixed.Language, f.askLanguage},
		{fixed.Template, f.askTemplate},
		{fixed.Router && fixed.Tailwind && fixed.Git, func(o *models.Options) error { return f.askFeatures(o, fixed) }},
	}

	for _, step := range steps {
		if step.skip {
			continue
		}
		if err := step.ask(&opts); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, nil
			}
			return nil, err
		}
	}

	return &opts, nil
}

func (f *Flow) run(group *huh.Group) error {
	return huh.NewForm(group).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		Run()
}

func (f *Flow) askName(opts *models.Options) error {
	name := opts.ProjectName

	err := f.run(huh.NewGroup(
		huh.NewInput().
			Title("Project name").
			Placeholder(models.DefaultOptions().ProjectName).
			Value(&name).
			Validate(models.ValidateProjectName),
	))
	if err != nil {
		return err
	}

	opts.ProjectName = name
	return nil
}

func (f *Flow) askLanguage(opts *models.Options) error {
	lang := opts.Language

	err := f.run(huh.NewGroup(
		huh.NewSelect[models.Language]().
			Title("Language").
			Options(LanguageOptions()...).
			Value(&lang),
	))
	if err != nil {
		return err
	}

	opts.Language = lang
	return nil
}

func (f *Flow) askTemplate(opts *models.Options) error {
	choices := TemplateOptions(f.templates, opts.Language)
	if len(choices) == 0 {
		return fmt.Errorf("no templates available for %s", opts.Language.DisplayName())
	}

	tmpl := opts.Template
	err := f.run(huh.NewGroup(
		huh.NewSelect[models.TemplateID]().
			Title("Template").
			Description("Pick a starting point.").
			Options(choices...).
			Value(&tmpl),
	))
	if err != nil {
		return err
	}

	opts.Template = tmpl
	return nil
}

func (f *Flow) askFeatures(opts *models.Options, fixed Fixed) error {
	var fields []huh.Field
	if !fixed.Router {
		fields = append(fields, huh.NewConfirm().
			Title("Add the router?").
			Description("Installs @shadow-js/router and mounts App on /.").
			Value(&opts.UseRouter))
	}
	if !fixed.Tailwind {
		fields = append(fields, huh.NewConfirm().
			Title("Add Tailwind CSS?").
			Value(&opts.UseTailwind))
	}
	if !fixed.Git {
		fields = append(fields, huh.NewConfirm().
			Title("Initialize a git repository?").
			Value(&opts.InitGit))
	}

	return f.run(huh.NewGroup(fields...).Title("Features"))
}

// LanguageOptions are the language choices in prompt order.
func LanguageOptions() []huh.Option[models.Language] {
	opts := make([]huh.Option[models.Language], 0, len(models.Languages()))
	for _, lang := range models.Languages() {
		opts = append(opts, huh.NewOption(lang.DisplayName(), lang))
	}
	return opts
}

// TemplateOptions lists the templates that ship a subtree for lang.
func TemplateOptions(list []templates.Template, lang models.Language) []huh.Option[models.TemplateID] {
	opts := make([]huh.Option[models.TemplateID], 0, len(list))
	for _, tmpl := range list {
		if !tmpl.Supports(lang) {
			continue
		}
		opts = append(opts, huh.NewOption(tmpl.Label(), tmpl.ID))
	}
	return opts
}
