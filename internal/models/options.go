package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOptions is wrapped by every validation failure of Options.
var ErrInvalidOptions = errors.New("invalid project options")

// Language is the language variant of the generated project.
type Language string

const (
	LanguageTypeScript Language = "ts"
	LanguageJavaScript Language = "js"
)

// IsValid checks if the language is supported
func (l Language) IsValid() bool {
	switch l {
	case LanguageTypeScript, LanguageJavaScript:
		return true
	default:
		return false
	}
}

// String returns the string representation of Language
func (l Language) String() string {
	return string(l)
}

// DisplayName returns the human readable language name.
func (l Language) DisplayName() string {
	if l == LanguageJavaScript {
		return "JavaScript"
	}
	return "TypeScript"
}

// SourceExt is the extension of JSX source files ("tsx" or "jsx").
func (l Language) SourceExt() string {
	if l == LanguageJavaScript {
		return "jsx"
	}
	return "tsx"
}

// ConfigExt is the extension of generated config modules ("ts" or "js").
func (l Language) ConfigExt() string {
	if l == LanguageJavaScript {
		return "js"
	}
	return "ts"
}

// ParseLanguage parses a string into a Language
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", fmt.Errorf("invalid language: %s (must be ts or js)", s)
	}
	return l, nil
}

// Languages returns all supported languages in prompt order.
func Languages() []Language {
	return []Language{LanguageTypeScript, LanguageJavaScript}
}

// TemplateID identifies a starter template.
type TemplateID string

const (
	TemplateCounter TemplateID = "counter"
	TemplateTodo    TemplateID = "todo"
)

// IsValid checks if the template id is known
func (t TemplateID) IsValid() bool {
	switch t {
	case TemplateCounter, TemplateTodo:
		return true
	default:
		return false
	}
}

// String returns the string representation of TemplateID
func (t TemplateID) String() string {
	return string(t)
}

// ParseTemplateID parses a string into a TemplateID
func ParseTemplateID(s string) (TemplateID, error) {
	t := TemplateID(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid template: %s (must be counter or todo)", s)
	}
	return t, nil
}

// TemplateIDs returns all known template ids.
func TemplateIDs() []TemplateID {
	return []TemplateID{TemplateCounter, TemplateTodo}
}

// Options is the validated input of a single project creation.
type Options struct {
	// ProjectName is both the directory name and the package name.
	ProjectName string `yaml:"name" json:"projectName"`

	Language Language   `yaml:"language" json:"language"`
	Template TemplateID `yaml:"template" json:"template"`

	UseRouter   bool `yaml:"router" json:"useRouter"`
	UseTailwind bool `yaml:"tailwind" json:"useTailwind"`
	InitGit     bool `yaml:"git" json:"initGit"`

	// GitHubRepo is an optional "owner/name" (or "name" for the
	// authenticated user) to create and push to after the first commit.
	GitHubRepo string `yaml:"github_repo,omitempty" json:"githubRepo,omitempty"`

	// Private controls the visibility of the GitHub repository.
	Private bool `yaml:"private,omitempty" json:"private,omitempty"`
}

// DefaultOptions returns the options used when nothing else is specified.
func DefaultOptions() Options {
	return Options{
		ProjectName: "my-shadow-app",
		Language:    LanguageTypeScript,
		Template:    TemplateCounter,
	}
}

// Normalize trims user input in place.
func (o *Options) Normalize() {
	o.ProjectName = strings.TrimSpace(o.ProjectName)
	o.GitHubRepo = strings.TrimSpace(o.GitHubRepo)
	o.Language = Language(strings.ToLower(strings.TrimSpace(string(o.Language))))
	o.Template = TemplateID(strings.ToLower(strings.TrimSpace(string(o.Template))))
}

// Validate reports every rule the options violate.
func (o Options) Validate() error {
	var errs []error

	if err := ValidateProjectName(o.ProjectName); err != nil {
		errs = append(errs, err)
	}
	if !o.Language.IsValid() {
		errs = append(errs, fmt.Errorf("invalid language: %q (must be ts or js)", o.Language))
	}
	if !o.Template.IsValid() {
		errs = append(errs, fmt.Errorf("invalid template: %q (must be counter or todo)", o.Template))
	}
	if o.GitHubRepo != "" {
		if !o.InitGit {
			errs = append(errs, errors.New("a GitHub repository requires git initialization"))
		}
		if _, _, err := SplitRepo(o.GitHubRepo); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidOptions, errors.Join(errs...))
}

// ValidateProjectName checks a name can be used as a single directory entry.
func ValidateProjectName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return errors.New("project name cannot be empty")
	case trimmed == "." || trimmed == "..":
		return fmt.Errorf("project name %q is not a directory name", trimmed)
	case strings.ContainsAny(trimmed, `/\`):
		return fmt.Errorf("project name %q must not contain path separators", trimmed)
	}
	return nil
}

// SplitRepo splits "owner/name" into its parts. A bare "name" yields an
// empty owner, meaning the authenticated user.
func SplitRepo(repo string) (owner, name string, err error) {
	parts := strings.Split(strings.TrimSpace(repo), "/")
	switch {
	case len(parts) == 1 && parts[0] != "":
		return "", parts[0], nil
	case len(parts) == 2 && parts[0] != "" && parts[1] != "":
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("invalid GitHub repository: %q (must be owner/name or name)", repo)
	}
}
