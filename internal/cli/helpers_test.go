package cli

import (
	"github.com/shadow-js/create-shadow-app/internal/models"
)

func scaffoldOptions(name string) models.Options {
	opts := models.DefaultOptions()
	opts.ProjectName = name
	opts.Template = models.TemplateTodo
	opts.UseTailwind = true
	return opts
}
