package scaffold

import (
	"errors"

	"github.com/shadow-js/create-shadow-app/internal/templates"
)

var (
	// ErrDestinationExists is returned when the project directory is already present.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrTemplateNotFound is returned when the (template, language) subtree is missing.
	ErrTemplateNotFound = templates.ErrTemplateNotFound
)
