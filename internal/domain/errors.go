package domain

import "errors"

// Domain errors.
var (
	ErrTemplateNotFound   = errors.New("template not found")
	ErrNoTemplates        = errors.New("no issue templates found")
	ErrTemplateExists     = errors.New("template file already exists")
	ErrAlreadyInitialized = errors.New("issue templates already initialized")
	ErrNotGitRepository   = errors.New("not a git repository (or any of the parent directories)")
	ErrConfigExists       = errors.New("config file already exists")
	ErrEmptyName          = errors.New("template name cannot be empty")
	ErrInvalidFormat      = errors.New("invalid template format")
	ErrInvalidSeverity    = errors.New("invalid severity")
	ErrNoFrontMatter      = errors.New("no front matter block")
)
