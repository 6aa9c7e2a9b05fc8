// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"

	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/infra/config"
	"github.com/runoshun/issuekit/internal/infra/filestore"
	"github.com/runoshun/issuekit/internal/infra/git"
	"github.com/runoshun/issuekit/internal/infra/logging"
	"github.com/runoshun/issuekit/internal/usecase"
)

// Config holds the application configuration paths.
type Config struct {
	RepoRoot string // Root directory of the git repository
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Templates     domain.TemplateRepository
	Git           domain.Git
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Clock         domain.Clock

	// Pointer fields
	Logger *slog.Logger

	// Configuration
	Config Config
}

// New creates a new Container by detecting the git repository from the given directory.
func New(dir string) (*Container, error) {
	gitClient, err := git.NewClient(dir)
	if err != nil {
		return nil, err
	}
	repoRoot := gitClient.RepoRoot()

	configLoader := config.NewLoader(repoRoot)
	appConfig, _ := configLoader.Load() // ignore error, use defaults

	logger := logging.New(os.Stderr, appConfig.Log.Level)
	logger.Debug("container initialized", "repo", repoRoot, "log_level", appConfig.Log.Level)

	return &Container{
		Templates:     filestore.New(repoRoot),
		Git:           gitClient,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(repoRoot),
		Clock:         domain.RealClock{},
		Logger:        logger,
		Config:        Config{RepoRoot: repoRoot},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, templates domain.TemplateRepository, gitPort domain.Git, loader domain.ConfigLoader, manager domain.ConfigManager, logger *slog.Logger) *Container {
	return &Container{
		Templates:     templates,
		Git:           gitPort,
		ConfigLoader:  loader,
		ConfigManager: manager,
		Clock:         domain.RealClock{},
		Logger:        logger,
		Config:        cfg,
	}
}

// UseCase factory methods

// ListTemplatesUseCase returns a new ListTemplates use case.
func (c *Container) ListTemplatesUseCase() *usecase.ListTemplates {
	return usecase.NewListTemplates(c.Templates)
}

// ShowTemplateUseCase returns a new ShowTemplate use case.
func (c *Container) ShowTemplateUseCase() *usecase.ShowTemplate {
	return usecase.NewShowTemplate(c.Templates)
}

// LintTemplatesUseCase returns a new LintTemplates use case.
func (c *Container) LintTemplatesUseCase() *usecase.LintTemplates {
	return usecase.NewLintTemplates(c.Templates, c.ConfigLoader, c.Logger)
}

// InitTemplatesUseCase returns a new InitTemplates use case.
func (c *Container) InitTemplatesUseCase() *usecase.InitTemplates {
	return usecase.NewInitTemplates(c.Templates, c.Logger)
}

// RenderIssueUseCase returns a new RenderIssue use case.
func (c *Container) RenderIssueUseCase() *usecase.RenderIssue {
	return usecase.NewRenderIssue(c.Templates, c.ConfigLoader, c.Git, c.Clock, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
