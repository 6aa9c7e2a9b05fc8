package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/infra/config"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoader_Load(t *testing.T) {
	t.Run("defaults when no files exist", func(t *testing.T) {
		loader := config.NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())
		cfg, err := loader.Load()

		require.NoError(t, err)
		assert.Equal(t, []string{"name", "about"}, cfg.Lint.Required)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Empty(t, cfg.Warnings)
	})

	t.Run("repo config overrides global", func(t *testing.T) {
		repoRoot := t.TempDir()
		globalDir := t.TempDir()
		writeConfig(t, globalDir, domain.ConfigFileName, "[log]\nlevel = \"debug\"\n\n[lint]\nrequired = [\"name\"]\n")
		writeConfig(t, repoRoot, domain.RepoConfigFileName, "[log]\nlevel = \"error\"\n")

		cfg, err := config.NewLoaderWithGlobalDir(repoRoot, globalDir).Load()

		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Log.Level)
		// Global values survive where the repo config is silent.
		assert.Equal(t, []string{"name"}, cfg.Lint.Required)
	})

	t.Run("severity overrides merge per rule", func(t *testing.T) {
		repoRoot := t.TempDir()
		globalDir := t.TempDir()
		writeConfig(t, globalDir, domain.ConfigFileName, "[lint.severity]\n\"body/heading\" = \"warning\"\n")
		writeConfig(t, repoRoot, domain.RepoConfigFileName, "[lint.severity]\n\"labels/unknown\" = \"error\"\n")

		cfg, err := config.NewLoaderWithGlobalDir(repoRoot, globalDir).Load()

		require.NoError(t, err)
		assert.Equal(t, "warning", cfg.Lint.Severity["body/heading"])
		assert.Equal(t, "error", cfg.Lint.Severity["labels/unknown"])
	})

	t.Run("unknown keys become warnings", func(t *testing.T) {
		repoRoot := t.TempDir()
		writeConfig(t, repoRoot, domain.RepoConfigFileName, "[lint]\nrequried = [\"name\"]\n\n[nope]\nx = 1\n")

		cfg, err := config.NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()

		require.NoError(t, err)
		require.Len(t, cfg.Warnings, 2)
		assert.Contains(t, cfg.Warnings[0], "unknown key in [lint]: requried")
		assert.Contains(t, cfg.Warnings[1], "unknown section: nope")
	})

	t.Run("broken toml fails", func(t *testing.T) {
		repoRoot := t.TempDir()
		writeConfig(t, repoRoot, domain.RepoConfigFileName, "[lint\n")

		_, err := config.NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()
		assert.Error(t, err)
	})

	t.Run("render booleans", func(t *testing.T) {
		repoRoot := t.TempDir()
		writeConfig(t, repoRoot, domain.RepoConfigFileName, "[render]\nstrip_comments = true\n")

		cfg, err := config.NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()
		require.NoError(t, err)
		assert.True(t, cfg.Render.StripComments)
		// fill_placeholders keeps its default when the file is silent.
		assert.True(t, cfg.Render.FillPlaceholders)
	})

	t.Run("explicit false overrides a true default", func(t *testing.T) {
		repoRoot := t.TempDir()
		writeConfig(t, repoRoot, domain.RepoConfigFileName, "[render]\nfill_placeholders = false\n")

		cfg, err := config.NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()
		require.NoError(t, err)
		assert.False(t, cfg.Render.FillPlaceholders)
	})

	t.Run("repo render booleans override global", func(t *testing.T) {
		repoRoot := t.TempDir()
		globalDir := t.TempDir()
		writeConfig(t, globalDir, domain.ConfigFileName, "[render]\nstrip_comments = true\n")
		writeConfig(t, repoRoot, domain.RepoConfigFileName, "[render]\nstrip_comments = false\n")

		cfg, err := config.NewLoaderWithGlobalDir(repoRoot, globalDir).Load()
		require.NoError(t, err)
		assert.False(t, cfg.Render.StripComments)
	})
}

func TestManager(t *testing.T) {
	t.Run("init repo config", func(t *testing.T) {
		repoRoot := t.TempDir()
		m := config.NewManagerWithGlobalDir(repoRoot, t.TempDir())

		require.NoError(t, m.InitRepoConfig(domain.NewDefaultConfig()))

		info := m.GetRepoConfigInfo()
		assert.True(t, info.Exists)
		assert.Contains(t, info.Content, "[lint]")

		// Second init fails.
		err := m.InitRepoConfig(domain.NewDefaultConfig())
		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})

	t.Run("init global config creates directory", func(t *testing.T) {
		globalDir := filepath.Join(t.TempDir(), "issuekit")
		m := config.NewManagerWithGlobalDir(t.TempDir(), globalDir)

		require.NoError(t, m.InitGlobalConfig(domain.NewDefaultConfig()))
		assert.True(t, m.GetGlobalConfigInfo().Exists)
	})

	t.Run("missing files reported as absent", func(t *testing.T) {
		m := config.NewManagerWithGlobalDir(t.TempDir(), t.TempDir())
		assert.False(t, m.GetRepoConfigInfo().Exists)
		assert.False(t, m.GetGlobalConfigInfo().Exists)
	})
}
