package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/testutil"
	"github.com/runoshun/issuekit/internal/usecase"
)

func TestShowConfig_Execute(t *testing.T) {
	t.Run("returns both config infos and effective config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.RepoConfigInfo = domain.ConfigInfo{
			Path:    "/repo/.issuekit.toml",
			Content: "[lint]\nrequired = [\"name\"]",
			Exists:  true,
		}
		manager.GlobalConfigInfo = domain.ConfigInfo{
			Path:    "/home/test/.config/issuekit/config.toml",
			Content: "[log]\nlevel = \"debug\"",
			Exists:  true,
		}

		uc := usecase.NewShowConfig(manager, &testutil.MockConfigLoader{})
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/repo/.issuekit.toml", out.RepoConfig.Path)
		assert.True(t, out.RepoConfig.Exists)
		assert.Equal(t, "/home/test/.config/issuekit/config.toml", out.GlobalConfig.Path)
		assert.NotNil(t, out.EffectiveConfig)
	})

	t.Run("handles non-existent files", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.RepoConfigInfo = domain.ConfigInfo{Path: "/repo/.issuekit.toml"}
		manager.GlobalConfigInfo = domain.ConfigInfo{Path: "/home/test/.config/issuekit/config.toml"}

		uc := usecase.NewShowConfig(manager, &testutil.MockConfigLoader{})
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.False(t, out.RepoConfig.Exists)
		assert.False(t, out.GlobalConfig.Exists)
		assert.Empty(t, out.RepoConfig.Content)
	})
}

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates repository config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.RepoConfigInfo = domain.ConfigInfo{Path: "/repo/.issuekit.toml"}

		uc := usecase.NewInitConfig(manager)
		out, err := uc.Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/repo/.issuekit.toml", out.Path)
		assert.True(t, manager.InitRepoCalled)
		assert.False(t, manager.InitGlobalCalled)
	})

	t.Run("creates global config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.GlobalConfigInfo = domain.ConfigInfo{Path: "/home/test/.config/issuekit/config.toml"}

		uc := usecase.NewInitConfig(manager)
		out, err := uc.Execute(context.Background(), usecase.InitConfigInput{Global: true})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/issuekit/config.toml", out.Path)
		assert.True(t, manager.InitGlobalCalled)
		assert.False(t, manager.InitRepoCalled)
	})

	t.Run("propagates existing file error", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitRepoErr = domain.ErrConfigExists

		uc := usecase.NewInitConfig(manager)
		_, err := uc.Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
