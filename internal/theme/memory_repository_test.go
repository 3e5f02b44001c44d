package theme_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nalssiboard/nalssiboard/internal/theme"
)

func TestMemoryRepository_DefaultsToLight(t *testing.T) {
	repo := theme.NewMemoryRepository()

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, theme.ThemeLight, got)
}

func TestMemoryRepository_SetGet(t *testing.T) {
	repo := theme.NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, theme.ThemeDark))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.ThemeDark, got)
}

func TestMemoryRepository_RejectsUnknownTheme(t *testing.T) {
	repo := theme.NewMemoryRepository()

	err := repo.Set(context.Background(), theme.Theme("sepia"))
	assert.ErrorIs(t, err, theme.ErrInvalidTheme)
}

func TestTheme_Valid(t *testing.T) {
	assert.True(t, theme.ThemeLight.Valid())
	assert.True(t, theme.ThemeDark.Valid())
	assert.False(t, theme.Theme("").Valid())
	assert.False(t, theme.Theme("blue").Valid())
}
