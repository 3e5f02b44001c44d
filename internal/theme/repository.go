// Package theme stores the user's display theme preference, the only
// durable piece of application state.
package theme

import (
	"context"
	"errors"
)

// Theme errors.
var (
	ErrInvalidTheme = errors.New("invalid theme")
)

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used before any preference has been saved, and for
// unknown stored values.
const DefaultTheme = ThemeLight

// preferenceKey is the single key the preference lives under.
const preferenceKey = "theme"

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Repository defines durable storage for the theme preference.
type Repository interface {
	// Get returns the stored preference, or DefaultTheme when none has
	// been saved yet.
	Get(ctx context.Context) (Theme, error)

	// Set stores the preference.
	Set(ctx context.Context, t Theme) error
}
