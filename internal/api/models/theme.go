package models

// ThemePreference represents the stored display theme.
type ThemePreference struct {
	Theme string `json:"theme"`
}

// UpdateThemeRequest is the payload for changing the display theme.
type UpdateThemeRequest struct {
	Theme string `json:"theme"`
}
