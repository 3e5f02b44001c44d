package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nalssiboard/nalssiboard/internal/api/models"
	"github.com/nalssiboard/nalssiboard/internal/api/response"
	"github.com/nalssiboard/nalssiboard/internal/theme"
)

// ThemeHandler handles the display theme preference endpoints.
type ThemeHandler struct {
	repo theme.Repository
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(repo theme.Repository) *ThemeHandler {
	return &ThemeHandler{repo: repo}
}

// Get handles GET /v1/theme.
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.repo.Get(r.Context())
	if err != nil {
		response.InternalError(w, r, "failed to load theme preference")
		return
	}
	response.JSON(w, r, http.StatusOK, models.ThemePreference{Theme: string(t)})
}

// Update handles PUT /v1/theme.
func (h *ThemeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	t := theme.Theme(req.Theme)
	if !t.Valid() {
		response.BadRequest(w, r, "unknown theme", []models.FieldError{
			{Field: "theme", Message: "must be \"light\" or \"dark\"", Code: "INVALID"},
		})
		return
	}

	if err := h.repo.Set(r.Context(), t); err != nil {
		response.InternalError(w, r, "failed to store theme preference")
		return
	}
	response.JSON(w, r, http.StatusOK, models.ThemePreference{Theme: string(t)})
}
