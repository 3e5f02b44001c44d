package theme

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory implementation of Repository, used
// when no database is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	theme Theme
}

// NewMemoryRepository creates a new in-memory theme repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Get returns the stored preference.
func (r *MemoryRepository) Get(_ context.Context) (Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.theme.Valid() {
		return DefaultTheme, nil
	}
	return r.theme, nil
}

// Set stores the preference.
func (r *MemoryRepository) Set(_ context.Context, t Theme) error {
	if !t.Valid() {
		return ErrInvalidTheme
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.theme = t
	return nil
}

// Ensure MemoryRepository implements Repository.
var _ Repository = (*MemoryRepository)(nil)
