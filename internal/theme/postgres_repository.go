package theme

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository. The
// preference lives in a single-row key/value table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL theme repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get returns the stored preference, or DefaultTheme when none has been
// saved yet.
func (r *PostgresRepository) Get(ctx context.Context) (Theme, error) {
	query := `SELECT value FROM preferences WHERE key = $1`

	var value string
	err := r.pool.QueryRow(ctx, query, preferenceKey).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DefaultTheme, nil
		}
		return DefaultTheme, err
	}

	t := Theme(value)
	if !t.Valid() {
		return DefaultTheme, nil
	}
	return t, nil
}

// Set stores the preference.
func (r *PostgresRepository) Set(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return ErrInvalidTheme
	}

	query := `
		INSERT INTO preferences (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query, preferenceKey, string(t))
	return err
}

// Ensure PostgresRepository implements Repository.
var _ Repository = (*PostgresRepository)(nil)
