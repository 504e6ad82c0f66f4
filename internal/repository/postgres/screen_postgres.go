package postgres

import (
	"context"
	"database/sql"

	"signage/internal/model"
	"signage/internal/repository"
)

// ScreenPostgres is a PostgreSQL implementation of repository.ScreenRepository.
// The screens table intentionally carries no foreign key on
// assigned_content_id, so a pointer at deleted content stays readable.
type ScreenPostgres struct {
	db *sql.DB
}

// NewScreenPostgres creates a new ScreenPostgres repository.
func NewScreenPostgres(db *sql.DB) *ScreenPostgres {
	return &ScreenPostgres{db: db}
}

var _ repository.ScreenRepository = (*ScreenPostgres)(nil)

// Find fetches a screen by its ID.
func (r *ScreenPostgres) Find(ctx context.Context, id string) (*model.Screen, error) {
	const q = `SELECT id, assigned_content_id FROM screens WHERE id = $1`
	row := r.db.QueryRowContext(ctx, q, id)
	var s model.Screen
	if err := row.Scan(&s.ID, &s.AssignedContentID); err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert writes the screen's assignment pointer. The ON CONFLICT update
// is a single atomic statement, so create-vs-update races on the same
// ID cannot produce duplicates or lost rows.
func (r *ScreenPostgres) Upsert(ctx context.Context, screen *model.Screen) (*model.Screen, error) {
	const q = `
		INSERT INTO screens (id, assigned_content_id)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET assigned_content_id = EXCLUDED.assigned_content_id
		RETURNING id, assigned_content_id
	`
	row := r.db.QueryRowContext(ctx, q, screen.ID, screen.AssignedContentID)
	var out model.Screen
	if err := row.Scan(&out.ID, &out.AssignedContentID); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateIfAbsent inserts an unassigned screen row unless one already
// exists. It reports whether a row was actually inserted.
func (r *ScreenPostgres) CreateIfAbsent(ctx context.Context, id string) (bool, error) {
	const q = `
		INSERT INTO screens (id, assigned_content_id)
		VALUES ($1, NULL)
		ON CONFLICT (id) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes a screen by ID. Deleting a missing row is not an error.
func (r *ScreenPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM screens WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// CountAssignedTo returns the number of screens pointing at the given content ID.
func (r *ScreenPostgres) CountAssignedTo(ctx context.Context, contentID string) (int, error) {
	const q = `SELECT COUNT(*) FROM screens WHERE assigned_content_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, contentID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// List returns all screens in primary-key order.
func (r *ScreenPostgres) List(ctx context.Context) ([]model.Screen, error) {
	const q = `SELECT id, assigned_content_id FROM screens ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screens := make([]model.Screen, 0)
	for rows.Next() {
		var s model.Screen
		if err := rows.Scan(&s.ID, &s.AssignedContentID); err != nil {
			return nil, err
		}
		screens = append(screens, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return screens, nil
}
