package postgres

import (
	"context"
	"database/sql"

	"signage/internal/model"
	"signage/internal/repository"
)

// ContentPostgres is a PostgreSQL implementation of repository.ContentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ContentPostgres struct {
	db *sql.DB
}

// NewContentPostgres creates a new ContentPostgres repository.
func NewContentPostgres(db *sql.DB) *ContentPostgres {
	return &ContentPostgres{db: db}
}

var _ repository.ContentRepository = (*ContentPostgres)(nil)

// Create inserts a new content row and returns the stored record.
func (r *ContentPostgres) Create(ctx context.Context, item *model.ContentItem) (*model.ContentItem, error) {
	const q = `
		INSERT INTO content_items (id, filename, storage_key, mime_type, size, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, filename, storage_key, mime_type, size, uploaded_at
	`
	row := r.db.QueryRowContext(ctx, q,
		item.ID,
		item.Filename,
		item.StorageKey,
		item.MimeType,
		item.Size,
		item.UploadedAt,
	)
	var out model.ContentItem
	if err := row.Scan(
		&out.ID,
		&out.Filename,
		&out.StorageKey,
		&out.MimeType,
		&out.Size,
		&out.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single content item by its ID.
func (r *ContentPostgres) FindByID(ctx context.Context, id string) (*model.ContentItem, error) {
	const q = `
		SELECT id, filename, storage_key, mime_type, size, uploaded_at
		FROM content_items
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var item model.ContentItem
	if err := row.Scan(
		&item.ID,
		&item.Filename,
		&item.StorageKey,
		&item.MimeType,
		&item.Size,
		&item.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns all content items newest-first. The seq tiebreak keeps
// rows sharing an upload timestamp in insertion order.
func (r *ContentPostgres) List(ctx context.Context) ([]model.ContentItem, error) {
	const q = `
		SELECT id, filename, storage_key, mime_type, size, uploaded_at
		FROM content_items
		ORDER BY uploaded_at DESC, seq ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ContentItem, 0)
	for rows.Next() {
		var item model.ContentItem
		if err := rows.Scan(
			&item.ID,
			&item.Filename,
			&item.StorageKey,
			&item.MimeType,
			&item.Size,
			&item.UploadedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a content item by ID. It does not return an error if the row does not exist.
func (r *ContentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM content_items WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
