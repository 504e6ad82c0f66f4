package repository

import (
	"context"

	"signage/internal/model"
)

// ContentRepository defines data access for content metadata records.
// No business logic here — strictly persistence operations.
type ContentRepository interface {
	// Create inserts a new content record and returns the stored row.
	Create(ctx context.Context, item *model.ContentItem) (*model.ContentItem, error)

	// FindByID returns a content item by its ID. Missing rows surface
	// as sql.ErrNoRows for the service layer to translate.
	FindByID(ctx context.Context, id string) (*model.ContentItem, error)

	// List returns all content items newest-first. Items sharing an
	// upload timestamp keep their insertion order.
	List(ctx context.Context) ([]model.ContentItem, error)

	// Delete removes a content item by ID. Deleting a missing row is
	// not an error.
	Delete(ctx context.Context, id string) error
}
