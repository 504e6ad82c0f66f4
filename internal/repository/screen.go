package repository

import (
	"context"

	"signage/internal/model"
)

// ScreenRepository defines data access for screen records, keyed by the
// operator-supplied screen name.
type ScreenRepository interface {
	// Find returns a screen by ID, or sql.ErrNoRows if absent.
	Find(ctx context.Context, id string) (*model.Screen, error)

	// Upsert writes the screen's assignment pointer, creating the row
	// if it does not exist, and returns the stored row.
	Upsert(ctx context.Context, screen *model.Screen) (*model.Screen, error)

	// CreateIfAbsent inserts a screen with no assignment if no row with
	// that ID exists yet. It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, id string) (bool, error)

	// Delete removes a screen by ID. Deleting a missing row is not an
	// error.
	Delete(ctx context.Context, id string) error

	// CountAssignedTo returns how many screens currently point at the
	// given content ID.
	CountAssignedTo(ctx context.Context, contentID string) (int, error)

	// List returns all screens in ID order.
	List(ctx context.Context) ([]model.Screen, error)
}
