package entries

import (
	"context"

	"github.com/dmitrijs2005/memorybook/internal/models"
)

// Repository describes load/store operations on a user's entry collection.
type Repository interface {
	// Load returns the user's entries in stored order; empty when the user
	// has no document yet.
	Load(ctx context.Context, username string) ([]models.Entry, error)

	// Save rewrites the user's document with entries.
	Save(ctx context.Context, username string, entries []models.Entry) error

	// Append adds entry at the end of the stored collection.
	Append(ctx context.Context, username string, entry models.Entry) error

	// Replace swaps title, text and images of the entry with the given id
	// and returns the updated entry. Missing id yields common.ErrNotFound.
	Replace(ctx context.Context, username, id string, content models.Content) (*models.Entry, error)

	// Delete removes the entry with the given id. A missing id is a no-op.
	Delete(ctx context.Context, username, id string) error
}
