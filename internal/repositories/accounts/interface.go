package accounts

import "context"

// Repository persists the username → stored password mapping as a single
// document. Implementations rewrite the whole document on Save.
type Repository interface {
	// Load returns every account; an empty map when nothing was saved yet.
	Load(ctx context.Context) (map[string]string, error)

	// Save replaces the persisted mapping with users.
	Save(ctx context.Context, users map[string]string) error
}
