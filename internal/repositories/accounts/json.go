// Package accounts provides the account document store.
package accounts

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/memorybook/internal/common"
	"github.com/dmitrijs2005/memorybook/internal/filex"
)

// JSONRepository keeps accounts in <dataDir>/users.json.
type JSONRepository struct {
	path string
}

func NewJSONRepository(dataDir string) *JSONRepository {
	return &JSONRepository{path: filepath.Join(dataDir, common.UsersFileName)}
}

func (r *JSONRepository) Load(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	users := map[string]string{}
	if _, err := filex.ReadJSON(r.path, &users); err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	if users == nil {
		users = map[string]string{}
	}
	return users, nil
}

func (r *JSONRepository) Save(ctx context.Context, users map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if users == nil {
		users = map[string]string{}
	}
	if err := filex.WriteJSON(r.path, users); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}
