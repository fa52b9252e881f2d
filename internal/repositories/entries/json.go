package entries

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/memorybook/internal/common"
	"github.com/dmitrijs2005/memorybook/internal/filex"
	"github.com/dmitrijs2005/memorybook/internal/models"
)

type JSONRepository struct {
	dir string
}

func NewJSONRepository(dataDir string) *JSONRepository {
	return &JSONRepository{dir: dataDir}
}

// DocumentPath returns the entry document for username. The username has to
// be usable as a single file name component.
func (r *JSONRepository) DocumentPath(username string) (string, error) {
	if username == "" || username == "." || username == ".." ||
		strings.ContainsAny(username, `/\`) || strings.ContainsRune(username, 0) {
		return "", fmt.Errorf("username %q cannot name a document: %w", username, common.ErrInvalidInput)
	}
	return filepath.Join(r.dir, username+common.EntriesFileSuffix), nil
}

func (r *JSONRepository) Load(ctx context.Context, username string) ([]models.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := r.DocumentPath(username)
	if err != nil {
		return nil, err
	}

	var result []models.Entry
	if _, err := filex.ReadJSON(path, &result); err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	if result == nil {
		result = []models.Entry{}
	}
	for i := range result {
		if result[i].Images == nil {
			result[i].Images = []string{}
		}
	}
	return result, nil
}

func (r *JSONRepository) Save(ctx context.Context, username string, entries []models.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := r.DocumentPath(username)
	if err != nil {
		return err
	}

	if entries == nil {
		entries = []models.Entry{}
	}
	if err := filex.WriteJSON(path, entries); err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}
	return nil
}

func (r *JSONRepository) Append(ctx context.Context, username string, entry models.Entry) error {
	list, err := r.Load(ctx, username)
	if err != nil {
		return err
	}

	if entry.Images == nil {
		entry.Images = []string{}
	}
	return r.Save(ctx, username, append(list, entry))
}

func (r *JSONRepository) Replace(ctx context.Context, username, id string, content models.Content) (*models.Entry, error) {
	list, err := r.Load(ctx, username)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].Id != id {
			continue
		}

		list[i].SetContent(content.Title, content.Text, content.Images)
		if err := r.Save(ctx, username, list); err != nil {
			return nil, err
		}
		updated := list[i].Clone()
		return &updated, nil
	}

	return nil, fmt.Errorf("entry %s: %w", id, common.ErrNotFound)
}

func (r *JSONRepository) Delete(ctx context.Context, username, id string) error {
	list, err := r.Load(ctx, username)
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].Id == id {
			return r.Save(ctx, username, append(list[:i], list[i+1:]...))
		}
	}

	return nil
}
