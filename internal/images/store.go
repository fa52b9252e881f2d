package images

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/memorybook/internal/common"
	"github.com/dmitrijs2005/memorybook/internal/filex"
)

// Stored is an ingested image and its thumbnail.
type Stored struct {
	Path      string
	Thumbnail string
}

// Result reports the outcome of ingesting one source file in a batch.
type Result struct {
	Source string
	Stored *Stored
	Err    error
}

// OK reports whether the source was ingested.
func (r Result) OK() bool { return r.Err == nil && r.Stored != nil }

type Store struct {
	dataDir   string
	imagesDir string
	thumbsDir string
}

// NewStore prepares the managed directories under dataDir.
func NewStore(dataDir string) (*Store, error) {
	imagesDir, err := filex.EnsureDir(dataDir, common.ImagesDirName)
	if err != nil {
		return nil, fmt.Errorf("images dir: %w", err)
	}
	thumbsDir, err := filex.EnsureDir(imagesDir, common.ThumbsDirName)
	if err != nil {
		return nil, fmt.Errorf("thumbnails dir: %w", err)
	}
	return &Store{dataDir: dataDir, imagesDir: imagesDir, thumbsDir: thumbsDir}, nil
}

// locate anchors relative entry paths such as "user_images/x.png" at the
// data directory instead of the working directory.
func (s *Store) locate(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.dataDir, path)
}

// Ingest copies src into managed storage under a new unique name, keeping
// its extension, and writes its thumbnail. Every failure wraps
// common.ErrIngest and leaves no new files behind.
func (s *Store) Ingest(ctx context.Context, src string) (*Stored, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := decode(src)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", common.ErrIngest, src, err)
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + filepath.Ext(src)
	dst := filepath.Join(s.imagesDir, name)
	thumb := filepath.Join(s.thumbsDir, name)

	if err := filex.CopyFile(src, dst); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrIngest, err)
	}

	if err := writeThumbnail(img, thumb); err != nil {
		_ = filex.RemoveIfExists(dst)
		return nil, fmt.Errorf("%w: %w", common.ErrIngest, err)
	}

	return &Stored{Path: dst, Thumbnail: thumb}, nil
}

// ingestWorkers bounds how many files IngestAll decodes at once.
const ingestWorkers = 4

// IngestAll ingests each source independently; one failure does not stop
// the rest. Results come back in source order.
func (s *Store) IngestAll(ctx context.Context, sources []string) []Result {
	results := make([]Result, len(sources))

	var g errgroup.Group
	g.SetLimit(ingestWorkers)
	for i, src := range sources {
		g.Go(func() error {
			stored, err := s.Ingest(ctx, src)
			results[i] = Result{Source: src, Stored: stored, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// ThumbnailPath is where the thumbnail for stored lives, whether or not it
// has been generated.
func (s *Store) ThumbnailPath(stored string) string {
	return filepath.Join(s.thumbsDir, filepath.Base(stored))
}

// ThumbnailFor returns the thumbnail of stored, deriving it first if it
// does not exist yet. A missing stored image yields common.ErrMissingFile.
func (s *Store) ThumbnailFor(ctx context.Context, stored string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	thumb := s.ThumbnailPath(stored)
	if filex.Exists(thumb) {
		return thumb, nil
	}

	stored = s.locate(stored)
	if !filex.Exists(stored) {
		return "", fmt.Errorf("%s: %w", stored, common.ErrMissingFile)
	}

	img, err := decode(stored)
	if err != nil {
		return "", fmt.Errorf("%w: decode %s: %w", common.ErrIngest, stored, err)
	}
	if err := writeThumbnail(img, thumb); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrIngest, err)
	}
	return thumb, nil
}

// Resolve returns the on-disk location of path when the file still exists.
// Relative paths are taken from the data directory.
func (s *Store) Resolve(path string) (string, error) {
	path = s.locate(path)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, common.ErrMissingFile)
		}
		return "", err
	}
	return path, nil
}

// Check verifies that path decodes as an image without storing anything.
func (s *Store) Check(path string) error {
	if _, err := decode(path); err != nil {
		return fmt.Errorf("%w: %w", common.ErrIngest, err)
	}
	return nil
}
