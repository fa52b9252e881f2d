package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/memorybook/internal/gallery"
	"github.com/dmitrijs2005/memorybook/internal/images"
	"github.com/dmitrijs2005/memorybook/internal/logging"
	"github.com/dmitrijs2005/memorybook/internal/models"
	"github.com/dmitrijs2005/memorybook/internal/repositories/entries"
)

// Draft is what the user submits when adding or editing an entry.
type Draft struct {
	Title string
	Text  string

	// Images are already stored paths to keep, in order.
	Images []string

	// Attach are source files to ingest and append after Images.
	Attach []string
}

// ImageStore is the part of images.Store the entry service relies on.
type ImageStore interface {
	IngestAll(ctx context.Context, sources []string) []images.Result
	ThumbnailFor(ctx context.Context, stored string) (string, error)
	Resolve(path string) (string, error)
}

// EntryService defines the entry lifecycle for the CLI.
type EntryService interface {
	List(ctx context.Context, username string) ([]models.Entry, error)
	Create(ctx context.Context, username string, d Draft) (*models.Entry, []images.Result, error)
	Update(ctx context.Context, username, id string, d Draft) (*models.Entry, []images.Result, error)
	Delete(ctx context.Context, username, id string) error
	Thumbnail(ctx context.Context, path string) (string, error)
	AllImages(ctx context.Context, username string) ([]string, error)
	ResolveImage(ctx context.Context, path string) (string, error)
}

type entryService struct {
	repo   entries.Repository
	images ImageStore
	log    logging.Logger
	now    func() time.Time
}

// Option customizes an EntryService.
type Option func(*entryService)

// WithClock replaces time.Now for entry date stamps.
func WithClock(now func() time.Time) Option {
	return func(s *entryService) { s.now = now }
}

func NewEntryService(repo entries.Repository, store ImageStore, log logging.Logger, opts ...Option) EntryService {
	s := &entryService{
		repo:   repo,
		images: store,
		log:    log.With("component", "entries"),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// List returns the user's entries sorted with models.DateLess.
func (s *entryService) List(ctx context.Context, username string) ([]models.Entry, error) {
	list, err := s.repo.Load(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	models.SortByDate(list)
	return list, nil
}

// attach ingests d.Attach and returns the kept images followed by every
// image that was stored. Failed files are logged and skipped.
func (s *entryService) attach(ctx context.Context, username string, d Draft) ([]string, []images.Result) {
	paths := append([]string(nil), d.Images...)
	if len(d.Attach) == 0 {
		return paths, nil
	}

	results := s.images.IngestAll(ctx, d.Attach)
	for _, r := range results {
		if !r.OK() {
			s.log.Warn(ctx, "image skipped", "user", username, "source", r.Source, "error", r.Err)
			continue
		}
		paths = append(paths, r.Stored.Path)
	}
	return paths, results
}

// Create ingests attachments, then stamps and appends a new entry. Images
// ingested before a validation failure stay in the managed directory.
func (s *entryService) Create(ctx context.Context, username string, d Draft) (*models.Entry, []images.Result, error) {
	paths, results := s.attach(ctx, username, d)

	e, err := models.NewEntry(s.now(), d.Title, d.Text, paths)
	if err != nil {
		return nil, results, err
	}

	if err := s.repo.Append(ctx, username, *e); err != nil {
		return nil, results, fmt.Errorf("append entry: %w", err)
	}

	s.log.Info(ctx, "entry created", "user", username, "id", e.Id, "images", len(e.Images))
	return e, results, nil
}

// Update replaces title, text and images of entry id. Id and date are kept.
func (s *entryService) Update(ctx context.Context, username, id string, d Draft) (*models.Entry, []images.Result, error) {
	paths, results := s.attach(ctx, username, d)

	e, err := s.repo.Replace(ctx, username, id, models.Content{
		Title:  d.Title,
		Text:   d.Text,
		Images: paths,
	})
	if err != nil {
		return nil, results, fmt.Errorf("update entry: %w", err)
	}

	s.log.Info(ctx, "entry updated", "user", username, "id", id, "images", len(e.Images))
	return e, results, nil
}

// Delete removes entry id. Its images stay on disk.
func (s *entryService) Delete(ctx context.Context, username, id string) error {
	if err := s.repo.Delete(ctx, username, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	s.log.Info(ctx, "entry deleted", "user", username, "id", id)
	return nil
}

func (s *entryService) Thumbnail(ctx context.Context, path string) (string, error) {
	return s.images.ThumbnailFor(ctx, path)
}

// AllImages lists the on-disk location of every existing attached image
// across the user's entries in display order.
func (s *entryService) AllImages(ctx context.Context, username string) ([]string, error) {
	list, err := s.List(ctx, username)
	if err != nil {
		return nil, err
	}
	return gallery.Collect(list, s.images.Resolve), nil
}

func (s *entryService) ResolveImage(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.images.Resolve(path)
}
