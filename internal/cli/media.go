package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/memorybook/internal/common"
	"github.com/dmitrijs2005/memorybook/internal/gallery"
)

// pathArg joins args back into one path so names with spaces work.
func pathArg(args []string, usage string) (string, error) {
	p := strings.TrimSpace(strings.Join(args, " "))
	if p == "" {
		return "", fmt.Errorf("usage: %s: %w", usage, common.ErrInvalidInput)
	}
	return p, nil
}

// Gallery prints thumbnails of every attached image, four per row.
func (a *App) Gallery(ctx context.Context) error {
	paths, err := a.entryService.AllImages(ctx, a.session.Username)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		a.info("No images found for your memories.")
		return nil
	}

	a.heading("Photo Gallery")
	n := 0
	for i, row := range gallery.Grid(paths, gallery.Columns) {
		a.info("Row %d", i+1)
		for _, p := range row {
			n++
			thumb, err := a.entryService.Thumbnail(ctx, p)
			if err != nil {
				a.log.Debug(ctx, "thumbnail unavailable", "path", p, "error", err)
				thumb = p
			}
			a.info("  [%d] %s", n, thumb)
			a.info("      open %s", p)
		}
	}
	return nil
}

// Open shows where a full-size image lives, or reports it missing.
func (a *App) Open(ctx context.Context, args []string) error {
	p, err := pathArg(args, "open <path>")
	if err != nil {
		return err
	}
	resolved, err := a.entryService.ResolveImage(ctx, p)
	if err != nil {
		return err
	}
	a.info("%s", resolved)
	return nil
}

// Thumb prints the thumbnail path for a stored image, generating it if needed.
func (a *App) Thumb(ctx context.Context, args []string) error {
	p, err := pathArg(args, "thumb <path>")
	if err != nil {
		return err
	}
	thumb, err := a.entryService.Thumbnail(ctx, p)
	if err != nil {
		return err
	}
	a.info("%s", thumb)
	return nil
}

// Background sets the session background image, or prints the current one
// when called without a path. The image is checked but not copied.
func (a *App) Background(ctx context.Context, args []string) error {
	if len(args) == 0 {
		if a.session.Background == "" {
			a.info("No background set.")
		} else {
			a.info("Background: %s", a.session.Background)
		}
		return nil
	}

	p, err := pathArg(args, "background [path]")
	if err != nil {
		return err
	}
	if _, err := a.entryService.ResolveImage(ctx, p); err != nil {
		return err
	}
	if err := a.checker.Check(p); err != nil {
		return fmt.Errorf("cannot set background: %w", err)
	}

	a.session.Background = p
	a.success("Background set to %s", p)
	return nil
}
