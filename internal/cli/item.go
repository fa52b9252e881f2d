package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/memorybook/internal/common"
	"github.com/dmitrijs2005/memorybook/internal/images"
	"github.com/dmitrijs2005/memorybook/internal/services"
)

// clearAnswer as an edit answer empties the field. A cleared title falls
// back to the default one.
const clearAnswer = "-"

// editAnswer maps an edit prompt answer onto the new field value.
func editAnswer(answer, current string) string {
	switch answer {
	case "":
		return current
	case clearAnswer:
		return ""
	}
	return answer
}

// Test seams for multi-line input.
var (
	getMultiline = GetMultiline
	getLines     = GetLines
	confirm      = Confirm
)

const noMoreMsg = "No more memories in that direction."

// List prints entries newest first, numbered for use with show.
func (a *App) List(ctx context.Context) error {
	entries := a.session.Entries
	if len(entries) == 0 {
		a.info("No memories yet. Use 'add' to write one.")
		return nil
	}

	a.heading("All Memories")
	for n := 1; n <= len(entries); n++ {
		e := entries[len(entries)-n]
		marker := " "
		if len(entries)-n == a.session.Cursor {
			marker = "*"
		}
		a.info("%s%3d. %s", marker, n, e.String())
	}
	return nil
}

// Show prints the current entry, or entry n of the list when given.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || !a.session.Select(len(a.session.Entries)-n) {
			return fmt.Errorf("no memory number %q: %w", args[0], common.ErrInvalidInput)
		}
	}

	e, ok := a.session.Current()
	if !ok {
		a.warn("No memory selected.")
		return nil
	}

	a.heading("%s", e.Title)
	a.info("%s", e.Date)
	if e.Text != "" {
		fmt.Fprintln(a.out)
		a.info("%s", e.Text)
	}
	a.printImages(ctx, e.Images)
	return nil
}

// printImages lists thumbnails of attached images that still exist. When a
// thumbnail cannot be produced the image itself is shown.
func (a *App) printImages(ctx context.Context, paths []string) {
	var shown []string
	for _, p := range paths {
		if _, err := a.entryService.ResolveImage(ctx, p); err != nil {
			continue
		}
		thumb, err := a.entryService.Thumbnail(ctx, p)
		if err != nil {
			a.log.Debug(ctx, "thumbnail unavailable", "path", p, "error", err)
			thumb = p
		}
		shown = append(shown, thumb)
	}
	if len(shown) == 0 {
		return
	}

	fmt.Fprintln(a.out)
	a.info("Images:")
	for _, t := range shown {
		a.info("  %s", t)
	}
}

func (a *App) Next(ctx context.Context) error {
	if !a.session.Next() {
		a.warn(noMoreMsg)
		return nil
	}
	return a.Show(ctx, nil)
}

func (a *App) Prev(ctx context.Context) error {
	if !a.session.Prev() {
		a.warn(noMoreMsg)
		return nil
	}
	return a.Show(ctx, nil)
}

// Refresh reloads entries from disk and selects the newest.
func (a *App) Refresh(ctx context.Context) error {
	list, err := a.entryService.List(ctx, a.session.Username)
	if err != nil {
		return err
	}
	a.session.Reload(list)
	a.info("%d memories", len(a.session.Entries))
	return nil
}

// reloadAt refreshes the session and puts the cursor on id if it still exists.
func (a *App) reloadAt(ctx context.Context, id string) error {
	if err := a.Refresh(ctx); err != nil {
		return err
	}
	if id != "" {
		a.session.SelectID(id)
	}
	return nil
}

func (a *App) readAttachments() ([]string, error) {
	lines, err := getLines(a.reader, "Image files to attach, one per line", a.out)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, strings.TrimSpace(l))
	}
	return out, nil
}

// reportAttach prints one line per failed attachment and a summary.
func (a *App) reportAttach(results []images.Result) {
	if len(results) == 0 {
		return
	}
	ok := 0
	for _, r := range results {
		if r.OK() {
			ok++
			continue
		}
		a.warn("Skipped %s: %v", r.Source, r.Err)
	}
	a.info("%d images attached", ok)
}

// Add prompts for a new entry and saves it.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	text, err := getMultiline(a.reader, "Text", a.out)
	if err != nil {
		return err
	}
	attach, err := a.readAttachments()
	if err != nil {
		return err
	}

	e, results, err := a.entryService.Create(ctx, a.session.Username, services.Draft{
		Title:  title,
		Text:   text,
		Attach: attach,
	})
	a.reportAttach(results)
	if err != nil {
		return err
	}

	if err := a.reloadAt(ctx, e.Id); err != nil {
		return err
	}
	a.success("Memory saved!")
	return nil
}

// Edit rewrites the current entry. Empty answers keep the current title
// and text; existing images are kept unless the user drops them.
func (a *App) Edit(ctx context.Context) error {
	e, ok := a.session.Current()
	if !ok {
		a.warn("No memory selected to edit.")
		return nil
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s] (%s resets it)", e.Title, clearAnswer), a.out)
	if err != nil {
		return err
	}
	title = editAnswer(title, e.Title)

	text, err := getMultiline(a.reader, fmt.Sprintf("Text (empty keeps the current text, %s clears it)", clearAnswer), a.out)
	if err != nil {
		return err
	}
	text = editAnswer(text, e.Text)

	kept := e.Images
	if len(kept) > 0 {
		drop, err := confirm(a.reader, fmt.Sprintf("Remove the %d attached images?", len(kept)), a.out)
		if err != nil {
			return err
		}
		if drop {
			kept = nil
		}
	}

	attach, err := a.readAttachments()
	if err != nil {
		return err
	}

	updated, results, err := a.entryService.Update(ctx, a.session.Username, e.Id, services.Draft{
		Title:  title,
		Text:   text,
		Images: kept,
		Attach: attach,
	})
	a.reportAttach(results)
	if err != nil {
		return err
	}

	if err := a.reloadAt(ctx, updated.Id); err != nil {
		return err
	}
	a.success("Memory updated successfully!")
	return nil
}

// Delete removes the current entry after confirmation.
func (a *App) Delete(ctx context.Context) error {
	e, ok := a.session.Current()
	if !ok {
		a.warn("No entry selected.")
		return nil
	}

	yes, err := confirm(a.reader, fmt.Sprintf("Delete memory '%s'?", e.Title), a.out)
	if err != nil {
		return err
	}
	if !yes {
		return nil
	}

	if err := a.entryService.Delete(ctx, a.session.Username, e.Id); err != nil {
		return err
	}
	if err := a.Refresh(ctx); err != nil {
		return err
	}
	a.success("Memory deleted successfully.")
	return nil
}
