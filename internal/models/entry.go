// Package models defines the journal entry record and the rules every store
// must uphold for it: identity, date stamping, defaults and ordering.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/memorybook/internal/common"
)

// DateLayout renders the creation timestamp, e.g.
// "March 07, 2025 — 04:05 PM". The same string is the sort key.
const DateLayout = "January 02, 2006 — 03:04 PM"

// Entry is one journal record as persisted in a user's entry document.
type Entry struct {
	// Id is assigned once at creation and never changes.
	Id string `json:"id"`

	Date   string   `json:"date"`
	Title  string   `json:"title"`
	Text   string   `json:"text"`
	Images []string `json:"images"`
}

// Content is the user-editable part of an entry.
type Content struct {
	Title  string
	Text   string
	Images []string
}

// NewID returns a fresh 32-char hex identifier.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// FormatDate stamps t with DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NewEntry builds an entry created at now. Title and text are trimmed and an
// empty title becomes common.DefaultTitle. An entry with nothing in it is
// rejected with common.ErrInvalidInput.
func NewEntry(now time.Time, title, text string, images []string) (*Entry, error) {
	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)

	if title == "" && text == "" && len(images) == 0 {
		return nil, fmt.Errorf("write something or attach images: %w", common.ErrInvalidInput)
	}

	e := &Entry{
		Id:   NewID(),
		Date: FormatDate(now),
	}
	e.SetContent(title, text, images)
	return e, nil
}

// SetContent replaces title, text and images wholesale, keeping Id and Date.
func (e *Entry) SetContent(title, text string, images []string) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = common.DefaultTitle
	}
	e.Title = title
	e.Text = strings.TrimSpace(text)
	e.Images = append(make([]string, 0, len(images)), images...)
}

// ShortDate is the calendar part of Date (everything before the dash).
func (e Entry) ShortDate() string {
	d, _, _ := strings.Cut(e.Date, "—")
	return strings.TrimSpace(d)
}

// Clone returns a deep copy.
func (e Entry) Clone() Entry {
	e.Images = append(make([]string, 0, len(e.Images)), e.Images...)
	return e
}

func (e Entry) String() string {
	return fmt.Sprintf("%s - %s", e.ShortDate(), e.Title)
}
