// Package session holds the state of one logged-in user between commands:
// who is logged in, their entries in display order, which entry is current
// and the chosen background image.
package session

import "github.com/dmitrijs2005/memorybook/internal/models"

// Session is created by a successful login and discarded on logout.
type Session struct {
	Username string

	// Entries are sorted with models.DateLess.
	Entries []models.Entry

	// Cursor indexes Entries; -1 when there are none.
	Cursor int

	// Background is a path to an image chosen for this session only.
	Background string
}

// New starts a session for username with no entries loaded.
func New(username string) *Session {
	return &Session{Username: username, Cursor: -1}
}

// Reload replaces the entry list, sorts it and moves the cursor to the
// newest entry.
func (s *Session) Reload(entries []models.Entry) {
	s.Entries = make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		s.Entries = append(s.Entries, e.Clone())
	}
	models.SortByDate(s.Entries)
	s.Cursor = len(s.Entries) - 1
}

// Current returns the entry under the cursor.
func (s *Session) Current() (models.Entry, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Entries) {
		return models.Entry{}, false
	}
	return s.Entries[s.Cursor], true
}

// Next moves towards newer entries. It reports false and leaves the cursor
// in place at the end of the list.
func (s *Session) Next() bool {
	if s.Cursor+1 >= len(s.Entries) {
		return false
	}
	s.Cursor++
	return true
}

// Prev moves towards older entries.
func (s *Session) Prev() bool {
	if s.Cursor <= 0 {
		return false
	}
	s.Cursor--
	return true
}

// Select points the cursor at index i.
func (s *Session) Select(i int) bool {
	if i < 0 || i >= len(s.Entries) {
		return false
	}
	s.Cursor = i
	return true
}

// SelectID points the cursor at the entry with the given id.
func (s *Session) SelectID(id string) bool {
	for i := range s.Entries {
		if s.Entries[i].Id == id {
			s.Cursor = i
			return true
		}
	}
	return false
}
