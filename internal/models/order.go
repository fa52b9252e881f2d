package models

import "sort"

// DateLess orders entries by their formatted date string. The comparison is
// lexical, so it does not follow the calendar across months or AM/PM.
// Switching to a numeric timestamp means changing only this function.
func DateLess(a, b Entry) bool {
	return a.Date < b.Date
}

// SortByDate sorts entries in place with DateLess. Equal dates keep their
// stored relative order.
func SortByDate(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return DateLess(entries[i], entries[j])
	})
}
