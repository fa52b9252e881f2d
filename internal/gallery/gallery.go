// Package gallery aggregates every attached image of a user's entries into
// one browsable list.
package gallery

import "github.com/dmitrijs2005/memorybook/internal/models"

// Columns is the grid width used when browsing the gallery.
const Columns = 4

// Collect flattens the images of entries in entry order, then attachment
// order, keeping the location resolve returns for each. Paths resolve
// rejects are skipped.
func Collect(entries []models.Entry, resolve func(path string) (string, error)) []string {
	var out []string
	for _, e := range entries {
		for _, p := range e.Images {
			if loc, err := resolve(p); err == nil {
				out = append(out, loc)
			}
		}
	}
	return out
}

// Grid splits paths into rows of at most cols items. cols below 1 yields a
// single row.
func Grid(paths []string, cols int) [][]string {
	if len(paths) == 0 {
		return nil
	}
	if cols < 1 {
		cols = len(paths)
	}

	rows := make([][]string, 0, (len(paths)+cols-1)/cols)
	for start := 0; start < len(paths); start += cols {
		end := min(start+cols, len(paths))
		rows = append(rows, paths[start:end])
	}
	return rows
}
