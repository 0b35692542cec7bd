package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/edaforge/wildcards/wildcards"
	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

// Write prints the categories as an aligned table with one row per
// category. Column widths are measured in terminal cells so translated
// descriptions with wide runes stay aligned. The header is printed in
// bold when bold is set.
func Write(w io.Writer, cats []wildcards.Category, bold bool) error {
	rows := make([][3]string, 0, len(cats)+1)
	rows = append(rows, [3]string{"NAME", "DESCRIPTION", "EXTENSIONS"})

	for _, c := range cats {
		exts := make([]string, 0, len(c.Filter.Extensions))
		for _, ext := range c.Filter.Extensions {
			exts = append(exts, "*."+ext)
		}
		rows = append(rows, [3]string{c.Name, c.Filter.Title(), strings.Join(exts, " ")})
	}

	var widths [2]int
	for _, r := range rows {
		for i := range widths {
			if cw := runewidth.StringWidth(r[i]); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for i, r := range rows {
		line := runewidth.FillRight(r[0], widths[0]) + columnGap +
			runewidth.FillRight(r[1], widths[1]) + columnGap + r[2]

		if i == 0 && bold {
			line = "\033[1m" + line + "\033[0m"
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("listing write error: %w", err)
		}
	}

	return nil
}
