package goquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/skowalczyk/forage"
)

// Placeholder tokens mark table positions in extracted text until the
// rendered tables are substituted back. The bracketed namespace makes
// accidental collisions with body text implausible; tests assert none
// survive substitution.
const (
	tablePlaceholderPrefix = "[[forage:table:"
	tablePlaceholderSuffix = "]]"
)

// tablePlaceholder returns the placeholder token for the nth table on a
// page (1-based).
func tablePlaceholder(n int) string {
	return fmt.Sprintf("%s%d%s", tablePlaceholderPrefix, n, tablePlaceholderSuffix)
}

// TableGrid is a rectangularized table: an ordered sequence of rows, each
// an ordered sequence of cell strings, right-padded so every row has the
// width of the widest row.
type TableGrid [][]string

// GridFromTable collects every row of an HTML table into a TableGrid.
// A cell's flattened text is duplicated colspan times in sequence. Rowspan
// is not propagated to subsequent rows; downstream renderings only need the
// padded grid shape, so the duplication is deliberately left out.
func GridFromTable(table *goquery.Selection) TableGrid {
	var grid TableGrid
	maxCols := 0

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			text := joinedText(cell)
			for i := 0; i < colspan(cell); i++ {
				cells = append(cells, text)
			}
		})
		grid = append(grid, cells)
		if len(cells) > maxCols {
			maxCols = len(cells)
		}
	})

	for i, row := range grid {
		for len(row) < maxCols {
			row = append(row, "")
		}
		grid[i] = row
	}

	return grid
}

// colspan returns the cell's colspan attribute, defaulting to 1 for absent
// or malformed values.
func colspan(cell *goquery.Selection) int {
	attr, ok := cell.Attr("colspan")
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(attr))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Render serializes the grid in the given format. Rendering is
// deterministic: the same grid always produces the same string. An empty
// grid renders as the empty string.
func (g TableGrid) Render(format forage.TableFormat) string {
	if format == forage.TableText {
		return g.renderText()
	}
	return g.renderMarkdown()
}

// renderMarkdown emits a header row, a dashed separator, and data rows,
// each cell left-justified to its column's maximum width across all rows.
func (g TableGrid) renderMarkdown() string {
	if len(g) == 0 || len(g[0]) == 0 {
		return ""
	}

	widths := make([]int, len(g[0]))
	for _, row := range g {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var lines []string
	lines = append(lines, markdownRow(g[0], widths))

	separator := make([]string, len(widths))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}
	lines = append(lines, "| "+strings.Join(separator, " | ")+" |")

	for _, row := range g[1:] {
		lines = append(lines, markdownRow(row, widths))
	}

	return strings.Join(lines, "\n")
}

// markdownRow renders one grid row with cells padded to their column widths.
func markdownRow(row []string, widths []int) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		width := 0
		if i < len(widths) {
			width = widths[i]
		}
		cells[i] = cell + strings.Repeat(" ", max(0, width-len(cell)))
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// renderText emits the plain-text rendering: TABLE START, one ROW line per
// grid row, TABLE END.
func (g TableGrid) renderText() string {
	if len(g) == 0 {
		return ""
	}

	lines := make([]string, 0, len(g)+2)
	lines = append(lines, "TABLE START")
	for i, row := range g {
		lines = append(lines, fmt.Sprintf("ROW %d: %s", i+1, strings.Join(row, " | ")))
	}
	lines = append(lines, "TABLE END")

	return strings.Join(lines, "\n")
}
