package report

import "strings"

// Align selects cell alignment within a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes a table column: header text and cell alignment.
type Column struct {
	Name  string
	Align Align
}

// Table renders rows as aligned text with internal borders only, the layout
// the statistics reports are written in:
//
//	    Parameter     | Value
//	------------------+-------
//	 Images           |    12
//	 Annotated images |     7
//
// Headers are centered; cells follow their column's alignment.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends one row. Missing trailing cells render empty.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// String renders the table without a trailing newline.
func (t *Table) String() string {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = len(col.Name)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var lines []string

	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = center(col.Name, widths[i])
	}
	lines = append(lines, renderRow(headers))

	separators := make([]string, len(t.columns))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width+2)
	}
	lines = append(lines, strings.Join(separators, "+"))

	for _, row := range t.rows {
		cells := make([]string, len(t.columns))
		for i := range t.columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if t.columns[i].Align == AlignRight {
				cells[i] = pad(widths[i]-len(cell)) + cell
			} else {
				cells[i] = cell + pad(widths[i]-len(cell))
			}
		}
		lines = append(lines, renderRow(cells))
	}

	return strings.Join(lines, "\n")
}

func renderRow(cells []string) string {
	return strings.TrimRight(" "+strings.Join(cells, " | "), " ")
}

func center(s string, width int) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return pad(left) + s + pad(gap-left)
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
