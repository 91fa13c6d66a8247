package dataprocessing

import (
	"strconv"
	"strings"
	"time"
)

// ColumnType is the inferred type of a table column.
type ColumnType string

const (
	TypeInt    ColumnType = "int"
	TypeFloat  ColumnType = "float"
	TypeDate   ColumnType = "date"
	TypeString ColumnType = "string"
)

// dateLayouts are the layouts tried when parsing date cells, in order.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
	"01/02/2006",
}

// Table is an in-memory tabular dataset loaded from a delimited file.
// Cells are kept as strings; column types are inferred from the values.
// An empty cell (or a literal NA/NaN/null marker) counts as missing.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
	Types   []ColumnType
}

// NewTable builds a table from a header and rows and infers column types.
func NewTable(name string, columns []string, rows [][]string) *Table {
	t := &Table{
		Name:    name,
		Columns: columns,
		Rows:    rows,
		Types:   make([]ColumnType, len(columns)),
	}
	for i := range columns {
		t.Types[i] = t.inferColumnType(i)
	}
	return t
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.Columns)
}

// ColumnIndex returns the index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// RenameColumn renames a column in place. Returns false if the source column
// does not exist.
func (t *Table) RenameColumn(from, to string) bool {
	idx := t.ColumnIndex(from)
	if idx < 0 {
		return false
	}
	t.Columns[idx] = to
	return true
}

// Cell returns the raw cell value at (row, column index); short rows yield "".
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Column returns a copy of all values in the named column.
// A nil slice means the column does not exist.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i := range t.Rows {
		values[i] = t.Cell(i, idx)
	}
	return values
}

// SetColumn creates or overwrites the named column with the given values and
// re-infers its type. Values shorter than the row count are padded with
// missing cells.
func (t *Table) SetColumn(name string, values []string) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		t.Columns = append(t.Columns, name)
		t.Types = append(t.Types, TypeString)
		idx = len(t.Columns) - 1
	}
	for i := range t.Rows {
		// Pad short rows so the assignment lands in the right slot
		for len(t.Rows[i]) <= idx {
			t.Rows[i] = append(t.Rows[i], "")
		}
		if i < len(values) {
			t.Rows[i][idx] = values[i]
		} else {
			t.Rows[i][idx] = ""
		}
	}
	t.Types[idx] = t.inferColumnType(idx)
}

// ColumnType returns the inferred type for the named column; TypeString for
// unknown columns.
func (t *Table) ColumnType(name string) ColumnType {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return TypeString
	}
	return t.Types[idx]
}

// MissingCount returns the number of missing cells in the named column.
func (t *Table) MissingCount(name string) int {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return 0
	}
	count := 0
	for i := range t.Rows {
		if IsMissing(t.Cell(i, idx)) {
			count++
		}
	}
	return count
}

// NonNullCount returns the number of populated cells in the named column.
func (t *Table) NonNullCount(name string) int {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return 0
	}
	return len(t.Rows) - t.MissingCount(name)
}

// Head returns up to n leading rows.
func (t *Table) Head(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	head := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(t.Columns))
		for j := range t.Columns {
			row[j] = t.Cell(i, j)
		}
		head[i] = row
	}
	return head
}

// FloatColumn returns the parseable numeric values of the named column,
// skipping missing and unparseable cells.
func (t *Table) FloatColumn(name string) []float64 {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]float64, 0, len(t.Rows))
	for i := range t.Rows {
		cell := t.Cell(i, idx)
		if IsMissing(cell) {
			continue
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
			values = append(values, v)
		}
	}
	return values
}

// ApproxMemoryBytes estimates the in-memory footprint of the table.
func (t *Table) ApproxMemoryBytes() int64 {
	var total int64
	for _, c := range t.Columns {
		total += int64(len(c))
	}
	for _, row := range t.Rows {
		for _, cell := range row {
			total += int64(len(cell)) + 16 // string header overhead
		}
	}
	return total
}

// IsMissing reports whether a cell value denotes a missing entry.
func IsMissing(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "na", "nan", "null":
		return true
	}
	return false
}

// inferColumnType scans the non-missing cells of a column and picks the
// narrowest type that fits every value: int, then float, then date, then
// string. A column with no populated cells stays string.
func (t *Table) inferColumnType(idx int) ColumnType {
	allInt := true
	allFloat := true
	allDate := true
	seen := false

	for i := range t.Rows {
		cell := strings.TrimSpace(t.Cell(i, idx))
		if IsMissing(cell) {
			continue
		}
		seen = true

		if allInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				allFloat = false
			}
		}
		if allDate {
			if _, ok := ParseDate(cell); !ok {
				allDate = false
			}
		}
		if !allInt && !allFloat && !allDate {
			return TypeString
		}
	}

	switch {
	case !seen:
		return TypeString
	case allInt:
		return TypeInt
	case allFloat:
		return TypeFloat
	case allDate:
		return TypeDate
	default:
		return TypeString
	}
}

// ParseDate tries each supported layout against the cell value.
func ParseDate(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, cell); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
