// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

// Package dataset holds the in-memory tabular structure batch passes
// operate on: named string columns, rows in a fixed order.
package dataset

import "fmt"

// Table is an ordered collection of rows with named columns. Cells are
// strings; an empty string is the "no value" sentinel throughout.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New creates an empty table with the given columns.
func New(columns []string) *Table {
	t := &Table{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	copy(t.columns, columns)

	for i, name := range t.columns {
		t.index[name] = i
	}

	return t
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)

	return out
}

// Has reports whether the column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]

	return ok
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// AddColumn appends a column initialized to empty cells. Adding an
// existing column is a no-op.
func (t *Table) AddColumn(name string) {
	if t.Has(name) {
		return
	}

	t.index[name] = len(t.columns)
	t.columns = append(t.columns, name)

	for i := range t.rows {
		t.rows[i] = append(t.rows[i], "")
	}
}

// AppendRow adds a row. The value count must match the column count.
func (t *Table) AppendRow(values []string) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.columns))
	}

	row := make([]string, len(values))
	copy(row, values)
	t.rows = append(t.rows, row)

	return nil
}

// Get returns the cell at row i, column name. The second return is false
// when the column does not exist or i is out of range.
func (t *Table) Get(i int, name string) (string, bool) {
	col, ok := t.index[name]
	if !ok || i < 0 || i >= len(t.rows) {
		return "", false
	}

	return t.rows[i][col], true
}

// Set writes the cell at row i, column name.
func (t *Table) Set(i int, name, value string) error {
	col, ok := t.index[name]
	if !ok {
		return fmt.Errorf("column %q not found", name)
	}

	if i < 0 || i >= len(t.rows) {
		return fmt.Errorf("row %d out of range (%d rows)", i, len(t.rows))
	}

	t.rows[i][col] = value

	return nil
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.rows[i]))
	copy(row, t.rows[i])

	return row
}
