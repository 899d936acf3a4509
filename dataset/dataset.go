// Package dataset provides column-oriented numeric tables and CSV utilities.
package dataset

import (
	"errors"
	"fmt"
)

// Table represents a tabular dataset of named float64 columns.
// Columns keep their declaration order and share a uniform length.
type Table struct {
	names   []string
	columns map[string][]float64
	rows    int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		columns: make(map[string][]float64),
	}
}

// AddColumn appends a new named column. It fails if a column with the same
// name already exists, or if the length does not match the existing columns.
func (t *Table) AddColumn(name string, values []float64) error {
	if name == "" {
		return errors.New("column name must not be empty")
	}
	if _, ok := t.columns[name]; ok {
		return fmt.Errorf("column %q already exists", name)
	}
	if len(t.names) > 0 && len(values) != t.rows {
		return fmt.Errorf("column %q has %d values, expected %d", name, len(values), t.rows)
	}
	if len(t.names) == 0 {
		t.rows = len(values)
	}
	t.names = append(t.names, name)
	t.columns[name] = values
	return nil
}

// SetColumn adds a column or replaces an existing one with the same name.
// Replacing does not change the column order.
func (t *Table) SetColumn(name string, values []float64) error {
	if _, ok := t.columns[name]; !ok {
		return t.AddColumn(name, values)
	}
	if len(values) != t.rows {
		return fmt.Errorf("column %q has %d values, expected %d", name, len(values), t.rows)
	}
	t.columns[name] = values
	return nil
}

// Column returns the values of the named column. The returned slice is the
// table's backing storage, not a copy.
func (t *Table) Column(name string) ([]float64, error) {
	values, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	return values, nil
}

// Has reports whether the table contains the named column.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Names returns the column names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	return t.rows
}

// NumCols returns the number of columns in the table.
func (t *Table) NumCols() int {
	return len(t.names)
}
