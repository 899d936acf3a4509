package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Delimiter rune // Field delimiter (default: ',')
	HasHeader bool // Whether CSV has a header row (default: true)
	SkipRows  int  // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
		HasHeader: true,
	}
}

// LoadCSV loads a numeric table from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a numeric table from an io.Reader.
//
// Every column must be numeric. Rows containing an empty, NA, or otherwise
// unparsable cell are skipped. Without a header row, columns are named
// c0, c1, ... in file order.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // malformed rows are skipped, not fatal

	// Skip rows if needed
	for i := 0; i < opts.SkipRows; i++ {
		_, err := reader.Read()
		if err != nil {
			return nil, err
		}
	}

	var names []string
	var values [][]float64

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		names = make([]string, len(header))
		for i, h := range header {
			names[i] = strings.TrimSpace(strings.Trim(h, "\""))
		}
		values = make([][]float64, len(names))
	}

	// Read data rows
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		// No header - synthesize column names from the first record
		if names == nil {
			names = make([]string, len(record))
			for i := range record {
				names[i] = "c" + strconv.Itoa(i)
			}
			values = make([][]float64, len(names))
		}

		if len(record) != len(names) {
			continue // Skip malformed rows
		}

		row := make([]float64, len(record))
		ok := true
		for i, cell := range record {
			cell = strings.TrimSpace(strings.Trim(cell, "\""))
			if cell == "" || cell == "NA" || cell == "NaN" || cell == "null" {
				ok = false
				break
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				ok = false
				break
			}
			row[i] = v
		}
		if !ok {
			continue // Skip rows with invalid values
		}

		for i, v := range row {
			values[i] = append(values[i], v)
		}
	}

	if len(names) == 0 || len(values[0]) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	table := NewTable()
	for i, name := range names {
		if err := table.AddColumn(name, values[i]); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// SaveCSV saves a table to a CSV file.
func SaveCSV(table *Table, filename string, delimiter rune) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	sep := string(delimiter)
	names := table.Names()

	// Write header
	writer.WriteString(strings.Join(names, sep))
	writer.WriteString("\n")

	cols := make([][]float64, len(names))
	for j, name := range names {
		col, err := table.Column(name)
		if err != nil {
			return err
		}
		cols[j] = col
	}

	// Write data
	for i := 0; i < table.NumRows(); i++ {
		for j := range cols {
			if j > 0 {
				writer.WriteString(sep)
			}
			writer.WriteString(strconv.FormatFloat(cols[j][i], 'f', -1, 64))
		}
		writer.WriteString("\n")
	}

	return nil
}
