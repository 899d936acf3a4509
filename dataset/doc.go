// Package dataset provides column-oriented numeric tables and CSV utilities.
//
// This package includes the Table type for representing tabular datasets of
// named float64 columns, along with functions for CSV loading and saving and
// basic column statistics.
//
// # Creating a Table
//
// Build a table column by column:
//
//	table := dataset.NewTable()
//	table.AddColumn("citric acid", []float64{0.0, 0.3, 0.6})
//	table.AddColumn("pH", []float64{3.5, 3.4, 3.3})
//
// # Loading from CSV
//
// Load a table from a CSV file:
//
//	// Comma-separated with a header row
//	table, err := dataset.LoadCSV("data.csv", nil)
//
//	// Semicolon-separated (e.g. the UCI wine-quality datasets)
//	opts := dataset.DefaultCSVOptions()
//	opts.Delimiter = ';'
//	table, err := dataset.LoadCSV("winequality-red.csv", opts)
//
// Every column must be numeric; rows containing empty or unparsable cells are
// skipped.
//
// # Basic Statistics
//
// Calculate summary statistics of a column:
//
//	col, _ := table.Column("pH")
//	mean := dataset.Mean(col)
//	std := dataset.Std(col)
package dataset
