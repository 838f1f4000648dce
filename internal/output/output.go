// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package output renders command results as tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// Format names accepted by the --output flag.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// OutputOptions holds the user-selected output format.
type OutputOptions struct {
	Format string
}

// AddOutputFlags registers the --output flag with the given default.
func (o *OutputOptions) AddOutputFlags(cmd *cobra.Command, def string) {
	cmd.Flags().StringVarP(&o.Format, "output", "o", def, "Output format: table or json")
}

// Resolve validates the chosen format.
func (o *OutputOptions) Resolve() error {
	switch o.Format {
	case OutputTable, OutputJSON:
		return nil
	}
	return fmt.Errorf("unknown output format %q (choose table or json)", o.Format)
}

// Is reports whether the chosen format equals f.
func (o *OutputOptions) Is(f string) bool { return o.Format == f }

// JSON prints v as indented JSON on stdout.
func JSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table is a thin wrapper over tablewriter with the header-then-rows
// shape the commands use.
type Table struct {
	w *tablewriter.Table
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader(headers)
	w.SetBorder(false)
	w.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	w.SetAlignment(tablewriter.ALIGN_LEFT)
	w.SetAutoWrapText(false)
	return &Table{w: w}
}

// AddRow appends one row of cells.
func (t *Table) AddRow(cells ...string) {
	t.w.Append(cells)
}

// Render prints the table.
func (t *Table) Render() {
	t.w.Render()
}
