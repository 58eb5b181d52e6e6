// Package table renders command output as text tables.
package table

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// NewWriter creates a new table writing to w.
func NewWriter(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoWrapText(false)
	return table
}
