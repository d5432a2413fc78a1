package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/payrollview/internal/client/models"
	"github.com/dmitrijs2005/payrollview/internal/client/view"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderTable draws an aligned, bordered table.
func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

// recordRows renders one row per record over keys. cell, when set, overrides
// the text for a key.
func recordRows(recs []models.Record, keys []string, cell func(i int, r models.Record, key string) (string, bool)) [][]string {
	rows := make([][]string, 0, len(recs))
	for i, r := range recs {
		row := make([]string, len(keys))
		for j, k := range keys {
			if cell != nil {
				if s, ok := cell(i, r, k); ok {
					row[j] = s
					continue
				}
			}
			row[j] = view.Cell(r, k)
		}
		rows = append(rows, row)
	}
	return rows
}
