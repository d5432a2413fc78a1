package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/payrollview/internal/client/export"
	"github.com/dmitrijs2005/payrollview/internal/client/nav"
	"github.com/dmitrijs2005/payrollview/internal/client/view"
	"github.com/dmitrijs2005/payrollview/internal/common"
)

const (
	minColumnWidth = 4
	maxColumnWidth = 28
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	switch {
	case m.route == common.RouteSummary:
		return m.summaryKey(msg)
	case isDetail(m.route):
		return m.detailKey(msg)
	}
	return m, nil
}

func (m Model) summaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		i := m.table.Cursor()
		if i < 0 || i >= len(m.uploads) {
			return m, nil
		}
		id := m.uploads[i].ID()
		if id == "" {
			m.deps.Notes.Error("", "Upload has no id")
			return m, nil
		}
		cmd := m.navigate(nav.UploadRoute(id))
		return m, cmd
	case key.Matches(msg, m.keys.Refresh):
		m.loadingUploads = true
		return m, m.loadUploadsCmd()
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) detailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.deps.Detail
	switch {
	case key.Matches(msg, m.keys.Back):
		cmd := m.navigate(d.BackRoute())
		return m, cmd
	case key.Matches(msg, m.keys.Download), key.Matches(msg, m.keys.DownloadXLSX):
		format := export.FormatCSV
		if key.Matches(msg, m.keys.DownloadXLSX) {
			format = export.FormatXLSX
		}
		r, err := d.PageRow(m.table.Cursor() + 1)
		if err != nil {
			return m, nil
		}
		return m, m.downloadCmd(r, format)
	case key.Matches(msg, m.keys.NextPage):
		if d.NextPage() {
			m.table.SetCursor(0)
			m.fillDetailTable()
		}
		return m, nil
	case key.Matches(msg, m.keys.PrevPage):
		if d.PrevPage() {
			m.table.SetCursor(0)
			m.fillDetailTable()
		}
		return m, nil
	case key.Matches(msg, m.keys.Bigger), key.Matches(msg, m.keys.Smaller):
		delta := 1
		if key.Matches(msg, m.keys.Smaller) {
			delta = -1
		}
		if d.StepPageSize(delta) {
			m.table.SetCursor(0)
			m.fillDetailTable()
		}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshEmployeesCmd()
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func isDetail(route string) bool {
	_, ok := nav.UploadIDFromRoute(route)
	return ok
}

func (m *Model) fillSummaryTable() {
	if len(m.uploads) == 0 {
		m.setTable(nil, nil)
		return
	}
	keys := m.uploads[0].Keys()
	cols := make([]table.Column, 0, len(keys))
	rows := make([]table.Row, 0, len(m.uploads))
	for _, k := range keys {
		cols = append(cols, table.Column{Title: view.ColumnTitle(k), Width: len(view.ColumnTitle(k))})
	}
	for _, u := range m.uploads {
		row := make(table.Row, len(keys))
		for i, k := range keys {
			row[i] = view.Cell(u.Record, k)
		}
		rows = append(rows, row)
	}
	m.setTable(cols, rows)
}

func (m *Model) fillDetailTable() {
	d := m.deps.Detail
	vcols := d.Columns()
	cols := make([]table.Column, 0, len(vcols))
	for _, c := range vcols {
		cols = append(cols, table.Column{Title: c.Title, Width: len(c.Title)})
	}
	page := d.PageRecords()
	rows := make([]table.Row, 0, len(page))
	for _, r := range page {
		row := make(table.Row, len(vcols))
		for i, c := range vcols {
			if c.Key == view.DownloadColumnKey {
				row[i] = "[d]"
				continue
			}
			row[i] = view.Cell(r, c.Key)
		}
		rows = append(rows, row)
	}
	m.setTable(cols, rows)
}

// setTable replaces columns and rows, sizing each column to its content.
func (m *Model) setTable(cols []table.Column, rows []table.Row) {
	for i := range cols {
		w := cols[i].Width
		for _, r := range rows {
			w = max(w, len([]rune(r[i])))
		}
		cols[i].Width = min(max(w, minColumnWidth), maxColumnWidth)
	}
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}
