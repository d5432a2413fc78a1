package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/payrollview/internal/client/notify"
	"github.com/dmitrijs2005/payrollview/internal/common"
)

const loginHelp = `You are not signed in.

Quit with q, then run "token" in the payroll REPL to store your access
token, or start the client again once PAYROLL_BASE_URL points at a
server you hold a token for.`

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	switch {
	case m.route == common.RouteLogin:
		b.WriteString(SubtitleStyle.Render(loginHelp))
	case m.route == common.RouteSummary:
		b.WriteString(m.summaryView())
	case isDetail(m.route):
		b.WriteString(m.detailView())
	}

	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) headerView() string {
	title := "Uploaded Files"
	if isDetail(m.route) {
		title = m.deps.Detail.Title()
	}
	left := TitleStyle.Render(title)
	if m.route == common.RouteLogin {
		return left
	}
	ident := IdentityStyle.Render(fmt.Sprintf("%s  %s  %s", m.user.Initials(), m.user.DisplayName(), m.user.EmailOrDefault()))
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(ident), 2)
	return left + strings.Repeat(" ", gap) + ident
}

func (m Model) summaryView() string {
	if m.loadingUploads && len(m.uploads) == 0 {
		return LoadingStyle.Render("Loading uploads...")
	}
	if len(m.uploads) == 0 {
		return SubtitleStyle.Render("No uploads yet.")
	}
	return TableStyle.Render(m.table.View()) + "\n" +
		PaginationStyle.Render(fmt.Sprintf("Total %d files", len(m.uploads)))
}

func (m Model) detailView() string {
	d := m.deps.Detail
	var b strings.Builder
	b.WriteString(SubtitleStyle.Render(d.Subtitle()))
	b.WriteString("\n")
	if d.Loading() {
		b.WriteString(LoadingStyle.Render("Loading employees..."))
		return b.String()
	}
	if d.Total() == 0 {
		b.WriteString(SubtitleStyle.Render("No data"))
		return b.String()
	}
	b.WriteString(TableStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(PaginationStyle.Render(fmt.Sprintf("Page %d/%d · %d / page · %s",
		d.Page(), d.PageCount(), d.PageSize(), d.TotalLabel())))
	return b.String()
}

func (m Model) statusView() string {
	active := m.deps.Notes.Active(m.now)
	parts := make([]string, 0, len(active))
	for _, n := range active {
		parts = append(parts, noteStyle(n.Kind).Render(n.Content))
	}
	return strings.Join(parts, "  ")
}

func noteStyle(k notify.Kind) lipgloss.Style {
	switch k {
	case notify.KindLoading:
		return LoadingStyle
	case notify.KindSuccess:
		return SuccessStyle
	case notify.KindError:
		return ErrorStyle
	default:
		return InfoStyle
	}
}
