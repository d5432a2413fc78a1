// Package tui is the full-screen payroll browser: the uploads summary, the
// per-upload employee table with pagination, and row downloads.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/payrollview/internal/client/export"
	"github.com/dmitrijs2005/payrollview/internal/client/models"
	"github.com/dmitrijs2005/payrollview/internal/client/nav"
	"github.com/dmitrijs2005/payrollview/internal/client/notify"
	"github.com/dmitrijs2005/payrollview/internal/client/view"
	"github.com/dmitrijs2005/payrollview/internal/common"
	"github.com/dmitrijs2005/payrollview/internal/logging"
)

// UploadLister loads the uploads summary.
type UploadLister interface {
	ListUploads(ctx context.Context) ([]models.Upload, error)
}

// Session is the part of the credential store the browser reads.
type Session interface {
	IsAuthenticated(ctx context.Context) bool
	User(ctx context.Context) (*models.User, error)
}

// Deps are the collaborators shared with the REPL.
type Deps struct {
	Uploads UploadLister
	Detail  *view.DetailView
	Notes   *notify.Center
	Router  *nav.Router
	Session Session
	Logger  logging.Logger
}

type uploadsLoadedMsg struct {
	uploads []models.Upload
	err     error
}

type employeesLoadedMsg struct {
	uploadID string
	err      error
}

type downloadDoneMsg struct {
	location string
	err      error
}

type navigateMsg struct {
	path string
}

type noteMsg struct {
	note notify.Notification
}

type tickMsg time.Time

const tickInterval = 500 * time.Millisecond

type Model struct {
	ctx  context.Context
	deps Deps
	keys KeyMap
	help help.Model

	route    string
	user     *models.User
	width    int
	height   int
	showHelp bool

	uploads        []models.Upload
	loadingUploads bool
	table          table.Model

	now time.Time
}

func NewModel(ctx context.Context, deps Deps) Model {
	keys := DefaultKeyMap()
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(12),
		table.WithKeyMap(tableKeyMap(keys)),
	)

	route := deps.Router.CurrentPath()
	if !deps.Session.IsAuthenticated(ctx) {
		route = common.RouteLogin
	} else if _, ok := nav.UploadIDFromRoute(route); !ok {
		route = common.RouteSummary
	}
	if route != deps.Router.CurrentPath() {
		deps.Router.Navigate(route)
	}
	user, _ := deps.Session.User(ctx)

	return Model{
		ctx:   ctx,
		deps:  deps,
		keys:  keys,
		help:  help.New(),
		route: route,
		user:  user,
		table: t,
		now:   time.Now(),
	}
}

// Route is the screen currently shown.
func (m Model) Route() string { return m.route }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.enter(m.route), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) loadUploadsCmd() tea.Cmd {
	return func() tea.Msg {
		ups, err := m.deps.Uploads.ListUploads(m.ctx)
		return uploadsLoadedMsg{uploads: ups, err: err}
	}
}

func (m Model) loadEmployeesCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.deps.Detail.Mount(m.ctx, id)
		return employeesLoadedMsg{uploadID: id, err: err}
	}
}

func (m Model) refreshEmployeesCmd() tea.Cmd {
	id := m.deps.Detail.UploadID()
	return func() tea.Msg {
		err := m.deps.Detail.Refresh(m.ctx)
		return employeesLoadedMsg{uploadID: id, err: err}
	}
}

func (m Model) downloadCmd(r models.Record, format export.Format) tea.Cmd {
	return func() tea.Msg {
		loc, err := m.deps.Detail.DownloadRow(m.ctx, r, format)
		return downloadDoneMsg{location: loc, err: err}
	}
}

// enter returns the command that loads the screen of route.
func (m *Model) enter(route string) tea.Cmd {
	if id, ok := nav.UploadIDFromRoute(route); ok {
		m.fillDetailTable()
		return m.loadEmployeesCmd(id)
	}
	if route == common.RouteSummary {
		m.loadingUploads = true
		return m.loadUploadsCmd()
	}
	return nil
}

// navigate switches screens and records the route with the router.
func (m *Model) navigate(route string) tea.Cmd {
	m.route = route
	m.table.SetCursor(0)
	m.deps.Router.Navigate(route)
	return m.enter(route)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-10, 3))
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case noteMsg:
		m.now = time.Now()
		return m, nil

	case navigateMsg:
		if msg.path == m.route {
			return m, nil
		}
		m.route = msg.path
		if msg.path == common.RouteLogin {
			m.user = nil
		}
		return m, m.enter(msg.path)

	case uploadsLoadedMsg:
		m.loadingUploads = false
		if msg.err != nil {
			m.deps.Logger.Error(m.ctx, "load uploads", "error", msg.err)
			m.deps.Notes.Error("", "Failed to fetch uploads")
			return m, nil
		}
		m.uploads = msg.uploads
		if m.route == common.RouteSummary {
			m.fillSummaryTable()
		}
		return m, nil

	case employeesLoadedMsg:
		if id, ok := nav.UploadIDFromRoute(m.route); !ok || id != msg.uploadID {
			m.deps.Logger.Debug(m.ctx, "ignoring employees for a screen no longer shown", "upload_id", msg.uploadID)
			return m, nil
		}
		m.fillDetailTable()
		return m, nil

	case downloadDoneMsg:
		if msg.err == nil {
			m.deps.Logger.Info(m.ctx, "saved", "location", msg.location)
			m.deps.Notes.Info(view.SavedNoteKey, "Saved to "+msg.location)
			m.now = time.Now()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}
