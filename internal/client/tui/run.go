package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/payrollview/internal/client/notify"
)

// Run starts the browser and blocks until the user quits or ctx ends.
// Navigation and notifications raised outside the event loop (for example
// by the 401 handler) are forwarded to the program.
func Run(ctx context.Context, deps Deps, opts ...tea.ProgramOption) error {
	m := NewModel(ctx, deps)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)

	events := make(chan tea.Msg, 64)
	forward := func(msg tea.Msg) {
		select {
		case events <- msg:
		default:
		}
	}
	stopNav := deps.Router.OnNavigate(func(path string) { forward(navigateMsg{path: path}) })
	stopNotes := deps.Notes.Subscribe(func(n notify.Notification) { forward(noteMsg{note: n}) })
	defer stopNav()
	defer stopNotes()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case msg := <-events:
				p.Send(msg)
			case <-done:
				return
			}
		}
	}()

	_, err := p.Run()
	return err
}
