package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(call string, args ...string) error {
	f.calls = append(f.calls, strings.TrimSpace(call+" "+strings.Join(args, " ")))
	return nil
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Token(context.Context) error {
	f.loggedIn = true
	return f.record("token")
}
func (f *fakeExec) WhoAmI(context.Context) error { return f.record("whoami") }
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Uploads(context.Context) error                 { return f.record("uploads") }
func (f *fakeExec) Upload(_ context.Context, id string) error     { return f.record("upload", id) }
func (f *fakeExec) Employees(_ context.Context, id string) error  { return f.record("employees", id) }
func (f *fakeExec) Refresh(context.Context) error                 { return f.record("refresh") }
func (f *fakeExec) NextPage(context.Context) error                { return f.record("next") }
func (f *fakeExec) PrevPage(context.Context) error                { return f.record("prev") }
func (f *fakeExec) SetPage(_ context.Context, n string) error     { return f.record("page", n) }
func (f *fakeExec) SetPageSize(_ context.Context, n string) error { return f.record("pagesize", n) }
func (f *fakeExec) Export(_ context.Context, row, format string) error {
	return f.record("export", row, format)
}
func (f *fakeExec) Browse(context.Context) error { return f.record("browse") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"uploads",
		"token",
		"help",
		"uploads",
		"upload 7",
		"employees 7",
		"next",
		"prev",
		"page 2",
		"pagesize 20",
		"export 3 xlsx",
		"export 1",
		"view 8",
		"refresh",
		"whoami",
		"browse",
		"foobar",
		"logout",
		"next",
		"exit",
		"uploads",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"token",
		"uploads",
		"upload 7",
		"employees 7",
		"next",
		"prev",
		"page 2",
		"pagesize 20",
		"export 3 xlsx",
		"export 1",
		"employees 8",
		"refresh",
		"whoami",
		"browse",
		"logout",
	}, exec.calls)

	assert.Contains(t, *out, helpLoggedOut)
	assert.Contains(t, *out, helpLoggedIn)
	assert.Contains(t, *out, loginFirst)
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "payroll status> ")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	out := captureOutput(t)

	input := "upload\nemployees\npage\npagesize\nexport\nquit\n"
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Usage: upload <id>")
	assert.Contains(t, *out, "Usage: employees <id>")
	assert.Contains(t, *out, "Usage: page <n>")
	assert.Contains(t, *out, "Usage: pagesize <10|20|50|100>")
	assert.Contains(t, *out, "Usage: export <row> [csv|xlsx]")
}

func TestRunREPL_EOFWithoutNewline(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("uploads")))

	assert.Equal(t, []string{"uploads"}, exec.calls)
}
