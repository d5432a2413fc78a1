package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Token(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
	Uploads(ctx context.Context) error
	Upload(ctx context.Context, id string) error
	Employees(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	SetPage(ctx context.Context, n string) error
	SetPageSize(ctx context.Context, n string) error
	Export(ctx context.Context, row, format string) error
	Browse(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: token, help, exit"
	helpLoggedIn  = "Available commands: uploads, upload <id>, employees <id>, next, prev, page <n>, " +
		"pagesize <n>, refresh, export <row> [csv|xlsx], browse, whoami, token, logout, exit"
	loginFirst = `Not signed in. Run "token" first.`
)

// runREPL starts a simple read–eval–print loop for the payroll CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. Data commands are refused until a token is
// stored. The loop exits on EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("payroll %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "token":
			_ = a.Token(ctx)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !knownCommand(cmd) {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !a.isLoggedIn(ctx) {
			printlnFn(loginFirst)
			continue
		}

		switch cmd {
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "uploads", "l":
			_ = a.Uploads(ctx)
		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <id>")
				continue
			}
			_ = a.Upload(ctx, args[0])
		case "employees", "view":
			if len(args) == 0 {
				printlnFn("Usage: employees <id>")
				continue
			}
			_ = a.Employees(ctx, args[0])
		case "refresh":
			_ = a.Refresh(ctx)
		case "next", "n":
			_ = a.NextPage(ctx)
		case "prev", "p":
			_ = a.PrevPage(ctx)
		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			_ = a.SetPage(ctx, args[0])
		case "pagesize":
			if len(args) == 0 {
				printlnFn("Usage: pagesize <10|20|50|100>")
				continue
			}
			_ = a.SetPageSize(ctx, args[0])
		case "export":
			if len(args) == 0 {
				printlnFn("Usage: export <row> [csv|xlsx]")
				continue
			}
			format := ""
			if len(args) > 1 {
				format = args[1]
			}
			_ = a.Export(ctx, args[0], format)
		case "browse":
			_ = a.Browse(ctx)
		}
	}
}

func knownCommand(cmd string) bool {
	switch cmd {
	case "whoami", "logout", "uploads", "l", "upload", "employees", "view", "refresh",
		"next", "n", "prev", "p", "page", "pagesize", "export", "browse":
		return true
	}
	return false
}
