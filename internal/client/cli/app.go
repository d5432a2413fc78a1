package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/payrollview/internal/client/api"
	"github.com/dmitrijs2005/payrollview/internal/client/config"
	"github.com/dmitrijs2005/payrollview/internal/client/export"
	"github.com/dmitrijs2005/payrollview/internal/client/nav"
	"github.com/dmitrijs2005/payrollview/internal/client/notify"
	"github.com/dmitrijs2005/payrollview/internal/client/payroll"
	"github.com/dmitrijs2005/payrollview/internal/client/session"
	"github.com/dmitrijs2005/payrollview/internal/client/tui"
	"github.com/dmitrijs2005/payrollview/internal/client/view"
	"github.com/dmitrijs2005/payrollview/internal/common"
	"github.com/dmitrijs2005/payrollview/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	store   session.Store
	router  *nav.Router
	client  *api.Client
	payroll *payroll.Service
	notes   *notify.Center
	detail  *view.DetailView
	reader  *bufio.Reader
	out     io.Writer

	// browse runs the full-screen browser; replaced in tests.
	browse    func(ctx context.Context, deps tui.Deps) error
	stopNotes func()
}

// NewApp opens the session database and builds the export sink described
// by c, then wires the remaining components around them.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, c.DBPath)
	if err != nil {
		logger.Error(ctx, "initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	saver, err := newSaver(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newApp(ctx, c, logger, db, saver, os.Stdin, os.Stdout), nil
}

func newSaver(ctx context.Context, c *config.Config) (export.Saver, error) {
	switch c.ExportTarget {
	case "s3":
		s, err := export.NewS3Saver(ctx, export.S3Config{
			Bucket:          c.S3.Bucket,
			Prefix:          c.S3.Prefix,
			Region:          c.S3.Region,
			Endpoint:        c.S3.Endpoint,
			AccessKeyID:     c.S3.AccessKeyID,
			SecretAccessKey: c.S3.SecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 export target: %w", err)
		}
		return s, nil
	case "http":
		return export.HTTPSaver{BaseURL: c.ExportURL, Client: &http.Client{Timeout: c.Timeout}}, nil
	default:
		return export.DirSaver{Dir: c.ExportDir}, nil
	}
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, db *sql.DB, saver export.Saver, in io.Reader, out io.Writer) *App {
	store := session.NewStore(db)

	start := common.RouteSummary
	if !store.IsAuthenticated(ctx) {
		start = common.RouteLogin
	}
	router := nav.NewRouter(start)

	client := api.NewDefault(c.BaseURL, store, router,
		api.WithTimeout(c.Timeout),
		api.WithLogger(logger),
	)
	svc := payroll.NewService(client, logger)
	notes := notify.NewCenter()
	detail := view.New(svc, saver, notes, logger)
	if err := detail.SetPageSize(c.PageSize); err != nil {
		logger.Warn(ctx, "ignoring page size", "error", err)
	}

	a := &App{
		config:  c,
		logger:  logger,
		db:      db,
		store:   store,
		router:  router,
		client:  client,
		payroll: svc,
		notes:   notes,
		detail:  detail,
		reader:  bufio.NewReader(in),
		out:     out,
		browse: func(ctx context.Context, deps tui.Deps) error {
			return tui.Run(ctx, deps)
		},
	}
	return a
}

// Run starts the configured front-end and blocks until the user leaves it.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if a.config.UI == "tui" {
		return a.browse(ctx, a.tuiDeps())
	}

	a.stopNotes = a.notes.Subscribe(a.printNote)
	fmt.Fprintln(a.out, "Payroll CLI (type 'help' for commands)")
	if !a.isLoggedIn(ctx) {
		fmt.Fprintln(a.out, loginFirst)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// Close releases the session database.
func (a *App) Close() {
	if a.stopNotes != nil {
		a.stopNotes()
		a.stopNotes = nil
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.router.CurrentPath() != common.RouteLogin && a.store.IsAuthenticated(ctx)
}

func (a *App) getStatus() string {
	u, err := a.store.User(context.Background())
	if err != nil {
		a.logger.Debug(context.Background(), "read cached user", "error", err)
	}
	return fmt.Sprintf("(%s %s)", u.DisplayName(), a.router.CurrentPath())
}

func (a *App) printNote(n notify.Notification) {
	switch n.Kind {
	case notify.KindError:
		fmt.Fprintln(a.out, "error:", n.Content)
	case notify.KindLoading:
		fmt.Fprintln(a.out, "..", n.Content)
	default:
		fmt.Fprintln(a.out, n.Content)
	}
}

func (a *App) tuiDeps() tui.Deps {
	return tui.Deps{
		Uploads: a.payroll,
		Detail:  a.detail,
		Notes:   a.notes,
		Router:  a.router,
		Session: a.store,
		Logger:  a.logger,
	}
}

// Browse hands the terminal to the full-screen browser and returns to the
// prompt when it exits.
func (a *App) Browse(ctx context.Context) error {
	if a.stopNotes != nil {
		a.stopNotes()
		defer func() { a.stopNotes = a.notes.Subscribe(a.printNote) }()
	}
	if err := a.browse(ctx, a.tuiDeps()); err != nil {
		return a.report(ctx, err)
	}
	return nil
}
