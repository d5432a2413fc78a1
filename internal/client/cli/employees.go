package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/payrollview/internal/client/export"
	"github.com/dmitrijs2005/payrollview/internal/client/models"
	"github.com/dmitrijs2005/payrollview/internal/client/nav"
	"github.com/dmitrijs2005/payrollview/internal/client/view"
)

var errNoUploadOpen = errors.New("no upload open")

// Employees opens the detail view of an upload and prints its first page.
// Asking again for the upload already shown reprints the current page.
func (a *App) Employees(ctx context.Context, id string) error {
	load := a.detail.Mount
	if cur, ok := nav.UploadIDFromRoute(a.router.CurrentPath()); ok && cur == id {
		load = a.detail.SetUploadID
	}
	a.router.Navigate(nav.UploadRoute(id))
	if err := load(ctx, id); err != nil {
		return a.report(ctx, err)
	}
	a.printPage()
	return nil
}

// Refresh reloads the open upload.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.requireDetail(); err != nil {
		return err
	}
	if err := a.detail.Refresh(ctx); err != nil {
		return a.report(ctx, err)
	}
	a.printPage()
	return nil
}

func (a *App) NextPage(ctx context.Context) error {
	if err := a.requireDetail(); err != nil {
		return err
	}
	if !a.detail.NextPage() {
		fmt.Fprintln(a.out, "Already on the last page.")
		return nil
	}
	a.printPage()
	return nil
}

func (a *App) PrevPage(ctx context.Context) error {
	if err := a.requireDetail(); err != nil {
		return err
	}
	if !a.detail.PrevPage() {
		fmt.Fprintln(a.out, "Already on the first page.")
		return nil
	}
	a.printPage()
	return nil
}

func (a *App) SetPage(ctx context.Context, n string) error {
	if err := a.requireDetail(); err != nil {
		return err
	}
	p, err := strconv.Atoi(n)
	if err != nil {
		return a.report(ctx, fmt.Errorf("page %q is not a number", n))
	}
	if err := a.detail.SetPage(p); err != nil {
		return a.report(ctx, err)
	}
	a.printPage()
	return nil
}

func (a *App) SetPageSize(ctx context.Context, n string) error {
	if err := a.requireDetail(); err != nil {
		return err
	}
	size, err := strconv.Atoi(n)
	if err != nil {
		return a.report(ctx, fmt.Errorf("page size %q is not a number", n))
	}
	if err := a.detail.SetPageSize(size); err != nil {
		return a.report(ctx, err)
	}
	a.printPage()
	return nil
}

// Export saves row n of the current page. An empty format uses the
// configured default.
func (a *App) Export(ctx context.Context, n, format string) error {
	if err := a.requireDetail(); err != nil {
		return err
	}
	if format == "" {
		format = a.config.ExportFormat
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return a.report(ctx, err)
	}
	row, err := strconv.Atoi(n)
	if err != nil {
		return a.report(ctx, fmt.Errorf("row %q is not a number", n))
	}
	r, err := a.detail.PageRow(row)
	if err != nil {
		return a.report(ctx, err)
	}
	loc, err := a.detail.DownloadRow(ctx, r, f)
	if err != nil {
		a.logger.Debug(ctx, "export failed", "row", row, "error", err)
		return err
	}
	a.notes.Info(view.SavedNoteKey, "Saved to "+loc)
	return nil
}

func (a *App) requireDetail() error {
	if _, ok := nav.UploadIDFromRoute(a.router.CurrentPath()); !ok {
		fmt.Fprintln(a.out, "Open an upload first: employees <id>")
		return errNoUploadOpen
	}
	return nil
}

func (a *App) printPage() {
	d := a.detail
	fmt.Fprintln(a.out, d.Title())
	fmt.Fprintln(a.out, d.Subtitle())
	if d.Total() == 0 {
		fmt.Fprintln(a.out, "No data")
		return
	}

	cols := d.Columns()
	keys := make([]string, 0, len(cols)+1)
	headers := make([]string, 0, len(cols)+1)
	keys = append(keys, rowNumberKey)
	headers = append(headers, "#")
	for _, c := range cols {
		keys = append(keys, c.Key)
		headers = append(headers, c.Title)
	}

	rows := recordRows(d.PageRecords(), keys, func(i int, _ models.Record, key string) (string, bool) {
		switch key {
		case rowNumberKey:
			return strconv.Itoa(i + 1), true
		case view.DownloadColumnKey:
			return fmt.Sprintf("export %d", i+1), true
		}
		return "", false
	})
	fmt.Fprintln(a.out, renderTable(headers, rows))
	fmt.Fprintf(a.out, "Page %d/%d · %d / page · %s\n", d.Page(), d.PageCount(), d.PageSize(), d.TotalLabel())
}

const rowNumberKey = "__row"
