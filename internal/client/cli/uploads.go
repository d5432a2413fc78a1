package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/payrollview/internal/client/models"
	"github.com/dmitrijs2005/payrollview/internal/client/view"
	"github.com/dmitrijs2005/payrollview/internal/common"
)

// Uploads shows the summary of uploaded payroll files.
func (a *App) Uploads(ctx context.Context) error {
	a.router.Navigate(common.RouteSummary)
	ups, err := a.payroll.ListUploads(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(ups) == 0 {
		fmt.Fprintln(a.out, "No uploads yet.")
		return nil
	}

	recs := make([]models.Record, len(ups))
	for i, u := range ups {
		recs[i] = u.Record
	}
	keys := ups[0].Keys()
	headers := make([]string, len(keys))
	for i, k := range keys {
		headers[i] = view.ColumnTitle(k)
	}
	fmt.Fprintln(a.out, renderTable(headers, recordRows(recs, keys, nil)))
	fmt.Fprintf(a.out, "Total %d files\n", len(ups))
	return nil
}

// Upload prints one upload's fields, one per line.
func (a *App) Upload(ctx context.Context, id string) error {
	raw, err := a.payroll.GetUploadByID(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	var r models.Record
	if err := r.UnmarshalJSON(raw); err != nil {
		return a.report(ctx, fmt.Errorf("decode upload %s: %w", id, err))
	}
	w := labelWidth(r.Keys())
	for _, k := range r.Keys() {
		fmt.Fprintf(a.out, "%-*s  %s\n", w, view.ColumnTitle(k), view.Cell(r, k))
	}
	return nil
}

func labelWidth(keys []string) int {
	w := 0
	for _, k := range keys {
		w = max(w, len(view.ColumnTitle(k)))
	}
	return w
}
