package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/payrollview/internal/client/api"
	"github.com/dmitrijs2005/payrollview/internal/client/payroll"
	"github.com/dmitrijs2005/payrollview/internal/common"
)

// report prints a user-facing line for err and returns it unchanged.
func (a *App) report(ctx context.Context, err error) error {
	var (
		netErr *api.NetworkError
		srvErr *payroll.ServerError
	)
	switch {
	case errors.As(err, &netErr):
		fmt.Fprintln(a.out, netErr.Message)
	case errors.Is(err, common.ErrorUnauthorized) && a.router.CurrentPath() == common.RouteLogin:
		fmt.Fprintln(a.out, `Session expired. Run "token" to sign in again.`)
	case errors.As(err, &srvErr):
		fmt.Fprintf(a.out, "Server error (%d): %s\n", srvErr.Status, srvErr.Detail())
	case errors.Is(err, common.ErrorUnauthorized):
		fmt.Fprintln(a.out, "Not authorized.")
	case errors.Is(err, common.ErrorInvalidUploadID):
		fmt.Fprintln(a.out, "Upload id must not be empty.")
	case errors.Is(err, common.ErrorRowOutOfRange):
		fmt.Fprintln(a.out, "No such row on this page.")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
	a.logger.Debug(ctx, "command failed", "error", err)
	return err
}
