package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/payrollview/internal/client/models"
	"github.com/dmitrijs2005/payrollview/internal/client/session"
	"github.com/dmitrijs2005/payrollview/internal/common"
)

// getSecret and getMultiline are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSecret    = GetSecret
	getMultiline = GetMultiline
)

// Token prompts for an access token without echo and, optionally, for the
// profile JSON the server returned at sign-in. Both are stored together and
// the prompt moves to the uploads summary.
func (a *App) Token(ctx context.Context) error {
	token, err := getSecret(a.reader, "Access token", a.out)
	if err != nil {
		return err
	}
	if token == "" {
		fmt.Fprintln(a.out, "Token must not be empty.")
		return common.ErrNoToken
	}

	raw, err := getMultiline(a.reader, "Profile JSON (optional)", a.out)
	if err != nil {
		return err
	}
	var user *models.User
	if raw != "" {
		user = &models.User{}
		if err := json.Unmarshal([]byte(raw), user); err != nil {
			fmt.Fprintln(a.out, "Profile is not valid JSON, nothing saved.")
			return fmt.Errorf("parse profile: %w", err)
		}
	}

	if err := a.store.Save(ctx, token, user); err != nil {
		return a.report(ctx, err)
	}
	a.logger.Info(ctx, "token stored", "user", user.DisplayName())
	a.router.Navigate(common.RouteSummary)

	fmt.Fprintf(a.out, "Signed in as %s.\n", user.DisplayName())
	if exp, ok := session.TokenExpiry(token); ok {
		fmt.Fprintf(a.out, "Token expires %s.\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}

// WhoAmI refreshes the cached profile from the server when it can and
// prints it together with the token expiry for JWT tokens.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.fetchProfile(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "%s  %s  %s\n", u.Initials(), u.DisplayName(), u.EmailOrDefault())

	token, err := a.store.Token(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	exp, ok := session.TokenExpiry(token)
	switch {
	case !ok:
		fmt.Fprintln(a.out, "Token expiry unknown.")
	case exp.Before(time.Now()):
		fmt.Fprintf(a.out, "Token expired %s.\n", exp.Local().Format(time.RFC1123))
	default:
		fmt.Fprintf(a.out, "Token expires %s.\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}

// fetchProfile asks /auth/me/ for the profile and caches it. Servers
// without that endpoint leave the cached profile in place; a rejected token
// is an error.
func (a *App) fetchProfile(ctx context.Context) (*models.User, error) {
	resp, err := a.client.Get(ctx, profilePath)
	if err == nil {
		u := &models.User{}
		if jerr := json.Unmarshal(resp.Data, u); jerr == nil && hasProfile(u) {
			if serr := a.store.SetUser(ctx, u); serr != nil {
				a.logger.Warn(ctx, "cache profile", "error", serr)
			}
			return u, nil
		}
	}
	if errors.Is(err, common.ErrorUnauthorized) {
		return nil, err
	}
	if err != nil {
		a.logger.Debug(ctx, "profile lookup failed, using cached profile", "error", err)
	}
	return a.store.User(ctx)
}

const profilePath = "/auth/me/"

func hasProfile(u *models.User) bool {
	return u.Username != "" || u.Email != "" || u.FirstName != "" || u.LastName != ""
}

// Logout removes the stored token and profile.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil && !errors.Is(err, common.ErrorNotFound) {
		return a.report(ctx, err)
	}
	a.router.Navigate(common.RouteLogin)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
