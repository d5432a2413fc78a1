package api

import (
	"context"
	"io"
	"strings"

	"github.com/dmitrijs2005/payrollview/internal/client/nav"
	"github.com/dmitrijs2005/payrollview/internal/common"
	"github.com/dmitrijs2005/payrollview/internal/logging"
)

// Credentials is the part of the session store the client needs.
type Credentials interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Navigator moves the front-end to another route.
type Navigator interface {
	CurrentPath() string
	Navigate(path string)
}

// Paths whose 401 responses are left to the caller: bad credentials on the
// auth forms and per-upload authorization failures.
var unauthorizedExempt = []string{"/auth/login", "/auth/register", "/uploads"}

// TokenInterceptor attaches "Authorization: Token <t>" when a token is stored.
func TokenInterceptor(creds Credentials, logger logging.Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		token, err := creds.Token(ctx)
		if err != nil {
			logger.Warn(ctx, "read session token", "error", err)
			return nil
		}
		if token == "" {
			logger.Debug(ctx, "no token attached", "path", req.Path)
			return nil
		}
		req.Header.Set(common.AuthorizationHeaderName, common.AuthorizationScheme+" "+token)
		logger.Debug(ctx, "token attached", "path", req.Path, "token_prefix", tokenPrefix(token))
		return nil
	}
}

// ContentTypeInterceptor lets multipart and binary bodies choose their own
// Content-Type and defaults everything else to application/json.
func ContentTypeInterceptor() RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		switch req.Body.(type) {
		case *FormData, io.Reader:
			req.Header.Del("Content-Type")
		default:
			if req.Header.Get("Content-Type") == "" {
				req.Header.Set("Content-Type", "application/json")
			}
		}
		return nil
	}
}

// NetworkErrorInterceptor replaces transport failures with a *NetworkError.
func NetworkErrorInterceptor(logger logging.Logger) ResponseErrorInterceptor {
	return func(ctx context.Context, req *Request, resp *Response, err error) error {
		if resp != nil {
			return err
		}
		logger.Error(ctx, "network error", "method", req.Method, "path", req.Path, "error", err)
		return newNetworkError(err)
	}
}

// UnauthorizedInterceptor clears the session on a 401 outside the exempt
// paths and navigates to the login route unless already on an auth route.
func UnauthorizedInterceptor(creds Credentials, navigator Navigator, logger logging.Logger) ResponseErrorInterceptor {
	return func(ctx context.Context, req *Request, resp *Response, err error) error {
		if resp == nil || resp.Status != 401 || isUnauthorizedExempt(req.Path) {
			return err
		}
		logger.Warn(ctx, "session rejected, signing out", "path", req.Path)
		if cerr := creds.Clear(ctx); cerr != nil {
			logger.Error(ctx, "clear session", "error", cerr)
		}
		if navigator == nil {
			return err
		}
		if !nav.IsAuthRoute(navigator.CurrentPath()) {
			navigator.Navigate(common.RouteLogin)
		}
		return err
	}
}

func isUnauthorizedExempt(path string) bool {
	for _, p := range unauthorizedExempt {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

func tokenPrefix(token string) string {
	if len(token) <= 10 {
		return token
	}
	return token[:10] + "..."
}
