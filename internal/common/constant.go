// Package common contains shared constants and sentinel errors used across
// payrollview components.
package common

// AuthorizationHeaderName carries the access token on outbound requests as
// "Token <value>".
const AuthorizationHeaderName = "Authorization"

// AuthorizationScheme is the scheme prefix of the Authorization header.
const AuthorizationScheme = "Token"

// Keys under which the credential store persists session data.
const (
	SessionTokenKey = "token"
	SessionUserKey  = "user"
)

// Navigation targets shared by the CLI and the full-screen browser.
const (
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteSummary  = "/summary"
)
