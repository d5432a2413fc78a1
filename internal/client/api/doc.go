// Package api is the HTTP client used to talk to the payroll REST API.
//
// # Overview
//
// A Client is bound to one base URL and runs every call through two
// interceptor chains:
//  1. Request interceptors run in registration order before the body is
//     encoded. The defaults attach "Authorization: Token <t>" from the
//     session store and pick the Content-Type.
//  2. Response-error interceptors run on every failure. The defaults turn
//     transport failures into a *NetworkError and, on 401 outside the
//     exempt paths, purge the session and send the user to /login.
//
// # Error Handling
//
// Failures with a response are *ResponseError (errors.Is matches
// common.ErrorUnauthorized for 401). Failures without one are *NetworkError,
// whose Error() is the fixed user-facing message and whose Unwrap() returns
// the transport error.
package api
