// Package cli provides the interactive payroll command-line client.
//
// It wires configuration, the persisted session, the HTTP client with its
// interceptors, the payroll service and the detail view into a REPL. The
// same components back the full-screen browser started with "browse".
//
// Key features:
//   - token / whoami / logout session management
//   - uploads summary and single upload lookup
//   - employee tables with pagination
//   - per-row export to CSV or XLSX, saved locally, to S3 or PUT to a URL
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
