package payroll

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/payrollview/internal/client/api"
	"github.com/dmitrijs2005/payrollview/internal/client/models"
)

// ServerError carries the error body the API sent with a failed response.
type ServerError struct {
	Status  int
	Payload json.RawMessage
	// Fields is the payload decoded as a record when it is a JSON object.
	Fields *models.Record
	cause  error
}

func newServerError(rerr *api.ResponseError) *ServerError {
	e := &ServerError{
		Status:  rerr.Response.Status,
		Payload: rerr.Response.Data,
		cause:   rerr,
	}
	if models.Value(e.Payload).IsObject() {
		var r models.Record
		if err := r.UnmarshalJSON(e.Payload); err == nil {
			e.Fields = &r
		}
	}
	return e
}

// Detail returns the server's human-readable message: the "detail",
// "message" or "error" field when present, otherwise the raw payload.
func (e *ServerError) Detail() string {
	if e.Fields != nil {
		for _, k := range []string{"detail", "message", "error"} {
			if v, ok := e.Fields.Get(k); ok && !v.IsNull() {
				return v.String()
			}
		}
	}
	return models.Value(e.Payload).String()
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Status, e.Detail())
}

func (e *ServerError) Unwrap() error { return e.cause }
