package payroll

import (
	"encoding/json"

	"github.com/dmitrijs2005/payrollview/internal/client/models"
)

// Shape identifies which of the known response layouts an employees
// response used.
type Shape int

const (
	ShapeUnrecognized Shape = iota
	// {"success": true, "data": [...], "upload_info": {...}}
	ShapeSuccessData
	// [...]
	ShapeBareList
	// {"results": [...]}
	ShapeResults
	// {"employees": [...], "upload_info": {...}}
	ShapeEmployees
)

func (s Shape) String() string {
	switch s {
	case ShapeSuccessData:
		return "success-data"
	case ShapeBareList:
		return "bare-list"
	case ShapeResults:
		return "results"
	case ShapeEmployees:
		return "employees"
	default:
		return "unrecognized"
	}
}

// Envelope is a classified employees response. Records and UploadInfo are
// only meaningful for the shapes that carry them.
type Envelope struct {
	Shape      Shape
	Records    []models.Record
	UploadInfo *models.Upload
	// NonObjects counts list elements that were not JSON objects. They are
	// kept as rows without fields.
	NonObjects int
}

// ParseEnvelope classifies raw. Shapes are tried in a fixed order and the
// first match wins; anything else, including invalid JSON, is
// ShapeUnrecognized.
func ParseEnvelope(raw json.RawMessage) Envelope {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil && list != nil {
		recs, other := decodeObjects(list)
		return Envelope{Shape: ShapeBareList, Records: recs, NonObjects: other}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return Envelope{Shape: ShapeUnrecognized}
	}

	if models.Value(obj["success"]).Truthy() {
		if data, ok := asArray(obj["data"]); ok {
			recs, other := decodeObjects(data)
			return Envelope{Shape: ShapeSuccessData, Records: recs, UploadInfo: uploadInfo(obj), NonObjects: other}
		}
	}
	if results, ok := asArray(obj["results"]); ok {
		recs, other := decodeObjects(results)
		return Envelope{Shape: ShapeResults, Records: recs, NonObjects: other}
	}
	if employees, ok := asArray(obj["employees"]); ok {
		recs, other := decodeObjects(employees)
		return Envelope{Shape: ShapeEmployees, Records: recs, UploadInfo: uploadInfo(obj), NonObjects: other}
	}
	return Envelope{Shape: ShapeUnrecognized}
}

// Normalize returns the employee records and upload info. It never fails:
// an unrecognized envelope yields an empty list and no upload info.
func (e Envelope) Normalize() ([]models.Record, *models.Upload) {
	if e.Shape == ShapeUnrecognized {
		return []models.Record{}, nil
	}
	recs := e.Records
	if recs == nil {
		recs = []models.Record{}
	}
	return recs, e.UploadInfo
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	if !models.Value(raw).IsArray() {
		return nil, false
	}
	var out []json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func decodeObjects(items []json.RawMessage) ([]models.Record, int) {
	recs := make([]models.Record, 0, len(items))
	other := 0
	for _, item := range items {
		var r models.Record
		if err := r.UnmarshalJSON(item); err != nil {
			other++
			r = models.Record{}
		}
		recs = append(recs, r)
	}
	return recs, other
}

func uploadInfo(obj map[string]json.RawMessage) *models.Upload {
	raw, ok := obj["upload_info"]
	if !ok || !models.Value(raw).IsObject() {
		return nil
	}
	var u models.Upload
	if err := u.UnmarshalJSON(raw); err != nil {
		return nil
	}
	return &u
}
