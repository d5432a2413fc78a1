// Package export turns a single employee record into a downloadable file
// and hands it to a Saver.
package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/payrollview/internal/client/models"
	"github.com/dmitrijs2005/payrollview/internal/common"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const (
	MIMECSV  = "text/csv"
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ParseFormat accepts "csv" and "xlsx" in any case; "" means csv.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrorUnknownFormat, s)
}

// File is an export ready to be stored.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Saver stores a file and returns where it ended up.
type Saver interface {
	Save(ctx context.Context, f File) (string, error)
}

// Build renders r in the given format.
func Build(r models.Record, format Format) (File, error) {
	switch format {
	case FormatCSV:
		return CSV(r), nil
	case FormatXLSX:
		return XLSX(r)
	}
	return File{}, fmt.Errorf("%w: %q", common.ErrorUnknownFormat, format)
}

// CSV renders r as two lines: the keys and the values, comma-joined with no
// quoting and no trailing newline. Null values become empty fields.
func CSV(r models.Record) File {
	keys := r.Keys()
	values := make([]string, 0, len(keys))
	for _, v := range r.Values() {
		values = append(values, v.String())
	}
	data := strings.Join(keys, ",") + "\n" + strings.Join(values, ",")
	return File{Name: FileName(r, FormatCSV), ContentType: MIMECSV, Data: []byte(data)}
}

// FileName is "employee_<id>_payroll.<ext>", where id is the record's id,
// else its employee_id, else "unknown".
func FileName(r models.Record, format Format) string {
	return fmt.Sprintf("employee_%s_payroll.%s", recordID(r), format)
}

func recordID(r models.Record) string {
	for _, k := range []string{"id", "employee_id"} {
		if v, ok := r.Get(k); ok && v.Truthy() {
			return v.String()
		}
	}
	return "unknown"
}
