package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrijs2005/payrollview/internal/client/models"
)

// SheetName is the worksheet holding the exported row.
const SheetName = "Payroll"

// XLSX renders r as a workbook with a header row and a value row. Numbers
// and booleans keep their cell types; everything else is text.
func XLSX(r models.Record) (File, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return File{}, fmt.Errorf("xlsx sheet: %w", err)
	}

	header := make([]any, 0, r.Len())
	for _, k := range r.Keys() {
		header = append(header, k)
	}
	values := make([]any, 0, r.Len())
	for _, v := range r.Values() {
		values = append(values, cellValue(v))
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return File{}, fmt.Errorf("xlsx header: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A2", &values); err != nil {
		return File{}, fmt.Errorf("xlsx values: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return File{}, fmt.Errorf("xlsx write: %w", err)
	}
	return File{Name: FileName(r, FormatXLSX), ContentType: MIMEXLSX, Data: buf.Bytes()}, nil
}

func cellValue(v models.Value) any {
	if v.IsNull() {
		return ""
	}
	switch v[0] {
	case 't':
		return true
	case 'f':
		return false
	case '"', '{', '[':
		return v.String()
	}
	if n, err := strconv.ParseFloat(string(v), 64); err == nil {
		return n
	}
	return v.String()
}
