package view

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/payrollview/internal/client/models"
	"github.com/dmitrijs2005/payrollview/internal/common"
)

func (v *DetailView) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

func (v *DetailView) PageSize() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pageSize
}

// PageCount is at least 1, even with no records.
func (v *DetailView) PageCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pageCount()
}

func (v *DetailView) pageCount() int {
	n := (len(v.records) + v.pageSize - 1) / v.pageSize
	return max(n, 1)
}

// NextPage advances one page and reports whether it moved.
func (v *DetailView) NextPage() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.page >= v.pageCount() {
		return false
	}
	v.page++
	return true
}

// PrevPage goes back one page and reports whether it moved.
func (v *DetailView) PrevPage() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.page <= 1 {
		return false
	}
	v.page--
	return true
}

func (v *DetailView) SetPage(n int) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if n < 1 || n > v.pageCount() {
		return fmt.Errorf("page %d of %d: %w", n, v.pageCount(), common.ErrorRowOutOfRange)
	}
	v.page = n
	return nil
}

// SetPageSize accepts one of AllowedPageSizes and keeps the current page
// within range.
func (v *DetailView) SetPageSize(n int) error {
	if !slices.Contains(AllowedPageSizes, n) {
		return fmt.Errorf("page size %d not in %v", n, AllowedPageSizes)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pageSize = n
	v.page = min(v.page, v.pageCount())
	return nil
}

// StepPageSize moves to the next larger (delta > 0) or smaller allowed size.
func (v *DetailView) StepPageSize(delta int) bool {
	v.mu.Lock()
	i := slices.Index(AllowedPageSizes, v.pageSize)
	v.mu.Unlock()
	j := i + delta
	if i < 0 || j < 0 || j >= len(AllowedPageSizes) {
		return false
	}
	return v.SetPageSize(AllowedPageSizes[j]) == nil
}

// PageRecords returns the records of the current page.
func (v *DetailView) PageRecords() []models.Record {
	v.mu.Lock()
	defer v.mu.Unlock()
	start := (v.page - 1) * v.pageSize
	if start >= len(v.records) {
		return []models.Record{}
	}
	end := min(start+v.pageSize, len(v.records))
	out := make([]models.Record, end-start)
	copy(out, v.records[start:end])
	return out
}

// PageRow returns the n-th (1-based) record of the current page.
func (v *DetailView) PageRow(n int) (models.Record, error) {
	rows := v.PageRecords()
	if n < 1 || n > len(rows) {
		return models.Record{}, fmt.Errorf("row %d of %d: %w", n, len(rows), common.ErrorRowOutOfRange)
	}
	return rows[n-1], nil
}
