// Package view holds the state of the payroll detail screen: the employee
// records of one upload, their dynamically derived columns, pagination and
// the per-row download action. Front-ends render it; they do not own it.
package view

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/payrollview/internal/client/export"
	"github.com/dmitrijs2005/payrollview/internal/client/models"
	"github.com/dmitrijs2005/payrollview/internal/client/notify"
	"github.com/dmitrijs2005/payrollview/internal/client/payroll"
	"github.com/dmitrijs2005/payrollview/internal/common"
	"github.com/dmitrijs2005/payrollview/internal/logging"
)

const (
	Title             = "Payroll Details"
	DefaultSubtitle   = "View detailed employee payroll data"
	DownloadColumnKey = "__download"
	DownloadTitle     = "Download"
	DownloadNoteKey   = "download-row"
	SavedNoteKey      = "download-saved"
	MsgFetchFailed    = "Failed to fetch employee data"
	MsgDownloading    = "Downloading employee data..."
	MsgDownloadDone   = "Download completed!"
	MsgDownloadFailed = "Failed to download"
	EmptyCell         = "-"
	DefaultPageSize   = 10
)

// AllowedPageSizes are the sizes offered by the page size changer.
var AllowedPageSizes = []int{10, 20, 50, 100}

// Fetcher loads the raw employees response of an upload.
type Fetcher interface {
	GetEmployeesByUploadID(ctx context.Context, id string) (json.RawMessage, error)
}

// Notifier shows transient messages.
type Notifier interface {
	Loading(key, content string) notify.Notification
	Success(key, content string) notify.Notification
	Error(key, content string) notify.Notification
}

type Column struct {
	Key   string
	Title string
}

type DetailView struct {
	fetcher Fetcher
	saver   export.Saver
	notes   Notifier
	logger  logging.Logger

	mu         sync.Mutex
	uploadID   string
	generation uint64
	records    []models.Record
	uploadInfo *models.Upload
	loading    bool
	page       int
	pageSize   int
}

func New(fetcher Fetcher, saver export.Saver, notes Notifier, logger logging.Logger) *DetailView {
	return &DetailView{
		fetcher:  fetcher,
		saver:    saver,
		notes:    notes,
		logger:   logger,
		records:  []models.Record{},
		page:     1,
		pageSize: DefaultPageSize,
	}
}

// Mount enters the view for uploadID with fresh state and loads its
// records. Front-ends call it whenever the detail route is entered.
func (v *DetailView) Mount(ctx context.Context, uploadID string) error {
	return v.load(ctx, func() {
		v.uploadID = uploadID
		v.records = []models.Record{}
		v.uploadInfo = nil
		v.page = 1
	})
}

// SetUploadID follows an id change while the view is already showing. The
// current rows stay until the new ones arrive; the same id is a no-op.
func (v *DetailView) SetUploadID(ctx context.Context, uploadID string) error {
	v.mu.Lock()
	same := v.uploadID == uploadID && v.generation > 0
	v.mu.Unlock()
	if same {
		return nil
	}
	return v.load(ctx, func() { v.uploadID = uploadID })
}

// Refresh reloads the current upload. On failure the rows already shown
// are kept.
func (v *DetailView) Refresh(ctx context.Context) error {
	return v.load(ctx, nil)
}

// load applies prepare and starts a new load under one lock. A response
// that arrives after the view moved on to another load is discarded.
func (v *DetailView) load(ctx context.Context, prepare func()) error {
	v.mu.Lock()
	if prepare != nil {
		prepare()
	}
	v.generation++
	gen := v.generation
	id := v.uploadID
	v.loading = true
	v.mu.Unlock()

	raw, err := v.fetcher.GetEmployeesByUploadID(ctx, id)

	v.mu.Lock()
	if gen != v.generation {
		v.mu.Unlock()
		v.logger.Debug(ctx, "dropping stale employees response", "upload_id", id)
		return nil
	}
	v.loading = false

	if err != nil {
		v.mu.Unlock()
		v.logger.Error(ctx, "fetch employees", "upload_id", id, "error", err)
		v.notes.Error("", MsgFetchFailed)
		return err
	}

	env := payroll.ParseEnvelope(raw)
	v.records, v.uploadInfo = env.Normalize()
	v.page = 1
	v.mu.Unlock()

	if env.Shape == payroll.ShapeUnrecognized {
		v.logger.Warn(ctx, "unrecognized employees response", "upload_id", id)
	}
	if env.NonObjects > 0 {
		v.logger.Warn(ctx, "non-object employee entries", "upload_id", id, "count", env.NonObjects)
	}
	v.logger.Debug(ctx, "employees loaded", "upload_id", id, "shape", env.Shape.String(), "count", len(env.Records))
	return nil
}

func (v *DetailView) UploadID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.uploadID
}

func (v *DetailView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *DetailView) UploadInfo() *models.Upload {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.uploadInfo
}

func (v *DetailView) Total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.records)
}

func (v *DetailView) TotalLabel() string {
	return fmt.Sprintf("Total %d employees", v.Total())
}

func (v *DetailView) Title() string { return Title }

func (v *DetailView) Subtitle() string {
	if info := v.UploadInfo(); info != nil {
		return "File: " + info.Filename()
	}
	return DefaultSubtitle
}

// BackRoute is where the back action leads.
func (v *DetailView) BackRoute() string { return common.RouteSummary }

// Columns derives the table columns from the keys of the first record,
// followed by the download action column. No records means no columns.
func (v *DetailView) Columns() []Column {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.records) == 0 {
		return nil
	}
	keys := v.records[0].Keys()
	cols := make([]Column, 0, len(keys)+1)
	for _, k := range keys {
		cols = append(cols, Column{Key: k, Title: ColumnTitle(k)})
	}
	return append(cols, Column{Key: DownloadColumnKey, Title: DownloadTitle})
}

var wordStart = regexp.MustCompile(`\b\w`)

// ColumnTitle turns "pay_amount" into "Pay Amount".
func ColumnTitle(key string) string {
	return wordStart.ReplaceAllStringFunc(strings.ReplaceAll(key, "_", " "), strings.ToUpper)
}

// Cell is the display text of key in r; null and absent fields show "-".
func Cell(r models.Record, key string) string {
	val, ok := r.Get(key)
	if !ok || val.IsNull() {
		return EmptyCell
	}
	return val.String()
}

// RowKey identifies r among its siblings: its id, else its employee_id,
// else a random key that differs on every call.
func RowKey(r models.Record) string {
	for _, k := range []string{"id", "employee_id"} {
		if val, ok := r.Get(k); ok && val.Truthy() {
			return val.String()
		}
	}
	return uuid.NewString()
}

// DownloadRow exports r and saves it, reporting progress under the
// "download-row" notification key. It returns where the file was saved.
func (v *DetailView) DownloadRow(ctx context.Context, r models.Record, format export.Format) (string, error) {
	v.notes.Loading(DownloadNoteKey, MsgDownloading)

	f, err := export.Build(r, format)
	if err == nil {
		var loc string
		loc, err = v.saver.Save(ctx, f)
		if err == nil {
			v.logger.Info(ctx, "row exported", "file", f.Name, "location", loc)
			v.notes.Success(DownloadNoteKey, MsgDownloadDone)
			return loc, nil
		}
	}
	v.logger.Error(ctx, "row export failed", "row", RowKey(r), "error", err)
	v.notes.Error(DownloadNoteKey, MsgDownloadFailed)
	return "", err
}
