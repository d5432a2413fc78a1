// Package payroll is the access layer for payroll uploads and their
// employee records.
package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/payrollview/internal/client/api"
	"github.com/dmitrijs2005/payrollview/internal/client/models"
	"github.com/dmitrijs2005/payrollview/internal/common"
	"github.com/dmitrijs2005/payrollview/internal/logging"
)

// Getter is the part of api.Client the service uses.
type Getter interface {
	Get(ctx context.Context, path string) (*api.Response, error)
}

type Service struct {
	client Getter
	logger logging.Logger
}

func NewService(client Getter, logger logging.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// GetUploadedFiles lists the uploaded payroll files.
func (s *Service) GetUploadedFiles(ctx context.Context) (json.RawMessage, error) {
	return s.get(ctx, "/uploads/")
}

// GetUploadByID returns one upload's metadata.
func (s *Service) GetUploadByID(ctx context.Context, id string) (json.RawMessage, error) {
	p, err := uploadPath(id, "")
	if err != nil {
		return nil, err
	}
	return s.get(ctx, p)
}

// GetEmployeesByUploadID returns the raw employees response of an upload.
// Its layout varies; see ParseEnvelope.
func (s *Service) GetEmployeesByUploadID(ctx context.Context, id string) (json.RawMessage, error) {
	p, err := uploadPath(id, "employees/")
	if err != nil {
		return nil, err
	}
	return s.get(ctx, p)
}

// ListUploads fetches and decodes the uploads list.
func (s *Service) ListUploads(ctx context.Context) ([]models.Upload, error) {
	raw, err := s.GetUploadedFiles(ctx)
	if err != nil {
		return nil, err
	}
	return DecodeUploads(raw)
}

// DecodeUploads accepts a bare list or any of the wrapped list layouts.
func DecodeUploads(raw json.RawMessage) ([]models.Upload, error) {
	env := ParseEnvelope(raw)
	if env.Shape == ShapeUnrecognized {
		if models.Value(raw).IsNull() {
			return []models.Upload{}, nil
		}
		return nil, fmt.Errorf("unexpected uploads response")
	}
	recs, _ := env.Normalize()
	out := make([]models.Upload, len(recs))
	for i, r := range recs {
		out[i] = models.Upload{Record: r}
	}
	return out, nil
}

func (s *Service) get(ctx context.Context, path string) (json.RawMessage, error) {
	resp, err := s.client.Get(ctx, path)
	if err != nil {
		var rerr *api.ResponseError
		if errors.As(err, &rerr) && len(rerr.Response.Data) > 0 {
			serr := newServerError(rerr)
			s.logger.Debug(ctx, "payroll request rejected", "path", path, "status", serr.Status)
			return nil, serr
		}
		s.logger.Debug(ctx, "payroll request failed", "path", path, "error", err)
		return nil, err
	}
	return resp.Data, nil
}

func uploadPath(id, suffix string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", common.ErrorInvalidUploadID
	}
	return "/uploads/" + url.PathEscape(id) + "/" + suffix, nil
}
