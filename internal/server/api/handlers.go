package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/payrollview/internal/logging"
	"github.com/dmitrijs2005/payrollview/internal/server/auth"
	"github.com/dmitrijs2005/payrollview/internal/server/fixtures"
)

type PayrollHandler struct {
	set    *fixtures.Set
	logger logging.Logger
}

func NewPayrollHandler(set *fixtures.Set, logger logging.Logger) *PayrollHandler {
	return &PayrollHandler{set: set, logger: logger}
}

// ListUploads handles GET /uploads/
func (h *PayrollHandler) ListUploads(w http.ResponseWriter, r *http.Request) {
	writeRaw(w, http.StatusOK, h.set.UploadList())
}

// GetUpload handles GET /uploads/{id}/
func (h *PayrollHandler) GetUpload(w http.ResponseWriter, r *http.Request) {
	u, ok := h.upload(w, r)
	if !ok {
		return
	}
	writeRaw(w, http.StatusOK, u.Info)
}

// Employees handles GET /uploads/{id}/employees/
func (h *PayrollHandler) Employees(w http.ResponseWriter, r *http.Request) {
	u, ok := h.upload(w, r)
	if !ok {
		return
	}
	h.logger.Debug(r.Context(), "serving employees", "upload_id", u.ID, "shape", u.Shape, "count", len(u.Employees))
	writeRaw(w, http.StatusOK, u.EmployeesBody())
}

func (h *PayrollHandler) upload(w http.ResponseWriter, r *http.Request) (*fixtures.Upload, bool) {
	id := chi.URLParam(r, "id")
	u, ok := h.set.Upload(id)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return nil, false
	}
	if u.Status != 0 {
		writeDetail(w, u.Status, u.Detail)
		return nil, false
	}
	return u, true
}

type AuthHandler struct {
	set       *fixtures.Set
	secretKey []byte
	ttl       time.Duration
	logger    logging.Logger
}

func NewAuthHandler(set *fixtures.Set, secretKey []byte, ttl time.Duration, logger logging.Logger) *AuthHandler {
	return &AuthHandler{set: set, secretKey: secretKey, ttl: ttl, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// Login handles POST /auth/login/
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	u, ok := h.set.User(req.Username)
	if !ok || subtle.ConstantTimeCompare([]byte(u.Password), []byte(req.Password)) != 1 {
		writeJSON(w, http.StatusBadRequest, map[string][]string{
			"non_field_errors": {"Unable to log in with provided credentials."},
		})
		return
	}

	token, err := auth.GenerateToken(u.Username, h.secretKey, h.ttl)
	if err != nil {
		h.logger.Error(r.Context(), "mint token", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: u.Profile})
}

// Me handles GET /auth/me/
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := h.set.User(currentUser(r.Context()))
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	writeRaw(w, http.StatusOK, u.Profile)
}
