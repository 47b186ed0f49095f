package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the response has already been written.
//
// An empty body decodes as the zero request, so endpoints whose fields are
// all optional accept a bare POST.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil && !errors.Is(err, io.EOF) {
		log.Debug(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		msg := ErrMsgInvalidRequest
		if errors.Is(err, domain.ErrUnexpectedSymbol) {
			msg = err.Error()
		}
		respondError(w, http.StatusBadRequest, msg)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// machineIDParam reads and validates the {machineID} route parameter.
// If ok is false, the response has already been written.
func machineIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "machineID")
	if err := GetValidator().ValidateVar(id, "required,machine_id"); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidMachineID)
		return "", false
	}
	return id, true
}

// mediaType returns the request's media type, defaulting to JSON.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return MediaTypeJSON
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	switch mt {
	case "application/x-yaml", "text/yaml":
		return MediaTypeYAML
	}
	return mt
}
