package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lib/pq"

	"campus_connect/internal/domain"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
	Detail  string              `json:"detail,omitempty"`
}

// writeError is the single place where errors become responses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := s.classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeJSON(w, status, body)
}

func (s *Server) classify(err error) (int, errorBody) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, errorBody{Error: "validation failed", Details: verr.Fields}
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorBody{Error: err.Error()}
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, errorBody{Error: err.Error()}
	case errors.Is(err, domain.ErrBatchEmpty), errors.Is(err, domain.ErrBatchTooLarge):
		return http.StatusBadRequest, errorBody{
			Error:   "validation failed",
			Details: []domain.FieldError{{Field: "opportunities", Message: err.Error()}},
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict, errorBody{Error: "duplicate value violates " + pqErr.Constraint}
		case "23503": // foreign_key_violation
			return http.StatusBadRequest, errorBody{Error: "referenced record does not exist"}
		case "23502": // not_null_violation
			return http.StatusBadRequest, errorBody{
				Error:   "missing required field",
				Details: []domain.FieldError{{Field: pqErr.Column, Message: "is required"}},
			}
		case "23514": // check_violation
			return http.StatusBadRequest, errorBody{Error: "value violates " + pqErr.Constraint}
		case "22P02": // invalid_text_representation
			return http.StatusBadRequest, errorBody{Error: "invalid identifier or value format"}
		case "2201W", "2201X": // invalid_row_count_in_limit_clause, invalid_row_count_in_result_offset_clause
			return http.StatusBadRequest, errorBody{Error: "invalid page or limit"}
		}
	}

	body := errorBody{Error: "internal server error"}
	if s.opts.Diagnostic {
		body.Detail = err.Error()
	}
	return http.StatusInternalServerError, body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
