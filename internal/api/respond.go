// internal/api/respond.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	custom_errors "releasetools-site/internal/errors"
)

const maxBodyBytes = 1 << 20

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithList writes a JSON array, never null.
func respondWithList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	respondWithJSON(w, http.StatusOK, items)
}

// respondWithServiceError maps a content-layer error onto a status code.
func (h *Handler) respondWithServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var refErr *custom_errors.ReferenceNotFound
	switch {
	case errors.As(err, &refErr):
		respondWithError(w, http.StatusUnprocessableEntity, refErr.Error())
	case errors.Is(err, custom_errors.ErrUniqueConstraintViolation):
		respondWithError(w, http.StatusConflict, "A record with the same slug already exists")
	default:
		h.logger.Error("Request failed", "op", op, "error", err, "request_id", requestID(r))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads a JSON body into dst, answering 400 on malformed input.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// validateStruct writes a 400 and returns false when in fails its validate tags.
func (h *Handler) validateStruct(w http.ResponseWriter, in any) bool {
	if err := h.validate.Struct(in); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

// fieldRule validates a single patch field when it was supplied.
type fieldRule struct {
	name  string
	set   bool
	value any
	tag   string
}

func (h *Handler) validateFields(w http.ResponseWriter, rules ...fieldRule) bool {
	var problems []string
	for _, rule := range rules {
		if !rule.set {
			continue
		}
		if err := h.validate.Var(rule.value, rule.tag); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				problems = append(problems, fmt.Sprintf("%s: failed '%s'", rule.name, verrs[0].Tag()))
				continue
			}
			problems = append(problems, fmt.Sprintf("%s: %v", rule.name, err))
		}
	}
	if len(problems) > 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid input: "+strings.Join(problems, "; "))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid input: " + err.Error()
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s: failed '%s'", fe.Field(), fe.Tag()))
	}
	return "Invalid input: " + strings.Join(problems, "; ")
}

// idParam parses the {id} path segment.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid 'id' parameter. Must be a positive integer.")
		return 0, false
	}
	return id, true
}
