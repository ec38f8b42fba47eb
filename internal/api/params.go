package api

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"campus_connect/internal/domain"
)

// reserved query keys that are not filters
var reserved = map[string]bool{"page": true, "limit": true, "sort": true, "order": true}

// listQuery builds a ListQuery from the request's query string. Keys written
// as tags[]=a&tags[]=b are merged with plain tags=a,b.
func listQuery(r *http.Request) domain.ListQuery {
	values := r.URL.Query()

	filters := domain.Filters{}
	for key, vals := range values {
		key = strings.TrimSuffix(key, "[]")
		if reserved[key] {
			continue
		}
		filters[key] = append(filters[key], vals...)
	}

	return domain.ListQuery{
		Filters: filters,
		Sort:    firstValue(values, "sort"),
		Order:   firstValue(values, "order"),
		Page:    pageRequest(r),
	}
}

// firstValue returns the first non-blank value of key, written either plain
// or in array form.
func firstValue(values url.Values, key string) string {
	for _, k := range []string{key, key + "[]"} {
		for _, v := range values[k] {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

func pageRequest(r *http.Request) domain.PageRequest {
	values := r.URL.Query()
	return domain.NewPageRequest(values.Get("page"), values.Get("limit"))
}

// intParam returns the query parameter as an int, or 0 when it is absent or
// malformed so that callers fall back to their default.
func intParam(r *http.Request, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(key)))
	if err != nil {
		return 0
	}
	return n
}

// pathID returns the {id} path value when it is a well-formed UUID.
func pathID(r *http.Request) (string, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil || len(raw) != 36 {
		return "", domain.ErrInvalidID
	}
	return id.String(), nil
}

// decodeJSON reads a JSON body of at most limit bytes into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return domain.NewValidationError("body", "request body too large")
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("body", "request body is empty")
		}
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

// clientIP identifies the caller for rate limiting.
func (s *Server) clientIP(r *http.Request) string {
	if s.opts.TrustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
