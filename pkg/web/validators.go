package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// OptionalQuery returns the query parameter key, or nil when it is absent.
// A parameter present with an empty value is returned as an empty string.
func OptionalQuery(r *http.Request, key string) *string {
	values, ok := r.URL.Query()[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// ParseOptionalBool parses the boolean query parameter key. An absent parameter yields nil;
// a malformed one is answered with 400 and reported by the second return value.
func ParseOptionalBool(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string) (*bool, bool) {
	raw := OptionalQuery(r, key)
	if raw == nil || *raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(*raw)
	if err != nil {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s value: %s", key, *raw))
		return nil, false
	}
	return &value, true
}
