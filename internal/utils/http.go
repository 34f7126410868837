package utils

import (
	"net/http"
	"strconv"
)

// QueryParam returns the named query parameter or the fallback when absent.
func QueryParam(r *http.Request, name, fallback string) string {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback
	}
	return value
}

// QueryParamInt returns the named query parameter as an int, clamped to
// [minimum, maximum]. Missing or unparseable values return the fallback.
func QueryParamInt(r *http.Request, name string, fallback, minimum, maximum int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	if value < minimum {
		return minimum
	}
	if value > maximum {
		return maximum
	}
	return value
}
