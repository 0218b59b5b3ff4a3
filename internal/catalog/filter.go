package catalog

import (
	"strconv"
	"strings"

	"github.com/meridianhome/storefront/internal/domain"
)

// Criteria holds the raw, optional selection parameters as received from
// the query string. An empty field means the criterion is absent.
type Criteria struct {
	Featured string
	Query    string
	Limit    string
}

// Filter narrows records by sequential application of featured, search
// and limit, in that order, preserving the original relative order.
// Limiting runs last so it caps the filtered result, not the input.
func Filter(records []domain.Record, c Criteria) []domain.Record {
	out := make([]domain.Record, len(records))
	copy(out, records)

	if c.Featured != "" {
		want := ParseBool(c.Featured)
		kept := out[:0]
		for _, rec := range out {
			if rec.Featured == want {
				kept = append(kept, rec)
			}
		}
		out = kept
	}

	if c.Query != "" {
		q := strings.ToLower(c.Query)
		kept := out[:0]
		for _, rec := range out {
			if matchesQuery(rec, q) {
				kept = append(kept, rec)
			}
		}
		out = kept
	}

	if c.Limit != "" {
		if n, ok := ParseLimit(c.Limit); ok && n < len(out) {
			out = out[:n]
		}
	}

	return out
}

// ParseBool coerces a boolean-like query value (featured, tax). Only the
// literal "true" is true; any other value coerces to false rather than
// being rejected.
func ParseBool(s string) bool {
	return s == "true"
}

// ParseLimit parses a result cap. Unparsable or non-positive values are
// treated as "no limit" (ok == false) instead of failing the request.
func ParseLimit(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// matchesQuery reports whether the folded query is a substring of the
// record's name, description, category or any tag.
func matchesQuery(rec domain.Record, q string) bool {
	if strings.Contains(strings.ToLower(rec.Name), q) ||
		strings.Contains(strings.ToLower(rec.Description), q) ||
		strings.Contains(strings.ToLower(rec.Category), q) {
		return true
	}
	for _, tag := range rec.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
