// Package content fetches the site's editorial records (projects,
// testimonials, statistics) from a content source and caches the typed
// results per content type.
//
// The source itself is an interface; the site plugs in its CMS client. A
// failed fetch is logged and yields an empty result so pages still render.
package content

import (
	"fmt"
	"strconv"
	"time"
)

// Direction is the sort order of a query.
type Direction uint8

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// Sort orders query results by one property.
type Sort struct {
	Key       string
	Direction Direction
}

// Record is one untyped entry returned by a Source.
type Record struct {
	ID         string
	Properties map[string]any
}

// Text returns the property as text. Numbers and booleans are formatted;
// a missing property yields "".
func (r Record) Text(key string) string {
	switch v := r.Properties[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Float returns the property as a number. Numeric strings are parsed.
func (r Record) Float(key string) (float64, error) {
	switch v := r.Properties[key].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("record %s: property %q: %w", r.ID, key, err)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("record %s: property %q missing", r.ID, key)
	default:
		return 0, fmt.Errorf("record %s: property %q is %T, not a number", r.ID, key, v)
	}
}

// Bool returns the property as a boolean; anything else is false.
func (r Record) Bool(key string) bool {
	v, _ := r.Properties[key].(bool)
	return v
}

// Strings returns a multi-select property. A single string is returned as a
// one-element slice.
func (r Record) Strings(key string) []string {
	switch v := r.Properties[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, s := range v {
			if s, ok := s.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}

// Time parses an RFC 3339 date or date-time property.
func (r Record) Time(key string) (time.Time, error) {
	s := r.Text(key)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("record %s: property %q: %w", r.ID, key, err)
	}
	return t, nil
}
