package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// timeLayout matches the ISO form browsers emit and sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// encodeList serializes a list column. A nil list is stored as "[]".
func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(data), nil
}

// decodeList parses a list column, returning an empty list for NULL or blank text.
func decodeList(ns sql.NullString) ([]string, error) {
	items := []string{}
	if !ns.Valid || ns.String == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(ns.String), &items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a 0/1 column; NULL reads as false.
func intToBool(ni sql.NullInt64) bool {
	return ni.Valid && ni.Int64 != 0
}

func stringPtrToNull(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullToStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timeToNull(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(timeLayout), Valid: true}
}

func timePtrToNull(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return timeToNull(*t)
}

// nullToTime parses a stored timestamp. Unparseable text reads as the zero time.
func nullToTime(ns sql.NullString) time.Time {
	if !ns.Valid || ns.String == "" {
		return time.Time{}
	}
	for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return t
		}
	}
	return time.Time{}
}

func nullToTimePtr(ns sql.NullString) *time.Time {
	t := nullToTime(ns)
	if t.IsZero() {
		return nil
	}
	return &t
}
