package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// fieldReader pulls loosely typed values out of a decoded manual document.
// A value that cannot be coerced falls back to its zero value and is noted
// in warnings instead of failing the import.
type fieldReader struct {
	warnings []string
}

func (fr *fieldReader) warnf(format string, args ...any) {
	fr.warnings = append(fr.warnings, fmt.Sprintf(format, args...))
}

// node is one object in the document, addressed by path for warnings.
type node struct {
	fr   *fieldReader
	path string
	rec  map[string]any
}

func (fr *fieldReader) node(path string, rec map[string]any) node {
	return node{fr: fr, path: path, rec: rec}
}

// object returns the object under key. Absent and null keys report false
// silently; any other non-object value is noted and also reports false.
func (fr *fieldReader) object(doc map[string]any, key string) (node, bool) {
	v, ok := doc[key]
	if !ok || v == nil {
		return node{}, false
	}
	rec, ok := asRecord(v)
	if !ok {
		fr.warnf("%s: expected an object, got %T; skipped", key, v)
		return node{}, false
	}
	return fr.node(key, rec), true
}

// list returns the objects under key. The second result is true when key
// holds a list, even an empty one. Elements that are not objects are dropped.
func (fr *fieldReader) list(doc map[string]any, key string) ([]node, bool) {
	v, ok := doc[key]
	if !ok || v == nil {
		return nil, false
	}
	items, ok := v.([]any)
	if !ok {
		fr.warnf("%s: expected a list, got %T; skipped", key, v)
		return nil, false
	}
	nodes := make([]node, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s[%d]", key, i)
		rec, ok := asRecord(item)
		if !ok {
			fr.warnf("%s: expected an object, got %T; dropped", path, item)
			continue
		}
		nodes = append(nodes, fr.node(path, rec))
	}
	return nodes, true
}

func asRecord(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func (n node) value(key string) (any, bool) {
	v, ok := n.rec[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (n node) str(key string) string {
	v, ok := n.value(key)
	if !ok {
		return ""
	}
	if t, isTime := v.(time.Time); isTime {
		return t.Format(time.RFC3339)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		n.fr.warnf("%s.%s: %v; using empty string", n.path, key, err)
		return ""
	}
	return s
}

// optStr is nil for an absent or null key.
func (n node) optStr(key string) *string {
	if _, ok := n.value(key); !ok {
		return nil
	}
	s := n.str(key)
	return &s
}

// num reads numbers and numeric text; text is read up to its first non-digit,
// so "500+" is 500.
func (n node) num(key string) int {
	v, ok := n.value(key)
	if !ok {
		return 0
	}
	if s, isText := v.(string); isText {
		s = strings.TrimSpace(s)
		if s != "" && (s[0] < '0' || s[0] > '9') {
			n.fr.warnf("%s.%s: %q is not a number; using 0", n.path, key, s)
		}
		return leadingInt(s)
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		n.fr.warnf("%s.%s: %v; using 0", n.path, key, err)
		return 0
	}
	return i
}

// flag treats non-zero numbers as true and parses "true"/"1"/"t" style text.
func (n node) flag(key string) bool {
	v, ok := n.value(key)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case int:
		return b != 0
	case string:
		if strings.TrimSpace(b) == "" {
			return false
		}
		v = strings.TrimSpace(b)
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		n.fr.warnf("%s.%s: %v; using false", n.path, key, err)
		return false
	}
	return b
}

// strs reads a list of strings. A non-list value reads as an empty list.
func (n node) strs(key string) []string {
	v, ok := n.value(key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		n.fr.warnf("%s.%s: expected a list, got %T; using []", n.path, key, v)
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		s, err := cast.ToStringE(item)
		if err != nil {
			n.fr.warnf("%s.%s[%d]: %v; dropped", n.path, key, i, err)
			continue
		}
		out = append(out, s)
	}
	return out
}

// epochSecondsLimit separates Unix seconds from Unix milliseconds.
const epochSecondsLimit = 100_000_000_000

// timestamp returns text the manual-file time parser understands. Numbers are
// read as Unix milliseconds, or seconds when small enough.
func (n node) timestamp(key string) string {
	v, ok := n.value(key)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	}
	epoch, err := cast.ToInt64E(v)
	if err != nil {
		n.fr.warnf("%s.%s: %v; left empty", n.path, key, err)
		return ""
	}
	if epoch < epochSecondsLimit {
		return time.Unix(epoch, 0).UTC().Format(time.RFC3339Nano)
	}
	return time.UnixMilli(epoch).UTC().Format(time.RFC3339Nano)
}
