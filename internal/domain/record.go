package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Record is a provider result as a string-keyed map. Both transports return
// loosely typed structures; normalization reshapes them so that callers can
// read the same keys regardless of transport.
type Record map[string]any

// String returns the value at key formatted as a string, or "" when absent.
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

// Strings returns the value at key as a string slice. Non-string elements
// are formatted with fmt.Sprint.
func (r Record) Strings(key string) []string {
	switch t := r[key].(type) {
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			out = append(out, fmt.Sprint(v))
		}
		return out
	default:
		return nil
	}
}

// Int returns the value at key as an int. The second result is false when
// the value is absent or not an integer.
func (r Record) Int(key string) (int, bool) {
	switch t := r[key].(type) {
	case int:
		return t, true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case float64:
		if t != float64(int(t)) {
			return 0, false
		}
		return int(t), true
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Record returns the nested record at key, or nil.
func (r Record) Record(key string) Record {
	return AsRecord(r[key])
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// AsRecord converts a decoded structure into a Record. It returns nil for
// anything that is not a string-keyed map.
func AsRecord(v any) Record {
	switch t := v.(type) {
	case Record:
		return t
	case map[string]any:
		return Record(t)
	default:
		return nil
	}
}

// AsRecords converts a decoded list into records, skipping non-map items.
func AsRecords(v any) []Record {
	var items []any
	switch t := v.(type) {
	case []Record:
		return t
	case []map[string]any:
		out := make([]Record, len(t))
		for i, m := range t {
			out[i] = Record(m)
		}
		return out
	case []any:
		items = t
	default:
		return nil
	}

	out := make([]Record, 0, len(items))
	for _, item := range items {
		if rec := AsRecord(item); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}
