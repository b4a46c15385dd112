// Package output renders provider records for the terminal: vertical
// key/value details, column tables and JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/grigouze/gandi.cli/internal/domain"

	"github.com/charmbracelet/x/ansi"
)

// Format selects how command results are printed.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates a format name. An empty name selects FormatTable.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported output format %q (valid: table, json)", s)
}

// JSON encodes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Column describes one table column.
type Column struct {
	Header string
	Key    string

	// Width truncates cell values to this many cells. Zero means no limit.
	Width int
}

// Table prints records as aligned columns. Missing keys render empty.
func Table(w io.Writer, records []domain.Record, columns []Column) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	headers := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Header
		rules[i] = strings.Repeat("-", len(c.Header))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))

	cells := make([]string, len(columns))
	for _, rec := range records {
		for i, c := range columns {
			cells[i] = cell(FormatValue(rec[c.Key]), c.Width)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// Detail prints a vertical key/value listing of rec. Keys are printed in the
// given order first, then every remaining key sorted. With only set, just
// the given keys are printed.
func Detail(w io.Writer, rec domain.Record, keys []string, only bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		seen[k] = true
		v, ok := rec[k]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s:\t%s\n", k, FormatValue(v))
	}

	if !only {
		rest := make([]string, 0, len(rec))
		for k := range rec {
			if !seen[k] {
				rest = append(rest, k)
			}
		}
		sort.Strings(rest)
		for _, k := range rest {
			fmt.Fprintf(tw, "%s:\t%s\n", k, FormatValue(rec[k]))
		}
	}

	return tw.Flush()
}

// FormatValue renders a decoded provider value on a single line.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.UTC().Format("2006-01-02 15:04:05")
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case []string:
		return strings.Join(val, ", ")
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = FormatValue(item)
		}
		return strings.Join(parts, ", ")
	case domain.Record:
		return formatMap(val)
	case map[string]any:
		return formatMap(val)
	default:
		return fmt.Sprint(val)
	}
}

func formatMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + FormatValue(m[k])
	}
	return strings.Join(parts, " ")
}

// cell flattens and truncates a value for a table cell.
func cell(s string, width int) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if width > 0 && ansi.StringWidth(s) > width {
		return ansi.Truncate(s, width, "…")
	}
	return s
}
