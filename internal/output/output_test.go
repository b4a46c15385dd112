package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/grigouze/gandi.cli/internal/domain"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{" JSON ", FormatJSON, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "example.com", "example.com"},
		{"int64", int64(42), "42"},
		{"whole float", float64(3), "3"},
		{"fraction", 12.5, "12.5"},
		{"true", true, "yes"},
		{"false", false, "no"},
		{"time", time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC), "2030-01-02 03:04:05"},
		{"strings", []string{"a@x.org", "b@x.org"}, "a@x.org, b@x.org"},
		{"any slice", []any{"ns1.gandi.net", int64(2)}, "ns1.gandi.net, 2"},
		{"map", map[string]any{"b": "2", "a": int64(1)}, "a=1 b=2"},
		{"record", domain.Record{"amount": 10.0}, "amount=10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTable(t *testing.T) {
	records := []domain.Record{
		{"fqdn": "example.com", "id": int64(1)},
		{"fqdn": "example.net", "id": int64(22), "extra": "ignored"},
		{"id": int64(3)},
	}

	var buf bytes.Buffer
	err := Table(&buf, records, []Column{
		{Header: "FQDN", Key: "fqdn"},
		{Header: "ID", Key: "id"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "" +
		"FQDN          ID\n" +
		"----          --\n" +
		"example.com   1\n" +
		"example.net   22\n" +
		"              3\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_TruncatesWideCells(t *testing.T) {
	records := []domain.Record{{"key": "AwEAAcHYkfm3GQ9x0bNxH3Yc"}}

	var buf bytes.Buffer
	if err := Table(&buf, records, []Column{{Header: "KEY", Key: "key", Width: 10}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "KEY\n---\nAwEAAcHYk…\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
	if w := ansi.StringWidth("AwEAAcHYk…"); w != 10 {
		t.Errorf("truncated width = %d, want 10", w)
	}
}

func TestDetail_OrderedThenSorted(t *testing.T) {
	rec := domain.Record{
		"zone":      "example.com",
		"fqdn":      "example.com",
		"status":    []any{"clientTransferProhibited"},
		"autorenew": true,
	}

	var buf bytes.Buffer
	if err := Detail(&buf, rec, []string{"fqdn", "missing", "status"}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "" +
		"fqdn:       example.com\n" +
		"status:     clientTransferProhibited\n" +
		"autorenew:  yes\n" +
		"zone:       example.com\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("detail mismatch (-want +got):\n%s", diff)
	}
}

func TestDetail_Only(t *testing.T) {
	rec := domain.Record{"login": "admin", "quota": int64(0), "secret": "x"}

	var buf bytes.Buffer
	if err := Detail(&buf, rec, []string{"login", "quota"}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "login:  admin\nquota:  0\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("detail mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, []domain.Record{{"fqdn": "example.com"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	want := []map[string]any{{"fqdn": "example.com"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}
}
