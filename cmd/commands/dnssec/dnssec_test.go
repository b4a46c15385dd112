package dnssec

import (
	"errors"
	"strings"
	"testing"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdtest"
	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/domain"

	"github.com/google/go-cmp/cmp"
)

const testPublicKey = "mdsswUyr3DPW132mOi8V9xESWE8jTo0dxCjjnopKl+GqJxpVXckHAeF+KkxLbxILfDLUT0rAK9iUzy1L53eKGQ=="

func execDNSSEC(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return cmdtest.Execute(t, NewCommand(), args...)
}

func TestList_ComputesKeyTag(t *testing.T) {
	cmdtest.Setup(t, &cmdtest.Backend{Keys: []domain.Record{
		{"id": int64(10), "flags": int64(257), "algorithm": int64(13), "public_key": testPublicKey},
	}})

	stdout, _, err := execDNSSEC(t, "list", "example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header, rule and one row, got:\n%s", stdout)
	}
	fields := strings.Fields(lines[2])
	if diff := cmp.Diff([]string{"10", "2371", "257", "13"}, fields[:4]); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasSuffix(lines[2], "…") {
		t.Errorf("expected the public key to be truncated: %q", lines[2])
	}
}

func TestCreate(t *testing.T) {
	b := &cmdtest.Backend{}
	cmdtest.Setup(t, b)

	stdout, _, err := execDNSSEC(t, "create", "example.com", "--flags", "ksk", "--algorithm", "ecdsap256sha256", "--public-key", testPublicKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.KeyParams{Flags: 257, Algorithm: 13, PublicKey: testPublicKey}
	if diff := cmp.Diff(want, b.Last("CreateKey").Args[1]); diff != "" {
		t.Errorf("key params mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(stdout, "algorithm:") {
		t.Errorf("expected key details, got: %s", stdout)
	}
}

func TestCreate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown algorithm", []string{"--algorithm", "ROT13"}},
		{"bad flags", []string{"--algorithm", "13", "--flags", "300"}},
		{"non numeric flags", []string{"--algorithm", "13", "--flags", "csk"}},
		{"bad key", []string{"--algorithm", "13", "--public-key", "not base64!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &cmdtest.Backend{}
			cmdtest.Setup(t, b)

			args := append([]string{"create", "example.com"}, tt.args...)
			if _, _, err := execDNSSEC(t, args...); err == nil {
				t.Fatal("expected an error")
			}
			if b.Last("CreateKey") != nil {
				t.Error("CreateKey must not be called with invalid parameters")
			}
		})
	}
}

func TestDelete(t *testing.T) {
	b := &cmdtest.Backend{}
	cmdtest.Setup(t, b)

	_, _, err := execDNSSEC(t, "delete", "example.com", "10")
	if !errors.Is(err, cmdutil.ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}

	stdout, _, err := execDNSSEC(t, "delete", "example.com", "10", "--force")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]any{"example.com", "10"}, b.Last("DeleteKey").Args); diff != "" {
		t.Errorf("delete args mismatch (-want +got):\n%s", diff)
	}
	if stdout != "Key 10 removed from example.com.\n" {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"8", 8},
		{"RSASHA256", 8},
		{"ed25519", 15},
	}

	for _, tt := range tests {
		got, err := parseAlgorithm(tt.in)
		if err != nil {
			t.Fatalf("parseAlgorithm(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parseAlgorithm(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
