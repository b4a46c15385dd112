package vlan

import (
	"errors"
	"strings"
	"testing"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdtest"
	"github.com/grigouze/gandi.cli/internal/domain"
)

func testBackend() *cmdtest.Backend {
	return &cmdtest.Backend{
		Datacenters: []domain.Record{
			{"id": int64(1), "dc_code": "FR-SD2", "iso": "FR", "name": "Paris"},
			{"id": int64(3), "dc_code": "LU-BI1", "iso": "LU", "name": "Bissen"},
		},
		VLANs: []domain.Record{
			{"id": int64(77), "name": "backend", "datacenter_id": int64(3), "subnet": "10.0.0.0/24"},
		},
	}
}

func TestList(t *testing.T) {
	b := testBackend()
	cmdtest.Setup(t, b)

	stdout, _, err := cmdtest.Execute(t, NewCommand(), "list", "--datacenter", "lu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := b.Last("ListVLANs").Args[0]; got != 3 {
		t.Errorf("datacenter id = %v, want 3", got)
	}
	for _, want := range []string{"backend", "77", "LU-BI1", "10.0.0.0/24"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestList_UnknownDatacenter(t *testing.T) {
	b := testBackend()
	cmdtest.Setup(t, b)

	_, _, err := cmdtest.Execute(t, NewCommand(), "list", "--datacenter", "atlantis")
	if !errors.Is(err, domain.ErrUnknownIdentifier) {
		t.Fatalf("expected ErrUnknownIdentifier, got %v", err)
	}
	if b.Last("ListVLANs") != nil {
		t.Error("ListVLANs must not be called for an unknown datacenter")
	}
}

func TestList_Unsupported(t *testing.T) {
	cmdtest.Setup(t, &cmdtest.Backend{Err: domain.ErrUnsupported})

	_, stderr, err := cmdtest.Execute(t, NewCommand(), "list")
	if !errors.Is(err, domain.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if !strings.Contains(stderr, "failed to list vlans") {
		t.Errorf("expected error on stderr, got: %s", stderr)
	}
}
