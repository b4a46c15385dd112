package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/grigouze/gandi.cli/internal/config"
	"github.com/grigouze/gandi.cli/internal/domain"
	"github.com/grigouze/gandi.cli/internal/retry"
)

type rpcCall struct {
	Method string
	Params []any
}

// fakeCaller records calls and answers from per-method reply queues. The
// last queued reply of a method is repeated once the queue is drained.
type fakeCaller struct {
	calls   []rpcCall
	replies map[string][]any
	errs    map[string]error
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{replies: map[string][]any{}, errs: map[string]error{}}
}

func (f *fakeCaller) on(method string, replies ...any) *fakeCaller {
	f.replies[method] = append(f.replies[method], replies...)
	return f
}

func (f *fakeCaller) Call(_ context.Context, method string, params ...any) (any, error) {
	f.calls = append(f.calls, rpcCall{Method: method, Params: params})
	if err := f.errs[method]; err != nil {
		return nil, err
	}
	queue := f.replies[method]
	if len(queue) == 0 {
		return nil, nil
	}
	reply := queue[0]
	if len(queue) > 1 {
		f.replies[method] = queue[1:]
	}
	return reply, nil
}

func (f *fakeCaller) methods() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Method
	}
	return out
}

func newTestLegacy(caller *fakeCaller, store config.Store) *LegacyBackend {
	b := NewLegacyBackend(caller, store, nil)
	b.poll = retry.PollConfig{MaxAttempts: 10}
	return b
}

func TestLegacy_DomainAvailabilityPollsWhilePending(t *testing.T) {
	caller := newFakeCaller().on("domain.available",
		map[string]any{"example.com": "pending"},
		map[string]any{"example.com": "pending"},
		map[string]any{"example.com": "available"},
	)
	b := newTestLegacy(caller, nil)

	status, err := b.DomainAvailability(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != domain.StatusAvailable {
		t.Errorf("status = %q, want %q", status, domain.StatusAvailable)
	}
	if len(caller.calls) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(caller.calls))
	}
	if diff := cmp.Diff([]any{[]string{"example.com"}}, caller.calls[0].Params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestLegacy_DomainAvailabilityBounded(t *testing.T) {
	caller := newFakeCaller().on("domain.available", map[string]any{"example.com": "pending"})
	b := newTestLegacy(caller, nil)
	b.poll = retry.PollConfig{MaxAttempts: 3}

	_, err := b.DomainAvailability(context.Background(), "example.com")
	if !errors.Is(err, retry.ErrPollExhausted) {
		t.Fatalf("expected ErrPollExhausted, got %v", err)
	}
	if len(caller.calls) != 3 {
		t.Errorf("expected 3 checks, got %d", len(caller.calls))
	}
}

func TestLegacy_DomainAvailabilityMissingStatus(t *testing.T) {
	caller := newFakeCaller().on("domain.available", map[string]any{"other.com": "available"})
	b := newTestLegacy(caller, nil)

	if _, err := b.DomainAvailability(context.Background(), "example.com"); err == nil {
		t.Fatal("expected error when the reply has no status for the name")
	}
}

func TestLegacy_DefaultContactCachesHandle(t *testing.T) {
	caller := newFakeCaller().on("contact.info", map[string]any{"handle": "AB1234-GANDI"})
	store := config.NewMockStore(nil)
	b := newTestLegacy(caller, store)

	contact, err := b.DefaultContact(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact != "AB1234-GANDI" {
		t.Errorf("contact = %v, want handle", contact)
	}
	if got := store.Get("api.handle"); got != "AB1234-GANDI" {
		t.Errorf("api.handle = %q, want cached handle", got)
	}
}

func TestLegacy_CreateDomainParams(t *testing.T) {
	caller := newFakeCaller().on("domain.create", map[string]any{"id": int64(77), "step": "BILL"})
	b := newTestLegacy(caller, nil)

	op, err := b.CreateDomain(context.Background(), "example.com", domain.CreateDomainParams{
		Duration:    2,
		Owner:       "OWN-GANDI",
		Admin:       "ADM-GANDI",
		Tech:        "TEC-GANDI",
		Bill:        "BIL-GANDI",
		Nameservers: []string{"ns1.example.net"},
		Extra:       map[string]string{"x-lang": "fr"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.ID != 77 || op.Step != domain.StepBill {
		t.Errorf("unexpected operation %+v", op)
	}

	want := []any{"example.com", map[string]any{
		"duration":    2,
		"owner":       "OWN-GANDI",
		"admin":       "ADM-GANDI",
		"tech":        "TEC-GANDI",
		"bill":        "BIL-GANDI",
		"nameservers": []string{"ns1.example.net"},
		"extra":       map[string]string{"x-lang": "fr"},
	}}
	if diff := cmp.Diff(want, caller.calls[0].Params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestLegacy_RenewOmitsUnknownYear(t *testing.T) {
	caller := newFakeCaller().on("domain.renew", map[string]any{"id": int64(1)})
	b := newTestLegacy(caller, nil)

	if _, err := b.RenewDomain(context.Background(), "example.com", domain.RenewParams{Duration: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.RenewDomain(context.Background(), "example.com", domain.RenewParams{Duration: 1, CurrentYear: 2030}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][]any{
		{"example.com", map[string]any{"duration": 1}},
		{"example.com", map[string]any{"duration": 1, "current_year": 2030}},
	}
	for i, w := range want {
		if diff := cmp.Diff(w, caller.calls[i].Params); diff != "" {
			t.Errorf("call %d params mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestLegacy_SetAutorenewMethods(t *testing.T) {
	caller := newFakeCaller()
	b := newTestLegacy(caller, nil)

	b.SetAutorenew(context.Background(), "example.com", true)
	b.SetAutorenew(context.Background(), "example.com", false)

	want := []string{"domain.autorenew.activate", "domain.autorenew.deactivate"}
	if diff := cmp.Diff(want, caller.methods()); diff != "" {
		t.Errorf("methods mismatch (-want +got):\n%s", diff)
	}
}

func TestLegacy_CreateMailboxSetsAliasesSeparately(t *testing.T) {
	caller := newFakeCaller()
	b := newTestLegacy(caller, nil)

	_, err := b.CreateMailbox(context.Background(), "example.com", "admin",
		domain.MailboxOpts{Password: "s3cret", Quota: 100}, []string{"root", "postmaster"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []rpcCall{
		{Method: "domain.mailbox.create", Params: []any{"example.com", "admin", map[string]any{"password": "s3cret", "quota": 100}}},
		{Method: "domain.mailbox.alias.set", Params: []any{"example.com", "admin", []string{"root", "postmaster"}}},
	}
	if diff := cmp.Diff(want, caller.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestLegacy_CreateMailboxWithoutAliases(t *testing.T) {
	caller := newFakeCaller()
	b := newTestLegacy(caller, nil)

	if _, err := b.CreateMailbox(context.Background(), "example.com", "admin", domain.MailboxOpts{Password: "pw"}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"domain.mailbox.create"}, caller.methods()); diff != "" {
		t.Errorf("methods mismatch (-want +got):\n%s", diff)
	}
}

func TestLegacy_MailboxInfoAlwaysHasAliases(t *testing.T) {
	caller := newFakeCaller().on("domain.mailbox.info", map[string]any{"login": "admin"})
	b := newTestLegacy(caller, nil)

	rec, err := b.MailboxInfo(context.Background(), "example.com", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{}, rec["aliases"]); diff != "" {
		t.Errorf("aliases mismatch (-want +got):\n%s", diff)
	}
}

func TestLegacy_DeleteKeyTakesOnlyID(t *testing.T) {
	caller := newFakeCaller()
	b := newTestLegacy(caller, nil)

	if err := b.DeleteKey(context.Background(), "example.com", "12"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []rpcCall{{Method: "domain.dnssec.delete", Params: []any{12}}}
	if diff := cmp.Diff(want, caller.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}

	if err := b.DeleteKey(context.Background(), "example.com", "abc"); !errors.Is(err, domain.ErrUnknownIdentifier) {
		t.Errorf("expected ErrUnknownIdentifier, got %v", err)
	}
}

func TestLegacy_ListDomainsParams(t *testing.T) {
	caller := newFakeCaller().on("domain.list", []any{
		map[string]any{"id": int64(1), "fqdn": "a.com"},
		map[string]any{"id": int64(2), "fqdn": "b.com"},
	})
	b := newTestLegacy(caller, nil)

	recs, err := b.ListDomains(context.Background(), domain.ListOptions{PerPage: 50, FQDN: "a.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	want := []any{map[string]any{"items_per_page": 50, "fqdn": "a.com"}}
	if diff := cmp.Diff(want, caller.calls[0].Params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestLegacy_ErrorsAreWrapped(t *testing.T) {
	caller := newFakeCaller()
	caller.errs["domain.info"] = domain.ErrNotFound
	b := newTestLegacy(caller, nil)

	_, err := b.DomainInfo(context.Background(), "nope.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLegacy_AccountAndOperation(t *testing.T) {
	caller := newFakeCaller().
		on("hosting.account.info", map[string]any{"handle": "AB1234-GANDI", "credits": int64(120)}).
		on("operation.info", map[string]any{"id": int64(9), "step": "DONE", "date_updated": time.Unix(0, 0)})
	b := newTestLegacy(caller, nil)

	acct, err := b.AccountInfo(context.Background(), "")
	if err != nil {
		t.Fatalf("AccountInfo: %v", err)
	}
	if acct["credit"] != int64(120) {
		t.Errorf("credit = %v, want 120", acct["credit"])
	}

	op, err := b.OperationInfo(context.Background(), 9)
	if err != nil {
		t.Fatalf("OperationInfo: %v", err)
	}
	if !op.Done() || op.Failed() {
		t.Errorf("unexpected operation state %+v", op)
	}
}
