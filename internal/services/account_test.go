package services

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grigouze/gandi.cli/internal/domain"
)

func TestAccountInfo_WithPrepaid(t *testing.T) {
	b := &fakeBackend{account: domain.Record{"handle": "jdoe", "prepaid": map[string]any{"amount": "10"}}}

	rec, err := NewAccountService(b).Info(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := rec["prepaid_info"]; ok {
		t.Error("prepaid_info should not be added when prepaid is present")
	}
	if diff := cmp.Diff([]string{"AccountInfo"}, b.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestAccountInfo_FetchesBalance(t *testing.T) {
	b := &fakeBackend{
		account: domain.Record{"handle": "AB1234-GANDI", "credit": int64(50)},
		balance: domain.Record{"prepaid": map[string]any{"amount": "3.20", "currency": "EUR"}},
	}

	rec, err := NewAccountService(b).Info(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.Record{
		"handle":       "AB1234-GANDI",
		"credit":       int64(50),
		"prepaid_info": domain.Record{"amount": "3.20", "currency": "EUR"},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("account mismatch (-want +got):\n%s", diff)
	}
	if _, ok := b.account["prepaid_info"]; ok {
		t.Error("backend record must not be modified")
	}
}

func TestAccountInfo_BalanceWithoutPrepaid(t *testing.T) {
	b := &fakeBackend{account: domain.Record{"handle": "x"}, balance: domain.Record{}}

	rec, err := NewAccountService(b).Info(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(domain.Record{}, rec["prepaid_info"]); diff != "" {
		t.Errorf("prepaid_info mismatch (-want +got):\n%s", diff)
	}
}
