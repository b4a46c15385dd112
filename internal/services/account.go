package services

import (
	"context"

	"github.com/grigouze/gandi.cli/internal/domain"
)

// AccountService reads account and billing information.
type AccountService struct {
	api domain.AccountAPI
}

func NewAccountService(api domain.AccountAPI) *AccountService {
	return &AccountService{api: api}
}

// Info returns the account. When the account carries no prepaid
// information, the contact balance is fetched and attached as
// "prepaid_info".
func (s *AccountService) Info(ctx context.Context, sharingID string) (domain.Record, error) {
	account, err := s.api.AccountInfo(ctx, sharingID)
	if err != nil {
		return nil, err
	}
	if _, ok := account["prepaid"]; ok {
		return account, nil
	}

	balance, err := s.api.Balance(ctx, sharingID)
	if err != nil {
		return nil, err
	}

	out := account.Clone()
	prepaid := balance.Record("prepaid")
	if prepaid == nil {
		prepaid = domain.Record{}
	}
	out["prepaid_info"] = prepaid
	return out, nil
}
