package services

import (
	"context"

	"github.com/grigouze/gandi.cli/internal/domain"
	"github.com/grigouze/gandi.cli/internal/reconcile"
)

// MailService manages mailboxes.
type MailService struct {
	api  domain.MailboxAPI
	ops  domain.OperationAPI
	sink Sink
}

func NewMailService(api domain.MailboxAPI, ops domain.OperationAPI, sink Sink) *MailService {
	return &MailService{api: api, ops: ops, sink: sink}
}

func (s *MailService) List(ctx context.Context, fqdn string, opts domain.ListOptions) ([]domain.Record, error) {
	return s.api.ListMailboxes(ctx, fqdn, opts)
}

func (s *MailService) Info(ctx context.Context, fqdn, login string) (domain.Record, error) {
	return s.api.MailboxInfo(ctx, fqdn, login)
}

func (s *MailService) Create(ctx context.Context, fqdn, login string, opts domain.MailboxOpts, aliases []string) (domain.Record, error) {
	s.sink.Echo("Creating your mailbox.")
	return s.api.CreateMailbox(ctx, fqdn, login, opts, aliases)
}

func (s *MailService) Delete(ctx context.Context, fqdn, login string) error {
	return s.api.DeleteMailbox(ctx, fqdn, login)
}

// Update changes mailbox options and aliases. Options are sent only when
// at least one is set, and aliases only when the reconciled set differs
// from the current one.
func (s *MailService) Update(ctx context.Context, fqdn, login string, opts domain.MailboxOpts, aliasAdd, aliasDel []string) (domain.Record, error) {
	s.sink.Echo("Updating your mailbox.")

	var result domain.Record
	if !opts.IsEmpty() {
		rec, err := s.api.UpdateMailbox(ctx, fqdn, login, opts)
		if err != nil {
			return nil, err
		}
		result = rec
	}

	if len(aliasAdd) == 0 && len(aliasDel) == 0 {
		return result, nil
	}

	info, err := s.api.MailboxInfo(ctx, fqdn, login)
	if err != nil {
		return nil, err
	}

	aliases, changed := reconcile.Apply(info.Strings("aliases"), aliasAdd, aliasDel)
	if !changed {
		return result, nil
	}

	s.sink.Echo("Updating aliases.")
	return s.api.SetAliases(ctx, fqdn, login, aliases)
}

// Purge deletes every message of a mailbox. In background mode the
// provider operation is returned; otherwise progress is rendered and the
// returned operation is nil.
func (s *MailService) Purge(ctx context.Context, fqdn, login string, background bool) (*domain.Operation, error) {
	op, err := s.api.PurgeMailbox(ctx, fqdn, login)
	if err != nil {
		return nil, err
	}
	if background {
		return op, nil
	}

	if op.Trackable() {
		s.sink.Echo("Purging in progress")
	}
	if err := s.sink.Progress(ctx, op, s.ops.OperationInfo); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *MailService) SetAliases(ctx context.Context, fqdn, login string, aliases []string) (domain.Record, error) {
	return s.api.SetAliases(ctx, fqdn, login, aliases)
}
