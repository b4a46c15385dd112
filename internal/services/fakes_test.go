package services

import (
	"context"
	"fmt"

	"github.com/grigouze/gandi.cli/internal/domain"
)

// fakeBackend implements every resource API. It records call names and
// answers from its fields; unset answers are zero values.
type fakeBackend struct {
	calls []string

	availability   []string
	contact        any
	domains        []domain.Record
	info           domain.Record
	createOp       *domain.Operation
	renewOp        *domain.Operation
	createParams   domain.CreateDomainParams
	renewParams    domain.RenewParams
	listOpts       []domain.ListOptions
	forwards       []domain.Record
	updatedDests   []string
	mailbox        domain.Record
	setAliases     []string
	updateOpts     *domain.MailboxOpts
	purgeOp        *domain.Operation
	keys           []domain.Record
	createdKey     *domain.KeyParams
	vlans          []domain.Record
	vlanFilter     int
	datacenters    []domain.Record
	account        domain.Record
	balance        domain.Record
	operationSteps []string

	err error
}

func (f *fakeBackend) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeBackend) ListDomains(_ context.Context, opts domain.ListOptions) ([]domain.Record, error) {
	f.record("ListDomains")
	f.listOpts = append(f.listOpts, opts)
	return f.domains, f.err
}

func (f *fakeBackend) DomainInfo(context.Context, string) (domain.Record, error) {
	f.record("DomainInfo")
	return f.info, f.err
}

func (f *fakeBackend) DomainAvailability(context.Context, string) (string, error) {
	f.record("DomainAvailability")
	if len(f.availability) == 0 {
		return domain.StatusAvailable, f.err
	}
	status := f.availability[0]
	f.availability = f.availability[1:]
	return status, f.err
}

func (f *fakeBackend) DefaultContact(context.Context) (any, error) {
	f.record("DefaultContact")
	return f.contact, f.err
}

func (f *fakeBackend) CreateDomain(_ context.Context, _ string, params domain.CreateDomainParams) (*domain.Operation, error) {
	f.record("CreateDomain")
	f.createParams = params
	return f.createOp, f.err
}

func (f *fakeBackend) RenewDomain(_ context.Context, _ string, params domain.RenewParams) (*domain.Operation, error) {
	f.record("RenewDomain")
	f.renewParams = params
	return f.renewOp, f.err
}

func (f *fakeBackend) SetAutorenew(context.Context, string, bool) (domain.Record, error) {
	f.record("SetAutorenew")
	return domain.Record{}, f.err
}

func (f *fakeBackend) ListForwards(_ context.Context, _ string, opts domain.ListOptions) ([]domain.Record, error) {
	f.record("ListForwards")
	f.listOpts = append(f.listOpts, opts)
	return f.forwards, f.err
}

func (f *fakeBackend) CreateForward(context.Context, string, string, []string) (domain.Record, error) {
	f.record("CreateForward")
	return domain.Record{}, f.err
}

func (f *fakeBackend) UpdateForward(_ context.Context, _, _ string, destinations []string) (domain.Record, error) {
	f.record("UpdateForward")
	f.updatedDests = destinations
	return domain.Record{"destinations": destinations}, f.err
}

func (f *fakeBackend) DeleteForward(context.Context, string, string) error {
	f.record("DeleteForward")
	return f.err
}

func (f *fakeBackend) ListMailboxes(context.Context, string, domain.ListOptions) ([]domain.Record, error) {
	f.record("ListMailboxes")
	return nil, f.err
}

func (f *fakeBackend) MailboxInfo(context.Context, string, string) (domain.Record, error) {
	f.record("MailboxInfo")
	return f.mailbox, f.err
}

func (f *fakeBackend) CreateMailbox(context.Context, string, string, domain.MailboxOpts, []string) (domain.Record, error) {
	f.record("CreateMailbox")
	return domain.Record{}, f.err
}

func (f *fakeBackend) UpdateMailbox(_ context.Context, _, _ string, opts domain.MailboxOpts) (domain.Record, error) {
	f.record("UpdateMailbox")
	f.updateOpts = &opts
	return domain.Record{"updated": true}, f.err
}

func (f *fakeBackend) DeleteMailbox(context.Context, string, string) error {
	f.record("DeleteMailbox")
	return f.err
}

func (f *fakeBackend) PurgeMailbox(context.Context, string, string) (*domain.Operation, error) {
	f.record("PurgeMailbox")
	return f.purgeOp, f.err
}

func (f *fakeBackend) SetAliases(_ context.Context, _, _ string, aliases []string) (domain.Record, error) {
	f.record("SetAliases")
	f.setAliases = aliases
	return domain.Record{"aliases": aliases}, f.err
}

func (f *fakeBackend) ListKeys(context.Context, string) ([]domain.Record, error) {
	f.record("ListKeys")
	return f.keys, f.err
}

func (f *fakeBackend) CreateKey(_ context.Context, _ string, params domain.KeyParams) (domain.Record, error) {
	f.record("CreateKey")
	f.createdKey = &params
	return domain.Record{}, f.err
}

func (f *fakeBackend) DeleteKey(context.Context, string, string) error {
	f.record("DeleteKey")
	return f.err
}

func (f *fakeBackend) ListVLANs(_ context.Context, datacenterID int) ([]domain.Record, error) {
	f.record("ListVLANs")
	f.vlanFilter = datacenterID
	return f.vlans, f.err
}

func (f *fakeBackend) ListDatacenters(context.Context) ([]domain.Record, error) {
	f.record("ListDatacenters")
	return f.datacenters, f.err
}

func (f *fakeBackend) AccountInfo(context.Context, string) (domain.Record, error) {
	f.record("AccountInfo")
	return f.account, f.err
}

func (f *fakeBackend) Balance(context.Context, string) (domain.Record, error) {
	f.record("Balance")
	return f.balance, f.err
}

func (f *fakeBackend) OperationInfo(_ context.Context, id int) (*domain.Operation, error) {
	f.record("OperationInfo")
	if len(f.operationSteps) == 0 {
		return &domain.Operation{ID: id, Step: domain.StepDone}, f.err
	}
	step := f.operationSteps[0]
	f.operationSteps = f.operationSteps[1:]
	return &domain.Operation{ID: id, Step: step}, f.err
}

// fakeSink records messages and drives Progress by polling until the
// operation is done.
type fakeSink struct {
	interactive bool
	messages    []string
	progressed  []*domain.Operation
}

func (s *fakeSink) Echo(msg string) { s.messages = append(s.messages, msg) }

func (s *fakeSink) IsInteractive() bool { return s.interactive }

func (s *fakeSink) Progress(ctx context.Context, op *domain.Operation, poll OperationFunc) error {
	s.progressed = append(s.progressed, op)
	if !op.Trackable() {
		return nil
	}
	for {
		cur, err := poll(ctx, op.ID)
		if err != nil {
			return err
		}
		if cur.Failed() {
			return fmt.Errorf("operation %d failed", cur.ID)
		}
		if cur.Done() {
			return nil
		}
	}
}
