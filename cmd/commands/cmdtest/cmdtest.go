// Package cmdtest provides a scripted backend and a command harness for
// testing the gandi subcommands without network access.
package cmdtest

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/grigouze/gandi.cli/internal/config"
	"github.com/grigouze/gandi.cli/internal/domain"
	"github.com/grigouze/gandi.cli/internal/providers"
	"github.com/grigouze/gandi.cli/internal/transport"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

// Call records one backend invocation.
type Call struct {
	Method string
	Args   []any
}

// Backend is an in-memory domain.Backend with canned responses. Every call
// is recorded; Err, when set, is returned by every method.
type Backend struct {
	mu sync.Mutex

	Domains      []domain.Record
	DomainInfos  map[string]domain.Record
	Availability string
	Contact      any
	Op           *domain.Operation
	OpStep       string
	Autorenew    domain.Record

	Forwards []domain.Record

	Mailboxes    []domain.Record
	MailboxInfos map[string]domain.Record

	Keys []domain.Record

	VLANs       []domain.Record
	Datacenters []domain.Record

	Account domain.Record
	Funds   domain.Record

	Err error

	Calls []Call
}

var _ domain.Backend = (*Backend)(nil)

func (b *Backend) record(method string, args ...any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Calls = append(b.Calls, Call{Method: method, Args: args})
	return b.Err
}

// Methods returns the recorded method names in call order.
func (b *Backend) Methods() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	names := make([]string, len(b.Calls))
	for i, c := range b.Calls {
		names[i] = c.Method
	}
	return names
}

// Last returns the most recent call to method, or nil.
func (b *Backend) Last(method string) *Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.Calls) - 1; i >= 0; i-- {
		if b.Calls[i].Method == method {
			c := b.Calls[i]
			return &c
		}
	}
	return nil
}

func (b *Backend) Name() string { return "fake" }

func (b *Backend) ListDomains(_ context.Context, opts domain.ListOptions) ([]domain.Record, error) {
	if err := b.record("ListDomains", opts); err != nil {
		return nil, err
	}
	if opts.FQDN == "" {
		return b.Domains, nil
	}
	var out []domain.Record
	for _, d := range b.Domains {
		if d.String("fqdn") == opts.FQDN {
			out = append(out, d)
		}
	}
	return out, nil
}

func (b *Backend) DomainInfo(_ context.Context, fqdn string) (domain.Record, error) {
	if err := b.record("DomainInfo", fqdn); err != nil {
		return nil, err
	}
	rec, ok := b.DomainInfos[fqdn]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func (b *Backend) DomainAvailability(_ context.Context, fqdn string) (string, error) {
	if err := b.record("DomainAvailability", fqdn); err != nil {
		return "", err
	}
	if b.Availability == "" {
		return domain.StatusAvailable, nil
	}
	return b.Availability, nil
}

func (b *Backend) DefaultContact(_ context.Context) (any, error) {
	if err := b.record("DefaultContact"); err != nil {
		return nil, err
	}
	return b.Contact, nil
}

func (b *Backend) CreateDomain(_ context.Context, fqdn string, params domain.CreateDomainParams) (*domain.Operation, error) {
	if err := b.record("CreateDomain", fqdn, params); err != nil {
		return nil, err
	}
	return b.Op, nil
}

func (b *Backend) RenewDomain(_ context.Context, fqdn string, params domain.RenewParams) (*domain.Operation, error) {
	if err := b.record("RenewDomain", fqdn, params); err != nil {
		return nil, err
	}
	return b.Op, nil
}

func (b *Backend) SetAutorenew(_ context.Context, fqdn string, enabled bool) (domain.Record, error) {
	if err := b.record("SetAutorenew", fqdn, enabled); err != nil {
		return nil, err
	}
	return b.Autorenew, nil
}

func (b *Backend) ListForwards(_ context.Context, fqdn string, opts domain.ListOptions) ([]domain.Record, error) {
	if err := b.record("ListForwards", fqdn, opts); err != nil {
		return nil, err
	}
	return b.Forwards, nil
}

func (b *Backend) CreateForward(_ context.Context, fqdn, source string, destinations []string) (domain.Record, error) {
	if err := b.record("CreateForward", fqdn, source, destinations); err != nil {
		return nil, err
	}
	return domain.Record{"source": source, "destinations": destinations}, nil
}

func (b *Backend) UpdateForward(_ context.Context, fqdn, source string, destinations []string) (domain.Record, error) {
	if err := b.record("UpdateForward", fqdn, source, destinations); err != nil {
		return nil, err
	}
	return domain.Record{"source": source, "destinations": destinations}, nil
}

func (b *Backend) DeleteForward(_ context.Context, fqdn, source string) error {
	return b.record("DeleteForward", fqdn, source)
}

func (b *Backend) ListMailboxes(_ context.Context, fqdn string, opts domain.ListOptions) ([]domain.Record, error) {
	if err := b.record("ListMailboxes", fqdn, opts); err != nil {
		return nil, err
	}
	return b.Mailboxes, nil
}

func (b *Backend) MailboxInfo(_ context.Context, fqdn, login string) (domain.Record, error) {
	if err := b.record("MailboxInfo", fqdn, login); err != nil {
		return nil, err
	}
	rec, ok := b.MailboxInfos[login+"@"+fqdn]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func (b *Backend) CreateMailbox(_ context.Context, fqdn, login string, opts domain.MailboxOpts, aliases []string) (domain.Record, error) {
	if err := b.record("CreateMailbox", fqdn, login, opts, aliases); err != nil {
		return nil, err
	}
	return domain.Record{"login": login}, nil
}

func (b *Backend) UpdateMailbox(_ context.Context, fqdn, login string, opts domain.MailboxOpts) (domain.Record, error) {
	if err := b.record("UpdateMailbox", fqdn, login, opts); err != nil {
		return nil, err
	}
	return domain.Record{"login": login}, nil
}

func (b *Backend) DeleteMailbox(_ context.Context, fqdn, login string) error {
	return b.record("DeleteMailbox", fqdn, login)
}

func (b *Backend) PurgeMailbox(_ context.Context, fqdn, login string) (*domain.Operation, error) {
	if err := b.record("PurgeMailbox", fqdn, login); err != nil {
		return nil, err
	}
	return b.Op, nil
}

func (b *Backend) SetAliases(_ context.Context, fqdn, login string, aliases []string) (domain.Record, error) {
	if err := b.record("SetAliases", fqdn, login, aliases); err != nil {
		return nil, err
	}
	return domain.Record{"login": login, "aliases": aliases}, nil
}

func (b *Backend) ListKeys(_ context.Context, fqdn string) ([]domain.Record, error) {
	if err := b.record("ListKeys", fqdn); err != nil {
		return nil, err
	}
	return b.Keys, nil
}

func (b *Backend) CreateKey(_ context.Context, fqdn string, params domain.KeyParams) (domain.Record, error) {
	if err := b.record("CreateKey", fqdn, params); err != nil {
		return nil, err
	}
	return domain.Record{"id": int64(1), "flags": int64(params.Flags), "algorithm": int64(params.Algorithm)}, nil
}

func (b *Backend) DeleteKey(_ context.Context, fqdn, keyID string) error {
	return b.record("DeleteKey", fqdn, keyID)
}

func (b *Backend) ListVLANs(_ context.Context, datacenterID int) ([]domain.Record, error) {
	if err := b.record("ListVLANs", datacenterID); err != nil {
		return nil, err
	}
	return b.VLANs, nil
}

func (b *Backend) ListDatacenters(_ context.Context) ([]domain.Record, error) {
	if err := b.record("ListDatacenters"); err != nil {
		return nil, err
	}
	return b.Datacenters, nil
}

func (b *Backend) AccountInfo(_ context.Context, sharingID string) (domain.Record, error) {
	if err := b.record("AccountInfo", sharingID); err != nil {
		return nil, err
	}
	return b.Account, nil
}

func (b *Backend) Balance(_ context.Context, sharingID string) (domain.Record, error) {
	if err := b.record("Balance", sharingID); err != nil {
		return nil, err
	}
	return b.Funds, nil
}

func (b *Backend) OperationInfo(_ context.Context, id int) (*domain.Operation, error) {
	if err := b.record("OperationInfo", id); err != nil {
		return nil, err
	}
	step := b.OpStep
	if step == "" {
		step = domain.StepDone
	}
	return &domain.Operation{ID: id, Step: step}, nil
}

// Setup isolates the config file and keychain, and registers b as the
// backend of both transports. It returns the config file path.
func Setup(t *testing.T, b *Backend) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)

	keyring.MockInit()
	t.Setenv("GANDI_API_KEY", "")
	t.Setenv("GANDI_APIREST_KEY", "")

	providers.Reset()
	t.Cleanup(providers.Reset)
	factory := func(config.Store, providers.Options) (domain.Backend, error) {
		return b, nil
	}
	providers.Register(transport.Legacy, factory)
	providers.Register(transport.REST, factory)

	return path
}

// Execute runs cmd with args and returns what it wrote to stdout and
// stderr together with the execution error.
func Execute(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}
