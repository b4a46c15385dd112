package providers

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/grigouze/gandi.cli/internal/config"
	"github.com/grigouze/gandi.cli/internal/domain"
	"github.com/grigouze/gandi.cli/internal/retry"
	"github.com/grigouze/gandi.cli/internal/services/auth"
	"github.com/grigouze/gandi.cli/internal/transport"
)

// Compile-time check that LegacyBackend satisfies domain.Backend.
var _ domain.Backend = (*LegacyBackend)(nil)

// Caller issues one XML-RPC method call. *transport.RPCClient implements it.
type Caller interface {
	Call(ctx context.Context, method string, params ...any) (any, error)
}

// LegacyBackend implements domain.Backend over the XML-RPC API.
type LegacyBackend struct {
	rpc    Caller
	store  config.Store
	poll   retry.PollConfig
	logger *slog.Logger
}

// NewLegacyBackend creates a LegacyBackend issuing calls through rpc. The
// store receives the contact handle discovered during registrations.
func NewLegacyBackend(rpc Caller, store config.Store, logger *slog.Logger) *LegacyBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &LegacyBackend{
		rpc:    rpc,
		store:  store,
		poll:   retry.DefaultPollConfig(),
		logger: logger,
	}
}

// RegisterLegacy registers the XML-RPC backend factory with the registry.
func RegisterLegacy() {
	Register(transport.Legacy, func(store config.Store, opts Options) (domain.Backend, error) {
		return newLegacyFromStore(store, opts)
	})
}

func newLegacyFromStore(store config.Store, opts Options) (*LegacyBackend, error) {
	key := store.Get(config.KeyAPIKey)
	if key == "" {
		return nil, fmt.Errorf("legacy auth: api key not found (run 'gandi auth login'): %w", auth.ErrTokenNotFound)
	}

	client, err := transport.NewRPCClient(key,
		transport.WithRPCURL(store.Get("api.host")),
		transport.WithRPCLogger(opts.logger()),
	)
	if err != nil {
		return nil, err
	}

	return NewLegacyBackend(client, store, opts.logger()), nil
}

func (b *LegacyBackend) Name() string { return "legacy" }

// --- call helpers ---

func (b *LegacyBackend) record(ctx context.Context, method string, params ...any) (domain.Record, error) {
	reply, err := b.rpc.Call(ctx, method, params...)
	if err != nil {
		return nil, err
	}
	if rec := domain.AsRecord(reply); rec != nil {
		return rec, nil
	}
	// Some methods answer with a scalar such as a boolean.
	return domain.Record{"result": reply}, nil
}

func (b *LegacyBackend) records(ctx context.Context, method string, params ...any) ([]domain.Record, error) {
	reply, err := b.rpc.Call(ctx, method, params...)
	if err != nil {
		return nil, err
	}
	recs := domain.AsRecords(reply)
	if recs == nil {
		recs = []domain.Record{}
	}
	return recs, nil
}

func (b *LegacyBackend) operation(ctx context.Context, method string, params ...any) (*domain.Operation, error) {
	rec, err := b.record(ctx, method, params...)
	if err != nil {
		return nil, err
	}
	return domain.OperationFromRecord(rec), nil
}

func listParams(opts domain.ListOptions) map[string]any {
	params := map[string]any{}
	if opts.PerPage > 0 {
		params["items_per_page"] = opts.PerPage
	}
	if opts.Page > 0 {
		params["page"] = opts.Page
	}
	if opts.FQDN != "" {
		params["fqdn"] = opts.FQDN
	}
	return params
}

// --- domains ---

func (b *LegacyBackend) ListDomains(ctx context.Context, opts domain.ListOptions) ([]domain.Record, error) {
	recs, err := b.records(ctx, "domain.list", listParams(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	return recs, nil
}

func (b *LegacyBackend) DomainInfo(ctx context.Context, fqdn string) (domain.Record, error) {
	rec, err := b.record(ctx, "domain.info", fqdn)
	if err != nil {
		return nil, fmt.Errorf("failed to get domain %q: %w", fqdn, err)
	}
	return rec, nil
}

// DomainAvailability polls domain.available while the registry answer is
// pending.
func (b *LegacyBackend) DomainAvailability(ctx context.Context, fqdn string) (string, error) {
	check := func(ctx context.Context) (string, error) {
		reply, err := b.rpc.Call(ctx, "domain.available", []string{fqdn})
		if err != nil {
			return "", err
		}
		status := domain.AsRecord(reply).String(fqdn)
		if status == "" {
			return "", fmt.Errorf("no availability status returned for %q", fqdn)
		}
		return status, nil
	}
	pending := func(status string) bool { return status == domain.StatusPending }

	status, err := retry.Poll(ctx, b.poll, check, pending)
	if err != nil {
		return "", fmt.Errorf("failed to check availability of %q: %w", fqdn, err)
	}
	return status, nil
}

// DefaultContact returns the caller's contact handle and caches it as
// api.handle.
func (b *LegacyBackend) DefaultContact(ctx context.Context) (any, error) {
	rec, err := b.record(ctx, "contact.info")
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	handle := rec.String("handle")
	if handle == "" {
		return nil, fmt.Errorf("contact information has no handle")
	}

	if b.store != nil {
		if err := b.store.Set("api.handle", handle); err != nil {
			b.logger.Warn("failed to cache contact handle", slog.String("error", err.Error()))
		}
	}
	return handle, nil
}

func (b *LegacyBackend) CreateDomain(ctx context.Context, fqdn string, params domain.CreateDomainParams) (*domain.Operation, error) {
	p := map[string]any{
		"duration": params.Duration,
		"owner":    params.Owner,
		"admin":    params.Admin,
		"tech":     params.Tech,
		"bill":     params.Bill,
	}
	if len(params.Nameservers) > 0 {
		p["nameservers"] = params.Nameservers
	}
	if len(params.Extra) > 0 {
		p["extra"] = params.Extra
	}

	op, err := b.operation(ctx, "domain.create", fqdn, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create domain %q: %w", fqdn, err)
	}
	return op, nil
}

func (b *LegacyBackend) RenewDomain(ctx context.Context, fqdn string, params domain.RenewParams) (*domain.Operation, error) {
	p := map[string]any{"duration": params.Duration}
	if params.CurrentYear != 0 {
		p["current_year"] = params.CurrentYear
	}

	op, err := b.operation(ctx, "domain.renew", fqdn, p)
	if err != nil {
		return nil, fmt.Errorf("failed to renew domain %q: %w", fqdn, err)
	}
	return op, nil
}

func (b *LegacyBackend) SetAutorenew(ctx context.Context, fqdn string, enabled bool) (domain.Record, error) {
	method := "domain.autorenew.deactivate"
	if enabled {
		method = "domain.autorenew.activate"
	}
	rec, err := b.record(ctx, method, fqdn)
	if err != nil {
		return nil, fmt.Errorf("failed to update autorenew of %q: %w", fqdn, err)
	}
	return rec, nil
}

// --- forwards ---

func (b *LegacyBackend) ListForwards(ctx context.Context, fqdn string, opts domain.ListOptions) ([]domain.Record, error) {
	recs, err := b.records(ctx, "domain.forward.list", fqdn, listParams(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to list forwards of %q: %w", fqdn, err)
	}
	return recs, nil
}

func (b *LegacyBackend) CreateForward(ctx context.Context, fqdn, source string, destinations []string) (domain.Record, error) {
	rec, err := b.record(ctx, "domain.forward.create", fqdn, source, map[string]any{"destinations": destinations})
	if err != nil {
		return nil, fmt.Errorf("failed to create forward %s@%s: %w", source, fqdn, err)
	}
	return rec, nil
}

func (b *LegacyBackend) UpdateForward(ctx context.Context, fqdn, source string, destinations []string) (domain.Record, error) {
	rec, err := b.record(ctx, "domain.forward.update", fqdn, source, map[string]any{"destinations": destinations})
	if err != nil {
		return nil, fmt.Errorf("failed to update forward %s@%s: %w", source, fqdn, err)
	}
	return rec, nil
}

func (b *LegacyBackend) DeleteForward(ctx context.Context, fqdn, source string) error {
	if _, err := b.rpc.Call(ctx, "domain.forward.delete", fqdn, source); err != nil {
		return fmt.Errorf("failed to delete forward %s@%s: %w", source, fqdn, err)
	}
	return nil
}

// --- mailboxes ---

func mailboxParams(opts domain.MailboxOpts) map[string]any {
	p := map[string]any{}
	if opts.Password != "" {
		p["password"] = opts.Password
	}
	if opts.Quota != 0 {
		p["quota"] = opts.Quota
	}
	if opts.Fallback != "" {
		p["fallback_email"] = opts.Fallback
	}
	return p
}

func (b *LegacyBackend) ListMailboxes(ctx context.Context, fqdn string, opts domain.ListOptions) ([]domain.Record, error) {
	recs, err := b.records(ctx, "domain.mailbox.list", fqdn, listParams(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to list mailboxes of %q: %w", fqdn, err)
	}
	return recs, nil
}

func (b *LegacyBackend) MailboxInfo(ctx context.Context, fqdn, login string) (domain.Record, error) {
	rec, err := b.record(ctx, "domain.mailbox.info", fqdn, login)
	if err != nil {
		return nil, fmt.Errorf("failed to get mailbox %s@%s: %w", login, fqdn, err)
	}
	return normalizeMailbox(rec), nil
}

// CreateMailbox creates the mailbox, then sets its aliases in a second call
// when any are given.
func (b *LegacyBackend) CreateMailbox(ctx context.Context, fqdn, login string, opts domain.MailboxOpts, aliases []string) (domain.Record, error) {
	rec, err := b.record(ctx, "domain.mailbox.create", fqdn, login, mailboxParams(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to create mailbox %s@%s: %w", login, fqdn, err)
	}
	if len(aliases) == 0 {
		return rec, nil
	}
	return b.SetAliases(ctx, fqdn, login, aliases)
}

func (b *LegacyBackend) UpdateMailbox(ctx context.Context, fqdn, login string, opts domain.MailboxOpts) (domain.Record, error) {
	rec, err := b.record(ctx, "domain.mailbox.update", fqdn, login, mailboxParams(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to update mailbox %s@%s: %w", login, fqdn, err)
	}
	return rec, nil
}

func (b *LegacyBackend) DeleteMailbox(ctx context.Context, fqdn, login string) error {
	if _, err := b.rpc.Call(ctx, "domain.mailbox.delete", fqdn, login); err != nil {
		return fmt.Errorf("failed to delete mailbox %s@%s: %w", login, fqdn, err)
	}
	return nil
}

func (b *LegacyBackend) PurgeMailbox(ctx context.Context, fqdn, login string) (*domain.Operation, error) {
	op, err := b.operation(ctx, "domain.mailbox.purge", fqdn, login)
	if err != nil {
		return nil, fmt.Errorf("failed to purge mailbox %s@%s: %w", login, fqdn, err)
	}
	return op, nil
}

func (b *LegacyBackend) SetAliases(ctx context.Context, fqdn, login string, aliases []string) (domain.Record, error) {
	if aliases == nil {
		aliases = []string{}
	}
	rec, err := b.record(ctx, "domain.mailbox.alias.set", fqdn, login, aliases)
	if err != nil {
		return nil, fmt.Errorf("failed to set aliases of %s@%s: %w", login, fqdn, err)
	}
	return rec, nil
}

// --- DNSSEC ---

func (b *LegacyBackend) ListKeys(ctx context.Context, fqdn string) ([]domain.Record, error) {
	recs, err := b.records(ctx, "domain.dnssec.list", fqdn)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys of %q: %w", fqdn, err)
	}
	return recs, nil
}

func (b *LegacyBackend) CreateKey(ctx context.Context, fqdn string, params domain.KeyParams) (domain.Record, error) {
	p := map[string]any{
		"flags":      params.Flags,
		"algorithm":  params.Algorithm,
		"public_key": params.PublicKey,
	}
	rec, err := b.record(ctx, "domain.dnssec.create", fqdn, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create key on %q: %w", fqdn, err)
	}
	return rec, nil
}

// DeleteKey removes a key by its numeric id; the legacy method does not
// take the domain name.
func (b *LegacyBackend) DeleteKey(ctx context.Context, fqdn, keyID string) error {
	id, err := strconv.Atoi(keyID)
	if err != nil {
		return fmt.Errorf("key id %q: %w", keyID, domain.ErrUnknownIdentifier)
	}
	if _, err := b.rpc.Call(ctx, "domain.dnssec.delete", id); err != nil {
		return fmt.Errorf("failed to delete key %d of %q: %w", id, fqdn, err)
	}
	return nil
}

// --- hosting ---

func (b *LegacyBackend) ListVLANs(ctx context.Context, datacenterID int) ([]domain.Record, error) {
	filter := map[string]any{}
	if datacenterID != 0 {
		filter["datacenter_id"] = datacenterID
	}
	recs, err := b.records(ctx, "hosting.vlan.list", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list vlans: %w", err)
	}
	return recs, nil
}

func (b *LegacyBackend) ListDatacenters(ctx context.Context) ([]domain.Record, error) {
	recs, err := b.records(ctx, "hosting.datacenter.list", map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to list datacenters: %w", err)
	}
	return recs, nil
}

// --- account ---

// AccountInfo returns the hosting account. Sharing ids only exist on the
// REST API and are ignored here.
func (b *LegacyBackend) AccountInfo(ctx context.Context, sharingID string) (domain.Record, error) {
	rec, err := b.record(ctx, "hosting.account.info")
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return normalizeLegacyAccount(rec), nil
}

func (b *LegacyBackend) Balance(ctx context.Context, sharingID string) (domain.Record, error) {
	rec, err := b.record(ctx, "contact.balance")
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return rec, nil
}

// --- operations ---

func (b *LegacyBackend) OperationInfo(ctx context.Context, id int) (*domain.Operation, error) {
	op, err := b.operation(ctx, "operation.info", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get operation %d: %w", id, err)
	}
	return op, nil
}
