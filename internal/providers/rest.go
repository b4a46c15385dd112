package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/grigouze/gandi.cli/internal/config"
	"github.com/grigouze/gandi.cli/internal/domain"
	"github.com/grigouze/gandi.cli/internal/services/auth"
	"github.com/grigouze/gandi.cli/internal/transport"
)

// Compile-time check that RestBackend satisfies domain.Backend.
var _ domain.Backend = (*RestBackend)(nil)

// Doer issues REST requests. *transport.RESTClient implements it.
type Doer interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// RestBackend implements domain.Backend over the REST API.
//
// The REST API has no hosting or operation endpoints. Those calls go to
// the legacy backend when an XML-RPC key is configured and fail with
// domain.ErrUnsupported otherwise.
type RestBackend struct {
	api      Doer
	fallback *LegacyBackend
}

// NewRestBackend creates a RestBackend issuing requests through api. The
// fallback may be nil.
func NewRestBackend(api Doer, fallback *LegacyBackend) *RestBackend {
	return &RestBackend{api: api, fallback: fallback}
}

// RegisterREST registers the REST backend factory with the registry.
func RegisterREST() {
	Register(transport.REST, func(store config.Store, opts Options) (domain.Backend, error) {
		key := store.Get(config.KeyAPIRestKey)
		if key == "" {
			return nil, fmt.Errorf("rest auth: api key not found (run 'gandi auth login --rest'): %w", auth.ErrTokenNotFound)
		}

		client := transport.NewRESTClient(key,
			transport.WithBaseURL(store.Get("apirest.host")),
			transport.WithHTTPClient(opts.HTTPClient),
			transport.WithRESTLogger(opts.logger()),
		)

		var fallback *LegacyBackend
		if store.Get(config.KeyAPIKey) != "" {
			legacy, err := newLegacyFromStore(store, opts)
			if err != nil {
				return nil, err
			}
			fallback = legacy
		}

		return NewRestBackend(client, fallback), nil
	})
}

func (r *RestBackend) Name() string { return "rest" }

// --- request helpers ---

func (r *RestBackend) getRecord(ctx context.Context, path string) (domain.Record, error) {
	var out map[string]any
	if err := r.api.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return domain.Record(out), nil
}

func (r *RestBackend) getRecords(ctx context.Context, path string) ([]domain.Record, error) {
	var out []any
	if err := r.api.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	recs := domain.AsRecords(out)
	if recs == nil {
		recs = []domain.Record{}
	}
	return recs, nil
}

// send issues a write request and returns the decoded acknowledgement,
// which is empty for bodiless responses.
func (r *RestBackend) send(ctx context.Context, method, path string, body any) (domain.Record, error) {
	var out map[string]any
	var err error
	switch method {
	case http.MethodPost:
		err = r.api.Post(ctx, path, body, &out)
	case http.MethodPut:
		err = r.api.Put(ctx, path, body, &out)
	case http.MethodPatch:
		err = r.api.Patch(ctx, path, body, &out)
	case http.MethodDelete:
		err = r.api.Delete(ctx, path, &out)
	default:
		return nil, fmt.Errorf("rest: unsupported method %s", method)
	}
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return domain.Record(out), nil
}

func withQuery(path string, opts domain.ListOptions) string {
	q := url.Values{}
	if opts.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.FQDN != "" {
		q.Set("fqdn", opts.FQDN)
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func seg(s string) string { return url.PathEscape(s) }

// --- domains ---

func (r *RestBackend) ListDomains(ctx context.Context, opts domain.ListOptions) ([]domain.Record, error) {
	recs, err := r.getRecords(ctx, withQuery("/domain/domains", opts))
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	return normalizeDomainList(recs), nil
}

func (r *RestBackend) DomainInfo(ctx context.Context, fqdn string) (domain.Record, error) {
	rec, err := r.getRecord(ctx, "/domain/domains/"+seg(fqdn))
	if err != nil {
		return nil, fmt.Errorf("failed to get domain %q: %w", fqdn, err)
	}
	return normalizeDomainInfo(rec), nil
}

// DomainAvailability reads the status of the first product returned by the
// check endpoint. No product means the name cannot be registered.
func (r *RestBackend) DomainAvailability(ctx context.Context, fqdn string) (string, error) {
	rec, err := r.getRecord(ctx, "/domain/check?name="+url.QueryEscape(fqdn))
	if err != nil {
		return "", fmt.Errorf("failed to check availability of %q: %w", fqdn, err)
	}

	products := domain.AsRecords(rec["products"])
	if len(products) == 0 {
		return domain.StatusUnavailable, nil
	}
	status := products[0].String("status")
	if status == "" {
		return domain.StatusUnavailable, nil
	}
	return status, nil
}

func (r *RestBackend) DefaultContact(ctx context.Context) (any, error) {
	user, err := r.getRecord(ctx, "/organization/user-info")
	if err != nil {
		return nil, fmt.Errorf("failed to get user information: %w", err)
	}
	return contactFromUserInfo(user), nil
}

func (r *RestBackend) CreateDomain(ctx context.Context, fqdn string, params domain.CreateDomainParams) (*domain.Operation, error) {
	body := map[string]any{
		"fqdn":     fqdn,
		"duration": params.Duration,
		"owner":    params.Owner,
		"admin":    params.Admin,
		"tech":     params.Tech,
		"bill":     params.Bill,
	}
	if len(params.Nameservers) > 0 {
		body["nameservers"] = params.Nameservers
	}
	if len(params.Extra) > 0 {
		body["extra"] = params.Extra
	}

	rec, err := r.send(ctx, http.MethodPost, "/domain/domains", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create domain %q: %w", fqdn, err)
	}
	return operationFromMessage(rec), nil
}

// RenewDomain renews fqdn. The REST API does not take the current year.
func (r *RestBackend) RenewDomain(ctx context.Context, fqdn string, params domain.RenewParams) (*domain.Operation, error) {
	body := map[string]any{"duration": params.Duration}
	rec, err := r.send(ctx, http.MethodPost, "/domain/domains/"+seg(fqdn)+"/renew", body)
	if err != nil {
		return nil, fmt.Errorf("failed to renew domain %q: %w", fqdn, err)
	}
	return operationFromMessage(rec), nil
}

func (r *RestBackend) SetAutorenew(ctx context.Context, fqdn string, enabled bool) (domain.Record, error) {
	rec, err := r.send(ctx, http.MethodPatch, "/domain/domains/"+seg(fqdn)+"/autorenew", map[string]any{"enabled": enabled})
	if err != nil {
		return nil, fmt.Errorf("failed to update autorenew of %q: %w", fqdn, err)
	}
	return rec, nil
}

// --- forwards ---

func (r *RestBackend) ListForwards(ctx context.Context, fqdn string, opts domain.ListOptions) ([]domain.Record, error) {
	opts.FQDN = ""
	recs, err := r.getRecords(ctx, withQuery("/email/forwards/"+seg(fqdn), opts))
	if err != nil {
		return nil, fmt.Errorf("failed to list forwards of %q: %w", fqdn, err)
	}
	return recs, nil
}

func (r *RestBackend) CreateForward(ctx context.Context, fqdn, source string, destinations []string) (domain.Record, error) {
	body := map[string]any{"source": source, "destinations": destinations}
	rec, err := r.send(ctx, http.MethodPost, "/email/forwards/"+seg(fqdn), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create forward %s@%s: %w", source, fqdn, err)
	}
	return rec, nil
}

func (r *RestBackend) UpdateForward(ctx context.Context, fqdn, source string, destinations []string) (domain.Record, error) {
	body := map[string]any{"destinations": destinations}
	rec, err := r.send(ctx, http.MethodPut, "/email/forwards/"+seg(fqdn)+"/"+seg(source), body)
	if err != nil {
		return nil, fmt.Errorf("failed to update forward %s@%s: %w", source, fqdn, err)
	}
	return rec, nil
}

func (r *RestBackend) DeleteForward(ctx context.Context, fqdn, source string) error {
	if _, err := r.send(ctx, http.MethodDelete, "/email/forwards/"+seg(fqdn)+"/"+seg(source), nil); err != nil {
		return fmt.Errorf("failed to delete forward %s@%s: %w", source, fqdn, err)
	}
	return nil
}

// --- mailboxes ---

func mailboxPath(fqdn, login string) string {
	return "/email/mailboxes/" + seg(fqdn) + "/" + seg(login)
}

func (r *RestBackend) ListMailboxes(ctx context.Context, fqdn string, opts domain.ListOptions) ([]domain.Record, error) {
	opts.FQDN = ""
	recs, err := r.getRecords(ctx, withQuery("/email/mailboxes/"+seg(fqdn), opts))
	if err != nil {
		return nil, fmt.Errorf("failed to list mailboxes of %q: %w", fqdn, err)
	}
	return recs, nil
}

func (r *RestBackend) MailboxInfo(ctx context.Context, fqdn, login string) (domain.Record, error) {
	rec, err := r.getRecord(ctx, mailboxPath(fqdn, login))
	if err != nil {
		return nil, fmt.Errorf("failed to get mailbox %s@%s: %w", login, fqdn, err)
	}
	return normalizeMailbox(rec), nil
}

// CreateMailbox creates a standard mailbox with its aliases in one request.
// Quota and fallback are not settable through this endpoint.
func (r *RestBackend) CreateMailbox(ctx context.Context, fqdn, login string, opts domain.MailboxOpts, aliases []string) (domain.Record, error) {
	if aliases == nil {
		aliases = []string{}
	}
	body := map[string]any{
		"login":        login,
		"password":     opts.Password,
		"mailbox_type": "standard",
		"aliases":      aliases,
	}
	rec, err := r.send(ctx, http.MethodPost, "/email/mailboxes/"+seg(fqdn), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailbox %s@%s: %w", login, fqdn, err)
	}
	return rec, nil
}

// UpdateMailbox changes the mailbox password. It issues no request when no
// password is given, since the REST API exposes no other option.
func (r *RestBackend) UpdateMailbox(ctx context.Context, fqdn, login string, opts domain.MailboxOpts) (domain.Record, error) {
	if opts.Password == "" {
		return domain.Record{}, nil
	}
	rec, err := r.send(ctx, http.MethodPut, mailboxPath(fqdn, login), map[string]any{"password": opts.Password})
	if err != nil {
		return nil, fmt.Errorf("failed to update mailbox %s@%s: %w", login, fqdn, err)
	}
	return rec, nil
}

func (r *RestBackend) DeleteMailbox(ctx context.Context, fqdn, login string) error {
	if _, err := r.send(ctx, http.MethodDelete, mailboxPath(fqdn, login), nil); err != nil {
		return fmt.Errorf("failed to delete mailbox %s@%s: %w", login, fqdn, err)
	}
	return nil
}

func (r *RestBackend) PurgeMailbox(ctx context.Context, fqdn, login string) (*domain.Operation, error) {
	rec, err := r.send(ctx, http.MethodDelete, mailboxPath(fqdn, login)+"/contents", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to purge mailbox %s@%s: %w", login, fqdn, err)
	}
	return operationFromMessage(rec), nil
}

func (r *RestBackend) SetAliases(ctx context.Context, fqdn, login string, aliases []string) (domain.Record, error) {
	if aliases == nil {
		aliases = []string{}
	}
	rec, err := r.send(ctx, http.MethodPut, mailboxPath(fqdn, login), map[string]any{"aliases": aliases})
	if err != nil {
		return nil, fmt.Errorf("failed to set aliases of %s@%s: %w", login, fqdn, err)
	}
	return rec, nil
}

// --- DNSSEC ---

func keysPath(fqdn string) string {
	return "/livedns/domains/" + seg(fqdn) + "/keys"
}

func (r *RestBackend) ListKeys(ctx context.Context, fqdn string) ([]domain.Record, error) {
	recs, err := r.getRecords(ctx, keysPath(fqdn))
	if err != nil {
		return nil, fmt.Errorf("failed to list keys of %q: %w", fqdn, err)
	}
	return recs, nil
}

// CreateKey asks the provider to generate a key. Only the flags are sent;
// the provider picks the algorithm and key material.
func (r *RestBackend) CreateKey(ctx context.Context, fqdn string, params domain.KeyParams) (domain.Record, error) {
	rec, err := r.send(ctx, http.MethodPost, keysPath(fqdn), map[string]any{"flags": params.Flags})
	if err != nil {
		return nil, fmt.Errorf("failed to create key on %q: %w", fqdn, err)
	}
	return rec, nil
}

func (r *RestBackend) DeleteKey(ctx context.Context, fqdn, keyID string) error {
	if _, err := r.send(ctx, http.MethodDelete, keysPath(fqdn)+"/"+seg(keyID), nil); err != nil {
		return fmt.Errorf("failed to delete key %s of %q: %w", keyID, fqdn, err)
	}
	return nil
}

// --- hosting ---

func (r *RestBackend) unsupported(what string) error {
	return fmt.Errorf("%s requires an XML-RPC key (run 'gandi auth login'): %w", what, domain.ErrUnsupported)
}

func (r *RestBackend) ListVLANs(ctx context.Context, datacenterID int) ([]domain.Record, error) {
	if r.fallback == nil {
		return nil, r.unsupported("listing vlans")
	}
	return r.fallback.ListVLANs(ctx, datacenterID)
}

func (r *RestBackend) ListDatacenters(ctx context.Context) ([]domain.Record, error) {
	if r.fallback == nil {
		return nil, r.unsupported("listing datacenters")
	}
	return r.fallback.ListDatacenters(ctx)
}

// --- account ---

func billingPath(sharingID string) string {
	if sharingID == "" {
		return "/billing/info"
	}
	return "/billing/info/" + seg(sharingID)
}

func (r *RestBackend) AccountInfo(ctx context.Context, sharingID string) (domain.Record, error) {
	user, err := r.getRecord(ctx, "/organization/user-info")
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	billing, err := r.getRecord(ctx, billingPath(sharingID))
	if err != nil {
		return nil, fmt.Errorf("failed to get billing information: %w", err)
	}
	return normalizeRESTAccount(user, billing), nil
}

func (r *RestBackend) Balance(ctx context.Context, sharingID string) (domain.Record, error) {
	rec, err := r.getRecord(ctx, billingPath(sharingID))
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return rec, nil
}

// --- operations ---

func (r *RestBackend) OperationInfo(ctx context.Context, id int) (*domain.Operation, error) {
	if r.fallback == nil {
		return nil, r.unsupported("tracking operations")
	}
	return r.fallback.OperationInfo(ctx, id)
}
