package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/grigouze/gandi.cli/internal/domain"
)

// DomainService manages domain registrations.
type DomainService struct {
	api  domain.DomainAPI
	ops  domain.OperationAPI
	sink Sink
}

func NewDomainService(api domain.DomainAPI, ops domain.OperationAPI, sink Sink) *DomainService {
	return &DomainService{api: api, ops: ops, sink: sink}
}

// CreateDomainOpts holds the inputs of a domain registration. Empty
// contacts default to the caller's own contact.
type CreateDomainOpts struct {
	FQDN        string
	Duration    int
	Owner       string
	Admin       string
	Tech        string
	Bill        string
	Nameservers []string
	Extra       map[string]string
	Background  bool
}

func (s *DomainService) List(ctx context.Context, opts domain.ListOptions) ([]domain.Record, error) {
	return s.api.ListDomains(ctx, opts)
}

func (s *DomainService) Info(ctx context.Context, fqdn string) (domain.Record, error) {
	return s.api.DomainInfo(ctx, strings.ToLower(fqdn))
}

// Create registers a domain.
//
// In background mode, or when the sink is not interactive, the provider
// operation is returned as soon as it is accepted. Otherwise progress is
// rendered until the operation completes and the returned operation is nil.
func (s *DomainService) Create(ctx context.Context, opts CreateDomainOpts) (*domain.Operation, error) {
	fqdn := strings.ToLower(opts.FQDN)
	background := opts.Background || !s.sink.IsInteractive()

	status, err := s.api.DomainAvailability(ctx, fqdn)
	if err != nil {
		return nil, err
	}
	if status == domain.StatusUnavailable {
		return nil, fmt.Errorf("%s is not available: %w", fqdn, domain.ErrResourceUnavailable)
	}

	contacts := &contactResolver{api: s.api}
	params := domain.CreateDomainParams{
		Duration:    opts.Duration,
		Nameservers: opts.Nameservers,
		Extra:       opts.Extra,
	}
	for _, c := range []struct {
		value string
		dest  *any
	}{
		{opts.Owner, &params.Owner},
		{opts.Admin, &params.Admin},
		{opts.Tech, &params.Tech},
		{opts.Bill, &params.Bill},
	} {
		v, err := contacts.resolve(ctx, c.value)
		if err != nil {
			return nil, err
		}
		*c.dest = v
	}

	op, err := s.api.CreateDomain(ctx, fqdn, params)
	if err != nil {
		return nil, err
	}
	if background {
		return op, nil
	}

	s.sink.Echo("Creating your domain.")
	if err := s.sink.Progress(ctx, op, s.ops.OperationInfo); err != nil {
		return nil, err
	}
	s.sink.Echo(fmt.Sprintf("Your domain %s has been created.", fqdn))
	return nil, nil
}

// contactResolver fetches the caller's contact at most once, and only when
// a contact role is left empty.
type contactResolver struct {
	api     domain.DomainAPI
	fetched bool
	contact any
}

func (r *contactResolver) resolve(ctx context.Context, value string) (any, error) {
	if value != "" {
		return value, nil
	}
	if !r.fetched {
		contact, err := r.api.DefaultContact(ctx)
		if err != nil {
			return nil, err
		}
		r.contact = contact
		r.fetched = true
	}
	return r.contact, nil
}

// Renew extends a registration by duration years. Background handling is
// the same as Create.
func (s *DomainService) Renew(ctx context.Context, fqdn string, duration int, background bool) (*domain.Operation, error) {
	fqdn = strings.ToLower(fqdn)
	background = background || !s.sink.IsInteractive()

	info, err := s.api.DomainInfo(ctx, fqdn)
	if err != nil {
		return nil, err
	}

	params := domain.RenewParams{Duration: duration}
	if end, ok := info["date_registry_end"].(time.Time); ok {
		params.CurrentYear = end.Year()
	}

	op, err := s.api.RenewDomain(ctx, fqdn, params)
	if err != nil {
		return nil, err
	}
	if background {
		return op, nil
	}

	s.sink.Echo("Renewing your domain.")
	if err := s.sink.Progress(ctx, op, s.ops.OperationInfo); err != nil {
		return nil, err
	}
	s.sink.Echo(fmt.Sprintf("Your domain %s has been renewed.", fqdn))
	return nil, nil
}

func (s *DomainService) SetAutorenew(ctx context.Context, fqdn string, enabled bool) (domain.Record, error) {
	return s.api.SetAutorenew(ctx, strings.ToLower(fqdn), enabled)
}

// FromFQDN returns the provider id of the domain named fqdn: a number
// under the legacy API, a UUID under REST.
func (s *DomainService) FromFQDN(ctx context.Context, fqdn string) (string, error) {
	recs, err := s.api.ListDomains(ctx, domain.ListOptions{FQDN: fqdn})
	if err != nil {
		return "", err
	}
	if len(recs) == 0 {
		return "", fmt.Errorf("unknown identifier %s: %w", fqdn, domain.ErrUnknownIdentifier)
	}
	if id, ok := recs[0].Int("id"); ok && id != 0 {
		return strconv.Itoa(id), nil
	}
	if id := recs[0].String("id"); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("unknown identifier %s: %w", fqdn, domain.ErrUnknownIdentifier)
}

// UsableID resolves input, either a numeric id or a domain name, to a
// provider id. Numeric input is parsed as an integer and returned without
// any remote call.
func (s *DomainService) UsableID(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	if id, err := strconv.Atoi(input); err == nil {
		if id == 0 {
			return "", fmt.Errorf("unknown identifier %s: %w", input, domain.ErrUnknownIdentifier)
		}
		return strconv.Itoa(id), nil
	}
	return s.FromFQDN(ctx, input)
}
