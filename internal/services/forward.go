package services

import (
	"context"
	"fmt"

	"github.com/grigouze/gandi.cli/internal/domain"
	"github.com/grigouze/gandi.cli/internal/reconcile"
)

// destinationsPageSize is large enough to fetch every forward of a domain
// in one page.
const destinationsPageSize = 500

// ForwardService manages mail forwards.
type ForwardService struct {
	api  domain.ForwardAPI
	sink Sink
}

func NewForwardService(api domain.ForwardAPI, sink Sink) *ForwardService {
	return &ForwardService{api: api, sink: sink}
}

func (s *ForwardService) List(ctx context.Context, fqdn string, opts domain.ListOptions) ([]domain.Record, error) {
	return s.api.ListForwards(ctx, fqdn, opts)
}

func (s *ForwardService) Create(ctx context.Context, fqdn, source string, destinations []string) (domain.Record, error) {
	s.sink.Echo(fmt.Sprintf("Creating mail forward %s@%s", source, fqdn))
	return s.api.CreateForward(ctx, fqdn, source, destinations)
}

func (s *ForwardService) Delete(ctx context.Context, fqdn, source string) error {
	return s.api.DeleteForward(ctx, fqdn, source)
}

// Destinations returns the destinations of the forward named source, or an
// empty list when there is none.
func (s *ForwardService) Destinations(ctx context.Context, fqdn, source string) ([]string, error) {
	forwards, err := s.api.ListForwards(ctx, fqdn, domain.ListOptions{PerPage: destinationsPageSize})
	if err != nil {
		return nil, err
	}
	for _, fwd := range forwards {
		if fwd.String("source") == source {
			if dests := fwd.Strings("destinations"); dests != nil {
				return dests, nil
			}
			break
		}
	}
	return []string{}, nil
}

// Update adds and removes destinations of a forward. It returns a nil
// record and issues no update when the destination set is unchanged.
func (s *ForwardService) Update(ctx context.Context, fqdn, source string, add, remove []string) (domain.Record, error) {
	if len(add) == 0 && len(remove) == 0 {
		return nil, nil
	}

	current, err := s.Destinations(ctx, fqdn, source)
	if err != nil {
		return nil, err
	}

	next, changed := reconcile.Apply(current, add, remove)
	if !changed {
		return nil, nil
	}

	s.sink.Echo(fmt.Sprintf("Updating mail forward %s@%s", source, fqdn))
	return s.api.UpdateForward(ctx, fqdn, source, next)
}
