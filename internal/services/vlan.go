package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/grigouze/gandi.cli/internal/domain"
)

// VLANService lists VLANs with their datacenter.
type VLANService struct {
	api domain.HostingAPI
}

func NewVLANService(api domain.HostingAPI) *VLANService {
	return &VLANService{api: api}
}

// List returns the VLANs, restricted to one datacenter when datacenter is
// set. The datacenter may be given as id, code, country code or name.
// Every returned VLAN carries a "datacenter" field naming its datacenter.
func (s *VLANService) List(ctx context.Context, datacenter string) ([]domain.Record, error) {
	datacenters, err := s.api.ListDatacenters(ctx)
	if err != nil {
		return nil, err
	}

	dcID := 0
	if datacenter != "" {
		dcID, err = resolveDatacenter(datacenters, datacenter)
		if err != nil {
			return nil, err
		}
	}

	vlans, err := s.api.ListVLANs(ctx, dcID)
	if err != nil {
		return nil, err
	}

	names := make(map[int]string, len(datacenters))
	for _, dc := range datacenters {
		if id, ok := dc.Int("id"); ok {
			names[id] = datacenterLabel(dc)
		}
	}

	out := make([]domain.Record, len(vlans))
	for i, vlan := range vlans {
		out[i] = vlan.Clone()
		if id, ok := vlan.Int("datacenter_id"); ok {
			out[i]["datacenter"] = names[id]
		}
	}
	return out, nil
}

func datacenterLabel(dc domain.Record) string {
	for _, key := range []string{"dc_code", "name", "iso"} {
		if v := dc.String(key); v != "" {
			return v
		}
	}
	return ""
}

func resolveDatacenter(datacenters []domain.Record, input string) (int, error) {
	if id, err := strconv.Atoi(input); err == nil {
		for _, dc := range datacenters {
			if dcID, ok := dc.Int("id"); ok && dcID == id {
				return id, nil
			}
		}
	}
	for _, dc := range datacenters {
		for _, key := range []string{"dc_code", "iso", "name"} {
			if strings.EqualFold(dc.String(key), input) {
				if id, ok := dc.Int("id"); ok {
					return id, nil
				}
			}
		}
	}
	return 0, fmt.Errorf("datacenter %s: %w", input, domain.ErrUnknownIdentifier)
}
