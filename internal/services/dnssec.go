package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/grigouze/gandi.cli/internal/domain"
)

// Key flags accepted by the registry: a zone signing key, or a key signing
// key when the secure entry point bit is set.
const (
	FlagsZSK = dns.ZONE
	FlagsKSK = dns.ZONE | dns.SEP
)

// DNSSECService manages the DNSSEC keys published for a domain.
type DNSSECService struct {
	api domain.DNSSECAPI
}

func NewDNSSECService(api domain.DNSSECAPI) *DNSSECService {
	return &DNSSECService{api: api}
}

// List returns the keys of fqdn. Keys the provider returns without a key
// tag get one computed from their public material.
func (s *DNSSECService) List(ctx context.Context, fqdn string) ([]domain.Record, error) {
	keys, err := s.api.ListKeys(ctx, strings.ToLower(fqdn))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Record, len(keys))
	for i, key := range keys {
		out[i] = key
		if _, ok := key["keytag"]; ok {
			continue
		}
		if tag := keyTag(fqdn, key); tag != 0 {
			out[i] = key.Clone()
			out[i]["keytag"] = int(tag)
		}
	}
	return out, nil
}

// Create publishes a key for fqdn after checking its parameters.
func (s *DNSSECService) Create(ctx context.Context, fqdn string, flags, algorithm int, publicKey string) (domain.Record, error) {
	params := domain.KeyParams{Flags: flags, Algorithm: algorithm, PublicKey: strings.TrimSpace(publicKey)}
	if err := ValidateKeyParams(params); err != nil {
		return nil, err
	}
	return s.api.CreateKey(ctx, strings.ToLower(fqdn), params)
}

func (s *DNSSECService) Delete(ctx context.Context, fqdn, keyID string) error {
	return s.api.DeleteKey(ctx, strings.ToLower(fqdn), keyID)
}

// ValidateKeyParams checks flags, algorithm and, when present, the public
// key encoding.
func ValidateKeyParams(p domain.KeyParams) error {
	if p.Flags != FlagsZSK && p.Flags != FlagsKSK {
		return fmt.Errorf("invalid key flags %d: must be %d (ZSK) or %d (KSK)", p.Flags, FlagsZSK, FlagsKSK)
	}
	if p.Algorithm <= 0 || p.Algorithm > 255 {
		return fmt.Errorf("invalid key algorithm %d", p.Algorithm)
	}
	if _, ok := dns.AlgorithmToString[uint8(p.Algorithm)]; !ok {
		return fmt.Errorf("unknown key algorithm %d", p.Algorithm)
	}
	if p.PublicKey != "" {
		if _, err := base64.StdEncoding.DecodeString(p.PublicKey); err != nil {
			return fmt.Errorf("public key is not valid base64: %w", err)
		}
	}
	return nil
}

// keyTag computes the RFC 4034 key tag of a key record, or 0 when the
// record lacks the needed fields.
func keyTag(fqdn string, key domain.Record) uint16 {
	flags, ok := key.Int("flags")
	if !ok {
		return 0
	}
	algorithm, ok := key.Int("algorithm")
	if !ok {
		return 0
	}
	publicKey := key.String("public_key")
	if publicKey == "" {
		return 0
	}

	rr := &dns.DNSKEY{
		Hdr: dns.RR_Header{
			Name:   dns.Fqdn(fqdn),
			Rrtype: dns.TypeDNSKEY,
			Class:  dns.ClassINET,
		},
		Flags:     uint16(flags),
		Protocol:  3,
		Algorithm: uint8(algorithm),
		PublicKey: publicKey,
	}
	return rr.KeyTag()
}
