package domain

import "context"

// Availability statuses reported for a domain name.
const (
	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
	StatusPending     = "pending"
)

// DomainAPI covers domain registration and lookup.
type DomainAPI interface {
	ListDomains(ctx context.Context, opts ListOptions) ([]Record, error)
	DomainInfo(ctx context.Context, fqdn string) (Record, error)

	// DomainAvailability returns the settled availability status of fqdn,
	// e.g. "available" or "unavailable".
	DomainAvailability(ctx context.Context, fqdn string) (string, error)

	// DefaultContact returns the caller's own contact, in the form the
	// transport expects for registration parameters.
	DefaultContact(ctx context.Context) (any, error)

	CreateDomain(ctx context.Context, fqdn string, params CreateDomainParams) (*Operation, error)
	RenewDomain(ctx context.Context, fqdn string, params RenewParams) (*Operation, error)
	SetAutorenew(ctx context.Context, fqdn string, enabled bool) (Record, error)
}

// ForwardAPI covers mail forwards.
type ForwardAPI interface {
	ListForwards(ctx context.Context, fqdn string, opts ListOptions) ([]Record, error)
	CreateForward(ctx context.Context, fqdn, source string, destinations []string) (Record, error)
	UpdateForward(ctx context.Context, fqdn, source string, destinations []string) (Record, error)
	DeleteForward(ctx context.Context, fqdn, source string) error
}

// MailboxAPI covers mailboxes and their aliases.
type MailboxAPI interface {
	ListMailboxes(ctx context.Context, fqdn string, opts ListOptions) ([]Record, error)
	MailboxInfo(ctx context.Context, fqdn, login string) (Record, error)
	CreateMailbox(ctx context.Context, fqdn, login string, opts MailboxOpts, aliases []string) (Record, error)
	UpdateMailbox(ctx context.Context, fqdn, login string, opts MailboxOpts) (Record, error)
	DeleteMailbox(ctx context.Context, fqdn, login string) error
	PurgeMailbox(ctx context.Context, fqdn, login string) (*Operation, error)
	SetAliases(ctx context.Context, fqdn, login string, aliases []string) (Record, error)
}

// DNSSECAPI covers DNSSEC keys.
type DNSSECAPI interface {
	ListKeys(ctx context.Context, fqdn string) ([]Record, error)
	CreateKey(ctx context.Context, fqdn string, params KeyParams) (Record, error)
	DeleteKey(ctx context.Context, fqdn, keyID string) error
}

// HostingAPI covers the hosting resources used by the VLAN listing.
type HostingAPI interface {
	// ListVLANs lists VLANs, restricted to one datacenter when
	// datacenterID is non-zero.
	ListVLANs(ctx context.Context, datacenterID int) ([]Record, error)
	ListDatacenters(ctx context.Context) ([]Record, error)
}

// AccountAPI covers account and billing information.
type AccountAPI interface {
	AccountInfo(ctx context.Context, sharingID string) (Record, error)
	Balance(ctx context.Context, sharingID string) (Record, error)
}

// OperationAPI reads the state of asynchronous jobs.
type OperationAPI interface {
	OperationInfo(ctx context.Context, id int) (*Operation, error)
}

// Backend is a transport-specific implementation of every resource API.
// Resource services depend on the narrow interfaces above; the registry
// hands out the full Backend.
type Backend interface {
	Name() string

	DomainAPI
	ForwardAPI
	MailboxAPI
	DNSSECAPI
	HostingAPI
	AccountAPI
	OperationAPI
}
