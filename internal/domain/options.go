package domain

// ListOptions controls paging and filtering of list operations.
type ListOptions struct {
	PerPage int
	Page    int

	// FQDN filters domain listings on an exact name.
	FQDN string
}

// CreateDomainParams holds the provider parameters of a domain registration.
// Contacts are either a handle string or, on the REST transport, a contact
// record.
type CreateDomainParams struct {
	Duration    int
	Owner       any
	Admin       any
	Tech        any
	Bill        any
	Nameservers []string

	// Extra carries registry-specific key/value parameters.
	Extra map[string]string
}

// RenewParams holds the provider parameters of a domain renewal.
type RenewParams struct {
	Duration int

	// CurrentYear is the year the registration currently ends. Zero means
	// unknown and is not sent.
	CurrentYear int
}

// MailboxOpts holds the optional settings of a mailbox.
type MailboxOpts struct {
	Password string
	Quota    int
	Fallback string
}

// IsEmpty reports whether no option is set.
func (o MailboxOpts) IsEmpty() bool {
	return o.Password == "" && o.Quota == 0 && o.Fallback == ""
}

// KeyParams describes a DNSSEC key to publish.
type KeyParams struct {
	Flags     int
	Algorithm int
	PublicKey string
}
