package providers

import "github.com/grigouze/gandi.cli/internal/domain"

// normalizeDomainInfo flattens the REST "dates" object into the top-level
// keys the legacy transport returns.
func normalizeDomainInfo(rec domain.Record) domain.Record {
	out := rec.Clone()
	dates := rec.Record("dates")
	if dates == nil {
		return out
	}

	if v, ok := dates["registry_ends_at"]; ok {
		out["expires"] = v
		out["date_registry_end"] = v
	}
	if v, ok := dates["created_at"]; ok {
		out["date_created"] = v
	}
	if v, ok := dates["updated_at"]; ok {
		out["date_updated"] = v
	}
	return out
}

func normalizeDomainList(items []domain.Record) []domain.Record {
	out := make([]domain.Record, len(items))
	for i, item := range items {
		out[i] = normalizeDomainInfo(item)
	}
	return out
}

// contactFromUserInfo reshapes REST user information into a registration
// contact.
func contactFromUserInfo(user domain.Record) domain.Record {
	out := user.Clone()
	for _, k := range []string{"id", "username", "name", "lang", "lastname", "firstname"} {
		delete(out, k)
	}
	if v, ok := user["lastname"]; ok {
		out["family"] = v
	}
	if v, ok := user["firstname"]; ok {
		out["given"] = v
	}
	out["type"] = 0
	return out
}

// normalizeMailbox guarantees an "aliases" list on mailbox records.
func normalizeMailbox(rec domain.Record) domain.Record {
	out := rec.Clone()
	aliases := rec.Strings("aliases")
	if aliases == nil {
		aliases = []string{}
	}
	out["aliases"] = aliases
	return out
}

// normalizeLegacyAccount exposes the legacy "credits" field as "credit".
func normalizeLegacyAccount(rec domain.Record) domain.Record {
	out := rec.Clone()
	if _, ok := out["credit"]; !ok {
		if v, ok := rec["credits"]; ok {
			out["credit"] = v
		}
	}
	return out
}

// normalizeRESTAccount builds an account record from REST user information
// and billing information. The billing record may be nil. Billing
// "credits" is exposed as "credit", as for legacy accounts.
func normalizeRESTAccount(user, billing domain.Record) domain.Record {
	out := domain.Record{
		"handle": user["username"],
	}
	if v, ok := user["id"]; ok {
		out["id"] = v
	}
	if billing == nil {
		return out
	}
	if v, ok := billing["credit"]; ok {
		out["credit"] = v
	} else if v, ok := billing["credits"]; ok {
		out["credit"] = v
	}
	if v, ok := billing["prepaid"]; ok {
		out["prepaid"] = v
	}
	if v, ok := billing["annual_balance"]; ok {
		out["annual_balance"] = v
	}
	if v, ok := billing["outstanding_amount"]; ok {
		out["outstanding_amount"] = v
	}
	return out
}

// operationFromMessage wraps a REST acknowledgement into an untrackable
// operation handle.
func operationFromMessage(rec domain.Record) *domain.Operation {
	return &domain.Operation{Message: rec.String("message"), Raw: rec}
}
