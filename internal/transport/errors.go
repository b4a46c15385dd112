package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/grigouze/gandi.cli/internal/domain"
)

// Error is returned by both transport clients for provider-side failures:
// non-2xx REST responses and XML-RPC faults. It unwraps to the matching
// domain sentinel, so callers classify with errors.Is.
type Error struct {
	Transport Kind

	// Op is the RPC method name or "<HTTP method> <path>".
	Op string

	StatusCode int
	FaultCode  int
	Message    string

	// Err is the classification sentinel, nil when unclassified.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Transport, e.Op)
	switch {
	case e.StatusCode != 0:
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	case e.FaultCode != 0:
		fmt.Fprintf(&b, ": fault %d", e.FaultCode)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// classifyStatus maps HTTP status codes to domain sentinels.
func classifyStatus(status int, message string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	}
	return classifyMessage(message)
}

// classifyMessage maps provider error messages to domain sentinels where
// recognisable. XML-RPC faults carry their cause as an upper-case token
// such as CAUSE_NOTFOUND.
func classifyMessage(message string) error {
	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "cause_badauth") ||
		strings.Contains(msg, "cause_noright") ||
		strings.Contains(msg, "invalid api key") ||
		strings.Contains(msg, "unauthorized"):
		return domain.ErrUnauthorized
	case strings.Contains(msg, "cause_notfound") ||
		strings.Contains(msg, "not found") ||
		strings.Contains(msg, "doesn't exist") ||
		strings.Contains(msg, "does not exist"):
		return domain.ErrNotFound
	case strings.Contains(msg, "cause_exist") ||
		strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "conflict"):
		return domain.ErrConflict
	case strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "too many requests"):
		return domain.ErrRateLimited
	}
	return nil
}

// IsTransportError reports whether err came from a provider response, as
// opposed to a local or network failure.
func IsTransportError(err error) bool {
	var terr *Error
	return errors.As(err, &terr)
}
