// Package services implements the resource operations of the CLI on top of
// a transport backend: domains, mail forwards, mailboxes, DNSSEC keys,
// VLANs and account information.
package services

import (
	"context"

	"github.com/grigouze/gandi.cli/internal/domain"
)

// OperationFunc reads the current state of an asynchronous operation.
type OperationFunc func(ctx context.Context, id int) (*domain.Operation, error)

// Sink receives the human-facing side effects of resource operations.
type Sink interface {
	// Echo emits an informational message.
	Echo(msg string)

	// IsInteractive reports whether a user is attached to the output.
	// Operations that would render progress run in background otherwise.
	IsInteractive() bool

	// Progress blocks until op completes, rendering its progress. Untracked
	// operations are reported by message only.
	Progress(ctx context.Context, op *domain.Operation, poll OperationFunc) error
}
