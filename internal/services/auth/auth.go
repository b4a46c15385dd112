// Package auth stores API keys in the operating system keychain.
package auth

import (
	"errors"

	"github.com/grigouze/gandi.cli/internal/util"
)

// ServiceName is the keychain service all gandi secrets are filed under.
const ServiceName = "gandi"

var ErrTokenNotFound = errors.New("auth token not found")

// Store persists named secrets such as "api.key" and "apirest.key".
type Store interface {
	SetToken(name string, token string) error
	GetToken(name string) (string, error)
	DeleteToken(name string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeName normalizes a secret name for consistent key lookup.
func NormalizeName(name string) string {
	return util.NormalizeKey(name)
}
