// Package transport implements the two wire protocols spoken by the hosting
// API: legacy XML-RPC method calls and versioned REST endpoints. It also
// decides which of the two a given configuration selects.
package transport

import (
	"fmt"
	"strings"
)

// Kind identifies a transport.
type Kind string

const (
	Legacy Kind = "legacy"
	REST   Kind = "rest"
)

// RESTKeyName is the configuration key whose presence selects the REST
// transport.
const RESTKeyName = "apirest.key"

// FlagSource reads configuration values by key.
type FlagSource interface {
	Get(key string) string
}

// Select returns REST when the REST credential is configured and non-blank,
// and Legacy otherwise. The flag is read on every call.
func Select(src FlagSource) Kind {
	if src != nil && strings.TrimSpace(src.Get(RESTKeyName)) != "" {
		return REST
	}
	return Legacy
}

// Lookuper is a FlagSource able to report why a value could not be read.
type Lookuper interface {
	Lookup(key string) (string, error)
}

// Resolve is Select for sources that can fail. When src implements
// Lookuper, a failure to read the REST credential is returned instead of
// silently selecting Legacy.
func Resolve(src FlagSource) (Kind, error) {
	l, ok := src.(Lookuper)
	if !ok {
		return Select(src), nil
	}
	v, err := l.Lookup(RESTKeyName)
	if err != nil {
		return "", fmt.Errorf("cannot select transport: %w", err)
	}
	if strings.TrimSpace(v) != "" {
		return REST, nil
	}
	return Legacy, nil
}

func (k Kind) String() string { return string(k) }
