package providers

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync"

	"github.com/grigouze/gandi.cli/internal/config"
	"github.com/grigouze/gandi.cli/internal/domain"
	"github.com/grigouze/gandi.cli/internal/transport"
	"github.com/grigouze/gandi.cli/internal/util"
)

// Options carries construction settings shared by every backend factory.
type Options struct {
	Logger *slog.Logger

	// HTTPClient, when set, replaces the REST client's HTTP client.
	HTTPClient *http.Client
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Factory builds a backend from the current configuration.
type Factory func(store config.Store, opts Options) (domain.Backend, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register installs the factory for a transport kind. It panics on an empty
// kind, a nil factory or a duplicate registration.
func Register(kind transport.Kind, factory Factory) {
	name := util.NormalizeKey(string(kind))
	if name == "" {
		panic("providers: empty transport kind")
	}
	if factory == nil {
		panic("providers: nil factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("providers: transport %q already registered", kind))
	}

	registry[name] = factory
}

// Get builds the backend registered for kind.
func Get(kind transport.Kind, store config.Store, opts Options) (domain.Backend, error) {
	name := util.NormalizeKey(string(kind))
	mu.RLock()
	factory, ok := registry[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("providers: unknown transport %q", kind)
	}

	return factory(store, opts)
}

// New selects the transport from the credential flag in store and builds
// the matching backend. The flag is read on every call; a store that fails
// to read it fails the call.
func New(store config.Store, opts Options) (domain.Backend, error) {
	kind, err := transport.Resolve(store)
	if err != nil {
		return nil, err
	}
	return Get(kind, store, opts)
}

// Reset clears the registry. Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]Factory{}
}

// List returns the registered transport kinds in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// RegisterDefaults registers both transports.
func RegisterDefaults() {
	RegisterLegacy()
	RegisterREST()
}
