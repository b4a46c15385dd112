package transport

import (
	"errors"
	"testing"
)

type mapSource map[string]string

func (m mapSource) Get(key string) string { return m[key] }

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		src  FlagSource
		want Kind
	}{
		{"nil source", nil, Legacy},
		{"flag absent", mapSource{}, Legacy},
		{"flag empty", mapSource{RESTKeyName: ""}, Legacy},
		{"flag blank", mapSource{RESTKeyName: "  \t"}, Legacy},
		{"legacy key only", mapSource{"api.key": "abc"}, Legacy},
		{"flag set", mapSource{RESTKeyName: "rest-key"}, REST},
		{"both set", mapSource{"api.key": "abc", RESTKeyName: "rest-key"}, REST},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.src); got != tt.want {
				t.Errorf("Select() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelect_ReadsFlagOnEveryCall(t *testing.T) {
	src := mapSource{}
	if got := Select(src); got != Legacy {
		t.Fatalf("expected legacy, got %q", got)
	}
	src[RESTKeyName] = "now-set"
	if got := Select(src); got != REST {
		t.Errorf("expected rest after setting flag, got %q", got)
	}
}

type lookupSource struct {
	values map[string]string
	err    error
}

func (l lookupSource) Get(key string) string { return l.values[key] }

func (l lookupSource) Lookup(key string) (string, error) {
	if l.err != nil {
		return "", l.err
	}
	return l.values[key], nil
}

func TestResolve(t *testing.T) {
	locked := errors.New("dbus: keychain locked")

	tests := []struct {
		name    string
		src     FlagSource
		want    Kind
		wantErr error
	}{
		{"plain source", mapSource{RESTKeyName: "k"}, REST, nil},
		{"lookup empty", lookupSource{}, Legacy, nil},
		{"lookup set", lookupSource{values: map[string]string{RESTKeyName: "k"}}, REST, nil},
		{"lookup fails", lookupSource{err: locked}, "", locked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.src)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}
