package reconcile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		current     []string
		add         []string
		remove      []string
		want        []string
		wantChanged bool
	}{
		{
			name:        "add new and existing",
			current:     []string{"a", "b"},
			add:         []string{"b", "c"},
			want:        []string{"a", "b", "c"},
			wantChanged: true,
		},
		{
			name:        "remove existing",
			current:     []string{"a", "b"},
			remove:      []string{"b"},
			want:        []string{"a"},
			wantChanged: true,
		},
		{
			name:    "add already present is a no-op",
			current: []string{"a"},
			add:     []string{"a"},
			want:    []string{"a"},
		},
		{
			name:    "remove missing is a no-op",
			current: []string{"a"},
			remove:  []string{"z"},
			want:    []string{"a"},
		},
		{
			name:    "add then remove same new element",
			current: []string{"a"},
			add:     []string{"x"},
			remove:  []string{"x"},
			want:    []string{"a"},
		},
		{
			name:        "swap keeps length but changes membership",
			current:     []string{"a", "b"},
			add:         []string{"c"},
			remove:      []string{"a"},
			want:        []string{"b", "c"},
			wantChanged: true,
		},
		{
			name:        "duplicate additions appended once",
			current:     nil,
			add:         []string{"a", "a", "b"},
			want:        []string{"a", "b"},
			wantChanged: true,
		},
		{
			name:        "remove drops only the first duplicate",
			current:     []string{"a", "b", "a"},
			remove:      []string{"a"},
			want:        []string{"b", "a"},
			wantChanged: true,
		},
		{
			name:        "repeated removal drops each duplicate",
			current:     []string{"a", "b", "a"},
			remove:      []string{"a", "a"},
			want:        []string{"b"},
			wantChanged: true,
		},
		{
			name:    "empty everything",
			current: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Apply(tt.current, tt.add, tt.remove)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply mismatch (-want +got):\n%s", diff)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestApply_DoesNotMutateCurrent(t *testing.T) {
	current := []string{"a", "b", "c"}
	Apply(current, []string{"d"}, []string{"a"})

	if diff := cmp.Diff([]string{"a", "b", "c"}, current); diff != "" {
		t.Errorf("current was modified (-want +got):\n%s", diff)
	}
}

func TestApply_Idempotent(t *testing.T) {
	inputs := []struct {
		current, add, remove []string
	}{
		{[]string{"a", "b"}, []string{"b", "c"}, nil},
		{[]string{"a", "b"}, nil, []string{"b"}},
		{[]string{"x"}, []string{"y", "z"}, []string{"x"}},
		{nil, []string{"a"}, []string{"a"}},
	}

	for _, in := range inputs {
		first, _ := Apply(in.current, in.add, in.remove)
		second, changed := Apply(first, in.add, in.remove)
		if changed {
			t.Errorf("second Apply(%v, %v, %v) reported a change", first, in.add, in.remove)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("second Apply differs (-first +second):\n%s", diff)
		}
	}
}

func TestApply_OrderInsensitiveComparison(t *testing.T) {
	// Removing and re-adding yields a reordered list with the same members.
	_, changed := Apply([]string{"a", "b"}, []string{"a"}, nil)
	if changed {
		t.Error("expected no change when membership is identical")
	}
}
