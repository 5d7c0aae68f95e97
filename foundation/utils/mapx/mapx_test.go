package mapx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type labels map[string]string

func TestSortedKeys(t *testing.T) {
	got := SortedKeys(map[string]int{"month": 2, "day": 1, "year": 3})
	if diff := cmp.Diff([]string{"day", "month", "year"}, got); diff != "" {
		t.Errorf("SortedKeys() mismatch (-want +got):\n%s", diff)
	}
	if got := Keys(map[string]int(nil)); got != nil {
		t.Errorf("Keys(nil) = %v, want nil", got)
	}
}

func TestClone(t *testing.T) {
	original := labels{"future": "in %s"}
	clone := Clone(original)
	clone["future"] = "changed"

	if original["future"] != "in %s" {
		t.Error("Clone() shares storage with the original")
	}
	if Clone(labels(nil)) != nil {
		t.Error("Clone(nil) != nil")
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		maps []labels
		want labels
	}{
		{"later wins", []labels{{"a": "1", "b": "2"}, {"b": "3"}}, labels{"a": "1", "b": "3"}},
		{"nil maps", []labels{nil, {"a": "1"}, nil}, labels{"a": "1"}},
		{"none", nil, labels{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Merge(tt.maps...)); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
