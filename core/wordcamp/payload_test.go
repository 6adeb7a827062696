package wordcamp

import (
	"encoding/json"
	"testing"
)

func TestFlexInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want flexInt
	}{
		{`42`, 42},
		{`"42"`, 42},
		{`1700000000.0`, 1700000000},
		{`""`, 0},
		{`null`, 0},
		{`"abc"`, 0},
		{`{"x":1}`, 0},
	}

	for _, tt := range tests {
		var got flexInt
		if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
			t.Errorf("%s: unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFlexIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []int
	}{
		{`[3, "4"]`, []int{3, 4}},
		{`"5"`, []int{5}},
		{`null`, nil},
		{`[]`, nil},
		{`""`, nil},
	}

	for _, tt := range tests {
		var got flexIDs
		if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
			t.Errorf("%s: unexpected error %v", tt.in, err)
			continue
		}
		ints := got.ints()
		if len(ints) != len(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.in, ints, tt.want)
			continue
		}
		for i := range ints {
			if ints[i] != tt.want[i] {
				t.Errorf("%s: got %v, want %v", tt.in, ints, tt.want)
			}
		}
	}
}
