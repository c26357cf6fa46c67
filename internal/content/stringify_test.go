package content

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"snapassert/internal/snaperr"
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type label string

func (l label) String() string { return "label:" + string(l) }

func TestStringify(t *testing.T) {
	n := 7
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "foo", "foo"},
		{"bytes", []byte("bar"), "bar"},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"negative", int64(-3), "-3"},
		{"uint", uint8(9), "9"},
		{"float", 1.5, "1.5"},
		{"stringer", label("x"), "label:x"},
		{"error", errors.New("boom"), "boom"},
		{"slice", []int{1, 2, 3}, "[1,2,3]"},
		{"map", map[string]int{"b": 2, "a": 1}, `{"a":1,"b":2}`},
		{"struct", point{1, 2}, "{\n    \"x\": 1,\n    \"y\": 2\n}"},
		{"struct pointer", &point{3, 4}, "{\n    \"x\": 3,\n    \"y\": 4\n}"},
		{"int pointer", &n, "7"},
		{"nil pointer", (*point)(nil), ""},
		{"nil stringer pointer", (*time.Time)(nil), ""},
		{"nil error pointer", (*fs.PathError)(nil), ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Stringify(tc.in)
			if err != nil {
				t.Fatalf("Stringify(%v) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Stringify(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestStringifyRejectsUnsupportedKinds(t *testing.T) {
	for _, in := range []any{make(chan int), func() {}, complex(1, 2), []any{func() {}}} {
		_, err := Stringify(in)
		if !errors.Is(err, snaperr.ErrInvalidInput) {
			t.Errorf("Stringify(%T) error = %v, want ErrInvalidInput", in, err)
		}
	}
}
