package core_test

import (
	"testing"

	"bill-generator/internal/core"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{name: "blank cell", raw: "", want: "0", ok: true},
		{name: "whitespace only", raw: "   ", want: "0", ok: true},
		{name: "plain integer", raw: "42", want: "42", ok: true},
		{name: "plain decimal", raw: "10.75", want: "10.75", ok: true},
		{name: "leading and trailing space", raw: "  15.5  ", want: "15.5", ok: true},
		{name: "thousands separators", raw: "1,23,456.78", want: "123456.78", ok: true},
		{name: "interior spaces", raw: "1 234.50", want: "1234.5", ok: true},
		{name: "negative", raw: "-12", want: "-12", ok: true},
		{name: "letter inside digits", raw: "1,2o0", want: "0", ok: false},
		{name: "pure text", raw: "as per MB", want: "0", ok: false},
		{name: "double decimal point", raw: "1.2.3", want: "0", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := core.CoerceNumber(tc.raw)
			if ok != tc.ok {
				t.Errorf("CoerceNumber(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
			}
			if got.String() != tc.want {
				t.Errorf("CoerceNumber(%q) = %s, want %s", tc.raw, got, tc.want)
			}
		})
	}
}
