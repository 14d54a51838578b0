package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"7", "$7.00"},
		{"999.999", "$1,000.00"},
		{"1234.5", "$1,234.50"},
		{"-100", "-$100.00"},
		{"-1234567.891", "-$1,234,567.89"},
	}
	for _, tc := range cases {
		got := FormatMoney(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestPlural(t *testing.T) {
	if got := Plural(1, "transaction"); got != "1 transaction" {
		t.Fatalf("Plural(1) = %q", got)
	}
	if got := Plural(0, "transaction"); got != "0 transactions" {
		t.Fatalf("Plural(0) = %q", got)
	}
	if got := Plural(1200, "transaction"); got != "1,200 transactions" {
		t.Fatalf("Plural(1200) = %q", got)
	}
}
