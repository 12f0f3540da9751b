package forms

import (
	"testing"
	"time"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{1234.5, "$1,234.50"},
		{0, "$0.00"},
		{5, "$5.00"},
		{999999.99, "$999,999.99"},
		{1000000, "$1,000,000.00"},
		{-200, "-$200.00"},
		{150.5, "$150.50"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.amount); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestFormatDateZero(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "—" {
		t.Fatalf("zero time should render as dash, got %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	if v, err := ParseAmount("$25.50"); err != nil || v != 25.5 {
		t.Fatalf("ParseAmount($25.50) = %v, %v", v, err)
	}
	if v, err := ParseAmount(" 10 "); err != nil || v != 10 {
		t.Fatalf("ParseAmount(10) = %v, %v", v, err)
	}
	if _, err := ParseAmount(""); err == nil {
		t.Fatal("empty amount should fail")
	}
	if _, err := ParseAmount("abc"); err == nil {
		t.Fatal("non-numeric amount should fail")
	}
}
