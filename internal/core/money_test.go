package core

import (
	"errors"
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out Money
		err error
	}{
		{"1", 1, nil},
		{"0", 0, nil},
		{"1500", 1500, nil},
		{" 2500 ", 2500, nil},
		{"+42", 42, nil},
		{"007", 7, nil},
		{"-1", -1, ErrNegativeAmount},
		{"-0", 0, nil},
		{"abc", 0, ErrInvalidAmount},
		{"12.5", 0, ErrInvalidAmount},
		{"1,000", 0, ErrInvalidAmount},
		{"+-5", 0, ErrInvalidAmount},
		{"--5", 0, ErrInvalidAmount},
		{"+", 0, ErrInvalidAmount},
		{"", 0, ErrInvalidAmount},
		{"99999999999999999999", 0, ErrInvalidAmount},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if !errors.Is(err, tc.err) {
			t.Fatalf("%q expected err %v, got %v", tc.in, tc.err, err)
		}
		if got != tc.out {
			t.Fatalf("%q expected %d, got %d", tc.in, tc.out, got)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in  int64
		out string
	}{
		{0, "₹0"},
		{5, "₹5"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{15000, "₹15,000"},
		{1234567, "₹1,234,567"},
		{-500, "-₹500"},
		{-2000, "-₹2,000"},
		{-1234567, "-₹1,234,567"},
		{math.MaxInt64, "₹9,223,372,036,854,775,807"},
		{math.MinInt64, "-₹9,223,372,036,854,775,808"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.out {
			t.Fatalf("FormatCurrency(%d) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestMoneyString(t *testing.T) {
	if got := Money(35000).String(); got != "₹35,000" {
		t.Fatalf("got %q", got)
	}
}
