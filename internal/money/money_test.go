package money

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Cents
	}{
		{name: "whole amount", text: "12", want: 1200},
		{name: "two decimals", text: "12.34", want: 1234},
		{name: "one decimal", text: "0.5", want: 50},
		{name: "extra decimals truncated not rounded", text: "1.239", want: 123},
		{name: "negative amount", text: "-10.00", want: -1000},
		{name: "leading and trailing spaces", text: "  3.50 ", want: 350},
		{name: "empty text is zero", text: "", want: 0},
		{name: "garbage is zero", text: "abc", want: 0},
		{name: "partial garbage is zero", text: "12.3x", want: 0},
		{name: "input capped at twelve characters", text: "123456789.1234567", want: 12345678912},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.text); got != tt.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		cents Cents
		want  string
	}{
		{cents: 1234, want: "12.34"},
		{cents: 50, want: "0.50"},
		{cents: 0, want: "0.00"},
		{cents: -1000, want: "-10.00"},
		{cents: 3, want: "0.03"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.cents); got != tt.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestParseAmountFormatAmountRoundTrip(t *testing.T) {
	for _, cents := range []Cents{0, 1, 99, 100, 1234, 999999} {
		if got := ParseAmount(FormatAmount(cents)); got != cents {
			t.Errorf("round trip of %d cents = %d", cents, got)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{text: "60", want: 60},
		{text: "33.3", want: 33.3},
		{text: "-5", want: -5},
		{text: "", want: 0},
		{text: "x", want: 0},
	}

	for _, tt := range tests {
		if got := ParseNumber(tt.text); got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
