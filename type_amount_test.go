package eggworth

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		err   bool
	}{
		{"50000", 50000, false},
		{"0", 0, false},
		{"1234.56", 1234.56, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if tt.err {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidInput", tt.input, err)
				}
				return
			}
			if !got.Equal(A(tt.want)) {
				t.Errorf("ParseAmount(%q) = %s, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAmountDisplay(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0.25, "$0.25"},
		{1234.56, "$1,234.56"},
		{50000, "$50,000.00"},
		{0, "$0.00"},
	}
	for _, tt := range tests {
		if got := A(tt.amount).Display(); got != tt.want {
			t.Errorf("Display(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestAmountBillions(t *testing.T) {
	if got := A(234).Billions(); !got.Equal(A(234_000_000_000.0)) {
		t.Errorf("Billions(234) = %s", got)
	}
}
