package eggworth

import "testing"

func TestCountString(t *testing.T) {
	tests := []struct {
		count Count
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1,000"},
		{200_000, "200,000"},
		{999_999, "999,999"},
		{1_000_000, "1.00 Million"},
		{2_500_000, "2.50 Million"},
		{2_500_000_000, "2.50 Billion"},
		{936_000_000_000, "936.00 Billion"},
		{3_000_000_000_000, "3.00 Trillion"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.count.String(); got != tt.want {
				t.Errorf("Count(%d).String() = %q, want %q", tt.count, got, tt.want)
			}
		})
	}
}
