package cli

import "testing"

func TestFormatIndian(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{99999, "99,999"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{123456789, "12,34,56,789"},
		{-1234567, "-12,34,567"},
	}

	for _, tt := range tests {
		if got := FormatIndian(tt.in); got != tt.want {
			t.Errorf("FormatIndian(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(1234567.8); got != "₹12,34,568 Cr" {
		t.Errorf("FormatAmount = %q, want ₹12,34,568 Cr", got)
	}
}

func TestFormatGrowthPercent(t *testing.T) {
	if got := FormatGrowthPercent(nil); got != "N/A" {
		t.Errorf("nil percent = %q, want N/A", got)
	}

	pct := 50.0
	if got := FormatGrowthPercent(&pct); got != "+50.0%" {
		t.Errorf("percent = %q, want +50.0%%", got)
	}

	neg := -3.5
	if got := FormatGrowthPercent(&neg); got != "-3.5%" {
		t.Errorf("percent = %q, want -3.5%%", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(1000); got != "+₹1,000 Cr" {
		t.Errorf("delta = %q, want +₹1,000 Cr", got)
	}
	if got := FormatDelta(-1000); got != "-₹1,000 Cr" {
		t.Errorf("delta = %q, want -₹1,000 Cr", got)
	}
}

func TestFormatYearRange(t *testing.T) {
	if got := FormatYearRange(2014, 2025); got != "2014–2025" {
		t.Errorf("range = %q", got)
	}
	if got := FormatYearRange(2020, 2020); got != "2020" {
		t.Errorf("single year = %q, want 2020", got)
	}
}
