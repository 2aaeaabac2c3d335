package validation

import "testing"

func TestComputeCheckDigit(t *testing.T) {
	tests := []struct {
		name string
		base string
		want int
	}{
		{
			name: "remainder zero",
			base: "1234567890",
			want: 0,
		},
		{
			name: "remainder one maps to zero",
			base: "4000000000",
			want: 0,
		},
		{
			name: "remainder ten maps to one",
			base: "7000000000",
			want: 1,
		},
		{
			name: "regular remainder",
			base: "1701209450",
			want: 6,
		},
		{
			name: "small remainder gives large digit",
			base: "0100000000",
			want: 9,
		},
		{
			name: "all zeros",
			base: "0000000000",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCheckDigit(tt.base)
			if got != tt.want {
				t.Fatalf("ComputeCheckDigit(%q) = %d, want %d", tt.base, got, tt.want)
			}
		})
	}
}

func TestComputeCheckDigitRange(t *testing.T) {
	bases := []string{
		"0000000000",
		"1234567890",
		"9999999999",
		"4000000000",
		"7000000000",
		"5550123456",
		"1701209450",
	}

	for _, base := range bases {
		dv := ComputeCheckDigit(base)
		if dv < 0 || dv > 9 {
			t.Fatalf("ComputeCheckDigit(%q) = %d, must be a single digit", base, dv)
		}
	}
}

func TestHasValidCheckDigit(t *testing.T) {
	if !hasValidCheckDigit("12345678900") {
		t.Fatalf("12345678900 must have a valid check digit")
	}
	if hasValidCheckDigit("12345678901") {
		t.Fatalf("12345678901 must not have a valid check digit")
	}
	if hasValidCheckDigit("1234567890") {
		t.Fatalf("strings shorter than 11 characters must be rejected")
	}
}
