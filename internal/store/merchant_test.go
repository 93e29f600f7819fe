package store

import "testing"

func TestDeriveMerchant(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "store header line",
			raw:  "SVESTON STORE\n123 MAIN ST\nMILK 2.50",
			want: "Sveston Store",
		},
		{
			name: "skips numeric-only header",
			raw:  "20230605\nCORNER CAFE\nTEA 1.20",
			want: "Corner Cafe",
		},
		{
			name: "short words uppercased",
			raw:  "BP GAS STATION",
			want: "BP Gas Station",
		},
		{
			name: "strips long digit runs and symbols",
			raw:  "WALMART #1234567 ***",
			want: "Walmart",
		},
		{
			name: "empty text",
			raw:  "",
			want: "Unknown Merchant",
		},
		{
			name: "only noise lines",
			raw:  "12345\n***\n--",
			want: "Unknown Merchant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveMerchant(tt.raw)
			if got != tt.want {
				t.Errorf("DeriveMerchant(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
