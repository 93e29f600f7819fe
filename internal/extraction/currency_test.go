package extraction

import "testing"

func TestDetectCurrency(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"euro symbol", "CAFE LUNA\nESPRESSO €2.40", "€"},
		{"pound symbol", "TOTAL £12.00", "£"},
		{"dollar symbol", "GRAND TOTAL $45.00", "$"},
		{"pkr code", "Amount in PKR", "PKR"},
		{"rs abbreviation", "Rs. 500", "Rs"},
		{"usd code maps to dollar", "All prices in USD", "$"},
		{"eur code maps to euro", "charged 10.00 EUR", "€"},
		{"gbp code maps to pound", "10.00 GBP", "£"},
		{"lahore city cue", "SVESTON STORE LAHORE", "PKR"},
		{"pakistan country cue", "Karachi, Pakistan", "PKR"},
		{"dublin city cue", "Visit us in Dublin", "€"},
		{"canada country cue", "TORONTO CANADA", "CAD"},
		{"case insensitive word cues", "ireland", "€"},
		{"symbol beats code and geography", "Total 500 PKR (approx €1.70)", "€"},
		{"code beats geography", "USD payment, Lahore branch", "$"},
		{"no cue", "CORNER SHOP\nBISCUITS 3.50", ""},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectCurrency(tc.text); got != tc.want {
				t.Fatalf("DetectCurrency(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
