package extraction

import "testing"

func TestReconcile(t *testing.T) {
	items := func(prices ...string) []LineItem {
		out := make([]LineItem, len(prices))
		for i, p := range prices {
			out[i] = LineItem{Name: "ITEM", Price: p, Qty: 1}
		}
		return out
	}

	tests := []struct {
		name  string
		total string
		items []LineItem
		want  string
	}{
		{"zero total overridden by item sum", "0.00", items("2.50", "1.20"), "3.70"},
		{"zero total with no items stays zero", "0.00", nil, "0.00"},
		{"plausible total kept", "45.00", items("2.50", "1.20"), "45.00"},
		{"small total dwarfed by items overridden", "5.00", items("20.00", "17.50"), "37.50"},
		{"small total larger than item sum kept", "5.00", items("2.00"), "5.00"},
		{"small total equal to item sum kept", "5.00", items("5.00"), "5.00"},
		{"unparseable total returned unchanged", "n/a", items("2.50"), "n/a"},
		{"unparseable item price skipped in sum", "0.00", []LineItem{
			{Name: "GOOD", Price: "2.50", Qty: 1},
			{Name: "BAD", Price: "x", Qty: 1},
		}, "2.50"},
		{"override formats to two decimals", "0.00", items("12"), "12.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Reconcile(tc.total, tc.items); got != tc.want {
				t.Fatalf("Reconcile(%q, %v) = %q, want %q", tc.total, tc.items, got, tc.want)
			}
		})
	}
}
