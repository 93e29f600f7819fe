package extraction

import "github.com/shopspring/decimal"

var reconcileThreshold = decimal.NewFromInt(10)

// Reconcile cross-checks an extracted total against the sum of item prices.
// A total of zero, or a suspiciously small total dwarfed by the item sum,
// means the total heuristic failed; the item sum is then the more
// trustworthy estimate. If the total does not parse it is returned
// unchanged.
func Reconcile(total string, items []LineItem) string {
	t, err := decimal.NewFromString(total)
	if err != nil {
		return total
	}

	sum := decimal.Zero
	for _, item := range items {
		p, err := decimal.NewFromString(item.Price)
		if err != nil {
			continue
		}
		sum = sum.Add(p)
	}

	if t.IsZero() || (t.LessThan(reconcileThreshold) && sum.GreaterThan(t)) {
		return sum.StringFixed(2)
	}
	return total
}
