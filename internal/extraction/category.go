package extraction

import "strings"

// categoryRule maps a spending category to its keyword set.
type categoryRule struct {
	label    string
	keywords []string
}

// categoryRules is evaluated in order against the upper-cased text; the first
// category with any keyword present wins. The order is a deliberate
// tie-break: a receipt matching two categories always resolves to the
// earlier one.
var categoryRules = []categoryRule{
	{"GROCERIES", []string{"WALMART", "TARGET", "COSTCO", "MARKET", "FOOD", "GROCERY", "MILK", "BREAD", "MEAT", "EGGS", "SVESTON"}},
	{"DINING", []string{"RESTAURANT", "CAFE", "COFFEE", "BURGER", "PIZZA", "GRILL", "KITCHEN", "STARBUCKS", "MCDONALDS", "BAR", "TIKKA", "KARHAI", "STEAKHOUSE", "OUTBACK", "DINNER", "LUNCH"}},
	{"TECH", []string{"BEST BUY", "APPLE", "MICROSOFT", "PHONE", "ELECTRONICS", "COMPUTER", "DATA", "MOBILE", "GADGET", "TECHNO", "MACBOOK", "LAPTOP"}},
	{"GAS", []string{"SHELL", "FUEL", "GAS", "PETROL", "STATION"}},
	{"TRAVEL", []string{"HOTEL", "UBER", "LYFT", "FLIGHT", "AIRLINE", "TAXI"}},
	{"FASHION", []string{"CLOTHES", "ZARA", "H&M", "JEWELRY", "WATCH", "SVESTON", "WEAR", "SHIRT", "PANT"}},
}

// Classify assigns one spending category from the fixed keyword table,
// defaulting to EXPENSE when nothing matches.
func Classify(text string) string {
	upper := strings.ToUpper(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(upper, kw) {
				return rule.label
			}
		}
	}
	return DefaultCategory
}
