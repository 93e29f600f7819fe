// Package eval provides a fixture-based evaluation harness for the rule-based
// receipt extraction pipeline, comparing engine output against ground-truth
// records.
package eval

import (
	"github.com/receiptlens/backend/internal/extraction"
)

// GroundTruth is the expected extraction output for one fixture.
type GroundTruth struct {
	Name     string `json:"name"`
	Total    string `json:"total"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Currency string `json:"currency"`
	Items    []Item `json:"items"`
}

// Item is a single expected line item.
type Item struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Qty   int    `json:"qty"`
}

// Result holds metrics from evaluating one fixture.
type Result struct {
	Fixture       string
	TotalMatch    bool
	DateMatch     bool
	CategoryMatch bool
	CurrencyMatch bool
	Items         CountMetrics
	OverallScore  float64
	Err           string // non-empty if extraction failed
}

// CountMetrics measures line-item detection performance.
type CountMetrics struct {
	Expected  int
	Extracted int
	Matched   int
	Precision float64
	Recall    float64
	F1        float64
}

// Evaluate runs the extraction pipeline on a fixture and scores the output
// against its ground truth.
func Evaluate(f *Fixture) *Result {
	receipt, err := extraction.Extract(f.Text)
	if err != nil {
		return &Result{Fixture: f.Name, Err: err.Error()}
	}
	return ComputeMetrics(f.Name, receipt, f.GroundTruth)
}

// ComputeMetrics compares an extracted receipt against ground truth.
func ComputeMetrics(fixture string, receipt *extraction.Receipt, truth *GroundTruth) *Result {
	r := &Result{
		Fixture:       fixture,
		TotalMatch:    receipt.Total == truth.Total,
		DateMatch:     receipt.Date == truth.Date,
		CategoryMatch: receipt.Category == truth.Category,
		CurrencyMatch: receipt.Currency == truth.Currency,
		Items:         matchItems(receipt.Items, truth.Items),
	}

	fieldScore := 0.0
	for _, ok := range []bool{r.TotalMatch, r.DateMatch, r.CategoryMatch, r.CurrencyMatch} {
		if ok {
			fieldScore += 0.25
		}
	}
	r.OverallScore = fieldScore*0.5 + r.Items.F1*0.5
	return r
}

// matchItems pairs extracted items with expected ones by exact (name, price)
// match; each expected item is consumed at most once.
func matchItems(extracted []extraction.LineItem, expected []Item) CountMetrics {
	m := CountMetrics{
		Expected:  len(expected),
		Extracted: len(extracted),
	}

	if m.Expected == 0 && m.Extracted == 0 {
		m.Precision, m.Recall, m.F1 = 1, 1, 1
		return m
	}

	used := make([]bool, len(expected))
	for _, item := range extracted {
		for i, want := range expected {
			if used[i] {
				continue
			}
			if item.Name == want.Name && item.Price == want.Price {
				used[i] = true
				m.Matched++
				break
			}
		}
	}

	if m.Extracted > 0 {
		m.Precision = float64(m.Matched) / float64(m.Extracted)
	}
	if m.Expected > 0 {
		m.Recall = float64(m.Matched) / float64(m.Expected)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}
