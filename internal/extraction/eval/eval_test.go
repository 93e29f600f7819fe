package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/receiptlens/backend/internal/extraction"
)

func TestLoadFixtures(t *testing.T) {
	fixtures, err := LoadFixtures()
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}
	if len(fixtures) != len(fixtureNames) {
		t.Fatalf("loaded %d fixtures, want %d", len(fixtures), len(fixtureNames))
	}
	for _, f := range fixtures {
		if f.Text == "" {
			t.Fatalf("fixture %q has empty text", f.Name)
		}
		if f.GroundTruth == nil || f.GroundTruth.Total == "" {
			t.Fatalf("fixture %q has incomplete ground truth", f.Name)
		}
	}
}

func TestFixturesScorePerfectly(t *testing.T) {
	fixtures, err := LoadFixtures()
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}

	for _, f := range fixtures {
		t.Run(f.Name, func(t *testing.T) {
			r := Evaluate(f)
			if r.Err != "" {
				t.Fatalf("extraction failed: %s", r.Err)
			}
			if !r.TotalMatch || !r.DateMatch || !r.CategoryMatch || !r.CurrencyMatch {
				t.Fatalf("field mismatch: %+v", r)
			}
			if r.Items.F1 != 1 {
				t.Fatalf("item F1 = %.2f, want 1.00 (%+v)", r.Items.F1, r.Items)
			}
			if r.OverallScore != 1 {
				t.Fatalf("overall score = %.2f, want 1.00", r.OverallScore)
			}
		})
	}
}

func TestComputeMetricsPartialMatch(t *testing.T) {
	receipt := &extraction.Receipt{
		Total:    "10.00",
		Date:     "Unknown",
		Category: "EXPENSE",
		Currency: "",
		Items: []extraction.LineItem{
			{Name: "MILK", Price: "2.50", Qty: 1},
			{Name: "NOISE", Price: "7.50", Qty: 1},
		},
	}
	truth := &GroundTruth{
		Total:    "10.00",
		Date:     "01/02/2024",
		Category: "GROCERIES",
		Currency: "$",
		Items: []Item{
			{Name: "MILK", Price: "2.50", Qty: 1},
			{Name: "BREAD", Price: "1.20", Qty: 1},
		},
	}

	r := ComputeMetrics("partial", receipt, truth)
	if !r.TotalMatch || r.DateMatch || r.CategoryMatch || r.CurrencyMatch {
		t.Fatalf("unexpected field matches: %+v", r)
	}
	if r.Items.Matched != 1 || r.Items.Precision != 0.5 || r.Items.Recall != 0.5 {
		t.Fatalf("unexpected item metrics: %+v", r.Items)
	}
	// fields 1/4 * 0.5 + F1 0.5 * 0.5
	if r.OverallScore != 0.375 {
		t.Fatalf("overall score = %v, want 0.375", r.OverallScore)
	}
}

func TestEmptyItemsScoreAsPerfect(t *testing.T) {
	m := matchItems(nil, nil)
	if m.F1 != 1 || m.Precision != 1 || m.Recall != 1 {
		t.Fatalf("empty-vs-empty metrics = %+v, want all 1", m)
	}
}

func TestWriteReport(t *testing.T) {
	fixtures, err := LoadFixtures()
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}
	var results []*Result
	for _, f := range fixtures {
		results = append(results, Evaluate(f))
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, results); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "sveston_store") || !strings.Contains(out, "mean score") {
		t.Fatalf("unexpected report output:\n%s", out)
	}

	buf.Reset()
	if err := WriteCSV(&buf, results); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(buf.String(), "fixture,total_match") {
		t.Fatalf("unexpected csv header:\n%s", buf.String())
	}
}
