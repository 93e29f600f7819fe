package eval

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
)

// ReportRow is the CSV shape of one evaluation result.
type ReportRow struct {
	Fixture       string  `csv:"fixture"`
	TotalMatch    bool    `csv:"total_match"`
	DateMatch     bool    `csv:"date_match"`
	CategoryMatch bool    `csv:"category_match"`
	CurrencyMatch bool    `csv:"currency_match"`
	ItemsExpected int     `csv:"items_expected"`
	ItemsMatched  int     `csv:"items_matched"`
	ItemF1        float64 `csv:"item_f1"`
	OverallScore  float64 `csv:"overall_score"`
	Error         string  `csv:"error"`
}

// WriteReport prints a human-readable summary table.
func WriteReport(w io.Writer, results []*Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIXTURE\tTOTAL\tDATE\tCATEGORY\tCURRENCY\tITEMS\tF1\tSCORE")

	var sum float64
	for _, r := range results {
		if r.Err != "" {
			fmt.Fprintf(tw, "%s\tERROR: %s\n", r.Fixture, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d/%d\t%.2f\t%.2f\n",
			r.Fixture,
			mark(r.TotalMatch), mark(r.DateMatch), mark(r.CategoryMatch), mark(r.CurrencyMatch),
			r.Items.Matched, r.Items.Expected,
			r.Items.F1, r.OverallScore)
		sum += r.OverallScore
	}

	if len(results) > 0 {
		fmt.Fprintf(tw, "\nmean score\t%.3f\n", sum/float64(len(results)))
	}
	return tw.Flush()
}

// WriteCSV writes the results as a CSV report.
func WriteCSV(w io.Writer, results []*Result) error {
	rows := make([]*ReportRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, &ReportRow{
			Fixture:       r.Fixture,
			TotalMatch:    r.TotalMatch,
			DateMatch:     r.DateMatch,
			CategoryMatch: r.CategoryMatch,
			CurrencyMatch: r.CurrencyMatch,
			ItemsExpected: r.Items.Expected,
			ItemsMatched:  r.Items.Matched,
			ItemF1:        r.Items.F1,
			OverallScore:  r.OverallScore,
			Error:         r.Err,
		})
	}
	return gocsv.Marshal(&rows, w)
}

func mark(ok bool) string {
	if ok {
		return "ok"
	}
	return "MISS"
}
