// Command eval runs the extraction pipeline against the embedded fixture
// receipts and prints accuracy metrics. With -dir it instead extracts every
// .txt file in a directory and dumps the raw results as CSV, which is handy
// for eyeballing a new batch of receipts before turning them into fixtures.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/receiptlens/backend/internal/extraction"
	"github.com/receiptlens/backend/internal/extraction/eval"
)

func main() {
	csvPath := flag.String("csv", "", "also write metrics as CSV to this file")
	dir := flag.String("dir", "", "extract every .txt file in this directory instead of running fixtures")
	flag.Parse()

	if *dir != "" {
		if err := runDir(*dir); err != nil {
			fmt.Fprintf(os.Stderr, "eval: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runFixtures(*csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "eval: %v\n", err)
		os.Exit(1)
	}
}

func runFixtures(csvPath string) error {
	fixtures, err := eval.LoadFixtures()
	if err != nil {
		return fmt.Errorf("loading fixtures: %w", err)
	}

	results := make([]*eval.Result, 0, len(fixtures))
	for _, f := range fixtures {
		results = append(results, eval.Evaluate(f))
	}

	if err := eval.WriteReport(os.Stdout, results); err != nil {
		return err
	}

	if csvPath != "" {
		out, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", csvPath, err)
		}
		defer out.Close()
		if err := eval.WriteCSV(out, results); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
	}
	return nil
}

// batchRow is one extracted receipt in -dir mode.
type batchRow struct {
	File     string `csv:"file"`
	Total    string `csv:"total"`
	Items    int    `csv:"items"`
	Currency string `csv:"currency"`
	Category string `csv:"category"`
	Date     string `csv:"date"`
}

func runDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	var rows []batchRow
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("reading %s: %w", entry.Name(), err)
		}

		receipt, err := extraction.Extract(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", entry.Name(), err)
			continue
		}
		rows = append(rows, batchRow{
			File:     entry.Name(),
			Total:    receipt.Total,
			Items:    len(receipt.Items),
			Currency: receipt.Currency,
			Category: receipt.Category,
			Date:     receipt.Date,
		})
	}

	if len(rows) == 0 {
		return fmt.Errorf("no .txt files found in %s", dir)
	}
	csv, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fmt.Errorf("marshaling csv: %w", err)
	}
	fmt.Print(csv)
	return nil
}
