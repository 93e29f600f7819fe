package extraction

import (
	"errors"
	"reflect"
	"testing"
)

const svestonReceipt = `SVESTON STORE
LAHORE PAKISTAN
MILK          2.50
BREAD         1.20
SUBTOTAL      3.70
NET AMOUNT    3.70
05-06-2023`

func TestExtract(t *testing.T) {
	t.Run("end to end", func(t *testing.T) {
		got, err := Extract(svestonReceipt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := &Receipt{
			Total:    "3.70",
			Date:     "05-06-2023",
			Category: "GROCERIES",
			Currency: "PKR",
			Items: []LineItem{
				{Name: "MILK", Price: "2.50", Qty: 1},
				{Name: "BREAD", Price: "1.20", Qty: 1},
			},
			RawText: svestonReceipt,
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Extract() = %+v, want %+v", got, want)
		}
	})

	t.Run("reconciliation recovers missing total", func(t *testing.T) {
		text := "CORNER MART\nMILK 22.50\nEGGS 15.00"
		got, err := Extract(text)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Total != "37.50" {
			t.Fatalf("Total = %q, want %q", got.Total, "37.50")
		}
	})

	t.Run("total qty line does not count as a total", func(t *testing.T) {
		got, err := Extract("RANDOM OUTLET\nTOTAL QTY 3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Total != "0.00" {
			t.Fatalf("Total = %q, want %q", got.Total, "0.00")
		}
	})

	t.Run("all fields defaulted on unstructured text", func(t *testing.T) {
		got, err := Extract("lorem ipsum dolor sit amet")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := &Receipt{
			Total:    "0.00",
			Date:     "Unknown",
			Category: "EXPENSE",
			Currency: "",
			Items:    []LineItem{},
			RawText:  "lorem ipsum dolor sit amet",
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Extract() = %+v, want %+v", got, want)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		a, err := Extract(svestonReceipt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := Extract(svestonReceipt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("repeated extraction differs: %+v vs %+v", a, b)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\n\t\n"} {
			if _, err := Extract(text); !errors.Is(err, ErrEmptyText) {
				t.Fatalf("Extract(%q) error = %v, want ErrEmptyText", text, err)
			}
		}
	})

	t.Run("never panics on hostile input", func(t *testing.T) {
		inputs := []string{
			"\x00\x01\x02",
			"€€€€€€€€",
			"TOTAL",
			"TOTAL ,,,",
			"9999999999999999999999 9999999999999999999999.99",
			"NET AMOUNT",
			"1-1-1-1-1-1/1/1",
		}
		for _, text := range inputs {
			got, err := Extract(text)
			if err != nil {
				t.Fatalf("Extract(%q) unexpected error: %v", text, err)
			}
			if got.Total == "" || got.Date == "" || got.Category == "" || got.Items == nil {
				t.Fatalf("Extract(%q) returned incomplete record: %+v", text, got)
			}
		}
	})
}
