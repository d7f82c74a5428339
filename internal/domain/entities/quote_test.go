package entities

import (
	"errors"
	"testing"
	"time"
)

func TestQuoteFromDocument_LegacyTopLevelExtraCharge(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	q := QuoteFromDocument("q1", map[string]any{
		"userId":       "p1",
		"windows":      map[string]any{"XS": int64(2), "SM": 1.0},
		"quoteDetails": map[string]any{"interior": true, "dirtLevel": int64(2)},
		"extraCharge":  int64(15),
		"finalPrice":   58.0,
		"createdAt":    created,
		"customer":     map[string]any{"name": "Ann"},
	})

	if q.ID != "q1" || q.ProviderID != "p1" || q.FinalPrice != 58 {
		t.Fatalf("unexpected quote: %+v", q)
	}
	if q.Windows[WindowSizeXS] != 2 || q.Windows[WindowSizeSM] != 1 || q.Windows[WindowSizeXL] != 0 {
		t.Fatalf("unexpected windows: %+v", q.Windows)
	}
	if !q.QuoteDetails.Interior || q.QuoteDetails.DirtLevel != DirtLevel2 {
		t.Fatalf("unexpected details: %+v", q.QuoteDetails)
	}
	if q.QuoteDetails.ExtraCharge == nil || *q.QuoteDetails.ExtraCharge != 15 {
		t.Fatalf("expected legacy extra charge 15, got %v", q.QuoteDetails.ExtraCharge)
	}
	if !q.CreatedAt.Equal(created) {
		t.Fatalf("expected createdAt %v, got %v", created, q.CreatedAt)
	}
	if q.Images == nil || len(q.Images) != 0 {
		t.Fatalf("expected empty image list, got %v", q.Images)
	}
}

func TestQuoteFromDocument_DefaultsForEmptyDocument(t *testing.T) {
	q := QuoteFromDocument("q1", map[string]any{})
	if q.QuoteDetails.DirtLevel != DirtLevel1 {
		t.Fatalf("expected default dirt level 1, got %d", q.QuoteDetails.DirtLevel)
	}
	if q.QuoteDetails.ExtraCharge != nil {
		t.Fatalf("expected unresolved extra charge, got %v", *q.QuoteDetails.ExtraCharge)
	}
	if q.Customer.DisplayName() != "Unknown" {
		t.Fatalf("expected Unknown display name, got %q", q.Customer.DisplayName())
	}
}

func TestQuoteUpdate_ReplacesNestedValuesWholesale(t *testing.T) {
	extra := 5.0
	q := Quote{
		ID:           "q1",
		Windows:      WindowCounts{"XS": 4, "XL": 2},
		QuoteDetails: QuoteOptions{DirtLevel: 3, Interior: true, ExtraCharge: &extra},
		Customer:     Customer{Name: "Ann", Email: "ann@example.com"},
	}
	windows := WindowCounts{"SM": 1}
	customer := Customer{Name: "Bob"}
	got := QuoteUpdate{Windows: &windows, Customer: &customer}.Apply(q)

	if len(got.Windows) != 1 || got.Windows["SM"] != 1 {
		t.Fatalf("expected windows replaced, got %+v", got.Windows)
	}
	if got.Customer.Email != "" {
		t.Fatalf("expected customer replaced, got %+v", got.Customer)
	}
	if got.QuoteDetails.DirtLevel != 3 {
		t.Fatalf("untouched field changed: %+v", got.QuoteDetails)
	}

	fields := QuoteUpdate{Windows: &windows}.DocumentFields()
	if len(fields) != 1 {
		t.Fatalf("expected only windows field, got %v", fields)
	}
}

func TestValidateQuoteInputs(t *testing.T) {
	neg := -1.0
	err := ValidateQuoteInputs(
		WindowCounts{"XS": -2, "SM": 3, "CUSTOM": 1},
		QuoteOptions{DirtLevel: 4, ExtraCharge: &neg},
	)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := verr.FieldMap()
	for _, f := range []string{"windows[XS]", "dirtLevel", "extraCharge"} {
		if _, ok := fields[f]; !ok {
			t.Fatalf("expected error for %s, got %v", f, fields)
		}
	}
	if len(fields) != 3 {
		t.Fatalf("unexpected extra field errors: %v", fields)
	}

	if err := ValidateQuoteInputs(WindowCounts{"CUSTOM": 3}, DefaultQuoteOptions()); err != nil {
		t.Fatalf("expected unknown tags to be accepted, got %v", err)
	}
}

func TestParseWindowCounts(t *testing.T) {
	windows, err := ParseWindowCounts(map[string]any{"xs": 2.0, " XS": "1", "md": int64(1), "LG": ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if windows[WindowSizeXS] != 3 || windows[WindowSizeMD] != 1 || windows[WindowSizeLG] != 0 {
		t.Fatalf("unexpected counts: %v", windows)
	}

	windows, err = ParseWindowCounts(map[string]any{"XS": "abc", "SM": 2.0, "MD": true})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := verr.FieldMap()
	if fields["windows[XS]"] != "must be numeric" || fields["windows[MD]"] != "must be numeric" || len(fields) != 2 {
		t.Fatalf("unexpected field errors: %v", fields)
	}
	if windows[WindowSizeSM] != 2 {
		t.Fatalf("valid count dropped: %v", windows)
	}
}
