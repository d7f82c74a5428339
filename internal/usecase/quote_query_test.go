package usecase

import (
	"quickquote/internal/domain/entities"
	"testing"
	"time"
)

func listingFixture() []entities.Quote {
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }
	return []entities.Quote{
		{ID: "a", Customer: entities.Customer{Name: "Maria Lopez"}, FinalPrice: 80, CreatedAt: day(3)},
		{ID: "b", Customer: entities.Customer{Name: "Mark Chen"}, FinalPrice: 40, CreatedAt: day(1)},
		{ID: "c", FinalPrice: 80, CreatedAt: day(2)},
		{ID: "d", Customer: entities.Customer{Name: "Omar"}, FinalPrice: 40, CreatedAt: day(4)},
	}
}

func ids(quotes []entities.Quote) string {
	out := ""
	for _, q := range quotes {
		out += q.ID
	}
	return out
}

func TestFilterAndSortQuotes(t *testing.T) {
	cases := []struct {
		name   string
		search string
		key    QuoteSortKey
		want   string
	}{
		{name: "all by date", key: SortByDate, want: "bcad"},
		{name: "all by price keeps input order on ties", key: SortByPrice, want: "bdac"},
		{name: "case insensitive name", search: "MAR", key: SortByDate, want: "bad"},
		{name: "nameless quotes match unknown", search: "unknown", key: SortByDate, want: "c"},
		{name: "matches id", search: "d", key: SortByPrice, want: "d"},
		{name: "no match", search: "zzz", key: SortByDate, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := listingFixture()
			got := ids(FilterAndSortQuotes(in, tc.search, tc.key))
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
			if ids(in) != "abcd" {
				t.Fatalf("input was reordered: %q", ids(in))
			}
		})
	}
}

func TestParseQuoteSortKey(t *testing.T) {
	for raw, want := range map[string]QuoteSortKey{"": SortByDate, "date": SortByDate, "Price": SortByPrice, "finalPrice": SortByPrice} {
		got, err := ParseQuoteSortKey(raw)
		if err != nil || got != want {
			t.Fatalf("ParseQuoteSortKey(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := ParseQuoteSortKey("name"); err != ErrInvalidSortKey {
		t.Fatalf("expected ErrInvalidSortKey, got %v", err)
	}
}
