package usecase

import (
	"errors"
	"quickquote/internal/domain/entities"
	"slices"
	"strings"
)

var ErrInvalidSortKey = errors.New("invalid sort key")

// QuoteSortKey selects the listing order. Both orders are ascending.
type QuoteSortKey string

const (
	SortByDate  QuoteSortKey = "date"
	SortByPrice QuoteSortKey = "price"
)

// ParseQuoteSortKey maps a query value to a sort key. Empty means date.
func ParseQuoteSortKey(raw string) (QuoteSortKey, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "date", "createdat":
		return SortByDate, nil
	case "price", "finalprice":
		return SortByPrice, nil
	default:
		return "", ErrInvalidSortKey
	}
}

// FilterAndSortQuotes derives a listing view from a provider's full quote set.
//
// Quotes match when search is a case-insensitive substring of the customer's
// display name or of the quote id. Sorting is stable, so ties keep the order of
// the input set. The input slice is not modified.
func FilterAndSortQuotes(all []entities.Quote, search string, key QuoteSortKey) []entities.Quote {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]entities.Quote, 0, len(all))
	for _, q := range all {
		if needle == "" ||
			strings.Contains(strings.ToLower(q.Customer.DisplayName()), needle) ||
			strings.Contains(strings.ToLower(q.ID), needle) {
			out = append(out, q)
		}
	}

	switch key {
	case SortByPrice:
		slices.SortStableFunc(out, func(a, b entities.Quote) int {
			switch {
			case a.FinalPrice < b.FinalPrice:
				return -1
			case a.FinalPrice > b.FinalPrice:
				return 1
			}
			return 0
		})
	default:
		slices.SortStableFunc(out, func(a, b entities.Quote) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	}
	return out
}
