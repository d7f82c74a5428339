package response

import (
	"time"

	"quickquote/internal/domain/entities"
	"quickquote/internal/domain/pricing"
)

type QuoteOptionsResponse struct {
	Interior     bool    `json:"interior"`
	DirtLevel    int     `json:"dirtLevel"`
	IsAccessible bool    `json:"isAccessible"`
	HasContract  bool    `json:"hasContract"`
	ExtraCharge  float64 `json:"extraCharge"`
}

type CustomerResponse struct {
	Name         string `json:"name"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	DisplayName  string `json:"displayName"`
}

type QuoteImageResponse struct {
	ImageURL string `json:"imageUrl"`
	Comment  string `json:"comment"`
}

type QuoteResponse struct {
	ID           string               `json:"id"`
	ProviderID   string               `json:"providerId"`
	Windows      map[string]int       `json:"windows"`
	QuoteDetails QuoteOptionsResponse `json:"quoteDetails"`
	FinalPrice   float64              `json:"finalPrice"`
	Customer     CustomerResponse     `json:"customer"`
	Images       []QuoteImageResponse `json:"images"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	windows := make(map[string]int, len(q.Windows))
	for size, n := range q.Windows.Normalized() {
		windows[string(size)] = n
	}
	extra := 0.0
	if q.QuoteDetails.ExtraCharge != nil {
		extra = *q.QuoteDetails.ExtraCharge
	}
	images := make([]QuoteImageResponse, 0, len(q.Images))
	for _, img := range q.Images {
		images = append(images, QuoteImageResponse{ImageURL: img.ImageURL, Comment: img.Comment})
	}
	return QuoteResponse{
		ID:         q.ID,
		ProviderID: q.ProviderID,
		Windows:    windows,
		QuoteDetails: QuoteOptionsResponse{
			Interior:     q.QuoteDetails.Interior,
			DirtLevel:    int(q.QuoteDetails.DirtLevel),
			IsAccessible: q.QuoteDetails.IsAccessible,
			HasContract:  q.QuoteDetails.HasContract,
			ExtraCharge:  extra,
		},
		FinalPrice: q.FinalPrice,
		Customer: CustomerResponse{
			Name:         q.Customer.Name,
			BusinessName: q.Customer.BusinessName,
			Email:        q.Customer.Email,
			Address:      q.Customer.Address,
			DisplayName:  q.Customer.DisplayName(),
		},
		Images:    images,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Count  int             `json:"count"`
}

func FromQuotes(quotes []entities.Quote) QuoteListResponse {
	out := QuoteListResponse{Quotes: make([]QuoteResponse, 0, len(quotes)), Count: len(quotes)}
	for _, q := range quotes {
		out.Quotes = append(out.Quotes, FromQuote(q))
	}
	return out
}

type PriceLineResponse struct {
	Kind       string  `json:"kind"`
	Size       string  `json:"size,omitempty"`
	Quantity   int     `json:"quantity,omitempty"`
	UnitPrice  float64 `json:"unitPrice,omitempty"`
	Percentage float64 `json:"percentage,omitempty"`
	Amount     float64 `json:"amount"`
}

// PreviewResponse is the itemized price. Line amounts are rounded for display;
// Total is computed from the unrounded amounts.
type PreviewResponse struct {
	Lines       []PriceLineResponse `json:"lines"`
	Subtotal    float64             `json:"subtotal"`
	ExtraCharge float64             `json:"extraCharge"`
	Total       float64             `json:"total"`
}

func FromBreakdown(b pricing.Breakdown) PreviewResponse {
	lines := make([]PriceLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, PriceLineResponse{
			Kind:       string(l.Kind),
			Size:       string(l.Size),
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			Percentage: l.Percentage,
			Amount:     pricing.RoundCents(l.Amount),
		})
	}
	return PreviewResponse{
		Lines:       lines,
		Subtotal:    pricing.RoundCents(b.Subtotal),
		ExtraCharge: b.ExtraCharge,
		Total:       b.Total,
	}
}
