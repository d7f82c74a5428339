package entities

import (
	"strings"
	"time"
)

// WindowCounts maps a size tag to a window count. Tags outside WindowSizes are
// kept as entered and price at zero.
type WindowCounts map[WindowSize]int

// Normalized returns a copy with every known size present.
func (w WindowCounts) Normalized() WindowCounts {
	out := make(WindowCounts, len(WindowSizes)+len(w))
	for _, size := range WindowSizes {
		out[size] = 0
	}
	for size, n := range w {
		out[size] = n
	}
	return out
}

// ParseWindowCounts decodes submitted counts. Tags are upper-cased so "xs" and
// "XS" add up to one size. Values may be numbers or numeric strings; anything
// else is reported per tag and left out of the result.
func ParseWindowCounts(raw map[string]any) (WindowCounts, error) {
	out := make(WindowCounts, len(raw))
	var verr ValidationError
	for tag, v := range raw {
		size := WindowSize(strings.ToUpper(strings.TrimSpace(tag)))
		n, err := intValue(v)
		if err != nil {
			verr.Add("windows["+string(size)+"]", err.Error())
			continue
		}
		out[size] += n
	}
	if verr.HasErrors() {
		return out, &verr
	}
	return out, nil
}

// QuoteOptions are the per-quote choices that adjust the price.
//
// ExtraCharge nil means "use the rate card's extra charge". Saved quotes always
// carry the resolved value.
type QuoteOptions struct {
	Interior     bool      `json:"interior"`
	DirtLevel    DirtLevel `json:"dirtLevel" validate:"min=1,max=3"`
	IsAccessible bool      `json:"isAccessible"`
	HasContract  bool      `json:"hasContract"`
	ExtraCharge  *float64  `json:"extraCharge,omitempty" validate:"omitempty,finite,gte=0"`
}

// DefaultQuoteOptions is the empty form: no adjustments, dirt tier 1.
func DefaultQuoteOptions() QuoteOptions {
	return QuoteOptions{DirtLevel: DirtLevel1}
}

type Customer struct {
	Name         string `json:"name"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

// DisplayName is the listing key for a quote.
func (c Customer) DisplayName() string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return "Unknown"
}

// QuoteImage is an uploaded attachment. ImageURL is always a durable download URL.
type QuoteImage struct {
	ImageURL string `json:"imageUrl"`
	Comment  string `json:"comment"`
}

// Quote is a priced quote persisted in the "Quotes" collection.
//
// Storage model:
//   - document id: ID (reserved from the store before the first write)
//   - userId: owning provider, indexed; every listing filters on it
//
// FinalPrice is the pricing engine output at save time. It is never recomputed on
// read; editing recomputes and overwrites it.
type Quote struct {
	ID           string       `json:"id"`
	ProviderID   string       `json:"providerId"`
	Windows      WindowCounts `json:"windows"`
	QuoteDetails QuoteOptions `json:"quoteDetails"`
	FinalPrice   float64      `json:"finalPrice"`
	Customer     Customer     `json:"customer"`
	Images       []QuoteImage `json:"images"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// QuoteUpdate overwrites the non-nil top-level fields of a quote. Nested values
// (windows, quoteDetails, customer, images) replace the stored value wholesale.
type QuoteUpdate struct {
	Windows      *WindowCounts
	QuoteDetails *QuoteOptions
	FinalPrice   *float64
	Customer     *Customer
	Images       *[]QuoteImage
	UpdatedAt    *time.Time
}

// FullQuoteUpdate builds an update carrying every editable field of q.
func FullQuoteUpdate(q Quote) QuoteUpdate {
	windows := q.Windows
	details := q.QuoteDetails
	price := q.FinalPrice
	customer := q.Customer
	images := q.Images
	if images == nil {
		images = []QuoteImage{}
	}
	updatedAt := q.UpdatedAt
	return QuoteUpdate{
		Windows:      &windows,
		QuoteDetails: &details,
		FinalPrice:   &price,
		Customer:     &customer,
		Images:       &images,
		UpdatedAt:    &updatedAt,
	}
}

// Apply returns q with the update applied.
func (u QuoteUpdate) Apply(q Quote) Quote {
	if u.Windows != nil {
		q.Windows = *u.Windows
	}
	if u.QuoteDetails != nil {
		q.QuoteDetails = *u.QuoteDetails
	}
	if u.FinalPrice != nil {
		q.FinalPrice = *u.FinalPrice
	}
	if u.Customer != nil {
		q.Customer = *u.Customer
	}
	if u.Images != nil {
		q.Images = *u.Images
	}
	if u.UpdatedAt != nil {
		q.UpdatedAt = *u.UpdatedAt
	}
	return q
}

// DocumentFields encodes the update as top-level document fields.
func (u QuoteUpdate) DocumentFields() map[string]any {
	fields := map[string]any{}
	if u.Windows != nil {
		fields["windows"] = windowsDocument(*u.Windows)
	}
	if u.QuoteDetails != nil {
		fields["quoteDetails"] = optionsDocument(*u.QuoteDetails)
	}
	if u.FinalPrice != nil {
		fields["finalPrice"] = *u.FinalPrice
	}
	if u.Customer != nil {
		fields["customer"] = customerDocument(*u.Customer)
	}
	if u.Images != nil {
		fields["images"] = imagesDocument(*u.Images)
	}
	if u.UpdatedAt != nil {
		fields["updatedAt"] = u.UpdatedAt.UTC()
	}
	return fields
}

// ToDocument encodes the quote in the persisted "Quotes" document shape.
func (q Quote) ToDocument() map[string]any {
	doc := FullQuoteUpdate(q).DocumentFields()
	doc["userId"] = q.ProviderID
	doc["createdAt"] = q.CreatedAt.UTC()
	return doc
}

// QuoteFromDocument decodes a stored quote, tolerating missing fields.
func QuoteFromDocument(id string, doc map[string]any) Quote {
	q := Quote{
		ID:         id,
		ProviderID: stringValue(doc["userId"]),
		Windows:    WindowCounts{},
		CreatedAt:  timeValue(doc["createdAt"]),
		UpdatedAt:  timeValue(doc["updatedAt"]),
		Images:     []QuoteImage{},
	}
	q.FinalPrice, _ = numberValue(doc["finalPrice"])

	for key, raw := range asMap(doc["windows"]) {
		n, _ := intValue(raw)
		q.Windows[WindowSize(key)] = n
	}
	q.Windows = q.Windows.Normalized()

	details := asMap(doc["quoteDetails"])
	q.QuoteDetails = DefaultQuoteOptions()
	q.QuoteDetails.Interior = boolValue(details["interior"])
	q.QuoteDetails.IsAccessible = boolValue(details["isAccessible"])
	q.QuoteDetails.HasContract = boolValue(details["hasContract"])
	if lvl, err := intValue(details["dirtLevel"]); err == nil && lvl != 0 {
		q.QuoteDetails.DirtLevel = DirtLevel(lvl)
	}
	extra, hasExtra := details["extraCharge"]
	if !hasExtra {
		// older documents kept the extra charge at the top level
		extra, hasExtra = doc["extraCharge"]
	}
	if hasExtra && extra != nil {
		if v, err := numberValue(extra); err == nil {
			q.QuoteDetails.ExtraCharge = &v
		}
	}

	c := asMap(doc["customer"])
	q.Customer = Customer{
		Name:         stringValue(c["name"]),
		BusinessName: stringValue(c["businessName"]),
		Email:        stringValue(c["email"]),
		Address:      stringValue(c["address"]),
	}

	for _, raw := range asSlice(doc["images"]) {
		img := asMap(raw)
		if img == nil {
			continue
		}
		q.Images = append(q.Images, QuoteImage{
			ImageURL: stringValue(img["imageUrl"]),
			Comment:  stringValue(img["comment"]),
		})
	}
	return q
}

func windowsDocument(w WindowCounts) map[string]any {
	out := make(map[string]any, len(w))
	for size, n := range w {
		out[string(size)] = n
	}
	return out
}

func optionsDocument(o QuoteOptions) map[string]any {
	out := map[string]any{
		"interior":     o.Interior,
		"dirtLevel":    int(o.DirtLevel),
		"isAccessible": o.IsAccessible,
		"hasContract":  o.HasContract,
	}
	if o.ExtraCharge != nil {
		out["extraCharge"] = *o.ExtraCharge
	}
	return out
}

func customerDocument(c Customer) map[string]any {
	return map[string]any{
		"name":         c.Name,
		"businessName": c.BusinessName,
		"email":        c.Email,
		"address":      c.Address,
	}
}

func imagesDocument(images []QuoteImage) []any {
	out := make([]any, 0, len(images))
	for _, img := range images {
		out = append(out, map[string]any{"imageUrl": img.ImageURL, "comment": img.Comment})
	}
	return out
}
