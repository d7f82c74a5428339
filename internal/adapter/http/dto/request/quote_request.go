package request

import (
	"strings"

	"quickquote/internal/domain/entities"
)

type QuoteOptionsRequest struct {
	Interior     bool     `json:"interior"`
	DirtLevel    int      `json:"dirtLevel"`
	IsAccessible bool     `json:"isAccessible"`
	HasContract  bool     `json:"hasContract"`
	ExtraCharge  *float64 `json:"extraCharge"`
}

func (r QuoteOptionsRequest) ToOptions() entities.QuoteOptions {
	opts := entities.QuoteOptions{
		Interior:     r.Interior,
		DirtLevel:    entities.DirtLevel(r.DirtLevel),
		IsAccessible: r.IsAccessible,
		HasContract:  r.HasContract,
		ExtraCharge:  r.ExtraCharge,
	}
	if opts.DirtLevel == 0 {
		opts.DirtLevel = entities.DirtLevel1
	}
	return opts
}

type CustomerRequest struct {
	Name         string `json:"name"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

func (r CustomerRequest) ToCustomer() entities.Customer {
	return entities.Customer{
		Name:         strings.TrimSpace(r.Name),
		BusinessName: strings.TrimSpace(r.BusinessName),
		Email:        strings.TrimSpace(r.Email),
		Address:      strings.TrimSpace(r.Address),
	}
}

// ImageRequest is an attachment sent inline in a JSON body. Data is base64.
type ImageRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data" binding:"required"`
	Comment     string `json:"comment"`
}

// PreviewRequest prices inputs without saving.
type PreviewRequest struct {
	Windows      map[string]any      `json:"windows"`
	QuoteDetails QuoteOptionsRequest `json:"quoteDetails"`
}

// ToInputs decodes the counts and options. A count that is not a number is
// reported together with every other invalid input.
func (r PreviewRequest) ToInputs() (entities.WindowCounts, entities.QuoteOptions, error) {
	opts := r.QuoteDetails.ToOptions()
	windows, err := entities.ParseWindowCounts(r.Windows)
	return windows, opts, inputErrors(err, windows, &opts)
}

// QuoteRequest creates a quote. In multipart requests it is the "quote" part and
// the images arrive as files instead.
type QuoteRequest struct {
	Windows      map[string]any      `json:"windows"`
	QuoteDetails QuoteOptionsRequest `json:"quoteDetails"`
	Customer     CustomerRequest     `json:"customer"`
	Images       []ImageRequest      `json:"images" binding:"omitempty,dive"`
}

func (r QuoteRequest) ToInputs() (entities.WindowCounts, entities.QuoteOptions, error) {
	opts := r.QuoteDetails.ToOptions()
	windows, err := entities.ParseWindowCounts(r.Windows)
	return windows, opts, inputErrors(err, windows, &opts)
}

// QuoteUpdateRequest edits a saved quote. Omitted sections keep their stored value.
type QuoteUpdateRequest struct {
	Windows      map[string]any       `json:"windows"`
	QuoteDetails *QuoteOptionsRequest `json:"quoteDetails"`
	Customer     *CustomerRequest     `json:"customer"`
	Images       []ImageRequest       `json:"images" binding:"omitempty,dive"`
}

// ToInputs returns nil for sections the request did not carry.
func (r QuoteUpdateRequest) ToInputs() (*entities.WindowCounts, *entities.QuoteOptions, error) {
	opts := r.ToOptions()
	if r.Windows == nil {
		return nil, opts, nil
	}
	windows, err := entities.ParseWindowCounts(r.Windows)
	return &windows, opts, inputErrors(err, windows, opts)
}

func (r QuoteUpdateRequest) ToOptions() *entities.QuoteOptions {
	if r.QuoteDetails == nil {
		return nil
	}
	opts := r.QuoteDetails.ToOptions()
	return &opts
}

func (r QuoteUpdateRequest) ToCustomer() *entities.Customer {
	if r.Customer == nil {
		return nil
	}
	c := r.Customer.ToCustomer()
	return &c
}

// inputErrors adds the remaining window and option checks to a decode failure so
// the caller sees every bad field at once. Valid inputs are checked later by the
// use case.
func inputErrors(decodeErr error, windows entities.WindowCounts, opts *entities.QuoteOptions) error {
	if decodeErr == nil {
		return nil
	}
	errs := []error{decodeErr, entities.ValidateWindowCounts(windows)}
	if opts != nil {
		errs = append(errs, entities.ValidateQuoteOptions(*opts))
	}
	return entities.MergeValidationErrors(errs...)
}
