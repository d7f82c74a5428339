package entities

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects per-field failures. One bad field never hides the others.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// FieldMap returns field -> message, suitable for API responses.
func (e *ValidationError) FieldMap() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidateRateCard rejects negative or non-finite amounts and a missing provider.
func ValidateRateCard(card RateCard) error {
	var verr ValidationError
	if strings.TrimSpace(card.ProviderID) == "" {
		verr.Add("providerId", "is required")
	}
	return MergeValidationErrors(&verr, ValidateRateCardAmounts(card))
}

// ValidateRateCardAmounts checks the priced fields only, for cards that have not
// been assigned to a provider yet.
func ValidateRateCardAmounts(card RateCard) error {
	return structErrors(validate.Struct(card))
}

type windowCountsInput struct {
	Windows WindowCounts `json:"windows" validate:"dive,gte=0"`
}

// ValidateWindowCounts rejects negative counts. Unknown size tags are allowed.
func ValidateWindowCounts(windows WindowCounts) error {
	return structErrors(validate.Struct(windowCountsInput{Windows: windows}))
}

// ValidateQuoteOptions checks the dirt tier and the optional extra charge override.
func ValidateQuoteOptions(opts QuoteOptions) error {
	return structErrors(validate.Struct(opts))
}

// ValidateQuoteInputs runs window and option validation and merges the field errors.
func ValidateQuoteInputs(windows WindowCounts, opts QuoteOptions) error {
	return MergeValidationErrors(ValidateWindowCounts(windows), ValidateQuoteOptions(opts))
}

// MergeValidationErrors joins the field errors of every *ValidationError in errs.
// Any other error is returned as is.
func MergeValidationErrors(errs ...error) error {
	var merged ValidationError
	for _, err := range errs {
		if err == nil {
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		if verr != nil {
			merged.Fields = append(merged.Fields, verr.Fields...)
		}
	}
	if merged.HasErrors() {
		return &merged
	}
	return nil
}

func structErrors(err error) error {
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var verr ValidationError
	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe.Namespace()), fieldMessage(fe))
	}
	return &verr
}

// fieldPath drops the struct type prefix: "RateCard.baseRates[XS]" -> "baseRates[XS]".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be a number greater than or equal to " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "finite":
		return "must be a finite number"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
