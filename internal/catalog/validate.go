package catalog

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Field length limits. The sanitizer truncates to these, the validator rejects
// anything longer.
const (
	MaxNameLen     = 80
	MaxSKULen      = 30
	MaxCategoryLen = 40
)

var whitespace = regexp.MustCompile(`\s+`)

// NormalizeText trims the string and collapses internal whitespace runs to a
// single space.
func NormalizeText(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// Payload is a candidate item submitted for create or update. Quantity,
// MinStock and Price are float64 so that malformed numeric input (NaN,
// fractions where integers are required) survives decoding long enough for
// the validator to report it.
type Payload struct {
	Name     string
	SKU      string
	Category string
	Quantity float64
	MinStock float64
	Price    float64
}

// Normalize returns the payload with text fields trimmed, inner whitespace
// collapsed and the SKU upper-cased. Callers normalize before validating so
// that stored values and uniqueness checks operate on canonical text.
func (p Payload) Normalize() Payload {
	p.Name = NormalizeText(p.Name)
	p.SKU = strings.ToUpper(NormalizeText(p.SKU))
	p.Category = NormalizeText(p.Category)
	return p
}

// ValidationError reports the first rule a payload failed.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks a normalized payload against the field rules and returns
// the first failure, or nil. Rule order is fixed: required, length, numeric,
// integer, non-negative. SKU uniqueness is not checked here; it needs the
// full collection and belongs to the repository.
func Validate(p Payload) *ValidationError {
	required := []struct{ field, value string }{
		{"name", p.Name},
		{"sku", p.SKU},
		{"category", p.Category},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Message: r.field + " is required"}
		}
	}

	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"name", p.Name, MaxNameLen},
		{"sku", p.SKU, MaxSKULen},
		{"category", p.Category, MaxCategoryLen},
	}
	for _, l := range lengths {
		if len([]rune(l.value)) > l.max {
			return &ValidationError{
				Field:   l.field,
				Message: fmt.Sprintf("%s must be at most %d characters", l.field, l.max),
			}
		}
	}

	numbers := []struct {
		field string
		value float64
	}{
		{"quantity", p.Quantity},
		{"minStock", p.MinStock},
		{"price", p.Price},
	}
	for _, n := range numbers {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return &ValidationError{Field: n.field, Message: n.field + " must be a number"}
		}
	}

	for _, n := range numbers[:2] {
		if n.value != math.Trunc(n.value) {
			return &ValidationError{Field: n.field, Message: n.field + " must be an integer"}
		}
	}

	for _, n := range numbers {
		if n.value < 0 {
			return &ValidationError{Field: n.field, Message: n.field + " cannot be negative"}
		}
	}

	return nil
}

// RoundPrice rounds a price to two decimal places.
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
