package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// entryDateLayout is the ISO calendar date accepted for entries.
const entryDateLayout = "2006-01-02"

// Entry is one financial transaction submitted to the ledger. Category and
// Subcategory must name nodes that exist in the taxonomy at submission time;
// the taxonomy resolver guarantees that before an Entry is built.
type Entry struct {
	Date          string          `json:"date"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Notes         string          `json:"notes,omitempty"`
}

// ParseAmount converts user input into a positive amount with at most two
// decimal places.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", d)
	}
	if d.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("amount %s has more than two decimal places", d)
	}
	return d, nil
}

// Validate checks the entry against the submission contract.
func (e *Entry) Validate() error {
	if _, err := time.Parse(entryDateLayout, e.Date); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", e.Date, err)
	}
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("entry name cannot be empty")
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", e.Amount)
	}
	if e.Amount.Exponent() < -2 {
		return fmt.Errorf("amount %s has more than two decimal places", e.Amount)
	}
	switch e.PaymentMethod {
	case PaymentCredit, PaymentDebit:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, e.PaymentMethod)
	}
	if e.Category == "" || e.Subcategory == "" {
		return errors.New("entry requires a resolved category and subcategory")
	}
	return nil
}
