package statement

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDirection   = errors.New("invalid direction")
	ErrInvalidBalanceKind = errors.New("invalid balance kind")
	ErrInvalidCurrency    = errors.New("currency must be a three-letter uppercase code")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrCurrencyMismatch   = errors.New("balances and entries must share one currency")

	// ErrMissingBalance is returned by Reconcile when neither an opening
	// nor a closing balance was supplied.
	ErrMissingBalance = errors.New("reconciliation requires an opening or a closing balance")
)

// MissingFieldError reports a mandatory construction field that was absent.
// Construction is all-or-nothing: no document value exists once this is
// returned.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Field)
}

// InvalidFieldError reports a construction field that was present but failed
// a format rule.
type InvalidFieldError struct {
	Field string
	Rule  string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("field %s violates rule %q", e.Field, e.Rule)
}

// BalanceMismatchError reports an arithmetically inconsistent combination of
// opening balance, entries and closing balance. Expected carries the signed
// closing position computed from the opening balance and the entries,
// rounded to two decimals; Supplied is the signed closing that was given.
type BalanceMismatchError struct {
	Expected decimal.Decimal
	Supplied decimal.Decimal
}

func (e *BalanceMismatchError) Error() string {
	return fmt.Sprintf("closing balance mismatch: expected %s, got %s",
		e.Expected.StringFixed(2), e.Supplied.StringFixed(2))
}

// ReferenceLengthError reports a transaction code and customer reference
// whose combined length exceeds MaxReferenceLength.
type ReferenceLengthError struct {
	TransactionCode string
	Customer        string
}

func (e *ReferenceLengthError) Error() string {
	return fmt.Sprintf("reference %q/%q exceeds %d characters",
		e.TransactionCode, e.Customer, MaxReferenceLength)
}
