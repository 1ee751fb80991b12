package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxPurposeLineLength bounds each line of the free-text purpose, per the
// positional remittance field format.
const MaxPurposeLineLength = 65

// PaymentIDs are the discrete payment identifiers carried natively by the
// elemental report formats. In the positional family the same identifiers
// travel embedded as tags inside the free-text purpose (see ParseTags).
type PaymentIDs struct {
	EndToEndID    string
	MandateID     string
	CreditorID    string
	InstructionID string
}

// Empty reports whether no identifier is set.
func (p PaymentIDs) Empty() bool {
	return p == PaymentIDs{}
}

// Entry is one posted movement on an account. Entries are immutable once
// constructed and exclusively owned by their document.
type Entry struct {
	BookingDate time.Time
	ValueDate   time.Time
	Direction   Direction
	Amount      decimal.Decimal
	Currency    string
	Reference   Reference
	Purpose     string
	IDs         PaymentIDs
	Original    *Money
	Equivalent  *Money
	Fee         *Money
}

// EntryParams is the field set consumed by NewEntry.
type EntryParams struct {
	BookingDate time.Time
	ValueDate   time.Time
	Direction   Direction
	Amount      decimal.Decimal
	Currency    string
	Reference   Reference
	Purpose     string
	IDs         PaymentIDs
	Original    *Money
	Equivalent  *Money
	Fee         *Money
}

// NewEntry builds a validated, immutable Entry. A zero value date defaults
// to the booking date. Optional amounts are copied so the entry does not
// alias caller memory.
func NewEntry(p EntryParams) (Entry, error) {
	if p.BookingDate.IsZero() {
		return Entry{}, &MissingFieldError{Field: "booking_date"}
	}
	if p.ValueDate.IsZero() {
		p.ValueDate = p.BookingDate
	}
	if !IsValidDirection(p.Direction) {
		return Entry{}, ErrInvalidDirection
	}
	if !IsValidCurrency(p.Currency) {
		return Entry{}, ErrInvalidCurrency
	}
	if p.Amount.IsNegative() {
		return Entry{}, ErrNegativeAmount
	}
	for _, line := range strings.Split(p.Purpose, "\n") {
		if len(line) > MaxPurposeLineLength {
			return Entry{}, &InvalidFieldError{Field: "purpose", Rule: "line<=65"}
		}
	}
	e := Entry{
		BookingDate: p.BookingDate,
		ValueDate:   p.ValueDate,
		Direction:   p.Direction,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Reference:   p.Reference,
		Purpose:     p.Purpose,
		IDs:         p.IDs,
	}
	var err error
	if e.Original, err = copyMoney(p.Original, "original_amount"); err != nil {
		return Entry{}, err
	}
	if e.Equivalent, err = copyMoney(p.Equivalent, "equivalent_amount"); err != nil {
		return Entry{}, err
	}
	if e.Fee, err = copyMoney(p.Fee, "fee_amount"); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Signed returns the entry amount with the direction applied.
func (e Entry) Signed() decimal.Decimal {
	if e.Direction == DirectionDebit {
		return e.Amount.Neg()
	}
	return e.Amount
}

func copyMoney(m *Money, field string) (*Money, error) {
	if m == nil {
		return nil, nil
	}
	validated, err := NewMoney(m.Amount, m.Currency)
	if err != nil {
		return nil, &InvalidFieldError{Field: field, Rule: err.Error()}
	}
	return &validated, nil
}

// SignedTotal sums the signed amounts of the entries in one pass.
func SignedTotal(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for i := range entries {
		total = total.Add(entries[i].Signed())
	}
	return total
}
