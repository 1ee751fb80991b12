package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DirectionCredit = "credit"
	DirectionDebit  = "debit"
)

// Direction tells whether an amount moves money onto or off the account.
// The sign of a monetary value lives here; amounts themselves are never
// negative.
type Direction string

// IsValidDirection checks if the direction is one of the known values
func IsValidDirection(d Direction) bool {
	switch d {
	case DirectionCredit, DirectionDebit:
		return true
	default:
		return false
	}
}

// Opposite returns the inverted direction.
func (d Direction) Opposite() Direction {
	if d == DirectionCredit {
		return DirectionDebit
	}
	return DirectionCredit
}

// BalanceKind identifies what a balance figure represents, using the
// ISO 20022 balance type codes. The positional statement messages use the
// booked kinds (OPBD, CLBD) plus CLAV and FWAV; the elemental reports add
// PRCD and the interim kinds.
type BalanceKind string

const (
	KindOpeningBooked    BalanceKind = "OPBD"
	KindClosingBooked    BalanceKind = "CLBD"
	KindPreviousClosing  BalanceKind = "PRCD"
	KindClosingAvailable BalanceKind = "CLAV"
	KindForwardAvailable BalanceKind = "FWAV"
	KindInterimBooked    BalanceKind = "ITBD"
	KindInterimAvailable BalanceKind = "ITAV"
)

// IsValidBalanceKind checks if the balance kind is a registered code
func IsValidBalanceKind(k BalanceKind) bool {
	switch k {
	case KindOpeningBooked, KindClosingBooked, KindPreviousClosing,
		KindClosingAvailable, KindForwardAvailable,
		KindInterimBooked, KindInterimAvailable:
		return true
	default:
		return false
	}
}

// Money pairs a non-negative amount with its currency. Used for the
// optional original, equivalent and fee amounts on an entry.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney builds a Money value, rejecting negative amounts and malformed
// currency codes.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	if !IsValidCurrency(currency) {
		return Money{}, ErrInvalidCurrency
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// Balance is an account position at a point in time. The amount is always
// non-negative; the sign is carried by Direction. Balances are immutable
// values.
type Balance struct {
	Kind      BalanceKind
	Direction Direction
	Date      time.Time
	Currency  string
	Amount    decimal.Decimal
}

// NewBalance builds a validated Balance.
func NewBalance(kind BalanceKind, direction Direction, date time.Time, currency string, amount decimal.Decimal) (Balance, error) {
	b := Balance{Kind: kind, Direction: direction, Date: date, Currency: currency, Amount: amount}
	if err := b.Validate(); err != nil {
		return Balance{}, err
	}
	return b, nil
}

// Validate checks the balance invariants.
func (b Balance) Validate() error {
	if !IsValidBalanceKind(b.Kind) {
		return ErrInvalidBalanceKind
	}
	if !IsValidDirection(b.Direction) {
		return ErrInvalidDirection
	}
	if b.Date.IsZero() {
		return &MissingFieldError{Field: "date"}
	}
	if !IsValidCurrency(b.Currency) {
		return ErrInvalidCurrency
	}
	if b.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// Signed returns the balance amount with the direction applied: positive
// for credit, negative for debit.
func (b Balance) Signed() decimal.Decimal {
	if b.Direction == DirectionDebit {
		return b.Amount.Neg()
	}
	return b.Amount
}

// WithKind returns a copy of the balance re-tagged with the given kind.
// The monetary value is untouched.
func (b Balance) WithKind(kind BalanceKind) Balance {
	b.Kind = kind
	return b
}

// IsValidCurrency checks for a three-letter uppercase currency code
func IsValidCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// balanceFromSigned builds a balance at the given signed position, storing
// the magnitude as an absolute amount. A zero position is a credit balance.
func balanceFromSigned(kind BalanceKind, signed decimal.Decimal, date time.Time, currency string) Balance {
	direction := Direction(DirectionCredit)
	if signed.IsNegative() {
		direction = DirectionDebit
	}
	return Balance{
		Kind:      kind,
		Direction: direction,
		Date:      date,
		Currency:  currency,
		Amount:    signed.Abs(),
	}
}
