// Package swift holds the positional-text statement family: the end-of-day
// customer statement, the balance-only report and the intraday interim
// report. Documents are validated at construction and treated as immutable
// values afterwards.
package swift

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finbridge-dev/finbridge/statement"
	"github.com/finbridge-dev/finbridge/validation"
)

// Statement is the final daily statement message: booked opening and
// closing balances framing the ordered entries of one statement period.
// It is the hub shape of the conversion matrix.
type Statement struct {
	TransactionReference string
	RelatedReference     string
	Account              string
	StatementNumber      string
	Opening              statement.Balance
	Closing              statement.Balance
	ClosingAvailable     *statement.Balance
	ForwardAvailable     []statement.Balance
	Entries              []statement.Entry
}

// StatementParams is the field set consumed by NewStatement.
type StatementParams struct {
	TransactionReference string `json:"transaction_reference" validate:"required,max=16"`
	RelatedReference     string `json:"related_reference" validate:"omitempty,max=16"`
	Account              string `json:"account" validate:"required,max=35"`
	StatementNumber      string `json:"statement_number" validate:"required,stmt_number"`
	Opening              statement.Balance
	Closing              statement.Balance
	ClosingAvailable     *statement.Balance
	ForwardAvailable     []statement.Balance
	Entries              []statement.Entry

	// SkipBalanceCheck tolerates an opening/closing pair that does not
	// reconcile against the entries, for external data with rounding drift.
	SkipBalanceCheck bool
}

// NewStatement builds a validated Statement. The opening and closing
// balances are re-tagged to their booked kinds and cross-checked against
// the entries unless SkipBalanceCheck is set. Entry and balance slices are
// copied in; the construction is all-or-nothing.
func NewStatement(p StatementParams) (*Statement, error) {
	if err := validation.Struct(p); err != nil {
		return nil, err
	}

	opening, err := requireBalance(p.Opening, statement.KindOpeningBooked, "opening_balance")
	if err != nil {
		return nil, err
	}
	closing, err := requireBalance(p.Closing, statement.KindClosingBooked, "closing_balance")
	if err != nil {
		return nil, err
	}
	if opening.Currency != closing.Currency {
		return nil, statement.ErrCurrencyMismatch
	}
	if err := checkEntryCurrency(p.Entries, opening.Currency); err != nil {
		return nil, err
	}

	reconcileFn := statement.Reconcile
	if p.SkipBalanceCheck {
		reconcileFn = statement.ReconcileLenient
	}
	if _, _, err := reconcileFn(&opening, &closing, p.Entries); err != nil {
		return nil, err
	}

	closingAvailable, err := optionalBalance(p.ClosingAvailable, statement.KindClosingAvailable, "closing_available_balance")
	if err != nil {
		return nil, err
	}
	forward, err := forwardBalances(p.ForwardAvailable)
	if err != nil {
		return nil, err
	}

	return &Statement{
		TransactionReference: p.TransactionReference,
		RelatedReference:     p.RelatedReference,
		Account:              p.Account,
		StatementNumber:      p.StatementNumber,
		Opening:              opening,
		Closing:              closing,
		ClosingAvailable:     closingAvailable,
		ForwardAvailable:     forward,
		Entries:              copyEntries(p.Entries),
	}, nil
}

// AccountID returns the identifier of the account the statement reports on.
func (s *Statement) AccountID() string { return s.Account }

// OpeningBalance returns the booked opening balance.
func (s *Statement) OpeningBalance() *statement.Balance {
	b := s.Opening
	return &b
}

// ClosingBalance returns the booked closing balance.
func (s *Statement) ClosingBalance() *statement.Balance {
	b := s.Closing
	return &b
}

// StatementEntries returns the ordered entries of the statement period.
func (s *Statement) StatementEntries() []statement.Entry { return s.Entries }

// EntrySummary aggregates one side of an entry list: how many entries were
// posted and their total magnitude.
type EntrySummary struct {
	Count int
	Total decimal.Decimal
}

// Summarize walks the entries once and aggregates the debit and credit
// sides separately.
func Summarize(entries []statement.Entry) (debit, credit EntrySummary) {
	debit.Total = decimal.Zero
	credit.Total = decimal.Zero
	for i := range entries {
		if entries[i].Direction == statement.DirectionDebit {
			debit.Count++
			debit.Total = debit.Total.Add(entries[i].Amount)
		} else {
			credit.Count++
			credit.Total = credit.Total.Add(entries[i].Amount)
		}
	}
	return debit, credit
}

// shared construction helpers

func requireBalance(b statement.Balance, kind statement.BalanceKind, field string) (statement.Balance, error) {
	if b.Date.IsZero() {
		return statement.Balance{}, &statement.MissingFieldError{Field: field}
	}
	b = b.WithKind(kind)
	if err := b.Validate(); err != nil {
		return statement.Balance{}, fmt.Errorf("%s: %w", field, err)
	}
	return b, nil
}

func optionalBalance(b *statement.Balance, kind statement.BalanceKind, field string) (*statement.Balance, error) {
	if b == nil {
		return nil, nil
	}
	validated, err := requireBalance(*b, kind, field)
	if err != nil {
		return nil, err
	}
	return &validated, nil
}

func forwardBalances(balances []statement.Balance) ([]statement.Balance, error) {
	if len(balances) == 0 {
		return nil, nil
	}
	out := make([]statement.Balance, len(balances))
	for i, b := range balances {
		validated, err := requireBalance(b, statement.KindForwardAvailable, "forward_available_balance")
		if err != nil {
			return nil, err
		}
		out[i] = validated
	}
	return out, nil
}

func checkEntryCurrency(entries []statement.Entry, currency string) error {
	for i := range entries {
		if entries[i].Currency != currency {
			return statement.ErrCurrencyMismatch
		}
	}
	return nil
}

func copyEntries(entries []statement.Entry) []statement.Entry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]statement.Entry, len(entries))
	copy(out, entries)
	return out
}
