// Package camt holds the structured-elemental report family: the intraday
// account report, the end-of-day bank-to-customer statement and the
// debit/credit notification. Balances travel as a typed list and payment
// identifiers as discrete entry fields.
package camt

import (
	"fmt"

	"github.com/finbridge-dev/finbridge/statement"
	"github.com/finbridge-dev/finbridge/validation"
)

// BankStatement is the end-of-day bank-to-customer statement. Its balance
// list must contain the previous closing (PRCD) and closing booked (CLBD)
// positions; closing available and forward available positions are
// optional.
type BankStatement struct {
	MessageID      string
	StatementID    string
	SequenceNumber int
	Account        string
	Balances       []statement.Balance
	Entries        []statement.Entry
}

// BankStatementParams is the field set consumed by NewBankStatement.
type BankStatementParams struct {
	MessageID      string `json:"message_id" validate:"required,max=35"`
	StatementID    string `json:"statement_id" validate:"required,max=35"`
	SequenceNumber int    `json:"sequence_number" validate:"min=0"`
	Account        string `json:"account" validate:"required,max=35"`
	Balances       []statement.Balance
	Entries        []statement.Entry

	// SkipBalanceCheck tolerates a PRCD/CLBD pair that does not reconcile
	// against the entries.
	SkipBalanceCheck bool
}

// NewBankStatement builds a validated BankStatement. The PRCD and CLBD
// balances are mandatory and cross-checked against the entries unless
// SkipBalanceCheck is set.
func NewBankStatement(p BankStatementParams) (*BankStatement, error) {
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	balances, err := validateBalances(p.Balances)
	if err != nil {
		return nil, err
	}

	previous := findBalance(balances, statement.KindPreviousClosing)
	if previous == nil {
		return nil, &statement.MissingFieldError{Field: "previous_closing_balance"}
	}
	closing := findBalance(balances, statement.KindClosingBooked)
	if closing == nil {
		return nil, &statement.MissingFieldError{Field: "closing_booked_balance"}
	}
	if previous.Currency != closing.Currency {
		return nil, statement.ErrCurrencyMismatch
	}

	reconcileFn := statement.Reconcile
	if p.SkipBalanceCheck {
		reconcileFn = statement.ReconcileLenient
	}
	if _, _, err := reconcileFn(previous, closing, p.Entries); err != nil {
		return nil, err
	}

	return &BankStatement{
		MessageID:      p.MessageID,
		StatementID:    p.StatementID,
		SequenceNumber: p.SequenceNumber,
		Account:        p.Account,
		Balances:       balances,
		Entries:        copyEntries(p.Entries),
	}, nil
}

// AccountID returns the identifier of the account the statement reports on.
func (s *BankStatement) AccountID() string { return s.Account }

// OpeningBalance returns the previous closing position, which opens the
// statement period.
func (s *BankStatement) OpeningBalance() *statement.Balance {
	return findBalance(s.Balances, statement.KindPreviousClosing)
}

// ClosingBalance returns the closing booked position.
func (s *BankStatement) ClosingBalance() *statement.Balance {
	return findBalance(s.Balances, statement.KindClosingBooked)
}

// StatementEntries returns the ordered entries of the statement period.
func (s *BankStatement) StatementEntries() []statement.Entry { return s.Entries }

// AvailableBalance returns the closing available position, or nil.
func (s *BankStatement) AvailableBalance() *statement.Balance {
	return findBalance(s.Balances, statement.KindClosingAvailable)
}

// ForwardBalances returns the forward available positions, if any.
func (s *BankStatement) ForwardBalances() []statement.Balance {
	return findBalances(s.Balances, statement.KindForwardAvailable)
}

// shared helpers for the package

// findBalance returns a copy of the first balance matching any of the given
// kinds, in the order the kinds are listed, or nil.
func findBalance(balances []statement.Balance, kinds ...statement.BalanceKind) *statement.Balance {
	for _, kind := range kinds {
		for i := range balances {
			if balances[i].Kind == kind {
				b := balances[i]
				return &b
			}
		}
	}
	return nil
}

// findBalances returns copies of every balance with the given kind.
func findBalances(balances []statement.Balance, kind statement.BalanceKind) []statement.Balance {
	var out []statement.Balance
	for i := range balances {
		if balances[i].Kind == kind {
			out = append(out, balances[i])
		}
	}
	return out
}

func validateBalances(balances []statement.Balance) ([]statement.Balance, error) {
	if len(balances) == 0 {
		return nil, nil
	}
	out := make([]statement.Balance, len(balances))
	for i, b := range balances {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("balance %d: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}

func copyEntries(entries []statement.Entry) []statement.Entry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]statement.Entry, len(entries))
	copy(out, entries)
	return out
}
