// Package ledger implements the fixed-width plain-text posting format used
// by accounting back-ends: a positional record per posting, optionally
// framed by balance carry-forward records so a full statement period can
// round-trip through the format.
package ledger

import (
	"github.com/finbridge-dev/finbridge/statement"
	"github.com/finbridge-dev/finbridge/validation"
)

// Document is the in-memory shape of a ledger file: the postings of one
// account, optionally framed by opening and closing carry-forward balances.
type Document struct {
	Account  string
	Opening  *statement.Balance
	Closing  *statement.Balance
	Postings []statement.Entry
}

// DocumentParams is the field set consumed by NewDocument.
type DocumentParams struct {
	Account  string `json:"account" validate:"required,max=35"`
	Opening  *statement.Balance
	Closing  *statement.Balance
	Postings []statement.Entry

	// SkipBalanceCheck tolerates carry-forward balances that do not
	// reconcile against the postings.
	SkipBalanceCheck bool
}

// NewDocument builds a validated Document. When both carry-forward
// balances are present they are cross-checked against the postings unless
// SkipBalanceCheck is set.
func NewDocument(p DocumentParams) (*Document, error) {
	if err := validation.Struct(p); err != nil {
		return nil, err
	}

	opening, err := copyBalance(p.Opening, statement.KindOpeningBooked)
	if err != nil {
		return nil, err
	}
	closing, err := copyBalance(p.Closing, statement.KindClosingBooked)
	if err != nil {
		return nil, err
	}

	if opening != nil && closing != nil {
		if opening.Currency != closing.Currency {
			return nil, statement.ErrCurrencyMismatch
		}
		reconcileFn := statement.Reconcile
		if p.SkipBalanceCheck {
			reconcileFn = statement.ReconcileLenient
		}
		if _, _, err := reconcileFn(opening, closing, p.Postings); err != nil {
			return nil, err
		}
	}

	postings := make([]statement.Entry, len(p.Postings))
	copy(postings, p.Postings)

	return &Document{
		Account:  p.Account,
		Opening:  opening,
		Closing:  closing,
		Postings: postings,
	}, nil
}

// AccountID returns the identifier of the posted account.
func (d *Document) AccountID() string { return d.Account }

// OpeningBalance returns the opening carry-forward balance, or nil.
func (d *Document) OpeningBalance() *statement.Balance {
	if d.Opening == nil {
		return nil
	}
	b := *d.Opening
	return &b
}

// ClosingBalance returns the closing carry-forward balance, or nil.
func (d *Document) ClosingBalance() *statement.Balance {
	if d.Closing == nil {
		return nil
	}
	b := *d.Closing
	return &b
}

// StatementEntries returns the postings.
func (d *Document) StatementEntries() []statement.Entry { return d.Postings }

func copyBalance(b *statement.Balance, kind statement.BalanceKind) (*statement.Balance, error) {
	if b == nil {
		return nil, nil
	}
	validated := b.WithKind(kind)
	if err := validated.Validate(); err != nil {
		return nil, err
	}
	return &validated, nil
}
