package camt

import (
	"github.com/finbridge-dev/finbridge/statement"
	"github.com/finbridge-dev/finbridge/validation"
)

// AccountReport is the intraday account report. It must carry a closing
// available (CLAV) position; an opening booked (OPBD) or interim position
// is optional, as intraday reports often start mid-period.
type AccountReport struct {
	MessageID      string
	ReportID       string
	SequenceNumber int
	Account        string
	Balances       []statement.Balance
	Entries        []statement.Entry
}

// AccountReportParams is the field set consumed by NewAccountReport.
type AccountReportParams struct {
	MessageID      string `json:"message_id" validate:"required,max=35"`
	ReportID       string `json:"report_id" validate:"required,max=35"`
	SequenceNumber int    `json:"sequence_number" validate:"min=0"`
	Account        string `json:"account" validate:"required,max=35"`
	Balances       []statement.Balance
	Entries        []statement.Entry

	// SkipBalanceCheck tolerates an opening/closing pair that does not
	// reconcile against the entries.
	SkipBalanceCheck bool
}

// NewAccountReport builds a validated AccountReport. When both an opening
// and the closing position are present they are cross-checked against the
// entries unless SkipBalanceCheck is set.
func NewAccountReport(p AccountReportParams) (*AccountReport, error) {
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	balances, err := validateBalances(p.Balances)
	if err != nil {
		return nil, err
	}

	closing := findBalance(balances, statement.KindClosingAvailable, statement.KindInterimAvailable)
	if closing == nil {
		return nil, &statement.MissingFieldError{Field: "closing_available_balance"}
	}
	opening := findBalance(balances, statement.KindOpeningBooked, statement.KindInterimBooked)
	if opening != nil {
		if opening.Currency != closing.Currency {
			return nil, statement.ErrCurrencyMismatch
		}
		reconcileFn := statement.Reconcile
		if p.SkipBalanceCheck {
			reconcileFn = statement.ReconcileLenient
		}
		if _, _, err := reconcileFn(opening, closing, p.Entries); err != nil {
			return nil, err
		}
	}

	return &AccountReport{
		MessageID:      p.MessageID,
		ReportID:       p.ReportID,
		SequenceNumber: p.SequenceNumber,
		Account:        p.Account,
		Balances:       balances,
		Entries:        copyEntries(p.Entries),
	}, nil
}

// AccountID returns the identifier of the account the report covers.
func (r *AccountReport) AccountID() string { return r.Account }

// OpeningBalance returns the opening booked or interim booked position,
// or nil when the report starts mid-period.
func (r *AccountReport) OpeningBalance() *statement.Balance {
	return findBalance(r.Balances, statement.KindOpeningBooked, statement.KindInterimBooked)
}

// ClosingBalance returns the closing available or interim available
// position.
func (r *AccountReport) ClosingBalance() *statement.Balance {
	return findBalance(r.Balances, statement.KindClosingAvailable, statement.KindInterimAvailable)
}

// StatementEntries returns the reported entries.
func (r *AccountReport) StatementEntries() []statement.Entry { return r.Entries }
