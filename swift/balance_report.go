package swift

import (
	"github.com/finbridge-dev/finbridge/statement"
	"github.com/finbridge-dev/finbridge/validation"
)

// BalanceReport is the balance-only report message: the booked balances of
// an account without the underlying entries, optionally accompanied by the
// debit and credit totals of the period.
type BalanceReport struct {
	TransactionReference string
	RelatedReference     string
	Account              string
	StatementNumber      string
	Opening              *statement.Balance
	Closing              statement.Balance
	ClosingAvailable     *statement.Balance
	ForwardAvailable     []statement.Balance
	DebitSummary         EntrySummary
	CreditSummary        EntrySummary
}

// BalanceReportParams is the field set consumed by NewBalanceReport. The
// opening balance is optional; the closing balance is mandatory.
type BalanceReportParams struct {
	TransactionReference string `json:"transaction_reference" validate:"required,max=16"`
	RelatedReference     string `json:"related_reference" validate:"omitempty,max=16"`
	Account              string `json:"account" validate:"required,max=35"`
	StatementNumber      string `json:"statement_number" validate:"required,stmt_number"`
	Opening              *statement.Balance
	Closing              statement.Balance
	ClosingAvailable     *statement.Balance
	ForwardAvailable     []statement.Balance
	DebitSummary         EntrySummary
	CreditSummary        EntrySummary
}

// NewBalanceReport builds a validated BalanceReport. Since the report
// carries no entries, the opening and closing balances are not reconciled
// against each other.
func NewBalanceReport(p BalanceReportParams) (*BalanceReport, error) {
	if err := validation.Struct(p); err != nil {
		return nil, err
	}

	closing, err := requireBalance(p.Closing, statement.KindClosingBooked, "closing_balance")
	if err != nil {
		return nil, err
	}
	opening, err := optionalBalance(p.Opening, statement.KindOpeningBooked, "opening_balance")
	if err != nil {
		return nil, err
	}
	if opening != nil && opening.Currency != closing.Currency {
		return nil, statement.ErrCurrencyMismatch
	}
	closingAvailable, err := optionalBalance(p.ClosingAvailable, statement.KindClosingAvailable, "closing_available_balance")
	if err != nil {
		return nil, err
	}
	forward, err := forwardBalances(p.ForwardAvailable)
	if err != nil {
		return nil, err
	}
	if p.DebitSummary.Total.IsNegative() || p.CreditSummary.Total.IsNegative() {
		return nil, statement.ErrNegativeAmount
	}

	return &BalanceReport{
		TransactionReference: p.TransactionReference,
		RelatedReference:     p.RelatedReference,
		Account:              p.Account,
		StatementNumber:      p.StatementNumber,
		Opening:              opening,
		Closing:              closing,
		ClosingAvailable:     closingAvailable,
		ForwardAvailable:     forward,
		DebitSummary:         p.DebitSummary,
		CreditSummary:        p.CreditSummary,
	}, nil
}

// AccountID returns the identifier of the account the report covers.
func (r *BalanceReport) AccountID() string { return r.Account }

// OpeningBalance returns the booked opening balance, or nil when the report
// omits it.
func (r *BalanceReport) OpeningBalance() *statement.Balance {
	if r.Opening == nil {
		return nil
	}
	b := *r.Opening
	return &b
}

// ClosingBalance returns the booked closing balance.
func (r *BalanceReport) ClosingBalance() *statement.Balance {
	b := r.Closing
	return &b
}

// StatementEntries returns nil: a balance report never carries entries.
func (r *BalanceReport) StatementEntries() []statement.Entry { return nil }
