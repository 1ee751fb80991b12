package swift

import (
	"github.com/finbridge-dev/finbridge/statement"
	"github.com/finbridge-dev/finbridge/validation"
)

// InterimReport is the intraday interim transaction report: the entries
// booked since the last statement or report, without opening or closing
// balances. The debit and credit summaries are derived from the entries at
// construction.
type InterimReport struct {
	TransactionReference string
	RelatedReference     string
	Account              string
	StatementNumber      string
	FloorLimit           *statement.Money
	Entries              []statement.Entry
	DebitSummary         EntrySummary
	CreditSummary        EntrySummary
}

// InterimReportParams is the field set consumed by NewInterimReport.
type InterimReportParams struct {
	TransactionReference string `json:"transaction_reference" validate:"required,max=16"`
	RelatedReference     string `json:"related_reference" validate:"omitempty,max=16"`
	Account              string `json:"account" validate:"required,max=35"`
	StatementNumber      string `json:"statement_number" validate:"required,stmt_number"`
	FloorLimit           *statement.Money
	Entries              []statement.Entry
}

// NewInterimReport builds a validated InterimReport. The optional floor
// limit is the minimum entry amount the report was filtered on; it is
// recorded, not applied.
func NewInterimReport(p InterimReportParams) (*InterimReport, error) {
	if err := validation.Struct(p); err != nil {
		return nil, err
	}

	var floorLimit *statement.Money
	if p.FloorLimit != nil {
		validated, err := statement.NewMoney(p.FloorLimit.Amount, p.FloorLimit.Currency)
		if err != nil {
			return nil, err
		}
		floorLimit = &validated
	}

	if len(p.Entries) > 0 {
		if err := checkEntryCurrency(p.Entries, p.Entries[0].Currency); err != nil {
			return nil, err
		}
	}

	debit, credit := Summarize(p.Entries)

	return &InterimReport{
		TransactionReference: p.TransactionReference,
		RelatedReference:     p.RelatedReference,
		Account:              p.Account,
		StatementNumber:      p.StatementNumber,
		FloorLimit:           floorLimit,
		Entries:              copyEntries(p.Entries),
		DebitSummary:         debit,
		CreditSummary:        credit,
	}, nil
}

// AccountID returns the identifier of the account the report covers.
func (r *InterimReport) AccountID() string { return r.Account }

// OpeningBalance returns nil: interim reports carry no booked balances.
func (r *InterimReport) OpeningBalance() *statement.Balance { return nil }

// ClosingBalance returns nil: interim reports carry no booked balances.
func (r *InterimReport) ClosingBalance() *statement.Balance { return nil }

// StatementEntries returns the reported entries.
func (r *InterimReport) StatementEntries() []statement.Entry { return r.Entries }
