package convert

import (
	"github.com/finbridge-dev/finbridge/statement"
	"github.com/finbridge-dev/finbridge/swift"
)

// Converters within the positional family. Remittance text passes through
// verbatim; only the field subsets differ.

// StatementToBalanceReport condenses the final daily statement into the
// balance-only report: the entries are dropped and replaced by their
// per-side summaries.
func StatementToBalanceReport(src *swift.Statement) (*swift.BalanceReport, error) {
	debit, credit := swift.Summarize(src.Entries)
	opening := src.Opening

	return swift.NewBalanceReport(swift.BalanceReportParams{
		TransactionReference: src.TransactionReference,
		RelatedReference:     src.RelatedReference,
		Account:              src.Account,
		StatementNumber:      src.StatementNumber,
		Opening:              &opening,
		Closing:              src.Closing,
		ClosingAvailable:     src.ClosingAvailable,
		ForwardAvailable:     src.ForwardAvailable,
		DebitSummary:         debit,
		CreditSummary:        credit,
	})
}

// BalanceReportToStatement expands the balance-only report into a
// statement with an empty entry list. A report without an opening balance
// gets one equal to its closing balance; a report carrying both keeps
// them even though the entries that moved one to the other are not part
// of the document, so the balance cross-check is suppressed.
func BalanceReportToStatement(src *swift.BalanceReport) (*swift.Statement, error) {
	openingBal, closingBal, err := statement.ReconcileLenient(src.OpeningBalance(), src.ClosingBalance(), nil)
	if err != nil {
		return nil, err
	}

	return swift.NewStatement(swift.StatementParams{
		TransactionReference: src.TransactionReference,
		RelatedReference:     src.RelatedReference,
		Account:              src.Account,
		StatementNumber:      src.StatementNumber,
		Opening:              openingBal,
		Closing:              closingBal,
		ClosingAvailable:     src.ClosingAvailable,
		ForwardAvailable:     src.ForwardAvailable,
		SkipBalanceCheck:     true,
	})
}

// StatementToInterimReport reshapes the final daily statement as an
// intraday interim report: the entries carry over verbatim and the booked
// balances are dropped.
func StatementToInterimReport(src *swift.Statement) (*swift.InterimReport, error) {
	return swift.NewInterimReport(swift.InterimReportParams{
		TransactionReference: src.TransactionReference,
		RelatedReference:     src.RelatedReference,
		Account:              src.Account,
		StatementNumber:      src.StatementNumber,
		Entries:              src.Entries,
	})
}

// InterimReportToStatement expands an interim report into the hub
// statement. Interim reports carry no booked balances, so the caller must
// supply the opening position; the closing is derived from it and the
// entries. A nil opening fails with statement.ErrMissingBalance.
func InterimReportToStatement(src *swift.InterimReport, opening *statement.Balance) (*swift.Statement, error) {
	openingBal, closingBal, err := statement.Reconcile(opening, nil, src.Entries)
	if err != nil {
		return nil, err
	}

	return swift.NewStatement(swift.StatementParams{
		TransactionReference: src.TransactionReference,
		RelatedReference:     src.RelatedReference,
		Account:              src.Account,
		StatementNumber:      src.StatementNumber,
		Opening:              openingBal,
		Closing:              closingBal,
		Entries:              src.Entries,
	})
}
