package convert

import (
	"github.com/finbridge-dev/finbridge/ledger"
	"github.com/finbridge-dev/finbridge/statement"
	"github.com/finbridge-dev/finbridge/swift"
)

// Converters between the hub statement and the fixed-width ledger shape.
// The ledger is a free-text format, so payment identifiers travel as
// embedded tags.

// StatementToLedger maps the final daily statement onto the ledger shape,
// framing the postings with opening and closing carry-forward balances.
func StatementToLedger(src *swift.Statement) (*ledger.Document, error) {
	opening := src.Opening
	closing := src.Closing

	return ledger.NewDocument(ledger.DocumentParams{
		Account:  src.Account,
		Opening:  &opening,
		Closing:  &closing,
		Postings: entriesToFreeText(src.Entries),
	})
}

// LedgerToStatement maps a ledger document back onto the hub statement.
// A missing carry-forward balance is derived from the other one and the
// postings; a document without either fails with
// statement.ErrMissingBalance. The ledger carries no message identifiers,
// so the transaction reference is derived deterministically from the
// account.
func LedgerToStatement(src *ledger.Document) (*swift.Statement, error) {
	openingBal, closingBal, err := statement.Reconcile(src.OpeningBalance(), src.ClosingBalance(), src.Postings)
	if err != nil {
		return nil, err
	}

	return swift.NewStatement(swift.StatementParams{
		TransactionReference: deriveReference("ledger", src.Account),
		Account:              src.Account,
		StatementNumber:      statementNumberOf(1),
		Opening:              openingBal,
		Closing:              closingBal,
		Entries:              src.Postings,
	})
}
