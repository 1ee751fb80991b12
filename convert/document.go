// Package convert implements the bidirectional transcoding matrix between
// the statement format families. Every converter is a pure function over
// immutable documents; conversions without a direct mapping route through
// the final daily statement, the hub shape of the matrix.
package convert

import (
	"fmt"

	"github.com/finbridge-dev/finbridge/camt"
	"github.com/finbridge-dev/finbridge/ledger"
	"github.com/finbridge-dev/finbridge/statement"
	"github.com/finbridge-dev/finbridge/swift"
)

// Format names one document shape of the conversion matrix.
type Format string

const (
	FormatStatement     Format = "mt940"
	FormatBalanceReport Format = "mt941"
	FormatInterimReport Format = "mt942"
	FormatAccountReport Format = "camt.052"
	FormatBankStatement Format = "camt.053"
	FormatNotification  Format = "camt.054"
	FormatLedger        Format = "ledger"

	formatUnknown Format = "unknown"
)

// Document is the capability surface shared by every convertible document:
// which balances it exposes and its ordered entries. Variants lacking a
// balance return nil.
type Document interface {
	AccountID() string
	OpeningBalance() *statement.Balance
	ClosingBalance() *statement.Balance
	StatementEntries() []statement.Entry
}

// FormatOf identifies the format of a document value.
func FormatOf(doc Document) (Format, error) {
	switch doc.(type) {
	case *swift.Statement:
		return FormatStatement, nil
	case *swift.BalanceReport:
		return FormatBalanceReport, nil
	case *swift.InterimReport:
		return FormatInterimReport, nil
	case *camt.BankStatement:
		return FormatBankStatement, nil
	case *camt.AccountReport:
		return FormatAccountReport, nil
	case *camt.Notification:
		return FormatNotification, nil
	case *ledger.Document:
		return FormatLedger, nil
	default:
		return formatUnknown, fmt.Errorf("unrecognized document type %T", doc)
	}
}

// UnsupportedConversionError reports a conversion pair with no direct or
// hub-routed path.
type UnsupportedConversionError struct {
	From Format
	To   Format
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("no conversion path from %s to %s", e.From, e.To)
}
