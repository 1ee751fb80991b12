package convert

import (
	"log/slog"

	"github.com/finbridge-dev/finbridge/camt"
	"github.com/finbridge-dev/finbridge/ledger"
	"github.com/finbridge-dev/finbridge/swift"
)

// Convert transcodes a document into the target format. Pairs without a
// direct mapping route through the hub: source to hub, hub to target. The
// routing tables are fixed, so the conversion graph is acyclic by
// construction. Requesting the source's own format returns the source.
//
// Formats that carry no balances (the interim report, the notification)
// cannot reach the hub on this generic path, because the hub statement
// requires both booked balances; those conversions fail with
// statement.ErrMissingBalance. Use InterimReportToStatement or
// NotificationToStatement directly to supply the opening position.
func Convert(src Document, target Format) (Document, error) {
	from, err := FormatOf(src)
	if err != nil {
		return nil, err
	}
	if from == target {
		return src, nil
	}

	hub, err := toHub(src)
	if err != nil {
		return nil, err
	}

	var out Document = hub
	if target != FormatStatement {
		out, err = fromHub(hub, from, target)
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("document converted",
		"from", from,
		"to", target,
		"account", src.AccountID(),
		"entries", len(src.StatementEntries()))
	return out, nil
}

// toHub is the explicit edge set into the hub format.
func toHub(src Document) (*swift.Statement, error) {
	switch d := src.(type) {
	case *swift.Statement:
		return d, nil
	case *swift.BalanceReport:
		return BalanceReportToStatement(d)
	case *swift.InterimReport:
		return InterimReportToStatement(d, nil)
	case *camt.BankStatement:
		return BankStatementToStatement(d)
	case *camt.AccountReport:
		return AccountReportToStatement(d)
	case *camt.Notification:
		return NotificationToStatement(d, nil)
	case *ledger.Document:
		return LedgerToStatement(d)
	default:
		// FormatOf already rejected unknown types.
		return nil, &UnsupportedConversionError{From: formatUnknown, To: FormatStatement}
	}
}

// fromHub is the explicit edge set out of the hub format.
func fromHub(hub *swift.Statement, from, target Format) (Document, error) {
	switch target {
	case FormatBalanceReport:
		return StatementToBalanceReport(hub)
	case FormatInterimReport:
		return StatementToInterimReport(hub)
	case FormatBankStatement:
		return StatementToBankStatement(hub)
	case FormatAccountReport:
		return StatementToAccountReport(hub)
	case FormatNotification:
		return StatementToNotification(hub)
	case FormatLedger:
		return StatementToLedger(hub)
	default:
		return nil, &UnsupportedConversionError{From: from, To: target}
	}
}
