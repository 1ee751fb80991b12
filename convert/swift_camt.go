package convert

import (
	"github.com/finbridge-dev/finbridge/camt"
	"github.com/finbridge-dev/finbridge/statement"
	"github.com/finbridge-dev/finbridge/swift"
)

// Converters between the positional hub statement and the elemental
// report family. Entries change reference representation at this border:
// tagged free text on the positional side, discrete identifiers on the
// elemental side.

// StatementToBankStatement maps the final daily statement onto the
// end-of-day bank statement. The booked opening becomes the previous
// closing position; available and forward balances carry over.
func StatementToBankStatement(src *swift.Statement) (*camt.BankStatement, error) {
	balances := make([]statement.Balance, 0, 3+len(src.ForwardAvailable))
	balances = append(balances,
		remapKind(src.Opening, kindsToBankStatement),
		remapKind(src.Closing, kindsToBankStatement))
	if src.ClosingAvailable != nil {
		balances = append(balances, *src.ClosingAvailable)
	}
	balances = append(balances, src.ForwardAvailable...)

	return camt.NewBankStatement(camt.BankStatementParams{
		MessageID:      deriveMessageID("camt.053", src.Account, src.TransactionReference),
		StatementID:    src.TransactionReference,
		SequenceNumber: sequenceOf(src.StatementNumber),
		Account:        src.Account,
		Balances:       balances,
		Entries:        entriesToStructured(src.Entries),
	})
}

// BankStatementToStatement maps the end-of-day bank statement back onto
// the hub statement.
func BankStatementToStatement(src *camt.BankStatement) (*swift.Statement, error) {
	opening := remapKindPtr(src.OpeningBalance(), kindsFromBankStatement)
	closing := remapKindPtr(src.ClosingBalance(), kindsFromBankStatement)
	openingBal, closingBal, err := statement.Reconcile(opening, closing, src.Entries)
	if err != nil {
		return nil, err
	}

	return swift.NewStatement(swift.StatementParams{
		TransactionReference: truncateReference(src.StatementID),
		Account:              src.Account,
		StatementNumber:      statementNumberOf(src.SequenceNumber),
		Opening:              openingBal,
		Closing:              closingBal,
		ClosingAvailable:     src.AvailableBalance(),
		ForwardAvailable:     src.ForwardBalances(),
		Entries:              entriesToFreeText(src.Entries),
	})
}

// StatementToAccountReport maps the final daily statement onto the
// intraday account report. The booked closing becomes a closing available
// position; the separate available and forward balances have no slot in
// the report and are dropped.
func StatementToAccountReport(src *swift.Statement) (*camt.AccountReport, error) {
	balances := []statement.Balance{
		remapKind(src.Opening, kindsToAccountReport),
		remapKind(src.Closing, kindsToAccountReport),
	}

	return camt.NewAccountReport(camt.AccountReportParams{
		MessageID:      deriveMessageID("camt.052", src.Account, src.TransactionReference),
		ReportID:       src.TransactionReference,
		SequenceNumber: sequenceOf(src.StatementNumber),
		Account:        src.Account,
		Balances:       balances,
		Entries:        entriesToStructured(src.Entries),
	})
}

// AccountReportToStatement maps the intraday account report back onto the
// hub statement. A report without an opening position gets one derived
// from its closing position and entries.
func AccountReportToStatement(src *camt.AccountReport) (*swift.Statement, error) {
	opening := remapKindPtr(src.OpeningBalance(), kindsFromAccountReport)
	closing := remapKindPtr(src.ClosingBalance(), kindsFromAccountReport)
	openingBal, closingBal, err := statement.Reconcile(opening, closing, src.Entries)
	if err != nil {
		return nil, err
	}

	return swift.NewStatement(swift.StatementParams{
		TransactionReference: truncateReference(src.ReportID),
		Account:              src.Account,
		StatementNumber:      statementNumberOf(src.SequenceNumber),
		Opening:              openingBal,
		Closing:              closingBal,
		Entries:              entriesToFreeText(src.Entries),
	})
}

// StatementToNotification maps the final daily statement onto the
// debit/credit notification. Balances have no slot in a notification and
// are dropped.
func StatementToNotification(src *swift.Statement) (*camt.Notification, error) {
	return camt.NewNotification(camt.NotificationParams{
		MessageID:      deriveMessageID("camt.054", src.Account, src.TransactionReference),
		NotificationID: src.TransactionReference,
		Account:        src.Account,
		Entries:        entriesToStructured(src.Entries),
	})
}

// NotificationToStatement maps a debit/credit notification onto the hub
// statement. Notifications carry no balances, so the caller must supply
// the opening position; the closing is derived from it and the entries.
// A nil opening fails with statement.ErrMissingBalance.
func NotificationToStatement(src *camt.Notification, opening *statement.Balance) (*swift.Statement, error) {
	openingBal, closingBal, err := statement.Reconcile(opening, nil, src.Entries)
	if err != nil {
		return nil, err
	}

	return swift.NewStatement(swift.StatementParams{
		TransactionReference: truncateReference(src.NotificationID),
		Account:              src.Account,
		StatementNumber:      statementNumberOf(1),
		Opening:              openingBal,
		Closing:              closingBal,
		Entries:              entriesToFreeText(src.Entries),
	})
}
