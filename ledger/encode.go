package ledger

import (
	"fmt"
	"strings"

	"github.com/finbridge-dev/finbridge/statement"
)

// OverflowStrategy controls what happens when a value exceeds its field
// width.
type OverflowStrategy int

const (
	// Truncate silently cuts overflowing text fields to the field width.
	Truncate OverflowStrategy = iota
	// Reject fails the encode with a *FieldOverflowError instead.
	Reject
)

// Options configures the encoder.
type Options struct {
	Overflow OverflowStrategy
}

// FieldOverflowError reports a value that does not fit its positional
// field under the Reject strategy. Amounts always reject regardless of the
// strategy, since truncating an amount would corrupt the money.
type FieldOverflowError struct {
	Field string
	Width int
	Value string
}

func (e *FieldOverflowError) Error() string {
	return fmt.Sprintf("value %q does not fit field %s (width %d)", e.Value, e.Field, e.Width)
}

// Encode renders the document into fixed-width ledger text: an account
// header record, an optional opening carry-forward record, one posting
// record per entry and an optional closing carry-forward record. Purpose
// text wraps into word-bounded blocks of PurposeBlockLength.
func Encode(doc *Document, opts Options) (string, error) {
	var sb strings.Builder

	account, err := padText(doc.Account, widthAccount, "account", opts.Overflow)
	if err != nil {
		return "", err
	}
	sb.WriteByte(recordAccount)
	sb.WriteString(account)
	sb.WriteByte('\n')

	if doc.Opening != nil {
		if err := writeBalance(&sb, recordOpening, *doc.Opening); err != nil {
			return "", err
		}
	}
	for i := range doc.Postings {
		if err := writePosting(&sb, doc.Postings[i], opts); err != nil {
			return "", fmt.Errorf("posting %d: %w", i, err)
		}
	}
	if doc.Closing != nil {
		if err := writeBalance(&sb, recordClosing, *doc.Closing); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func writeBalance(sb *strings.Builder, recordType byte, b statement.Balance) error {
	amount, err := padAmount(b.Amount.StringFixed(2), widthAmount, "amount")
	if err != nil {
		return err
	}
	sb.WriteByte(recordType)
	sb.WriteString(b.Date.Format(encodeDateFormat))
	sb.WriteByte(directionChar(b.Direction))
	sb.WriteString(amount)
	sb.WriteString(b.Currency)
	sb.WriteByte('\n')
	return nil
}

func writePosting(sb *strings.Builder, e statement.Entry, opts Options) error {
	amount, err := padAmount(e.Amount.StringFixed(2), widthAmount, "amount")
	if err != nil {
		return err
	}
	txCode, err := padText(e.Reference.TransactionCode, widthTxCode, "transaction_code", opts.Overflow)
	if err != nil {
		return err
	}
	customerRef, err := padText(e.Reference.Customer, widthCustomerRef, "customer_reference", opts.Overflow)
	if err != nil {
		return err
	}
	bankRef, err := padText(e.Reference.Bank, widthBankRef, "bank_reference", opts.Overflow)
	if err != nil {
		return err
	}

	sb.WriteByte(recordPosting)
	sb.WriteString(e.BookingDate.Format(encodeDateFormat))
	sb.WriteString(e.ValueDate.Format(encodeDateFormat))
	sb.WriteByte(directionChar(e.Direction))
	sb.WriteString(amount)
	sb.WriteString(e.Currency)
	sb.WriteString(txCode)
	sb.WriteString(customerRef)
	sb.WriteString(bankRef)

	// Payment identifiers survive the free-text format as embedded tags.
	purpose := e.Purpose
	if !e.IDs.Empty() {
		purpose = statement.FormatTags(e.IDs, e.Purpose)
	}
	for _, block := range WrapText(purpose, PurposeBlockLength) {
		sb.WriteString(fmt.Sprintf("%-*s", PurposeBlockLength, block))
	}
	sb.WriteByte('\n')
	return nil
}

func directionChar(d statement.Direction) byte {
	if d == statement.DirectionDebit {
		return 'D'
	}
	return 'C'
}

func padText(value string, width int, field string, overflow OverflowStrategy) (string, error) {
	if len(value) > width {
		if overflow == Reject {
			return "", &FieldOverflowError{Field: field, Width: width, Value: value}
		}
		value = value[:width]
	}
	return fmt.Sprintf("%-*s", width, value), nil
}

func padAmount(value string, width int, field string) (string, error) {
	if len(value) > width {
		return "", &FieldOverflowError{Field: field, Width: width, Value: value}
	}
	return fmt.Sprintf("%*s", width, value), nil
}
