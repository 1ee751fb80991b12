package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finbridge-dev/finbridge/statement"
)

// Decode parses fixed-width ledger text back into a Document using the
// same per-field length tables as the encoder. Balances and postings are
// reconciled leniently, since decoded files come from external back-ends
// whose rounding may drift. Purpose blocks re-join with single spaces and
// re-wrap into remittance-bounded lines, so the wire format never imposes
// its block width on the decoded entry.
func Decode(text string) (*Document, error) {
	var (
		account  string
		opening  *statement.Balance
		closing  *statement.Balance
		postings []statement.Entry
	)

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		switch line[0] {
		case recordAccount:
			if len(line) < layoutWidth(accountFields) {
				return nil, fmt.Errorf("line %d: short account record", i+1)
			}
			account = strings.TrimSpace(cut(line, accountFields)[0])

		case recordOpening, recordClosing:
			balance, err := decodeBalance(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			if line[0] == recordOpening {
				opening = &balance
			} else {
				closing = &balance
			}

		case recordPosting:
			posting, err := decodePosting(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			postings = append(postings, posting)

		default:
			return nil, fmt.Errorf("line %d: unknown record type %q", i+1, line[0])
		}
	}

	return NewDocument(DocumentParams{
		Account:          account,
		Opening:          opening,
		Closing:          closing,
		Postings:         postings,
		SkipBalanceCheck: true,
	})
}

func decodeBalance(line string) (statement.Balance, error) {
	if len(line) < layoutWidth(balanceFields) {
		return statement.Balance{}, fmt.Errorf("short balance record")
	}
	fields := cut(line, balanceFields)

	date, err := ParseDate(fields[0])
	if err != nil {
		return statement.Balance{}, err
	}
	direction, err := parseDirection(fields[1])
	if err != nil {
		return statement.Balance{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return statement.Balance{}, fmt.Errorf("invalid amount %q", strings.TrimSpace(fields[2]))
	}

	kind := statement.KindOpeningBooked
	if line[0] == recordClosing {
		kind = statement.KindClosingBooked
	}
	return statement.NewBalance(kind, direction, date, strings.TrimSpace(fields[3]), amount)
}

func decodePosting(line string) (statement.Entry, error) {
	prefix := layoutWidth(postingFields)
	if len(line) < prefix {
		return statement.Entry{}, fmt.Errorf("short posting record")
	}
	fields := cut(line, postingFields)

	bookingDate, err := ParseDate(fields[0])
	if err != nil {
		return statement.Entry{}, fmt.Errorf("booking date: %w", err)
	}
	valueDate, err := ParseDate(fields[1])
	if err != nil {
		return statement.Entry{}, fmt.Errorf("value date: %w", err)
	}
	direction, err := parseDirection(fields[2])
	if err != nil {
		return statement.Entry{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(fields[3]))
	if err != nil {
		return statement.Entry{}, fmt.Errorf("invalid amount %q", strings.TrimSpace(fields[3]))
	}

	var reference statement.Reference
	if code := strings.TrimSpace(fields[5]); code != "" {
		reference, err = statement.NewReference(code,
			strings.TrimSpace(fields[6]), strings.TrimSpace(fields[7]))
		if err != nil {
			return statement.Entry{}, err
		}
	}

	var blocks []string
	for pos := prefix; pos < len(line); pos += PurposeBlockLength {
		end := pos + PurposeBlockLength
		if end > len(line) {
			end = len(line)
		}
		blocks = append(blocks, line[pos:end])
	}

	return statement.NewEntry(statement.EntryParams{
		BookingDate: bookingDate,
		ValueDate:   valueDate,
		Direction:   direction,
		Amount:      amount,
		Currency:    strings.TrimSpace(fields[4]),
		Reference:   reference,
		Purpose:     WrapPurpose(JoinBlocks(blocks)),
	})
}

func parseDirection(field string) (statement.Direction, error) {
	switch strings.TrimSpace(field) {
	case "C":
		return statement.DirectionCredit, nil
	case "D":
		return statement.DirectionDebit, nil
	default:
		return "", fmt.Errorf("invalid direction %q", strings.TrimSpace(field))
	}
}
