package swift

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbridge-dev/finbridge/statement"
)

var periodStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func balance(t *testing.T, kind statement.BalanceKind, direction statement.Direction, amount float64) statement.Balance {
	t.Helper()
	b, err := statement.NewBalance(kind, direction, periodStart, "EUR", decimal.NewFromFloat(amount))
	require.NoError(t, err)
	return b
}

func entries(t *testing.T, signedAmounts ...float64) []statement.Entry {
	t.Helper()
	out := make([]statement.Entry, 0, len(signedAmounts))
	for i, amount := range signedAmounts {
		direction := statement.Direction(statement.DirectionCredit)
		if amount < 0 {
			direction = statement.DirectionDebit
			amount = -amount
		}
		e, err := statement.NewEntry(statement.EntryParams{
			BookingDate: periodStart.AddDate(0, 0, i),
			Direction:   direction,
			Amount:      decimal.NewFromFloat(amount),
			Currency:    "EUR",
		})
		require.NoError(t, err)
		out = append(out, e)
	}
	return out
}

func validStatementParams(t *testing.T) StatementParams {
	return StatementParams{
		TransactionReference: "STMT-2026-090",
		Account:              "DE89370400440532013000",
		StatementNumber:      "00090/001",
		Opening:              balance(t, statement.KindOpeningBooked, statement.DirectionCredit, 1000.00),
		Closing:              balance(t, statement.KindClosingBooked, statement.DirectionCredit, 1250.00),
		Entries:              entries(t, 500.00, -200.00, -50.00),
	}
}

func TestNewStatement(t *testing.T) {
	s, err := NewStatement(validStatementParams(t))
	require.NoError(t, err)

	assert.Equal(t, "DE89370400440532013000", s.AccountID())
	assert.Len(t, s.Entries, 3)
	assert.Equal(t, statement.KindOpeningBooked, s.Opening.Kind)
	assert.Equal(t, statement.KindClosingBooked, s.Closing.Kind)
}

func TestNewStatement_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StatementParams)
		field  string
	}{
		{name: "missing transaction reference", mutate: func(p *StatementParams) { p.TransactionReference = "" }, field: "transaction_reference"},
		{name: "missing account", mutate: func(p *StatementParams) { p.Account = "" }, field: "account"},
		{name: "missing statement number", mutate: func(p *StatementParams) { p.StatementNumber = "" }, field: "statement_number"},
		{name: "missing opening balance", mutate: func(p *StatementParams) { p.Opening = statement.Balance{} }, field: "opening_balance"},
		{name: "missing closing balance", mutate: func(p *StatementParams) { p.Closing = statement.Balance{} }, field: "closing_balance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validStatementParams(t)
			tt.mutate(&p)
			if tt.field == "opening_balance" {
				p.Entries = nil
			}
			_, err := NewStatement(p)
			var missing *statement.MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}

func TestNewStatement_InvalidStatementNumber(t *testing.T) {
	p := validStatementParams(t)
	p.StatementNumber = "90A/001"

	_, err := NewStatement(p)

	var invalid *statement.InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "statement_number", invalid.Field)
}

func TestNewStatement_BalanceMismatch(t *testing.T) {
	p := validStatementParams(t)
	p.Closing = balance(t, statement.KindClosingBooked, statement.DirectionCredit, 9999.00)

	_, err := NewStatement(p)

	var mismatch *statement.BalanceMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "1250.00", mismatch.Expected.StringFixed(2))
}

func TestNewStatement_SkipBalanceCheck(t *testing.T) {
	p := validStatementParams(t)
	p.Closing = balance(t, statement.KindClosingBooked, statement.DirectionCredit, 9999.00)
	p.SkipBalanceCheck = true

	s, err := NewStatement(p)
	require.NoError(t, err)
	assert.Equal(t, "9999.00", s.Closing.Amount.StringFixed(2))
}

func TestNewStatement_CurrencyMismatch(t *testing.T) {
	p := validStatementParams(t)
	closing, err := statement.NewBalance(statement.KindClosingBooked, statement.DirectionCredit, periodStart, "USD", decimal.NewFromFloat(1250.00))
	require.NoError(t, err)
	p.Closing = closing

	_, err = NewStatement(p)
	assert.ErrorIs(t, err, statement.ErrCurrencyMismatch)
}

func TestNewStatement_RetagsOptionalBalances(t *testing.T) {
	p := validStatementParams(t)
	available := balance(t, statement.KindClosingBooked, statement.DirectionCredit, 1200.00)
	p.ClosingAvailable = &available
	p.ForwardAvailable = []statement.Balance{balance(t, statement.KindClosingBooked, statement.DirectionCredit, 1300.00)}

	s, err := NewStatement(p)
	require.NoError(t, err)
	assert.Equal(t, statement.KindClosingAvailable, s.ClosingAvailable.Kind)
	assert.Equal(t, statement.KindForwardAvailable, s.ForwardAvailable[0].Kind)
}

func TestNewStatement_CopiesEntries(t *testing.T) {
	p := validStatementParams(t)
	s, err := NewStatement(p)
	require.NoError(t, err)

	p.Entries[0].Purpose = "mutated afterwards"
	assert.Empty(t, s.Entries[0].Purpose)
}

func TestSummarize(t *testing.T) {
	debit, credit := Summarize(entries(t, 500.00, -200.00, -50.00))

	assert.Equal(t, 2, debit.Count)
	assert.Equal(t, "250.00", debit.Total.StringFixed(2))
	assert.Equal(t, 1, credit.Count)
	assert.Equal(t, "500.00", credit.Total.StringFixed(2))

	debit, credit = Summarize(nil)
	assert.Zero(t, debit.Count)
	assert.Zero(t, credit.Count)
}
