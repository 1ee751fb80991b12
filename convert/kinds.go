package convert

import "github.com/finbridge-dev/finbridge/statement"

// Per-direction balance-kind translation tables. These are configuration,
// not computation: each target format prescribes its own balance type
// codes, and the codes differ even where the numeric value is identical.
// An end-of-day statement opens with the previous closing position (PRCD)
// where the positional statement books an opening (OPBD); an intraday
// report closes on an available position (CLAV) where the end-of-day
// formats book a closing (CLBD). Kinds absent from a table pass through
// unchanged.
var (
	kindsToBankStatement = map[statement.BalanceKind]statement.BalanceKind{
		statement.KindOpeningBooked: statement.KindPreviousClosing,
		statement.KindClosingBooked: statement.KindClosingBooked,
	}

	kindsFromBankStatement = map[statement.BalanceKind]statement.BalanceKind{
		statement.KindPreviousClosing: statement.KindOpeningBooked,
		statement.KindClosingBooked:   statement.KindClosingBooked,
	}

	kindsToAccountReport = map[statement.BalanceKind]statement.BalanceKind{
		statement.KindOpeningBooked: statement.KindOpeningBooked,
		statement.KindClosingBooked: statement.KindClosingAvailable,
	}

	kindsFromAccountReport = map[statement.BalanceKind]statement.BalanceKind{
		statement.KindOpeningBooked:    statement.KindOpeningBooked,
		statement.KindInterimBooked:    statement.KindOpeningBooked,
		statement.KindClosingAvailable: statement.KindClosingBooked,
		statement.KindInterimAvailable: statement.KindClosingBooked,
	}
)

// remapKind re-tags a balance through a translation table. Unlisted kinds
// keep their code.
func remapKind(b statement.Balance, table map[statement.BalanceKind]statement.BalanceKind) statement.Balance {
	if mapped, ok := table[b.Kind]; ok {
		return b.WithKind(mapped)
	}
	return b
}

// remapKindPtr is remapKind over an optional balance.
func remapKindPtr(b *statement.Balance, table map[statement.BalanceKind]statement.BalanceKind) *statement.Balance {
	if b == nil {
		return nil
	}
	mapped := remapKind(*b, table)
	return &mapped
}
