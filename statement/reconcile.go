package statement

import "log/slog"

// Reconcile derives whichever of the opening and closing balances is
// missing from the signed total of the entries, and cross-checks the pair
// when both are supplied.
//
//   - Neither balance given: ErrMissingBalance.
//   - Opening only: closing = opening shifted by the signed entry total,
//     dated at the last entry's booking date (the opening date when the
//     entry list is empty).
//   - Closing only: opening = closing shifted by the negated signed total,
//     dated at the first entry's booking date (the closing date when the
//     entry list is empty).
//   - Both given: the expected closing is recomputed at two decimals and a
//     mismatch returns a *BalanceMismatchError carrying the expected value.
//
// Derived balances carry the generic booked kinds (OPBD, CLBD); callers
// re-tag them for the target format. The direction of a derived balance is
// credit when its signed position is zero or positive, debit otherwise.
// The entry list is walked exactly once.
func Reconcile(opening, closing *Balance, entries []Entry) (Balance, Balance, error) {
	return reconcile(opening, closing, entries, false)
}

// ReconcileLenient behaves like Reconcile but never fails on a mismatching
// pair: when both balances are supplied they pass through uncompared. This
// is the opt-out for ingesting external data with benign rounding drift.
func ReconcileLenient(opening, closing *Balance, entries []Entry) (Balance, Balance, error) {
	return reconcile(opening, closing, entries, true)
}

func reconcile(opening, closing *Balance, entries []Entry, lenient bool) (Balance, Balance, error) {
	if opening == nil && closing == nil {
		return Balance{}, Balance{}, ErrMissingBalance
	}

	total := SignedTotal(entries)

	switch {
	case closing == nil:
		date := opening.Date
		if len(entries) > 0 {
			date = entries[len(entries)-1].BookingDate
		}
		derived := balanceFromSigned(KindClosingBooked, opening.Signed().Add(total), date, opening.Currency)
		return *opening, derived, nil

	case opening == nil:
		date := closing.Date
		if len(entries) > 0 {
			date = entries[0].BookingDate
		}
		derived := balanceFromSigned(KindOpeningBooked, closing.Signed().Sub(total), date, closing.Currency)
		return derived, *closing, nil

	default:
		expected := opening.Signed().Add(total).Round(2)
		supplied := closing.Signed().Round(2)
		if !expected.Equal(supplied) {
			if !lenient {
				return Balance{}, Balance{}, &BalanceMismatchError{Expected: expected, Supplied: supplied}
			}
			slog.Warn("closing balance mismatch tolerated",
				"expected", expected.StringFixed(2),
				"supplied", supplied.StringFixed(2),
				"entries", len(entries))
		}
		return *opening, *closing, nil
	}
}
