package convert

import (
	"github.com/finbridge-dev/finbridge/ledger"
	"github.com/finbridge-dev/finbridge/statement"
)

// The shared entry mapper. Amounts, directions, currencies and dates pass
// through unchanged in every direction; only the reference representation
// changes when an entry crosses between the free-text and the structured
// families.

// entriesToStructured moves payment identifiers embedded as tags in the
// free-text purpose into the discrete identifier fields, leaving the
// untagged remainder as purpose. Identifiers already present on the entry
// win over tagged ones. One linear pass.
func entriesToStructured(entries []statement.Entry) []statement.Entry {
	out := make([]statement.Entry, len(entries))
	for i, e := range entries {
		parsed := statement.ParseTags(e.Purpose)
		e.IDs = mergeIDs(e.IDs, parsed.PaymentIDs)
		e.Purpose = parsed.Remainder
		out[i] = e
	}
	return out
}

// entriesToFreeText embeds the discrete payment identifiers back into the
// purpose as canonical tags and clears the identifier fields. Tagged text
// that outgrows the remittance line bound re-wraps on word boundaries, so
// the mapped entries keep the purpose line invariant. Entries without
// identifiers keep their purpose verbatim. One linear pass.
func entriesToFreeText(entries []statement.Entry) []statement.Entry {
	out := make([]statement.Entry, len(entries))
	for i, e := range entries {
		if !e.IDs.Empty() {
			e.Purpose = ledger.WrapPurpose(statement.FormatTags(e.IDs, e.Purpose))
			e.IDs = statement.PaymentIDs{}
		}
		out[i] = e
	}
	return out
}

func mergeIDs(existing, parsed statement.PaymentIDs) statement.PaymentIDs {
	if existing.EndToEndID == "" {
		existing.EndToEndID = parsed.EndToEndID
	}
	if existing.MandateID == "" {
		existing.MandateID = parsed.MandateID
	}
	if existing.CreditorID == "" {
		existing.CreditorID = parsed.CreditorID
	}
	if existing.InstructionID == "" {
		existing.InstructionID = parsed.InstructionID
	}
	return existing
}
