package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want TaggedReference
	}{
		{
			name: "no tags",
			text: "Rent for March",
			want: TaggedReference{Remainder: "Rent for March"},
		},
		{
			name: "empty text",
			text: "",
			want: TaggedReference{},
		},
		{
			name: "all tags canonical order",
			text: "KREF+INSTR-1 EREF+E2E-1 MREF+MND-1 CRED+DE98ZZZ09999999999 SVWZ+Invoice 42",
			want: TaggedReference{
				PaymentIDs: PaymentIDs{
					InstructionID: "INSTR-1",
					EndToEndID:    "E2E-1",
					MandateID:     "MND-1",
					CreditorID:    "DE98ZZZ09999999999",
				},
				Remainder: "Invoice 42",
			},
		},
		{
			name: "tags in arbitrary order",
			text: "SVWZ+Invoice 42 CRED+DE98ZZZ09999999999 EREF+E2E-1 MREF+MND-1 KREF+INSTR-1",
			want: TaggedReference{
				PaymentIDs: PaymentIDs{
					InstructionID: "INSTR-1",
					EndToEndID:    "E2E-1",
					MandateID:     "MND-1",
					CreditorID:    "DE98ZZZ09999999999",
				},
				Remainder: "Invoice 42",
			},
		},
		{
			name: "subset of tags",
			text: "EREF+E2E-9 SVWZ+Utilities",
			want: TaggedReference{
				PaymentIDs: PaymentIDs{EndToEndID: "E2E-9"},
				Remainder:  "Utilities",
			},
		},
		{
			name: "untagged leading content joins remainder",
			text: "Standing order EREF+E2E-5 SVWZ+Gym membership",
			want: TaggedReference{
				PaymentIDs: PaymentIDs{EndToEndID: "E2E-5"},
				Remainder:  "Standing order Gym membership",
			},
		},
		{
			name: "value may contain spaces and plus signs",
			text: "SVWZ+Refund 3+4 items EREF+E2E-7",
			want: TaggedReference{
				PaymentIDs: PaymentIDs{EndToEndID: "E2E-7"},
				Remainder:  "Refund 3+4 items",
			},
		},
		{
			name: "empty tag value",
			text: "EREF+ SVWZ+Something",
			want: TaggedReference{Remainder: "Something"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.text))
		})
	}
}

func TestFormatTags(t *testing.T) {
	ids := PaymentIDs{
		EndToEndID:    "E2E-1",
		MandateID:     "MND-1",
		CreditorID:    "CRD-1",
		InstructionID: "INS-1",
	}

	got := FormatTags(ids, "Invoice 42")
	assert.Equal(t, "KREF+INS-1 EREF+E2E-1 MREF+MND-1 CRED+CRD-1 SVWZ+Invoice 42", got)

	// empty parts are omitted
	assert.Equal(t, "SVWZ+plain text", FormatTags(PaymentIDs{}, "plain text"))
	assert.Equal(t, "EREF+E2E-1", FormatTags(PaymentIDs{EndToEndID: "E2E-1"}, ""))
	assert.Equal(t, "", FormatTags(PaymentIDs{}, ""))
}

// Extraction completeness: whatever FormatTags emits, ParseTags returns
// field for field, regardless of how the tags were ordered in the input.
func TestTags_RoundTrip(t *testing.T) {
	cases := []TaggedReference{
		{
			PaymentIDs: PaymentIDs{
				EndToEndID:    "NOTPROVIDED",
				MandateID:     "MANDATE-2026-004",
				CreditorID:    "DE98ZZZ09999999999",
				InstructionID: "INSTR-77",
			},
			Remainder: "Quarterly insurance premium",
		},
		{PaymentIDs: PaymentIDs{MandateID: "M-1"}},
		{Remainder: "free text only"},
		{},
	}

	for _, want := range cases {
		got := ParseTags(want.Format())
		assert.Equal(t, want, got)

		// a second cycle is stable
		assert.Equal(t, got, ParseTags(got.Format()))
	}
}
