package statement

// MaxReferenceLength bounds the combined length of the transaction code and
// the customer reference, per the positional statement line format.
const MaxReferenceLength = 16

// TransactionCodeLength is the fixed width of the transaction type code.
const TransactionCodeLength = 3

// Reference identifies a posted entry: a three-letter transaction code, the
// reference assigned by the account owner, and optionally the one assigned
// by the servicing bank.
type Reference struct {
	TransactionCode string
	Customer        string
	Bank            string
}

// NewReference builds a validated Reference. The combined length of the
// transaction code and the customer reference must not exceed
// MaxReferenceLength.
func NewReference(transactionCode, customer, bank string) (Reference, error) {
	if transactionCode == "" {
		return Reference{}, &MissingFieldError{Field: "transaction_code"}
	}
	if len(transactionCode) != TransactionCodeLength {
		return Reference{}, &InvalidFieldError{Field: "transaction_code", Rule: "len=3"}
	}
	if len(transactionCode)+len(customer) > MaxReferenceLength {
		return Reference{}, &ReferenceLengthError{TransactionCode: transactionCode, Customer: customer}
	}
	return Reference{TransactionCode: transactionCode, Customer: customer, Bank: bank}, nil
}
