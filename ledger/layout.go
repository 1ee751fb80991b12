package ledger

// Record type indicators, first character of every line.
const (
	recordAccount = 'A'
	recordOpening = '0'
	recordPosting = '1'
	recordClosing = '9'
)

// Field widths of the positional layout.
const (
	widthDate        = 8
	widthDirection   = 1
	widthAmount      = 14
	widthCurrency    = 3
	widthTxCode      = 3
	widthCustomerRef = 16
	widthBankRef     = 16
	widthAccount     = 35

	// PurposeBlockLength is the width of one free-text purpose block.
	// Purposes longer than one block wrap on word boundaries.
	PurposeBlockLength = 27
)

// fieldSpec is one column of a positional record.
type fieldSpec struct {
	name  string
	width int
}

// The per-field length tables. The record type character precedes the
// listed fields; posting records append purpose blocks of
// PurposeBlockLength after the fixed columns.
var (
	accountFields = []fieldSpec{
		{"account", widthAccount},
	}

	balanceFields = []fieldSpec{
		{"date", widthDate},
		{"direction", widthDirection},
		{"amount", widthAmount},
		{"currency", widthCurrency},
	}

	postingFields = []fieldSpec{
		{"booking_date", widthDate},
		{"value_date", widthDate},
		{"direction", widthDirection},
		{"amount", widthAmount},
		{"currency", widthCurrency},
		{"transaction_code", widthTxCode},
		{"customer_reference", widthCustomerRef},
		{"bank_reference", widthBankRef},
	}
)

func layoutWidth(fields []fieldSpec) int {
	w := 1 // record type
	for _, f := range fields {
		w += f.width
	}
	return w
}

// cut slices a record line into its fields, skipping the record type
// character. The line must cover the full layout.
func cut(line string, fields []fieldSpec) []string {
	out := make([]string, len(fields))
	pos := 1
	for i, f := range fields {
		out[i] = line[pos : pos+f.width]
		pos += f.width
	}
	return out
}
