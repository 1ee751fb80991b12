package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// messageIDNamespace seeds the name-based UUIDs used wherever a target
// format requires an identifier the source format does not carry. Derived
// identifiers are a pure function of the source fields, so repeated
// conversions of the same document yield the same ids.
var messageIDNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// deriveMessageID builds a deterministic message identifier from the
// source document's identifying fields. Dashes are stripped so the id
// fits a 35-character identifier field.
func deriveMessageID(parts ...string) string {
	id := uuid.NewSHA1(messageIDNamespace, []byte(strings.Join(parts, ":")))
	return strings.ReplaceAll(id.String(), "-", "")
}

// deriveReference builds a deterministic 16-character transaction
// reference for targets whose reference field is shorter than a UUID.
func deriveReference(parts ...string) string {
	id := uuid.NewSHA1(messageIDNamespace, []byte(strings.Join(parts, ":")))
	hex := strings.ReplaceAll(id.String(), "-", "")
	return "LG" + strings.ToUpper(hex[:14])
}

// truncateReference fits a structured-format identifier into the
// 16-character positional reference field.
func truncateReference(id string) string {
	if len(id) > 16 {
		return id[:16]
	}
	return id
}

// sequenceOf extracts the numeric sequence from a positional statement
// number such as "00017/001".
func sequenceOf(statementNumber string) int {
	head, _, _ := strings.Cut(statementNumber, "/")
	n, err := strconv.Atoi(head)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// statementNumberOf renders a sequence number in the positional
// "NNNNN/NNN" notation.
func statementNumberOf(sequence int) string {
	if sequence < 1 {
		sequence = 1
	}
	if sequence > 99999 {
		sequence = sequence % 100000
	}
	return fmt.Sprintf("%05d/001", sequence)
}
