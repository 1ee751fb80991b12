package ledger

import (
	"strings"

	"github.com/finbridge-dev/finbridge/statement"
)

// WrapText splits text into blocks of at most width characters, breaking
// only on word boundaries. A single word longer than the width is split
// hard. Joining the blocks with single spaces reproduces the original text
// up to whitespace normalization.
func WrapText(text string, width int) []string {
	var blocks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			blocks = append(blocks, current.String())
			current.Reset()
		}
	}

	for _, word := range strings.Fields(text) {
		for len(word) > width {
			flush()
			blocks = append(blocks, word[:width])
			word = word[width:]
		}
		if word == "" {
			continue
		}
		switch {
		case current.Len() == 0:
			current.WriteString(word)
		case current.Len()+1+len(word) <= width:
			current.WriteByte(' ')
			current.WriteString(word)
		default:
			flush()
			current.WriteString(word)
		}
	}
	flush()
	return blocks
}

// WrapPurpose re-wraps purpose text whose lines exceed the remittance
// line bound into word-bounded lines within it. Text that already fits is
// returned verbatim, line structure included.
func WrapPurpose(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if len(line) > statement.MaxPurposeLineLength {
			return strings.Join(WrapText(text, statement.MaxPurposeLineLength), "\n")
		}
	}
	return text
}

// JoinBlocks concatenates decoded purpose blocks back into one text,
// separating them with single spaces.
func JoinBlocks(blocks []string) string {
	trimmed := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if t := strings.TrimSpace(b); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	return strings.Join(trimmed, " ")
}
