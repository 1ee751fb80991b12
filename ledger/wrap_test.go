package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finbridge-dev/finbridge/statement"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "fits one block",
			text:  "short text",
			width: 27,
			want:  []string{"short text"},
		},
		{
			name:  "empty text",
			text:  "",
			width: 27,
			want:  nil,
		},
		{
			name:  "wraps on word boundaries",
			text:  "Invoice payment number 2024-001 for services rendered in March",
			width: 27,
			want: []string{
				"Invoice payment number",
				"2024-001 for services",
				"rendered in March",
			},
		},
		{
			name:  "oversized word splits hard",
			text:  "ref ABCDEFGHIJKLMNOPQRSTUVWXYZ0123 end",
			width: 10,
			want:  []string{"ref", "ABCDEFGHIJ", "KLMNOPQRST", "UVWXYZ0123", "end"},
		},
		{
			name:  "collapses runs of whitespace",
			text:  "a  b\t c",
			width: 27,
			want:  []string{"a b c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.text, tt.width)
			assert.Equal(t, tt.want, got)
			for _, block := range got {
				assert.LessOrEqual(t, len(block), tt.width)
			}
		})
	}
}

func TestWrapText_JoinReproducesText(t *testing.T) {
	text := "Invoice payment number 2024-001 for services rendered in March"
	blocks := WrapText(text, 27)
	assert.Equal(t, text, strings.Join(blocks, " "))
	assert.Equal(t, text, JoinBlocks(blocks))
}

func TestWrapPurpose(t *testing.T) {
	short := "fits on one line"
	assert.Equal(t, short, WrapPurpose(short))

	// bounded multi-line text keeps its line structure
	two := "first line\nsecond line"
	assert.Equal(t, two, WrapPurpose(two))

	long := strings.TrimSpace(strings.Repeat("word ", 30))
	wrapped := WrapPurpose(long)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), statement.MaxPurposeLineLength)
	}
	assert.Equal(t, strings.Fields(long), strings.Fields(wrapped))
}

func TestJoinBlocks_TrimsPadding(t *testing.T) {
	blocks := []string{"padded block               ", "   second ", ""}
	assert.Equal(t, "padded block second", JoinBlocks(blocks))
}
