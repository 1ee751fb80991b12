package statement

import "strings"

// Tag prefixes used to embed structured payment identifiers in free-text
// remittance, following the structured remittance convention of the
// positional statement family. A tag marker is the four-letter tag followed
// by a plus sign; the value runs to the next recognized marker or the end
// of the text.
const (
	TagInstruction = "KREF"
	TagEndToEnd    = "EREF"
	TagMandate     = "MREF"
	TagCreditor    = "CRED"
	TagRemittance  = "SVWZ"
)

const tagMarkerLength = 5 // four-letter tag plus separator

// TaggedReference is the result of splitting tagged remittance text into
// discrete identifiers and the untagged remainder.
type TaggedReference struct {
	PaymentIDs
	Remainder string
}

// ParseTags extracts the tagged payment identifiers from free text. Tags
// may appear in any order or be absent; untagged leading content and the
// SVWZ part both land in Remainder, joined by a single space. Values are
// trimmed of surrounding whitespace.
func ParseTags(text string) TaggedReference {
	var out TaggedReference

	type marker struct {
		tag string
		pos int
	}
	var markers []marker
	for i := 0; i+tagMarkerLength <= len(text); i++ {
		if text[i+4] != '+' {
			continue
		}
		switch tag := text[i : i+4]; tag {
		case TagInstruction, TagEndToEnd, TagMandate, TagCreditor, TagRemittance:
			markers = append(markers, marker{tag: tag, pos: i})
			i += tagMarkerLength - 1
		}
	}

	if len(markers) == 0 {
		out.Remainder = strings.TrimSpace(text)
		return out
	}

	var free []string
	if lead := strings.TrimSpace(text[:markers[0].pos]); lead != "" {
		free = append(free, lead)
	}
	for i, m := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1].pos
		}
		value := strings.TrimSpace(text[m.pos+tagMarkerLength : end])
		switch m.tag {
		case TagInstruction:
			out.InstructionID = value
		case TagEndToEnd:
			out.EndToEndID = value
		case TagMandate:
			out.MandateID = value
		case TagCreditor:
			out.CreditorID = value
		case TagRemittance:
			if value != "" {
				free = append(free, value)
			}
		}
	}
	out.Remainder = strings.Join(free, " ")
	return out
}

// FormatTags renders discrete payment identifiers and free text back into
// tagged remittance text. Tags are emitted in canonical order (KREF, EREF,
// MREF, CRED, SVWZ) and empty parts are omitted. The round trip through
// ParseTags preserves every field's content; only ordering and surrounding
// whitespace are canonicalized.
func FormatTags(ids PaymentIDs, remainder string) string {
	parts := make([]string, 0, 5)
	appendTag := func(tag, value string) {
		if value != "" {
			parts = append(parts, tag+"+"+value)
		}
	}
	appendTag(TagInstruction, ids.InstructionID)
	appendTag(TagEndToEnd, ids.EndToEndID)
	appendTag(TagMandate, ids.MandateID)
	appendTag(TagCreditor, ids.CreditorID)
	appendTag(TagRemittance, remainder)
	return strings.Join(parts, " ")
}

// Format renders the tagged reference back into remittance text.
func (t TaggedReference) Format() string {
	return FormatTags(t.PaymentIDs, t.Remainder)
}
