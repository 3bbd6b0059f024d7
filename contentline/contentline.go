// Package contentline implements the octet-aware unfolder and folder
// that sit at the bottom of the iCalendar pipeline: turning a raw byte
// stream into logical lines on read, and logical lines back into
// width-bounded physical lines on write. Both directions are careful
// never to split a UTF-8 code point across a line boundary.
package contentline

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/wrenfield/icalgo/icalerr"
)

// DefaultFoldWidth is the RFC 5545 §3.1 octet limit for a folded
// physical line.
const DefaultFoldWidth = 75

// ContentLine is one unfolded logical record: name[;param]*:value.
// Raw is the unfolded text (continuation breaks and their leading
// whitespace removed), used for error reporting; the folded physical
// text is not retained. Line is the physical line number the logical
// line began on.
type ContentLine struct {
	Raw  string
	Line int
}

// Unfolder reads logical lines out of an iCalendar byte stream,
// stripping the single leading SP/HTAB that marks a continuation and
// normalizing any mix of CRLF/LF/CR endings.
type Unfolder struct {
	r       *bufio.Reader
	lineNo  int
	started bool
}

// NewUnfolder wraps r, first stripping a leading UTF-8 byte-order
// mark if present.
func NewUnfolder(r io.Reader) *Unfolder {
	bomAware := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return &Unfolder{r: bufio.NewReader(bomAware.Reader(r))}
}

// NewUnfolderString is a convenience constructor for parsing an
// already-decoded string.
func NewUnfolderString(s string) *Unfolder {
	return NewUnfolder(bytes.NewReader([]byte(s)))
}

// readPhysicalLine reads up to but not including the line terminator,
// normalizing CRLF, bare LF, and bare CR into a single logical
// terminator. Returns io.EOF only when nothing at all was read.
func (u *Unfolder) readPhysicalLine() (string, error) {
	var buf bytes.Buffer
	any := false
	for {
		b, err := u.r.ReadByte()
		if err != nil {
			if any {
				return buf.String(), nil
			}
			return "", err
		}
		any = true
		switch b {
		case '\r':
			next, peekErr := u.r.Peek(1)
			if peekErr == nil && len(next) == 1 && next[0] == '\n' {
				_, _ = u.r.ReadByte()
			}
			return buf.String(), nil
		case '\n':
			return buf.String(), nil
		default:
			buf.WriteByte(b)
		}
	}
}

// Next returns the next logical line, joining continuation lines
// (those beginning with SP or HTAB) onto the first line of the
// record. Returns io.EOF when the stream is exhausted.
func (u *Unfolder) Next() (ContentLine, error) {
	first, err := u.readPhysicalLine()
	if err != nil {
		return ContentLine{}, err
	}
	u.lineNo++
	startLine := u.lineNo

	if !u.started {
		u.started = true
		if len(first) > 0 && (first[0] == ' ' || first[0] == '\t') {
			return ContentLine{}, icalerr.New(icalerr.KindFormat, icalerr.CodeUnfoldLeadingContinuation,
				"continuation line before any first line", 1, first)
		}
	}

	var sb bytes.Buffer
	sb.WriteString(first)

	for {
		peeked, peekErr := u.r.Peek(1)
		if peekErr != nil || len(peeked) == 0 {
			break
		}
		if peeked[0] != ' ' && peeked[0] != '\t' {
			break
		}
		_, _ = u.r.ReadByte() // consume the folding whitespace
		cont, err := u.readPhysicalLine()
		u.lineNo++
		if err != nil && cont == "" {
			break
		}
		sb.WriteString(cont)
	}

	return ContentLine{Raw: sb.String(), Line: startLine}, nil
}

// All drains the unfolder into a slice. Convenience for callers that
// do not need streaming behavior.
func All(u *Unfolder) ([]ContentLine, error) {
	var lines []ContentLine
	for {
		cl, err := u.Next()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		lines = append(lines, cl)
	}
}

// FoldOptions configures the folder's output width.
type FoldOptions struct {
	// Width is the maximum UTF-8 octet length of any physical output
	// line, including the leading SP of a continuation line but not
	// counting the CRLF that ends each line.
	Width int
}

// DefaultFoldOptions returns the RFC 5545 default fold width.
func DefaultFoldOptions() FoldOptions { return FoldOptions{Width: DefaultFoldWidth} }

// Fold splits a logical line into one or more CRLF+SP-joined physical
// lines, each at most opts.Width UTF-8 octets, never splitting a
// multi-byte rune. It prefers to break immediately after a ';' or ','
// that falls within the final window, for readability, and otherwise
// breaks at the last rune boundary at or before the width limit.
func Fold(logical string, opts FoldOptions) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultFoldWidth
	}
	if len(logical) <= width {
		return logical
	}

	var out bytes.Buffer
	remaining := logical
	first := true
	for {
		limit := width
		if !first {
			// continuation lines start with one SP octet that counts
			// against the width budget.
			limit = width - 1
		}
		if len(remaining) <= limit {
			if !first {
				out.WriteString("\r\n ")
			}
			out.WriteString(remaining)
			break
		}

		cut := runeBoundaryAtOrBefore(remaining, limit)
		cut = preferSeparatorBreak(remaining, cut, limit)

		if !first {
			out.WriteString("\r\n ")
		}
		out.WriteString(remaining[:cut])
		remaining = remaining[cut:]
		first = false
	}
	return out.String()
}

// runeBoundaryAtOrBefore returns the largest index <= limit that does
// not split a UTF-8 rune.
func runeBoundaryAtOrBefore(s string, limit int) int {
	if limit >= len(s) {
		return len(s)
	}
	i := limit
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// preferSeparatorBreak nudges the break point to just after a ';' or
// ',' within the window [limit-lookback, limit], if one exists on a
// rune boundary, matching the spec's readability preference.
func preferSeparatorBreak(s string, fallback, limit int) int {
	const lookback = 10
	start := limit - lookback
	if start < 0 {
		start = 0
	}
	best := -1
	for i := start; i < limit && i < len(s); i++ {
		if (s[i] == ';' || s[i] == ',') && utf8.RuneStart(byteAt(s, i+1)) {
			if i+1 <= limit {
				best = i + 1
			}
		}
	}
	if best > 0 {
		return best
	}
	return fallback
}

func byteAt(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}
