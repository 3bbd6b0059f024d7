// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package write

import (
	"bytes"
	"sort"
	"strings"

	"github.com/wrenfield/icalgo/contentline"
	"github.com/wrenfield/icalgo/model"
	"github.com/wrenfield/icalgo/property"
)

// Option configures a Writer.
type Option func(*Writer)

// WithFoldOptions overrides the default 75-octet fold width.
func WithFoldOptions(opts contentline.FoldOptions) Option {
	return func(w *Writer) { w.foldOptions = opts }
}

// Writer serializes a model.Component tree to folded iCalendar text.
type Writer struct {
	foldOptions contentline.FoldOptions
}

// NewWriter returns a Writer configured with opts, defaulting to
// contentline.DefaultFoldOptions.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{foldOptions: contentline.DefaultFoldOptions()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write serializes cal's Component tree to a folded byte stream.
func (w *Writer) Write(cal *model.Calendar) ([]byte, error) {
	var buf bytes.Buffer
	w.writeComponent(&buf, cal.Component)
	return buf.Bytes(), nil
}

func (w *Writer) writeComponent(buf *bytes.Buffer, c *model.Component) {
	w.writeLine(buf, "BEGIN:"+c.Name)
	for _, p := range filterProperties(c) {
		w.writeProperty(buf, p)
	}
	for _, child := range c.Components {
		w.writeComponent(buf, child)
	}
	w.writeLine(buf, "END:"+c.Name)
}

func (w *Writer) writeProperty(buf *bytes.Buffer, p property.Property) {
	var sb strings.Builder
	sb.WriteString(p.Name)
	for _, param := range sortedParams(p.Params) {
		sb.WriteByte(';')
		sb.WriteString(param.Name)
		sb.WriteByte('=')
		for i, v := range param.Values {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(encodeParamValue(v))
		}
	}
	sb.WriteByte(':')
	sb.WriteString(p.Raw)
	w.writeLine(buf, sb.String())
}

func (w *Writer) writeLine(buf *bytes.Buffer, logical string) {
	buf.WriteString(contentline.Fold(logical, w.foldOptions))
	buf.WriteString("\r\n")
}

// sortedParams returns params in ascending name order, for
// deterministic, reproducible writer output.
func sortedParams(params []property.Param) []property.Param {
	out := make([]property.Param, len(params))
	copy(out, params)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// encodeParamValue applies RFC 6868 encoding, then quotes the result
// if it contains a character that would otherwise be ambiguous with
// the content-line grammar.
func encodeParamValue(v string) string {
	encoded := property.Encode6868(v)
	if property.NeedsQuoting(encoded) {
		return `"` + encoded + `"`
	}
	return encoded
}

// filterProperties applies the RFC 9073 STYLED-DESCRIPTION conflict
// rule: when a component carries STYLED-DESCRIPTION, a DESCRIPTION
// without DERIVED=TRUE is dropped, since STYLED-DESCRIPTION already
// supersedes it as the human-readable rendering.
func filterProperties(c *model.Component) []property.Property {
	if _, hasStyled := c.Get("STYLED-DESCRIPTION"); !hasStyled {
		return c.Properties
	}
	out := make([]property.Property, 0, len(c.Properties))
	for _, p := range c.Properties {
		if strings.EqualFold(p.Name, "DESCRIPTION") {
			if derived, ok := p.Get("DERIVED"); !ok || !strings.EqualFold(derived, "TRUE") {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Write serializes cal using the default Writer configuration. It is
// a convenience wrapper around NewWriter().Write for callers that
// don't need a custom fold width.
func Write(cal *model.Calendar) ([]byte, error) {
	return NewWriter().Write(cal)
}
