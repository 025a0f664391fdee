// Package document renders a command sequence into the ePOS-Print XML
// document the printer firmware expects.
//
// The output is the compatibility-critical surface of the library: element
// and attribute names, attribute order and value literals follow the
// ePOS-Print XML schema exactly, and encoding is deterministic so the same
// sequence always produces a byte-identical document. That keeps the
// encoder testable against captures taken from real firmware.
//
// # Document structure
//
// Every document is a SOAP envelope around a single epos-print element:
//
//	<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
//	  <s:Body>
//	    <epos-print xmlns="http://www.epson-pos.com/schemas/2011/03/epos-print">
//	      <!-- one element per command, in caller order -->
//	    </epos-print>
//	  </s:Body>
//	</s:Envelope>
//
// In page mode the commands are additionally wrapped in a page element.
package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fearful-symmetry/epos-go/command"
)

// Namespaces and schema constants for the request envelope.
const (
	SOAPNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	EposNamespace = "http://www.epson-pos.com/schemas/2011/03/epos-print"
	envelopeOpen  = `<s:Envelope xmlns:s="` + SOAPNamespace + `"><s:Body><epos-print xmlns="` + EposNamespace + `">`
	envelopeClose = `</epos-print></s:Body></s:Envelope>`
	pageWrapOpen  = `<page>`
	pageWrapClose = `</page>`
)

// ErrUnsupportedCommand is returned when the encoder meets a command kind
// it cannot render. Encoding fails fast rather than dropping the command.
var ErrUnsupportedCommand = errors.New("unsupported print command")

// Encode renders the sequence into a complete print document for the
// given mode. It is a pure function: the same sequence and mode always
// yield a byte-identical document. The sequence should already have passed
// validation; Encode only rejects command kinds it does not know.
func Encode(seq command.Sequence, mode command.Mode) ([]byte, error) {
	var b strings.Builder
	b.WriteString(envelopeOpen)
	if mode == command.ModePage {
		b.WriteString(pageWrapOpen)
	}
	for i, c := range seq {
		if i > 0 {
			b.WriteByte('\n')
		}
		if err := encodeCommand(&b, c); err != nil {
			return nil, err
		}
	}
	if mode == command.ModePage {
		b.WriteString(pageWrapClose)
	}
	b.WriteString(envelopeClose)
	return []byte(b.String()), nil
}

func encodeCommand(b *strings.Builder, c command.Command) error {
	switch c := c.(type) {
	case *command.Text:
		b.WriteString("<text")
		attrStr(b, "font", string(c.Font))
		attrBool(b, "smoothing", c.Smoothing)
		attrBool(b, "dw", c.DoubleWidth)
		attrBool(b, "dh", c.DoubleHeight)
		attrUint(b, "width", uint(c.Width))
		attrUint(b, "height", uint(c.Height))
		attrBool(b, "ul", c.Underline)
		attrBool(b, "em", c.Emphasize)
		attrStr(b, "color", string(c.Color))
		attrStr(b, "lang", string(c.Lang))
		attrStr(b, "align", string(c.Align))
		// Empty text still gets an element pair, never a self-closing tag:
		// an omitted line and an empty line are different receipts.
		b.WriteByte('>')
		escapeText(b, c.Text)
		b.WriteString("</text>")

	case *command.Feed:
		b.WriteString("<feed")
		attrUint(b, "unit", uint(c.Unit))
		attrUint(b, "line", uint(c.Line))
		attrUint(b, "linespc", uint(c.LineSpacing))
		attrStr(b, "pos", string(c.Pos))
		b.WriteString("/>")

	case *command.Cut:
		b.WriteString("<cut")
		attrStr(b, "type", string(c.Type))
		b.WriteString("/>")

	case *command.Barcode:
		b.WriteString("<barcode")
		attrStr(b, "type", string(c.Type))
		attrStr(b, "hri", string(c.HRI))
		attrStr(b, "font", string(c.Font))
		attrUint(b, "width", uint(c.Width))
		attrUint(b, "height", uint(c.Height))
		attrStr(b, "align", string(c.Align))
		attrBool(b, "rotate", c.Rotate)
		b.WriteByte('>')
		escapeText(b, c.Data)
		b.WriteString("</barcode>")

	case *command.Symbol:
		r := c.Resolved()
		b.WriteString("<symbol")
		attrStr(b, "type", string(r.Type))
		attrStr(b, "level", string(r.Level))
		attrUint(b, "width", uint(r.Width))
		attrUint(b, "height", uint(r.Height))
		attrUint(b, "size", uint(r.Size))
		attrStr(b, "align", string(r.Align))
		attrBool(b, "rotate", r.Rotate)
		b.WriteByte('>')
		escapeText(b, r.Data)
		b.WriteString("</symbol>")

	case *command.Image:
		b.WriteString("<image")
		attrUint(b, "width", uint(c.Width))
		attrUint(b, "height", uint(c.Height))
		attrStr(b, "color", string(c.Color))
		attrStr(b, "align", string(c.Align))
		b.WriteByte('>')
		escapeText(b, c.Data)
		b.WriteString("</image>")

	case *command.Hline:
		b.WriteString("<hline")
		attrNum(b, "x1", uint(c.X1))
		attrNum(b, "x2", uint(c.X2))
		attrStr(b, "style", string(c.Style))
		b.WriteString("/>")

	case *command.Line:
		b.WriteString("<line")
		attrNum(b, "x1", uint(c.X1))
		attrNum(b, "y1", uint(c.Y1))
		attrNum(b, "x2", uint(c.X2))
		attrNum(b, "y2", uint(c.Y2))
		attrStr(b, "style", string(c.Style))
		b.WriteString("/>")

	case *command.Rectangle:
		b.WriteString("<rectangle")
		attrNum(b, "x1", uint(c.X1))
		attrNum(b, "y1", uint(c.Y1))
		attrNum(b, "x2", uint(c.X2))
		attrNum(b, "y2", uint(c.Y2))
		attrStr(b, "style", string(c.Style))
		b.WriteString("/>")

	case *command.Area:
		b.WriteString("<area")
		attrNum(b, "x", uint(c.X))
		attrNum(b, "y", uint(c.Y))
		attrNum(b, "width", uint(c.Width))
		attrNum(b, "height", uint(c.Height))
		b.WriteString("/>")

	case *command.Direction:
		b.WriteString("<direction")
		attrStr(b, "dir", string(c.Dir))
		b.WriteString("/>")

	case *command.Position:
		b.WriteString("<position")
		attrNum(b, "x", uint(c.X))
		attrNum(b, "y", uint(c.Y))
		b.WriteString("/>")

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedCommand, c)
	}
	return nil
}

// attrStr writes a string attribute, omitting it when empty.
func attrStr(b *strings.Builder, name, v string) {
	if v == "" {
		return
	}
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	escapeAttr(b, v)
	b.WriteByte('"')
}

// attrBool writes a boolean attribute, omitting it when false. The
// firmware defaults every boolean attribute to false.
func attrBool(b *strings.Builder, name string, v bool) {
	if !v {
		return
	}
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="true"`)
}

// attrUint writes a numeric attribute, omitting it when zero so the
// firmware default applies.
func attrUint(b *strings.Builder, name string, v uint) {
	if v == 0 {
		return
	}
	attrNum(b, name, v)
}

// attrNum writes a numeric attribute unconditionally; zero is a valid
// coordinate.
func attrNum(b *strings.Builder, name string, v uint) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(strconv.FormatUint(uint64(v), 10))
	b.WriteByte('"')
}
