package command

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ValidationError reports a protocol rule violation in a Sequence.
type ValidationError struct {
	// Index is the zero-based position of the offending command in the
	// caller's sequence, or -1 for a sequence-level violation.
	Index int
	// Rule describes the violated rule.
	Rule string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return "invalid sequence: " + e.Rule
	}
	return fmt.Sprintf("command %d: %s", e.Index, e.Rule)
}

// Text prints a line of text.
//
// If the value does not end in a newline the printer may hold it in its
// line buffer until one arrives.
type Text struct {
	// Text is the text to print. Empty text is legal and encodes to an
	// empty element.
	Text string
	// Font selects the device font. Unset leaves the firmware default.
	Font Font
	// Smoothing enables text smoothing.
	Smoothing bool
	// DoubleWidth doubles the character width. Ignored when Width is set.
	DoubleWidth bool
	// DoubleHeight doubles the character height. Ignored when Height is set.
	DoubleHeight bool
	// Width is the horizontal size multiplier, 1 to 8. Zero leaves the
	// firmware default.
	Width uint8
	// Height is the vertical size multiplier, 1 to 8. Zero leaves the
	// firmware default.
	Height uint8
	// Underline underlines the text.
	Underline bool
	// Emphasize prints the text emphasized.
	Emphasize bool
	// Color selects the print color.
	Color Color
	// Lang selects the character set, e.g. LangEn.
	Lang Lang
	// Align positions the line. Only honored in normal mode.
	Align Align
}

func (t *Text) validate(Mode) error {
	if t.Width != 0 && (t.Width < 1 || t.Width > 8) {
		return errors.New("text width must be between 1 and 8")
	}
	if t.Height != 0 && (t.Height < 1 || t.Height > 8) {
		return errors.New("text height must be between 1 and 8")
	}
	if t.Font != "" && !t.Font.valid() {
		return fmt.Errorf("unknown font %q", t.Font)
	}
	if t.Color != "" && !t.Color.valid() {
		return fmt.Errorf("unknown color %q", t.Color)
	}
	if t.Align != "" && !t.Align.valid() {
		return fmt.Errorf("unknown alignment %q", t.Align)
	}
	return nil
}

func (t *Text) sizeHint() int { return len(t.Text) + 160 }

// Feed advances the paper. At least one of Unit, Line, LineSpacing or Pos
// must be set.
type Feed struct {
	// Unit feeds the given number of dots.
	Unit uint8
	// Line feeds the given number of lines.
	Line uint8
	// LineSpacing sets the per-line feed amount in dots.
	LineSpacing uint8
	// Pos feeds label or black-mark paper to a named position. Not
	// available in page mode.
	Pos FeedPos
}

func (f *Feed) validate(m Mode) error {
	if f.Unit == 0 && f.Line == 0 && f.LineSpacing == 0 && f.Pos == "" {
		return errors.New("feed requires one of unit, line, linespc or pos")
	}
	if f.Pos != "" {
		if !f.Pos.valid() {
			return fmt.Errorf("unknown feed position %q", f.Pos)
		}
		if m == ModePage {
			return errors.New("feed pos cannot be used in page mode")
		}
	}
	return nil
}

func (f *Feed) sizeHint() int { return 64 }

// Cut cuts the paper. Only valid in normal mode.
type Cut struct {
	// Type selects the cut behavior; see CutType.
	Type CutType
}

func (c *Cut) validate(m Mode) error {
	if m != ModeNormal {
		return errors.New("cut is only valid in normal mode")
	}
	if !c.Type.valid() {
		return fmt.Errorf("cut type must be one of no_feed, feed or reserve, got %q", c.Type)
	}
	return nil
}

func (c *Cut) sizeHint() int { return 32 }

// Barcode prints a 1D barcode.
type Barcode struct {
	// Data is the barcode content. Binary bytes can be written as \xNN,
	// and a literal backslash as \\.
	Data string
	// Type is the symbology; required.
	Type BarcodeType
	// HRI positions the human readable interpretation.
	HRI HRI
	// Font selects the HRI font.
	Font Font
	// Width is the module width in dots, 2 to 6. Zero leaves the firmware
	// default.
	Width uint8
	// Height is the bar height in dots. Zero leaves the firmware default.
	Height uint8
	// Align positions the barcode. Only honored in normal mode.
	Align Align
	// Rotate prints the barcode rotated 90 degrees.
	Rotate bool
}

func (b *Barcode) validate(Mode) error {
	if !b.Type.valid() {
		return fmt.Errorf("unknown barcode type %q", b.Type)
	}
	if b.Data == "" {
		return errors.New("barcode data must not be empty")
	}
	if b.Width != 0 && (b.Width < 2 || b.Width > 6) {
		return errors.New("barcode width must be between 2 and 6")
	}
	if b.HRI != "" && !b.HRI.valid() {
		return fmt.Errorf("unknown hri position %q", b.HRI)
	}
	if b.Font != "" && !b.Font.valid() {
		return fmt.Errorf("unknown font %q", b.Font)
	}
	if b.Align != "" && !b.Align.valid() {
		return fmt.Errorf("unknown alignment %q", b.Align)
	}
	return nil
}

func (b *Barcode) sizeHint() int { return len(b.Data) + 128 }

// Image prints a bitmap raster image.
type Image struct {
	// Data is the base64-encoded raster data, one bit per dot.
	Data string
	// Width is the raster width in dots.
	Width int
	// Height is the raster height in dots.
	Height int
	// Align positions the image. Only honored in normal mode.
	Align Align
	// Color selects the print color.
	Color Color
}

func (i *Image) validate(Mode) error {
	if i.Data == "" {
		return errors.New("image data must not be empty")
	}
	if _, err := base64.StdEncoding.DecodeString(i.Data); err != nil {
		return errors.New("image data must be base64 encoded")
	}
	if i.Width < 1 || i.Height < 1 {
		return errors.New("image width and height must be at least 1 dot")
	}
	if i.Align != "" && !i.Align.valid() {
		return fmt.Errorf("unknown alignment %q", i.Align)
	}
	if i.Color != "" && !i.Color.valid() {
		return fmt.Errorf("unknown color %q", i.Color)
	}
	return nil
}

func (i *Image) sizeHint() int { return len(i.Data) + 128 }

// Hline draws a horizontal line. Only valid in normal mode.
type Hline struct {
	// X1 is the draw start position in dots.
	X1 uint16
	// X2 is the draw end position in dots.
	X2 uint16
	// Style selects the stroke. Unset leaves the firmware default.
	Style LineStyle
}

func (h *Hline) validate(m Mode) error {
	if m != ModeNormal {
		return errors.New("hline is only valid in normal mode")
	}
	if h.X1 >= h.X2 {
		return errors.New("hline start position must be left of its end position")
	}
	if h.Style != "" && !h.Style.valid() {
		return fmt.Errorf("unknown line style %q", h.Style)
	}
	return nil
}

func (h *Hline) sizeHint() int { return 64 }

// Area sets the print area for page mode. Only valid in page mode, and
// must precede the commands it applies to.
type Area struct {
	// X and Y are the origin of the print area in dots.
	X uint16
	Y uint16
	// Width and Height are the size of the print area in dots.
	Width  uint16
	Height uint16
}

func (a *Area) validate(m Mode) error {
	if m != ModePage {
		return errors.New("area is only valid in page mode")
	}
	if a.Width == 0 || a.Height == 0 {
		return errors.New("area width and height must be at least 1 dot")
	}
	return nil
}

func (a *Area) sizeHint() int { return 64 }

// Line draws a line between two points. Only valid in page mode.
type Line struct {
	X1 uint16
	Y1 uint16
	X2 uint16
	Y2 uint16
	// Style selects the stroke. Unset leaves the firmware default.
	Style LineStyle
}

func (l *Line) validate(m Mode) error {
	if m != ModePage {
		return errors.New("line is only valid in page mode")
	}
	if l.Style != "" && !l.Style.valid() {
		return fmt.Errorf("unknown line style %q", l.Style)
	}
	return nil
}

func (l *Line) sizeHint() int { return 80 }

// Rectangle draws a rectangle. Only valid in page mode.
type Rectangle struct {
	X1 uint16
	Y1 uint16
	X2 uint16
	Y2 uint16
	// Style selects the stroke. Unset leaves the firmware default.
	Style LineStyle
}

func (r *Rectangle) validate(m Mode) error {
	if m != ModePage {
		return errors.New("rectangle is only valid in page mode")
	}
	if r.Style != "" && !r.Style.valid() {
		return fmt.Errorf("unknown line style %q", r.Style)
	}
	return nil
}

func (r *Rectangle) sizeHint() int { return 80 }

// Direction sets the composition direction of a page area. Only valid in
// page mode.
type Direction struct {
	Dir PrintDirection
}

func (d *Direction) validate(m Mode) error {
	if m != ModePage {
		return errors.New("direction is only valid in page mode")
	}
	if !d.Dir.valid() {
		return fmt.Errorf("unknown print direction %q", d.Dir)
	}
	return nil
}

func (d *Direction) sizeHint() int { return 48 }

// Position sets the print position inside a page area. Only valid in page
// mode.
type Position struct {
	X uint16
	Y uint16
}

func (p *Position) validate(m Mode) error {
	if m != ModePage {
		return errors.New("position is only valid in page mode")
	}
	return nil
}

func (p *Position) sizeHint() int { return 48 }
