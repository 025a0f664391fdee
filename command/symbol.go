package command

import (
	"errors"
	"fmt"
	"strconv"
)

// Symbol prints a 2D symbol. Which of Level, Width, Height and Size apply
// depends on Type; see the per-type table below.
type Symbol struct {
	// Data is the symbol content.
	Data string
	// Type is the symbology; required.
	Type SymbolType
	// Level is the error correction level. Required for QR codes, optional
	// for PDF417 and Aztec, and not accepted by the other symbologies.
	Level Level
	// Width is the module width in dots. The valid range depends on Type;
	// zero resolves to the documented default.
	Width uint8
	// Height is the module height in dots. Only settable for PDF417; zero
	// resolves to the documented default.
	Height uint8
	// Size is symbology specific: the number of code words per row for
	// PDF417, or the maximum width for Expanded Stacked GS1 DataBar.
	Size uint8
	// Align positions the symbol. Only honored in normal mode.
	Align Align
	// Rotate prints the symbol rotated 90 degrees.
	Rotate bool
}

// levelRule classifies how a symbology treats the level attribute.
type levelRule int

const (
	levelForbidden levelRule = iota
	levelRequiredQR           // level_l through level_h, mandatory
	levelOptionalPDF          // level_0 through level_8
	levelOptionalAztec        // integer 5 through 95
)

// dim describes one numeric attribute of a symbology: its valid range and
// the documented default emitted when the caller leaves it unset. The zero
// dim marks an attribute the symbology does not accept. fixed attributes
// ignore caller values entirely and always emit the default.
type dim struct {
	min, max, def uint8
	fixed         bool
}

func (d dim) used() bool { return d.max != 0 }

type symbolSpec struct {
	level  levelRule
	width  dim
	height dim
	size   dim
}

// symbolSpecs maps each symbology to its field legality and defaults, per
// the ePOS-Print XML reference. MaxiCode width and height are ignored by
// the firmware; the documented defaults keep the attributes schema-valid.
var symbolSpecs = map[SymbolType]symbolSpec{
	SymbolPDF417:          {level: levelOptionalPDF, width: dim{2, 8, 3, false}, height: dim{2, 8, 3, false}, size: dim{1, 30, 0, false}},
	SymbolPDF417Truncated: {level: levelOptionalPDF, width: dim{2, 8, 3, false}, height: dim{2, 8, 3, false}, size: dim{1, 30, 0, false}},

	SymbolQRCodeModel1: {level: levelRequiredQR, width: dim{1, 16, 3, false}},
	SymbolQRCodeModel2: {level: levelRequiredQR, width: dim{1, 16, 3, false}},

	SymbolMaxiCodeMode2: {level: levelForbidden, width: dim{0, 255, 3, true}, height: dim{0, 255, 3, true}},
	SymbolMaxiCodeMode3: {level: levelForbidden, width: dim{0, 255, 3, true}, height: dim{0, 255, 3, true}},
	SymbolMaxiCodeMode4: {level: levelForbidden, width: dim{0, 255, 3, true}, height: dim{0, 255, 3, true}},
	SymbolMaxiCodeMode5: {level: levelForbidden, width: dim{0, 255, 3, true}, height: dim{0, 255, 3, true}},
	SymbolMaxiCodeMode6: {level: levelForbidden, width: dim{0, 255, 3, true}, height: dim{0, 255, 3, true}},

	SymbolGS1DatabarStacked:                {level: levelForbidden, width: dim{2, 8, 2, false}},
	SymbolGS1DatabarStackedOmnidirectional: {level: levelForbidden, width: dim{2, 8, 2, false}},
	SymbolGS1DatabarExpandedStacked:        {level: levelForbidden, width: dim{2, 8, 2, false}, size: dim{106, 255, 0, false}},

	SymbolAztecFullRange: {level: levelOptionalAztec, width: dim{2, 16, 3, false}},
	SymbolAztecCompact:   {level: levelOptionalAztec, width: dim{2, 16, 3, false}},

	SymbolDataMatrixSquare:      {level: levelForbidden, width: dim{2, 16, 3, false}},
	SymbolDataMatrixRectangle8:  {level: levelForbidden, width: dim{2, 16, 3, false}},
	SymbolDataMatrixRectangle12: {level: levelForbidden, width: dim{2, 16, 3, false}},
	SymbolDataMatrixRectangle16: {level: levelForbidden, width: dim{2, 16, 3, false}},
}

func (s *Symbol) validate(Mode) error {
	spec, ok := symbolSpecs[s.Type]
	if !ok {
		return fmt.Errorf("unknown symbol type %q", s.Type)
	}
	if s.Data == "" {
		return errors.New("symbol data must not be empty")
	}
	if err := spec.checkLevel(s.Type, s.Level); err != nil {
		return err
	}
	if err := spec.width.check("width", s.Type, s.Width); err != nil {
		return err
	}
	if err := spec.height.check("height", s.Type, s.Height); err != nil {
		return err
	}
	if err := spec.size.check("size", s.Type, s.Size); err != nil {
		return err
	}
	if s.Align != "" && !s.Align.valid() {
		return fmt.Errorf("unknown alignment %q", s.Align)
	}
	return nil
}

func (s *Symbol) sizeHint() int { return len(s.Data) + 160 }

// Resolved returns a copy of the symbol with the per-type documented
// defaults applied to Level, Width and Height, ready for encoding. It
// assumes the symbol has already passed validation.
func (s *Symbol) Resolved() Symbol {
	out := *s
	spec, ok := symbolSpecs[s.Type]
	if !ok {
		return out
	}
	switch spec.level {
	case levelForbidden:
		out.Level = ""
	case levelOptionalPDF, levelOptionalAztec:
		if out.Level == "" {
			out.Level = LevelDefault
		}
	}
	out.Width = spec.width.resolve(s.Width)
	out.Height = spec.height.resolve(s.Height)
	if !spec.size.used() {
		out.Size = 0
	}
	return out
}

func (spec symbolSpec) checkLevel(t SymbolType, l Level) error {
	switch spec.level {
	case levelForbidden:
		if l != "" {
			return fmt.Errorf("%s does not take an error correction level", t)
		}
	case levelRequiredQR:
		switch l {
		case LevelL, LevelM, LevelQ, LevelH:
		case "":
			return fmt.Errorf("%s requires an error correction level (level_l through level_h)", t)
		default:
			return fmt.Errorf("%s error correction level must be level_l through level_h, got %q", t, l)
		}
	case levelOptionalPDF:
		switch l {
		case "", LevelDefault,
			Level0, Level1, Level2, Level3, Level4, Level5, Level6, Level7, Level8:
		default:
			return fmt.Errorf("%s error correction level must be level_0 through level_8, got %q", t, l)
		}
	case levelOptionalAztec:
		if l == "" || l == LevelDefault {
			return nil
		}
		n, err := strconv.Atoi(string(l))
		if err != nil || n < 5 || n > 95 {
			return fmt.Errorf("%s error correction level must be an integer between 5 and 95, got %q", t, l)
		}
	}
	return nil
}

func (d dim) check(name string, t SymbolType, v uint8) error {
	if v == 0 {
		return nil
	}
	if !d.used() {
		return fmt.Errorf("%s does not take a %s", t, name)
	}
	if d.fixed {
		// Caller value is ignored by the firmware; the default is emitted
		// instead.
		return nil
	}
	if v < d.min || v > d.max {
		return fmt.Errorf("%s %s must be between %d and %d", t, name, d.min, d.max)
	}
	return nil
}

func (d dim) resolve(v uint8) uint8 {
	if !d.used() {
		return 0
	}
	if d.fixed || v == 0 {
		return d.def
	}
	return v
}
