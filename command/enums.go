package command

// Align positions an element on the paper.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

func (a Align) valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

// Font selects one of the device fonts.
type Font string

const (
	FontA Font = "font_a"
	FontB Font = "font_b"
	FontC Font = "font_c"
	FontD Font = "font_d"
	FontE Font = "font_e"
)

func (f Font) valid() bool {
	switch f {
	case FontA, FontB, FontC, FontD, FontE:
		return true
	}
	return false
}

// Lang selects the character set used for a text line. The firmware
// accepts BCP 47-style tags; the constants cover the documented set but
// any non-empty tag is passed through.
type Lang string

const (
	LangDe     Lang = "de"
	LangEn     Lang = "en"
	LangEs     Lang = "es"
	LangFr     Lang = "fr"
	LangIt     Lang = "it"
	LangJa     Lang = "ja"
	LangKo     Lang = "ko"
	LangZhHans Lang = "zh-hans"
	LangZhHant Lang = "zh-hant"
)

// Color selects the print color on multi-color capable devices.
type Color string

const (
	ColorNone Color = "none"
	Color1    Color = "color_1"
	Color2    Color = "color_2"
	Color3    Color = "color_3"
	Color4    Color = "color_4"
)

func (c Color) valid() bool {
	switch c {
	case ColorNone, Color1, Color2, Color3, Color4:
		return true
	}
	return false
}

// CutType specifies how the autocutter cuts the paper.
type CutType string

const (
	// CutNoFeed cuts at the current position without feeding.
	CutNoFeed CutType = "no_feed"
	// CutFeed feeds to the cut position, then cuts. This is the standard
	// full cut at the end of a receipt.
	CutFeed CutType = "feed"
	// CutReserve prints until the cut position is reached, then cuts.
	CutReserve CutType = "reserve"
)

func (c CutType) valid() bool {
	switch c {
	case CutNoFeed, CutFeed, CutReserve:
		return true
	}
	return false
}

// FeedPos specifies a feed target on label or black-mark paper.
type FeedPos string

const (
	// FeedPeeling feeds to the peeling position.
	FeedPeeling FeedPos = "peeling"
	// FeedCutting feeds to the cutting position.
	FeedCutting FeedPos = "cutting"
	// FeedCurrentTOF feeds to the top of the current label.
	FeedCurrentTOF FeedPos = "current_tof"
	// FeedNextTOF feeds to the top of the next label.
	FeedNextTOF FeedPos = "next_tof"
)

func (p FeedPos) valid() bool {
	switch p {
	case FeedPeeling, FeedCutting, FeedCurrentTOF, FeedNextTOF:
		return true
	}
	return false
}

// LineStyle selects the stroke used by line-drawing commands.
type LineStyle string

const (
	StyleThin         LineStyle = "thin"
	StyleMedium       LineStyle = "medium"
	StyleThick        LineStyle = "thick"
	StyleThinDouble   LineStyle = "thin_double"
	StyleMediumDouble LineStyle = "medium_double"
	StyleThickDouble  LineStyle = "thick_double"
)

func (s LineStyle) valid() bool {
	switch s {
	case StyleThin, StyleMedium, StyleThick,
		StyleThinDouble, StyleMediumDouble, StyleThickDouble:
		return true
	}
	return false
}

// PrintDirection sets the composition direction inside a page area.
type PrintDirection string

const (
	DirLeftToRight PrintDirection = "left_to_right"
	DirBottomToTop PrintDirection = "bottom_to_top"
	DirRightToLeft PrintDirection = "right_to_left"
	DirTopToBottom PrintDirection = "top_to_bottom"
)

func (d PrintDirection) valid() bool {
	switch d {
	case DirLeftToRight, DirBottomToTop, DirRightToLeft, DirTopToBottom:
		return true
	}
	return false
}

// HRI positions the human readable interpretation of a 1D barcode.
type HRI string

const (
	HRINone  HRI = "none"
	HRIAbove HRI = "above"
	HRIBelow HRI = "below"
	HRIBoth  HRI = "both"
)

func (h HRI) valid() bool {
	switch h {
	case HRINone, HRIAbove, HRIBelow, HRIBoth:
		return true
	}
	return false
}

// BarcodeType identifies a 1D barcode symbology.
type BarcodeType string

const (
	BarcodeUPCA    BarcodeType = "upc_a"
	BarcodeUPCE    BarcodeType = "upc_e"
	BarcodeEAN13   BarcodeType = "ean13"
	BarcodeJAN13   BarcodeType = "jan13"
	BarcodeEAN8    BarcodeType = "ean8"
	BarcodeJAN8    BarcodeType = "jan8"
	BarcodeCode39  BarcodeType = "code39"
	BarcodeITF     BarcodeType = "itf"
	BarcodeCodabar BarcodeType = "codabar"
	BarcodeCode93  BarcodeType = "code93"
	BarcodeCode128 BarcodeType = "code128"
	BarcodeGS1128  BarcodeType = "gs1_128"

	BarcodeGS1DatabarOmnidirectional BarcodeType = "gs1_databar_omnidirectional"
	BarcodeGS1DatabarTruncated       BarcodeType = "gs1_databar_truncated"
	BarcodeGS1DatabarLimited         BarcodeType = "gs1_databar_limited"
	BarcodeGS1DatabarExpanded        BarcodeType = "gs1_databar_expanded"
)

func (b BarcodeType) valid() bool {
	switch b {
	case BarcodeUPCA, BarcodeUPCE, BarcodeEAN13, BarcodeJAN13,
		BarcodeEAN8, BarcodeJAN8, BarcodeCode39, BarcodeITF,
		BarcodeCodabar, BarcodeCode93, BarcodeCode128, BarcodeGS1128,
		BarcodeGS1DatabarOmnidirectional, BarcodeGS1DatabarTruncated,
		BarcodeGS1DatabarLimited, BarcodeGS1DatabarExpanded:
		return true
	}
	return false
}

// SymbolType identifies a 2D symbology.
type SymbolType string

const (
	SymbolPDF417          SymbolType = "pdf417_standard"
	SymbolPDF417Truncated SymbolType = "pdf417_truncated"

	SymbolQRCodeModel1 SymbolType = "qrcode_model_1"
	SymbolQRCodeModel2 SymbolType = "qrcode_model_2"

	SymbolMaxiCodeMode2 SymbolType = "maxicode_mode_2"
	SymbolMaxiCodeMode3 SymbolType = "maxicode_mode_3"
	SymbolMaxiCodeMode4 SymbolType = "maxicode_mode_4"
	SymbolMaxiCodeMode5 SymbolType = "maxicode_mode_5"
	SymbolMaxiCodeMode6 SymbolType = "maxicode_mode_6"

	SymbolGS1DatabarStacked                SymbolType = "gs1_databar_stacked"
	SymbolGS1DatabarStackedOmnidirectional SymbolType = "gs1_databar_stacked_omnidirectional"
	SymbolGS1DatabarExpandedStacked        SymbolType = "gs1_databar_expanded_stacked"

	SymbolAztecFullRange SymbolType = "azteccode_fullrange"
	SymbolAztecCompact   SymbolType = "azteccode_compact"

	SymbolDataMatrixSquare      SymbolType = "datamatrix_square"
	SymbolDataMatrixRectangle8  SymbolType = "datamatrix_rectangle_8"
	SymbolDataMatrixRectangle12 SymbolType = "datamatrix_rectangle_12"
	SymbolDataMatrixRectangle16 SymbolType = "datamatrix_rectangle_16"
)

// Level is an error correction level for a 2D symbol.
//
// PDF417 uses Level0 through Level8, QR codes use LevelL through LevelH,
// and Aztec codes take a plain integer between 5 and 95 (e.g. Level("23")).
// LevelDefault asks the firmware for its documented default.
type Level string

const (
	Level0 Level = "level_0"
	Level1 Level = "level_1"
	Level2 Level = "level_2"
	Level3 Level = "level_3"
	Level4 Level = "level_4"
	Level5 Level = "level_5"
	Level6 Level = "level_6"
	Level7 Level = "level_7"
	Level8 Level = "level_8"

	LevelL Level = "level_l"
	LevelM Level = "level_m"
	LevelQ Level = "level_q"
	LevelH Level = "level_h"

	LevelDefault Level = "default"
)
