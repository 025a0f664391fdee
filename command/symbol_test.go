package command

import "testing"

func TestSymbolResolvedDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Symbol
		want Symbol
	}{
		{
			// The firmware ignores MaxiCode dimensions, but the documented
			// defaults must still be emitted rather than omitted or zero.
			name: "maxicode fills documented dimensions",
			in:   Symbol{Data: "HELP ME", Type: SymbolMaxiCodeMode4},
			want: Symbol{Data: "HELP ME", Type: SymbolMaxiCodeMode4, Width: 3, Height: 3},
		},
		{
			name: "maxicode overrides caller dimensions",
			in:   Symbol{Data: "x", Type: SymbolMaxiCodeMode2, Width: 9, Height: 1},
			want: Symbol{Data: "x", Type: SymbolMaxiCodeMode2, Width: 3, Height: 3},
		},
		{
			name: "qr keeps caller width",
			in:   Symbol{Data: "x", Type: SymbolQRCodeModel2, Level: LevelM, Width: 8},
			want: Symbol{Data: "x", Type: SymbolQRCodeModel2, Level: LevelM, Width: 8},
		},
		{
			name: "qr defaults width",
			in:   Symbol{Data: "x", Type: SymbolQRCodeModel2, Level: LevelH},
			want: Symbol{Data: "x", Type: SymbolQRCodeModel2, Level: LevelH, Width: 3},
		},
		{
			name: "pdf417 defaults level and dimensions",
			in:   Symbol{Data: "x", Type: SymbolPDF417},
			want: Symbol{Data: "x", Type: SymbolPDF417, Level: LevelDefault, Width: 3, Height: 3},
		},
		{
			name: "gs1 stacked defaults width only",
			in:   Symbol{Data: "2112345678900", Type: SymbolGS1DatabarStacked},
			want: Symbol{Data: "2112345678900", Type: SymbolGS1DatabarStacked, Width: 2},
		},
		{
			name: "aztec defaults level",
			in:   Symbol{Data: "x", Type: SymbolAztecFullRange},
			want: Symbol{Data: "x", Type: SymbolAztecFullRange, Level: LevelDefault, Width: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Resolved()
			if got != tt.want {
				t.Errorf("Resolved mismatch:\n got %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestSymbolSpecsCoverEveryType(t *testing.T) {
	all := []SymbolType{
		SymbolPDF417, SymbolPDF417Truncated,
		SymbolQRCodeModel1, SymbolQRCodeModel2,
		SymbolMaxiCodeMode2, SymbolMaxiCodeMode3, SymbolMaxiCodeMode4,
		SymbolMaxiCodeMode5, SymbolMaxiCodeMode6,
		SymbolGS1DatabarStacked, SymbolGS1DatabarStackedOmnidirectional,
		SymbolGS1DatabarExpandedStacked,
		SymbolAztecFullRange, SymbolAztecCompact,
		SymbolDataMatrixSquare, SymbolDataMatrixRectangle8,
		SymbolDataMatrixRectangle12, SymbolDataMatrixRectangle16,
	}
	for _, st := range all {
		if _, ok := symbolSpecs[st]; !ok {
			t.Errorf("no legality table entry for %s", st)
		}
	}
	if len(symbolSpecs) != len(all) {
		t.Errorf("table has %d entries, want %d", len(symbolSpecs), len(all))
	}
}
