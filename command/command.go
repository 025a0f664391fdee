// Package command defines the ePOS-Print command set and its validation rules.
//
// A receipt is an ordered Sequence of commands. Each command maps to one
// element of the ePOS-Print XML schema; the exact element and attribute
// names are produced by the document package. The command set is closed:
// every variant is defined here, and both the validator and the encoder
// match exhaustively over it.
//
// # Modes
//
// The printer executes a document in one of two modes:
//
//   - Normal mode: commands execute one after another as received.
//   - Page mode: commands compose inside a bounded print area before the
//     page is committed.
//
// Some commands are mode-exclusive. Cut and Hline only exist in normal
// mode; Area, Line, Rectangle, Direction and Position only exist in page
// mode. Sequence.Validate enforces this before anything touches the wire.
//
// # Field legality
//
// Which optional fields a Symbol accepts depends on its SymbolType; the
// mapping lives in a per-type table (see symbol.go) rather than in control
// flow, so adding a sub-kind is a table edit. Fields that a sub-kind does
// not use resolve to the protocol's documented defaults at encode time and
// are never emitted with caller-supplied garbage.
//
// # Reference
//
// ePOS-Print XML specification:
// https://files.support.epson.com/pdf/pos/bulk/epos-print_xml_um_en_revi.pdf
package command

// Mode selects the printer execution model for a document.
type Mode int

const (
	// ModeNormal executes commands one line at a time, as received.
	ModeNormal Mode = iota
	// ModePage composes commands inside a bounded print area.
	ModePage
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModePage:
		return "page"
	default:
		return "unknown"
	}
}

// Command is one entry in a print document. The set of implementations is
// closed; the unexported methods keep it that way so the validator and the
// encoder can match every kind.
type Command interface {
	// validate reports the first protocol rule the command violates in the
	// given mode, or nil if the command is legal.
	validate(m Mode) error

	// sizeHint returns an upper bound on the encoded size of the command in
	// bytes. Used for the document size check before encoding.
	sizeHint() int
}

// Sequence is an ordered list of commands. Order is significant: the
// printer executes commands in the order received, and the encoder
// preserves it. An empty Sequence is legal and encodes to a document with
// no body commands.
type Sequence []Command

// MaxDocumentBytes caps the size of a single print document. Documents
// above the smallest receive buffer among supported TM models are rejected
// by Validate before any network attempt.
const MaxDocumentBytes = 256 << 10

// envelopeOverhead accounts for the SOAP wrapper around the command body.
const envelopeOverhead = 256

// Validate checks a single command against the protocol rules for the
// given mode.
func Validate(c Command, m Mode) error {
	return c.validate(m)
}

// Validate checks every command in the sequence against the protocol rules
// for the given mode, and the sequence as a whole against the document
// size limit. It is pure: no side effects, no network.
//
// The first violation is returned as a *ValidationError carrying the
// zero-based index of the offending command. Sequence-level violations use
// index -1.
func (s Sequence) Validate(m Mode) error {
	total := envelopeOverhead
	for i, c := range s {
		if err := c.validate(m); err != nil {
			return &ValidationError{Index: i, Rule: err.Error()}
		}
		total += c.sizeHint()
	}
	if total > MaxDocumentBytes {
		return &ValidationError{Index: -1, Rule: "document exceeds maximum print data size"}
	}
	return nil
}
