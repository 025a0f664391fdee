// Package epos drives networked Epson receipt printers over the
// ePOS-Print XML protocol.
//
// A receipt is described as an ordered sequence of typed commands (text,
// barcodes, images, feeds, cuts). The library validates the sequence
// against the protocol's cross-field rules, renders it into the exact XML
// document the firmware expects, POSTs it to the printer's CGI endpoint
// and interprets the reply into a success or a typed fault.
//
// # Architecture
//
// The library is organized into layers:
//
//   - Printer/Job: high-level API for composing and sending receipts
//   - command: the closed command set and its validation rules
//   - document: deterministic rendering into the ePOS-Print XML schema
//   - transport: HTTP framing of the request to the printer's CGI service
//   - status: interpretation of the printer's reply envelope
//
// # Basic Usage
//
//	p, err := epos.New("http://192.168.1.194", 10*time.Second, "local_printer")
//	if err != nil {
//	    return err
//	}
//
//	job := p.Normal()
//	job.Add(
//	    &command.Text{Text: "Hello\n", Align: command.AlignCenter},
//	    &command.Feed{Line: 3},
//	    &command.Cut{Type: command.CutFeed},
//	)
//	res, err := job.Print(ctx)
//
// A Job accumulates commands and clears them after a successful print, so
// the same Job can compose the next receipt. The one-shot Printer.Print
// runs the same pipeline over a caller-owned sequence without retaining
// state; both shapes produce byte-identical documents for the same logical
// sequence.
//
// # Failure Taxonomy
//
// Every failure is a distinct, inspectable value:
//
//   - construction errors wrap ErrConfig (malformed address, bad timeout)
//   - *command.ValidationError reports the offending command's index
//     before anything touches the network
//   - transport failures wrap transport.ErrTimeout or the underlying
//     connection error; the library never retries
//   - replies that do not parse wrap status.ErrProtocolViolation and are
//     never treated as success
//   - *status.FaultError carries the firmware's fault code and status
//     bitmask verbatim
//
// # Reference
//
// ePOS-Print XML specification:
// https://files.support.epson.com/pdf/pos/bulk/epos-print_xml_um_en_revi.pdf
package epos
