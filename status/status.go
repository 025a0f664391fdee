// Package status interprets the reply envelope returned by an ePOS-Print
// capable printer.
//
// The printer answers every print request with a SOAP envelope carrying a
// single response element:
//
//	<response xmlns="..." success="true" code="" status="252182530" battery="0"/>
//
// Parse turns that reply into a Result. A reply that does not match the
// envelope is a protocol violation and is never treated as success. A
// well-formed reply with success="false" carries a fault code (see the
// Code constants) and a 32-bit status bitmask decoded by PrinterStatus.
package status

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Fault codes reported by the firmware in the response code attribute.
// The code is preserved verbatim on Result; these constants cover the
// documented set so callers can branch without string literals.
const (
	CodeENPCTimeout      = "EX_ENPC_TIMEOUT"
	CodeBadPort          = "EX_BADPORT"
	CodeTimeout          = "EX_TIMEOUT"
	CodeSpooler          = "EX_SPOOLER"
	CodeBatteryLow       = "EPTR_BATTERY_LOW"
	CodeAutomatical      = "EPTR_AUTOMATICAL"
	CodeCoverOpen        = "EPTR_COVER_OPEN"
	CodeCutter           = "EPTR_CUTTER"
	CodeMechanical       = "EPTR_MECHANICAL"
	CodeReceiptEmpty     = "EPTR_REC_EMPTY"
	CodeUnrecoverable    = "EPTR_UNRECOVERABLE"
	CodeSchemaError      = "SchemaError"
	CodeDeviceNotFound   = "DeviceNotFound"
	CodePrintSystemError = "PrintSystemError"
	CodeTooManyRequests  = "TooManyRequests"
	CodeRequestTooLarge  = "RequestEntityTooLarge"
	CodeJobNotFound      = "JobNotFound"
	CodeJobPrinting      = "Printing"
	CodeJobSpooling      = "JobSpooling"
)

// ErrProtocolViolation marks a reply that does not parse as the expected
// response envelope. Callers must treat it as failure; the document may or
// may not have printed.
var ErrProtocolViolation = errors.New("malformed printer reply")

// Result is the outcome of one print request.
type Result struct {
	// JobID identifies the print job the result belongs to.
	JobID uuid.UUID
	// Success reports whether the document printed completely.
	Success bool
	// Code is the firmware fault code, verbatim. Empty on success.
	Code string
	// Status is the raw 32-bit printer status bitmask. Decode with
	// Printer.
	Status uint32
	// Battery is the battery status code, on battery-powered models.
	Battery uint32
}

// Printer decodes the status bitmask into named conditions.
func (r *Result) Printer() PrinterStatus {
	return DecodeStatus(r.Status)
}

// FaultError is returned when a well-formed reply reports a device-side
// failure. The firmware code and status bitmask are preserved on Result so
// callers can branch on the exact condition.
type FaultError struct {
	Result *Result
}

func (e *FaultError) Error() string {
	ps := e.Result.Printer()
	if s := ps.String(); s != "" {
		return fmt.Sprintf("printer fault %s (%s)", e.Result.Code, s)
	}
	return "printer fault " + e.Result.Code
}

// The reply envelope. Field matching is by local name, so the s: prefix
// and the response namespace are accepted whatever prefix the firmware
// chooses.
type replyEnvelope struct {
	XMLName  xml.Name       `xml:"Envelope"`
	Response *replyResponse `xml:"Body>response"`
}

type replyResponse struct {
	Success string `xml:"success,attr"`
	Code    string `xml:"code,attr"`
	Status  uint32 `xml:"status,attr"`
	Battery uint32 `xml:"battery,attr"`
}

// Parse interprets the raw reply body and HTTP status of a print request.
//
// A 2xx status with a success="true" response yields a successful Result.
// A well-formed reply with success="false" yields the Result and a
// *FaultError. Anything else, including replies that fail to parse and
// success values that are neither true nor false, is reported as a
// protocol violation and never as success.
func Parse(httpStatus int, body []byte) (*Result, error) {
	if httpStatus < 200 || httpStatus > 299 {
		return nil, fmt.Errorf("%w: unexpected HTTP status %d", ErrProtocolViolation, httpStatus)
	}

	var env replyEnvelope
	if err := xml.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProtocolViolation, err)
	}
	if env.Response == nil {
		return nil, fmt.Errorf("%w: reply contains no response element", ErrProtocolViolation)
	}

	res := &Result{
		Code:    env.Response.Code,
		Status:  env.Response.Status,
		Battery: env.Response.Battery,
	}
	// Firmware revisions differ on the boolean spelling.
	switch env.Response.Success {
	case "true", "1":
		res.Success = true
	case "false", "0":
		res.Success = false
	default:
		return nil, fmt.Errorf("%w: unrecognized success value %q", ErrProtocolViolation, env.Response.Success)
	}
	if !res.Success {
		return res, &FaultError{Result: res}
	}
	return res, nil
}

// PrinterStatus is the decoded form of the 32-bit status bitmask included
// in every reply. Some bits are model dependent and shared between
// conditions, mirroring the vendor SDK constants.
type PrinterStatus struct {
	// NoResponse is set when the TM printer did not answer.
	NoResponse bool
	// PrintSuccess is set when printing completed.
	PrintSuccess bool
	// DrawerKickOut reports the third pin of the drawer kick-out connector.
	DrawerKickOut bool
	// BatteryOffline reports offline status caused by remaining battery.
	// Shares a bit with DrawerKickOut; which applies is model dependent.
	BatteryOffline bool
	// Offline is set when the printer is offline.
	Offline bool
	// CoverOpen is set when the cover is open.
	CoverOpen bool
	// PaperFeed is set while paper is fed by the feed switch.
	PaperFeed bool
	// WaitingOnline is set while the printer waits to be brought back
	// online.
	WaitingOnline bool
	// FeedSwitchPressed is set while the paper feed switch is held.
	FeedSwitchPressed bool
	// MechanicalError is set on a mechanical error.
	MechanicalError bool
	// AutocutterError is set on an autocutter error.
	AutocutterError bool
	// Unrecoverable is set on an unrecoverable error.
	Unrecoverable bool
	// Recoverable is set on an automatically recoverable error.
	Recoverable bool
	// PaperNearEnd is set when the roll paper near-end sensor reports no
	// paper.
	PaperNearEnd bool
	// PaperEnd is set when the roll paper end sensor reports no paper.
	PaperEnd bool
	// BuzzerOn is set while a buzzer sounds, on applicable devices. Shares
	// a bit with LabelWaitRemoval.
	BuzzerOn bool
	// LabelWaitRemoval is set while the printer waits for a label to be
	// removed, on applicable devices.
	LabelWaitRemoval bool
	// NoLabel is set when the label peeling sensor reports no paper.
	NoLabel bool
	// SpoolerStopped is set when the spooler has stopped.
	SpoolerStopped bool
}

// DecodeStatus expands the raw bitmask into named conditions.
func DecodeStatus(v uint32) PrinterStatus {
	return PrinterStatus{
		NoResponse:        v&0x00000001 != 0,
		PrintSuccess:      v&0x00000002 != 0,
		DrawerKickOut:     v&0x00000004 != 0,
		BatteryOffline:    v&0x00000004 != 0,
		Offline:           v&0x00000008 != 0,
		CoverOpen:         v&0x00000020 != 0,
		PaperFeed:         v&0x00000040 != 0,
		WaitingOnline:     v&0x00000100 != 0,
		FeedSwitchPressed: v&0x00000200 != 0,
		MechanicalError:   v&0x00000400 != 0,
		AutocutterError:   v&0x00000800 != 0,
		Unrecoverable:     v&0x00002000 != 0,
		Recoverable:       v&0x00004000 != 0,
		PaperNearEnd:      v&0x00020000 != 0,
		PaperEnd:          v&0x00080000 != 0,
		BuzzerOn:          v&0x01000000 != 0,
		LabelWaitRemoval:  v&0x01000000 != 0,
		NoLabel:           v&0x40000000 != 0,
		SpoolerStopped:    v&0x80000000 != 0,
	}
}

// String lists the set conditions, pipe separated, in bitmask order.
func (s PrinterStatus) String() string {
	flags := []struct {
		set  bool
		name string
	}{
		{s.NoResponse, "no_response"},
		{s.PrintSuccess, "print_success"},
		{s.DrawerKickOut, "drawer_kick_out"},
		{s.BatteryOffline, "battery_offline"},
		{s.Offline, "offline"},
		{s.CoverOpen, "cover_open"},
		{s.PaperFeed, "paper_feed"},
		{s.WaitingOnline, "waiting_online"},
		{s.FeedSwitchPressed, "feed_switch_pressed"},
		{s.MechanicalError, "mechanical_error"},
		{s.AutocutterError, "autocutter_error"},
		{s.Unrecoverable, "unrecoverable"},
		{s.Recoverable, "recoverable"},
		{s.PaperNearEnd, "paper_near_end"},
		{s.PaperEnd, "paper_end"},
		{s.BuzzerOn, "buzzer_on"},
		{s.LabelWaitRemoval, "label_wait_removal"},
		{s.NoLabel, "no_label"},
		{s.SpoolerStopped, "spooler_stopped"},
	}
	var parts []string
	for _, f := range flags {
		if f.set {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}
