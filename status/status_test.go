package status

import (
	"errors"
	"strings"
	"testing"
)

const successReply = `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">` +
	`<s:Body><response xmlns="http://www.epson-pos.com/schemas/2011/03/epos-print" ` +
	`success="true" code="" status="252182530" battery="0"/></s:Body></s:Envelope>`

const faultReply = `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">` +
	`<s:Body><response xmlns="http://www.epson-pos.com/schemas/2011/03/epos-print" ` +
	`success="false" code="EPTR_REC_EMPTY" status="655368" battery="0"/></s:Body></s:Envelope>`

func TestParseSuccess(t *testing.T) {
	res, err := Parse(200, []byte(successReply))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !res.Success {
		t.Error("expected success")
	}
	if res.Code != "" {
		t.Errorf("unexpected code %q", res.Code)
	}
	if res.Status != 252182530 {
		t.Errorf("status bitmask not preserved: got %d", res.Status)
	}
}

func TestParseNumericSuccessAttribute(t *testing.T) {
	body := strings.Replace(successReply, `success="true"`, `success="1"`, 1)
	res, err := Parse(200, []byte(body))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !res.Success {
		t.Error("expected success for success=\"1\"")
	}
}

func TestParseFault(t *testing.T) {
	res, err := Parse(200, []byte(faultReply))
	if res == nil {
		t.Fatal("fault reply must still yield a result")
	}

	var fault *FaultError
	if !errors.As(err, &fault) {
		t.Fatalf("expected *FaultError, got %v", err)
	}
	// The firmware code is preserved verbatim, never remapped.
	if fault.Result.Code != CodeReceiptEmpty {
		t.Errorf("code mismatch: got %q, want %q", fault.Result.Code, CodeReceiptEmpty)
	}
	if !fault.Result.Printer().PaperEnd {
		t.Error("status bitmask should report paper end")
	}
	if !strings.Contains(fault.Error(), "EPTR_REC_EMPTY") {
		t.Errorf("error text should carry the code: %s", fault.Error())
	}
}

func TestParseProtocolViolations(t *testing.T) {
	tests := []struct {
		name       string
		httpStatus int
		body       string
	}{
		{"not xml", 200, "printer says no"},
		{"empty body", 200, ""},
		{"missing response element", 200, `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/"><s:Body/></s:Envelope>`},
		{"unrecognized success value", 200, strings.Replace(successReply, `success="true"`, `success="maybe"`, 1)},
		{"http error status", 500, successReply},
		{"http redirect status", 302, successReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.httpStatus, []byte(tt.body))
			if !errors.Is(err, ErrProtocolViolation) {
				t.Fatalf("expected ErrProtocolViolation, got %v", err)
			}
		})
	}
}

func TestDecodeStatusBitmask(t *testing.T) {
	got := DecodeStatus(251658262)
	want := PrinterStatus{
		PrintSuccess:     true,
		DrawerKickOut:    true,
		BatteryOffline:   true,
		BuzzerOn:         true,
		LabelWaitRemoval: true,
	}
	if got != want {
		t.Errorf("DecodeStatus mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestPrinterStatusString(t *testing.T) {
	s := PrinterStatus{CoverOpen: true, PaperEnd: true}
	got := s.String()
	if got != "cover_open|paper_end" {
		t.Errorf("String = %q", got)
	}
	if (PrinterStatus{}).String() != "" {
		t.Error("empty status should stringify empty")
	}
}
