package epos_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fearful-symmetry/epos-go"
	"github.com/fearful-symmetry/epos-go/command"
	"github.com/fearful-symmetry/epos-go/status"
	"github.com/fearful-symmetry/epos-go/transport"
)

const successReply = `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">` +
	`<s:Body><response xmlns="http://www.epson-pos.com/schemas/2011/03/epos-print" ` +
	`success="true" code="" status="2" battery="0"/></s:Body></s:Envelope>`

const coverOpenReply = `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">` +
	`<s:Body><response xmlns="http://www.epson-pos.com/schemas/2011/03/epos-print" ` +
	`success="false" code="EPTR_COVER_OPEN" status="32" battery="0"/></s:Body></s:Envelope>`

// fakePrinter records every request it serves.
type fakePrinter struct {
	mu      sync.Mutex
	reply   string
	queries []url.Values
	bodies  [][]byte
}

func (f *fakePrinter) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.queries = append(f.queries, r.URL.Query())
		f.bodies = append(f.bodies, body)
		f.mu.Unlock()
		_, _ = w.Write([]byte(f.reply))
	})
}

func (f *fakePrinter) requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bodies)
}

func TestNewConfigurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		timeout  time.Duration
		deviceID string
	}{
		{"unparseable address", "http://[::1", 10 * time.Second, "local_printer"},
		{"bad scheme", "ftp://192.168.1.194", 10 * time.Second, "local_printer"},
		{"no host", "http://", 10 * time.Second, "local_printer"},
		{"zero timeout", "http://192.168.1.194", 0, "local_printer"},
		{"negative timeout", "http://192.168.1.194", -time.Second, "local_printer"},
		{"empty device id", "http://192.168.1.194", 10 * time.Second, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := epos.New(tt.address, tt.timeout, tt.deviceID)
			require.Error(t, err)
			assert.ErrorIs(t, err, epos.ErrConfig)
		})
	}
}

func TestNewJoinsServicePath(t *testing.T) {
	p, err := epos.New("http://192.168.1.194", 10*time.Second, "local_printer")
	require.NoError(t, err)
	assert.Equal(t, "http://192.168.1.194/cgi-bin/epos/service.cgi", p.Endpoint().String())
	assert.Equal(t, "local_printer", p.DeviceID())
	assert.Equal(t, 10*time.Second, p.Timeout())
}

// The end-to-end shape from the protocol documentation: two ordered body
// elements, devid and timeout on the query string, success reply.
func TestJobPrintEndToEnd(t *testing.T) {
	fake := &fakePrinter{reply: successReply}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	p, err := epos.New(srv.URL, 10*time.Second, "local_printer")
	require.NoError(t, err)

	job := p.Normal()
	job.Add(
		&command.Text{Text: "Hello\n"},
		&command.Cut{Type: command.CutFeed},
	)
	require.Equal(t, 2, job.Len())

	res, err := job.Print(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotEqual(t, res.JobID.String(), "00000000-0000-0000-0000-000000000000")

	require.Equal(t, 1, fake.requests())
	assert.Equal(t, "local_printer", fake.queries[0].Get("devid"))
	assert.Equal(t, "10000", fake.queries[0].Get("timeout"))

	want := `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/"><s:Body>` +
		`<epos-print xmlns="http://www.epson-pos.com/schemas/2011/03/epos-print">` +
		"<text>Hello\n</text>\n<cut type=\"feed\"/>" +
		`</epos-print></s:Body></s:Envelope>`
	assert.Equal(t, want, string(fake.bodies[0]))

	// Success flushes the buffer so the job can compose the next receipt.
	assert.Equal(t, 0, job.Len())
}

func TestJobAndOneShotProduceIdenticalDocuments(t *testing.T) {
	fake := &fakePrinter{reply: successReply}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	p, err := epos.New(srv.URL, 10*time.Second, "local_printer")
	require.NoError(t, err)

	seq := command.Sequence{
		&command.Text{Text: "Receipt\n", Align: command.AlignCenter},
		&command.Symbol{Data: "HELP ME", Type: command.SymbolMaxiCodeMode4},
		&command.Feed{Line: 5},
		&command.Cut{Type: command.CutFeed},
	}

	_, err = p.Print(context.Background(), seq, command.ModeNormal)
	require.NoError(t, err)

	job := p.Normal()
	job.Add(seq...)
	_, err = job.Print(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, fake.requests())
	assert.Equal(t, fake.bodies[0], fake.bodies[1],
		"interaction shape must not change the encoded document")
}

func TestJobPrintKeepsBufferOnFault(t *testing.T) {
	fake := &fakePrinter{reply: coverOpenReply}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	p, err := epos.New(srv.URL, 10*time.Second, "local_printer")
	require.NoError(t, err)

	job := p.Normal()
	job.Add(&command.Text{Text: "Hello\n"}, &command.Cut{Type: command.CutFeed})

	res, err := job.Print(context.Background())
	require.Error(t, err)

	var fault *status.FaultError
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, status.CodeCoverOpen, fault.Result.Code)
	assert.True(t, fault.Result.Printer().CoverOpen)
	require.NotNil(t, res)
	assert.False(t, res.Success)

	// The receipt was not printed; the caller may fix the printer and retry.
	assert.Equal(t, 2, job.Len())
}

func TestValidationFailsBeforeNetwork(t *testing.T) {
	fake := &fakePrinter{reply: successReply}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	p, err := epos.New(srv.URL, 10*time.Second, "local_printer")
	require.NoError(t, err)

	seq := command.Sequence{
		&command.Text{Text: "ok\n"},
		&command.Symbol{Data: "x", Type: command.SymbolQRCodeModel2}, // missing level
	}
	_, err = p.Print(context.Background(), seq, command.ModeNormal)

	var verr *command.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 1, verr.Index)
	assert.Equal(t, 0, fake.requests(), "invalid sequences must never reach the printer")
}

func TestEmptySequencePrintsMinimalEnvelope(t *testing.T) {
	fake := &fakePrinter{reply: successReply}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	p, err := epos.New(srv.URL, 10*time.Second, "local_printer")
	require.NoError(t, err)

	res, err := p.Print(context.Background(), nil, command.ModeNormal)
	require.NoError(t, err)
	assert.True(t, res.Success)

	want := `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/"><s:Body>` +
		`<epos-print xmlns="http://www.epson-pos.com/schemas/2011/03/epos-print">` +
		`</epos-print></s:Body></s:Envelope>`
	require.Equal(t, 1, fake.requests())
	assert.Equal(t, want, string(fake.bodies[0]))
}

func TestProtocolViolationIsNeverSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>totally not epos</html>"))
	}))
	defer srv.Close()

	p, err := epos.New(srv.URL, 10*time.Second, "local_printer")
	require.NoError(t, err)

	res, err := p.Print(context.Background(), command.Sequence{&command.Cut{Type: command.CutFeed}}, command.ModeNormal)
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrProtocolViolation)
	assert.Nil(t, res)
}

func TestPrintTimeoutIsTransportError(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	p, err := epos.New(srv.URL, 50*time.Millisecond, "local_printer")
	require.NoError(t, err)

	_, err = p.Print(context.Background(), command.Sequence{&command.Cut{Type: command.CutFeed}}, command.ModeNormal)
	require.Error(t, err)
	assert.ErrorIs(t, err, transport.ErrTimeout)

	var fault *status.FaultError
	assert.False(t, errors.As(err, &fault), "a timeout is not a printer fault")
}

func TestJobIDRotatesAfterSuccessfulFlush(t *testing.T) {
	fake := &fakePrinter{reply: successReply}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	p, err := epos.New(srv.URL, 10*time.Second, "local_printer")
	require.NoError(t, err)

	job := p.Normal()
	first := job.ID()

	job.Add(&command.Cut{Type: command.CutFeed})
	res, err := job.Print(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, res.JobID, "result correlates to the job that printed it")
	assert.NotEqual(t, first, job.ID(), "next receipt gets a fresh id")
}

func TestJobReset(t *testing.T) {
	p, err := epos.New("http://192.168.1.194", 10*time.Second, "local_printer")
	require.NoError(t, err)

	job := p.Page()
	job.Add(&command.Area{Width: 500, Height: 500}, &command.Text{Text: "x\n"})
	require.Equal(t, 2, job.Len())

	job.Reset()
	assert.Equal(t, 0, job.Len())
	assert.Equal(t, command.ModePage, job.Mode())
}
