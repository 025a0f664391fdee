// Package transport sends encoded print documents to a printer over the
// ePOS-Print HTTP service.
//
// The service uses a CGI-style addressing convention: every document is
// POSTed to /cgi-bin/epos/service.cgi with the target device and the
// printer-side parse timeout as query parameters. The package only frames
// and sends requests; interpreting the reply body belongs to the status
// package, and retry policy belongs to the caller.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Endpoint is the CGI path of the ePOS-Print service on every supported
// model.
const Endpoint = "/cgi-bin/epos/service.cgi"

const contentType = "text/xml; charset=utf-8"

// Some firmware revisions serve a cached reply unless the request carries
// an If-Modified-Since header from the distant past.
const ifModifiedSince = "Thu, 01 Jan 1970 00:00:00 GMT"

// ErrTimeout marks a send that exceeded the configured timeout. It is a
// transport failure, distinct from a printer-reported fault.
var ErrTimeout = errors.New("print request timed out")

// Doer executes HTTP requests. *http.Client satisfies it; tests inject
// fakes.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Config holds the immutable connection parameters for one printer.
type Config struct {
	// Endpoint is the service URL, path included.
	Endpoint *url.URL
	// DeviceID names the target device, usually "local_printer".
	DeviceID string
	// Timeout bounds each send. It is also forwarded to the printer as the
	// parse timeout query parameter, in milliseconds.
	Timeout time.Duration
}

// Client sends print documents to a single printer. It performs no
// retries.
type Client struct {
	cfg  Config
	http Doer
	log  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithDoer replaces the underlying HTTP client.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithLogger sets the logger used for wire-level debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client for the given connection parameters.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg: cfg,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: cfg.Timeout}
	}
	return c
}

// Reply is the raw outcome of a send: the HTTP status and the unparsed
// response body.
type Reply struct {
	StatusCode int
	Body       []byte
}

// Send POSTs the encoded document and returns the raw reply. The
// configured timeout bounds the whole call; exceeding it yields an error
// wrapping ErrTimeout. Connection and DNS failures are returned as-is,
// wrapped with context.
func (c *Client) Send(ctx context.Context, doc []byte) (*Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	u := *c.cfg.Endpoint
	q := url.Values{}
	q.Set("devid", c.cfg.DeviceID)
	q.Set("timeout", strconv.FormatInt(c.cfg.Timeout.Milliseconds(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("build print request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("If-Modified-Since", ifModifiedSince)

	c.log.Debug().
		Str("url", u.String()).
		Int("bytes", len(doc)).
		Msg("sending print document")
	c.log.Trace().Bytes("document", doc).Msg("print document body")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w after %s: %v", ErrTimeout, c.cfg.Timeout, err)
		}
		return nil, fmt.Errorf("send print document: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w after %s: %v", ErrTimeout, c.cfg.Timeout, err)
		}
		return nil, fmt.Errorf("read printer reply: %w", err)
	}

	c.log.Debug().
		Int("http_status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("received printer reply")
	c.log.Trace().Bytes("reply", body).Msg("printer reply body")

	return &Reply{StatusCode: resp.StatusCode, Body: body}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
