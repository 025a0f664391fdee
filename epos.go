package epos

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/fearful-symmetry/epos-go/transport"
)

// ErrConfig marks an invalid connection parameter caught at construction.
// Configuration errors are fatal to the Printer being built and are never
// retried.
var ErrConfig = errors.New("invalid printer configuration")

// Printer is a handle to one ePOS-Print device. Its connection parameters
// are fixed at construction and never mutated afterward, so a Printer is
// safe for concurrent use; each in-flight print job should use its own Job
// (or the one-shot Print).
type Printer struct {
	endpoint *url.URL
	deviceID string
	timeout  time.Duration
	log      zerolog.Logger
	doer     transport.Doer
	tr       *transport.Client
}

// Option configures a Printer at construction.
type Option func(*Printer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Printer) { p.log = l }
}

// WithHTTPClient replaces the HTTP client used to reach the printer.
// Useful for tests and for callers that manage their own pooling or TLS
// settings.
func WithHTTPClient(d transport.Doer) Option {
	return func(p *Printer) { p.doer = d }
}

// New creates a handle to the printer at the given address.
//
// The address is the base URL of the device, e.g. "http://192.168.1.194";
// the ePOS-Print CGI path is appended internally. On most models deviceID
// is "local_printer". The timeout bounds each network call and is also
// forwarded to the printer as its parse timeout.
//
// Malformed parameters fail fast with an error wrapping ErrConfig.
func New(address string, timeout time.Duration, deviceID string, opts ...Option) (*Printer, error) {
	u, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("%w: parse address %q: %v", ErrConfig, address, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: address %q must use http or https", ErrConfig, address)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: address %q has no host", ErrConfig, address)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %s", ErrConfig, timeout)
	}
	if deviceID == "" {
		return nil, fmt.Errorf("%w: device id must not be empty", ErrConfig)
	}

	endpoint := &url.URL{Scheme: u.Scheme, Host: u.Host, Path: transport.Endpoint}

	p := &Printer{
		endpoint: endpoint,
		deviceID: deviceID,
		timeout:  timeout,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With().
		Str("printer", endpoint.Host).
		Str("device", deviceID).
		Logger()

	trOpts := []transport.Option{transport.WithLogger(p.log)}
	if p.doer != nil {
		trOpts = append(trOpts, transport.WithDoer(p.doer))
	}
	p.tr = transport.New(transport.Config{
		Endpoint: endpoint,
		DeviceID: deviceID,
		Timeout:  timeout,
	}, trOpts...)

	return p, nil
}

// Endpoint returns the full service URL the printer is addressed at.
func (p *Printer) Endpoint() *url.URL {
	u := *p.endpoint
	return &u
}

// DeviceID returns the configured device identifier.
func (p *Printer) DeviceID() string { return p.deviceID }

// Timeout returns the configured request timeout.
func (p *Printer) Timeout() time.Duration { return p.timeout }
