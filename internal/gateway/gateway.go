// Package gateway wraps outbound HTTP calls to the console API. It attaches
// the current session token to every request and tears the session down when
// the server rejects the credential.
package gateway

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/zlzmm5188/fryctl/internal/session"
)

// DefaultTimeout is the network-level deadline applied to every call unless
// overridden. A timed-out call is a transport failure, not a credential
// rejection, and never touches the session.
const DefaultTimeout = 10 * time.Second

// Navigator is the routing collaborator notified when a credential rejection
// forces the session back to the login entry point.
type Navigator interface {
	NavigateToLogin()
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func()

func (f NavigatorFunc) NavigateToLogin() { f() }

// Options configures gateway construction.
type Options struct {
	// Timeout is the per-call network deadline. Zero means DefaultTimeout.
	Timeout time.Duration
	// Base is the underlying round tripper. Nil means http.DefaultTransport.
	Base http.RoundTripper
	// Logger receives dispatch and rejection events. Zero value is fine.
	Logger zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithTimeout overrides the network deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithBase overrides the underlying round tripper.
func WithBase(rt http.RoundTripper) Option {
	return func(o *Options) { o.Base = rt }
}

// WithLogger sets the gateway logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

// Transport is an http.RoundTripper that authorizes every request from the
// session store and reacts to credential rejections. The token is read at
// dispatch time, so a store mutation between building and sending a request
// is reflected in the outgoing header.
type Transport struct {
	store *session.Store
	nav   Navigator
	base  http.RoundTripper
	log   zerolog.Logger
}

var _ http.RoundTripper = (*Transport)(nil)

// NewTransport creates a Transport bound to the given store and navigator.
func NewTransport(store *session.Store, nav Navigator, optFns ...Option) *Transport {
	opts := Options{Logger: zerolog.Nop()}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Base == nil {
		opts.Base = http.DefaultTransport
	}
	return &Transport{
		store: store,
		nav:   nav,
		base:  opts.Base,
		log:   opts.Logger,
	}
}

// NewHTTPClient builds an *http.Client whose transport is a gateway
// Transport and whose timeout is the configured network deadline.
func NewHTTPClient(store *session.Store, nav Navigator, optFns ...Option) *http.Client {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Transport: NewTransport(store, nav, optFns...),
		Timeout:   timeout,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("X-Request-Id", uuid.NewString())

	snap := t.store.Snapshot()
	if snap.Token != "" {
		token := &oauth2.Token{AccessToken: snap.Token, TokenType: "Bearer"}
		token.SetAuthHeader(out)
	}

	t.log.Debug().
		Str("method", out.Method).
		Str("path", out.URL.Path).
		Bool("authenticated", snap.Token != "").
		Msg("dispatching request")

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		// Transport failure: surface it without touching the session.
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.log.Warn().
			Str("method", out.Method).
			Str("path", out.URL.Path).
			Msg("credential rejected, clearing session")
		if err := t.store.Logout(); err != nil {
			t.log.Error().Err(err).Msg("failed to persist cleared session")
		}
		t.nav.NavigateToLogin()
	}

	return resp, nil
}
