// Package client wires the session store, gateway and SDK together for the
// CLI. A Provider builds each collaborator lazily and exactly once per
// invocation.
package client

import (
	"net/http"
	"sync"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/zlzmm5188/fryctl/internal/gateway"
	"github.com/zlzmm5188/fryctl/internal/session"
	"github.com/zlzmm5188/fryctl/pkg/sdk"
)

// Provider yields the session store and authenticated HTTP/SDK clients
// backed by the on-disk session slot.
type Provider struct {
	serverURL string
	timeout   time.Duration
	log       zerolog.Logger

	storeOnce sync.Once
	store     *session.Store
	storeErr  error

	httpOnce sync.Once
	httpCli  *http.Client

	sdkOnce   sync.Once
	sdkClient *sdk.Client
	sdkErr    error
}

// NewProvider constructs a Provider bound to the given server URL.
func NewProvider(serverURL string, timeout time.Duration, log zerolog.Logger) *Provider {
	return &Provider{serverURL: serverURL, timeout: timeout, log: log}
}

// Store returns the session store, rehydrated from ~/.fryctl/session.json.
func (p *Provider) Store() (*session.Store, error) {
	p.storeOnce.Do(func() {
		slot, err := session.NewFileSlot()
		if err != nil {
			p.storeErr = err
			return
		}
		p.store = session.NewStore(slot)
	})
	return p.store, p.storeErr
}

// HTTPClient returns the gateway-backed HTTP client. Every request it sends
// carries the current session token; a credential rejection clears the
// session and tells the user to log in again.
func (p *Provider) HTTPClient() (*http.Client, error) {
	store, err := p.Store()
	if err != nil {
		return nil, err
	}
	p.httpOnce.Do(func() {
		p.httpCli = gateway.NewHTTPClient(store, loginNavigator{},
			gateway.WithTimeout(p.timeout),
			gateway.WithLogger(p.log),
		)
	})
	return p.httpCli, nil
}

// SDKClient returns an SDK client backed by HTTPClient.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	p.sdkOnce.Do(func() {
		httpClient, err := p.HTTPClient()
		if err != nil {
			p.sdkErr = err
			return
		}
		p.sdkClient = sdk.NewClient(p.serverURL, sdk.WithHTTPClient(httpClient))
	})
	return p.sdkClient, p.sdkErr
}

// loginNavigator is the CLI's login entry point: there is no view to render,
// so it tells the user how to get back in.
type loginNavigator struct{}

func (loginNavigator) NavigateToLogin() {
	pterm.Warning.Println("Session expired. Run `fryctl auth login` to sign in again.")
}
