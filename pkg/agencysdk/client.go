package agencysdk

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/staffhive/benchctl/pkg/session"
)

// DefaultBaseURL is the local development backend; production deployments
// override it through configuration.
const DefaultBaseURL = "http://localhost:8080/api"

// Client is the single outbound gateway to the consultancy backend.
// All feature calls share its interceptor pair, HTTP client and limiter,
// so it is safe (and intended) to construct one per process and share it.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	store   *session.Store
	nav     session.Navigator
	limiter *rate.Limiter
	logger  *slog.Logger

	// clientID identifies this installation to the backend, sent as
	// X-Client-Id on every request. Optional.
	clientID string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client, mainly for tests and
// custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithRateLimit caps outbound requests per second. The unified candidate
// view fires several list calls at once; the default of 20 rps keeps a
// busy terminal from hammering a shared backend.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithClientID attaches a stable installation identifier to requests.
func WithClientID(id string) Option {
	return func(c *Client) { c.clientID = id }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New returns a Client rooted at baseURL. An empty baseURL falls back to
// DefaultBaseURL. nav may be nil when no front end wants the redirect,
// e.g. in scripts; the 401 path still clears the session.
func New(baseURL string, store *session.Store, nav session.Navigator, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		store:   store,
		nav:     nav,
		limiter: rate.NewLimiter(rate.Limit(20), 40),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session exposes the underlying session store, so front ends can share
// the exact store the interceptors mutate.
func (c *Client) Session() *session.Store {
	return c.store
}
