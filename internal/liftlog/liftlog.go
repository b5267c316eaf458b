// Package liftlog implements the client for the workout logging API. Each
// exported API method maps to one server endpoint.
package liftlog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coocood/freecache"
	"github.com/lildude/liftlog/internal/client"
	"github.com/lildude/liftlog/internal/sessions"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	catalogCacheSize  = 1024 * 1024
	defaultCatalogTTL = 5 * time.Minute
)

// API talks to the workout server on behalf of the user held in the session store.
type API struct {
	baseURL    *url.URL
	httpClient *http.Client
	store      sessions.Store
	log        logrus.FieldLogger

	catalog      *freecache.Cache
	catalogTTL   time.Duration
	catalogStore sessions.KV
	now          func() time.Time
}

type Option func(*API)

// WithHTTPClient sets the client used for every request. Its transport is
// wrapped to add the bearer token on authenticated calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *API) { a.httpClient = hc }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(a *API) { a.log = l }
}

// WithCatalogTTL sets how long the exercise catalog is served from the cache.
// Zero disables the cache.
func WithCatalogTTL(ttl time.Duration) Option {
	return func(a *API) { a.catalogTTL = ttl }
}

// WithCatalogStore keeps a copy of the exercise catalog in kv so it survives
// the process. Without it the catalog is only cached in memory.
func WithCatalogStore(kv sessions.KV) Option {
	return func(a *API) { a.catalogStore = kv }
}

// New returns an API rooted at baseURL.
func New(baseURL *url.URL, store sessions.Store, opts ...Option) *API {
	u := *baseURL
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	a := &API{
		baseURL:    &u,
		httpClient: http.DefaultClient,
		store:      store,
		catalogTTL: defaultCatalogTTL,
		now:        time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	if a.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		a.log = l
	}
	if a.catalogTTL > 0 {
		a.catalog = freecache.NewCache(catalogCacheSize)
	}
	return a
}

// Session returns the stored session.
func (a *API) Session(ctx context.Context) (sessions.Session, error) {
	s, err := a.store.Read(ctx)
	if err != nil {
		return sessions.Session{}, &Error{Kind: KindStorage, Op: "read session", Err: err}
	}
	return s, nil
}

// public returns a client for endpoints that need no session.
func (a *API) public() *client.Client {
	return client.NewClient(a.baseURL, a.httpClient)
}

// authed reads the session and returns a client that sends its bearer token.
// It fails with KindNotAuthenticated before any network I/O when the session
// is incomplete.
func (a *API) authed(ctx context.Context, op string) (sessions.Session, *client.Client, error) {
	s, err := a.store.Read(ctx)
	if err != nil {
		a.log.WithError(err).WithField("op", op).Error("unable to read session")
		return s, nil, notAuthenticated(op, err)
	}
	if !s.Authenticated() {
		a.log.WithField("op", op).Warn("user is not authenticated")
		return s, nil, notAuthenticated(op, nil)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: s.Token, TokenType: "Bearer"})
	hc := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, a.httpClient), ts)
	hc.Timeout = a.httpClient.Timeout

	return s, client.NewClient(a.baseURL, hc), nil
}

// do sends one request and normalizes any failure into a KindRemote *Error.
func (a *API) do(ctx context.Context, c *client.Client, op, method, path string, body, v any) error {
	req, err := c.NewRequest(ctx, method, path, body)
	if err != nil {
		return a.remote(op, err)
	}
	return a.send(c, op, req, v)
}

func (a *API) send(c *client.Client, op string, req *http.Request, v any) error {
	resp, err := c.Do(req, v)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return a.remote(op, err)
	}
	return nil
}

func (a *API) remote(op string, err error) *Error {
	e := &Error{Kind: KindRemote, Op: op, Err: err}
	var er *client.ErrorResponse
	if errors.As(err, &er) {
		e.StatusCode = er.StatusCode
		e.Message = er.Message
	}
	a.log.WithError(err).WithFields(logrus.Fields{"op": op, "status": e.StatusCode}).Error("request failed")
	return e
}

// escape makes a user supplied value safe as a single path segment.
func escape(s string) string {
	return url.PathEscape(s)
}
