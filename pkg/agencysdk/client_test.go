package agencysdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/staffhive/benchctl/pkg/session"
)

// countingNav records login redirects so tests can assert the inbound
// interceptor fired (or didn't).
type countingNav struct {
	redirects atomic.Int64
}

func (n *countingNav) LoginRedirect() { n.redirects.Add(1) }

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store, *countingNav) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend, err := session.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	store := session.New(backend)

	nav := &countingNav{}
	return New(srv.URL, store, nav), store, nav
}

func TestBearerHeaderInjection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	var gotAuth string
	var hasAuth bool
	client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[]}`))
	}))

	// Without a session the request goes out bare.
	_, err := client.ListVendors(ctx, PageRequest{})
	require.NoError(t, err)
	require.False(t, hasAuth)

	// With a session the request carries the stored token verbatim.
	require.NoError(t, store.SetToken(ctx, "a.b.c"))
	_, err = client.ListVendors(ctx, PageRequest{})
	require.NoError(t, err)
	require.Equal(t, "Bearer a.b.c", gotAuth)
}

func TestRequestCorrelationHeaders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	seen := map[string]string{}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen["req"] = r.Header.Get("X-Request-Id")
		seen["client"] = r.Header.Get("X-Client-Id")
		w.Write([]byte(`{}`))
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend, err := session.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	client := New(srv.URL, session.New(backend), nil, WithClientID("install-42"))

	_, err = client.DashboardStats(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, seen["req"])
	require.Equal(t, "install-42", seen["client"])
}

func TestUnauthorizedClearsSessionAndRedirects(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client, store, nav := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	require.NoError(t, store.SetToken(ctx, "a.b.c"))
	require.NoError(t, store.SetUser(ctx, session.User{ID: 1, Username: "admin"}))

	_, err := client.ListCandidates(ctx, PageRequest{})
	require.Error(t, err)
	require.True(t, IsSessionExpired(err))

	// The interceptor wiped the whole session and fired the redirect.
	_, ok := store.Token(ctx)
	require.False(t, ok)
	require.Nil(t, store.User(ctx))
	require.Equal(t, int64(1), nav.redirects.Load())
}

func TestUnauthorizedFiresPerFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client, store, nav := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	require.NoError(t, store.SetToken(ctx, "a.b.c"))

	// No de-duplication across failures: each 401 clears (a no-op after
	// the first) and redirects again.
	_, err := client.ListCandidates(ctx, PageRequest{})
	require.True(t, IsSessionExpired(err))
	_, err = client.ListVendors(ctx, PageRequest{})
	require.True(t, IsSessionExpired(err))

	require.Equal(t, int64(2), nav.redirects.Load())
}

func TestNonAuthFailurePassesThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for _, status := range []int{http.StatusForbidden, http.StatusInternalServerError} {
		client, store, nav := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		require.NoError(t, store.SetToken(ctx, "a.b.c"))

		_, err := client.ListCandidates(ctx, PageRequest{})
		require.Error(t, err)
		require.False(t, IsSessionExpired(err))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, status, apiErr.Status)

		// The session survives and no redirect happened.
		token, ok := store.Token(ctx)
		require.True(t, ok)
		require.Equal(t, "a.b.c", token)
		require.Equal(t, int64(0), nav.redirects.Load())
	}
}

func TestServerMessageSurfaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Company name is required"}`))
	}))

	_, err := client.CreateVendor(ctx, VendorRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "Company name is required", apiErr.Message)
}

func TestParseAPIErrorFallbacks(t *testing.T) {
	t.Parallel()

	require.Equal(t, "boom", parseAPIError(500, []byte("boom")).Message)
	require.Equal(t, "oops", parseAPIError(400, []byte(`{"error":"oops"}`)).Message)
	require.Equal(t, http.StatusText(http.StatusBadGateway), parseAPIError(502, nil).Message)
}
