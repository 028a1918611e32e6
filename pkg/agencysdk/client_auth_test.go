package agencysdk

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/staffhive/benchctl/pkg/session"
)

func TestSignInStoresSessionPair(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	var gotBody map[string]string
	client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/signin", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"accessToken": "a.b.c",
			"id":          1,
			"username":    "admin",
			"email":       "admin@example.com",
			"firstName":   "Ann",
			"lastName":    "Admin",
		})
	}))

	user, err := client.SignIn(ctx, "admin", "hunter2")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"username": "admin", "password": "hunter2"}, gotBody)
	require.Equal(t, &session.User{ID: 1, Username: "admin", FirstName: "Ann", LastName: "Admin"}, user)

	// Both halves of the session landed, and only the four snapshot
	// fields were kept.
	token, ok := store.Token(ctx)
	require.True(t, ok)
	require.Equal(t, "a.b.c", token)
	require.Equal(t, user, store.User(ctx))
}

func TestSignInFailureIsNotARedirect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client, store, nav := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("Bad credentials"))
	}))

	_, err := client.SignIn(ctx, "admin", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Bad credentials", apiErr.Message)

	// Sign-in runs outside the interceptor pair: the failure must not
	// fire the login redirect (the operator is already there).
	require.Equal(t, int64(0), nav.redirects.Load())
	_, ok := store.Token(ctx)
	require.False(t, ok)
}

func TestSignOutClearsAndRedirects(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client, store, nav := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/signout", r.URL.Path)
		w.Write([]byte(`{"message":"User logged out successfully!"}`))
	}))

	require.NoError(t, store.SetToken(ctx, "a.b.c"))
	require.NoError(t, store.SetUser(ctx, session.User{ID: 1, Username: "admin"}))

	require.NoError(t, client.SignOut(ctx))

	_, ok := store.Token(ctx)
	require.False(t, ok)
	require.Nil(t, store.User(ctx))
	require.Equal(t, int64(1), nav.redirects.Load())
}

func TestSignOutSurvivesBackendOutage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client, store, nav := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	require.NoError(t, store.SetToken(ctx, "a.b.c"))

	// The server-side signout is best-effort; local logout proceeds.
	require.NoError(t, client.SignOut(ctx))

	_, ok := store.Token(ctx)
	require.False(t, ok)
	require.Equal(t, int64(1), nav.redirects.Load())
}
