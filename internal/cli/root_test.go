package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// mintToken signs a throwaway JWT; the client never verifies signatures,
// only decodes claims.
func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// runCommand executes the CLI against an isolated config dir, returning
// stdout, stderr and the final error.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runCommandInput(t, "", args...)
}

// runCommandInput is runCommand with a scripted stdin for the prompts.
func runCommandInput(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := NewRootCommand(&out, &errOut)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(input))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestGuardedCommandWithoutSession(t *testing.T) {
	t.Setenv("CONSULTANCY_CONFIG_DIR", t.TempDir())

	out, errOut, err := runCommand(t, "whoami")
	require.ErrorIs(t, err, errSessionEnded)
	require.Empty(t, out)
	require.Contains(t, errOut, "benchctl login")
}

func TestLoginThenWhoami(t *testing.T) {
	t.Setenv("CONSULTANCY_CONFIG_DIR", t.TempDir())

	token := mintToken(t, jwt.MapClaims{"sub": "admin"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/signin":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"accessToken": token,
				"id":          7,
				"username":    "admin",
				"firstName":   "Ada",
				"lastName":    "Santos",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	out, _, err := runCommand(t, "login", "-u", "admin", "-p", "secret", "--base-url", srv.URL)
	require.NoError(t, err)
	require.Contains(t, out, "Signed in as Ada Santos")

	// The stored session satisfies the guard without touching the
	// backend: the token carries no expiry claim, so it never expires.
	out, _, err = runCommand(t, "whoami")
	require.NoError(t, err)
	require.Contains(t, out, "Ada Santos")
	require.Contains(t, out, "@admin")
}

func TestLoginFailureShowsServerText(t *testing.T) {
	t.Setenv("CONSULTANCY_CONFIG_DIR", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("Bad credentials"))
	}))
	defer srv.Close()

	out, errOut, err := runCommand(t, "login", "-u", "admin", "-p", "wrong", "--base-url", srv.URL)
	require.Error(t, err)
	require.NotContains(t, out, "Signed in")
	require.Contains(t, errOut, "failed to sign in")
	require.Contains(t, errOut, "Bad credentials")

	// A failed sign-in is not a session teardown; no login hint fires.
	require.NotContains(t, errOut, "session has ended")
}

func TestProfilesKeepSeparateSessions(t *testing.T) {
	t.Setenv("CONSULTANCY_CONFIG_DIR", t.TempDir())

	token := mintToken(t, jwt.MapClaims{"sub": "alpha"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"accessToken": token,
			"id":          1,
			"username":    "alpha",
		})
	}))
	defer srv.Close()

	_, _, err := runCommand(t, "login", "-u", "alpha", "-p", "pw", "--base-url", srv.URL, "--profile", "alpha")
	require.NoError(t, err)

	// Profile alpha is signed in; profile beta is not.
	_, _, err = runCommand(t, "whoami", "--profile", "alpha")
	require.NoError(t, err)

	_, _, err = runCommand(t, "whoami", "--profile", "beta")
	require.ErrorIs(t, err, errSessionEnded)
}

func TestGuardedCommandExpiredToken(t *testing.T) {
	t.Setenv("CONSULTANCY_CONFIG_DIR", t.TempDir())

	expired := mintToken(t, jwt.MapClaims{"sub": "alpha", "exp": time.Now().Add(-time.Hour).Unix()})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"accessToken": expired,
			"id":          1,
			"username":    "alpha",
		})
	}))
	defer srv.Close()

	_, _, err := runCommand(t, "login", "-u", "alpha", "-p", "pw", "--base-url", srv.URL)
	require.NoError(t, err)

	// The guard spots the expired token, clears the pair and bounces.
	_, errOut, err := runCommand(t, "whoami")
	require.ErrorIs(t, err, errSessionEnded)
	require.Contains(t, errOut, "benchctl login")
}

func TestLoginWithLiveSessionShowsDashboard(t *testing.T) {
	t.Setenv("CONSULTANCY_CONFIG_DIR", t.TempDir())

	var signins atomic.Int32
	token := mintToken(t, jwt.MapClaims{"sub": "admin"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/signin":
			signins.Add(1)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"accessToken": token,
				"id":          7,
				"username":    "admin",
				"firstName":   "Ada",
				"lastName":    "Santos",
			})
		case "/dashboard/stats":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"benchProfiles":     12,
				"workingCandidates": 4,
				"inInterview":       3,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	_, _, err := runCommand(t, "login", "-u", "admin", "-p", "secret", "--base-url", srv.URL)
	require.NoError(t, err)

	// A second login with a live session bounces to the dashboard
	// instead of asking for credentials again.
	out, _, err := runCommand(t, "login", "--base-url", srv.URL)
	require.NoError(t, err)
	require.Contains(t, out, "Already signed in as Ada Santos")
	require.Contains(t, out, "On bench")
	require.Contains(t, out, "12")
	require.NotContains(t, out, "Username:")
	require.Equal(t, int32(1), signins.Load())
}

func TestLoginPromptsReadCommandInput(t *testing.T) {
	t.Setenv("CONSULTANCY_CONFIG_DIR", t.TempDir())

	token := mintToken(t, jwt.MapClaims{"sub": "admin"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["username"] != "admin" || creds["password"] != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Bad credentials"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"accessToken": token,
			"id":          7,
			"username":    "admin",
			"firstName":   "Ada",
			"lastName":    "Santos",
		})
	}))
	defer srv.Close()

	// Both prompts read from the command's input stream, so a piped
	// "username\npassword\n" script signs in without a terminal.
	out, _, err := runCommandInput(t, "admin\ns3cret\n", "login", "--base-url", srv.URL)
	require.NoError(t, err)
	require.Contains(t, out, "Username:")
	require.Contains(t, out, "Password:")
	require.Contains(t, out, "Signed in as Ada Santos")
}
