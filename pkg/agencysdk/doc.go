/*
Package agencysdk is the HTTP gateway to the consultancy backend. Every
feature call the terminal client makes (candidates, bench profiles,
working candidates, employees, vendors, activities, dashboard) goes
through one Client, which attaches the stored bearer token on the way
out and reacts to authentication failures on the way back.

# Client

Create a Client over a session store and a navigator:

	store := session.New(backend)
	client := agencysdk.New(baseURL, store, nav)

	stats, err := client.DashboardStats(ctx)
	page, err := client.ListBenchCandidates(ctx, agencysdk.PageRequest{Size: 25})

The base URL points at the backend's API root (".../api"); all paths are
relative to it.

# Interceptors

Two behaviors wrap every authenticated call:

  - Outbound: if the session store holds a token, the request carries
    "Authorization: Bearer <token>"; otherwise no Authorization header
    is sent and the backend decides.
  - Inbound: a 401 from any endpoint clears the session and fires the
    navigator's login redirect. The call still fails with an *APIError
    so the caller unwinds. Every other status passes through untouched.

There is intentionally no guard against the 401 path firing repeatedly:
concurrent failing requests each clear and redirect. Clearing an
already-cleared session is idempotent, so the worst case is a redundant
redirect.

# Sign-in

SignIn talks to POST /auth/signin outside the interceptor pair: a wrong
password must produce an error message, not a login redirect loop. On
success it writes the token and the four-field user snapshot into the
session store as one logical step.

# Errors

Failures carry *APIError with the HTTP status and the most specific
message available: the backend's {"message": ...} body when present,
then raw body text, then the status text. Use IsSessionExpired to tell
the 401 path apart from ordinary failures.
*/
package agencysdk
