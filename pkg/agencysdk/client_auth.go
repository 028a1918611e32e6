package agencysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/staffhive/benchctl/pkg/session"
)

// signInResponse is the body of a successful POST /auth/signin.
type signInResponse struct {
	AccessToken string `json:"accessToken"`
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Roles       string `json:"roles"`
}

// SignIn authenticates against the backend and, on success, writes the
// bearer token and the user profile snapshot into the session store as
// one logical step. It runs outside the interceptor pair: a rejected
// password is an error for the login screen to show, never a redirect.
func (c *Client) SignIn(ctx context.Context, username, password string) (*session.User, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}

	resp, err := c.doPublic(ctx, http.MethodPost, "/auth/signin",
		bytes.NewReader(payload), "application/json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The signin endpoint answers failures with plain text, not the
		// usual {message} envelope; surface whatever it said.
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}

	var signin signInResponse
	if err := json.Unmarshal(body, &signin); err != nil {
		return nil, fmt.Errorf("failed to decode signin response: %w", err)
	}

	user := session.User{
		ID:        signin.ID,
		Username:  signin.Username,
		FirstName: signin.FirstName,
		LastName:  signin.LastName,
	}

	if err := c.store.SetToken(ctx, signin.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}
	if err := c.store.SetUser(ctx, user); err != nil {
		// Keep the pair invariant: if the user half cannot be written,
		// drop the token half too rather than leave a split session.
		_ = c.store.Clear(ctx)
		return nil, fmt.Errorf("failed to persist user: %w", err)
	}

	return &user, nil
}

// SignOut tells the backend the session is over, then clears local state
// and fires the login redirect. The server call is best-effort: local
// logout proceeds even when the network is gone.
func (c *Client) SignOut(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/auth/signout", nil, nil, "")
	if err == nil {
		// Body content is immaterial; the endpoint just acknowledges.
		_ = decodeResponse(resp, nil)
	}

	return c.store.Logout(ctx, c.nav)
}
