package agencysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/oklog/ulid/v2"

	"github.com/staffhive/benchctl/pkg/slogx"
)

// filePart is one file attachment in a multipart request.
type filePart struct {
	Field    string
	Filename string
	Content  io.Reader
}

// url builds a complete URL by appending path (and optional query) to
// the base URL.
func (c *Client) url(path string, query url.Values) string {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// newRequest builds a request with the ambient headers every call
// carries: a fresh correlation ID and, when configured, the
// installation ID.
func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	query url.Values,
	body io.Reader,
	contentType string,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Request-Id", ulid.Make().String())
	if c.clientID != "" {
		req.Header.Set("X-Client-Id", c.clientID)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// do performs an authenticated request: the outbound interceptor attaches
// the stored bearer token when one exists, and the inbound interceptor
// turns a 401 into a cleared session plus a login redirect. Callers never
// see a 401 response object, only the resulting *APIError.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body io.Reader,
	contentType string,
) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request slot: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, query, body, contentType)
	if err != nil {
		return nil, err
	}

	// Outbound: attach the credential when a session exists; otherwise
	// the request goes out bare and the backend decides.
	if token, ok := c.store.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	ctx = slogx.WithRequestID(ctx, req.Header.Get("X-Request-Id"))
	logger := slogx.FromContext(ctx).With(
		"method", method,
		"path", path,
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Debug("request failed", "error", err)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	// Inbound: the credential was rejected. Tear the session down and
	// send the operator back to the login screen. Deliberately no guard
	// against repeat firing: concurrent 401s each clear and redirect,
	// which is harmless because Clear is idempotent.
	if resp.StatusCode == http.StatusUnauthorized {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		logger.Debug("credential rejected, clearing session")
		_ = c.store.Clear(ctx)
		if c.nav != nil {
			c.nav.LoginRedirect()
		}
		return nil, parseAPIError(resp.StatusCode, body)
	}

	return resp, nil
}

// doPublic performs a request outside the interceptor pair: no bearer
// token attached, no 401 handling. Sign-in uses it so a wrong password
// reads as an error, not a redirect loop.
func (c *Client) doPublic(
	ctx context.Context,
	method, path string,
	body io.Reader,
	contentType string,
) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request slot: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, nil, body, contentType)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeResponse consumes resp: non-2xx becomes an *APIError, a 2xx body
// is unmarshaled into out when out is non-nil.
func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// getJSON issues a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

// sendJSON issues a request with a JSON body and decodes the response
// into out when out is non-nil.
func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	resp, err := c.do(ctx, method, path, nil, body, "application/json")
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

// delete issues a DELETE and discards any response body.
func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	if err != nil {
		return err
	}
	return decodeResponse(resp, nil)
}

// sendMultipart issues a multipart/form-data request carrying plain form
// fields plus zero or more file parts, matching the backend's
// @ModelAttribute + MultipartFile binding.
func (c *Client) sendMultipart(
	ctx context.Context,
	method, path string,
	fields url.Values,
	files []filePart,
	out any,
) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, values := range fields {
		for _, value := range values {
			if err := writer.WriteField(name, value); err != nil {
				return fmt.Errorf("failed to write form field %q: %w", name, err)
			}
		}
	}

	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return fmt.Errorf("failed to create file part %q: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("failed to write file part %q: %w", file.Field, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	resp, err := c.do(ctx, method, path, nil, &buf, writer.FormDataContentType())
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

// getBinary downloads a file endpoint, returning the bytes and the
// filename advertised in Content-Disposition (empty when absent).
func (c *Client) getBinary(ctx context.Context, path string) ([]byte, string, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", parseAPIError(resp.StatusCode, body)
	}

	filename := ""
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			filename = params["filename"]
		}
	}
	return body, filename, nil
}
