package agencysdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// WorkingSearch carries the /working-candidates/search filters.
type WorkingSearch struct {
	FullName   string
	JobRole    string
	ClientName string
	Page       PageRequest
}

func (s WorkingSearch) query() url.Values {
	q := s.Page.query()
	if s.FullName != "" {
		q.Set("fullName", s.FullName)
	}
	if s.JobRole != "" {
		q.Set("jobRole", s.JobRole)
	}
	if s.ClientName != "" {
		q.Set("clientName", s.ClientName)
	}
	return q
}

// ListWorkingCandidates returns a page of placed candidates.
func (c *Client) ListWorkingCandidates(ctx context.Context, page PageRequest) (*Page[WorkingCandidate], error) {
	var out Page[WorkingCandidate]
	if err := c.getJSON(ctx, "/working-candidates", page.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWorkingCandidate fetches one placed candidate by ID.
func (c *Client) GetWorkingCandidate(ctx context.Context, id int64) (*WorkingCandidate, error) {
	var out WorkingCandidate
	if err := c.getJSON(ctx, fmt.Sprintf("/working-candidates/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateWorkingCandidate records a new placement.
func (c *Client) CreateWorkingCandidate(ctx context.Context, req WorkingCandidateRequest) (*WorkingCandidate, error) {
	var out WorkingCandidate
	if err := c.sendJSON(ctx, http.MethodPost, "/working-candidates", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWorkingCandidate updates a placement.
func (c *Client) UpdateWorkingCandidate(ctx context.Context, id int64, req WorkingCandidateRequest) (*WorkingCandidate, error) {
	var out WorkingCandidate
	path := fmt.Sprintf("/working-candidates/%d", id)
	if err := c.sendJSON(ctx, http.MethodPut, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWorkingCandidate removes a placement record.
func (c *Client) DeleteWorkingCandidate(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/working-candidates/%d", id))
}

// SearchWorkingCandidates runs the server-side placement search.
func (c *Client) SearchWorkingCandidates(ctx context.Context, search WorkingSearch) (*Page[WorkingCandidate], error) {
	var out Page[WorkingCandidate]
	if err := c.getJSON(ctx, "/working-candidates/search", search.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
