package agencysdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// CandidateSearch carries the /candidates/search filters. Empty fields
// are omitted from the query.
type CandidateSearch struct {
	FullName     string
	VisaStatus   VisaStatus
	PrimarySkill string
	State        string
	Status       CandidateStatus
	Page         PageRequest
}

func (s CandidateSearch) query() url.Values {
	q := s.Page.query()
	if s.FullName != "" {
		q.Set("fullName", s.FullName)
	}
	if s.VisaStatus != "" {
		q.Set("visaStatus", string(s.VisaStatus))
	}
	if s.PrimarySkill != "" {
		q.Set("primarySkill", s.PrimarySkill)
	}
	if s.State != "" {
		q.Set("state", s.State)
	}
	if s.Status != "" {
		q.Set("status", string(s.Status))
	}
	return q
}

func (r CandidateRequest) form() url.Values {
	f := url.Values{}
	f.Set("fullName", r.FullName)
	if r.VisaStatus != "" {
		f.Set("visaStatus", string(r.VisaStatus))
	}
	if r.City != "" {
		f.Set("city", r.City)
	}
	if r.State != "" {
		f.Set("state", r.State)
	}
	if r.PrimarySkill != "" {
		f.Set("primarySkill", r.PrimarySkill)
	}
	if r.ExperienceYears > 0 {
		f.Set("experienceYears", strconv.Itoa(r.ExperienceYears))
	}
	if r.ContactInfo != "" {
		f.Set("contactInfo", r.ContactInfo)
	}
	if r.Notes != "" {
		f.Set("notes", r.Notes)
	}
	if r.Status != "" {
		f.Set("status", string(r.Status))
	}
	if r.AssignedConsultantName != "" {
		f.Set("assignedConsultantName", r.AssignedConsultantName)
	}
	if r.TargetRate > 0 {
		f.Set("targetRate", strconv.FormatFloat(r.TargetRate, 'f', -1, 64))
	}
	return f
}

// ListCandidates returns a page of the legacy candidates table.
func (c *Client) ListCandidates(ctx context.Context, page PageRequest) (*Page[Candidate], error) {
	var out Page[Candidate]
	if err := c.getJSON(ctx, "/candidates", page.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCandidate fetches one candidate by ID.
func (c *Client) GetCandidate(ctx context.Context, id int64) (*Candidate, error) {
	var out Candidate
	if err := c.getJSON(ctx, fmt.Sprintf("/candidates/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCandidate creates a candidate. resume may be nil; when set, the
// file is attached as the multipart "resume" part.
func (c *Client) CreateCandidate(
	ctx context.Context,
	req CandidateRequest,
	resumeFilename string,
	resume io.Reader,
) (*Candidate, error) {
	var files []filePart
	if resume != nil {
		files = append(files, filePart{Field: "resume", Filename: resumeFilename, Content: resume})
	}

	var out Candidate
	if err := c.sendMultipart(ctx, http.MethodPost, "/candidates", req.form(), files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCandidate updates a candidate, optionally replacing the resume.
func (c *Client) UpdateCandidate(
	ctx context.Context,
	id int64,
	req CandidateRequest,
	resumeFilename string,
	resume io.Reader,
) (*Candidate, error) {
	var files []filePart
	if resume != nil {
		files = append(files, filePart{Field: "resume", Filename: resumeFilename, Content: resume})
	}

	var out Candidate
	path := fmt.Sprintf("/candidates/%d", id)
	if err := c.sendMultipart(ctx, http.MethodPut, path, req.form(), files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCandidate removes a candidate.
func (c *Client) DeleteCandidate(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/candidates/%d", id))
}

// SearchCandidates runs the server-side candidate search.
func (c *Client) SearchCandidates(ctx context.Context, search CandidateSearch) (*Page[Candidate], error) {
	var out Page[Candidate]
	if err := c.getJSON(ctx, "/candidates/search", search.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CandidatesByStatus lists candidates in one pipeline status.
func (c *Client) CandidatesByStatus(ctx context.Context, status CandidateStatus) ([]Candidate, error) {
	var out []Candidate
	if err := c.getJSON(ctx, "/candidates/status/"+string(status), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadResume fetches a candidate's stored resume. The returned name
// is the server's suggested filename, empty when it offered none.
func (c *Client) DownloadResume(ctx context.Context, id int64) (data []byte, name string, err error) {
	return c.getBinary(ctx, fmt.Sprintf("/candidates/%d/resume", id))
}
