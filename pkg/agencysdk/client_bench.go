package agencysdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// BenchSearch carries the /bench-candidates/search filters.
type BenchSearch struct {
	FullName     string
	VisaStatus   VisaStatus
	PrimarySkill string
	State        string
	Page         PageRequest
}

func (s BenchSearch) query() url.Values {
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
	return q
}

func (r BenchCandidateRequest) form() url.Values {
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
	if r.PhoneNumber != "" {
		f.Set("phoneNumber", r.PhoneNumber)
	}
	if r.Email != "" {
		f.Set("email", r.Email)
	}
	if r.TargetRate > 0 {
		f.Set("targetRate", strconv.FormatFloat(r.TargetRate, 'f', -1, 64))
	}
	if r.AssignedConsultantID > 0 {
		f.Set("assignedConsultantId", strconv.FormatInt(r.AssignedConsultantID, 10))
	}
	if r.Notes != "" {
		f.Set("notes", r.Notes)
	}
	return f
}

// ListBenchCandidates returns a page of bench profiles.
func (c *Client) ListBenchCandidates(ctx context.Context, page PageRequest) (*Page[BenchCandidate], error) {
	var out Page[BenchCandidate]
	if err := c.getJSON(ctx, "/bench-candidates", page.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBenchCandidate fetches one bench profile by ID.
func (c *Client) GetBenchCandidate(ctx context.Context, id int64) (*BenchCandidate, error) {
	var out BenchCandidate
	if err := c.getJSON(ctx, fmt.Sprintf("/bench-candidates/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBenchCandidate creates a bench profile. documents attach as the
// multipart "documents" parts; pass nothing for a bare profile.
func (c *Client) CreateBenchCandidate(
	ctx context.Context,
	req BenchCandidateRequest,
	documents ...NamedFile,
) (*BenchCandidate, error) {
	var out BenchCandidate
	err := c.sendMultipart(ctx, http.MethodPost, "/bench-candidates",
		req.form(), namedFileParts("documents", documents), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBenchCandidate updates a bench profile, optionally attaching
// more documents.
func (c *Client) UpdateBenchCandidate(
	ctx context.Context,
	id int64,
	req BenchCandidateRequest,
	documents ...NamedFile,
) (*BenchCandidate, error) {
	var out BenchCandidate
	path := fmt.Sprintf("/bench-candidates/%d", id)
	err := c.sendMultipart(ctx, http.MethodPut, path,
		req.form(), namedFileParts("documents", documents), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBenchCandidate removes a bench profile.
func (c *Client) DeleteBenchCandidate(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/bench-candidates/%d", id))
}

// SearchBenchCandidates runs the server-side bench search.
func (c *Client) SearchBenchCandidates(ctx context.Context, search BenchSearch) (*Page[BenchCandidate], error) {
	var out Page[BenchCandidate]
	if err := c.getJSON(ctx, "/bench-candidates/search", search.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BenchCandidatesByConsultant lists bench profiles assigned to one
// consultant.
func (c *Client) BenchCandidatesByConsultant(ctx context.Context, consultantID int64) ([]BenchCandidate, error) {
	var out []BenchCandidate
	path := fmt.Sprintf("/bench-candidates/consultant/%d", consultantID)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadBenchResume fetches a bench profile's stored resume.
func (c *Client) DownloadBenchResume(ctx context.Context, id int64) (data []byte, name string, err error) {
	return c.getBinary(ctx, fmt.Sprintf("/bench-candidates/%d/resume", id))
}

// NamedFile pairs an upload's filename with its content.
type NamedFile struct {
	Name    string
	Content io.Reader
}

func namedFileParts(field string, files []NamedFile) []filePart {
	parts := make([]filePart, 0, len(files))
	for _, f := range files {
		parts = append(parts, filePart{Field: field, Filename: f.Name, Content: f.Content})
	}
	return parts
}

// ListDocuments lists the documents stored against a bench profile.
func (c *Client) ListDocuments(ctx context.Context, candidateID int64) ([]Document, error) {
	var out []Document
	path := fmt.Sprintf("/bench-candidates/%d/documents", candidateID)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadDocument attaches one document ("file" part) to a bench profile.
func (c *Client) UploadDocument(ctx context.Context, candidateID int64, file NamedFile) (*Document, error) {
	var out Document
	path := fmt.Sprintf("/bench-candidates/%d/documents", candidateID)
	files := []filePart{{Field: "file", Filename: file.Name, Content: file.Content}}
	if err := c.sendMultipart(ctx, http.MethodPost, path, nil, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadDocuments attaches several documents in one request ("files"
// parts).
func (c *Client) UploadDocuments(ctx context.Context, candidateID int64, files ...NamedFile) ([]Document, error) {
	var out []Document
	path := fmt.Sprintf("/bench-candidates/%d/documents/multiple", candidateID)
	if err := c.sendMultipart(ctx, http.MethodPost, path, nil, namedFileParts("files", files), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadDocument fetches one stored document's bytes.
func (c *Client) DownloadDocument(ctx context.Context, candidateID, documentID int64) (data []byte, name string, err error) {
	return c.getBinary(ctx, fmt.Sprintf("/bench-candidates/%d/documents/%d", candidateID, documentID))
}

// DeleteDocument removes one stored document.
func (c *Client) DeleteDocument(ctx context.Context, candidateID, documentID int64) error {
	return c.delete(ctx, fmt.Sprintf("/bench-candidates/%d/documents/%d", candidateID, documentID))
}

// DocumentInfo fetches one stored document's metadata without its bytes.
func (c *Client) DocumentInfo(ctx context.Context, candidateID, documentID int64) (*Document, error) {
	var out Document
	path := fmt.Sprintf("/bench-candidates/%d/documents/%d/info", candidateID, documentID)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
