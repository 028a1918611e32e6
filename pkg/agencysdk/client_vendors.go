package agencysdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// VendorSearch carries the /vendors/search filters.
type VendorSearch struct {
	CompanyName     string
	PreferredSkills string
	State           string
	Status          VendorStatus
	Page            PageRequest
}

func (s VendorSearch) query() url.Values {
	q := s.Page.query()
	if s.CompanyName != "" {
		q.Set("companyName", s.CompanyName)
	}
	if s.PreferredSkills != "" {
		q.Set("preferredSkills", s.PreferredSkills)
	}
	if s.State != "" {
		q.Set("state", s.State)
	}
	if s.Status != "" {
		q.Set("status", string(s.Status))
	}
	return q
}

// ListVendors returns a page of vendors.
func (c *Client) ListVendors(ctx context.Context, page PageRequest) (*Page[Vendor], error) {
	var out Page[Vendor]
	if err := c.getJSON(ctx, "/vendors", page.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVendor fetches one vendor by ID.
func (c *Client) GetVendor(ctx context.Context, id int64) (*Vendor, error) {
	var out Vendor
	if err := c.getJSON(ctx, fmt.Sprintf("/vendors/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateVendor adds a vendor.
func (c *Client) CreateVendor(ctx context.Context, req VendorRequest) (*Vendor, error) {
	var out Vendor
	if err := c.sendJSON(ctx, http.MethodPost, "/vendors", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateVendor updates a vendor.
func (c *Client) UpdateVendor(ctx context.Context, id int64, req VendorRequest) (*Vendor, error) {
	var out Vendor
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/vendors/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteVendor removes a vendor.
func (c *Client) DeleteVendor(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/vendors/%d", id))
}

// SearchVendors runs the server-side vendor search.
func (c *Client) SearchVendors(ctx context.Context, search VendorSearch) (*Page[Vendor], error) {
	var out Page[Vendor]
	if err := c.getJSON(ctx, "/vendors/search", search.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VendorsByStatus lists vendors in one relationship status.
func (c *Client) VendorsByStatus(ctx context.Context, status VendorStatus) ([]Vendor, error) {
	var out []Vendor
	if err := c.getJSON(ctx, "/vendors/status/"+string(status), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopVendors lists the best-performing vendors. limit <= 0 asks for the
// backend default of ten.
func (c *Client) TopVendors(ctx context.Context, limit int) ([]Vendor, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out []Vendor
	if err := c.getJSON(ctx, "/vendors/top-performers", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
