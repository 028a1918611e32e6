package agencysdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// EmployeeSearch carries the /employees/search filters.
type EmployeeSearch struct {
	FullName string
	Email    string
	Role     string
	Page     PageRequest
}

func (s EmployeeSearch) query() url.Values {
	q := s.Page.query()
	if s.FullName != "" {
		q.Set("fullName", s.FullName)
	}
	if s.Email != "" {
		q.Set("email", s.Email)
	}
	if s.Role != "" {
		q.Set("role", s.Role)
	}
	return q
}

// ListEmployees returns all internal consultants and staff.
func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := c.getJSON(ctx, "/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEmployeesPaged returns a page of employees.
func (c *Client) ListEmployeesPaged(ctx context.Context, page PageRequest) (*Page[Employee], error) {
	var out Page[Employee]
	if err := c.getJSON(ctx, "/employees/paginated", page.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEmployee fetches one employee by ID.
func (c *Client) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	var out Employee
	if err := c.getJSON(ctx, fmt.Sprintf("/employees/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEmployee adds an internal consultant or staff member.
func (c *Client) CreateEmployee(ctx context.Context, req EmployeeRequest) (*Employee, error) {
	var out Employee
	if err := c.sendJSON(ctx, http.MethodPost, "/employees", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEmployee updates an employee record.
func (c *Client) UpdateEmployee(ctx context.Context, id int64, req EmployeeRequest) (*Employee, error) {
	var out Employee
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/employees/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEmployee removes an employee record.
func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/employees/%d", id))
}

// SearchEmployees runs the server-side employee search.
func (c *Client) SearchEmployees(ctx context.Context, search EmployeeSearch) (*Page[Employee], error) {
	var out Page[Employee]
	if err := c.getJSON(ctx, "/employees/search", search.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EmployeesByRole lists employees holding one role.
func (c *Client) EmployeesByRole(ctx context.Context, role string) ([]Employee, error) {
	var out []Employee
	if err := c.getJSON(ctx, "/employees/role/"+url.PathEscape(role), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
