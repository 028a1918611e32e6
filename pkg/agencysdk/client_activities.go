package agencysdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ActivitySearch carries the /candidate-activities/search filters.
type ActivitySearch struct {
	CandidateID  int64
	ActivityType ActivityType
	ClientName   string
	Page         PageRequest
}

func (s ActivitySearch) query() url.Values {
	q := s.Page.query()
	if s.CandidateID > 0 {
		q.Set("candidateId", fmt.Sprintf("%d", s.CandidateID))
	}
	if s.ActivityType != "" {
		q.Set("activityType", string(s.ActivityType))
	}
	if s.ClientName != "" {
		q.Set("clientName", s.ClientName)
	}
	return q
}

// CreateActivity records a pipeline event against a bench candidate.
func (c *Client) CreateActivity(ctx context.Context, req ActivityRequest) (*Activity, error) {
	var out Activity
	if err := c.sendJSON(ctx, http.MethodPost, "/candidate-activities", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivitiesForCandidate lists every activity on one candidate, newest
// first.
func (c *Client) ActivitiesForCandidate(ctx context.Context, candidateID int64) ([]Activity, error) {
	var out []Activity
	path := fmt.Sprintf("/candidate-activities/candidate/%d", candidateID)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActivitiesForCandidatePaged pages through one candidate's activities.
func (c *Client) ActivitiesForCandidatePaged(
	ctx context.Context,
	candidateID int64,
	page PageRequest,
) (*Page[Activity], error) {
	var out Page[Activity]
	path := fmt.Sprintf("/candidate-activities/candidate/%d/paginated", candidateID)
	if err := c.getJSON(ctx, path, page.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetActivity fetches one activity by ID.
func (c *Client) GetActivity(ctx context.Context, id int64) (*Activity, error) {
	var out Activity
	if err := c.getJSON(ctx, fmt.Sprintf("/candidate-activities/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateActivity updates an activity.
func (c *Client) UpdateActivity(ctx context.Context, id int64, req ActivityRequest) (*Activity, error) {
	var out Activity
	path := fmt.Sprintf("/candidate-activities/%d", id)
	if err := c.sendJSON(ctx, http.MethodPut, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteActivity removes an activity.
func (c *Client) DeleteActivity(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/candidate-activities/%d", id))
}

// SearchActivities runs the server-side activity search.
func (c *Client) SearchActivities(ctx context.Context, search ActivitySearch) (*Page[Activity], error) {
	var out Page[Activity]
	if err := c.getJSON(ctx, "/candidate-activities/search", search.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivitiesByType lists activities of one event kind.
func (c *Client) ActivitiesByType(ctx context.Context, activityType ActivityType) ([]Activity, error) {
	var out []Activity
	if err := c.getJSON(ctx, "/candidate-activities/type/"+string(activityType), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActivitiesByDateRange lists activities whose activityDate falls in
// [from, to]. Dates use the backend's yyyy-mm-dd form.
func (c *Client) ActivitiesByDateRange(ctx context.Context, from, to string) ([]Activity, error) {
	q := url.Values{}
	q.Set("startDate", from)
	q.Set("endDate", to)

	var out []Activity
	if err := c.getJSON(ctx, "/candidate-activities/date-range", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentActivities lists the most recent activities across candidates.
func (c *Client) RecentActivities(ctx context.Context) ([]Activity, error) {
	var out []Activity
	if err := c.getJSON(ctx, "/candidate-activities/recent", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountActivitiesForCandidate counts how many events one candidate has.
func (c *Client) CountActivitiesForCandidate(ctx context.Context, candidateID int64) (int64, error) {
	var out int64
	path := fmt.Sprintf("/candidate-activities/count/candidate/%d", candidateID)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return 0, err
	}
	return out, nil
}

// CountActivitiesByType counts events of one kind across candidates.
func (c *Client) CountActivitiesByType(ctx context.Context, activityType ActivityType) (int64, error) {
	var out int64
	path := "/candidate-activities/count/type/" + string(activityType)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return 0, err
	}
	return out, nil
}
