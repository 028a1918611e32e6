package agencysdk

import (
	"context"
	"net/url"
	"strconv"
)

// DashboardStats fetches the headline counts and recent candidates for
// the landing screen.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.getJSON(ctx, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevenueAnalytics fetches the revenue breakdown report.
func (c *Client) RevenueAnalytics(ctx context.Context) (AnalyticsReport, error) {
	return c.analyticsReport(ctx, "/dashboard/revenue-analytics", nil)
}

// ConsultantPerformance fetches per-consultant placement performance.
func (c *Client) ConsultantPerformance(ctx context.Context) (AnalyticsReport, error) {
	return c.analyticsReport(ctx, "/dashboard/consultant-performance", nil)
}

// VendorAnalytics fetches vendor submission/placement analytics.
func (c *Client) VendorAnalytics(ctx context.Context) (AnalyticsReport, error) {
	return c.analyticsReport(ctx, "/dashboard/vendor-analytics", nil)
}

// SubmissionTrends fetches the submissions-over-time report for the past
// days days. days <= 0 asks for the backend default of thirty.
func (c *Client) SubmissionTrends(ctx context.Context, days int) (AnalyticsReport, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	return c.analyticsReport(ctx, "/dashboard/submission-trends", q)
}

// SkillDemand fetches the most-requested-skills report.
func (c *Client) SkillDemand(ctx context.Context) (AnalyticsReport, error) {
	return c.analyticsReport(ctx, "/dashboard/skill-demand", nil)
}

func (c *Client) analyticsReport(ctx context.Context, path string, q url.Values) (AnalyticsReport, error) {
	var out AnalyticsReport
	if err := c.getJSON(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
