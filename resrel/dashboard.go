package resrel

import "context"

// DashboardAPI reads the caller's aggregated platform activity. The
// aggregation itself happens server-side; this module only fetches it.
type DashboardAPI struct {
	client *Client
}

// NewDashboardAPI binds the dashboard endpoints to a client.
func NewDashboardAPI(c *Client) *DashboardAPI {
	return &DashboardAPI{client: c}
}

// Summary fetches the dashboard counters and recent items.
func (d *DashboardAPI) Summary(ctx context.Context) (*DashboardSummary, error) {
	var resp envelope[DashboardSummary]
	if err := d.client.Get(ctx, "/api/dashboard", &resp, nil); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Progression fetches the user's progression timeline.
func (d *DashboardAPI) Progression(ctx context.Context) ([]ProgressionEntry, error) {
	var resp envelope[[]ProgressionEntry]
	if err := d.client.Get(ctx, "/api/dashboard/progression", &resp, nil); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
