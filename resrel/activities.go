package resrel

import (
	"context"
	"fmt"
	"net/url"
)

// ActivitiesAPI reads group activities and manages participation.
type ActivitiesAPI struct {
	client *Client
}

// NewActivitiesAPI binds the activity endpoints to a client.
func NewActivitiesAPI(c *Client) *ActivitiesAPI {
	return &ActivitiesAPI{client: c}
}

// ActivityListOptions filters and paginates the activity listing.
type ActivityListOptions struct {
	Page    int
	PerPage int
	Status  string
	Search  string

	// Upcoming limits the listing to future activities. Nil means
	// "don't filter".
	Upcoming *bool
}

func (o *ActivityListOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setInt(v, "page", o.Page)
	setInt(v, "per_page", o.PerPage)
	setString(v, "status", o.Status)
	setString(v, "search", o.Search)
	setBool(v, "upcoming", o.Upcoming)
	return v
}

// List fetches one page of activities.
func (a *ActivitiesAPI) List(ctx context.Context, opts *ActivityListOptions) (*Page[Activity], error) {
	var page Page[Activity]
	if err := a.client.Get(ctx, "/api/activities", &page, listQuery(opts.values())); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches a single activity.
func (a *ActivitiesAPI) Get(ctx context.Context, id int) (*Activity, error) {
	var resp envelope[Activity]
	if err := a.client.Get(ctx, fmt.Sprintf("/api/activities/%d", id), &resp, nil); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Join registers the caller as a participant. State rules (capacity,
// status transitions) are enforced server-side; a rejection surfaces as a
// regular *APIError.
func (a *ActivitiesAPI) Join(ctx context.Context, id int) (*ActionResult, error) {
	var resp ActionResult
	if err := a.client.Post(ctx, fmt.Sprintf("/api/activities/%d/join", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Leave withdraws the caller's participation.
func (a *ActivitiesAPI) Leave(ctx context.Context, id int) (*ActionResult, error) {
	var resp ActionResult
	if err := a.client.Post(ctx, fmt.Sprintf("/api/activities/%d/leave", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Participants lists the users registered on an activity.
func (a *ActivitiesAPI) Participants(ctx context.Context, id int) ([]User, error) {
	var resp envelope[[]User]
	if err := a.client.Get(ctx, fmt.Sprintf("/api/activities/%d/participants", id), &resp, nil); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
