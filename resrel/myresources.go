package resrel

import (
	"context"
	"fmt"
	"net/url"
)

// MyResourcesAPI manages resources the caller authored.
type MyResourcesAPI struct {
	client *Client
}

// NewMyResourcesAPI binds the authored-resource endpoints to a client.
func NewMyResourcesAPI(c *Client) *MyResourcesAPI {
	return &MyResourcesAPI{client: c}
}

// ResourceInput is the create/update payload for an authored resource.
type ResourceInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Type        string `json:"type,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// MyResourceListOptions paginates and filters the authored listing.
type MyResourceListOptions struct {
	Page    int
	PerPage int
	Status  string
}

func (o *MyResourceListOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setInt(v, "page", o.Page)
	setInt(v, "per_page", o.PerPage)
	setString(v, "status", o.Status)
	return v
}

// List fetches one page of the caller's own resources, drafts included.
func (m *MyResourcesAPI) List(ctx context.Context, opts *MyResourceListOptions) (*Page[Resource], error) {
	var page Page[Resource]
	if err := m.client.Get(ctx, "/api/my-resources", &page, listQuery(opts.values())); err != nil {
		return nil, err
	}
	return &page, nil
}

// Create submits a new resource.
func (m *MyResourcesAPI) Create(ctx context.Context, input ResourceInput) (*Resource, error) {
	var resp envelope[Resource]
	if err := m.client.Post(ctx, "/api/resources", input, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Update rewrites an authored resource.
func (m *MyResourcesAPI) Update(ctx context.Context, id int, input ResourceInput) (*Resource, error) {
	var resp envelope[Resource]
	if err := m.client.Put(ctx, fmt.Sprintf("/api/resources/%d", id), input, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Delete removes an authored resource.
func (m *MyResourcesAPI) Delete(ctx context.Context, id int) error {
	return m.client.Delete(ctx, fmt.Sprintf("/api/resources/%d", id), nil)
}

// Publish submits a draft for publication.
func (m *MyResourcesAPI) Publish(ctx context.Context, id int) (*ActionResult, error) {
	var resp ActionResult
	if err := m.client.Post(ctx, fmt.Sprintf("/api/resources/%d/publish", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
