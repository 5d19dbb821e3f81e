package resrel

import (
	"context"
	"fmt"
	"net/url"
)

// ResourcesAPI reads the public resource catalog. Stateless: every method
// is one Client call.
type ResourcesAPI struct {
	client *Client
}

// NewResourcesAPI binds the catalog endpoints to a client.
func NewResourcesAPI(c *Client) *ResourcesAPI {
	return &ResourcesAPI{client: c}
}

// ResourceListOptions filters and paginates the catalog listing.
type ResourceListOptions struct {
	Page     int
	PerPage  int
	Category string
	Type     string
	Search   string
	Sort     string
}

func (o *ResourceListOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setInt(v, "page", o.Page)
	setInt(v, "per_page", o.PerPage)
	setString(v, "category", o.Category)
	setString(v, "type", o.Type)
	setString(v, "search", o.Search)
	setString(v, "sort", o.Sort)
	return v
}

// List fetches one page of the catalog.
func (r *ResourcesAPI) List(ctx context.Context, opts *ResourceListOptions) (*Page[Resource], error) {
	var page Page[Resource]
	if err := r.client.Get(ctx, "/api/resources", &page, listQuery(opts.values())); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches a single resource.
func (r *ResourcesAPI) Get(ctx context.Context, id int) (*Resource, error) {
	var resp envelope[Resource]
	if err := r.client.Get(ctx, fmt.Sprintf("/api/resources/%d", id), &resp, nil); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Categories lists the catalog categories.
func (r *ResourcesAPI) Categories(ctx context.Context) ([]Category, error) {
	var resp envelope[[]Category]
	if err := r.client.Get(ctx, "/api/categories", &resp, nil); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
