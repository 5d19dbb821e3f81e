package resrel

import (
	"context"
	"fmt"
)

// DiscussionsAPI reads and writes the comment thread under a resource.
type DiscussionsAPI struct {
	client *Client
}

// NewDiscussionsAPI binds the discussion endpoints to a client.
func NewDiscussionsAPI(c *Client) *DiscussionsAPI {
	return &DiscussionsAPI{client: c}
}

// List fetches one page of a resource's comment thread.
func (d *DiscussionsAPI) List(ctx context.Context, resourceID int, opts *ListOptions) (*Page[Comment], error) {
	var page Page[Comment]
	endpoint := fmt.Sprintf("/api/resources/%d/comments", resourceID)
	if err := d.client.Get(ctx, endpoint, &page, listQuery(opts.values())); err != nil {
		return nil, err
	}
	return &page, nil
}

// Post adds a comment to a resource's thread.
func (d *DiscussionsAPI) Post(ctx context.Context, resourceID int, body string) (*Comment, error) {
	var resp envelope[Comment]
	endpoint := fmt.Sprintf("/api/resources/%d/comments", resourceID)
	payload := map[string]string{"body": body}
	if err := d.client.Post(ctx, endpoint, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Delete removes one of the caller's comments.
func (d *DiscussionsAPI) Delete(ctx context.Context, commentID int) error {
	return d.client.Delete(ctx, fmt.Sprintf("/api/comments/%d", commentID), nil)
}
