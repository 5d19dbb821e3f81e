package resrel

import (
	"context"
	"fmt"
)

// FavoritesAPI manages the caller's bookmarked resources.
type FavoritesAPI struct {
	client *Client
}

// NewFavoritesAPI binds the favorites endpoints to a client.
func NewFavoritesAPI(c *Client) *FavoritesAPI {
	return &FavoritesAPI{client: c}
}

// List fetches one page of favorites.
func (f *FavoritesAPI) List(ctx context.Context, opts *ListOptions) (*Page[Favorite], error) {
	var page Page[Favorite]
	if err := f.client.Get(ctx, "/api/favorites", &page, listQuery(opts.values())); err != nil {
		return nil, err
	}
	return &page, nil
}

// Toggle flips the favorite state of a resource. The response is returned
// exactly as the backend shaped it, counters included.
func (f *FavoritesAPI) Toggle(ctx context.Context, resourceID int) (*FavoriteToggle, error) {
	var resp FavoriteToggle
	endpoint := fmt.Sprintf("/api/favorites/resources/%d", resourceID)
	if err := f.client.Post(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Remove deletes a favorite without the toggle round trip.
func (f *FavoritesAPI) Remove(ctx context.Context, resourceID int) error {
	return f.client.Delete(ctx, fmt.Sprintf("/api/favorites/resources/%d", resourceID), nil)
}
