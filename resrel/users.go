package resrel

import (
	"context"
	"fmt"
	"net/url"
)

// UsersAPI exposes the moderation endpoints. The backend rejects these
// calls for accounts without the matching permissions; the client does
// not pre-check roles.
type UsersAPI struct {
	client *Client
}

// NewUsersAPI binds the user administration endpoints to a client.
func NewUsersAPI(c *Client) *UsersAPI {
	return &UsersAPI{client: c}
}

// UserListOptions filters and paginates the user listing.
type UserListOptions struct {
	Page    int
	PerPage int
	Role    string
	Search  string
}

func (o *UserListOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setInt(v, "page", o.Page)
	setInt(v, "per_page", o.PerPage)
	setString(v, "role", o.Role)
	setString(v, "search", o.Search)
	return v
}

// List fetches one page of platform users.
func (u *UsersAPI) List(ctx context.Context, opts *UserListOptions) (*Page[User], error) {
	var page Page[User]
	if err := u.client.Get(ctx, "/api/users", &page, listQuery(opts.values())); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches a single user.
func (u *UsersAPI) Get(ctx context.Context, id int) (*User, error) {
	var resp envelope[User]
	if err := u.client.Get(ctx, fmt.Sprintf("/api/users/%d", id), &resp, nil); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateRole changes a user's role.
func (u *UsersAPI) UpdateRole(ctx context.Context, id int, role string) (*User, error) {
	var resp envelope[User]
	payload := map[string]string{"role": role}
	if err := u.client.Put(ctx, fmt.Sprintf("/api/users/%d/role", id), payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Verify marks an account as verified.
func (u *UsersAPI) Verify(ctx context.Context, id int) (*ActionResult, error) {
	var resp ActionResult
	if err := u.client.Post(ctx, fmt.Sprintf("/api/users/%d/verify", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Suspend blocks an account.
func (u *UsersAPI) Suspend(ctx context.Context, id int) (*ActionResult, error) {
	var resp ActionResult
	if err := u.client.Post(ctx, fmt.Sprintf("/api/users/%d/suspend", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
