package resrel

import (
	"context"
	"io"
)

// ProfileAPI manages the caller's own account data.
type ProfileAPI struct {
	client *Client
}

// NewProfileAPI binds the profile endpoints to a client.
func NewProfileAPI(c *Client) *ProfileAPI {
	return &ProfileAPI{client: c}
}

// ProfileUpdate carries the editable profile fields. Empty fields are
// omitted so the backend leaves them untouched.
type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

// PasswordUpdate carries a password change request.
type PasswordUpdate struct {
	CurrentPassword      string `json:"current_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Get fetches the caller's profile.
func (p *ProfileAPI) Get(ctx context.Context) (*User, error) {
	var resp envelope[User]
	if err := p.client.Get(ctx, "/api/profile", &resp, nil); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Update writes the editable profile fields and returns the fresh profile.
func (p *ProfileAPI) Update(ctx context.Context, update ProfileUpdate) (*User, error) {
	var resp envelope[User]
	if err := p.client.Put(ctx, "/api/profile", update, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdatePassword changes the account password. Validation failures come
// back as a 422 with field errors, like any form submission.
func (p *ProfileAPI) UpdatePassword(ctx context.Context, update PasswordUpdate) error {
	return p.client.Put(ctx, "/api/profile/password", update, nil)
}

// UploadAvatar replaces the profile picture. The upload goes out as
// multipart form data, not JSON.
func (p *ProfileAPI) UploadAvatar(ctx context.Context, filename string, content io.Reader) (*User, error) {
	var resp envelope[User]
	up := Upload{Field: "avatar", Filename: filename, Content: content}
	if err := p.client.PostMultipart(ctx, "/api/profile/avatar", up, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
