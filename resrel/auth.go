package resrel

import (
	"context"
	"errors"
)

// AuthAPI translates authentication calls into Client requests. It is the
// one module with a side effect beyond the HTTP call itself: it writes the
// session token after a successful login or registration and removes it on
// every logout attempt.
type AuthAPI struct {
	client *Client
}

// NewAuthAPI binds the auth endpoints to a client.
func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{client: c}
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the account creation payload.
type Registration struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// authResponse tolerates both envelope conventions the backend uses:
// the user may arrive under "user" or under "data".
type authResponse struct {
	User    *User  `json:"user"`
	Data    *User  `json:"data"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

func (r *authResponse) user() *User {
	if r.User != nil {
		return r.User
	}
	return r.Data
}

// Login primes the CSRF cookie, posts the credentials, and on success
// persists the returned token before handing back the user.
func (a *AuthAPI) Login(ctx context.Context, creds Credentials) (*User, error) {
	a.client.PrimeCSRF(ctx)

	var resp authResponse
	if err := a.client.Post(ctx, "/login", creds, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := a.client.Tokens().Save(resp.Token); err != nil {
			return nil, err
		}
	}
	return resp.user(), nil
}

// Register creates an account. Same contract as Login: the returned token
// is persisted so the new account is immediately signed in.
func (a *AuthAPI) Register(ctx context.Context, reg Registration) (*User, error) {
	a.client.PrimeCSRF(ctx)

	var resp authResponse
	if err := a.client.Post(ctx, "/register", reg, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := a.client.Tokens().Save(resp.Token); err != nil {
			return nil, err
		}
	}
	return resp.user(), nil
}

// Logout tells the backend to revoke the session, then clears the local
// token whether or not the remote call succeeded. Failing open locally
// beats stranding the caller with a dead token; the remote error is still
// returned so it can be reported.
func (a *AuthAPI) Logout(ctx context.Context) error {
	remoteErr := a.client.Post(ctx, "/api/logout", nil, nil)

	// A 401 already cleared the token inside the client; clearing twice
	// is harmless.
	if err := a.client.Tokens().Clear(); err != nil {
		return errors.Join(remoteErr, err)
	}
	return remoteErr
}

// CurrentUser fetches the profile bound to the stored token.
func (a *AuthAPI) CurrentUser(ctx context.Context) (*User, error) {
	var resp authResponse
	if err := a.client.Get(ctx, "/api/user", &resp, nil); err != nil {
		return nil, err
	}
	user := resp.user()
	if user == nil {
		return nil, &TransportError{Message: "réponse inattendue: utilisateur absent"}
	}
	return user, nil
}
