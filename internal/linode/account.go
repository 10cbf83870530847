package linode

import "context"

// GetAccount returns the account that owns the API token.
func (a *API) GetAccount(ctx context.Context) (*Account, error) {
	return doGet[Account](ctx, a.d, "get_account", "/account")
}

// GetProfile returns the user profile attached to the token.
func (a *API) GetProfile(ctx context.Context) (*Profile, error) {
	return doGet[Profile](ctx, a.d, "get_profile", "/profile")
}
