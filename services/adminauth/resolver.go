package adminauth

import (
	"context"

	"github.com/MarcGrol/hoopstore/lib/mysupabase"
)

type supabaseResolver struct {
	auth *mysupabase.AuthClient
}

// NewSupabaseResolver validates the token with Supabase Auth on every call.
func NewSupabaseResolver(auth *mysupabase.AuthClient) SessionResolver {
	return &supabaseResolver{
		auth: auth,
	}
}

func (r *supabaseResolver) ResolvePrincipal(c context.Context, accessToken string) (Principal, bool, error) {
	user, found, err := r.auth.GetUser(c, accessToken)
	if err != nil || !found {
		return Principal{}, false, err
	}
	return Principal{
		ID:    user.ID,
		Email: user.Email,
	}, true, nil
}

type anonymousResolver struct{}

// NewAnonymousResolver is used when no identity provider is configured: nobody is authenticated.
func NewAnonymousResolver() SessionResolver {
	return anonymousResolver{}
}

func (anonymousResolver) ResolvePrincipal(c context.Context, accessToken string) (Principal, bool, error) {
	return Principal{}, false, nil
}
