// Package auth resolves who is using the dashboard.
package auth

import (
	"context"
	"errors"

	"github.com/energyexe/dashboard/internal/api"
	"github.com/energyexe/dashboard/internal/query"
)

// Session is the authentication state seen by pages.
type Session struct {
	User            *api.User
	IsAuthenticated bool
	IsLoading       bool
}

// UserSource looks up the account behind the configured credentials.
type UserSource interface {
	HasToken() bool
	CurrentUser(ctx context.Context) (api.User, error)
}

// Start begins resolving the session. Without a token nothing is fetched
// and the session is immediately anonymous.
func Start(ctx context.Context, src UserSource) *query.Resource[api.User] {
	return query.Start(ctx, func(ctx context.Context) (api.User, error) {
		if !src.HasToken() {
			return api.User{}, api.ErrUnauthorized
		}
		return src.CurrentUser(ctx)
	})
}

// FromResult maps a user query onto a session. Rejected credentials are an
// anonymous session; any other failure is returned.
func FromResult(r query.Result[api.User]) (Session, error) {
	switch {
	case r.IsLoading:
		return Session{IsLoading: true}, nil
	case r.Err != nil:
		if errors.Is(r.Err, api.ErrUnauthorized) {
			return Session{}, nil
		}
		return Session{}, r.Err
	default:
		return Session{User: r.Data, IsAuthenticated: r.Data != nil}, nil
	}
}

// Resolve blocks until the session is known.
func Resolve(ctx context.Context, src UserSource) (Session, error) {
	res := Start(ctx, src).Wait(ctx)
	if res.IsLoading {
		return Session{IsLoading: true}, ctx.Err()
	}
	return FromResult(res)
}
