package prefs

import "context"

type ctxKey struct{}

// WithController returns a context whose subtree can reach c.
func WithController(ctx context.Context, c *Controller) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the controller attached to ctx, or
// ErrContextUnavailable when there is none.
func FromContext(ctx context.Context) (*Controller, error) {
	if ctx == nil {
		return nil, ErrContextUnavailable
	}
	c, ok := ctx.Value(ctxKey{}).(*Controller)
	if !ok || c == nil {
		return nil, ErrContextUnavailable
	}
	return c, nil
}

// MustFromContext is like FromContext but panics when no controller is in
// scope.
func MustFromContext(ctx context.Context) *Controller {
	c, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return c
}
