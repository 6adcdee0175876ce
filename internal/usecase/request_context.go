package usecase

import (
	"context"

	"quotelock/internal/domain/entities"
)

type requestContextKey struct{}

// WithRequestContext stores the caller's network details on ctx so audit events appended
// further down the call chain can pick them up.
func WithRequestContext(ctx context.Context, rc entities.RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// RequestContextFrom returns the details stored by WithRequestContext, if any.
func RequestContextFrom(ctx context.Context) (entities.RequestContext, bool) {
	rc, ok := ctx.Value(requestContextKey{}).(entities.RequestContext)
	return rc, ok
}

// resolveRequestContext prefers explicit values and falls back to the ambient ones field by field.
func resolveRequestContext(ctx context.Context, explicit *entities.RequestContext) entities.RequestContext {
	var out entities.RequestContext
	if explicit != nil {
		out = *explicit
	}
	ambient, ok := RequestContextFrom(ctx)
	if !ok {
		return out
	}
	if out.IPAddress == nil {
		out.IPAddress = ambient.IPAddress
	}
	if out.UserAgent == nil {
		out.UserAgent = ambient.UserAgent
	}
	return out
}
