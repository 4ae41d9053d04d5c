package mocks

import (
	"context"

	"tzbot/infras/otel"
)

// Otel hands out recording scopes and keeps them by span name.
type Otel struct {
	Scopes map[string]*Scope
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := &Scope{}

	if o.Scopes != nil {
		o.Scopes[spanName] = scope
	}

	return ctx, scope
}

func NewOtel() *Otel {
	return &Otel{Scopes: map[string]*Scope{}}
}
