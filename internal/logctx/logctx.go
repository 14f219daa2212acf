// Package logctx enriches slog records with validation-scoped context.
package logctx

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Handler wraps another slog.Handler and annotates records with any
// validation data carried by the context.
type Handler struct {
	slog.Handler
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if vd, ok := ctx.Value(validationDataKey{}).(*ValidationData); ok {
		r.AddAttrs(slog.Group("validation",
			slog.String("id", vd.ValidationID),
			slog.String("authority", vd.Authority),
			slog.String("issuer", vd.Issuer),
		))
	}
	return h.Handler.Handle(ctx, r)
}

type validationDataKey struct{}

type ValidationData struct {
	ValidationID string
	Authority    string
	Issuer       string
}

// WithValidation tags ctx with a fresh validation id for the given authority
// and claimed issuer.
func WithValidation(ctx context.Context, authority, issuer string) context.Context {
	return context.WithValue(ctx, validationDataKey{}, &ValidationData{
		ValidationID: uuid.NewString(),
		Authority:    authority,
		Issuer:       issuer,
	})
}

// FromContext returns the validation data on ctx, if any.
func FromContext(ctx context.Context) (*ValidationData, bool) {
	vd, ok := ctx.Value(validationDataKey{}).(*ValidationData)
	return vd, ok
}
