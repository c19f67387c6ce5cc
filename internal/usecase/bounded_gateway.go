package usecase

import (
	"context"
	"errors"
	"fmt"
	"query-router/internal/domain/entity"
	"query-router/internal/domain/repository"
	"time"
)

// BoundedGateway caps every generative call with a timeout and guarantees the
// result is either text or a ModelUnavailableError. It never retries.
type BoundedGateway struct {
	inner   repository.ModelGateway
	timeout time.Duration // The Safety Layer Timeout
}

func NewBoundedGateway(inner repository.ModelGateway, timeout time.Duration) *BoundedGateway {
	return &BoundedGateway{inner: inner, timeout: timeout}
}

func (b *BoundedGateway) Invoke(ctx context.Context, mode entity.Mode, prompt string) (text string, err error) {
	if b.inner == nil {
		return "", entity.Unavailable(entity.ReasonNotConfigured, nil)
	}

	// Scoped context so one stalled call cannot hold a request open.
	callCtx := ctx
	if b.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	defer func() {
		if p := recover(); p != nil {
			text, err = "", entity.Unavailable(entity.ReasonTransport, fmt.Errorf("gateway panic: %v", p))
		}
	}()

	text, err = b.inner.Invoke(callCtx, mode, prompt)
	if err != nil {
		return "", normalize(callCtx, err)
	}
	if text == "" {
		return "", entity.Unavailable(entity.ReasonMalformed, errors.New("empty generation"))
	}
	return text, nil
}

func normalize(ctx context.Context, err error) error {
	// A deadline hit inside the provider may surface as a transport error.
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return entity.Unavailable(entity.ReasonTimeout, err)
	}
	if errors.Is(err, entity.ErrModelUnavailable) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return entity.Unavailable(entity.ReasonCanceled, err)
	}
	return entity.Unavailable(entity.ReasonTransport, err)
}
