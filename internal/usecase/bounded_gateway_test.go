package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"query-router/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundedGateway(t *testing.T) {
	ctx := context.Background()

	t.Run("passes text through", func(t *testing.T) {
		text, err := NewBoundedGateway(answering("hello"), time.Second).Invoke(ctx, entity.ModeGeneralExpert, "p")
		require.NoError(t, err)
		assert.Equal(t, "hello", text)
	})

	t.Run("stalled call times out", func(t *testing.T) {
		stall := &fakeGateway{fn: func(ctx context.Context, _ entity.Mode, _ string) (string, error) {
			<-ctx.Done()
			return "", errors.New("stream closed")
		}}
		_, err := NewBoundedGateway(stall, 10*time.Millisecond).Invoke(ctx, entity.ModeGeneralExpert, "p")
		require.ErrorIs(t, err, entity.ErrModelUnavailable)
		assert.Equal(t, entity.ReasonTimeout, entity.ReasonOf(err))
	})

	t.Run("foreign errors are wrapped", func(t *testing.T) {
		_, err := NewBoundedGateway(failing(errors.New("boom")), time.Second).Invoke(ctx, entity.ModeGeneralExpert, "p")
		require.ErrorIs(t, err, entity.ErrModelUnavailable)
		assert.Equal(t, entity.ReasonTransport, entity.ReasonOf(err))
	})

	t.Run("typed errors keep their reason", func(t *testing.T) {
		gw := failing(entity.Unavailable(entity.ReasonRateLimit, nil))
		_, err := NewBoundedGateway(gw, time.Second).Invoke(ctx, entity.ModeGeneralExpert, "p")
		assert.Equal(t, entity.ReasonRateLimit, entity.ReasonOf(err))
	})

	t.Run("empty text is malformed", func(t *testing.T) {
		_, err := NewBoundedGateway(answering(""), time.Second).Invoke(ctx, entity.ModeGeneralExpert, "p")
		assert.Equal(t, entity.ReasonMalformed, entity.ReasonOf(err))
	})

	t.Run("panic is contained", func(t *testing.T) {
		gw := &fakeGateway{fn: func(context.Context, entity.Mode, string) (string, error) { panic("nil map") }}
		_, err := NewBoundedGateway(gw, time.Second).Invoke(ctx, entity.ModeGeneralExpert, "p")
		assert.ErrorIs(t, err, entity.ErrModelUnavailable)
	})

	t.Run("no inner gateway", func(t *testing.T) {
		_, err := NewBoundedGateway(nil, time.Second).Invoke(ctx, entity.ModeGeneralExpert, "p")
		assert.Equal(t, entity.ReasonNotConfigured, entity.ReasonOf(err))
	})

	t.Run("exactly one attempt", func(t *testing.T) {
		gw := failing(errors.New("503 overloaded"))
		_, _ = NewBoundedGateway(gw, time.Second).Invoke(ctx, entity.ModeGeneralExpert, "p")
		assert.Equal(t, 1, gw.calls)
	})
}
