package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"query-router/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type stubGenerator struct {
	text    string
	err     error
	prompts []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.text, s.err
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("missing credential degrades", func(t *testing.T) {
		gw, state := Initialize(ctx, GatewayConfig{GeneralModel: "m", CompanyModel: "m"}, zap.NewNop())
		assert.Nil(t, gw)
		assert.False(t, state.Available())
		assert.ErrorIs(t, state.Warning(), entity.ErrConfiguration)
	})

	t.Run("missing model names degrade", func(t *testing.T) {
		_, state := Initialize(ctx, GatewayConfig{APIKey: "key"}, zap.NewNop())
		assert.False(t, state.Available())
	})

	t.Run("api key configures both handles", func(t *testing.T) {
		gw, state := Initialize(ctx, GatewayConfig{
			APIKey:       "test-key",
			GeneralModel: "gemini-2.5-flash",
			CompanyModel: "gemini-2.5-flash",
		}, zap.NewNop())
		require.True(t, state.Available())
		assert.NoError(t, state.Warning())
		require.NotNil(t, gw)
		assert.Len(t, gw.handles, 2)
	})
}

func TestGateway_Invoke(t *testing.T) {
	ctx := context.Background()

	t.Run("routes by mode", func(t *testing.T) {
		general := &stubGenerator{text: "general answer"}
		company := &stubGenerator{text: "company answer"}
		gw := NewGateway(general, company)

		out, err := gw.Invoke(ctx, entity.ModeOrganizationRepresentative, "p1")
		require.NoError(t, err)
		assert.Equal(t, "company answer", out)
		assert.Empty(t, general.prompts)
		assert.Equal(t, []string{"p1"}, company.prompts)
	})

	t.Run("provider errors become ModelUnavailable", func(t *testing.T) {
		gw := NewGateway(&stubGenerator{err: errors.New("connection reset by peer")}, nil)

		_, err := gw.Invoke(ctx, entity.ModeGeneralExpert, "p")
		require.ErrorIs(t, err, entity.ErrModelUnavailable)
		assert.Equal(t, entity.ReasonTransport, entity.ReasonOf(err))
	})

	t.Run("missing handle", func(t *testing.T) {
		gw := NewGateway(&stubGenerator{text: "x"}, nil)
		_, err := gw.Invoke(ctx, entity.ModeOrganizationRepresentative, "p")
		assert.Equal(t, entity.ReasonNotConfigured, entity.ReasonOf(err))
	})

	t.Run("nil gateway", func(t *testing.T) {
		var gw *Gateway
		_, err := gw.Invoke(ctx, entity.ModeGeneralExpert, "p")
		assert.ErrorIs(t, err, entity.ErrModelUnavailable)
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want entity.FailureReason
	}{
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), entity.ReasonTimeout},
		{"canceled", context.Canceled, entity.ReasonCanceled},
		{"empty generation", errEmptyGeneration, entity.ReasonMalformed},
		{"api 401", genai.APIError{Code: 401, Message: "unauthorized"}, entity.ReasonAuth},
		{"api 429", genai.APIError{Code: 429, Message: "slow down"}, entity.ReasonRateLimit},
		{"api 400 bad key", genai.APIError{Code: 400, Message: "API key not valid"}, entity.ReasonAuth},
		{"api 503", genai.APIError{Code: 503, Message: "overloaded"}, entity.ReasonTransport},
		{"quota text", errors.New("RESOURCE_EXHAUSTED: quota"), entity.ReasonRateLimit},
		{"plain transport", errors.New("dial tcp: no route to host"), entity.ReasonTransport},
		{"already classified", entity.Unavailable(entity.ReasonAuth, nil), entity.ReasonAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.Equal(t, tt.want, got.Reason)
			assert.ErrorIs(t, got, entity.ErrModelUnavailable)
		})
	}
}
