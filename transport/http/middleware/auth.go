package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"vigil/config"
	"vigil/infras/otel"
	"vigil/shared/constant"
	"vigil/shared/failure"
	"vigil/transport/http/response"

	"github.com/rs/zerolog/log"
)

const apiKeyActor = "api-key"

// Auth guards mutating endpoints with a static API key.
type Auth interface {
	APIKey(next http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey compares the X-API-Key header against the configured key. An
// empty configured key disables the check, which is only sensible for
// local development.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.apikey")
		defer scope.End()

		configured := m.cfg.App.APIKey
		if configured == "" {
			log.Warn().Msg("API key check disabled, no key configured")

			next.ServeHTTP(writer, request.WithContext(ctx))

			return
		}

		provided := request.Header.Get(constant.RequestHeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(configured)) != 1 {
			err := failure.Unauthorized("invalid or missing API key")
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyActor, apiKeyActor)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
