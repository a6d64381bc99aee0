package middleware

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger logs one structured line per handled request, tagged with a
// generated request id.
func RequestLogger(logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		requestID := uuid.NewString()

		next(ctx)

		url := ctx.URL()
		logger.Info("request handled",
			zap.String("request_id", requestID),
			zap.String("method", ctx.Method()),
			zap.String("path", url.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
