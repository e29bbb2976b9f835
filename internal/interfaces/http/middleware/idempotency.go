package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/erp/godown/internal/domain/shared"
	"github.com/erp/godown/internal/infrastructure/logger"
	"github.com/erp/godown/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader names the client chosen key of a mutating request
const IdempotencyKeyHeader = "Idempotency-Key"

// MaxIdempotencyKeyLength caps the header value
const MaxIdempotencyKeyLength = 255

// Idempotency executes a request carrying an Idempotency-Key at most once
// per key and path within ttl. Repeats get 409 ERR_CONFLICT. A request that
// ends with a 4xx or 5xx status releases its key so the client can retry.
// Requests without the header pass through. A failing store lets the
// request through and logs a warning.
func Idempotency(store shared.IdempotencyStore, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > MaxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeBadRequest, "Idempotency-Key is too long", requestID(c)))
			return
		}

		ctx := c.Request.Context()
		scoped := c.Request.Method + " " + c.Request.URL.Path + " " + key
		fresh, err := store.MarkProcessed(ctx, scoped, ttl)
		if err != nil {
			logger.L(ctx).Warn("idempotency store unavailable, executing request",
				zap.String("idempotency_key", key),
				zap.Error(err),
			)
			c.Next()
			return
		}
		if !fresh {
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeConflict, "A request with this Idempotency-Key was already processed", requestID(c)))
			return
		}
		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := store.Release(context.WithoutCancel(ctx), scoped); err != nil {
				logger.L(ctx).Warn("failed to release idempotency key",
					zap.String("idempotency_key", key),
					zap.Error(err),
				)
			}
		}
	}
}
