package middleware

import (
	"github.com/erp/godown/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func requestID(c *gin.Context) string {
	return c.GetString(logger.RequestIDKey)
}

// Tracing starts a server span per request through otelgin
func Tracing(serviceName string, opts ...otelgin.Option) gin.HandlerFunc {
	return otelgin.Middleware(serviceName, opts...)
}

// SpanAttributes adds request attributes to the span otelgin started.
// It must run after Tracing and RequestID.
func SpanAttributes() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if span.IsRecording() {
			if id := requestID(c); id != "" {
				span.SetAttributes(attribute.String("request_id", id))
			}
			if user := c.GetHeader("X-User-ID"); user != "" && len(user) <= 64 {
				span.SetAttributes(attribute.String("user_id", user))
			}
		}
		c.Next()
	}
}
