package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/platewise/platewise-backend/internal/platform/ctxutil"
)

// TraceContext attaches a request id (taken from X-Request-ID or freshly
// minted) and the active OTel trace id to the request context so the
// request logger can correlate lines.
func TraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader("X-Request-ID"))
		if requestID == "" {
			requestID = uuid.New().String()
		}

		td := &ctxutil.TraceData{RequestID: requestID}
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			td.TraceID = sc.TraceID().String()
		}

		c.Request = c.Request.WithContext(ctxutil.WithTraceData(c.Request.Context(), td))
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}
