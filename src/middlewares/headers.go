package middlewares

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

func SecureHeaders(ctx *gin.Context) {
	h := ctx.Writer.Header()
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-Frame-Options", "DENY")
	h.Set("Referrer-Policy", "no-referrer")
	h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
	ctx.Next()
}

// RequestID tags every request with an id, reusing the caller's when given.
func RequestID(ctx *gin.Context) {
	id := ctx.GetHeader(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	ctx.Set("requestId", id)
	ctx.Header(RequestIDHeader, id)
	start := time.Now()
	ctx.Next()
	if len(ctx.Errors) > 0 {
		log.Printf("[http] %s %s %s -> %d in %s: %s\n", id, ctx.Request.Method, ctx.Request.URL.Path,
			ctx.Writer.Status(), time.Since(start), ctx.Errors.String())
	}
}
