package middlewares

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RequestTiming opens one span per request, named after the matched route,
// and tags it with the report or note being read and the search terms.
func RequestTiming() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		ctx, span := otel.Tracer("radar-api").Start(c.Request.Context(), c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(requestAttributes(c, route)...),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.Int64("http.duration_ms", time.Since(start).Milliseconds()),
		)
		if status >= 400 {
			span.SetStatus(codes.Error, c.Errors.String())
		}
	}
}

func requestAttributes(c *gin.Context, route string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", route),
		attribute.String("http.request_id", c.GetString(RequestIDKey)),
	}
	if slug := c.Param("slug"); slug != "" {
		kind := "daily"
		if strings.HasPrefix(route, "/api/v1/notes") {
			kind = "note"
		}
		attrs = append(attrs, attribute.String("radar."+kind+".slug", slug))
	}
	if q := c.Query("q"); q != "" {
		attrs = append(attrs, attribute.String("radar.search.query", q))
	}
	return attrs
}
