package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/sejongtown/campus-assistant/internal/infrastructure/observability"
)

// Observability wraps each request in a trace span and records request
// metrics. metrics may be nil when telemetry is disabled.
func Observability(metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := observability.StartSpan(r.Context(), fmt.Sprintf("%s %s", r.Method, r.URL.Path))
			defer span.End()

			observability.SetSpanAttributes(span,
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			)

			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r.WithContext(ctx))

			observability.SetSpanAttributes(span,
				attribute.Int("http.status_code", rw.status),
			)

			if metrics != nil {
				observability.RecordRequestMetric(ctx, metrics, r.Method, r.URL.Path, rw.status, time.Since(start))
			}
		})
	}
}
