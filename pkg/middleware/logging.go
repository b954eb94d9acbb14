package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o id usado nos logs da requisição
const CorrelationIDHeader = "X-Correlation-ID"

const (
	slowRequestThreshold = 500 * time.Millisecond
	maxCorrelationIDLen  = 64
	healthcheckPath      = "/healthcheck"
)

// LoggingMiddleware registra início e fim de cada requisição com o id de correlação
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := correlationFor(r)
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			// healthcheck de orquestrador só aparece em debug
			quiet := r.URL.Path == healthcheckPath

			fields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
			}
			if !log.IsDevelopment() {
				fields["remote_addr"] = r.RemoteAddr
				fields["query"] = r.URL.RawQuery
				fields["user_agent"] = r.UserAgent()
			}

			if quiet {
				log.L.WithFields(fields).Debug("→ Requisição iniciada")
			} else {
				log.L.WithFields(fields).Info("→ Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status_code":    lrw.statusCode,
				"bytes":          lrw.bytes,
				"duration_ms":    elapsed.Milliseconds(),
			})
			msg := fmt.Sprintf("%s Completada em %s", statusSymbol(lrw.statusCode), formatDuration(elapsed))

			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			case quiet:
				logger.Debug(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s %s", r.Method, r.URL.Path)
			}
		})
	}
}

func correlationFor(r *http.Request) (context.Context, string) {
	if incoming := r.Header.Get(CorrelationIDHeader); incoming != "" && len(incoming) <= maxCorrelationIDLen {
		return log.UseCorrelationID(r.Context(), incoming), incoming
	}
	return log.WithCorrelationID(r.Context())
}

func statusSymbol(status int) string {
	if status >= 400 {
		return "✗"
	}
	return "✓"
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura status e tamanho da resposta
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := lrw.ResponseWriter.Write(b)
	lrw.bytes += n
	return n, err
}

// LogPanicMiddleware recupera panics de handlers e responde 500 no formato padrão da API
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stackTrace := string(stack[:runtime.Stack(stack, false)])

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"panic_error": recovered,
					"method":      r.Method,
					"path":        r.URL.Path,
				})
				logger.Error("❌ Erro não tratado na aplicação")

				if log.IsDevelopment() {
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stackTrace)
				} else {
					logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
