package middleware

import (
	"github.com/opentracing/opentracing-go"
	"github.com/yur1-dev/koka-backend/internal/hdl"
	"github.com/yur1-dev/koka-backend/internal/hdl/http/utils"
	"go.uber.org/zap"
	"net/http"
)

func ApplyMiddleware(h http.HandlerFunc, middleware ...func(http.Handler) http.Handler) http.HandlerFunc {
	handler := http.Handler(h)
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}
	return handler.ServeHTTP
}

func RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					zap.L().Error(
						"panic recovered",
						zap.Any("error", rec), zap.String("path", r.URL.Path),
					)
					utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
				}
			}()
			next.ServeHTTP(w, r)
		},
	)
}

func TracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span := opentracing.GlobalTracer().StartSpan(r.URL.Path)
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(opentracing.ContextWithSpan(r.Context(), span)))
		},
	)
}
