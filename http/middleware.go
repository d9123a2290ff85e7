package http

import "log/slog"

// RecoverMiddleware keeps a handler panic scoped to its connection: the panic
// is logged and answered with a 500 page while the accept loop keeps running.
func RecoverMiddleware(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx *RequestCtx) {
			defer func() {
				if recovered := recover(); recovered != nil {
					logger.Error("handler panic",
						"conn_id", ctx.ID,
						"path", string(ctx.Request.Path),
						"panic", recovered)
					ctx.Response.WithStatusPage(StatusInternalServerError)
				}
			}()

			next(ctx)
		}
	}
}
