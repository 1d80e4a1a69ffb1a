package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "stapibridge/internal/platform/errors"
	"stapibridge/internal/platform/logger"
	pnet "stapibridge/internal/platform/net"
)

// RecoverJSON converts panics into a JSON 500 and logs stack with request id
// http.ErrAbortHandler is re-raised so the server can drop the connection
func RecoverJSON(write func(w stdhttp.ResponseWriter, status int, body any)) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == stdhttp.ErrAbortHandler {
					panic(v)
				}
				reqID := pnet.RequestID(r.Context())
				logger.C(r.Context()).Error().
					Interface("panic", v).
					Str("path", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				if reqID != "" {
					w.Header().Set("X-Request-ID", reqID)
				}
				status, body := pnet.Error(perr.PanicErrf("internal error"), reqID)
				write(w, status, body)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
