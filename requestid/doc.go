// Package requestid provides HTTP middleware that assigns a ULID request ID
// to every request. Inbound tracing headers are reused when they already
// carry a valid ULID, so identifiers survive proxy hops; otherwise a fresh
// one is generated.
//
// The middleware uses the standard func(http.Handler) http.Handler shape and
// mounts on any stdlib-compatible router:
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware())
//	r.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
//		id := requestid.FromContext(r.Context())
//		// ...
//	})
//
// Options follow the functional option pattern:
//
//	requestid.Middleware(
//		requestid.WithHeaders("X-Trace-ID"),
//		requestid.WithResponseHeader("X-Trace-ID"),
//	)
package requestid
