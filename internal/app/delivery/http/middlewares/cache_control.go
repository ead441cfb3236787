package middlewares

import (
	"net/http"
	"trimline-service/internal/pkg/constvars"
)

// CacheControl marks every response uncacheable. Clients poll this API for
// freshness; a cached response would feed them a stale store and defeat
// reconciliation.
func (m *Middlewares) CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderCacheControl, constvars.CacheControlNoStore)
		w.Header().Set(constvars.HeaderPragma, constvars.PragmaNoCache)
		w.Header().Set(constvars.HeaderExpires, constvars.ExpiresImmediately)
		next.ServeHTTP(w, r)
	})
}
