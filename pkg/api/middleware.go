package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/marcusj6/JumpSearchTree/pkg/bench"
)

// apiKeyMiddleware validates the X-API-Key header against expectedKey
// before a request reaches any tree handler. metrics may be nil (tests
// exercise the middleware without standing up Prometheus collectors).
//
// A rejected request never reaches the per-route metrics.InstrumentHandler
// wrapping in server.go, so without this it would vanish from
// jumptree_http_requests_total entirely; recording it here keeps a
// rejected request visible in that metric. The rejection is labelled
// with the raw request path and status 401, not with the route pattern
// that InstrumentHandler uses for requests that pass.
func apiKeyMiddleware(expectedKey string, metrics *bench.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			apiKey := r.Header.Get("X-API-Key")

			var reason string
			switch {
			case apiKey == "":
				reason = "missing X-API-Key header"
			case apiKey != expectedKey:
				reason = "invalid API key"
			}

			if reason != "" {
				log.Printf("jumptree api: rejected %s %s: %s", r.Method, r.URL.Path, reason)
				if metrics != nil {
					metrics.RecordHTTPRequest(r.Method, r.URL.Path, http.StatusUnauthorized, time.Since(start))
				}
				sendError(w, reason, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// sendSuccess writes a successful APIResponse envelope carrying data.
func sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(APIResponse{Success: true, Data: data})
}

// sendError writes a failed APIResponse envelope with message and
// statusCode.
func sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Success: false, Error: message})
}
