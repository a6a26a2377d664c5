package health

import (
	"encoding/json"
	"net/http"
)

// LivenessHandler reports {"status":"healthy"} while the process can serve requests.
func LivenessHandler() http.HandlerFunc {
	alive := &Response{Status: StatusHealthy}
	return func(w http.ResponseWriter, _ *http.Request) {
		respond(w, http.StatusOK, alive)
	}
}

// ReadinessHandler runs checks on every request.
// Any failing check turns the response into 503 with the failing check's error.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	cfg := newConfig(opts...)

	return func(w http.ResponseWriter, r *http.Request) {
		resp := runChecks(r.Context(), checks, cfg)
		if resp.Status == StatusUnhealthy {
			respond(w, http.StatusServiceUnavailable, resp)
			return
		}
		respond(w, http.StatusOK, resp)
	}
}

func respond(w http.ResponseWriter, status int, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
