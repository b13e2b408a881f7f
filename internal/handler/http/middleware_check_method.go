package http

import "net/http"

// hideRoute handles method-not-allowed requests with a plain 404. Returning
// 405 would confirm that the path exists, which makes probing for endpoints
// cheaper than it needs to be.
func (h *Handler) hideRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}
}
