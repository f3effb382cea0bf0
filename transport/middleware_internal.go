package transport

import (
	"net/http"

	"github.com/muhammadheryan/supply-chain/constant"
	"github.com/muhammadheryan/supply-chain/utils/errors"
)

// InternalMiddleware checks for the static service API key in the
// Authorization header. Internal routes are only called by our own consumers.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+apiKey {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
