package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jezdibolt/backend-go/internal/domain/auth"
	"github.com/jezdibolt/backend-go/internal/handler/http/response"
)

// RequirePermission guards a route group on one permission claim. The
// token is already verified by AuthRequired; this only inspects the
// claim set.
func RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			granted, ok := claims["permissions"].([]interface{})
			if !ok {
				response.HandleError(w, auth.ErrPermissionDenied)
				return
			}
			for _, p := range granted {
				if name, ok := p.(string); ok && name == permission {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.HandleError(w, auth.ErrPermissionDenied)
		}
		return http.HandlerFunc(hfn)
	}
}
