package authenticate

import (
	"ChiwawaRelay/entity"
	"ChiwawaRelay/internal/lib/api/cont"
	"ChiwawaRelay/internal/lib/api/response"
	"ChiwawaRelay/internal/lib/sl"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Authenticate interface {
	AuthenticateByToken(token string) (*entity.UserAuth, error)
}

// New guards the management API with a Bearer token.
func New(log *slog.Logger, auth Authenticate) func(next http.Handler) http.Handler {
	mod := sl.Module("middleware.authenticate")
	log.With(mod).Info("authenticate middleware initialized")

	return func(next http.Handler) http.Handler {

		fn := func(w http.ResponseWriter, r *http.Request) {
			logger := log.With(
				mod,
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			header := r.Header.Get("Authorization")
			if len(header) == 0 {
				logger.Debug("authorization header not found")
				authFailed(w, r, "Authorization header not found")
				return
			}
			token, found := strings.CutPrefix(header, "Bearer ")
			token = strings.TrimSpace(token)
			if !found || len(token) == 0 {
				logger.Debug("token not found")
				authFailed(w, r, "Token not found")
				return
			}

			if auth == nil {
				authFailed(w, r, "Unauthorized: authentication not enabled")
				return
			}

			user, err := auth.AuthenticateByToken(token)
			if err != nil {
				logger.With(sl.Secret("token", token), sl.Err(err)).Debug("authentication failed")
				authFailed(w, r, "Unauthorized: token not found")
				return
			}

			ctx := cont.PutUser(r.Context(), user)
			w.Header().Set("X-User", user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

func authFailed(w http.ResponseWriter, r *http.Request, message string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(message))
}
