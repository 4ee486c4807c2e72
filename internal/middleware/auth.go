package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/deppfellow/clothes-catalog/internal/errs"
	"github.com/deppfellow/clothes-catalog/internal/server"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates mutating routes behind a Clerk session token.
type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// writeUnauthorized answers with the same envelope the global error
// handler uses. Clerk rejects the request in net/http land, before Echo's
// error handler can see it.
func (auth *AuthMiddleware) writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w.WriteHeader(http.StatusUnauthorized)

	if err := json.NewEncoder(w).Encode(errs.NewUnauthorizedError("Unauthorized", false)); err != nil {
		auth.server.Logger.Error().Err(err).Msg("failed to write unauthorized response")
		return
	}

	auth.server.Logger.Warn().
		Str("function", "RequireAuth").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("rejected request without a valid session token")
}

// RequireAuth verifies the "Authorization: Bearer <token>" header with
// Clerk. On success the subject and organization role are stored on the
// Echo context; on failure the request ends with 401 and the handler never
// runs.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	verify := echo.WrapMiddleware(clerkhttp.WithHeaderAuthorization(
		clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(auth.writeUnauthorized)),
	))

	return verify(func(c echo.Context) error {
		claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
		if !ok {
			GetLogger(c).Warn().
				Str("function", "RequireAuth").
				Msg("no session claims on authenticated request")
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserRoleKey, claims.ActiveOrganizationRole)

		logger := GetLogger(c).With().Str("user_id", claims.Subject).Logger()
		setLogger(c, logger)

		logger.Debug().Str("function", "RequireAuth").Msg("user authenticated")

		return next(c)
	})
}
