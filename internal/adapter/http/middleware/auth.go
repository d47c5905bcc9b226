package middleware

import (
	"net/http"

	"engagetrack/internal/usecase/interfaces"
	"engagetrack/pkg"

	"github.com/gin-gonic/gin"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "A valid session is required", http.StatusUnauthorized)

// RequireSession verifies the session cookie and stores the subject under
// azure_id for downstream handlers. Requests without a valid session are
// rejected before reaching any /api handler.
func RequireSession(sessions interfaces.ISessionTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("token")
		if err != nil || token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		azureID, err := sessions.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set("azure_id", azureID)
		c.Next()
	}
}
