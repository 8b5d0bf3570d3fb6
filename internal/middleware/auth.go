package middleware

import (
	"net/http"

	"inkwell/internal/auth"
	"inkwell/internal/repository"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// SessionCookieName is the identity-bearing cookie. Its value is a signed
// token wrapping the user id; absence or an invalid tag means anonymous.
const SessionCookieName = "user_id"

// LoadUser resolves the caller's identity from the session cookie and sets
// the user into the gin context. Invalid or stale cookies are treated as
// anonymous, never as errors.
func LoadUser(signer *auth.CookieSigner, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err == nil && token != "" {
			if idStr, ok := signer.Verify(token); ok {
				if id := utils.StringToInt(idStr); id > 0 {
					if user, err := users.FindByID(c.Request.Context(), uint(id)); err == nil {
						c.Set(CheckUserKey, user)
					}
				}
			}
		}
		c.Next()
	}
}

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
