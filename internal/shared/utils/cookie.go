package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"turnero/internal/shared/config"
)

// SessionCookie holds the admin access token.
const SessionCookie = "turnero_session"

// SetSessionCookie stores the admin access token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(SessionCookie, token, maxAge, cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
}

// ClearSessionCookie expires the admin access token cookie.
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(SessionCookie, "", -1, cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
}

// GetSessionToken reads the access token from the session cookie, falling back
// to an "Authorization: Bearer" header for API clients.
func GetSessionToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
