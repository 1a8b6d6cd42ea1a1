// Package auth issues and checks the admin session cookie.
package auth

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the admin session cookie.
	CookieName = "cobbscrumbs_admin_session"
	// MaxAge is how long a session cookie lives, in seconds.
	MaxAge = 7 * 24 * 60 * 60
)

// Sessions sets and checks the admin cookie.
type Sessions struct {
	Secret string
	Secure bool
	Now    func() time.Time
}

// NewSessions returns a Sessions whose cookies are marked Secure when secure
// is true.
func NewSessions(secret string, secure bool) *Sessions {
	return &Sessions{Secret: secret, Secure: secure, Now: time.Now}
}

// NewToken builds a session token: base64("<unix millis>-<secret>").
func NewToken(secret string, now time.Time) string {
	raw := strconv.FormatInt(now.UnixMilli(), 10) + "-" + secret
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Start writes a fresh session cookie.
func (s *Sessions) Start(c *gin.Context) {
	s.write(c, NewToken(s.Secret, s.Now()), MaxAge)
}

// End expires the session cookie.
func (s *Sessions) End(c *gin.Context) {
	s.write(c, "", -1)
}

func (s *Sessions) write(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", s.Secure, true)
}

// Authenticated reports whether the request carries a non-empty session cookie.
// The token is not decoded or verified.
func Authenticated(c *gin.Context) bool {
	token, err := c.Cookie(CookieName)
	return err == nil && token != ""
}

// Required aborts with 401 unless the request is Authenticated.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Authenticated(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
