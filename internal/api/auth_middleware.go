package api

import (
	"net/http"

	"github.com/ericogr/laro-arcade/internal/constants"
	"github.com/gin-gonic/gin"
)

// setSessionCookie sets the session cookie with appropriate flags for dev/prod.
func (s *Sessions) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.CookieSessionName, token, int(s.ttl.Seconds()), "/", "", s.secure, true)
}

func (s *Sessions) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.CookieSessionName, "", -1, "/", "", s.secure, true)
}

// identityFromCookie returns nil when the cookie is missing or not valid.
func (s *Sessions) identityFromCookie(c *gin.Context) *Identity {
	token, err := c.Cookie(constants.CookieSessionName)
	if err != nil || token == "" {
		return nil
	}
	id, err := s.parseAndValidateSession(token)
	if err != nil {
		return nil
	}
	return id
}

func setIdentity(c *gin.Context, id *Identity) {
	c.Set(constants.CtxUserUID, id.UID)
	c.Set(constants.CtxUserEmail, id.Email)
	c.Set(constants.CtxUserName, id.DisplayName)
}

// AuthRequired validates the session cookie and injects identity into context.
func (s *Sessions) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.CookieSessionName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		id, err := s.parseAndValidateSession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
			return
		}
		setIdentity(c, id)
		c.Next()
	}
}

// OptionalAuth injects identity when a valid session is present and lets
// anonymous requests through.
func (s *Sessions) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := s.identityFromCookie(c); id != nil {
			setIdentity(c, id)
		}
		c.Next()
	}
}

func contextUID(c *gin.Context) string {
	return c.GetString(constants.CtxUserUID)
}

func contextName(c *gin.Context) string {
	return c.GetString(constants.CtxUserName)
}
