package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"courseadmin/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	sessionKey = "session"
	LoginPath  = "/login"
)

type SessionResolver interface {
	Resolve(ctx context.Context, cookie string) (domain.Session, error)
}

type CookieConfig struct {
	Name   string
	Domain string
	Secure bool
}

func (cc CookieConfig) Set(c *gin.Context, value string, expiresAt time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cc.Name, value, int(time.Until(expiresAt).Seconds()), "/", cc.Domain, cc.Secure, true)
}

func (cc CookieConfig) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cc.Name, "", -1, "/", cc.Domain, cc.Secure, true)
}

// CurrentSession is only valid behind RequireSession.
func CurrentSession(c *gin.Context) domain.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(domain.Session); ok {
			return s
		}
	}
	return domain.Session{}
}

func IsAPIRequest(c *gin.Context) bool {
	p := c.Request.URL.Path
	return strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/auth/")
}

// RequireSession lets a request through only with a live admin session.
// Pages are redirected to the login screen, API calls get a 401.
func RequireSession(resolver SessionResolver, cookie CookieConfig, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(cookie.Name)
		if err != nil || value == "" {
			deny(c)
			return
		}

		session, err := resolver.Resolve(c.Request.Context(), value)
		switch {
		case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
			cookie.Clear(c)
			deny(c)
			return
		case err != nil:
			// сессия может быть жива, куку не трогаем
			logger.Error().Err(err).Msg("Failed to resolve session")
			unavailable(c)
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// RedirectIfAuthenticated keeps a logged in admin away from the login page.
func RedirectIfAuthenticated(resolver SessionResolver, cookie CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(cookie.Name)
		if err == nil && value != "" {
			if _, err := resolver.Resolve(c.Request.Context(), value); err == nil {
				c.Redirect(http.StatusSeeOther, SafeNext(c.Query("next")))
				c.Abort()
				return
			}
		}
		c.Next()
	}
}

func deny(c *gin.Context) {
	if IsAPIRequest(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":    "Authentication required",
			"redirect": LoginPath,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, LoginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
	c.Abort()
}

func unavailable(c *gin.Context) {
	if IsAPIRequest(c) {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error": "Session storage unavailable, try again",
			"retry": true,
		})
		return
	}
	c.Header("Retry-After", "5")
	c.Data(http.StatusServiceUnavailable, "text/plain; charset=utf-8", []byte("Service temporarily unavailable, please retry."))
	c.Abort()
}

// SafeNext accepts only local paths so the login redirect cannot leave the site.
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == LoginPath {
		return "/"
	}
	return next
}
