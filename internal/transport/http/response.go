package handlers

import (
	"errors"
	"net/http"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/client"
	"courseadmin/internal/domain"
	"courseadmin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// responder turns errors into the JSON the dashboard's error box and toasts
// read: {error, retry}. It also ends the session when the API rejects its token.
type responder struct {
	auth   *usecase.AuthUseCase
	cookie middleware.CookieConfig
	logger zerolog.Logger
}

func (r responder) fail(c *gin.Context, err error) {
	_ = c.Error(err)

	if apiErr, ok := client.AsAPIError(err); ok {
		if apiErr.Unauthorized() {
			if session := middleware.CurrentSession(c); session.ID != "" && r.auth != nil {
				r.auth.Destroy(c.Request.Context(), session.ID)
			}
			r.cookie.Clear(c)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "Session expired, please log in again",
				"redirect": middleware.LoginPath,
			})
			return
		}

		status := apiErr.Status
		if status == 0 || status >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": apiErr.Message, "retry": apiErr.Retryable()})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, domain.ErrNotAdmin):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: admins only"})
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "redirect": middleware.LoginPath})
	case errors.Is(err, domain.ErrUnknownPage):
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	case errors.Is(err, domain.ErrInvalidMonth), errors.Is(err, domain.ErrUnsupportedMedia):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrMediaDisabled), errors.Is(err, domain.ErrAuditDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		r.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "retry": true})
	}
}

// bind reads and validates a JSON body. It writes the 400 itself.
func bind(c *gin.Context, v *Validator, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	if fields := v.Struct(dst); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return false
	}
	return true
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
