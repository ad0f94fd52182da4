package handlers

import (
	"net/http"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	responder
	uc       *usecase.AuthUseCase
	validate *Validator
}

func NewAuthHandler(r responder, uc *usecase.AuthUseCase, v *Validator) *AuthHandler {
	return &AuthHandler{responder: r, uc: uc, validate: v}
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if !bind(c, h.validate, &req) {
		return
	}

	out, err := h.uc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.cookie.Set(c, out.Cookie, out.ExpiresAt)
	c.JSON(http.StatusOK, gin.H{
		"admin":      out.Session.Admin,
		"expires_at": out.ExpiresAt,
		"redirect":   middleware.SafeNext(c.Query("next")),
	})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if err := h.uc.Logout(c.Request.Context(), session); err != nil {
		h.fail(c, err)
		return
	}
	h.cookie.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirect": middleware.LoginPath})
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	session := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"admin":      session.Admin,
		"expires_at": session.ExpiresAt,
	})
}
