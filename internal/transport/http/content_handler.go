package handlers

import (
	"net/http"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/domain"
	"courseadmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	responder
	uc       *usecase.ContentUseCase
	validate *Validator
}

func NewContentHandler(r responder, uc *usecase.ContentUseCase, v *Validator) *ContentHandler {
	return &ContentHandler{responder: r, uc: uc, validate: v}
}

// GET /api/pages/:slug
func (h *ContentHandler) Get(c *gin.Context) {
	page, err := h.uc.Get(c.Request.Context(), middleware.CurrentSession(c), c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": page})
}

// PUT /api/pages/:slug
func (h *ContentHandler) Update(c *gin.Context) {
	if !domain.IsContentPage(c.Param("slug")) {
		h.fail(c, domain.ErrUnknownPage)
		return
	}
	var in domain.PageContentInput
	if !bind(c, h.validate, &in) {
		return
	}
	res, err := h.uc.Update(c.Request.Context(), middleware.CurrentSession(c), c.Param("slug"), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": res.Data, "message": messageOr(res.Message, "Page saved")})
}
