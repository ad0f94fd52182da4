package handlers

import (
	"net/http"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/domain"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	responder
	uc       *usecase.MediaUseCase
	validate *Validator
}

func NewMediaHandler(r responder, uc *usecase.MediaUseCase, v *Validator) *MediaHandler {
	return &MediaHandler{responder: r, uc: uc, validate: v}
}

// POST /api/media/uploads
func (h *MediaHandler) CreateUpload(c *gin.Context) {
	var req domain.UploadRequest
	if !bind(c, h.validate, &req) {
		return
	}
	upload, err := h.uc.CreateUpload(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": upload})
}
