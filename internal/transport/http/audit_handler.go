package handlers

import (
	"net/http"
	"strconv"

	"courseadmin/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	responder
	uc *usecase.AuditUseCase
}

func NewAuditHandler(r responder, uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{responder: r, uc: uc}
}

// GET /api/audit?resource=&admin_id=&page=&limit=
func (h *AuditHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	res, err := h.uc.List(c.Request.Context(), c.Query("resource"), c.Query("admin_id"), page, limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
