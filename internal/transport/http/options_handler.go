package handlers

import (
	"net/http"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// OptionsHandler feeds the dependent dropdowns of the forms and filters.
type OptionsHandler struct {
	responder
	uc *usecase.CascadeUseCase
}

func NewOptionsHandler(r responder, uc *usecase.CascadeUseCase) *OptionsHandler {
	return &OptionsHandler{responder: r, uc: uc}
}

func (h *OptionsHandler) respond(c *gin.Context, opts usecase.Options, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// GET /api/options/courses
func (h *OptionsHandler) Courses(c *gin.Context) {
	opts, err := h.uc.Courses(c.Request.Context(), middleware.CurrentSession(c))
	h.respond(c, opts, err)
}

// GET /api/options/categories?course_id=
func (h *OptionsHandler) Categories(c *gin.Context) {
	opts, err := h.uc.Categories(c.Request.Context(), middleware.CurrentSession(c), c.Query("course_id"))
	h.respond(c, opts, err)
}

// GET /api/options/subcategories?category_id=
func (h *OptionsHandler) SubCategories(c *gin.Context) {
	opts, err := h.uc.SubCategories(c.Request.Context(), middleware.CurrentSession(c), c.Query("category_id"))
	h.respond(c, opts, err)
}

// GET /api/options/specialties
func (h *OptionsHandler) Specialties(c *gin.Context) {
	opts, err := h.uc.Specialties(c.Request.Context(), middleware.CurrentSession(c))
	h.respond(c, opts, err)
}

// GET /api/options/countries
func (h *OptionsHandler) Countries(c *gin.Context) {
	opts, err := h.uc.Countries(c.Request.Context(), middleware.CurrentSession(c))
	h.respond(c, opts, err)
}
