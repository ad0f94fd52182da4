package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/domain"
	"courseadmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Ops switches the routes a resource exposes.
type Ops struct {
	Create bool
	Update bool
	Delete bool
	Status bool
}

var allOps = Ops{Create: true, Update: true, Delete: true, Status: true}

// ResourceHandler serves the list/detail/form screens of one resource. In is
// the form body for create and update.
type ResourceHandler[T domain.Entity, In any] struct {
	responder
	service   *usecase.ResourceService[T]
	validate  *Validator
	filters   []string
	sorts     map[string]bool
	newStatus func() any
}

func NewResourceHandler[T domain.Entity, In any](
	r responder,
	service *usecase.ResourceService[T],
	v *Validator,
	filters []string,
	sorts []string,
) *ResourceHandler[T, In] {
	allowed := make(map[string]bool, len(sorts))
	for _, s := range sorts {
		allowed[s] = true
	}
	return &ResourceHandler[T, In]{
		responder: r,
		service:   service,
		validate:  v,
		filters:   filters,
		sorts:     allowed,
		newStatus: func() any { return &domain.ActiveInput{} },
	}
}

// WithStatusBody swaps the status toggle body type.
func (h *ResourceHandler[T, In]) WithStatusBody(newStatus func() any) *ResourceHandler[T, In] {
	h.newStatus = newStatus
	return h
}

func (h *ResourceHandler[T, In]) Register(g *gin.RouterGroup, ops Ops) {
	path := "/" + h.service.Name()
	g.GET(path, h.List)
	g.GET(path+"/:id", h.Get)
	if ops.Create {
		g.POST(path, h.Create)
	}
	if ops.Update {
		g.PUT(path+"/:id", h.Update)
	}
	if ops.Delete {
		g.DELETE(path+"/:id", h.Delete)
	}
	if ops.Status {
		g.PATCH(path+"/:id/status", h.SetStatus)
	}
}

func (h *ResourceHandler[T, In]) listParams(c *gin.Context) domain.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(domain.DefaultLimit)))

	params := domain.ListParams{
		Page:    page,
		Limit:   limit,
		Order:   strings.ToLower(c.Query("order")),
		Search:  strings.TrimSpace(c.Query("search")),
		Filters: make(map[string]string, len(h.filters)),
	}
	if sort := c.Query("sort"); h.sorts[sort] {
		params.Sort = sort
	}
	for _, f := range h.filters {
		if v := strings.TrimSpace(c.Query(f)); v != "" {
			params.Filters[f] = v
		}
	}
	return params
}

// GET /api/:resource
func (h *ResourceHandler[T, In]) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), middleware.CurrentSession(c), h.listParams(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/:resource/:id
func (h *ResourceHandler[T, In]) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}

// POST /api/:resource
func (h *ResourceHandler[T, In]) Create(c *gin.Context) {
	var in In
	if !bind(c, h.validate, &in) {
		return
	}
	res, err := h.service.Create(c.Request.Context(), middleware.CurrentSession(c), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": res.Data, "message": messageOr(res.Message, "Created successfully")})
}

// PUT /api/:resource/:id
func (h *ResourceHandler[T, In]) Update(c *gin.Context) {
	var in In
	if !bind(c, h.validate, &in) {
		return
	}
	res, err := h.service.Update(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": res.Data, "message": messageOr(res.Message, "Updated successfully")})
}

// DELETE /api/:resource/:id
func (h *ResourceHandler[T, In]) Delete(c *gin.Context) {
	msg, err := h.service.Delete(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": messageOr(msg, "Deleted successfully")})
}

// PATCH /api/:resource/:id/status
func (h *ResourceHandler[T, In]) SetStatus(c *gin.Context) {
	body := h.newStatus()
	if !bind(c, h.validate, body) {
		return
	}
	res, err := h.service.SetStatus(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), body)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": res.Data, "message": messageOr(res.Message, "Status updated")})
}
