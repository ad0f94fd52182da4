package handlers

import (
	"net/http"
	"path/filepath"

	"courseadmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the pre-built dashboard shell. Routing inside the
// dashboard happens in the browser.
type PageHandler struct {
	staticDir string
}

func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{staticDir: staticDir}
}

// GET /login
func (h *PageHandler) Login(c *gin.Context) {
	c.File(filepath.Join(h.staticDir, "login.html"))
}

// App serves index.html for every dashboard route.
func (h *PageHandler) App(c *gin.Context) {
	c.File(filepath.Join(h.staticDir, "index.html"))
}

// NotFound answers unknown API routes and non-GET requests before the
// session check runs for page routes.
func (h *PageHandler) NotFound(c *gin.Context) {
	if middleware.IsAPIRequest(c) || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.Next()
}
