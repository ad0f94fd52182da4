package handlers

import (
	"net/http"
	"strconv"
	"time"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	responder
	uc  *usecase.CalendarUseCase
	now func() time.Time
}

func NewCalendarHandler(r responder, uc *usecase.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{responder: r, uc: uc, now: time.Now}
}

// GET /api/calendar?year=2025&month=3&tz=Asia/Riyadh
func (h *CalendarHandler) Month(c *gin.Context) {
	loc := time.UTC
	if tz := c.Query("tz"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown timezone"})
			return
		}
		loc = l
	}

	now := h.now().In(loc)
	year, month := now.Year(), int(now.Month())
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = n
	}
	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		month = n
	}

	res, err := h.uc.Month(c.Request.Context(), middleware.CurrentSession(c), year, month, loc)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
