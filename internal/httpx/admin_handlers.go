package httpx

import (
	"net/http"
	"strconv"

	"loafer-be/internal/admin"

	"github.com/gin-gonic/gin"
)

type adminHandlers struct {
	svc admin.Service
}

func (h *adminHandlers) stats(c *gin.Context) {
	stats, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *adminHandlers) topProducts(c *gin.Context) {
	limit := 5
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	ranked, err := h.svc.TopProducts(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": ranked})
}
