package httpx

import (
	"net/http"

	"loafer-be/internal/cart"

	"github.com/gin-gonic/gin"
)

type cartHandlers struct {
	svc cart.Service
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *cartHandlers) get(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.svc.Get(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	totals, err := h.svc.Totals(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"totals": totals,
	})
}

func (h *cartHandlers) addItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.svc.Add(c.Request.Context(), cart.AddParams{
		ProductID: req.ProductID,
		Color:     req.Color,
		Size:      req.Size,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *cartHandlers) updateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.svc.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *cartHandlers) removeItem(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *cartHandlers) clear(c *gin.Context) {
	if err := h.svc.Clear(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
