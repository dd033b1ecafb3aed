package httpx

import (
	"net/http"

	"loafer-be/internal/checkout"

	"github.com/gin-gonic/gin"
)

type checkoutHandlers struct {
	svc checkout.Service
}

type setShippingRequest struct {
	Method string `json:"method" binding:"required"`
}

type confirmRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

func (h *checkoutHandlers) createSession(c *gin.Context) {
	session, err := h.svc.CreateSession(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *checkoutHandlers) getSession(c *gin.Context) {
	session, err := h.svc.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *checkoutHandlers) setContact(c *gin.Context) {
	var contact checkout.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.svc.SetContact(c.Request.Context(), c.Param("id"), contact)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *checkoutHandlers) setShipping(c *gin.Context) {
	var req setShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.svc.SetShippingMethod(c.Request.Context(), c.Param("id"), checkout.ShippingMethod(req.Method))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *checkoutHandlers) confirm(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.svc.Confirm(c.Request.Context(), c.Param("id"), checkout.PaymentMethod(req.PaymentMethod))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
