package httpx

import (
	"net/http"

	"loafer-be/internal/catalog"

	"github.com/gin-gonic/gin"
)

type catalogHandlers struct {
	svc catalog.Service
}

// selectionFromQuery builds a FilterSelection from repeatable query params,
// e.g. /api/products?category=Running&category=Casual&price=100-200&q=mesh.
func selectionFromQuery(c *gin.Context) catalog.FilterSelection {
	return catalog.FilterSelection{
		Search:   c.Query("q"),
		Category: c.QueryArray("category"),
		Price:    c.QueryArray("price"),
		Color:    c.QueryArray("color"),
		Size:     c.QueryArray("size"),
		Gender:   c.QueryArray("gender"),
		Rating:   c.QueryArray("rating"),
	}
}

func (h *catalogHandlers) list(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context(), selectionFromQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

func (h *catalogHandlers) getByID(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *catalogHandlers) facets(c *gin.Context) {
	opts, err := h.svc.Facets(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, opts)
}
