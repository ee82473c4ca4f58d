package handlers

import (
	"github.com/andratama/topupstore-golang/internal/store"
	"github.com/gin-gonic/gin"
)

// GetDashboardStats handles GET /api/dashboard/stats (protected): the
// counts the admin dashboard cards show.
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	_, totalProducts, err := h.Products.List(store.ProductFilter{Page: 1, Limit: 1})
	if err != nil {
		h.respondError(c, err)
		return
	}
	_, activeProducts, err := h.Products.List(store.ProductFilter{Page: 1, Limit: 1, ActiveOnly: true})
	if err != nil {
		h.respondError(c, err)
		return
	}

	categories, err := h.Categories.List()
	if err != nil {
		h.respondError(c, err)
		return
	}
	banners, err := h.Banners.List(false)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"products":        totalProducts,
		"active_products": activeProducts,
		"categories":      len(categories),
		"banners":         len(banners),
	})
}
