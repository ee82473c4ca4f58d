package handlers

import (
	"github.com/andratama/topupstore-golang/internal/apperror"
	"github.com/andratama/topupstore-golang/internal/models"
	"github.com/gin-gonic/gin"
)

type CreateBannerInput struct {
	Title        string  `form:"title" binding:"required"`
	ImageURL     string  `form:"image_url"`
	Link         *string `form:"link"`
	IsActive     *bool   `form:"is_active"`
	DisplayOrder *int    `form:"display_order"`
}

type UpdateBannerInput struct {
	Title        *string `form:"title"`
	ImageURL     *string `form:"image_url"`
	Link         *string `form:"link"`
	IsActive     *bool   `form:"is_active"`
	DisplayOrder *int    `form:"display_order"`
}

// GetAllBanners handles GET /api/banners?active.
func (h *Handlers) GetAllBanners(c *gin.Context) {
	banners, err := h.Banners.List(c.Query("active") == "true")
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, banners)
}

// GetBanner handles GET /api/banners/:id.
func (h *Handlers) GetBanner(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	banner, err := h.Banners.GetByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if banner == nil {
		h.respondError(c, apperror.NotFound("Banner not found"))
		return
	}
	respondOK(c, banner)
}

// CreateBanner handles POST /api/banners (protected, multipart).
func (h *Handlers) CreateBanner(c *gin.Context) {
	var input CreateBannerInput
	if err := c.ShouldBind(&input); err != nil {
		h.respondError(c, apperror.BadRequest(err.Error()))
		return
	}

	imageURL := input.ImageURL
	if file, err := c.FormFile("image"); err == nil {
		path, err := h.saveUpload(c, file)
		if err != nil {
			h.respondError(c, err)
			return
		}
		imageURL = path
	}

	banner := &models.Banner{
		Title:    input.Title,
		ImageURL: imageURL,
		Link:     input.Link,
		IsActive: true,
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if input.DisplayOrder != nil {
		banner.DisplayOrder = *input.DisplayOrder
	}

	if err := h.Banners.Create(banner); err != nil {
		h.respondError(c, err)
		return
	}
	respondCreated(c, banner)
}

// UpdateBanner handles PUT /api/banners/:id (protected, multipart). Partial
// input merges over the stored record.
func (h *Handlers) UpdateBanner(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	banner, err := h.Banners.GetByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if banner == nil {
		h.respondError(c, apperror.NotFound("Banner not found"))
		return
	}

	var input UpdateBannerInput
	if err := c.ShouldBind(&input); err != nil {
		h.respondError(c, apperror.BadRequest(err.Error()))
		return
	}

	if input.Title != nil {
		banner.Title = *input.Title
	}
	if input.Link != nil {
		banner.Link = input.Link
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if input.DisplayOrder != nil {
		banner.DisplayOrder = *input.DisplayOrder
	}
	if input.ImageURL != nil && *input.ImageURL != "" {
		banner.ImageURL = *input.ImageURL
	}
	if file, err := c.FormFile("image"); err == nil {
		path, err := h.saveUpload(c, file)
		if err != nil {
			h.respondError(c, err)
			return
		}
		banner.ImageURL = path
	}

	if err := h.Banners.Update(banner); err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, banner)
}

// DeleteBanner handles DELETE /api/banners/:id (protected).
func (h *Handlers) DeleteBanner(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	deleted, err := h.Banners.Delete(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !deleted {
		h.respondError(c, apperror.NotFound("Banner not found"))
		return
	}
	respondMessage(c, "Banner deleted")
}
