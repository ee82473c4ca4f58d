package handlers

import (
	"fmt"
	"strconv"

	"github.com/andratama/topupstore-golang/internal/apperror"
	"github.com/andratama/topupstore-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

type CreateCategoryInput struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	ImageURL    string `form:"image_url"`
}

type UpdateCategoryInput struct {
	Name        *string `form:"name"`
	Description *string `form:"description"`
	ImageURL    *string `form:"image_url"`
}

// GetAllCategories handles GET /api/categories.
func (h *Handlers) GetAllCategories(c *gin.Context) {
	categories, err := h.Categories.List()
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, categories)
}

// GetCategory handles GET /api/categories/:id.
func (h *Handlers) GetCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	category, err := h.Categories.GetByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if category == nil {
		h.respondError(c, apperror.NotFound("Category not found"))
		return
	}
	respondOK(c, category)
}

// CreateCategory handles POST /api/categories (protected, multipart).
// An uploaded image file wins over a supplied image_url string.
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
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

	category := &models.Category{
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		ImageURL:    imageURL,
		Description: input.Description,
	}
	if err := h.Categories.Create(category); err != nil {
		h.respondError(c, err)
		return
	}
	respondCreated(c, category)
}

// UpdateCategory handles PUT /api/categories/:id (protected, multipart).
// Partial input merges over the stored record; omitted fields survive.
func (h *Handlers) UpdateCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	category, err := h.Categories.GetByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if category == nil {
		h.respondError(c, apperror.NotFound("Category not found"))
		return
	}

	var input UpdateCategoryInput
	if err := c.ShouldBind(&input); err != nil {
		h.respondError(c, apperror.BadRequest(err.Error()))
		return
	}

	if input.Name != nil {
		category.Name = *input.Name
		category.Slug = slug.Make(*input.Name)
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.ImageURL != nil && *input.ImageURL != "" {
		category.ImageURL = *input.ImageURL
	}
	if file, err := c.FormFile("image"); err == nil {
		path, err := h.saveUpload(c, file)
		if err != nil {
			h.respondError(c, err)
			return
		}
		category.ImageURL = path
	}

	if err := h.Categories.Update(category); err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, category)
}

// DeleteCategory handles DELETE /api/categories/:id (protected). Deletion is
// blocked while products still reference the category.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	inUse, err := h.Products.CountByCategory(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if inUse > 0 {
		h.respondError(c, apperror.BadRequest(
			fmt.Sprintf("Category is in use by %d product(s)", inUse)))
		return
	}

	deleted, err := h.Categories.Delete(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !deleted {
		h.respondError(c, apperror.NotFound("Category not found"))
		return
	}
	respondMessage(c, "Category deleted")
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.BadRequest("Invalid id")
	}
	return id, nil
}

func parseQueryID(c *gin.Context, key string) (int64, error) {
	id, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.BadRequest("Invalid " + key)
	}
	return id, nil
}
