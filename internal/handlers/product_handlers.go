package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/andratama/topupstore-golang/internal/apperror"
	"github.com/andratama/topupstore-golang/internal/importer"
	"github.com/andratama/topupstore-golang/internal/models"
	"github.com/andratama/topupstore-golang/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateProductInput struct {
	CategoryID  int64    `form:"category_id" binding:"required"`
	Name        string   `form:"name" binding:"required"`
	Price       *float64 `form:"price" binding:"required,gte=0"`
	Box         string   `form:"box"`
	Description string   `form:"description"`
	ImageURL    string   `form:"image_url"`
	IsActive    *bool    `form:"is_active"`
}

type UpdateProductInput struct {
	CategoryID  *int64   `form:"category_id"`
	Name        *string  `form:"name"`
	Price       *float64 `form:"price" binding:"omitempty,gte=0"`
	Box         *string  `form:"box"`
	Description *string  `form:"description"`
	ImageURL    *string  `form:"image_url"`
	IsActive    *bool    `form:"is_active"`
}

// GetAllProducts handles GET /api/products with optional category_id,
// active, search, page and limit query parameters. Filters are conjunctive;
// the count and page queries share one predicate.
func (h *Handlers) GetAllProducts(c *gin.Context) {
	filter := store.ProductFilter{
		ActiveOnly: c.Query("active") == "true",
		Search:     c.Query("search"),
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.respondError(c, apperror.BadRequest("Invalid category_id"))
			return
		}
		filter.CategoryID = id
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	filter = filter.Normalized()

	products, total, err := h.Products.List(filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       products,
		"pagination": models.NewPagination(filter.Page, filter.Limit, total),
	})
}

// GetProduct handles GET /api/products/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	product, err := h.Products.GetByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if product == nil {
		h.respondError(c, apperror.NotFound("Product not found"))
		return
	}
	respondOK(c, product)
}

// CreateProduct handles POST /api/products (protected, multipart). The
// category must exist; price is stored in the base currency as-is.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBind(&input); err != nil {
		h.respondError(c, apperror.BadRequest(err.Error()))
		return
	}

	category, err := h.Categories.GetByID(input.CategoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if category == nil {
		h.respondError(c, apperror.BadRequest("Invalid category ID"))
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

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	product := &models.Product{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Price:       *input.Price,
		Box:         input.Box,
		ImageURL:    imageURL,
		Description: input.Description,
		IsActive:    isActive,
	}
	if err := h.Products.Create(product); err != nil {
		h.respondError(c, err)
		return
	}
	respondCreated(c, product)
}

// UpdateProduct handles PUT /api/products/:id (protected, multipart).
// Supplied fields overlay the stored record; omitted fields are preserved,
// never nulled.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	product, err := h.Products.GetByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if product == nil {
		h.respondError(c, apperror.NotFound("Product not found"))
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBind(&input); err != nil {
		h.respondError(c, apperror.BadRequest(err.Error()))
		return
	}

	if input.CategoryID != nil {
		category, err := h.Categories.GetByID(*input.CategoryID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		if category == nil {
			h.respondError(c, apperror.BadRequest("Invalid category ID"))
			return
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Box != nil {
		product.Box = *input.Box
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.ImageURL != nil && *input.ImageURL != "" {
		product.ImageURL = *input.ImageURL
	}
	if file, err := c.FormFile("image"); err == nil {
		path, err := h.saveUpload(c, file)
		if err != nil {
			h.respondError(c, err)
			return
		}
		product.ImageURL = path
	}

	if err := h.Products.Update(product); err != nil {
		h.respondError(c, err)
		return
	}
	respondOK(c, product)
}

// DeleteProduct handles DELETE /api/products/:id (protected). Hard delete.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	deleted, err := h.Products.Delete(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !deleted {
		h.respondError(c, apperror.NotFound("Product not found"))
		return
	}
	respondMessage(c, "Product deleted")
}

// ImportProducts handles POST /api/products/import (protected, multipart,
// field "file"). Row failures land in the 200 body, not the status code, so
// callers can tell partial from total failure. The temp file is removed
// whatever happens.
func (h *Handlers) ImportProducts(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.respondError(c, apperror.BadRequest("No file uploaded"))
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		h.respondError(c, err)
		return
	}
	defer os.Remove(tmpPath)

	result, err := importer.ImportFile(tmpPath, h.Products, h.Categories)
	if err != nil {
		h.respondError(c, apperror.BadRequest(err.Error()))
		return
	}
	respondOK(c, result)
}
