package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/andratama/topupstore-golang/internal/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadFile handles POST /api/upload. The file lands in the upload dir
// under a uuid name and the public URL comes back.
func (h *Handlers) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.respondError(c, apperror.BadRequest("No file uploaded"))
		return
	}

	publicPath, err := h.saveUpload(c, file)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondOK(c, gin.H{"url": h.Config.Server.BaseURL + publicPath})
}

// saveUpload writes the multipart file to disk with a safe unique filename
// and returns its public path under /uploads. The request blocks until the
// write completes.
func (h *Handlers) saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	uploadDir := h.Config.Upload.Dir
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		if err := os.MkdirAll(uploadDir, 0755); err != nil {
			return "", err
		}
	}

	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	savePath := filepath.Join(uploadDir, newFilename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", err
	}
	return "/uploads/" + newFilename, nil
}
