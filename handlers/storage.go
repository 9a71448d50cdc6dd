package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"shootflow/services/storage"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageHandler exposes media upload and delivery URL endpoints.
type StorageHandler struct {
	StorageSvc storage.StorageService
	Logger     *zap.Logger
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{StorageSvc: svc, Logger: logger}
}

// UploadMediaHandler handles POST /api/shoots/:id/upload. The file is staged
// to a temp path, pushed to storage under the shoot's folder, and the public
// ID returned. Attaching the resulting URL to the shoot is a separate call.
func (h *StorageHandler) UploadMediaHandler(c *gin.Context) {
	shootID := c.Param("id")

	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file is required", err.Error())
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to stage upload", err.Error())
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.StorageSvc.UploadFile(c.Request.Context(), tmpPath, "shoots/"+shootID)
	if err != nil {
		h.Logger.Error("UploadMedia: upload failed",
			zap.String("shootID", shootID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to upload file", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"public_id": publicID})
}

// DownloadURLHandler handles GET /api/media/url?public_id=&type=.
func (h *StorageHandler) DownloadURLHandler(c *gin.Context) {
	publicID := c.Query("public_id")
	if publicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "public_id is required", "")
		return
	}
	resourceType := c.DefaultQuery("type", "image")

	url, err := h.StorageSvc.GetDownloadURL(c.Request.Context(), resourceType, publicID, 24*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to build download URL", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteMediaHandler handles DELETE /api/media?public_id=.
func (h *StorageHandler) DeleteMediaHandler(c *gin.Context) {
	publicID := c.Query("public_id")
	if publicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "public_id is required", "")
		return
	}

	if err := h.StorageSvc.DeleteFile(c.Request.Context(), publicID); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to delete file", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}
