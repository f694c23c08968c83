package controllers

import (
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/jorotodorovv/art-on-display/awsx"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UploadController struct {
	Presigner *awsx.S3Presigner
	Logger    *zap.Logger
}

func NewUploadController(presigner *awsx.S3Presigner, logger *zap.Logger) *UploadController {
	return &UploadController{Presigner: presigner, Logger: logger}
}

// Presign hands the admin a presigned PUT URL for an artwork image. The
// object key is randomized; the original file name only keeps its extension.
func (uc *UploadController) Presign(c *gin.Context) {
	if uc.Presigner == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads not configured"})
		return
	}

	var req struct {
		FileName    string `json:"file_name" binding:"required"`
		ContentType string `json:"content_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	key := fmt.Sprintf("artworks/%s%s", uuid.NewString(), path.Ext(req.FileName))
	url, headers, err := uc.Presigner.PresignPut(c.Request.Context(), key, req.ContentType, 15*time.Minute)
	if err != nil {
		uc.Logger.Error("Failed to presign upload", zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to presign upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":     key,
		"url":     url,
		"headers": headers,
	})
}
