package controllers

import (
	"errors"
	"net/http"

	"github.com/jorotodorovv/art-on-display/models"
	"github.com/jorotodorovv/art-on-display/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ContentController struct {
	Repo   repository.ContentRepository
	Logger *zap.Logger
}

func NewContentController(repo repository.ContentRepository, logger *zap.Logger) *ContentController {
	return &ContentController{Repo: repo, Logger: logger}
}

// Get returns both language variants of a content block.
func (cc *ContentController) Get(c *gin.Context) {
	id := c.Param("id")

	content, err := cc.Repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		}
		cc.Logger.Error("Failed to fetch content", zap.String("content_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch content"})
		return
	}

	c.JSON(http.StatusOK, content)
}

// Put creates or replaces a content block (admin only).
func (cc *ContentController) Put(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		ContentEN string `json:"content_en" binding:"required"`
		ContentBG string `json:"content_bg" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	content := &models.SiteContent{
		ID:        id,
		ContentEN: req.ContentEN,
		ContentBG: req.ContentBG,
	}
	if err := cc.Repo.Upsert(c.Request.Context(), content); err != nil {
		cc.Logger.Error("Failed to save content", zap.String("content_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save content"})
		return
	}

	c.JSON(http.StatusOK, content)
}
