package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jorotodorovv/art-on-display/middleware"
	"github.com/jorotodorovv/art-on-display/models"
	"github.com/jorotodorovv/art-on-display/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ArtworkController struct {
	Repo   repository.ArtworkRepository
	Logger *zap.Logger
}

func NewArtworkController(repo repository.ArtworkRepository, logger *zap.Logger) *ArtworkController {
	return &ArtworkController{Repo: repo, Logger: logger}
}

// List returns artworks, optionally filtered by tag and for-sale state.
func (ac *ArtworkController) List(c *gin.Context) {
	tag := c.Query("tag")
	forSaleOnly := c.Query("for_sale") == "true"

	artworks, err := ac.Repo.List(c.Request.Context(), tag, forSaleOnly)
	if err != nil {
		ac.Logger.Error("Failed to list artworks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artworks": artworks})
}

// Get returns one artwork by ID.
func (ac *ArtworkController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artwork id"})
		return
	}

	artwork, err := ac.Repo.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "artwork not found"})
			return
		}
		ac.Logger.Error("Failed to fetch artwork", zap.Uint64("artwork_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch artwork"})
		return
	}

	c.JSON(http.StatusOK, artwork)
}

type artworkRequest struct {
	Title         string              `json:"title" binding:"required"`
	TitleBG       *string             `json:"title_bg"`
	Image         string              `json:"image" binding:"required"`
	Description   string              `json:"description"`
	DescriptionBG *string             `json:"description_bg"`
	Tags          []models.ArtworkTag `json:"tags"`
}

// Create adds a new artwork (admin only).
func (ac *ArtworkController) Create(c *gin.Context) {
	var req artworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	createdBy := middleware.GetUserID(c)
	artwork := models.Artwork{
		Title:         req.Title,
		TitleBG:       req.TitleBG,
		Image:         req.Image,
		Description:   req.Description,
		DescriptionBG: req.DescriptionBG,
		Tags:          req.Tags,
		CreatedBy:     &createdBy,
	}

	if err := ac.Repo.Create(c.Request.Context(), &artwork); err != nil {
		ac.Logger.Error("Failed to create artwork", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create artwork"})
		return
	}

	c.JSON(http.StatusCreated, artwork)
}

// Update replaces the editable fields of an artwork (admin only).
func (ac *ArtworkController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artwork id"})
		return
	}

	var req artworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	ctx := c.Request.Context()
	artwork, err := ac.Repo.FindByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "artwork not found"})
			return
		}
		ac.Logger.Error("Failed to fetch artwork", zap.Uint64("artwork_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch artwork"})
		return
	}

	artwork.Title = req.Title
	artwork.TitleBG = req.TitleBG
	artwork.Image = req.Image
	artwork.Description = req.Description
	artwork.DescriptionBG = req.DescriptionBG
	artwork.Tags = req.Tags

	if err := ac.Repo.Update(ctx, artwork); err != nil {
		ac.Logger.Error("Failed to update artwork", zap.Uint64("artwork_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update artwork"})
		return
	}

	c.JSON(http.StatusOK, artwork)
}

// Delete removes an artwork (admin only).
func (ac *ArtworkController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artwork id"})
		return
	}

	if err := ac.Repo.Delete(c.Request.Context(), uint(id)); err != nil {
		ac.Logger.Error("Failed to delete artwork", zap.Uint64("artwork_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "artwork deleted"})
}

// SetSale puts an artwork on or off sale (admin only). Going on sale
// requires a positive price; going off sale clears it.
func (ac *ArtworkController) SetSale(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artwork id"})
		return
	}

	var req struct {
		ForSale bool     `json:"for_sale"`
		Price   *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if req.ForSale && (req.Price == nil || *req.Price <= 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a positive price is required to put an artwork on sale"})
		return
	}
	if !req.ForSale {
		req.Price = nil
	}

	if err := ac.Repo.SetSaleState(c.Request.Context(), uint(id), req.ForSale, req.Price); err != nil {
		ac.Logger.Error("Failed to update sale state", zap.Uint64("artwork_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update sale state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sale state updated"})
}
