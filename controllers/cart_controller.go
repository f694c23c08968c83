package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jorotodorovv/art-on-display/database"
	"github.com/jorotodorovv/art-on-display/middleware"
	"github.com/jorotodorovv/art-on-display/models"
	"github.com/jorotodorovv/art-on-display/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CartController struct {
	Store    database.CartStore
	Artworks repository.ArtworkRepository
	Logger   *zap.Logger
}

func NewCartController(store database.CartStore, artworks repository.ArtworkRepository, logger *zap.Logger) *CartController {
	return &CartController{
		Store:    store,
		Artworks: artworks,
		Logger:   logger,
	}
}

// GetCart returns the current cart with its totals.
func (cc *CartController) GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	cart, err := cc.Store.Get(c.Request.Context(), userID)
	if err != nil {
		cc.Logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":        cart,
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice(),
	})
}

// AddItem puts an artwork into the cart with quantity 1. Adding an artwork
// that is already there leaves the cart untouched. Sale state is not checked
// here; an artwork delisted while carted is rejected at checkout with a 409.
func (cc *CartController) AddItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req struct {
		ArtworkID uint `json:"artwork_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	ctx := c.Request.Context()
	artwork, err := cc.Artworks.FindByID(ctx, req.ArtworkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "artwork not found"})
			return
		}
		cc.Logger.Error("Failed to load artwork", zap.Uint("artwork_id", req.ArtworkID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load artwork"})
		return
	}

	cart, err := cc.Store.Get(ctx, userID)
	if err != nil {
		cc.Logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart"})
		return
	}

	added := cart.Add(models.CartItem{
		ArtworkID: artwork.ID,
		Title:     artwork.Title,
		Image:     artwork.Image,
		Price:     artwork.Price,
	})
	if !added {
		c.JSON(http.StatusOK, gin.H{"cart": cart, "added": false, "message": "artwork already in cart"})
		return
	}

	if err := cc.Store.Save(ctx, cart); err != nil {
		cc.Logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart, "added": true})
}

// UpdateQuantity sets the quantity for one cart entry. Zero or negative
// removes it.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	userID := middleware.GetUserID(c)

	artworkID, err := strconv.ParseUint(c.Param("artwork_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artwork id"})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	ctx := c.Request.Context()
	cart, err := cc.Store.Get(ctx, userID)
	if err != nil {
		cc.Logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart"})
		return
	}

	cart.SetQuantity(uint(artworkID), req.Quantity)

	if err := cc.Store.Save(ctx, cart); err != nil {
		cc.Logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// RemoveItem removes a specific artwork from the cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	artworkID, err := strconv.ParseUint(c.Param("artwork_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artwork id"})
		return
	}

	ctx := c.Request.Context()
	cart, err := cc.Store.Get(ctx, userID)
	if err != nil {
		cc.Logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart"})
		return
	}

	cart.Remove(uint(artworkID))

	if err := cc.Store.Save(ctx, cart); err != nil {
		cc.Logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// ClearCart removes all items from the cart.
func (cc *CartController) ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := cc.Store.Delete(c.Request.Context(), userID); err != nil {
		cc.Logger.Error("Failed to clear cart", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
