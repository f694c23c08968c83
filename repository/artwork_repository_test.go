package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/jorotodorovv/art-on-display/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ArtworkTag{}, &models.Artwork{}))
	return db
}

func testPrice(v float64) *float64 { return &v }

func TestArtworkUpdateRemovesTags(t *testing.T) {
	repo := NewGormArtworkRepository(newTestDB(t))
	ctx := context.Background()

	artwork := &models.Artwork{
		Title: "Sunset",
		Image: "https://cdn.example/sunset.jpg",
		Tags: []models.ArtworkTag{
			{ID: "nature", Name: "Nature"},
			{ID: "abstract", Name: "Abstract"},
		},
	}
	require.NoError(t, repo.Create(ctx, artwork))

	artwork.Tags = []models.ArtworkTag{{ID: "nature", Name: "Nature"}}
	require.NoError(t, repo.Update(ctx, artwork))

	got, err := repo.FindByID(ctx, artwork.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "nature", got.Tags[0].ID)

	// The filter must stop matching the removed tag.
	matches, err := repo.List(ctx, "abstract", false)
	require.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = repo.List(ctx, "nature", false)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, artwork.ID, matches[0].ID)
}

func TestArtworkUpdateClearsAllTags(t *testing.T) {
	repo := NewGormArtworkRepository(newTestDB(t))
	ctx := context.Background()

	artwork := &models.Artwork{
		Title: "Harbor",
		Image: "https://cdn.example/harbor.jpg",
		Tags:  []models.ArtworkTag{{ID: "nature", Name: "Nature"}},
	}
	require.NoError(t, repo.Create(ctx, artwork))

	artwork.Tags = nil
	require.NoError(t, repo.Update(ctx, artwork))

	got, err := repo.FindByID(ctx, artwork.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)

	matches, err := repo.List(ctx, "nature", false)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestArtworkUpdateKeepsScalarFields(t *testing.T) {
	repo := NewGormArtworkRepository(newTestDB(t))
	ctx := context.Background()

	artwork := &models.Artwork{
		Title:   "Sunset",
		Image:   "https://cdn.example/sunset.jpg",
		ForSale: true,
		Price:   testPrice(10.00),
		Tags:    []models.ArtworkTag{{ID: "nature", Name: "Nature"}},
	}
	require.NoError(t, repo.Create(ctx, artwork))

	artwork.Title = "Sunset II"
	require.NoError(t, repo.Update(ctx, artwork))

	got, err := repo.FindByID(ctx, artwork.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunset II", got.Title)
	assert.True(t, got.ForSale)
	require.NotNil(t, got.Price)
	assert.InDelta(t, 10.00, *got.Price, 0.001)
	require.Len(t, got.Tags, 1)
}
