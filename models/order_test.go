package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderArtworkIDs(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{ArtworkID: 1},
			{ArtworkID: 2},
			{ArtworkID: 1},
		},
	}

	assert.Equal(t, []uint{1, 2}, order.ArtworkIDs())
}

func TestOrderArtworkIDsEmpty(t *testing.T) {
	order := &Order{}
	assert.Empty(t, order.ArtworkIDs())
}
