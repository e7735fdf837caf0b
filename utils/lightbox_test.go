package utils

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLightbox_Clamps(t *testing.T) {
	assert.Equal(t, Lightbox{Index: 4, Total: 5, Zoom: 3}, NewLightbox(10, 5, 7))
	assert.Equal(t, Lightbox{Index: 0, Total: 5, Zoom: 1}, NewLightbox(-2, 5, 0.2))
	assert.Equal(t, Lightbox{Zoom: 1}, NewLightbox(3, 0, 2))
}

func TestLightbox_Navigation(t *testing.T) {
	first := NewLightbox(0, 3, 1)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())
	assert.Equal(t, 0, first.Prev())
	assert.Equal(t, 1, first.Next())

	last := NewLightbox(2, 3, 1)
	assert.False(t, last.HasNext())
	assert.Equal(t, 2, last.Next())
}

func TestLightbox_Zoom(t *testing.T) {
	l := NewLightbox(0, 1, 1)
	assert.Equal(t, 1.5, l.ZoomIn())
	assert.Equal(t, 1.0, l.ZoomOut())

	l = NewLightbox(0, 1, 3)
	assert.Equal(t, 3.0, l.ZoomIn())
	assert.Equal(t, 2.5, l.ZoomOut())

	assert.Equal(t, 2.0, ClampZoom(2.1))
	assert.Equal(t, 1.0, ClampZoom(math.NaN()))
	assert.Equal(t, "1.5", FormatZoom(1.5))
	assert.Equal(t, "2", FormatZoom(2))
}

func TestLightbox_Swipe(t *testing.T) {
	l := NewLightbox(1, 3, 1)
	assert.Equal(t, 2, l.Swipe(51))
	assert.Equal(t, 0, l.Swipe(-51))
	assert.Equal(t, 1, l.Swipe(50))
	assert.Equal(t, 1, l.Swipe(-50))
	assert.Equal(t, 0, NewLightbox(0, 3, 1).Swipe(-200))
	assert.Equal(t, 2, NewLightbox(2, 3, 1).Swipe(200))
}

func TestGridImages(t *testing.T) {
	assert.Nil(t, GridImages(nil))
	assert.Nil(t, GridImages([]string{"cover"}))
	assert.Equal(t, []string{"b", "c"}, GridImages([]string{"a", "b", "c"}))

	var many []string
	for i := 0; i < 40; i++ {
		many = append(many, fmt.Sprintf("img%d", i))
	}
	grid := GridImages(many)
	assert.Len(t, grid, MaxGridImages)
	assert.Equal(t, "img1", grid[0])
	assert.Equal(t, "img30", grid[len(grid)-1])
}
