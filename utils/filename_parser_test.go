package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAspectRatio(t *testing.T) {
	tests := []struct {
		name string
		path string
		want float64
	}{
		{"landscape", "/uploads/3f2b9c.1.50.jpg", 1.5},
		{"portrait", "3f2b9c.0.75.png", 0.75},
		{"upper case ext", "abc.2.00.JPG", 2},
		{"no ratio", "/uploads/cover.jpg", 1},
		{"zero ratio", "abc.0.00.jpg", 1},
		{"windows separators", `C:\tmp\abc.1.33.webp`, 1.33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseAspectRatio(tt.path), 0.0001)
		})
	}
}

func TestIsLandscape(t *testing.T) {
	assert.True(t, IsLandscape("a.1.50.jpg"))
	assert.False(t, IsLandscape("a.1.00.jpg"))
	assert.False(t, IsLandscape("a.0.66.jpg"))
	assert.False(t, IsLandscape("plain.jpg"))
}

func TestAspectFileName(t *testing.T) {
	assert.Equal(t, "abc.1.50.jpg", AspectFileName("abc", 1200, 800, ".jpg"))
	assert.Equal(t, "abc.0.67.jpg", AspectFileName("abc", 800, 1200, "JPG"))
	assert.Equal(t, "abc.1.00.jpg", AspectFileName("abc", 0, 0, ".jpg"))

	name := AspectFileName("abc", 1920, 1080, ".jpg")
	assert.InDelta(t, 1.78, ParseAspectRatio(name), 0.0001)
}
