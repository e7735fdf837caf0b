package utils

import (
	"math"
	"strconv"
)

const (
	// MinZoom and MaxZoom bound the lightbox zoom factor
	MinZoom = 1.0
	MaxZoom = 3.0
	// ZoomStep is the increment of the zoom controls
	ZoomStep = 0.5
	// SwipeThreshold is the horizontal distance in pixels that counts as a swipe
	SwipeThreshold = 50
	// MaxGridImages is how many images after the cover the detail grid shows
	MaxGridImages = 30
)

// Lightbox is the state of the fullscreen image viewer
type Lightbox struct {
	Index int
	Total int
	Zoom  float64
}

// NewLightbox clamps index into [0, total) and zoom into [MinZoom, MaxZoom]
func NewLightbox(index, total int, zoom float64) Lightbox {
	if total <= 0 {
		return Lightbox{Zoom: MinZoom}
	}
	return Lightbox{
		Index: max(0, min(index, total-1)),
		Total: total,
		Zoom:  ClampZoom(zoom),
	}
}

// HasPrev reports whether a previous image exists
func (l Lightbox) HasPrev() bool { return l.Index > 0 }

// HasNext reports whether a next image exists
func (l Lightbox) HasNext() bool { return l.Index < l.Total-1 }

// Prev returns the previous index, staying put at the start
func (l Lightbox) Prev() int { return max(0, l.Index-1) }

// Next returns the next index, staying put at the end
func (l Lightbox) Next() int { return min(l.Total-1, l.Index+1) }

// ZoomIn returns the next zoom level
func (l Lightbox) ZoomIn() float64 { return ClampZoom(l.Zoom + ZoomStep) }

// ZoomOut returns the previous zoom level
func (l Lightbox) ZoomOut() float64 { return ClampZoom(l.Zoom - ZoomStep) }

// Swipe maps a horizontal drag (start x minus end x) to the index to show.
// Dragging left past the threshold advances; dragging right goes back.
func (l Lightbox) Swipe(dx int) int {
	switch {
	case dx > SwipeThreshold && l.HasNext():
		return l.Index + 1
	case dx < -SwipeThreshold && l.HasPrev():
		return l.Index - 1
	default:
		return l.Index
	}
}

// ClampZoom bounds zoom and snaps it to ZoomStep; NaN becomes MinZoom
func ClampZoom(zoom float64) float64 {
	if math.IsNaN(zoom) {
		return MinZoom
	}
	zoom = math.Round(zoom/ZoomStep) * ZoomStep
	return math.Max(MinZoom, math.Min(MaxZoom, zoom))
}

// FormatZoom renders a zoom factor for query strings, e.g. 1.5 -> "1.5"
func FormatZoom(zoom float64) string {
	return strconv.FormatFloat(zoom, 'f', -1, 64)
}

// GridImages returns the images shown in the detail grid: everything after the cover, capped
func GridImages(images []string) []string {
	if len(images) <= 1 {
		return nil
	}
	end := min(len(images), 1+MaxGridImages)
	return images[1:end]
}
