package utils

import (
	"fmt"
	"math"
	"path"
	"regexp"
	"strconv"
	"strings"
)

// aspectNameRegex matches stored image names of the form NAME.INT.FRAC.EXT
// Example: 3f2b9c.1.50.jpg -> ratio 1.50
var aspectNameRegex = regexp.MustCompile(`^[^.]+\.(\d+)\.(\d+)\.(?i:png|jpe?g|webp|gif)$`)

// ParseAspectRatio reads the width/height ratio encoded in an image file name.
// Returns 1 when the name carries no ratio.
func ParseAspectRatio(imagePath string) float64 {
	name := path.Base(strings.ReplaceAll(imagePath, "\\", "/"))
	matches := aspectNameRegex.FindStringSubmatch(name)
	if len(matches) != 3 {
		return 1
	}
	ratio, err := strconv.ParseFloat(matches[1]+"."+matches[2], 64)
	if err != nil || ratio <= 0 {
		return 1
	}
	return ratio
}

// IsLandscape reports whether the encoded ratio is wider than tall
func IsLandscape(imagePath string) bool {
	return ParseAspectRatio(imagePath) > 1
}

// AspectFileName builds a stored image name encoding width/height with two decimals.
// Example: AspectFileName("3f2b9c", 1200, 800, ".jpg") -> "3f2b9c.1.50.jpg"
func AspectFileName(base string, width, height int, ext string) string {
	ratio := 1.0
	if width > 0 && height > 0 {
		ratio = float64(width) / float64(height)
	}
	hundredths := int(math.Round(ratio * 100))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%s.%d.%02d%s", base, hundredths/100, hundredths%100, strings.ToLower(ext))
}
