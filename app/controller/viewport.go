package controller

import (
	"net/http"
	"strconv"
	"strings"
)

// viewportCookie remembers the last width a client reported
const viewportCookie = "vw"

// maxViewportWidth bounds client supplied widths
const maxViewportWidth = 10000

// ResolveViewportWidth picks the layout width for a request: the vw query parameter,
// then the Sec-CH-Viewport-Width or Viewport-Width client hint, then the vw cookie, then def.
func ResolveViewportWidth(r *http.Request, def int) int {
	if w, ok := parseWidth(r.URL.Query().Get("vw")); ok {
		return w
	}
	for _, h := range []string{"Sec-CH-Viewport-Width", "Viewport-Width"} {
		if w, ok := parseWidth(r.Header.Get(h)); ok {
			return w
		}
	}
	if c, err := r.Cookie(viewportCookie); err == nil {
		if w, ok := parseWidth(c.Value); ok {
			return w
		}
	}
	return def
}

func parseWidth(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	w, err := strconv.Atoi(v)
	if err != nil || w <= 0 || w > maxViewportWidth {
		return 0, false
	}
	return w, true
}
