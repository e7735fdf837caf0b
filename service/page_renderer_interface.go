package service

import "io"

// PageRendererInterface defines the contract for HTML page rendering
type PageRendererInterface interface {
	Render(w io.Writer, page string, data any) error
}
