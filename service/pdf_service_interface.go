package service

import "context"

// PDFServiceInterface defines the contract for PDF generation
type PDFServiceInterface interface {
	ProjectSpecsPDF(ctx context.Context, projectID string) ([]byte, error)
}
