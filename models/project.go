package models

import "time"

// Category values accepted for a project
const (
	CategoryArchitecture = "Architecture"
	CategoryInterior     = "Interior"
	CategoryObjects      = "Objects"
	CategoryExhibition   = "Exhibition"
	CategoryVideo        = "video"
)

// Categories lists every valid project category
var Categories = []string{
	CategoryArchitecture,
	CategoryInterior,
	CategoryObjects,
	CategoryExhibition,
	CategoryVideo,
}

// IsValidCategory reports whether category is one of the known values (case-sensitive)
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Project represents a portfolio project
type Project struct {
	ID                 string     `json:"_id"`
	Title              string     `json:"title"`
	Category           string     `json:"category"`
	SubCategory        string     `json:"subCategory"`
	Description        string     `json:"description,omitempty"`
	Images             []string   `json:"images"`
	PDFFile            string     `json:"pdfFile,omitempty"`
	VideoFile          string     `json:"videoFile,omitempty"`
	IsPrior            bool       `json:"isPrior"`
	ToHomePage         bool       `json:"toHomePage"`
	HomePageOrder      *int       `json:"homePageOrder,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
	ContactDescription string     `json:"contactDescription,omitempty"`
}

// IsVideo reports whether the project is a video item (not clickable, autoplays in place)
func (p Project) IsVideo() bool {
	return p.Category == CategoryVideo
}

// CoverImage returns the first image or an empty string
func (p Project) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// HoverImage returns the second image or an empty string
func (p Project) HoverImage() string {
	if len(p.Images) < 2 {
		return ""
	}
	return p.Images[1]
}

// ProjectInput is the decoded multipart form for create/update of a project
type ProjectInput struct {
	Title              string
	Category           string
	SubCategory        string
	Description        string
	ContactDescription string
	IsPrior            bool
	ToHomePage         bool
	HomePageOrder      *int
	// ExistingImages is the ordered list of already stored images to keep (update only)
	ExistingImages []string
}

// MoveImageRequest represents the request body for reordering project images
type MoveImageRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ImportImagesRequest represents the request body for importing images from Google Drive
type ImportImagesRequest struct {
	FolderID string `json:"folderId"`
}
