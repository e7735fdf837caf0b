package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveImage is an image file found in a Google Drive folder
type DriveImage struct {
	ID       string
	Name     string
	MimeType string
}

// DriveService handles Google Drive API operations
// Implements DriveServiceInterface
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath string) (*DriveService, error) {
	// Create Drive service using credentials file
	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &DriveService{client: driveService}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// imageMimeTypes are the Drive files imported as project images
var imageMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// ListFolderImages lists the image files of a folder sorted by name
// Non-image files and trashed files are skipped
func (ds *DriveService) ListFolderImages(ctx context.Context, folderID string) ([]DriveImage, error) {
	// Build query to list files in the folder
	// Quotes are stripped so the folder id cannot break out of the query string
	query := fmt.Sprintf("'%s' in parents and trashed=false", strings.ReplaceAll(folderID, "'", ""))

	// List files, following pagination
	var images []DriveImage
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Context(ctx).
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}
		for _, file := range r.Files {
			// Check if it's an image
			if !imageMimeTypes[strings.ToLower(file.MimeType)] {
				continue
			}
			images = append(images, DriveImage{ID: file.Id, Name: file.Name, MimeType: file.MimeType})
		}

		pageToken = r.NextPageToken
		if pageToken == "" {
			break
		}
	}

	// Name order is the order images are appended to the project
	sort.Slice(images, func(i, j int) bool { return images[i].Name < images[j].Name })
	log.Printf("🔍 Found %d images in Drive folder %s", len(images), folderID)
	return images, nil
}

// DownloadFile downloads the content of a Drive file
// The whole file is read into memory; callers optimize it before storing
func (ds *DriveService) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	// Request file content (alt=media)
	resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	// Read file content
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	log.Printf("📥 Downloaded Drive file %s (%d bytes)", fileID, len(data))
	return data, nil
}
