package service

import "context"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListFolderImages(ctx context.Context, folderID string) ([]DriveImage, error)
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}
