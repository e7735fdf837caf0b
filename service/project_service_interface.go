package service

import (
	"context"

	"linedori-web/models"
)

// ProjectServiceInterface defines the contract for project administration
type ProjectServiceInterface interface {
	Create(ctx context.Context, in models.ProjectInput, uploads ProjectUploads) (*models.Project, error)
	Update(ctx context.Context, id string, in models.ProjectInput, uploads ProjectUploads) (*models.Project, error)
	Delete(ctx context.Context, id string) error
	MoveImage(ctx context.Context, id string, from, to int) (*models.Project, error)
	ImportImages(ctx context.Context, id, folderID string) (*models.Project, *ImportStats, error)
}
