package service

import (
	"context"

	"linedori-web/models"
)

// ContentFetcherInterface defines the contract for reading public content
type ContentFetcherInterface interface {
	FetchHomeContent(ctx context.Context, reservedSlot int) HomeContent
	FetchProjects(ctx context.Context) ([]models.Project, error)
	FetchProject(ctx context.Context, id string) (*models.Project, error)
	FetchStudio(ctx context.Context) (*models.Studio, error)
	FetchTeam(ctx context.Context) ([]models.TeamMember, error)
	FetchPress(ctx context.Context) ([]models.Press, error)
}
