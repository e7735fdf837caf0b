package repository

import (
	"context"
	"errors"

	"linedori-web/models"
)

// ErrNotFound is returned (wrapped) when a record does not exist
var ErrNotFound = errors.New("record not found")

// ErrAdminExists is returned when bootstrapping an admin after one already exists
var ErrAdminExists = errors.New("an admin already exists")

// ProjectRepositoryInterface defines the contract for project repository operations
type ProjectRepositoryInterface interface {
	List(ctx context.Context) ([]models.Project, error)
	ListHomePage(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	UpdateImages(ctx context.Context, id string, images []string) error
	Delete(ctx context.Context, id string) error
}

// StudioRepositoryInterface defines the contract for studio repository operations
type StudioRepositoryInterface interface {
	List(ctx context.Context) ([]models.Studio, error)
	GetByID(ctx context.Context, id string) (*models.Studio, error)
	Create(ctx context.Context, studio *models.Studio) error
	Update(ctx context.Context, studio *models.Studio) error
	Delete(ctx context.Context, id string) error
}

// TeamRepositoryInterface defines the contract for team member repository operations
type TeamRepositoryInterface interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	Create(ctx context.Context, member *models.TeamMember) error
	Update(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id string) error
}

// PressRepositoryInterface defines the contract for press repository operations
type PressRepositoryInterface interface {
	List(ctx context.Context) ([]models.Press, error)
	GetByID(ctx context.Context, id string) (*models.Press, error)
	Create(ctx context.Context, press *models.Press) error
	Update(ctx context.Context, press *models.Press) error
	Delete(ctx context.Context, id string) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	CountByRole(ctx context.Context, role string) (int, error)
	// CreateFirstAdmin inserts u only while no admin exists, atomically
	CreateFirstAdmin(ctx context.Context, u *models.User) error
}

// SessionRepositoryInterface defines the contract for session repository operations
type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
