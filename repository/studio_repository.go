package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"linedori-web/db"
	"linedori-web/models"
)

// StudioRepository handles database operations for the studio profile
// Implements StudioRepositoryInterface
type StudioRepository struct{}

// NewStudioRepository creates a new StudioRepository
func NewStudioRepository() *StudioRepository {
	return &StudioRepository{}
}

// Ensure StudioRepository implements StudioRepositoryInterface
var _ StudioRepositoryInterface = (*StudioRepository)(nil)

const studioColumns = `id, title, description, image, location, contact, email, created_at, updated_at`

func scanStudio(row rowScanner) (*models.Studio, error) {
	var s models.Studio
	var updatedAt sql.NullTime
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Image, &s.Location, &s.Contact, &s.Email, &s.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	s.UpdatedAt = nullTime(updatedAt)
	return &s, nil
}

// List returns the studio records, oldest first so index 0 is the primary profile
func (r *StudioRepository) List(ctx context.Context) ([]models.Studio, error) {
	rows, err := db.DB.QueryContext(ctx, `SELECT `+studioColumns+` FROM studios ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query studios: %w", err)
	}
	defer rows.Close()

	studios := []models.Studio{}
	for rows.Next() {
		s, err := scanStudio(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan studio: %w", err)
		}
		studios = append(studios, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating studios: %w", err)
	}
	return studios, nil
}

// GetByID retrieves a studio by its id
func (r *StudioRepository) GetByID(ctx context.Context, id string) (*models.Studio, error) {
	s, err := scanStudio(db.DB.QueryRowContext(ctx, `SELECT `+studioColumns+` FROM studios WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("studio %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get studio: %w", err)
	}
	return s, nil
}

// Create inserts a new studio
func (r *StudioRepository) Create(ctx context.Context, s *models.Studio) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	_, err := db.DB.ExecContext(ctx, `
		INSERT INTO studios (id, title, description, image, location, contact, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, s.ID, s.Title, s.Description, s.Image, s.Location, s.Contact, s.Email, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert studio: %w", err)
	}
	log.Printf("💾 Database: inserted studio %s", s.ID)
	return nil
}

// Update overwrites the editable fields of a studio
func (r *StudioRepository) Update(ctx context.Context, s *models.Studio) error {
	now := time.Now()
	result, err := db.DB.ExecContext(ctx, `
		UPDATE studios SET title = $2, description = $3, image = $4, location = $5,
			contact = $6, email = $7, updated_at = $8
		WHERE id = $1
	`, s.ID, s.Title, s.Description, s.Image, s.Location, s.Contact, s.Email, now)
	if err != nil {
		return fmt.Errorf("failed to update studio: %w", err)
	}
	if err := requireAffected(result, "studio", s.ID); err != nil {
		return err
	}
	s.UpdatedAt = &now
	return nil
}

// Delete removes a studio
func (r *StudioRepository) Delete(ctx context.Context, id string) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM studios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete studio: %w", err)
	}
	return requireAffected(result, "studio", id)
}
