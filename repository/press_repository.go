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

// PressRepository handles database operations for press articles
// Implements PressRepositoryInterface
type PressRepository struct{}

// NewPressRepository creates a new PressRepository
func NewPressRepository() *PressRepository {
	return &PressRepository{}
}

// Ensure PressRepository implements PressRepositoryInterface
var _ PressRepositoryInterface = (*PressRepository)(nil)

const pressColumns = `id, title, date, description, link, image, created_at, updated_at`

func scanPress(row rowScanner) (*models.Press, error) {
	var p models.Press
	var updatedAt sql.NullTime
	if err := row.Scan(&p.ID, &p.Title, &p.Date, &p.Description, &p.Link, &p.Image, &p.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	p.UpdatedAt = nullTime(updatedAt)
	return &p, nil
}

// List returns press articles, newest first
func (r *PressRepository) List(ctx context.Context) ([]models.Press, error) {
	rows, err := db.DB.QueryContext(ctx, `SELECT `+pressColumns+` FROM press ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query press: %w", err)
	}
	defer rows.Close()

	articles := []models.Press{}
	for rows.Next() {
		p, err := scanPress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan press: %w", err)
		}
		articles = append(articles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating press: %w", err)
	}
	return articles, nil
}

// GetByID retrieves a press article by id
func (r *PressRepository) GetByID(ctx context.Context, id string) (*models.Press, error) {
	p, err := scanPress(db.DB.QueryRowContext(ctx, `SELECT `+pressColumns+` FROM press WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("press %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get press: %w", err)
	}
	return p, nil
}

// Create inserts a new press article
func (r *PressRepository) Create(ctx context.Context, p *models.Press) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	_, err := db.DB.ExecContext(ctx, `
		INSERT INTO press (id, title, date, description, link, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, p.ID, p.Title, p.Date, p.Description, p.Link, p.Image, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert press: %w", err)
	}
	log.Printf("💾 Database: inserted press %s", p.ID)
	return nil
}

// Update overwrites the editable fields of a press article
func (r *PressRepository) Update(ctx context.Context, p *models.Press) error {
	now := time.Now()
	result, err := db.DB.ExecContext(ctx, `
		UPDATE press SET title = $2, date = $3, description = $4, link = $5, image = $6, updated_at = $7
		WHERE id = $1
	`, p.ID, p.Title, p.Date, p.Description, p.Link, p.Image, now)
	if err != nil {
		return fmt.Errorf("failed to update press: %w", err)
	}
	if err := requireAffected(result, "press", p.ID); err != nil {
		return err
	}
	p.UpdatedAt = &now
	return nil
}

// Delete removes a press article
func (r *PressRepository) Delete(ctx context.Context, id string) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM press WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete press: %w", err)
	}
	return requireAffected(result, "press", id)
}
