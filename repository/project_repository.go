package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"linedori-web/db"
	"linedori-web/models"
)

// ProjectRepository handles database operations for projects
// Implements ProjectRepositoryInterface
type ProjectRepository struct{}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// Ensure ProjectRepository implements ProjectRepositoryInterface
var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

const projectColumns = `
	id, title, category, sub_category, description, contact_description, images,
	pdf_file, video_file, is_prior, to_home_page, home_page_order, created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var p models.Project
	var imagesJSON []byte
	var order sql.NullInt64
	var updatedAt sql.NullTime

	err := row.Scan(
		&p.ID, &p.Title, &p.Category, &p.SubCategory, &p.Description, &p.ContactDescription,
		&imagesJSON, &p.PDFFile, &p.VideoFile, &p.IsPrior, &p.ToHomePage, &order,
		&p.CreatedAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Images = []string{}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images for project %s: %w", p.ID, err)
		}
	}
	if order.Valid {
		v := int(order.Int64)
		p.HomePageOrder = &v
	}
	p.UpdatedAt = nullTime(updatedAt)
	return &p, nil
}

func (r *ProjectRepository) query(ctx context.Context, query string, args ...any) ([]models.Project, error) {
	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}
	return projects, nil
}

// List returns every project, newest first
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	return r.query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
}

// ListHomePage returns the projects flagged for the home page or as prior work, newest first
func (r *ProjectRepository) ListHomePage(ctx context.Context) ([]models.Project, error) {
	return r.query(ctx, `SELECT `+projectColumns+` FROM projects WHERE to_home_page OR is_prior ORDER BY created_at DESC`)
}

// GetByID retrieves a project by its id
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	row := db.DB.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

func encodeImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	return json.Marshal(images)
}

func nullOrder(order *int) sql.NullInt64 {
	if order == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*order), Valid: true}
}

// Create inserts a new project
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	imagesJSON, err := encodeImages(p.Images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO projects (
			id, title, category, sub_category, description, contact_description, images,
			pdf_file, video_file, is_prior, to_home_page, home_page_order, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = db.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Category, p.SubCategory, p.Description, p.ContactDescription, imagesJSON,
		p.PDFFile, p.VideoFile, p.IsPrior, p.ToHomePage, nullOrder(p.HomePageOrder), p.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ Database INSERT error for project %s: %v", p.ID, err)
		return fmt.Errorf("failed to insert project: %w", err)
	}
	log.Printf("💾 Database: inserted project %s (%s)", p.ID, p.Title)
	return nil
}

// Update overwrites every editable field of a project
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	imagesJSON, err := encodeImages(p.Images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}
	now := time.Now()

	query := `
		UPDATE projects SET
			title = $2, category = $3, sub_category = $4, description = $5,
			contact_description = $6, images = $7, pdf_file = $8, video_file = $9,
			is_prior = $10, to_home_page = $11, home_page_order = $12, updated_at = $13
		WHERE id = $1
	`
	result, err := db.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Category, p.SubCategory, p.Description, p.ContactDescription, imagesJSON,
		p.PDFFile, p.VideoFile, p.IsPrior, p.ToHomePage, nullOrder(p.HomePageOrder), now,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if err := requireAffected(result, "project", p.ID); err != nil {
		return err
	}
	p.UpdatedAt = &now
	log.Printf("💾 Database: updated project %s", p.ID)
	return nil
}

// UpdateImages replaces the ordered image list of a project
func (r *ProjectRepository) UpdateImages(ctx context.Context, id string, images []string) error {
	imagesJSON, err := encodeImages(images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}
	result, err := db.DB.ExecContext(ctx,
		`UPDATE projects SET images = $2, updated_at = NOW() WHERE id = $1`, id, imagesJSON)
	if err != nil {
		return fmt.Errorf("failed to update project images: %w", err)
	}
	return requireAffected(result, "project", id)
}

// Delete removes a project
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if err := requireAffected(result, "project", id); err != nil {
		return err
	}
	log.Printf("💾 Database: deleted project %s", id)
	return nil
}

// requireAffected maps a zero row count to ErrNotFound
func requireAffected(result sql.Result, kind, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("⚠️  Warning: Could not get rows affected: %v", err)
		return nil
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}

func nullTime(row sql.NullTime) *time.Time {
	if !row.Valid {
		return nil
	}
	t := row.Time
	return &t
}
