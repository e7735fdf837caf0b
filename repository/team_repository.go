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

// TeamRepository handles database operations for team members
// Implements TeamRepositoryInterface
type TeamRepository struct{}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository() *TeamRepository {
	return &TeamRepository{}
}

// Ensure TeamRepository implements TeamRepositoryInterface
var _ TeamRepositoryInterface = (*TeamRepository)(nil)

const teamColumns = `id, name, role, description, image, created_at, updated_at`

func scanTeamMember(row rowScanner) (*models.TeamMember, error) {
	var m models.TeamMember
	var updatedAt sql.NullTime
	if err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Description, &m.Image, &m.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	m.UpdatedAt = nullTime(updatedAt)
	return &m, nil
}

// List returns the team in insertion order
func (r *TeamRepository) List(ctx context.Context) ([]models.TeamMember, error) {
	rows, err := db.DB.QueryContext(ctx, `SELECT `+teamColumns+` FROM team_members ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	members := []models.TeamMember{}
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team members: %w", err)
	}
	return members, nil
}

// GetByID retrieves a team member by id
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	m, err := scanTeamMember(db.DB.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM team_members WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team member %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return m, nil
}

// Create inserts a new team member
func (r *TeamRepository) Create(ctx context.Context, m *models.TeamMember) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	_, err := db.DB.ExecContext(ctx, `
		INSERT INTO team_members (id, name, role, description, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, m.ID, m.Name, m.Role, m.Description, m.Image, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert team member: %w", err)
	}
	log.Printf("💾 Database: inserted team member %s (%s)", m.ID, m.Name)
	return nil
}

// Update overwrites the editable fields of a team member
func (r *TeamRepository) Update(ctx context.Context, m *models.TeamMember) error {
	now := time.Now()
	result, err := db.DB.ExecContext(ctx, `
		UPDATE team_members SET name = $2, role = $3, description = $4, image = $5, updated_at = $6
		WHERE id = $1
	`, m.ID, m.Name, m.Role, m.Description, m.Image, now)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}
	if err := requireAffected(result, "team member", m.ID); err != nil {
		return err
	}
	m.UpdatedAt = &now
	return nil
}

// Delete removes a team member
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return requireAffected(result, "team member", id)
}
