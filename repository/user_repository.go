package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"linedori-web/db"
	"linedori-web/models"
)

// UserRepository handles database operations for users
// Implements UserRepositoryInterface
type UserRepository struct{}

// NewUserRepository creates a new UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

const userColumns = `id, name, email, password_hash, role, created_at`

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail retrieves a user by email (case-insensitive)
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(db.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE LOWER(email) = $1`, strings.ToLower(strings.TrimSpace(email))))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := scanUser(db.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	_, err := db.DB.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, u.ID, u.Name, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash, u.Role, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	log.Printf("💾 Database: inserted user %s with role %s", u.ID, u.Role)
	return nil
}

// CountByRole counts users holding role
func (r *UserRepository) CountByRole(ctx context.Context, role string) (int, error) {
	var count int
	if err := db.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// adminBootstrapLock is the advisory lock key serializing first-admin registration
const adminBootstrapLock = 7261001

// CreateFirstAdmin inserts u as an admin if the users table holds no admin yet.
// Concurrent callers are serialized by a transaction-scoped advisory lock, so
// exactly one of them succeeds; the others get ErrAdminExists.
func (r *UserRepository) CreateFirstAdmin(ctx context.Context, u *models.User) error {
	log.Printf("🔍 CreateFirstAdmin: bootstrapping admin %s", u.ID)

	// Start transaction
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ CreateFirstAdmin: Error starting transaction: %v", err)
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Held until commit or rollback
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, adminBootstrapLock); err != nil {
		return fmt.Errorf("failed to acquire admin bootstrap lock: %w", err)
	}

	var admins int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, models.RoleAdmin).Scan(&admins); err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if admins > 0 {
		log.Printf("⚠️ CreateFirstAdmin: %d admin(s) already exist", admins)
		return ErrAdminExists
	}

	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, u.ID, u.Name, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash, models.RoleAdmin, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Printf("❌ CreateFirstAdmin: Error committing transaction: %v", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Printf("✓ CreateFirstAdmin: admin %s created", u.ID)
	return nil
}
