package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/wse-am/realty-server/src/models"
	"github.com/wse-am/realty-server/src/repositories"
	"golang.org/x/crypto/bcrypt"
)

// AdminService handles admin user operations
type AdminService struct {
	pool *pgxpool.Pool
	repo repositories.AdminRepository
}

// NewAdminService creates a new admin service
func NewAdminService(pool *pgxpool.Pool) *AdminService {
	return &AdminService{pool: pool}
}

// NewAdminServiceWithRepo creates a new admin service with repository (for testing)
func NewAdminServiceWithRepo(repo repositories.AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

const adminUserColumns = `id, username, password_hash, email, full_name, role, is_active, created_at, updated_at, last_login`

func scanAdminUser(row pgx.Row) (*models.AdminUser, error) {
	user := &models.AdminUser{}
	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.FullName,
		&user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt, &user.LastLogin,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies username and password for an admin session.
// Missing users, deactivated users and wrong passwords surface as distinct
// sentinel errors so the login handler can report each one.
func (as *AdminService) Authenticate(ctx context.Context, username, password string) (*models.AdminUser, error) {
	user, err := as.getByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || user == nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		// Malformed stored hash; not the caller's fault
		return nil, ErrPasswordCheck
	}

	now := time.Now()
	if as.repo != nil {
		if err := as.repo.UpdateLastLogin(ctx, user.ID); err != nil {
			log.Warn().Err(err).Str("username", user.Username).Msg("failed to update last_login")
		}
	} else {
		_, err = as.pool.Exec(ctx,
			`UPDATE admin_users SET last_login = $1, updated_at = NOW() WHERE id = $2`,
			now, user.ID,
		)
		if err != nil {
			log.Warn().Err(err).Str("username", user.Username).Msg("failed to update last_login")
		}
	}

	user.LastLogin = &now
	return user, nil
}

// CreateAdminUser creates a new admin user with a hashed password.
// The duplicate check and the insert run in one transaction.
func (as *AdminService) CreateAdminUser(ctx context.Context, username, password, email, fullName, role string) (*models.AdminUser, error) {
	if role == "" {
		role = models.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
	}

	// Use repository if available (for testing)
	if as.repo != nil {
		if existing, _ := as.repo.GetByUsername(ctx, username); existing != nil {
			return nil, ErrUsernameTaken
		}
		if err := as.repo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create admin user: %w", err)
		}
		return user, nil
	}

	tx, err := as.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM admin_users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	query := `
		INSERT INTO admin_users (username, password_hash, email, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING ` + adminUserColumns

	created, err := scanAdminUser(tx.QueryRow(ctx, query, username, string(hash), email, fullName, role))
	if err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// ResetPassword overwrites a user's password hash unconditionally
func (as *AdminService) ResetPassword(ctx context.Context, username, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if as.repo != nil {
		updated, err := as.repo.UpdatePassword(ctx, username, string(hash))
		if err != nil {
			return fmt.Errorf("failed to reset password: %w", err)
		}
		if !updated {
			return ErrUserNotFound
		}
		return nil
	}

	result, err := as.pool.Exec(ctx,
		`UPDATE admin_users SET password_hash = $1, updated_at = NOW() WHERE username = $2`,
		string(hash), username,
	)
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// GetActiveByID retrieves an active admin user by id. Missing and
// deactivated users both come back as ErrUserNotFound; whoami treats
// them the same.
func (as *AdminService) GetActiveByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	if as.repo != nil {
		user, err := as.repo.GetByID(ctx, id)
		if err != nil || user == nil || !user.IsActive {
			return nil, ErrUserNotFound
		}
		return user, nil
	}

	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE id = $1 AND is_active = true`
	user, err := scanAdminUser(as.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// HasAdmins checks if any admin users exist in the database
func (as *AdminService) HasAdmins(ctx context.Context) (bool, error) {
	var count int
	err := as.pool.QueryRow(ctx, "SELECT COUNT(*) FROM admin_users").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check admin users: %w", err)
	}
	return count > 0, nil
}

// getByUsername fetches a user by username regardless of active status
func (as *AdminService) getByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	if as.repo != nil {
		return as.repo.GetByUsername(ctx, username)
	}

	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE username = $1`
	return scanAdminUser(as.pool.QueryRow(ctx, query, username))
}
