package repositories

import (
	"context"

	"github.com/wse-am/realty-server/src/models"
)

// AdminRepository defines the interface for admin user data access
type AdminRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	GetByID(ctx context.Context, id int64) (*models.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
	UpdatePassword(ctx context.Context, username, passwordHash string) (bool, error)
}

// PropertyRepository defines the interface for listing data access
type PropertyRepository interface {
	Search(ctx context.Context, filters models.SearchFilters) ([]models.Property, error)
	GetByID(ctx context.Context, id int64) (*models.Property, error)
	Create(ctx context.Context, p *models.Property) error
	Update(ctx context.Context, id int64, update *models.PropertyUpdate) (*models.Property, error)
	Delete(ctx context.Context, id int64) error
}
