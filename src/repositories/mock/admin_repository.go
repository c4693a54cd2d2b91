package mock

import (
	"context"

	"github.com/wse-am/realty-server/src/models"
	"github.com/wse-am/realty-server/src/repositories"
)

// AdminRepository is a mock implementation of repositories.AdminRepository
type AdminRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc          func(ctx context.Context, user *models.AdminUser) error
	GetByIDFunc         func(ctx context.Context, id int64) (*models.AdminUser, error)
	GetByUsernameFunc   func(ctx context.Context, username string) (*models.AdminUser, error)
	UpdateLastLoginFunc func(ctx context.Context, userID int64) error
	UpdatePasswordFunc  func(ctx context.Context, username, passwordHash string) (bool, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *AdminRepository) Create(ctx context.Context, user *models.AdminUser) error {
	m.Calls["Create"] = append(m.Calls["Create"], user)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *AdminRepository) GetByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	m.Calls["GetByUsername"] = append(m.Calls["GetByUsername"], username)
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *AdminRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	m.Calls["UpdateLastLogin"] = append(m.Calls["UpdateLastLogin"], userID)
	if m.UpdateLastLoginFunc != nil {
		return m.UpdateLastLoginFunc(ctx, userID)
	}
	return nil
}

func (m *AdminRepository) UpdatePassword(ctx context.Context, username, passwordHash string) (bool, error) {
	m.Calls["UpdatePassword"] = append(m.Calls["UpdatePassword"], username)
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, username, passwordHash)
	}
	return true, nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
