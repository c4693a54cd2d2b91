package mock

import (
	"context"

	"github.com/wse-am/realty-server/src/models"
	"github.com/wse-am/realty-server/src/repositories"
)

// PropertyRepository is a mock implementation of repositories.PropertyRepository
type PropertyRepository struct {
	// Function stubs that can be overridden in tests
	SearchFunc  func(ctx context.Context, filters models.SearchFilters) ([]models.Property, error)
	GetByIDFunc func(ctx context.Context, id int64) (*models.Property, error)
	CreateFunc  func(ctx context.Context, p *models.Property) error
	UpdateFunc  func(ctx context.Context, id int64, update *models.PropertyUpdate) (*models.Property, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewPropertyRepository creates a new mock property repository
func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *PropertyRepository) Search(ctx context.Context, filters models.SearchFilters) ([]models.Property, error) {
	m.Calls["Search"] = append(m.Calls["Search"], filters)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filters)
	}
	return []models.Property{}, nil
}

func (m *PropertyRepository) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *PropertyRepository) Create(ctx context.Context, p *models.Property) error {
	m.Calls["Create"] = append(m.Calls["Create"], p)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *PropertyRepository) Update(ctx context.Context, id int64, update *models.PropertyUpdate) (*models.Property, error) {
	m.Calls["Update"] = append(m.Calls["Update"], id)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *PropertyRepository) Delete(ctx context.Context, id int64) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Ensure PropertyRepository implements the interface
var _ repositories.PropertyRepository = (*PropertyRepository)(nil)
