package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wse-am/realty-server/src/models"
	"github.com/wse-am/realty-server/src/repositories/mock"
)

func TestBuildSearchQuery_NoFilters(t *testing.T) {
	query, args := buildSearchQuery(models.SearchFilters{})

	assert.Contains(t, query, "WHERE 1=1")
	assert.Contains(t, query, "status = $1")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	require.Len(t, args, 1)
	assert.Equal(t, "active", args[0])
}

func TestBuildSearchQuery_AdminSeesAllStatuses(t *testing.T) {
	query, args := buildSearchQuery(models.SearchFilters{IncludeInactive: true})

	assert.NotContains(t, query, "status")
	assert.Empty(t, args)
}

func TestBuildSearchQuery_SentinelsSkipped(t *testing.T) {
	query, args := buildSearchQuery(models.SearchFilters{
		District:        models.DistrictAll,
		PropertyType:    models.FilterAll,
		TransactionType: models.FilterAll,
	})

	assert.NotContains(t, query, "district")
	assert.NotContains(t, query, "property_type =")
	assert.NotContains(t, query, "transaction_type =")
	require.Len(t, args, 1) // status only
}

func TestBuildSearchQuery_AllFilters(t *testing.T) {
	query, args := buildSearchQuery(models.SearchFilters{
		District:        "Кентрон",
		PropertyType:    "apartment",
		TransactionType: "rent",
		MinPrice:        "100000",
		MaxPrice:        "500000.50",
		Rooms:           "3",
		Query:           "balcony",
	})

	assert.Contains(t, query, "district = $2")
	assert.Contains(t, query, "property_type = $3")
	assert.Contains(t, query, "transaction_type = $4")
	assert.Contains(t, query, "price >= $5")
	assert.Contains(t, query, "price <= $6")
	assert.Contains(t, query, "rooms = $7")
	assert.Contains(t, query, "title ILIKE $8 OR description ILIKE $8 OR address ILIKE $8")

	require.Len(t, args, 8)
	assert.Equal(t, "Кентрон", args[1])
	assert.Equal(t, 100000.0, args[4])
	assert.Equal(t, 500000.50, args[5])
	assert.Equal(t, 3, args[6])
	assert.Equal(t, "%balcony%", args[7])
}

func TestBuildSearchQuery_UnparseableNumericsIgnored(t *testing.T) {
	query, args := buildSearchQuery(models.SearchFilters{
		MinPrice: "cheap",
		MaxPrice: "12,000",
		Rooms:    "three",
	})

	assert.NotContains(t, query, "price")
	assert.NotContains(t, query, "rooms")
	require.Len(t, args, 1) // status only
}

func TestBuildSearchQuery_UserInputNeverInSQLText(t *testing.T) {
	injection := "'; DROP TABLE properties; --"
	query, _ := buildSearchQuery(models.SearchFilters{
		District: injection,
		Query:    injection,
	})

	assert.NotContains(t, query, injection)
}

func TestBuildUpdateQuery_PartialFields(t *testing.T) {
	title := "Renovated"
	price := 0.0
	update := &models.PropertyUpdate{Title: &title, Price: &price}

	query, args := buildUpdateQuery(9, update)

	assert.Contains(t, query, "title = $1")
	assert.Contains(t, query, "price = $2")
	assert.Contains(t, query, "updated_at = NOW()")
	assert.Contains(t, query, "WHERE id = $3")
	assert.NotContains(t, query, "description")

	require.Len(t, args, 3)
	assert.Equal(t, "Renovated", args[0])
	assert.Equal(t, 0.0, args[1]) // explicit zero is written
	assert.Equal(t, int64(9), args[2])
}

func TestPropertyService_UpdateNoFields(t *testing.T) {
	repo := mock.NewPropertyRepository()
	svc := NewPropertyServiceWithRepo(repo)

	_, err := svc.Update(context.Background(), 1, &models.PropertyUpdate{})
	assert.ErrorIs(t, err, ErrNoFields)
	assert.Empty(t, repo.Calls["Update"], "repository must not be hit for an empty update")
}

func TestPropertyService_UpdateNotFound(t *testing.T) {
	repo := mock.NewPropertyRepository()
	repo.UpdateFunc = func(ctx context.Context, id int64, update *models.PropertyUpdate) (*models.Property, error) {
		return nil, nil
	}
	svc := NewPropertyServiceWithRepo(repo)

	title := "x"
	_, err := svc.Update(context.Background(), 404, &models.PropertyUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestPropertyService_CreateAppliesDefaults(t *testing.T) {
	repo := mock.NewPropertyRepository()
	var created *models.Property
	repo.CreateFunc = func(ctx context.Context, p *models.Property) error {
		p.ID = 11
		created = p
		return nil
	}
	svc := NewPropertyServiceWithRepo(repo)

	p, err := svc.Create(context.Background(), &models.NewProperty{Title: "New flat"})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, int64(11), p.ID)
	assert.Equal(t, models.DefaultCurrency, created.Currency)
	assert.Equal(t, models.DefaultYearBuilt, created.YearBuilt)
	assert.Equal(t, string(models.PropertyStatusActive), created.Status)
}

func TestPropertyService_DeleteMissingIsNotAnError(t *testing.T) {
	repo := mock.NewPropertyRepository()
	svc := NewPropertyServiceWithRepo(repo)

	err := svc.Delete(context.Background(), 999999)
	assert.NoError(t, err)
	assert.Len(t, repo.Calls["Delete"], 1)
}

func TestPropertyService_SearchPassesFilters(t *testing.T) {
	repo := mock.NewPropertyRepository()
	repo.SearchFunc = func(ctx context.Context, filters models.SearchFilters) ([]models.Property, error) {
		assert.Equal(t, "Ачапняк", filters.District)
		return []models.Property{{ID: 1}}, nil
	}
	svc := NewPropertyServiceWithRepo(repo)

	result, err := svc.Search(context.Background(), models.SearchFilters{District: "Ачапняк"})
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestPropertyService_SearchError(t *testing.T) {
	repo := mock.NewPropertyRepository()
	repo.SearchFunc = func(ctx context.Context, filters models.SearchFilters) ([]models.Property, error) {
		return nil, errors.New("connection reset")
	}
	svc := NewPropertyServiceWithRepo(repo)

	_, err := svc.Search(context.Background(), models.SearchFilters{})
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "connection reset"))
}
