package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wse-am/realty-server/src/models"
	"github.com/wse-am/realty-server/src/repositories"
)

// PropertyService handles listing search and CRUD
type PropertyService struct {
	pool *pgxpool.Pool
	repo repositories.PropertyRepository
}

// NewPropertyService creates a new property service
func NewPropertyService(pool *pgxpool.Pool) *PropertyService {
	return &PropertyService{pool: pool}
}

// NewPropertyServiceWithRepo creates a new property service with repository (for testing)
func NewPropertyServiceWithRepo(repo repositories.PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

const propertyColumns = `id, title, description, property_type, transaction_type, price, currency,
	area, rooms, bedrooms, bathrooms, floor, total_floors, year_built,
	district, address, street_name, house_number, apartment_number,
	latitude, longitude, features, images, status, created_at, updated_at`

func scanProperty(row pgx.Row) (*models.Property, error) {
	p := &models.Property{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.PropertyType, &p.TransactionType, &p.Price, &p.Currency,
		&p.Area, &p.Rooms, &p.Bedrooms, &p.Bathrooms, &p.Floor, &p.TotalFloors, &p.YearBuilt,
		&p.District, &p.Address, &p.StreetName, &p.HouseNumber, &p.ApartmentNumber,
		&p.Latitude, &p.Longitude, &p.Features, &p.Images, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// buildSearchQuery translates filters into a parameterized SELECT.
// Sentinel values ("Все районы", "all") and unparseable numerics are
// skipped rather than rejected; user input never reaches the SQL text.
func buildSearchQuery(filters models.SearchFilters) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + propertyColumns + ` FROM properties WHERE 1=1`)

	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if !filters.IncludeInactive {
		sb.WriteString(" AND status = " + arg(string(models.PropertyStatusActive)))
	}
	if filters.District != "" && filters.District != models.DistrictAll {
		sb.WriteString(" AND district = " + arg(filters.District))
	}
	if filters.PropertyType != "" && filters.PropertyType != models.FilterAll {
		sb.WriteString(" AND property_type = " + arg(filters.PropertyType))
	}
	if filters.TransactionType != "" && filters.TransactionType != models.FilterAll {
		sb.WriteString(" AND transaction_type = " + arg(filters.TransactionType))
	}
	if filters.MinPrice != "" {
		if v, err := strconv.ParseFloat(filters.MinPrice, 64); err == nil {
			sb.WriteString(" AND price >= " + arg(v))
		}
	}
	if filters.MaxPrice != "" {
		if v, err := strconv.ParseFloat(filters.MaxPrice, 64); err == nil {
			sb.WriteString(" AND price <= " + arg(v))
		}
	}
	if filters.Rooms != "" {
		if v, err := strconv.Atoi(filters.Rooms); err == nil {
			sb.WriteString(" AND rooms = " + arg(v))
		}
	}
	if filters.Query != "" {
		pattern := arg("%" + filters.Query + "%")
		sb.WriteString(fmt.Sprintf(" AND (title ILIKE %s OR description ILIKE %s OR address ILIKE %s)",
			pattern, pattern, pattern))
	}

	sb.WriteString(" ORDER BY created_at DESC")
	return sb.String(), args
}

// Search returns listings matching the filters, newest first
func (ps *PropertyService) Search(ctx context.Context, filters models.SearchFilters) ([]models.Property, error) {
	if ps.repo != nil {
		return ps.repo.Search(ctx, filters)
	}

	query, args := buildSearchQuery(filters)
	rows, err := ps.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read properties: %w", err)
	}

	return properties, nil
}

// GetByID retrieves a single listing
func (ps *PropertyService) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	if ps.repo != nil {
		p, err := ps.repo.GetByID(ctx, id)
		if err != nil || p == nil {
			return nil, ErrPropertyNotFound
		}
		return p, nil
	}

	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := scanProperty(ps.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return p, nil
}

// Create inserts a new listing with defaults applied
func (ps *PropertyService) Create(ctx context.Context, req *models.NewProperty) (*models.Property, error) {
	p := req.ToProperty()

	if ps.repo != nil {
		if err := ps.repo.Create(ctx, &p); err != nil {
			return nil, fmt.Errorf("failed to create property: %w", err)
		}
		return &p, nil
	}

	query := `
		INSERT INTO properties (
			title, description, property_type, transaction_type, price, currency,
			area, rooms, bedrooms, bathrooms, floor, total_floors, year_built,
			district, address, street_name, house_number, apartment_number,
			latitude, longitude, features, images, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)
		RETURNING ` + propertyColumns

	created, err := scanProperty(ps.pool.QueryRow(ctx, query,
		p.Title, p.Description, p.PropertyType, p.TransactionType, p.Price, p.Currency,
		p.Area, p.Rooms, p.Bedrooms, p.Bathrooms, p.Floor, p.TotalFloors, p.YearBuilt,
		p.District, p.Address, p.StreetName, p.HouseNumber, p.ApartmentNumber,
		p.Latitude, p.Longitude, p.Features, p.Images, p.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return created, nil
}

// buildUpdateQuery translates a partial update into a parameterized UPDATE.
// Only supplied fields appear in the SET clause; updated_at is always touched.
func buildUpdateQuery(id int64, update *models.PropertyUpdate) (string, []interface{}) {
	sets := []string{}
	args := []interface{}{}
	set := func(column string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Title != nil {
		set("title", *update.Title)
	}
	if update.Description != nil {
		set("description", *update.Description)
	}
	if update.PropertyType != nil {
		set("property_type", *update.PropertyType)
	}
	if update.TransactionType != nil {
		set("transaction_type", *update.TransactionType)
	}
	if update.Price != nil {
		set("price", *update.Price)
	}
	if update.Currency != nil {
		set("currency", *update.Currency)
	}
	if update.Area != nil {
		set("area", *update.Area)
	}
	if update.Rooms != nil {
		set("rooms", *update.Rooms)
	}
	if update.Bedrooms != nil {
		set("bedrooms", *update.Bedrooms)
	}
	if update.Bathrooms != nil {
		set("bathrooms", *update.Bathrooms)
	}
	if update.Floor != nil {
		set("floor", *update.Floor)
	}
	if update.TotalFloors != nil {
		set("total_floors", *update.TotalFloors)
	}
	if update.YearBuilt != nil {
		set("year_built", *update.YearBuilt)
	}
	if update.District != nil {
		set("district", *update.District)
	}
	if update.Address != nil {
		set("address", *update.Address)
	}
	if update.StreetName != nil {
		set("street_name", *update.StreetName)
	}
	if update.HouseNumber != nil {
		set("house_number", *update.HouseNumber)
	}
	if update.ApartmentNumber != nil {
		set("apartment_number", *update.ApartmentNumber)
	}
	if update.Latitude != nil {
		set("latitude", *update.Latitude)
	}
	if update.Longitude != nil {
		set("longitude", *update.Longitude)
	}
	if update.Features != nil {
		set("features", *update.Features)
	}
	if update.Images != nil {
		set("images", *update.Images)
	}
	if update.Status != nil {
		set("status", *update.Status)
	}

	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE properties SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), propertyColumns,
	)
	return query, args
}

// Update applies a partial update and returns the updated listing.
// An update with no recognized fields is an error, not a no-op.
func (ps *PropertyService) Update(ctx context.Context, id int64, update *models.PropertyUpdate) (*models.Property, error) {
	if update.IsEmpty() {
		return nil, ErrNoFields
	}

	if ps.repo != nil {
		p, err := ps.repo.Update(ctx, id, update)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, ErrPropertyNotFound
		}
		return p, nil
	}

	query, args := buildUpdateQuery(id, update)
	p, err := scanProperty(ps.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	return p, nil
}

// Delete removes a listing. Deleting a listing that does not exist is
// not an error; the end state is the same.
func (ps *PropertyService) Delete(ctx context.Context, id int64) error {
	if ps.repo != nil {
		return ps.repo.Delete(ctx, id)
	}

	_, err := ps.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	return nil
}
