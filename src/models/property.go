package models

import "time"

// Property represents a real-estate listing
type Property struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PropertyType    string    `json:"property_type"`
	TransactionType string    `json:"transaction_type"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	Area            float64   `json:"area"`
	Rooms           int       `json:"rooms"`
	Bedrooms        int       `json:"bedrooms"`
	Bathrooms       int       `json:"bathrooms"`
	Floor           int       `json:"floor"`
	TotalFloors     int       `json:"total_floors"`
	YearBuilt       int       `json:"year_built"`
	District        string    `json:"district"`
	Address         string    `json:"address"`
	StreetName      string    `json:"street_name"`
	HouseNumber     string    `json:"house_number"`
	ApartmentNumber string    `json:"apartment_number"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Features        []string  `json:"features"`
	Images          []string  `json:"images"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewProperty is the create-request payload. Pointer fields distinguish
// "absent" from an explicit zero so defaults only apply when the client
// omitted the field.
type NewProperty struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	PropertyType    string   `json:"property_type"`
	TransactionType string   `json:"transaction_type"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	Area            float64  `json:"area"`
	Rooms           int      `json:"rooms"`
	Bedrooms        int      `json:"bedrooms"`
	Bathrooms       int      `json:"bathrooms"`
	Floor           int      `json:"floor"`
	TotalFloors     int      `json:"total_floors"`
	YearBuilt       *int     `json:"year_built"`
	District        string   `json:"district"`
	Address         string   `json:"address"`
	StreetName      string   `json:"street_name"`
	HouseNumber     string   `json:"house_number"`
	ApartmentNumber string   `json:"apartment_number"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Features        []string `json:"features"`
	Images          []string `json:"images"`
	Status          string   `json:"status"`
}

// ToProperty applies the documented create defaults and returns a full record
func (n *NewProperty) ToProperty() Property {
	p := Property{
		Title:           n.Title,
		Description:     n.Description,
		PropertyType:    n.PropertyType,
		TransactionType: n.TransactionType,
		Price:           n.Price,
		Currency:        n.Currency,
		Area:            n.Area,
		Rooms:           n.Rooms,
		Bedrooms:        n.Bedrooms,
		Bathrooms:       n.Bathrooms,
		Floor:           n.Floor,
		TotalFloors:     n.TotalFloors,
		YearBuilt:       DefaultYearBuilt,
		District:        n.District,
		Address:         n.Address,
		StreetName:      n.StreetName,
		HouseNumber:     n.HouseNumber,
		ApartmentNumber: n.ApartmentNumber,
		Latitude:        DefaultLatitude,
		Longitude:       DefaultLongitude,
		Features:        n.Features,
		Images:          n.Images,
		Status:          n.Status,
	}

	// Zero means "not filled in" for year_built on the admin form
	if n.YearBuilt != nil && *n.YearBuilt != 0 {
		p.YearBuilt = *n.YearBuilt
	}
	if n.Latitude != nil {
		p.Latitude = *n.Latitude
	}
	if n.Longitude != nil {
		p.Longitude = *n.Longitude
	}

	if p.PropertyType == "" {
		p.PropertyType = DefaultPropertyType
	}
	if p.TransactionType == "" {
		p.TransactionType = DefaultTransactionType
	}
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.Status == "" {
		p.Status = string(PropertyStatusActive)
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}

	return p
}

// PropertyUpdate is the partial-update payload. A nil field was not supplied
// and must be left untouched; a non-nil field is written even when it points
// at a zero value.
type PropertyUpdate struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	PropertyType    *string   `json:"property_type"`
	TransactionType *string   `json:"transaction_type"`
	Price           *float64  `json:"price"`
	Currency        *string   `json:"currency"`
	Area            *float64  `json:"area"`
	Rooms           *int      `json:"rooms"`
	Bedrooms        *int      `json:"bedrooms"`
	Bathrooms       *int      `json:"bathrooms"`
	Floor           *int      `json:"floor"`
	TotalFloors     *int      `json:"total_floors"`
	YearBuilt       *int      `json:"year_built"`
	District        *string   `json:"district"`
	Address         *string   `json:"address"`
	StreetName      *string   `json:"street_name"`
	HouseNumber     *string   `json:"house_number"`
	ApartmentNumber *string   `json:"apartment_number"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	Features        *[]string `json:"features"`
	Images          *[]string `json:"images"`
	Status          *string   `json:"status"`
}

// IsEmpty reports whether no recognized field was supplied
func (u *PropertyUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.PropertyType == nil &&
		u.TransactionType == nil && u.Price == nil && u.Currency == nil &&
		u.Area == nil && u.Rooms == nil && u.Bedrooms == nil &&
		u.Bathrooms == nil && u.Floor == nil && u.TotalFloors == nil &&
		u.YearBuilt == nil && u.District == nil && u.Address == nil &&
		u.StreetName == nil && u.HouseNumber == nil && u.ApartmentNumber == nil &&
		u.Latitude == nil && u.Longitude == nil && u.Features == nil &&
		u.Images == nil && u.Status == nil
}

// SearchFilters carries the raw query-string filters of the public search.
// Numeric fields stay strings here; unparseable values are ignored rather
// than rejected, matching the public search contract.
type SearchFilters struct {
	District        string
	PropertyType    string
	TransactionType string
	MinPrice        string
	MaxPrice        string
	Rooms           string
	Query           string

	// IncludeInactive lifts the implicit status filter for admin callers
	IncludeInactive bool
}
