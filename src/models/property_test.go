package models

import "testing"

func TestNewProperty_ToPropertyDefaults(t *testing.T) {
	n := &NewProperty{Title: "Studio in Kentron"}
	p := n.ToProperty()

	if p.YearBuilt != DefaultYearBuilt {
		t.Errorf("expected year_built %d, got %d", DefaultYearBuilt, p.YearBuilt)
	}
	if p.Latitude != DefaultLatitude || p.Longitude != DefaultLongitude {
		t.Errorf("expected Yerevan default coordinates, got %f/%f", p.Latitude, p.Longitude)
	}
	if p.Currency != DefaultCurrency {
		t.Errorf("expected currency %s, got %s", DefaultCurrency, p.Currency)
	}
	if p.PropertyType != DefaultPropertyType {
		t.Errorf("expected property_type %s, got %s", DefaultPropertyType, p.PropertyType)
	}
	if p.TransactionType != DefaultTransactionType {
		t.Errorf("expected transaction_type %s, got %s", DefaultTransactionType, p.TransactionType)
	}
	if p.Status != string(PropertyStatusActive) {
		t.Errorf("expected status active, got %s", p.Status)
	}
	if p.Features == nil || p.Images == nil {
		t.Error("expected empty slices, got nil")
	}
}

func TestNewProperty_ToPropertyExplicitValues(t *testing.T) {
	year := 1978
	lat := 40.2
	lng := 44.5
	n := &NewProperty{
		Title:           "House in Avan",
		PropertyType:    "house",
		TransactionType: "sale",
		Currency:        "USD",
		Status:          "inactive",
		YearBuilt:       &year,
		Latitude:        &lat,
		Longitude:       &lng,
		Features:        []string{"garage"},
	}
	p := n.ToProperty()

	if p.YearBuilt != 1978 {
		t.Errorf("expected year_built 1978, got %d", p.YearBuilt)
	}
	if p.Latitude != lat || p.Longitude != lng {
		t.Errorf("expected explicit coordinates, got %f/%f", p.Latitude, p.Longitude)
	}
	if p.PropertyType != "house" || p.TransactionType != "sale" || p.Currency != "USD" {
		t.Errorf("explicit enum values were overridden: %s/%s/%s", p.PropertyType, p.TransactionType, p.Currency)
	}
	if p.Status != "inactive" {
		t.Errorf("expected status inactive, got %s", p.Status)
	}
	if len(p.Features) != 1 || p.Features[0] != "garage" {
		t.Errorf("expected features preserved, got %v", p.Features)
	}
}

func TestNewProperty_ZeroYearBuiltFallsBack(t *testing.T) {
	// The admin form sends 0 for "not filled in"
	zero := 0
	n := &NewProperty{YearBuilt: &zero}
	p := n.ToProperty()

	if p.YearBuilt != DefaultYearBuilt {
		t.Errorf("expected zero year_built to fall back to %d, got %d", DefaultYearBuilt, p.YearBuilt)
	}
}

func TestPropertyUpdate_IsEmpty(t *testing.T) {
	u := &PropertyUpdate{}
	if !u.IsEmpty() {
		t.Error("expected empty update to report IsEmpty")
	}

	price := 0.0
	u.Price = &price
	if u.IsEmpty() {
		t.Error("expected update with explicit zero price to not be empty")
	}
}
