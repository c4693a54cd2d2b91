package models

// RoleAdmin is the elevated role required for listing writes and provisioning
const RoleAdmin = "admin"

// PropertyStatus represents the visibility status of a listing
type PropertyStatus string

const (
	// PropertyStatusActive indicates the listing is publicly visible
	PropertyStatusActive PropertyStatus = "active"
	// PropertyStatusInactive indicates the listing is hidden from public search
	PropertyStatusInactive PropertyStatus = "inactive"
)

// Filter sentinels sent by the frontend meaning "no filter"
const (
	// DistrictAll is the "all districts" option of the district dropdown
	DistrictAll = "Все районы"
	// FilterAll is the "all" option of the type/transaction dropdowns
	FilterAll = "all"
)

// Defaults applied on property create when a field is absent
const (
	DefaultCurrency        = "AMD"
	DefaultPropertyType    = "apartment"
	DefaultTransactionType = "rent"
	DefaultYearBuilt       = 2020

	// Yerevan city center, the fallback map pin
	DefaultLatitude  = 40.1792
	DefaultLongitude = 44.4991
)
