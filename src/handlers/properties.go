package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/wse-am/realty-server/src/middleware"
	"github.com/wse-am/realty-server/src/models"
	"github.com/wse-am/realty-server/src/services"
)

// PropertyHandler handles listing search and CRUD
type PropertyHandler struct {
	propertyService *services.PropertyService
	analytics       *services.AnalyticsService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService *services.PropertyService, analytics *services.AnalyticsService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		analytics:       analytics,
	}
}

// HandleSearch serves the public listing search. Anonymous callers see
// active listings only; a valid admin token lifts the status filter.
func (ph *PropertyHandler) HandleSearch(c *gin.Context) {
	filters := models.SearchFilters{
		District:        c.Query("district"),
		PropertyType:    c.Query("type"),
		TransactionType: c.Query("transaction"),
		MinPrice:        c.Query("min_price"),
		MaxPrice:        c.Query("max_price"),
		Rooms:           c.Query("rooms"),
		Query:           c.Query("query"),
		IncludeInactive: middleware.IsAdmin(c),
	}

	properties, err := ph.propertyService.Search(c.Request.Context(), filters)
	if err != nil {
		log.Error().Err(err).Msg("property search failed")
		respondError(c, http.StatusInternalServerError, "Failed to search properties")
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"properties": properties,
		"count":      len(properties),
	})
}

// HandleCreate inserts a new listing
func (ph *PropertyHandler) HandleCreate(c *gin.Context) {
	var req models.NewProperty
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := ph.propertyService.Create(c.Request.Context(), &req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create property")
		respondError(c, http.StatusInternalServerError, "Failed to create property")
		return
	}

	username := c.GetString(middleware.ContextUsername)
	ph.analytics.TrackPropertyCreated(c.Request.Context(), username,
		property.ID, property.PropertyType, property.TransactionType)

	respondOK(c, http.StatusCreated, gin.H{
		"property_id": property.ID,
		"message":     "Property created",
	})
}

// propertyID reads the listing id from the query string. The admin panel
// sends it as ?id=N on PUT and DELETE.
func propertyID(c *gin.Context) (int64, bool) {
	raw := c.Query("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// HandleUpdate applies a partial update to a listing
func (ph *PropertyHandler) HandleUpdate(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Property id is required")
		return
	}

	var update models.PropertyUpdate
	if err := c.BindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := ph.propertyService.Update(c.Request.Context(), id, &update)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoFields):
			respondError(c, http.StatusBadRequest, "No fields to update")
		case errors.Is(err, services.ErrPropertyNotFound):
			respondError(c, http.StatusNotFound, "Property not found")
		default:
			log.Error().Err(err).Int64("property_id", id).Msg("failed to update property")
			respondError(c, http.StatusInternalServerError, "Failed to update property")
		}
		return
	}

	respondOK(c, http.StatusOK, gin.H{"property": property})
}

// HandleDelete removes a listing. The response is 200 whether or not a row
// existed; the admin panel retries deletes and treats both as done.
func (ph *PropertyHandler) HandleDelete(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Property id is required")
		return
	}

	if err := ph.propertyService.Delete(c.Request.Context(), id); err != nil {
		log.Error().Err(err).Int64("property_id", id).Msg("failed to delete property")
		respondError(c, http.StatusInternalServerError, "Failed to delete property")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "Property deleted"})
}
