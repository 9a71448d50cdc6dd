package handlers

import (
	"net/http"

	"shootflow/services/geocode"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddressHandler exposes address autocomplete and property enrichment.
type AddressHandler struct {
	GeocodeSvc  geocode.GeocodeService
	PropertySvc geocode.PropertyService
	Logger      *zap.Logger
}

// NewAddressHandler creates a new AddressHandler instance.
func NewAddressHandler(geocodeSvc geocode.GeocodeService, propertySvc geocode.PropertyService, logger *zap.Logger) *AddressHandler {
	return &AddressHandler{GeocodeSvc: geocodeSvc, PropertySvc: propertySvc, Logger: logger}
}

// SearchAddressHandler handles GET /api/address/search?q=.
func (h *AddressHandler) SearchAddressHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.JSONError(c, http.StatusBadRequest, "q is required", "")
		return
	}

	suggestions, err := h.GeocodeSvc.Search(c.Request.Context(), query)
	if err != nil {
		h.Logger.Warn("SearchAddress: lookup failed", zap.String("query", query), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "address search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// AddressDetailsHandler handles GET /api/address/details?place_id=.
func (h *AddressHandler) AddressDetailsHandler(c *gin.Context) {
	placeID := c.Query("place_id")
	if placeID == "" {
		utils.JSONError(c, http.StatusBadRequest, "place_id is required", "")
		return
	}

	addr, err := h.GeocodeSvc.Details(c.Request.Context(), placeID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "address details failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, addr)
}

// PropertyMetricsHandler handles GET /api/address/property?street=&zip=.
// Returns 204 when the listing service has no record for the address.
func (h *AddressHandler) PropertyMetricsHandler(c *gin.Context) {
	street := c.Query("street")
	zip := c.Query("zip")
	if street == "" || zip == "" {
		utils.JSONError(c, http.StatusBadRequest, "street and zip are required", "")
		return
	}

	metrics, err := h.PropertySvc.LookupMetrics(c.Request.Context(), street, zip)
	if err != nil {
		h.Logger.Warn("PropertyMetrics: lookup failed",
			zap.String("street", street), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "property lookup failed", err.Error())
		return
	}
	if metrics == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
