package routes

import (
	"errors"
	"log"
	"net/http"

	"condotrack/internal/model"
	"condotrack/internal/service/route"

	"github.com/gin-gonic/gin"
)

// RouteHandler serves the route lifecycle endpoints
type RouteHandler struct {
	service *route.RouteService
}

// NewRouteHandler creates a handler over the given service
func NewRouteHandler(service *route.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// SetupRouteHandlers registers the route management endpoints
func SetupRouteHandlers(router *gin.RouterGroup, handler *RouteHandler) {
	router.POST("/route", handler.DeclareRoute)
	router.GET("/routes/:condId", handler.ListRoutes)
	router.POST("/route/end", handler.EndRoute)
}

type geoPointRequest struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Description string  `json:"description" binding:"required"`
}

type declareRouteRequest struct {
	CondID      string           `json:"condId" binding:"required"`
	TrackerID   string           `json:"trackerId" binding:"required"`
	Origin      *geoPointRequest `json:"origin" binding:"required"`
	Destination *geoPointRequest `json:"destination" binding:"required"`
	Status      string           `json:"status"`
}

type endRouteRequest struct {
	RouteID string `json:"routeId" binding:"required"`
}

// DeclareRoute handles POST /api/route
func (h *RouteHandler) DeclareRoute(c *gin.Context) {
	var req declareRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "condId, trackerId, origin and destination are required"})
		return
	}

	payload := route.DeclareRoutePayload{
		CondID:    req.CondID,
		TrackerID: req.TrackerID,
		Status:    model.RouteStatus(req.Status),
	}
	if req.Origin != nil {
		payload.Origin = &model.GeoPoint{Lat: req.Origin.Lat, Lng: req.Origin.Lng, Description: req.Origin.Description}
	}
	if req.Destination != nil {
		payload.Destination = &model.GeoPoint{Lat: req.Destination.Lat, Lng: req.Destination.Lng, Description: req.Destination.Description}
	}

	id, err := h.service.DeclareRoute(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Route saved successfully", "id": id})
}

// ListRoutes handles GET /api/routes/:condId
func (h *RouteHandler) ListRoutes(c *gin.Context) {
	records, err := h.service.ListRoutesForGroup(c.Request.Context(), c.Param("condId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// EndRoute handles POST /api/route/end
func (h *RouteHandler) EndRoute(c *gin.Context) {
	var req endRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "routeId is required"})
		return
	}

	if err := h.service.EndRoute(c.Request.Context(), req.RouteID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Route ended successfully"})
}

// respondError maps the service error taxonomy to HTTP statuses
func respondError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}

	var notFoundErr *model.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	log.Printf("Route operation failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
