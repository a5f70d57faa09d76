package handlers

import (
	"net/http"

	"tripplanner/internal/http/middleware"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/trip/add
func CreateTrip(c *gin.Context) {
	var req TripDTO
	if !BindJSONOrError(c, &req) {
		return
	}
	if !req.User.Valid() {
		req.User.ID = middleware.CurrentUserID(c)
	}

	trip, err := toTripModel(req, true)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := services.NewTripService(middleware.GetRequestID(c)).CreateTrip(c.Request.Context(), trip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTripDTO(created))
}

// PUT /api/trip/:tripId
func UpdateTrip(c *gin.Context) {
	id, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	var req TripDTO
	if !BindJSONOrError(c, &req) {
		return
	}
	trip, err := toTripModel(req, false)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	updated, err := services.NewTripService(middleware.GetRequestID(c)).UpdateTrip(c.Request.Context(), trip, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripDTO(updated))
}

// POST /api/trip/:tripId
func DeleteTrip(c *gin.Context) {
	id, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	if err := services.NewTripService(middleware.GetRequestID(c)).DeleteTrip(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ApiResponse{Message: "trip Deleted successfully", Success: true})
}

// GET /api/trip/all
func GetAllTrips(c *gin.Context) {
	trips, err := services.NewTripService(middleware.GetRequestID(c)).GetAllTrips(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(trips, toTripDTO))
}

// GET /api/trip/:tripId
func GetTrip(c *gin.Context) {
	id, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	trip, err := services.NewTripService(middleware.GetRequestID(c)).GetTrip(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripDTO(trip))
}

// GET /api/trip/:tripId/itinerary
func GetTripItineraryPDF(c *gin.Context) {
	id, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	pdfBytes, filename, err := services.NewTripDocsService(middleware.GetRequestID(c)).GenerateItineraryPDF(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
