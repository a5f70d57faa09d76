package handlers

import (
	"net/http"

	"tripplanner/internal/http/middleware"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/itinerary/add
func CreateItinerary(c *gin.Context) {
	var req ItineraryDTO
	if !BindJSONOrError(c, &req) {
		return
	}
	it, err := toItineraryModel(req, true)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created, err := services.NewItineraryService(middleware.GetRequestID(c)).Create(c.Request.Context(), it)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toItineraryDTO(created))
}

// PUT /api/itinerary/:itineraryId
func UpdateItinerary(c *gin.Context) {
	id, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}
	var req ItineraryDTO
	if !BindJSONOrError(c, &req) {
		return
	}
	it, err := toItineraryModel(req, false)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	updated, err := services.NewItineraryService(middleware.GetRequestID(c)).Update(c.Request.Context(), it, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItineraryDTO(updated))
}

// POST /api/itinerary/:itineraryId
func DeleteItinerary(c *gin.Context) {
	id, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}
	if err := services.NewItineraryService(middleware.GetRequestID(c)).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ApiResponse{Message: "itinerary Deleted successfully", Success: true})
}

// GET /api/itinerary/all
func GetAllItineraries(c *gin.Context) {
	list, err := services.NewItineraryService(middleware.GetRequestID(c)).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toItineraryDTO))
}

// GET /api/itinerary/:itineraryId
func GetItinerary(c *gin.Context) {
	id, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}
	it, err := services.NewItineraryService(middleware.GetRequestID(c)).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItineraryDTO(it))
}

// GET /api/itinerary/trip/:tripId
func GetItinerariesByTrip(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	list, err := services.NewItineraryService(middleware.GetRequestID(c)).ListByTrip(c.Request.Context(), tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toItineraryDTO))
}
