package handlers

import (
	"net/http"

	"tripplanner/internal/http/middleware"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/traveler/add
func CreateTraveler(c *gin.Context) {
	var req TravelerDTO
	if !BindJSONOrError(c, &req) {
		return
	}
	tr, err := services.NewTravelerService(middleware.GetRequestID(c)).Create(c.Request.Context(), toTravelerModel(req))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTravelerDTO(tr))
}

// PUT /api/traveler/:travelerId
func UpdateTraveler(c *gin.Context) {
	id, ok := pathID(c, "travelerId")
	if !ok {
		return
	}
	var req TravelerDTO
	if !BindJSONOrError(c, &req) {
		return
	}
	tr, err := services.NewTravelerService(middleware.GetRequestID(c)).Update(c.Request.Context(), toTravelerModel(req), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTravelerDTO(tr))
}

// POST /api/traveler/:travelerId
func DeleteTraveler(c *gin.Context) {
	id, ok := pathID(c, "travelerId")
	if !ok {
		return
	}
	if err := services.NewTravelerService(middleware.GetRequestID(c)).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ApiResponse{Message: "traveler Deleted successfully", Success: true})
}

// GET /api/traveler/all
func GetAllTravelers(c *gin.Context) {
	list, err := services.NewTravelerService(middleware.GetRequestID(c)).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toTravelerDTO))
}

// GET /api/traveler/:travelerId
func GetTraveler(c *gin.Context) {
	id, ok := pathID(c, "travelerId")
	if !ok {
		return
	}
	tr, err := services.NewTravelerService(middleware.GetRequestID(c)).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTravelerDTO(tr))
}

// GET /api/traveler/trip/:tripId
func GetTravelersByTrip(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	list, err := services.NewTravelerService(middleware.GetRequestID(c)).ListByTrip(c.Request.Context(), tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toTravelerDTO))
}
