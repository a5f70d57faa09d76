package handlers

import (
	"net/http"

	"tripplanner/internal/http/middleware"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/budget/add
func CreateBudget(c *gin.Context) {
	var req BudgetDTO
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := services.NewBudgetService(middleware.GetRequestID(c)).Create(c.Request.Context(), toBudgetModel(req))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBudgetDTO(b))
}

// PUT /api/budget/:budgetId
func UpdateBudget(c *gin.Context) {
	id, ok := pathID(c, "budgetId")
	if !ok {
		return
	}
	var req BudgetDTO
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := services.NewBudgetService(middleware.GetRequestID(c)).Update(c.Request.Context(), toBudgetModel(req), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBudgetDTO(b))
}

// POST /api/budget/:budgetId
func DeleteBudget(c *gin.Context) {
	id, ok := pathID(c, "budgetId")
	if !ok {
		return
	}
	if err := services.NewBudgetService(middleware.GetRequestID(c)).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ApiResponse{Message: "budget Deleted successfully", Success: true})
}

// GET /api/budget/all
func GetAllBudgets(c *gin.Context) {
	list, err := services.NewBudgetService(middleware.GetRequestID(c)).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toBudgetDTO))
}

// GET /api/budget/:budgetId
func GetBudget(c *gin.Context) {
	id, ok := pathID(c, "budgetId")
	if !ok {
		return
	}
	b, err := services.NewBudgetService(middleware.GetRequestID(c)).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBudgetDTO(b))
}

// GET /api/budget/trip/:tripId
func GetBudgetsByTrip(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	list, err := services.NewBudgetService(middleware.GetRequestID(c)).ListByTrip(c.Request.Context(), tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toBudgetDTO))
}
