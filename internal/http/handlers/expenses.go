package handlers

import (
	"net/http"

	"tripplanner/internal/http/middleware"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/expense/add
func CreateExpense(c *gin.Context) {
	var req ExpenseDTO
	if !BindJSONOrError(c, &req) {
		return
	}
	e, err := toExpenseModel(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created, err := services.NewExpenseService(middleware.GetRequestID(c)).Create(c.Request.Context(), e)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toExpenseDTO(created))
}

// PUT /api/expense/:expenseId
func UpdateExpense(c *gin.Context) {
	id, ok := pathID(c, "expenseId")
	if !ok {
		return
	}
	var req ExpenseDTO
	if !BindJSONOrError(c, &req) {
		return
	}
	e, err := toExpenseModel(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	updated, err := services.NewExpenseService(middleware.GetRequestID(c)).Update(c.Request.Context(), e, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toExpenseDTO(updated))
}

// POST /api/expense/:expenseId
func DeleteExpense(c *gin.Context) {
	id, ok := pathID(c, "expenseId")
	if !ok {
		return
	}
	if err := services.NewExpenseService(middleware.GetRequestID(c)).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ApiResponse{Message: "expense Deleted successfully", Success: true})
}

// GET /api/expense/all
func GetAllExpenses(c *gin.Context) {
	list, err := services.NewExpenseService(middleware.GetRequestID(c)).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toExpenseDTO))
}

// GET /api/expense/:expenseId
func GetExpense(c *gin.Context) {
	id, ok := pathID(c, "expenseId")
	if !ok {
		return
	}
	e, err := services.NewExpenseService(middleware.GetRequestID(c)).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toExpenseDTO(e))
}

// GET /api/expense/trip/:tripId
func GetExpensesByTrip(c *gin.Context) {
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	list, err := services.NewExpenseService(middleware.GetRequestID(c)).ListByTrip(c.Request.Context(), tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toExpenseDTO))
}
