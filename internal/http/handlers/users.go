package handlers

import (
	"net/http"

	"tripplanner/internal/http/middleware"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/user/add
func CreateUser(c *gin.Context) {
	var req UserDTO
	if !BindJSONOrError(c, &req) {
		return
	}
	u, err := services.NewUserService(middleware.GetRequestID(c)).CreateUser(c.Request.Context(), toUserModel(req), req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserDTO(u))
}

// PUT /api/user/:userId
func UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req UserDTO
	if !BindJSONOrError(c, &req) {
		return
	}
	u, err := services.NewUserService(middleware.GetRequestID(c)).Update(c.Request.Context(), toUserModel(req), id, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserDTO(u))
}

// POST /api/user/:userId
func DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := services.NewUserService(middleware.GetRequestID(c)).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ApiResponse{Message: "user Deleted successfully", Success: true})
}

// GET /api/user/all
func GetAllUsers(c *gin.Context) {
	list, err := services.NewUserService(middleware.GetRequestID(c)).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toUserDTO))
}

// GET /api/user/:userId
func GetUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	u, err := services.NewUserService(middleware.GetRequestID(c)).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserDTO(u))
}
