package handlers

import (
	"net/http"

	"tripplanner/internal/http/middleware"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	u, err := services.NewUserService(middleware.GetRequestID(c)).Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token, err := middleware.GenerateToken(u.ID, u.Role, jwtEnv.Secret, jwtEnv.TTL)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: token, User: toUserDTO(u)})
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req UserDTO
	if !BindJSONOrError(c, &req) {
		return
	}

	u, err := services.NewUserService(middleware.GetRequestID(c)).Register(c.Request.Context(), toUserModel(req), req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserDTO(u))
}
