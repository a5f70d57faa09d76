package api

import (
	stdhttp "net/http"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/domain"
	h "tripplanner/internal/http/handlers"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.ConfigureAuth(env.JWT)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORS.AllowedOrigins),
		middleware.Metrics(),
		middleware.AuthOptional(env.JWT.Secret),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "route not found",
			"success": false,
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		trip := api.Group("/trip")
		trip.POST("/add", h.CreateTrip)
		trip.GET("/all", h.GetAllTrips)
		trip.PUT("/:tripId", h.UpdateTrip)
		trip.POST("/:tripId", h.DeleteTrip)
		trip.GET("/:tripId", h.GetTrip)
		trip.GET("/:tripId/itinerary", h.GetTripItineraryPDF)

		budget := api.Group("/budget")
		budget.POST("/add", h.CreateBudget)
		budget.GET("/all", h.GetAllBudgets)
		budget.GET("/trip/:tripId", h.GetBudgetsByTrip)
		budget.PUT("/:budgetId", h.UpdateBudget)
		budget.POST("/:budgetId", h.DeleteBudget)
		budget.GET("/:budgetId", h.GetBudget)

		expense := api.Group("/expense")
		expense.POST("/add", h.CreateExpense)
		expense.GET("/all", h.GetAllExpenses)
		expense.GET("/trip/:tripId", h.GetExpensesByTrip)
		expense.PUT("/:expenseId", h.UpdateExpense)
		expense.POST("/:expenseId", h.DeleteExpense)
		expense.GET("/:expenseId", h.GetExpense)

		itinerary := api.Group("/itinerary")
		itinerary.POST("/add", h.CreateItinerary)
		itinerary.GET("/all", h.GetAllItineraries)
		itinerary.GET("/trip/:tripId", h.GetItinerariesByTrip)
		itinerary.PUT("/:itineraryId", h.UpdateItinerary)
		itinerary.POST("/:itineraryId", h.DeleteItinerary)
		itinerary.GET("/:itineraryId", h.GetItinerary)

		traveler := api.Group("/traveler")
		traveler.POST("/add", h.CreateTraveler)
		traveler.GET("/all", h.GetAllTravelers)
		traveler.GET("/trip/:tripId", h.GetTravelersByTrip)
		traveler.PUT("/:travelerId", h.UpdateTraveler)
		traveler.POST("/:travelerId", h.DeleteTraveler)
		traveler.GET("/:travelerId", h.GetTraveler)

		// user administration is admin only; self sign-up goes through /auth/register
		user := api.Group("/user", middleware.RequireRoles(domain.RoleAdmin))
		user.POST("/add", h.CreateUser)
		user.GET("/all", h.GetAllUsers)
		user.PUT("/:userId", h.UpdateUser)
		user.POST("/:userId", h.DeleteUser)
		user.GET("/:userId", h.GetUser)
	}

	return r
}
