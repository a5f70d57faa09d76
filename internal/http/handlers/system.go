package handlers

import (
	"net/http"

	intconfig "tripplanner/internal/config"
	intdb "tripplanner/internal/db"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "trip planner backend running"})
}

// DBCheck pings the pool and reports which tables exist.
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(c.Request.Context()); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database not reachable: "+err.Error())
		return
	}

	tables := gin.H{}
	for _, t := range intdb.Tables {
		tables[t] = intdb.HasTable(c.Request.Context(), intconfig.DB, t)
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "tables": tables})
}
