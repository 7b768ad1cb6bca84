// router.go
package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router wires the view handlers. The four /api views are independent:
// a failure in one leaves the others serving.
func (a *API) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"rows":   a.df.Nrow(),
		})
	})

	api := router.Group("/api")
	{
		api.GET("/overview", a.Overview)
		api.GET("/segments", a.Segments)
		api.GET("/risk", a.RiskTable)
		api.GET("/priority", a.Priority)
		api.GET("/recommendations", a.Recommendations)
	}

	router.GET("/logs", a.Logs)

	return router
}
