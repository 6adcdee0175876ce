package routes

import (
	"net/http"

	response "quotelock/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

const PathPing = "/ping"

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, response.PingResponse{Success: true, Message: "pong"})
	})
}
