package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pipe-sizing-service/internal/adapters/primary/http/handlers"
	"pipe-sizing-service/internal/adapters/primary/http/middleware"
	"pipe-sizing-service/internal/config"
)

// APIPrefix is the JSON API route group
const APIPrefix = "/api/v1/pipe-sizing"

func BuildRouter(h *handlers.Handler, corsCfg config.CORSConfig) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	h.RegisterPage(router)

	api := router.Group(APIPrefix)
	api.Use(cors.New(corsConfig(corsCfg)))
	h.RegisterRoutes(api)

	return router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}

	return c
}
