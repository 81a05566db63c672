package handlers

import (
	"strings"
	"time"

	"couplepath/services/api-gateway/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(h *Handler, verifier *middleware.TokenVerifier, limiter *middleware.RateLimiter, allowedOrigins string) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	if allowedOrigins == "" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = strings.Split(allowedOrigins, ",")
		config.AllowCredentials = true
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(verifier))
	{
		programs := api.Group("/programs/:id")
		{
			programs.POST("/enroll", limiter.Limit("enroll", 10, time.Minute), h.Enroll)
			programs.POST("/abandon", h.Abandon)
			programs.GET("/units", h.ListUnits)
			programs.POST("/units/:seq/complete", limiter.Limit("complete", 30, time.Minute), h.CompleteUnit)
			programs.GET("/progress", h.GetProgress)
			programs.GET("/today", h.Today)
			programs.GET("/groups/:groupId/completion", h.GroupCompletion)
		}

		api.GET("/streak", h.GetStreak)

		daily := api.Group("/daily-question")
		{
			daily.GET("", h.DailyQuestion)
			daily.POST("/answer", limiter.Limit("answer", 10, time.Minute), h.Answer)
			daily.POST("/nudge", limiter.Limit("nudge", 3, 10*time.Minute), h.Nudge)
		}

		couple := api.Group("/couple")
		{
			couple.GET("", h.GetCouple)
			couple.POST("/link", limiter.Limit("link", 5, time.Minute), h.LinkCouple)
		}
	}

	return r
}
