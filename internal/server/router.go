package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

  "github.com/yungbote/moodstream-backend/internal/handlers"
  "github.com/yungbote/moodstream-backend/internal/middleware"
)

type RouterConfig struct {
  AllowOrigins       []string
  IdentityMiddleware *middleware.IdentityMiddleware
  ContentHandler     *handlers.ContentHandler
  InsightsHandler    *handlers.InsightsHandler
  NoteHandler        *handlers.NoteHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  router.Use(otelgin.Middleware("moodstream-backend"))

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins:     cfg.AllowOrigins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  router.GET("/healthcheck", handlers.HealthCheck)

  // Every API route is public; identity only attributes notes to a user.
  api := router.Group("/api")
  api.Use(cfg.IdentityMiddleware.Attach())

  // Content pipeline
  api.POST("/content/personalized", cfg.ContentHandler.GeneratePersonalized)

  // Insights
  api.POST("/insights/mood-patterns", cfg.InsightsHandler.MoodPatterns)
  api.POST("/insights/personalized-reflection", cfg.InsightsHandler.PersonalizedReflection)

  // Notes
  api.GET("/notes", cfg.NoteHandler.List)
  api.POST("/notes", cfg.NoteHandler.Create)
  api.DELETE("/notes", cfg.NoteHandler.DeleteAll)
  api.GET("/notes/:id", cfg.NoteHandler.Get)
  api.PUT("/notes/:id", cfg.NoteHandler.Update)
  api.DELETE("/notes/:id", cfg.NoteHandler.Delete)

  return router
}
