package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/yungbote/moodstream-backend/internal/logger"
  "github.com/yungbote/moodstream-backend/internal/services"
  "github.com/yungbote/moodstream-backend/internal/types"
)

type InsightsHandler struct {
  log             *logger.Logger
  insightsService services.InsightsService
}

func NewInsightsHandler(log *logger.Logger, insightsService services.InsightsService) *InsightsHandler {
  return &InsightsHandler{
    log:             log.With("handler", "InsightsHandler"),
    insightsService: insightsService,
  }
}

type moodPatternsRequest struct {
  UserProfile types.UserProfile        `json:"userProfile"`
  MoodHistory []types.MoodHistoryEntry `json:"moodHistory"`
}

// POST /api/insights/mood-patterns
func (h *InsightsHandler) MoodPatterns(c *gin.Context) {
  var req moodPatternsRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    h.log.Error("Failed to parse mood patterns request", "error", err)
    RespondError(c, http.StatusInternalServerError, "Failed to generate mood insights")
    return
  }

  insights, err := h.insightsService.MoodPatterns(c.Request.Context(), req.UserProfile, req.MoodHistory)
  if err != nil {
    h.log.Error("Failed to generate mood insights", "error", err)
    RespondError(c, http.StatusInternalServerError, "Failed to generate mood insights")
    return
  }

  c.JSON(http.StatusOK, gin.H{
    "success":  true,
    "insights": insights,
  })
}

// POST /api/insights/personalized-reflection
//
// This endpoint always answers 200 with a populated insights bundle; even an
// unreadable body falls back to the static reflection.
func (h *InsightsHandler) PersonalizedReflection(c *gin.Context) {
  var profile types.UserProfile
  if err := c.ShouldBindJSON(&profile); err != nil {
    h.log.Warn("Failed to parse reflection request, using static bundle", "error", err)
    c.JSON(http.StatusOK, gin.H{"insights": services.StaticReflectionInsights()})
    return
  }

  insights, err := h.insightsService.PersonalizedReflection(c.Request.Context(), profile)
  if err != nil {
    h.log.Warn("Reflection generation errored, using static bundle", "error", err)
    c.JSON(http.StatusOK, gin.H{"insights": services.StaticReflectionInsights()})
    return
  }

  c.JSON(http.StatusOK, gin.H{"insights": insights})
}
