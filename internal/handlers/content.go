package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/yungbote/moodstream-backend/internal/logger"
  "github.com/yungbote/moodstream-backend/internal/services"
  "github.com/yungbote/moodstream-backend/internal/types"
)

type ContentHandler struct {
  log            *logger.Logger
  contentService services.ContentService
}

func NewContentHandler(log *logger.Logger, contentService services.ContentService) *ContentHandler {
  return &ContentHandler{
    log:            log.With("handler", "ContentHandler"),
    contentService: contentService,
  }
}

// POST /api/content/personalized
func (h *ContentHandler) GeneratePersonalized(c *gin.Context) {
  var profile types.UserProfile
  if err := c.ShouldBindJSON(&profile); err != nil {
    h.log.Error("Failed to parse user profile", "error", err)
    RespondError(c, http.StatusInternalServerError, "Failed to generate personalized content")
    return
  }

  result, err := h.contentService.GeneratePersonalized(c.Request.Context(), profile)
  if err != nil {
    h.log.Error("Failed to generate personalized content", "error", err)
    RespondError(c, http.StatusInternalServerError, "Failed to generate personalized content")
    return
  }

  resp := gin.H{
    "success":  true,
    "content":  result.Content,
    "insights": result.Insights,
    "degraded": len(result.ProviderFailures) > 0,
  }
  if len(result.ProviderFailures) > 0 {
    resp["providerFailures"] = result.ProviderFailures
  }
  c.JSON(http.StatusOK, resp)
}
