package middleware

import (
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/yungbote/moodstream-backend/internal/logger"
  "github.com/yungbote/moodstream-backend/internal/requestdata"
  "github.com/yungbote/moodstream-backend/internal/utils"
)

type IdentityMiddleware struct {
  log         *logger.Logger
  tokenSecret string
}

func NewIdentityMiddleware(log *logger.Logger, tokenSecret string) *IdentityMiddleware {
  middlewareLog := log.With("middleware", "IdentityMiddleware")
  return &IdentityMiddleware{log: middlewareLog, tokenSecret: tokenSecret}
}

// Attach resolves the optional caller identity from a bearer token and stores
// it in the request context, along with a correlation id echoed back in the
// X-Request-ID header. Every route stays reachable without a token; the
// fallback identity is "anonymous", matching the notes table default.
func (im *IdentityMiddleware) Attach() gin.HandlerFunc {
  return func(c *gin.Context) {
    requestID := c.GetHeader("X-Request-ID")
    if requestID == "" {
      requestID = uuid.NewString()
    }
    c.Header("X-Request-ID", requestID)

    tokenString := utils.ExtractBearer(c.GetHeader("Authorization"))

    rd := &requestdata.RequestData{RequestID: requestID, TokenString: tokenString}
    if tokenString != "" {
      rd.UserID = utils.SubjectFromToken(tokenString, im.tokenSecret)
    }
    if rd.UserID == "" {
      if q := c.Query("userId"); q != "" {
        rd.UserID = q
      }
    }

    ctx := requestdata.WithRequestData(c.Request.Context(), rd)
    c.Request = c.Request.WithContext(ctx)
    c.Next()
  }
}
