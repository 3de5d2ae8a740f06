package requestdata

import (
  "context"
)

var requestDataKey = struct{}{}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
  return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
  val := ctx.Value(requestDataKey)
  if rd, ok := val.(*RequestData); ok {
    return rd
  }
  return nil
}

// RequestData carries the caller's optional identity through the request.
// TokenString is kept so outbound integration calls can forward it.
type RequestData struct {
  RequestID   string
  TokenString string
  UserID      string
}

// RequestID returns the correlation id assigned to the request, or "" when
// called outside a request context.
func RequestID(ctx context.Context) string {
  rd := GetRequestData(ctx)
  if rd == nil {
    return ""
  }
  return rd.RequestID
}

// UserID returns the attributed user for the request, defaulting to
// "anonymous" when no identity was supplied.
func UserID(ctx context.Context) string {
  rd := GetRequestData(ctx)
  if rd == nil || rd.UserID == "" {
    return "anonymous"
  }
  return rd.UserID
}
