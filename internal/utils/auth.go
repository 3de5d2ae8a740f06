package utils

import (
  "strings"
  "github.com/golang-jwt/jwt/v5"
)

// SubjectFromToken pulls the sub claim out of an optional caller-supplied
// bearer token. The token is never required and never minted by this service;
// when it is absent or unparseable the caller stays anonymous. Signature
// verification only happens when a secret is configured.
func SubjectFromToken(tokenString, secret string) string {
  tokenString = strings.TrimSpace(tokenString)
  if tokenString == "" {
    return ""
  }

  claims := jwt.MapClaims{}
  if secret != "" {
    token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
      return []byte(secret), nil
    })
    if err != nil || !token.Valid {
      return ""
    }
  } else {
    parser := jwt.NewParser()
    if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
      return ""
    }
  }

  sub, err := claims.GetSubject()
  if err != nil {
    return ""
  }
  return strings.TrimSpace(sub)
}

// ExtractBearer returns the token portion of an Authorization header, or "".
func ExtractBearer(authHeader string) string {
  if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
    return authHeader[7:]
  }
  return ""
}
