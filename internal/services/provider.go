package services

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"

  "github.com/yungbote/moodstream-backend/internal/config"
)

// ProviderHTTPError is returned for any upstream non-2xx. Callers treat it
// the same as a transport error: the provider's slot degrades to fallback
// content and the request as a whole keeps going.
type ProviderHTTPError struct {
  Provider   string
  StatusCode int
  Body       string
}

func (e *ProviderHTTPError) Error() string {
  return fmt.Sprintf("%s http %d: %s", e.Provider, e.StatusCode, e.Body)
}

// providerTransport is the shared single-attempt request helper for every
// integration client. One call, bounded by the per-provider timeout from
// config; a failed attempt is final within the request.
type providerTransport struct {
  name       string
  cfg        config.ProviderConfig
  httpClient *http.Client
}

func newProviderTransport(name string, cfg config.ProviderConfig) *providerTransport {
  return &providerTransport{
    name:       name,
    cfg:        cfg,
    httpClient: &http.Client{Timeout: cfg.Timeout.Duration},
  }
}

func (t *providerTransport) doJSON(ctx context.Context, method, url string, body any, out any) error {
  var buf bytes.Buffer
  if body != nil {
    if err := json.NewEncoder(&buf).Encode(body); err != nil {
      return err
    }
  }

  req, err := http.NewRequestWithContext(ctx, method, url, &buf)
  if err != nil {
    return err
  }
  if t.cfg.APIKey != "" {
    req.Header.Set("Authorization", "Bearer "+t.cfg.APIKey)
  }
  if body != nil {
    req.Header.Set("Content-Type", "application/json")
  }

  resp, err := t.httpClient.Do(req)
  if err != nil {
    return err
  }
  raw, readErr := io.ReadAll(resp.Body)
  _ = resp.Body.Close()
  if readErr != nil {
    return readErr
  }

  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return &ProviderHTTPError{Provider: t.name, StatusCode: resp.StatusCode, Body: string(raw)}
  }
  if out == nil {
    return nil
  }
  if uErr := json.Unmarshal(raw, out); uErr != nil {
    return fmt.Errorf("%s decode error: %w", t.name, uErr)
  }
  return nil
}
