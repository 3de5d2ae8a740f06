package services

import (
  "context"
  "fmt"
  "net/url"

  "github.com/yungbote/moodstream-backend/internal/config"
  "github.com/yungbote/moodstream-backend/internal/logger"
)

type ImageClient interface {
  Generate(ctx context.Context, prompt string) ([]string, error)
}

type imageResponse struct {
  Data []string `json:"data"`
}

type imageClient struct {
  log       *logger.Logger
  transport *providerTransport
}

func NewImageClient(cfg config.ProviderConfig, log *logger.Logger) (ImageClient, error) {
  if cfg.BaseURL == "" {
    return nil, fmt.Errorf("image provider base_url is not configured")
  }
  return &imageClient{
    log:       log.With("service", "ImageClient"),
    transport: newProviderTransport("image", cfg),
  }, nil
}

// Generate returns the generated image URLs (or data URIs, depending on the
// upstream) for a prompt.
func (c *imageClient) Generate(ctx context.Context, prompt string) ([]string, error) {
  endpoint := c.transport.cfg.BaseURL + c.transport.cfg.Path + "?prompt=" + url.QueryEscape(prompt)

  var resp imageResponse
  if err := c.transport.doJSON(ctx, "GET", endpoint, nil, &resp); err != nil {
    return nil, err
  }
  return resp.Data, nil
}
