package services

import (
  "context"
  "fmt"
  "net/url"

  "github.com/yungbote/moodstream-backend/internal/config"
  "github.com/yungbote/moodstream-backend/internal/logger"
)

type SearchClient interface {
  Search(ctx context.Context, query string) ([]SearchItem, error)
}

type SearchItem struct {
  Title   string `json:"title"`
  Snippet string `json:"snippet"`
  Link    string `json:"link"`
}

type searchResponse struct {
  Items []SearchItem `json:"items"`
}

type searchClient struct {
  log       *logger.Logger
  transport *providerTransport
}

func NewSearchClient(cfg config.ProviderConfig, log *logger.Logger) (SearchClient, error) {
  if cfg.BaseURL == "" {
    return nil, fmt.Errorf("search provider base_url is not configured")
  }
  return &searchClient{
    log:       log.With("service", "SearchClient"),
    transport: newProviderTransport("search", cfg),
  }, nil
}

func (c *searchClient) Search(ctx context.Context, query string) ([]SearchItem, error) {
  endpoint := c.transport.cfg.BaseURL + c.transport.cfg.Path + "?q=" + url.QueryEscape(query)

  var resp searchResponse
  if err := c.transport.doJSON(ctx, "GET", endpoint, nil, &resp); err != nil {
    return nil, err
  }
  return resp.Items, nil
}
