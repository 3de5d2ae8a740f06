package services

import (
  "context"
  "fmt"
  "strings"

  "github.com/yungbote/moodstream-backend/internal/config"
  "github.com/yungbote/moodstream-backend/internal/logger"
)

// ChatClient is one text-generation backend. The same wire shape serves every
// role (conversation, reflection, quip, reasoning); the config section picks
// the endpoint and model.
type ChatClient interface {
  Complete(ctx context.Context, messages []ChatMessage, opts *ChatOptions) (string, error)
}

type ChatMessage struct {
  Role    string `json:"role"`
  Content string `json:"content"`
}

type ChatOptions struct {
  Reasoning bool
}

type chatRequest struct {
  Model     string        `json:"model,omitempty"`
  Messages  []ChatMessage `json:"messages"`
  Reasoning bool          `json:"reasoning,omitempty"`
}

type chatResponse struct {
  Choices []struct {
    Message struct {
      Content string `json:"content"`
    } `json:"message"`
  } `json:"choices"`
}

type chatClient struct {
  name      string
  log       *logger.Logger
  transport *providerTransport
}

func NewChatClient(name string, cfg config.ProviderConfig, log *logger.Logger) (ChatClient, error) {
  if cfg.BaseURL == "" {
    return nil, fmt.Errorf("%s provider base_url is not configured", name)
  }
  return &chatClient{
    name:      name,
    log:       log.With("service", "ChatClient", "provider", name),
    transport: newProviderTransport(name, cfg),
  }, nil
}

func (c *chatClient) Complete(ctx context.Context, messages []ChatMessage, opts *ChatOptions) (string, error) {
  req := chatRequest{
    Model:    c.transport.cfg.Model,
    Messages: messages,
  }
  if opts != nil {
    req.Reasoning = opts.Reasoning
  }

  var resp chatResponse
  if err := c.transport.doJSON(ctx, "POST", c.transport.cfg.BaseURL+c.transport.cfg.Path, req, &resp); err != nil {
    return "", err
  }

  // A 2xx with no usable choice is handled like an unavailable provider.
  if len(resp.Choices) == 0 {
    return "", fmt.Errorf("%s returned no choices", c.name)
  }
  content := strings.TrimSpace(resp.Choices[0].Message.Content)
  if content == "" {
    return "", fmt.Errorf("%s returned an empty completion", c.name)
  }
  return content, nil
}
