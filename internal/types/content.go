package types

// ContentItem is one merged recommendation. IDs are positional within a
// single response ("video-1", "article-2", ...) and never persisted.
// The counter-style fields (Duration, ReadTime, Engagement, Saves) are only
// set for the item types that carry them.
type ContentItem struct {
  ID            string `json:"id"`
  Type          string `json:"type"`
  Title         string `json:"title"`
  Description   string `json:"description"`
  Thumbnail     string `json:"thumbnail"`
  Source        string `json:"source"`
  URL           string `json:"url"`
  AIExplanation string `json:"aiExplanation"`
  Category      string `json:"category"`

  Duration   string `json:"duration,omitempty"`
  ReadTime   string `json:"readTime,omitempty"`
  Engagement string `json:"engagement,omitempty"`
  Saves      string `json:"saves,omitempty"`
  Prompt     string `json:"prompt,omitempty"`
}
