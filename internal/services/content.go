package services

import (
  "context"
  "fmt"
  "strings"

  "golang.org/x/sync/errgroup"

  "github.com/yungbote/moodstream-backend/internal/logger"
  "github.com/yungbote/moodstream-backend/internal/types"
)

type ContentService interface {
  GeneratePersonalized(ctx context.Context, profile types.UserProfile) (*PersonalizedContent, error)
}

// PersonalizedContent is the assembled pipeline output. ProviderFailures
// names the upstreams that degraded to fallback content; the content list
// itself never signals which items are substitutes.
type PersonalizedContent struct {
  Content          []types.ContentItem
  Insights         types.PersonalizedContentInsights
  ProviderFailures []string
}

type contentService struct {
  log          *logger.Logger
  search       SearchClient
  conversation ChatClient
  reflection   ChatClient
  quip         ChatClient
  image        ImageClient
  rnd          Rand
}

func NewContentService(log *logger.Logger, search SearchClient, conversation ChatClient, reflection ChatClient, quip ChatClient, image ImageClient, rnd Rand) ContentService {
  serviceLog := log.With("service", "ContentService")
  if rnd == nil {
    rnd = NewRand()
  }
  return &contentService{
    log:          serviceLog,
    search:       search,
    conversation: conversation,
    reflection:   reflection,
    quip:         quip,
    image:        image,
    rnd:          rnd,
  }
}

type providerResult[T any] struct {
  val T
  err error
}

// GeneratePersonalized fans out to every provider, then merges whatever came
// back in fixed category order. Provider calls are independent: each one gets
// exactly one attempt, a failure only empties its own slot, and no failure
// cancels a sibling call. Only the per-video explanations depend on another
// provider's output, so they run after the fan-out completes.
func (cs *contentService) GeneratePersonalized(ctx context.Context, profile types.UserProfile) (*PersonalizedContent, error) {
  var (
    videos     providerResult[[]SearchItem]
    social     providerResult[[]SearchItem]
    articles   providerResult[[]SearchItem]
    images     providerResult[[]string]
    reflection providerResult[string]
    quip       providerResult[string]
  )

  interests := careerInterests(profile.CareerGoals)
  imagePrompt := imagePromptForMood(profile.Mood.Value)

  g := new(errgroup.Group)
  g.Go(func() error {
    videos.val, videos.err = cs.search.Search(ctx, videoQuery(profile))
    return nil
  })
  g.Go(func() error {
    social.val, social.err = cs.search.Search(ctx, socialQuery(profile))
    return nil
  })
  g.Go(func() error {
    articles.val, articles.err = cs.search.Search(ctx, articleQuery(profile))
    return nil
  })
  g.Go(func() error {
    images.val, images.err = cs.image.Generate(ctx, imagePrompt)
    return nil
  })
  g.Go(func() error {
    reflection.val, reflection.err = cs.reflection.Complete(ctx, []ChatMessage{{
      Role: "user",
      Content: fmt.Sprintf(
        `Write a warm, empathetic weekly reflection for someone who is %d years old, feeling %s, interested in %s, and shared this about their mood: "%s". Keep it supportive and encouraging, 2-3 sentences.`,
        profile.Age, profile.Mood.Label, interests, moodTextOrDefault(profile.MoodText),
      ),
    }}, nil)
    return nil
  })
  g.Go(func() error {
    quip.val, quip.err = cs.quip.Complete(ctx, []ChatMessage{{
      Role: "user",
      Content: fmt.Sprintf(
        "Give me 2-3 witty, supportive one-liners about someone who is feeling %s and interested in %s. Make them encouraging but with a bit of edge. Format as an array.",
        profile.Mood.Label, interests,
      ),
    }}, nil)
    return nil
  })
  _ = g.Wait()

  failures := []string{}
  content := []types.ContentItem{}

  if videos.err != nil {
    cs.log.Warn("video search failed", "error", videos.err)
    failures = append(failures, "video-search")
  } else {
    content = append(content, cs.normalizeVideos(videos.val, profile)...)
  }

  // Explanations depend on the video list, so they stay sequential here.
  cs.explainVideos(ctx, content, profile, interests, &failures)

  if social.err != nil {
    cs.log.Warn("social search failed", "error", social.err)
    failures = append(failures, "social-search")
  } else {
    content = append(content, cs.normalizeSocial(social.val, profile)...)
  }

  if articles.err != nil {
    cs.log.Warn("article search failed", "error", articles.err)
    failures = append(failures, "article-search")
  } else {
    content = append(content, cs.normalizeArticles(articles.val, profile, interests)...)
  }

  if images.err != nil {
    cs.log.Warn("image generation failed", "error", images.err)
    failures = append(failures, "image-generation")
  } else if len(images.val) > 0 {
    content = append(content, types.ContentItem{
      ID:            "ai-image-1",
      Type:          "ai-generated",
      Title:         profile.Mood.Label + " Inspiration",
      Description:   "AI-generated artwork to complement your " + profile.Mood.Label + " mood",
      Thumbnail:     images.val[0],
      Source:        "Stable Diffusion",
      URL:           images.val[0],
      AIExplanation: "Custom created to match your " + profile.Mood.Label + " mood and provide visual inspiration.",
      Prompt:        imagePrompt,
      Category:      "ai-generated",
    })
  }

  // Guarantee a populated response even under total upstream failure.
  if len(content) < 4 {
    content = append(content, cs.fallbackItems(profile)...)
  }

  insights := types.PersonalizedContentInsights{}
  if reflection.err != nil {
    cs.log.Warn("reflection generation failed", "error", reflection.err)
    failures = append(failures, "reflection")
    insights.WeeklyReflection = fmt.Sprintf(
      "This week, you've shown great focus on your interests in %s. Your %s energy is perfect for growth and learning.",
      interests, profile.Mood.Label,
    )
  } else {
    insights.WeeklyReflection = reflection.val
  }

  if quip.err != nil {
    cs.log.Warn("quip generation failed", "error", quip.err)
    failures = append(failures, "quip")
  } else {
    insights.GrokComments = quip.val
  }

  return &PersonalizedContent{
    Content:          content,
    Insights:         insights,
    ProviderFailures: failures,
  }, nil
}

var bracketStripper = strings.NewReplacer("[", "", "]", "")

func (cs *contentService) normalizeVideos(items []SearchItem, profile types.UserProfile) []types.ContentItem {
  out := make([]types.ContentItem, 0, 2)
  for i, item := range capItems(items, 2) {
    source := "YouTube"
    if strings.Contains(item.Link, "ted.com") {
      source = "TED"
    }
    out = append(out, types.ContentItem{
      ID:          fmt.Sprintf("video-%d", i+1),
      Type:        "videos",
      Title:       bracketStripper.Replace(item.Title),
      Description: item.Snippet,
      Thumbnail:   "https://via.placeholder.com/300x200/FF4500/white?text=Video",
      Source:      source,
      URL:         item.Link,
      Duration:    "12-18 min",
      Category:    "videos",
    })
  }
  return out
}

func (cs *contentService) explainVideos(ctx context.Context, content []types.ContentItem, profile types.UserProfile, interests string, failures *[]string) {
  failed := false
  for i := range content {
    if content[i].Type != "videos" {
      continue
    }
    explanation, err := cs.conversation.Complete(ctx, []ChatMessage{{
      Role: "user",
      Content: fmt.Sprintf(
        `Explain in 1-2 sentences why this content "%s" would be relevant for someone who is feeling %s, is %d years old, and interested in %s. Be warm and supportive.`,
        content[i].Title, profile.Mood.Label, profile.Age, interests,
      ),
    }}, nil)
    if err != nil {
      cs.log.Warn("video explanation failed", "error", err)
      content[i].AIExplanation = "This content matches your interests and current mood."
      failed = true
      continue
    }
    content[i].AIExplanation = explanation
  }
  if failed {
    *failures = append(*failures, "explanations")
  }
}

func (cs *contentService) normalizeSocial(items []SearchItem, profile types.UserProfile) []types.ContentItem {
  category := "career"
  if cats := careerCategories(profile.CareerGoals); len(cats) > 0 && cats[0] != "" {
    category = cats[0]
  }
  out := make([]types.ContentItem, 0, 2)
  for i, item := range capItems(items, 2) {
    out = append(out, types.ContentItem{
      ID:            fmt.Sprintf("reddit-%d", i+1),
      Type:          "social",
      Title:         bracketStripper.Replace(item.Title),
      Description:   item.Snippet,
      Thumbnail:     "https://via.placeholder.com/300x200/FF4500/white?text=Reddit",
      Source:        "Reddit",
      URL:           item.Link,
      AIExplanation: fmt.Sprintf("Great discussion that relates to your %s interests and %s mindset.", category, profile.Mood.Label),
      Engagement:    fmt.Sprintf("%d comments", cs.rnd.Intn(500)+50),
      Category:      "social",
    })
  }
  return out
}

func (cs *contentService) normalizeArticles(items []SearchItem, profile types.UserProfile, interests string) []types.ContentItem {
  firstInterest := strings.TrimSpace(strings.SplitN(interests, ",", 2)[0])
  out := make([]types.ContentItem, 0, 2)
  for i, item := range capItems(items, 2) {
    source := "Dev.to"
    if strings.Contains(item.Link, "medium.com") {
      source = "Medium"
    } else if strings.Contains(item.Link, "hashnode.com") {
      source = "Hashnode"
    }
    out = append(out, types.ContentItem{
      ID:            fmt.Sprintf("article-%d", i+1),
      Type:          "articles",
      Title:         bracketStripper.Replace(item.Title),
      Description:   item.Snippet,
      Thumbnail:     "https://via.placeholder.com/300x200/13343B/white?text=Article",
      Source:        source,
      URL:           item.Link,
      AIExplanation: fmt.Sprintf("This article provides valuable insights for your %s journey while matching your %s energy.", firstInterest, profile.Mood.Label),
      ReadTime:      fmt.Sprintf("%d min read", cs.rnd.Intn(10)+5),
      Category:      "articles",
    })
  }
  return out
}

func (cs *contentService) fallbackItems(profile types.UserProfile) []types.ContentItem {
  label := profile.Mood.Label
  return []types.ContentItem{
    {
      ID:            "fallback-1",
      Type:          "audio",
      Title:         label + " Focus Playlist",
      Description:   "Curated music to match your " + label + " energy",
      Thumbnail:     "https://via.placeholder.com/300x200/13343B/white?text=Playlist",
      Source:        "Spotify",
      URL:           "#",
      AIExplanation: "Perfect soundtrack for your current " + label + " mood and work sessions.",
      Duration:      "2 hrs",
      Category:      "audio",
    },
    {
      ID:            "fallback-2",
      Type:          "images",
      Title:         "Workspace Inspiration",
      Description:   "Clean, organized setups for productivity",
      Thumbnail:     "https://via.placeholder.com/300x200/87CEEB/white?text=Workspace",
      Source:        "Pinterest",
      URL:           "#",
      AIExplanation: "Visual inspiration to create an environment that matches your goals.",
      Saves:         "1.2k",
      Category:      "images",
    },
  }
}

func capItems(items []SearchItem, n int) []SearchItem {
  if len(items) > n {
    return items[:n]
  }
  return items
}

func moodTextOrDefault(moodText string) string {
  if strings.TrimSpace(moodText) == "" {
    return "No additional context"
  }
  return moodText
}
