package services

import (
  "context"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"
)

func newTestInsightsService(t *testing.T, reasoningURL, quipURL, conversationURL string) InsightsService {
  t.Helper()
  log := testLogger(t)

  reasoning, err := NewChatClient("reasoning", providerCfg(reasoningURL, "/chat"), log)
  if err != nil {
    t.Fatalf("reasoning client: %v", err)
  }
  quip, err := NewChatClient("quip", providerCfg(quipURL, "/chat"), log)
  if err != nil {
    t.Fatalf("quip client: %v", err)
  }
  conversation, err := NewChatClient("conversation", providerCfg(conversationURL, "/chat"), log)
  if err != nil {
    t.Fatalf("conversation client: %v", err)
  }
  return NewInsightsService(log, reasoning, quip, conversation)
}

func chatServer(content string) *httptest.Server {
  return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    w.Write([]byte(`{"choices":[{"message":{"content":"` + content + `"}}]}`))
  }))
}

func downServer() *httptest.Server {
  return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    http.Error(w, "down", http.StatusBadGateway)
  }))
}

func TestMoodPatternsSuccess(t *testing.T) {
  reasoning := chatServer("deep analysis")
  defer reasoning.Close()
  quip := chatServer("witty line")
  defer quip.Close()

  svc := newTestInsightsService(t, reasoning.URL, quip.URL, quip.URL)
  insights, err := svc.MoodPatterns(context.Background(), testProfile(), nil)
  if err != nil {
    t.Fatalf("mood patterns failed: %v", err)
  }

  if insights.MoodAnalysis != "deep analysis" {
    t.Fatalf("unexpected analysis: %q", insights.MoodAnalysis)
  }
  if insights.GrokQuip != "witty line" {
    t.Fatalf("unexpected quip: %q", insights.GrokQuip)
  }
  if insights.NextMoodSuggestion.Label != "Calm" {
    t.Fatalf("unexpected next mood: %+v", insights.NextMoodSuggestion)
  }
  if len(insights.PredictedNeeds) != 4 || insights.PredictedNeeds[0] != "Calming music or nature sounds" {
    t.Fatalf("unexpected predicted needs: %v", insights.PredictedNeeds)
  }
}

func TestMoodPatternsReasoningFallback(t *testing.T) {
  down := downServer()
  defer down.Close()

  svc := newTestInsightsService(t, down.URL, down.URL, down.URL)
  insights, err := svc.MoodPatterns(context.Background(), testProfile(), nil)
  if err != nil {
    t.Fatalf("mood patterns must not fail: %v", err)
  }

  if !strings.Contains(insights.MoodAnalysis, "Stressed energy is perfect for focused work") {
    t.Fatalf("unexpected fallback analysis: %q", insights.MoodAnalysis)
  }
  if !strings.HasPrefix(insights.GrokQuip, "Stressed? That's just your brain") {
    t.Fatalf("unexpected fallback quip: %q", insights.GrokQuip)
  }
  if len(insights.PredictedNeeds) == 0 {
    t.Fatalf("predicted needs must still be computed")
  }
}

func TestMoodPatternsQuipFailureLeavesQuipEmpty(t *testing.T) {
  reasoning := chatServer("deep analysis")
  defer reasoning.Close()
  down := downServer()
  defer down.Close()

  svc := newTestInsightsService(t, reasoning.URL, down.URL, down.URL)
  insights, err := svc.MoodPatterns(context.Background(), testProfile(), nil)
  if err != nil {
    t.Fatalf("mood patterns failed: %v", err)
  }
  if insights.MoodAnalysis != "deep analysis" {
    t.Fatalf("unexpected analysis: %q", insights.MoodAnalysis)
  }
  if insights.GrokQuip != "" {
    t.Fatalf("quip should stay empty when its provider fails, got %q", insights.GrokQuip)
  }
}

func TestPersonalizedReflectionSuccess(t *testing.T) {
  conversation := chatServer("a warm reflection")
  defer conversation.Close()

  svc := newTestInsightsService(t, conversation.URL, conversation.URL, conversation.URL)
  insights, err := svc.PersonalizedReflection(context.Background(), testProfile())
  if err != nil {
    t.Fatalf("reflection failed: %v", err)
  }

  if insights.WeeklyReflection != "a warm reflection" {
    t.Fatalf("unexpected reflection: %q", insights.WeeklyReflection)
  }
  if insights.MoodInsight != "Currently feeling Stressed - consider content that helps with balance" {
    t.Fatalf("unexpected mood insight: %q", insights.MoodInsight)
  }
  if insights.GrowthArea != "AI/ML" {
    t.Fatalf("unexpected growth area: %q", insights.GrowthArea)
  }
  if insights.RecommendedAction != "Find calming AI/ML that reduces overwhelm" {
    t.Fatalf("unexpected action: %q", insights.RecommendedAction)
  }
}

func TestPersonalizedReflectionStaticFallback(t *testing.T) {
  down := downServer()
  defer down.Close()

  svc := newTestInsightsService(t, down.URL, down.URL, down.URL)
  insights, err := svc.PersonalizedReflection(context.Background(), testProfile())
  if err != nil {
    t.Fatalf("reflection must not fail: %v", err)
  }

  static := StaticReflectionInsights()
  if insights.WeeklyReflection != static.WeeklyReflection || insights.GrowthArea != static.GrowthArea {
    t.Fatalf("expected static bundle, got %+v", insights)
  }
}
