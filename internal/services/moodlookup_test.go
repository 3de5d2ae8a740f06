package services

import (
  "reflect"
  "testing"

  "github.com/yungbote/moodstream-backend/internal/types"
)

func TestPredictedNeedsStressedWithTechnology(t *testing.T) {
  mood := types.Mood{Label: "Stressed", Value: "stressed"}
  needs := predictedNeeds(mood, []string{"Technology:AI/ML"})

  want := []string{
    "Calming music or nature sounds",
    "Short breathing exercise videos",
    "Productivity tips for time management",
    "Latest tech trends and developments",
  }
  if !reflect.DeepEqual(needs, want) {
    t.Fatalf("unexpected needs:\n got %v\nwant %v", needs, want)
  }
}

func TestPredictedNeedsTruncatesToFour(t *testing.T) {
  mood := types.Mood{Value: "stressed"}
  needs := predictedNeeds(mood, []string{"Technology:AI/ML", "Business:Leadership"})
  if len(needs) != 4 {
    t.Fatalf("expected 4 needs, got %d: %v", len(needs), needs)
  }
  // Technology beats Business under the cap.
  if needs[3] != "Latest tech trends and developments" {
    t.Fatalf("unexpected fourth need: %q", needs[3])
  }
}

func TestPredictedNeedsIsPure(t *testing.T) {
  mood := types.Mood{Value: "calm"}
  goals := []string{"Business:Leadership"}
  first := predictedNeeds(mood, goals)
  second := predictedNeeds(mood, goals)
  if !reflect.DeepEqual(first, second) {
    t.Fatalf("predictedNeeds is not deterministic: %v vs %v", first, second)
  }
}

func TestNextMoodSuggestion(t *testing.T) {
  s := nextMoodSuggestion("stressed")
  if s.Label != "Calm" || s.Reason != "to help you reset and recharge" {
    t.Fatalf("unexpected stressed suggestion: %+v", s)
  }

  def := nextMoodSuggestion("no-such-mood")
  if def.Label != "Happy" || def.Reason != "to maintain a positive outlook" {
    t.Fatalf("unexpected default suggestion: %+v", def)
  }
}

func TestMoodInsight(t *testing.T) {
  if got := moodInsight("Happy"); got != "perfect time for creative exploration and learning" {
    t.Fatalf("unexpected happy insight: %q", got)
  }
  if got := moodInsight("???"); got != "every mood has its perfect content match" {
    t.Fatalf("unexpected default insight: %q", got)
  }
}

func TestRecommendedAction(t *testing.T) {
  if got := recommendedAction("Motivated", "AI/ML"); got != "Take action on AI/ML opportunities" {
    t.Fatalf("unexpected action: %q", got)
  }
  if got := recommendedAction("Motivated", ""); got != "Take action on skill-building opportunities" {
    t.Fatalf("unexpected empty-interest action: %q", got)
  }
  if got := recommendedAction("bizarre", "AI/ML"); got != "Explore content that matches your current energy level" {
    t.Fatalf("unexpected default action: %q", got)
  }
}
