package services

import (
  "strings"
  "testing"

  "github.com/yungbote/moodstream-backend/internal/types"
)

func testProfile() types.UserProfile {
  return types.UserProfile{
    Mood:        types.Mood{Label: "Stressed", Value: "stressed", Emoji: "😥"},
    Age:         30,
    CareerGoals: []string{"Technology:AI/ML", "Business:Leadership"},
  }
}

func TestCareerInterests(t *testing.T) {
  if got := careerInterests(testProfile().CareerGoals); got != "AI/ML, Leadership" {
    t.Fatalf("unexpected interests: %q", got)
  }
}

func TestCareerInterestsMalformedGoalDegradesSilently(t *testing.T) {
  got := careerInterests([]string{"Technology:AI/ML", "NoColonHere"})
  if got != "AI/ML, " {
    t.Fatalf("expected malformed entry to join as empty segment, got %q", got)
  }
}

func TestCareerCategoriesUniqueOrdered(t *testing.T) {
  cats := careerCategories([]string{"Technology:AI/ML", "Technology:Cloud", "Business:Leadership"})
  if len(cats) != 2 || cats[0] != "Technology" || cats[1] != "Business" {
    t.Fatalf("unexpected categories: %v", cats)
  }
}

func TestVideoQuery(t *testing.T) {
  q := videoQuery(testProfile())
  want := "Stressed AI/ML, Leadership motivation productivity site:youtube.com OR site:ted.com"
  if q != want {
    t.Fatalf("video query mismatch:\n got %q\nwant %q", q, want)
  }
}

func TestSocialQuery(t *testing.T) {
  q := socialQuery(testProfile())
  if !strings.HasSuffix(q, " site:reddit.com") {
    t.Fatalf("social query missing site filter: %q", q)
  }
  if !strings.Contains(q, "discussion advice Stressed") {
    t.Fatalf("social query missing mood: %q", q)
  }
}

func TestArticleQueryMoodBranch(t *testing.T) {
  profile := testProfile()
  profile.Mood.Label = "stressed"
  if q := articleQuery(profile); !strings.Contains(q, "productivity tips") {
    t.Fatalf("stressed mood should query productivity tips: %q", q)
  }
  profile.Mood.Label = "Happy"
  if q := articleQuery(profile); !strings.Contains(q, "learning") {
    t.Fatalf("non-stressed mood should query learning: %q", q)
  }
}

func TestImagePromptForMood(t *testing.T) {
  if p := imagePromptForMood("calm"); p != imagePromptForMood("reflective") {
    t.Fatalf("calm and reflective should share a prompt")
  }
  if p := imagePromptForMood("stressed"); !strings.Contains(p, "zen garden") {
    t.Fatalf("unexpected stressed prompt: %q", p)
  }
  if p := imagePromptForMood("unknown-mood"); !strings.Contains(p, "workspace") {
    t.Fatalf("unexpected default prompt: %q", p)
  }
}
