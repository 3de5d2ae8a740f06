package services

import (
  "context"
  "fmt"
  "strings"

  "github.com/yungbote/moodstream-backend/internal/logger"
  "github.com/yungbote/moodstream-backend/internal/types"
)

type InsightsService interface {
  MoodPatterns(ctx context.Context, profile types.UserProfile, moodHistory []types.MoodHistoryEntry) (*types.MoodPatternInsights, error)
  PersonalizedReflection(ctx context.Context, profile types.UserProfile) (*types.ReflectionInsights, error)
}

type insightsService struct {
  log          *logger.Logger
  reasoning    ChatClient
  quip         ChatClient
  conversation ChatClient
}

func NewInsightsService(log *logger.Logger, reasoning ChatClient, quip ChatClient, conversation ChatClient) InsightsService {
  return &insightsService{
    log:          log.With("service", "InsightsService"),
    reasoning:    reasoning,
    quip:         quip,
    conversation: conversation,
  }
}

// MoodPatterns asks the long-form reasoning model for a mood analysis and,
// when that works, decorates it with a quip from the alternate model. Both
// calls degrade to fixed literals; the lookup-based fields are always
// computed locally.
func (is *insightsService) MoodPatterns(ctx context.Context, profile types.UserProfile, moodHistory []types.MoodHistoryEntry) (*types.MoodPatternInsights, error) {
  interests := careerInterests(profile.CareerGoals)

  insights := &types.MoodPatternInsights{
    PredictedNeeds:     predictedNeeds(profile.Mood, profile.CareerGoals),
    NextMoodSuggestion: nextMoodSuggestion(profile.Mood.Value),
  }

  analysis, err := is.reasoning.Complete(ctx, []ChatMessage{{
    Role: "user",
    Content: fmt.Sprintf(`Analyze this user's mood patterns and provide personalized insights:

Current mood: %s
Age: %d
Career interests: %s

Based on this profile, suggest:
1. Optimal times for different activities
2. Content types that would help during different moods
3. Productivity patterns based on age and career stage

Provide actionable, empathetic advice in 3-4 bullet points.`, profile.Mood.Label, profile.Age, interests),
  }}, &ChatOptions{Reasoning: true})
  if err != nil {
    is.log.Warn("mood analysis failed, using fallback insights", "error", err)
    insights.MoodAnalysis = fmt.Sprintf(
      "Your %s energy is perfect for focused work. Consider breaking tasks into smaller chunks and celebrating small wins.",
      profile.Mood.Label,
    )
    insights.GrokQuip = fmt.Sprintf(
      "%s? That's just your brain getting ready for greatness. Time to channel that energy!",
      profile.Mood.Label,
    )
    return insights, nil
  }
  insights.MoodAnalysis = analysis

  focus := "personal growth"
  if len(profile.CareerGoals) > 0 {
    if _, sub := parseGoal(profile.CareerGoals[0]); sub != "" {
      focus = sub
    }
  }
  quip, err := is.quip.Complete(ctx, []ChatMessage{{
    Role: "user",
    Content: fmt.Sprintf(
      "Someone is feeling %s and working on %s. Give me a witty, encouraging one-liner that acknowledges their current mood but motivates them. Be supportive but with personality.",
      profile.Mood.Label, focus,
    ),
  }}, nil)
  if err != nil {
    is.log.Warn("quip generation failed, leaving it empty", "error", err)
  } else {
    insights.GrokQuip = quip
  }

  return insights, nil
}

// PersonalizedReflection generates the weekly reflection from a single
// conversation call. It never fails: a dead provider yields the static
// bundle, matching the guarantee that this endpoint always has something
// encouraging to say.
func (is *insightsService) PersonalizedReflection(ctx context.Context, profile types.UserProfile) (*types.ReflectionInsights, error) {
  mood := profile.Mood.Label
  if mood == "" {
    mood = "neutral"
  }
  moodEmoji := profile.Mood.Emoji
  if moodEmoji == "" {
    moodEmoji = "😊"
  }
  age := profile.Age
  if age == 0 {
    age = 25
  }

  interests := primaryInterests(profile.CareerGoals)
  interestsText := strings.Join(interests, ", ")
  if len(interests) == 0 {
    interestsText = "personal development"
  }

  extraContext := ""
  if profile.MoodText != "" {
    extraContext = fmt.Sprintf("Additional context: \"%s\"\n", profile.MoodText)
  }

  prompt := fmt.Sprintf(`Generate a personalized, encouraging weekly reflection for a %d-year-old user who is currently feeling %s %s.

Their career interests include: %s
%s
The reflection should be:
- Exactly 2-3 sentences
- Warm and supportive tone
- Acknowledge their current %s mood
- Reference their interests (%s)
- Include actionable encouragement
- End with a forward-looking statement

Format: Return only the reflection text, no extra formatting.`,
    age, mood, moodEmoji, interestsText, extraContext, mood, interestsText)

  reflection, err := is.conversation.Complete(ctx, []ChatMessage{{Role: "user", Content: prompt}}, nil)
  if err != nil {
    is.log.Warn("reflection generation failed, using static bundle", "error", err)
    return StaticReflectionInsights(), nil
  }

  growthArea := "Personal Development"
  firstInterest := ""
  if len(interests) > 0 && interests[0] != "" {
    growthArea = interests[0]
    firstInterest = interests[0]
  }

  return &types.ReflectionInsights{
    WeeklyReflection:  reflection,
    MoodInsight:       fmt.Sprintf("Currently feeling %s - %s", mood, moodInsight(mood)),
    GrowthArea:        growthArea,
    RecommendedAction: recommendedAction(mood, firstInterest),
  }, nil
}

// StaticReflectionInsights is the last-resort reflection bundle, used when
// the provider is unreachable or the request body cannot even be parsed.
func StaticReflectionInsights() *types.ReflectionInsights {
  return &types.ReflectionInsights{
    WeeklyReflection:  "You're showing great commitment to your personal growth journey. Keep exploring content that resonates with your current mindset. Small consistent steps lead to meaningful progress.",
    MoodInsight:       "Staying aware of your emotions helps guide better decisions",
    GrowthArea:        "Personal Development",
    RecommendedAction: "Take time for reflection and planning your next steps",
  }
}
