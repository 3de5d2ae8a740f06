package services

import (
  "strings"

  "github.com/yungbote/moodstream-backend/internal/types"
)

// Fixed mood lookup tables. All of these are pure: the same mood and goals
// always produce the same output.

func predictedNeeds(mood types.Mood, careerGoals []string) []string {
  needs := []string{}

  switch mood.Value {
  case "stressed":
    needs = append(needs,
      "Calming music or nature sounds",
      "Short breathing exercise videos",
      "Productivity tips for time management",
    )
  case "motivated", "energetic":
    needs = append(needs,
      "Challenging tutorials or courses",
      "Inspiring success stories",
      "Project ideas to channel your energy",
    )
  case "reflective", "thoughtful":
    needs = append(needs,
      "Deep-dive articles and analysis",
      "Philosophy or psychology content",
      "Career growth discussions",
    )
  case "calm":
    needs = append(needs,
      "Strategic planning content",
      "Long-form educational videos",
      "Mindful productivity techniques",
    )
  default:
    needs = append(needs,
      "Balanced mix of learning and inspiration",
      "Community discussions and networking",
      "Skill-building resources",
    )
  }

  if goalsContain(careerGoals, "Technology") {
    needs = append(needs, "Latest tech trends and developments")
  }
  if goalsContain(careerGoals, "Business") {
    needs = append(needs, "Business strategy and leadership content")
  }

  if len(needs) > 4 {
    needs = needs[:4]
  }
  return needs
}

func goalsContain(goals []string, substr string) bool {
  for _, goal := range goals {
    if strings.Contains(goal, substr) {
      return true
    }
  }
  return false
}

var nextMoodSuggestions = map[string]types.MoodSuggestion{
  "stressed":   {Emoji: "😴", Label: "Calm", Reason: "to help you reset and recharge"},
  "sad":        {Emoji: "🤔", Label: "Thoughtful", Reason: "to process your feelings constructively"},
  "angry":      {Emoji: "😴", Label: "Calm", Reason: "to cool down and gain perspective"},
  "energetic":  {Emoji: "💪", Label: "Motivated", Reason: "to channel your energy into action"},
  "happy":      {Emoji: "✨", Label: "Inspired", Reason: "to build on your positive momentum"},
  "thoughtful": {Emoji: "💪", Label: "Motivated", Reason: "to turn insights into action"},
  "calm":       {Emoji: "🔥", Label: "Energetic", Reason: "to start taking action on your plans"},
  "motivated":  {Emoji: "😊", Label: "Happy", Reason: "to celebrate your achievements"},
}

func nextMoodSuggestion(moodValue string) types.MoodSuggestion {
  if s, ok := nextMoodSuggestions[moodValue]; ok {
    return s
  }
  return types.MoodSuggestion{Emoji: "😊", Label: "Happy", Reason: "to maintain a positive outlook"}
}

var moodInsights = map[string]string{
  "happy":      "perfect time for creative exploration and learning",
  "calm":       "ideal for deep focus and strategic thinking",
  "thoughtful": "great for reflection and planning ahead",
  "motivated":  "harness this energy for skill building",
  "stressed":   "consider content that helps with balance",
  "sad":        "gentle activities can help shift perspective",
  "energetic":  "channel this into productive learning",
  "reflective": "excellent for introspective content",
  "loving":     "focus on connecting with meaningful content",
  "frustrated": "break through barriers with fresh perspectives",
  "inspired":   "perfect time to explore new ideas",
  "focused":    "ideal for deep learning and skill development",
}

func moodInsight(moodLabel string) string {
  if s, ok := moodInsights[strings.ToLower(moodLabel)]; ok {
    return s
  }
  return "every mood has its perfect content match"
}

func recommendedAction(moodLabel, interest string) string {
  orElse := func(v, fallback string) string {
    if v != "" {
      return v
    }
    return fallback
  }

  switch strings.ToLower(moodLabel) {
  case "happy":
    return "Explore creative " + orElse(interest, "content") + " that builds on your positive energy"
  case "calm":
    return "Dive deep into " + orElse(interest, "learning") + " materials that require focus"
  case "thoughtful":
    return "Plan your " + orElse(interest, "development") + " journey with strategic content"
  case "motivated":
    return "Take action on " + orElse(interest, "skill-building") + " opportunities"
  case "stressed":
    return "Find calming " + orElse(interest, "content") + " that reduces overwhelm"
  case "sad":
    return "Discover uplifting " + orElse(interest, "content") + " that shifts perspective"
  case "energetic":
    return "Channel energy into hands-on " + orElse(interest, "learning") + " projects"
  case "reflective":
    return "Explore " + orElse(interest, "content") + " that encourages introspection"
  default:
    return "Explore content that matches your current energy level"
  }
}
