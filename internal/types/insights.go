package types

// Each endpoint returns its own fixed insight record instead of one
// loosely-shaped map, so callers can rely on the fields being present.

type PersonalizedContentInsights struct {
  WeeklyReflection string `json:"weeklyReflection"`
  GrokComments     string `json:"grokComments,omitempty"`
}

type MoodSuggestion struct {
  Emoji  string `json:"emoji"`
  Label  string `json:"label"`
  Reason string `json:"reason"`
}

type MoodPatternInsights struct {
  MoodAnalysis       string         `json:"moodAnalysis"`
  GrokQuip           string         `json:"grokQuip"`
  PredictedNeeds     []string       `json:"predictedNeeds"`
  NextMoodSuggestion MoodSuggestion `json:"nextMoodSuggestion"`
}

type ReflectionInsights struct {
  WeeklyReflection  string `json:"weeklyReflection"`
  MoodInsight       string `json:"moodInsight"`
  GrowthArea        string `json:"growthArea"`
  RecommendedAction string `json:"recommendedAction"`
}
