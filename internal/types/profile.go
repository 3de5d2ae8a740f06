package types

// Mood is the caller-selected mood snapshot. Value is the stable enumeration
// key ("calm", "stressed", ...); Label is the display form ("Calm").
type Mood struct {
  Label string `json:"label"`
  Value string `json:"value"`
  Emoji string `json:"emoji"`
}

// UserProfile is the onboarding profile sent with every pipeline request.
// CareerGoals entries are "<category>:<subdivision>" strings; callers are
// trusted to keep them well formed and malformed entries degrade silently.
type UserProfile struct {
  Mood        Mood     `json:"mood"`
  Age         int      `json:"age"`
  CareerGoals []string `json:"careerGoals"`
  MoodText    string   `json:"moodText,omitempty"`
}

// MoodHistoryEntry is an earlier mood snapshot supplied to the mood-patterns
// endpoint. It is read for context only and never persisted.
type MoodHistoryEntry struct {
  Mood      Mood   `json:"mood"`
  Timestamp string `json:"timestamp,omitempty"`
}
