package services

import (
  "strings"

  "github.com/yungbote/moodstream-backend/internal/types"
)

// Career goal entries are "<category>:<subdivision>" strings. Entries without
// a colon degrade silently: the whole entry counts as the category and the
// empty subdivision still joins into query text, mirroring the pass-through
// contract with the onboarding client.
func parseGoal(goal string) (category, subdivision string) {
  parts := strings.SplitN(goal, ":", 2)
  category = parts[0]
  if len(parts) == 2 {
    subdivision = parts[1]
  }
  return category, subdivision
}

func careerInterests(goals []string) string {
  subs := make([]string, 0, len(goals))
  for _, goal := range goals {
    _, sub := parseGoal(goal)
    subs = append(subs, sub)
  }
  return strings.Join(subs, ", ")
}

func careerCategories(goals []string) []string {
  seen := map[string]struct{}{}
  cats := make([]string, 0, len(goals))
  for _, goal := range goals {
    cat, _ := parseGoal(goal)
    if _, ok := seen[cat]; ok {
      continue
    }
    seen[cat] = struct{}{}
    cats = append(cats, cat)
  }
  return cats
}

func primaryInterests(goals []string) []string {
  subs := make([]string, 0, 3)
  for _, goal := range goals {
    if len(subs) == 3 {
      break
    }
    _, sub := parseGoal(goal)
    subs = append(subs, sub)
  }
  return subs
}

func videoQuery(profile types.UserProfile) string {
  return profile.Mood.Label + " " + careerInterests(profile.CareerGoals) + " motivation productivity" +
    " site:youtube.com OR site:ted.com"
}

func socialQuery(profile types.UserProfile) string {
  return careerInterests(profile.CareerGoals) + " discussion advice " + profile.Mood.Label +
    " site:reddit.com"
}

func articleQuery(profile types.UserProfile) string {
  focus := "learning"
  if profile.Mood.Label == "stressed" {
    focus = "productivity tips"
  }
  return careerInterests(profile.CareerGoals) + " guide tutorial blog " + focus +
    " site:medium.com OR site:hashnode.com OR site:dev.to"
}

// imagePromptForMood is the one piece of designed branching in query
// synthesis: a closed lookup from mood value to a generation prompt.
func imagePromptForMood(moodValue string) string {
  switch moodValue {
  case "calm", "reflective":
    return "serene mountain landscape, peaceful lake, minimalist style, soft colors"
  case "motivated", "energetic":
    return "dynamic cityscape at sunrise, motivational workspace, bright colors"
  case "stressed":
    return "peaceful zen garden, calming nature scene, soft lighting"
  case "happy":
    return "vibrant sunrise over mountains, positive energy, warm colors"
  default:
    return "inspiring workspace setup, clean modern design, natural lighting"
  }
}
