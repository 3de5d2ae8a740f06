package types

import (
  "time"
)

// UserNote is the only durable entity in the system: a free-text note tied to
// the mood the user had when writing it. UserID comes from the optional
// bearer token and defaults to "anonymous".
type UserNote struct {
  ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
  UserID     string    `gorm:"index;not null;default:'anonymous';column:user_id" json:"-"`
  NoteText   string    `gorm:"not null;column:note_text" json:"note_text"`
  MoodAtTime *string   `gorm:"column:mood_at_time" json:"mood_at_time"`
  CreatedAt  time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (UserNote) TableName() string {
  return "user_notes"
}
