package services

import (
  "context"
  "errors"
  "strings"

  "gorm.io/gorm"

  "github.com/yungbote/moodstream-backend/internal/logger"
  "github.com/yungbote/moodstream-backend/internal/repos"
  "github.com/yungbote/moodstream-backend/internal/types"
)

var (
  ErrEmptyNoteText = errors.New("Note text is required")
  ErrNoteNotFound  = errors.New("Note not found")
)

type NoteService interface {
  List(ctx context.Context, userID string, limit int) ([]*types.UserNote, error)
  Create(ctx context.Context, userID, noteText string, moodAtTime *string) (*types.UserNote, error)
  Get(ctx context.Context, id uint) (*types.UserNote, error)
  Update(ctx context.Context, id uint, noteText string, moodAtTime *string) (*types.UserNote, error)
  Delete(ctx context.Context, id uint) error
  DeleteAll(ctx context.Context, userID string) (int64, error)
}

type noteService struct {
  db       *gorm.DB
  log      *logger.Logger
  noteRepo repos.UserNoteRepo
}

func NewNoteService(db *gorm.DB, log *logger.Logger, noteRepo repos.UserNoteRepo) NoteService {
  serviceLog := log.With("service", "NoteService")
  return &noteService{db: db, log: serviceLog, noteRepo: noteRepo}
}

func (ns *noteService) List(ctx context.Context, userID string, limit int) ([]*types.UserNote, error) {
  if limit <= 0 {
    limit = 50
  }
  return ns.noteRepo.ListByUser(ctx, nil, userID, limit)
}

func (ns *noteService) Create(ctx context.Context, userID, noteText string, moodAtTime *string) (*types.UserNote, error) {
  trimmed := strings.TrimSpace(noteText)
  if trimmed == "" {
    return nil, ErrEmptyNoteText
  }
  note := &types.UserNote{
    UserID:     userID,
    NoteText:   trimmed,
    MoodAtTime: moodAtTime,
  }
  return ns.noteRepo.Create(ctx, nil, note)
}

func (ns *noteService) Get(ctx context.Context, id uint) (*types.UserNote, error) {
  note, err := ns.noteRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrNoteNotFound
    }
    return nil, err
  }
  return note, nil
}

func (ns *noteService) Update(ctx context.Context, id uint, noteText string, moodAtTime *string) (*types.UserNote, error) {
  trimmed := strings.TrimSpace(noteText)
  if trimmed == "" {
    return nil, ErrEmptyNoteText
  }

  note, err := ns.noteRepo.GetByID(ctx, nil, id)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrNoteNotFound
    }
    return nil, err
  }

  note.NoteText = trimmed
  note.MoodAtTime = moodAtTime
  return ns.noteRepo.Update(ctx, nil, note)
}

func (ns *noteService) Delete(ctx context.Context, id uint) error {
  deleted, err := ns.noteRepo.DeleteByID(ctx, nil, id)
  if err != nil {
    return err
  }
  if deleted == 0 {
    return ErrNoteNotFound
  }
  return nil
}

func (ns *noteService) DeleteAll(ctx context.Context, userID string) (int64, error) {
  return ns.noteRepo.DeleteByUser(ctx, nil, userID)
}
