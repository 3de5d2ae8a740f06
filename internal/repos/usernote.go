package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/moodstream-backend/internal/logger"
  "github.com/yungbote/moodstream-backend/internal/types"
)

type UserNoteRepo interface {
  Create(ctx context.Context, tx *gorm.DB, note *types.UserNote) (*types.UserNote, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.UserNote, error)
  ListByUser(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*types.UserNote, error)
  Update(ctx context.Context, tx *gorm.DB, note *types.UserNote) (*types.UserNote, error)
  DeleteByID(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
  DeleteByUser(ctx context.Context, tx *gorm.DB, userID string) (int64, error)
}

type userNoteRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserNoteRepo(db *gorm.DB, baseLog *logger.Logger) UserNoteRepo {
  repoLog := baseLog.With("repo", "UserNoteRepo")
  return &userNoteRepo{db: db, log: repoLog}
}

func (nr *userNoteRepo) Create(ctx context.Context, tx *gorm.DB, note *types.UserNote) (*types.UserNote, error) {
  transaction := tx
  if transaction == nil {
    transaction = nr.db
  }

  if err := transaction.WithContext(ctx).Create(note).Error; err != nil {
    return nil, err
  }
  return note, nil
}

func (nr *userNoteRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.UserNote, error) {
  transaction := tx
  if transaction == nil {
    transaction = nr.db
  }

  var result types.UserNote
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (nr *userNoteRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*types.UserNote, error) {
  transaction := tx
  if transaction == nil {
    transaction = nr.db
  }

  var results []*types.UserNote
  query := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC")
  if limit > 0 {
    query = query.Limit(limit)
  }
  if err := query.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (nr *userNoteRepo) Update(ctx context.Context, tx *gorm.DB, note *types.UserNote) (*types.UserNote, error) {
  transaction := tx
  if transaction == nil {
    transaction = nr.db
  }

  if err := transaction.WithContext(ctx).Save(note).Error; err != nil {
    return nil, err
  }
  return note, nil
}

func (nr *userNoteRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = nr.db
  }

  result := transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.UserNote{})
  if result.Error != nil {
    return 0, result.Error
  }
  return result.RowsAffected, nil
}

func (nr *userNoteRepo) DeleteByUser(ctx context.Context, tx *gorm.DB, userID string) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = nr.db
  }

  result := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Delete(&types.UserNote{})
  if result.Error != nil {
    return 0, result.Error
  }
  return result.RowsAffected, nil
}
