package handlers

import (
  "errors"
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"

  "github.com/yungbote/moodstream-backend/internal/logger"
  "github.com/yungbote/moodstream-backend/internal/requestdata"
  "github.com/yungbote/moodstream-backend/internal/services"
)

type NoteHandler struct {
  log         *logger.Logger
  noteService services.NoteService
}

func NewNoteHandler(log *logger.Logger, noteService services.NoteService) *NoteHandler {
  return &NoteHandler{
    log:         log.With("handler", "NoteHandler"),
    noteService: noteService,
  }
}

type noteRequest struct {
  UserID     string  `json:"userId"`
  NoteText   string  `json:"noteText"`
  MoodAtTime *string `json:"moodAtTime"`
}

// GET /api/notes
func (h *NoteHandler) List(c *gin.Context) {
  userID := requestdata.UserID(c.Request.Context())
  limit, _ := strconv.Atoi(c.Query("limit"))

  notes, err := h.noteService.List(c.Request.Context(), userID, limit)
  if err != nil {
    h.log.Error("Failed to fetch notes", "error", err)
    RespondError(c, http.StatusInternalServerError, "Failed to fetch notes")
    return
  }

  c.JSON(http.StatusOK, gin.H{
    "success": true,
    "notes":   notes,
    "count":   len(notes),
  })
}

// POST /api/notes
func (h *NoteHandler) Create(c *gin.Context) {
  var req noteRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    h.log.Error("Failed to parse note request", "error", err)
    RespondError(c, http.StatusInternalServerError, "Failed to create note")
    return
  }

  userID := req.UserID
  if userID == "" {
    userID = requestdata.UserID(c.Request.Context())
  }

  note, err := h.noteService.Create(c.Request.Context(), userID, req.NoteText, req.MoodAtTime)
  if err != nil {
    if errors.Is(err, services.ErrEmptyNoteText) {
      RespondError(c, http.StatusBadRequest, "Note text is required")
      return
    }
    h.log.Error("Failed to create note", "error", err)
    RespondError(c, http.StatusInternalServerError, "Failed to create note")
    return
  }

  c.JSON(http.StatusOK, gin.H{
    "success": true,
    "note":    note,
  })
}

// DELETE /api/notes
func (h *NoteHandler) DeleteAll(c *gin.Context) {
  userID := requestdata.UserID(c.Request.Context())

  deleted, err := h.noteService.DeleteAll(c.Request.Context(), userID)
  if err != nil {
    h.log.Error("Failed to delete notes", "error", err)
    RespondError(c, http.StatusInternalServerError, "Failed to delete notes")
    return
  }

  c.JSON(http.StatusOK, gin.H{
    "success":      true,
    "deletedCount": deleted,
    "message":      "All notes deleted successfully",
  })
}

// GET /api/notes/:id
func (h *NoteHandler) Get(c *gin.Context) {
  id, ok := h.noteID(c)
  if !ok {
    return
  }

  note, err := h.noteService.Get(c.Request.Context(), id)
  if err != nil {
    if errors.Is(err, services.ErrNoteNotFound) {
      RespondError(c, http.StatusNotFound, "Note not found")
      return
    }
    h.log.Error("Failed to fetch note", "error", err)
    RespondError(c, http.StatusInternalServerError, "Failed to fetch note")
    return
  }

  c.JSON(http.StatusOK, gin.H{
    "success": true,
    "note":    note,
  })
}

// PUT /api/notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
  id, ok := h.noteID(c)
  if !ok {
    return
  }

  var req noteRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    h.log.Error("Failed to parse note request", "error", err)
    RespondError(c, http.StatusInternalServerError, "Failed to update note")
    return
  }

  note, err := h.noteService.Update(c.Request.Context(), id, req.NoteText, req.MoodAtTime)
  if err != nil {
    if errors.Is(err, services.ErrEmptyNoteText) {
      RespondError(c, http.StatusBadRequest, "Note text is required")
      return
    }
    if errors.Is(err, services.ErrNoteNotFound) {
      RespondError(c, http.StatusNotFound, "Note not found")
      return
    }
    h.log.Error("Failed to update note", "error", err)
    RespondError(c, http.StatusInternalServerError, "Failed to update note")
    return
  }

  c.JSON(http.StatusOK, gin.H{
    "success": true,
    "note":    note,
  })
}

// DELETE /api/notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
  id, ok := h.noteID(c)
  if !ok {
    return
  }

  if err := h.noteService.Delete(c.Request.Context(), id); err != nil {
    if errors.Is(err, services.ErrNoteNotFound) {
      RespondError(c, http.StatusNotFound, "Note not found")
      return
    }
    h.log.Error("Failed to delete note", "error", err)
    RespondError(c, http.StatusInternalServerError, "Failed to delete note")
    return
  }

  c.JSON(http.StatusOK, gin.H{
    "success": true,
    "message": "Note deleted successfully",
  })
}

func (h *NoteHandler) noteID(c *gin.Context) (uint, bool) {
  id, err := strconv.ParseUint(c.Param("id"), 10, 32)
  if err != nil {
    RespondError(c, http.StatusNotFound, "Note not found")
    return 0, false
  }
  return uint(id), true
}
