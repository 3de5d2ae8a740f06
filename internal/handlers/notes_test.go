package handlers

import (
  "bytes"
  "encoding/json"
  "fmt"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"

  "github.com/gin-gonic/gin"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  gormlogger "gorm.io/gorm/logger"

  "github.com/yungbote/moodstream-backend/internal/logger"
  "github.com/yungbote/moodstream-backend/internal/repos"
  "github.com/yungbote/moodstream-backend/internal/services"
  "github.com/yungbote/moodstream-backend/internal/types"
)

func newNotesRouter(t *testing.T) *gin.Engine {
  t.Helper()
  gin.SetMode(gin.TestMode)

  name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
  db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
    Logger: gormlogger.Default.LogMode(gormlogger.Silent),
  })
  if err != nil {
    t.Fatalf("failed to open sqlite: %v", err)
  }
  if err := db.AutoMigrate(&types.UserNote{}); err != nil {
    t.Fatalf("failed to migrate: %v", err)
  }

  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("failed to init logger: %v", err)
  }

  noteRepo := repos.NewUserNoteRepo(db, log)
  noteService := services.NewNoteService(db, log, noteRepo)
  handler := NewNoteHandler(log, noteService)

  router := gin.New()
  router.GET("/api/notes", handler.List)
  router.POST("/api/notes", handler.Create)
  router.DELETE("/api/notes", handler.DeleteAll)
  router.GET("/api/notes/:id", handler.Get)
  router.PUT("/api/notes/:id", handler.Update)
  router.DELETE("/api/notes/:id", handler.Delete)
  return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
  t.Helper()

  var reader *bytes.Reader
  if body != nil {
    raw, err := json.Marshal(body)
    if err != nil {
      t.Fatalf("failed to marshal body: %v", err)
    }
    reader = bytes.NewReader(raw)
  } else {
    reader = bytes.NewReader(nil)
  }

  req := httptest.NewRequest(method, path, reader)
  req.Header.Set("Content-Type", "application/json")
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  var parsed map[string]any
  if len(rec.Body.Bytes()) > 0 {
    if err := json.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
      t.Fatalf("response is not JSON: %v\nbody: %s", err, rec.Body.String())
    }
  }
  return rec, parsed
}

func TestCreateThenGetNoteRoundTrip(t *testing.T) {
  router := newNotesRouter(t)

  rec, created := doJSON(t, router, http.MethodPost, "/api/notes", map[string]any{
    "noteText":   "felt calmer after the walk",
    "moodAtTime": "calm",
  })
  if rec.Code != http.StatusOK {
    t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
  }
  note := created["note"].(map[string]any)
  id := note["id"].(float64)

  rec, fetched := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/notes/%.0f", id), nil)
  if rec.Code != http.StatusOK {
    t.Fatalf("get returned %d: %s", rec.Code, rec.Body.String())
  }
  got := fetched["note"].(map[string]any)
  if got["note_text"] != "felt calmer after the walk" {
    t.Fatalf("note text did not round-trip: %v", got["note_text"])
  }
  if got["mood_at_time"] != "calm" {
    t.Fatalf("mood did not round-trip: %v", got["mood_at_time"])
  }
  if _, leaked := got["UserID"]; leaked {
    t.Fatalf("user id must not appear in responses")
  }
}

func TestCreateNoteRejectsEmptyText(t *testing.T) {
  router := newNotesRouter(t)

  rec, body := doJSON(t, router, http.MethodPost, "/api/notes", map[string]any{
    "noteText": "   ",
  })
  if rec.Code != http.StatusBadRequest {
    t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
  }
  if body["error"] != "Note text is required" {
    t.Fatalf("unexpected error message: %v", body["error"])
  }
}

func TestUpdateNoteEmptyTextLeavesRowUnchanged(t *testing.T) {
  router := newNotesRouter(t)

  rec, created := doJSON(t, router, http.MethodPost, "/api/notes", map[string]any{
    "noteText": "original",
  })
  if rec.Code != http.StatusOK {
    t.Fatalf("create returned %d", rec.Code)
  }
  id := created["note"].(map[string]any)["id"].(float64)
  path := fmt.Sprintf("/api/notes/%.0f", id)

  rec, _ = doJSON(t, router, http.MethodPut, path, map[string]any{"noteText": ""})
  if rec.Code != http.StatusBadRequest {
    t.Fatalf("expected 400 on empty update, got %d", rec.Code)
  }

  rec, fetched := doJSON(t, router, http.MethodGet, path, nil)
  if rec.Code != http.StatusOK {
    t.Fatalf("get returned %d", rec.Code)
  }
  if fetched["note"].(map[string]any)["note_text"] != "original" {
    t.Fatalf("rejected update must not modify the row")
  }
}

func TestUpdateNote(t *testing.T) {
  router := newNotesRouter(t)

  _, created := doJSON(t, router, http.MethodPost, "/api/notes", map[string]any{
    "noteText": "before",
  })
  id := created["note"].(map[string]any)["id"].(float64)

  rec, updated := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/notes/%.0f", id), map[string]any{
    "noteText":   "after",
    "moodAtTime": "energized",
  })
  if rec.Code != http.StatusOK {
    t.Fatalf("update returned %d: %s", rec.Code, rec.Body.String())
  }
  note := updated["note"].(map[string]any)
  if note["note_text"] != "after" || note["mood_at_time"] != "energized" {
    t.Fatalf("unexpected updated note: %v", note)
  }
}

func TestNoteNotFoundResponses(t *testing.T) {
  router := newNotesRouter(t)

  for _, tc := range []struct {
    method string
    path   string
    body   any
  }{
    {http.MethodGet, "/api/notes/12345", nil},
    {http.MethodPut, "/api/notes/12345", map[string]any{"noteText": "x"}},
    {http.MethodDelete, "/api/notes/12345", nil},
    {http.MethodGet, "/api/notes/not-a-number", nil},
  } {
    rec, body := doJSON(t, router, tc.method, tc.path, tc.body)
    if rec.Code != http.StatusNotFound {
      t.Fatalf("%s %s: expected 404, got %d", tc.method, tc.path, rec.Code)
    }
    if body["error"] != "Note not found" {
      t.Fatalf("%s %s: unexpected error message: %v", tc.method, tc.path, body["error"])
    }
  }
}

func TestListAndDeleteAllNotes(t *testing.T) {
  router := newNotesRouter(t)

  for _, text := range []string{"one", "two", "three"} {
    rec, _ := doJSON(t, router, http.MethodPost, "/api/notes", map[string]any{"noteText": text})
    if rec.Code != http.StatusOK {
      t.Fatalf("create %q returned %d", text, rec.Code)
    }
  }

  rec, listed := doJSON(t, router, http.MethodGet, "/api/notes", nil)
  if rec.Code != http.StatusOK {
    t.Fatalf("list returned %d", rec.Code)
  }
  if listed["count"].(float64) != 3 {
    t.Fatalf("expected count 3, got %v", listed["count"])
  }

  rec, deleted := doJSON(t, router, http.MethodDelete, "/api/notes", nil)
  if rec.Code != http.StatusOK {
    t.Fatalf("delete all returned %d", rec.Code)
  }
  if deleted["deletedCount"].(float64) != 3 {
    t.Fatalf("expected 3 deleted, got %v", deleted["deletedCount"])
  }
  if deleted["message"] != "All notes deleted successfully" {
    t.Fatalf("unexpected message: %v", deleted["message"])
  }

  rec, listed = doJSON(t, router, http.MethodGet, "/api/notes", nil)
  if rec.Code != http.StatusOK {
    t.Fatalf("list returned %d", rec.Code)
  }
  if listed["count"].(float64) != 0 {
    t.Fatalf("expected empty list after delete all, got %v", listed["count"])
  }
}
