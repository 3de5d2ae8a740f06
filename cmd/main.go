package main

import (
  "context"
  "errors"
  "fmt"
  "net/http"
  "os"
  "os/signal"
  "syscall"

  "github.com/yungbote/moodstream-backend/internal/config"
  "github.com/yungbote/moodstream-backend/internal/db"
  "github.com/yungbote/moodstream-backend/internal/handlers"
  "github.com/yungbote/moodstream-backend/internal/logger"
  "github.com/yungbote/moodstream-backend/internal/middleware"
  "github.com/yungbote/moodstream-backend/internal/observability"
  "github.com/yungbote/moodstream-backend/internal/repos"
  "github.com/yungbote/moodstream-backend/internal/server"
  "github.com/yungbote/moodstream-backend/internal/services"
  "github.com/yungbote/moodstream-backend/internal/utils"
)

func main() {
  // Logger
  logMode := utils.GetEnv("LOG_MODE", "development", nil)
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Config
  log.Info("Loading configuration from main...")
  cfg, err := config.Load()
  if err != nil {
    log.Error("Failed to load config", "error", err)
    os.Exit(1)
  }

  // Tracing
  otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: "moodstream-backend",
    Environment: cfg.Env,
  })

  // Postgres
  postgresService, err := db.NewPostgresService(cfg.Postgres, log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  userNoteRepo := repos.NewUserNoteRepo(thePG, log)

  // Provider clients
  log.Info("Setting up provider clients from main...")
  searchClient, err := services.NewSearchClient(cfg.Providers.Search, log)
  if err != nil {
    log.Error("Could not init SearchClient", "error", err)
    os.Exit(1)
  }
  conversationClient, err := services.NewChatClient("conversation", cfg.Providers.Conversation, log)
  if err != nil {
    log.Error("Could not init conversation ChatClient", "error", err)
    os.Exit(1)
  }
  reflectionClient, err := services.NewChatClient("reflection", cfg.Providers.Reflection, log)
  if err != nil {
    log.Error("Could not init reflection ChatClient", "error", err)
    os.Exit(1)
  }
  quipClient, err := services.NewChatClient("quip", cfg.Providers.Quip, log)
  if err != nil {
    log.Error("Could not init quip ChatClient", "error", err)
    os.Exit(1)
  }
  reasoningClient, err := services.NewChatClient("reasoning", cfg.Providers.Reasoning, log)
  if err != nil {
    log.Error("Could not init reasoning ChatClient", "error", err)
    os.Exit(1)
  }
  imageClient, err := services.NewImageClient(cfg.Providers.Image, log)
  if err != nil {
    log.Error("Could not init ImageClient", "error", err)
    os.Exit(1)
  }

  // Services
  log.Info("Setting up Services from main...")
  contentService := services.NewContentService(log, searchClient, conversationClient, reflectionClient, quipClient, imageClient, services.NewRand())
  insightsService := services.NewInsightsService(log, reasoningClient, quipClient, conversationClient)
  noteService := services.NewNoteService(thePG, log, userNoteRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  contentHandler := handlers.NewContentHandler(log, contentService)
  insightsHandler := handlers.NewInsightsHandler(log, insightsService)
  noteHandler := handlers.NewNoteHandler(log, noteService)

  // Middleware
  log.Info("Setting up middleware from main...")
  identityMiddleware := middleware.NewIdentityMiddleware(log, cfg.Auth.TokenSecret)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AllowOrigins:       cfg.HTTP.AllowOrigins,
    IdentityMiddleware: identityMiddleware,
    ContentHandler:     contentHandler,
    InsightsHandler:    insightsHandler,
    NoteHandler:        noteHandler,
  })

  httpServer := &http.Server{
    Addr:    cfg.HTTP.Addr,
    Handler: router,
  }

  go func() {
    fmt.Printf("Server listening on %s\n", cfg.HTTP.Addr)
    if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
      log.Error("Server failed", "error", err)
      os.Exit(1)
    }
  }()

  stop := make(chan os.Signal, 1)
  signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
  <-stop

  log.Info("Shutting down...")
  shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout.Duration)
  defer cancel()
  if err := httpServer.Shutdown(shutdownCtx); err != nil {
    log.Warn("Server shutdown failed", "error", err)
  }
  if otelShutdown != nil {
    if err := otelShutdown(shutdownCtx); err != nil {
      log.Warn("Otel shutdown failed", "error", err)
    }
  }
}
