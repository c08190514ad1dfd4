package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/api"
	"github.com/Anirudh646/dfghjkddfghj/config"
	"github.com/Anirudh646/dfghjkddfghj/database"
	"github.com/Anirudh646/dfghjkddfghj/handlers"
	"github.com/Anirudh646/dfghjkddfghj/router"
	"github.com/Anirudh646/dfghjkddfghj/services"
	"github.com/Anirudh646/dfghjkddfghj/services/college"
	"github.com/Anirudh646/dfghjkddfghj/services/counselor"
	"github.com/Anirudh646/dfghjkddfghj/services/cron"
	"github.com/Anirudh646/dfghjkddfghj/services/events"
	"github.com/Anirudh646/dfghjkddfghj/services/knowledge"
	"github.com/Anirudh646/dfghjkddfghj/services/lead"
	"github.com/Anirudh646/dfghjkddfghj/utils"
	"github.com/Anirudh646/dfghjkddfghj/utils/auth"
	"github.com/Anirudh646/dfghjkddfghj/utils/cache"
	"github.com/Anirudh646/dfghjkddfghj/utils/middleware"
	"go.uber.org/zap"
)

// EventsChannel is the Redis pub/sub channel background failures are bridged to
const EventsChannel = "admissions:events"

func SetupAndRunServer() error {
	// Load ENV; a missing .env in development is not fatal
	envErr := config.LoadENV()

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(getEnv.IsProduction())
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	if envErr != nil {
		zap.S().Warnw(".env not loaded", "error", envErr)
	}
	if getEnv.JWT_SECRET == "" {
		return errors.New("JWT_SECRET environment variable is not set")
	}

	ctx := context.Background()

	// Initialize GORM database connection
	store, err := database.StartGORM(getEnv)
	if err != nil {
		zap.S().Error("check whether Postgres is running (make docker-up or make db-up)")
		return err
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		return err
	}
	db := store.GetDB()

	if getEnv.ADMIN_EMAIL != "" {
		if _, err := database.NewSeeder(db).SeedAdminUser(getEnv.ADMIN_EMAIL, getEnv.ADMIN_PASSWORD); err != nil {
			zap.S().Warnw("admin user not seeded", "error", err)
		}
	}

	// Redis backs sessions, sign-in lockouts and the event bridge; all of them degrade without it
	var redisCache *cache.RedisCache
	if getEnv.REDIS_URL != "" {
		redisCache, err = cache.NewRedisCache(cache.Options{
			URL:      getEnv.REDIS_URL,
			Password: getEnv.REDIS_PASSWORD,
			DB:       getEnv.REDIS_DB,
		})
		if err != nil {
			zap.S().Warnw("Redis unavailable; brute force protection disabled", "error", err)
			redisCache = nil
		} else {
			defer redisCache.Close()
		}
	}

	emitter := events.NewEmitter()
	emitter.On(events.Wildcard, events.LogHandler)
	if redisCache != nil {
		emitter.On(events.Wildcard, events.RedisBridge(redisCache, EventsChannel))
	}

	kb, err := knowledge.Load(getEnv.KNOWLEDGE_BASE_PATH)
	if err != nil {
		return fmt.Errorf("failed to load knowledge base: %w", err)
	}

	generator := newGenerator(ctx, getEnv)
	zap.S().Infow("model provider selected", "provider", generator.Name())

	leadStore, closeLeads, err := newLeadStore(ctx, getEnv, db)
	if err != nil {
		return err
	}
	defer closeLeads()

	leadService := lead.NewService(leadStore, emitter)
	defer leadService.Wait()

	sessions := newSessionStore(redisCache, getEnv.SessionTTL())
	counselorService := counselor.New(kb, generator, getEnv.LLMTimeout())
	chatService := counselor.NewChatService(counselorService, sessions, leadService)

	var essayStorage services.FileStorage
	if spaces := newSpaces(getEnv); spaces != nil {
		essayStorage = spaces
	}
	essayService := services.NewEssayService(db, generator, getEnv.LLMTimeout(), essayStorage)
	notificationService := services.NewNotificationService(db)
	dispatcher := services.NewNotificationDispatcher(notificationService, services.NewEmailService(), emitter)

	var bruteForce *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForce = middleware.NewBruteForceProtection(redisCache)
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	if getEnv.CRON_ENABLED {
		cronManager := cron.NewCronManager(db,
			cron.DispatchNotificationsJob(dispatcher),
			cron.CleanupNotificationsJob(notificationService),
			cron.CleanupTokenBlacklistJob(auth.NewBlacklistService(db)),
			cron.PruneSessionsJob(sessions),
		)
		if err := cronManager.Start(); err != nil {
			// Don't fail the app, just log the warning
			zap.S().Warnw("failed to start cron jobs", "error", err)
		} else {
			defer cronManager.Stop()
		}
	}

	checks := map[string]handlers.Check{
		"postgres": func(context.Context) error { return store.HealthCheck() },
		"leads":    leadService.Ping,
	}
	if redisCache != nil {
		checks["redis"] = redisCache.Ping
	}

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	router.SetupRoutes(server.GetEngine(), router.Deps{
		DB: db,
		JWT: auth.NewJWTManager(auth.JWTConfig{
			Secret:        getEnv.JWT_SECRET,
			Expiry:        24 * time.Hour,
			RefreshExpiry: 7 * 24 * time.Hour,
			Issuer:        getEnv.JWT_ISSUER,
		}),
		BruteForce:     bruteForce,
		Knowledge:      kb,
		Counselor:      counselorService,
		Chat:           chatService,
		Leads:          leadService,
		Colleges:       college.NewService(db, college.Catalog()),
		Essays:         essayService,
		Notifications:  notificationService,
		HealthChecks:   checks,
		AllowedOrigins: getEnv.Origins(),
		AccessLog:      true,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- server.Run() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		zap.S().Infow("shutting down", "signal", sig.String())
		return server.Shutdown(10 * time.Second)
	}
}
