package router

import (
	"time"

	"github.com/Anirudh646/dfghjkddfghj/handlers"
	admin_handlers "github.com/Anirudh646/dfghjkddfghj/handlers/admin"
	auth_handlers "github.com/Anirudh646/dfghjkddfghj/handlers/auth"
	college_handlers "github.com/Anirudh646/dfghjkddfghj/handlers/college"
	counselor_handlers "github.com/Anirudh646/dfghjkddfghj/handlers/counselor"
	essay_handlers "github.com/Anirudh646/dfghjkddfghj/handlers/essay"
	lead_handlers "github.com/Anirudh646/dfghjkddfghj/handlers/lead"
	notification_handlers "github.com/Anirudh646/dfghjkddfghj/handlers/notification"
	"github.com/Anirudh646/dfghjkddfghj/services"
	"github.com/Anirudh646/dfghjkddfghj/services/college"
	"github.com/Anirudh646/dfghjkddfghj/services/counselor"
	"github.com/Anirudh646/dfghjkddfghj/services/knowledge"
	"github.com/Anirudh646/dfghjkddfghj/services/lead"
	"github.com/Anirudh646/dfghjkddfghj/utils/auth"
	"github.com/Anirudh646/dfghjkddfghj/utils/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Deps is everything the routes are built from
type Deps struct {
	DB             *gorm.DB
	JWT            *auth.JWTManager
	BruteForce     *middleware.BruteForceProtection // nil without Redis
	Knowledge      *knowledge.Base
	Counselor      *counselor.Counselor
	Chat           *counselor.ChatService
	Leads          *lead.Service
	Colleges       *college.Service
	Essays         *services.EssayService
	Notifications  *services.NotificationService
	HealthChecks   map[string]handlers.Check
	AllowedOrigins []string
	AccessLog      bool
}

func SetupRoutes(app *fiber.App, d Deps) {
	authMiddleware := middleware.NewAuthMiddleware(d.JWT, auth.NewBlacklistService(d.DB), middleware.GormUserLoader{DB: d.DB})

	authHandler := auth_handlers.NewAuthHandler(d.DB, d.JWT, d.BruteForce)
	counselorHandler := counselor_handlers.NewCounselorHandler(d.Counselor)
	chatHandler := counselor_handlers.NewChatHandler(d.Chat)
	catalogHandler := counselor_handlers.NewCatalogHandler(d.Knowledge)
	leadHandler := lead_handlers.NewLeadHandler(d.Leads)
	collegeHandler := college_handlers.NewCollegeHandler(d.Colleges)
	essayHandler := essay_handlers.NewEssayHandler(d.Essays)
	notificationHandler := notification_handlers.NewNotificationHandler(d.Notifications)
	healthHandler := handlers.NewHealthHandler(d.HealthChecks)
	auditHandler := admin_handlers.NewAuditHandler(d.DB)

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    d.AllowedOrigins,
		RateLimitRequests: 100,
		RateLimitWindow:   1 * time.Minute,
		AccessLog:         d.AccessLog,
	})

	// Probes
	app.Get("/health", healthHandler.Live)
	app.Get("/health/ready", healthHandler.Ready)

	api := app.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	if d.BruteForce != nil {
		authGroup.Post("/login", d.BruteForce.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)
	authGroup.Post("/logout-all", authMiddleware.Required(), authHandler.LogoutAll)
	authGroup.Get("/profile", authMiddleware.Required(), authHandler.GetProfile)
	authGroup.Put("/profile", authMiddleware.Required(), authHandler.UpdateProfile)

	// ==================== Counselor (public) ====================

	modelLimit := middleware.RateLimit(20, time.Minute, "Too many questions. Please wait a moment and try again.")

	counselorGroup := api.Group("/counselor", modelLimit)
	counselorGroup.Post("/ask", counselorHandler.Ask)
	counselorGroup.Post("/get-started", counselorHandler.GetStarted)
	counselorGroup.Get("/courses/:id/summary", counselorHandler.CourseSummary)

	chat := api.Group("/chat/sessions")
	chat.Post("/", chatHandler.Start)
	chat.Get("/:id", chatHandler.Get)
	chat.Post("/:id/messages", modelLimit, chatHandler.Submit)
	chat.Post("/:id/select", modelLimit, chatHandler.Select)
	chat.Post("/:id/lead", modelLimit, chatHandler.CaptureLead)

	api.Post("/leads", leadHandler.Submit)

	catalog := api.Group("/catalog")
	catalog.Get("/courses", catalogHandler.ListCourses)
	catalog.Get("/courses/:id", catalogHandler.GetCourse)
	catalog.Get("/contacts", catalogHandler.ListContacts)
	catalog.Get("/faqs", catalogHandler.ListFaqs)
	catalog.Get("/info", catalogHandler.GeneralInfo)

	// ==================== Student dashboard ====================

	essays := api.Group("/essays", authMiddleware.Required())
	essays.Get("/", essayHandler.List)
	essays.Post("/", essayHandler.Create)
	essays.Get("/stats", essayHandler.Stats)
	essays.Post("/import", essayHandler.Import)
	essays.Get("/:id", essayHandler.Get)
	essays.Put("/:id", essayHandler.Update)
	essays.Delete("/:id", essayHandler.Delete)
	essays.Post("/:id/review", essayHandler.Review)
	essays.Get("/:id/analytics", essayHandler.Analytics)

	colleges := api.Group("/colleges", authMiddleware.Required())
	colleges.Get("/", collegeHandler.List)
	colleges.Get("/saved", collegeHandler.Saved)
	colleges.Get("/:id", collegeHandler.Get)
	colleges.Post("/:id/save", collegeHandler.Save)
	colleges.Delete("/:id/save", collegeHandler.Unsave)

	notifications := api.Group("/notifications", authMiddleware.Required())
	notifications.Get("/", notificationHandler.GetNotifications)
	notifications.Get("/unread-count", notificationHandler.GetUnreadCount)
	notifications.Put("/read-all", notificationHandler.MarkAllAsRead)
	notifications.Put("/:id/read", notificationHandler.MarkAsRead)
	notifications.Put("/:id/unread", notificationHandler.MarkAsUnread)
	notifications.Put("/:id/archive", notificationHandler.Archive)
	notifications.Delete("/:id", notificationHandler.DeleteNotification)

	// ==================== Admin ====================

	admin := api.Group("/admin", authMiddleware.RequireAdmin())
	admin.Get("/leads", leadHandler.List)
	admin.Delete("/leads/:id", middleware.AdminAudit(d.DB, "lead_delete", "leads"), leadHandler.Delete)
	admin.Post("/leads/batch-delete", middleware.AdminAudit(d.DB, "lead_batch_delete", "leads"), leadHandler.BatchDelete)
	admin.Post("/notifications", middleware.AdminAudit(d.DB, "notification_create", "notifications"), notificationHandler.Create)
	admin.Post("/notifications/bulk", middleware.AdminAudit(d.DB, "notification_bulk_create", "notifications"), notificationHandler.CreateBulk)
	admin.Get("/audit-logs", auditHandler.ListAuditLogs)
	admin.Get("/audit-logs/:id", auditHandler.GetAuditLog)
}
