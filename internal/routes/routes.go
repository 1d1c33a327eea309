package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haldenworks/contact-manager/internal/audit"
	"github.com/haldenworks/contact-manager/internal/auth"
	"github.com/haldenworks/contact-manager/internal/config"
	"github.com/haldenworks/contact-manager/internal/handlers"
	infraRepo "github.com/haldenworks/contact-manager/internal/infra/repository"
	"github.com/haldenworks/contact-manager/internal/middleware"
	"github.com/haldenworks/contact-manager/internal/revocation"
	"github.com/haldenworks/contact-manager/internal/storage"
	ucPerson "github.com/haldenworks/contact-manager/internal/usecase/person"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	personRepo := infraRepo.NewPersonGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	authService := auth.NewService(db, cfg)
	denylist := revocation.New(cfg.RedisURL)
	avatarStore := storage.NewAvatarStore(cfg)

	// ======================================================
	// USE CASES — PEOPLE
	// ======================================================
	createPersonUC := ucPerson.NewCreatePerson(personRepo, auditDispatcher)
	getPersonUC := ucPerson.NewGetPerson(personRepo)
	listPeopleUC := ucPerson.NewListPeople(personRepo)
	updatePersonUC := ucPerson.NewUpdatePerson(personRepo, auditDispatcher)
	deletePersonUC := ucPerson.NewDeletePerson(personRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authService, denylist, auditDispatcher)
	meHandler := handlers.NewMeHandler(db)

	personHandler := handlers.NewPersonHandler(
		createPersonUC,
		getPersonUC,
		listPeopleUC,
		updatePersonUC,
		deletePersonUC,
	)

	avatarHandler := handlers.NewAvatarHandler(db, avatarStore)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	appWebHandler := handlers.NewAppWebHandler()

	// ======================================================
	// WEB (HTML)
	// ======================================================
	web := r.Group("/web")
	{
		web.GET("/login", appWebHandler.LoginPage)
		web.GET("/people", appWebHandler.PeoplePage)
	}

	// ======================================================
	// AUTH
	// ======================================================
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/password-reset/request", authHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)

		authGroup.POST("/logout",
			middleware.AuthMiddleware(authService, denylist),
			authHandler.Logout,
		)
	}

	// ======================================================
	// PRIVATE API
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(authService, denylist))
	{
		secured.GET("/me", meHandler.GetMe)

		secured.GET("/people", personHandler.List)
		secured.POST("/people", personHandler.Create)
		secured.GET("/people/:id", personHandler.Get)
		secured.PATCH("/people/:id", personHandler.Update)
		secured.DELETE("/people/:id", personHandler.Delete)

		secured.POST("/people/:id/avatar", avatarHandler.Upload)

		secured.GET("/audit-logs", auditLogsHandler.List)
	}
}
