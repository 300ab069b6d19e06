package app

import (
	"database/sql"
	"path/filepath"

	"go-timeclock/internal/auth"
	"go-timeclock/internal/bootstrap"
	"go-timeclock/internal/employee"
	"go-timeclock/internal/messaging/kafka"
	"go-timeclock/internal/punch"
	"go-timeclock/internal/rbac"
	"go-timeclock/internal/summary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	punchRepo := punch.NewRepository(gormDB)
	summaryRepo := summary.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer(
		filepath.Join("internal", "rbac", "model.conf"),
		filepath.Join("internal", "rbac", "policy.csv"),
	)
	if err != nil {
		return err
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()

	// --- Services ---
	authService := auth.NewService(employeeRepo, auditLogger)
	employeeService := employee.NewService(employeeRepo)
	punchService := punch.NewService(db, punchRepo, outboxRepo, auditLogger)
	summaryService := summary.NewService(db, summaryRepo, punchRepo, employeeRepo, outboxRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	punchHandler := punch.NewHandlerWithRedis(punchService, rdb)
	summaryHandler := summary.NewHandler(summaryService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, enforcer)
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		punch.RegisterRoutes(api, punchHandler, enforcer, rdb)
		summary.RegisterRoutes(api, summaryHandler, enforcer)
	}

	return nil
}
