package v1

import (
	"log"

	"campus-placement/internal/config"
	"campus-placement/internal/database"
	"campus-placement/internal/delivery/http/handler"
	"campus-placement/internal/delivery/http/middleware"
	"campus-placement/internal/pkg/jwt"
	"campus-placement/internal/repository"
	"campus-placement/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires the v1 API surface. Routes are grouped by role: students reach
// the catalog and their own profile and applications, department staff reach
// their USN partition, companies reach their own postings.
func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.Cache, notifier usecase.DashboardNotifier, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	accountRepo := repository.NewPostgresAccountRepository(db)
	studentRepo := repository.NewPostgresStudentRepository(db)
	postingRepo := repository.NewPostgresPostingRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)

	authUC := usecase.NewAuthUsecase(accountRepo, jwtSvc)
	catalogUC := usecase.NewCatalogUsecase(postingRepo, studentRepo, cache, logger)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, postingRepo, cache, notifier)
	profileUC := usecase.NewProfileUsecase(studentRepo)
	departmentUC := usecase.NewDepartmentUsecase(studentRepo)
	approvalUC := usecase.NewApprovalUsecase(studentRepo, cache, notifier)
	dashboardUC := usecase.NewDashboardUsecase(studentRepo, postingRepo, cache, logger)
	postingUC := usecase.NewPostingUsecase(postingRepo, cache)

	authHandler := handler.NewAuthHandler(authUC)
	catalogHandler := handler.NewCatalogHandler(catalogUC, applicationUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	departmentHandler := handler.NewDepartmentHandler(departmentUC, approvalUC, dashboardUC)
	companyHandler := handler.NewCompanyHandler(postingUC, applicationUC, dashboardUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	studentGroup := protected.Group("", middleware.RequireRole(repository.RoleStudent))
	catalogHandler.RegisterRoutes(studentGroup)
	applicationHandler.RegisterRoutes(studentGroup)
	profileHandler.RegisterRoutes(studentGroup)

	departmentGroup := protected.Group("/department", middleware.RequireRole(repository.RoleDepartment))
	departmentHandler.RegisterRoutes(departmentGroup)

	companyGroup := protected.Group("/company", middleware.RequireRole(repository.RoleCompany))
	companyHandler.RegisterRoutes(companyGroup)
}
