package router

import (
	"github.com/edulab/elearning-api/internal/application"
	"github.com/edulab/elearning-api/internal/container"
	pginfra "github.com/edulab/elearning-api/internal/infrastructure/postgres"
	handlers "github.com/edulab/elearning-api/internal/interface/http"
	"github.com/edulab/elearning-api/internal/router/modules"
)

// InitModules builds the repositories, services and handlers from the
// container singletons and registers every feature module.
// This function should be called once during application startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(pool)
	courses := pginfra.NewCourseRepository(pool)
	mods := pginfra.NewModuleRepository(pool)
	quizzes := pginfra.NewQuizRepository(pool)

	authSvc := application.NewAuthService(users, jwt, logger)
	catalogSvc := application.NewCatalogService(courses, mods, quizzes, users, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))
	r.Add(modules.NewCourseModule(handlers.NewCourseHandler(catalogSvc, logger), jwt))
	r.Add(modules.NewContentModule(
		handlers.NewModuleHandler(catalogSvc, logger),
		handlers.NewQuizHandler(catalogSvc, logger),
		jwt,
	))

	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
