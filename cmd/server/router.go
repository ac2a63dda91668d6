package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pkawa95/studytask-api/internal/api"
	apiMiddleware "github.com/pkawa95/studytask-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordHasher,
	)
	subjectHandler := api.NewSubjectHandler(app.subjectService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	historyHandler := api.NewHistoryHandler(app.historyStore, app.logger)
	healthHandler := api.NewHealthHandler(version)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	// Public endpoints
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Get("/health", healthHandler.Health)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/whoami", authHandler.Whoami)
		r.Post("/logout", authHandler.Logout)

		r.Get("/subjects", subjectHandler.ListSubjects)
		r.Post("/subjects", subjectHandler.CreateSubject)
		r.Put("/subjects/{id}", subjectHandler.UpdateSubject)
		r.Delete("/subjects/{id}", subjectHandler.DeleteSubject)

		r.Get("/tasks", taskHandler.ListTasks)
		r.Get("/tasks/active", taskHandler.ListActiveTasks)
		r.Get("/tasks/completed", taskHandler.ListCompletedTasks)
		r.Post("/tasks", taskHandler.CreateTask)
		r.Put("/tasks/{id}", taskHandler.UpdateTask)
		r.Put("/tasks/{id}/done", taskHandler.MarkTaskDone)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)

		r.Get("/history", historyHandler.ListHistory)
	})

	return r
}
