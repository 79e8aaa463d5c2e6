package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Root)

	health := app.Group("/health")
	health.Get("", handler.Health)
	health.Get("/db", handler.HealthDB)

	auth := app.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	journals := app.Group("/journals", handler.AuthRequired)
	journals.Post("", handler.CreateJournal)
	journals.Get("", handler.ListJournals)
	journals.Delete("/:id", handler.DeleteJournal)

	users := app.Group("/users", handler.AuthRequired)
	users.Get("/me", handler.CurrentUser)
	users.Delete("/me", handler.DeleteAccount)
}
