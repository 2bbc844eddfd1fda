package routes

import (
	"github.com/gofiber/fiber/v2"

	"studypal_server/src/controllers"
)

func UserRoutes(app *fiber.App, users *controllers.UserController) {
	group := app.Group("/users")

	group.Post("/", users.CreateUser)
	group.Get("/", users.ListUsers)
}
