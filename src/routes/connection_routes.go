package routes

import (
	"github.com/gofiber/fiber/v2"

	"studypal_server/src/controllers"
)

// ConnectionRoutes sets up the endpoints a requester uses to manage their
// outgoing connection requests.
func ConnectionRoutes(app *fiber.App, connections *controllers.ConnectionController) {
	app.Get("/my-connections/:email", connections.MyConnections)

	group := app.Group("/connections")
	group.Put("/:id", connections.UpdateConnection)
	group.Delete("/:id", connections.DeleteConnection)
}
