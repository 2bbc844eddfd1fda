package routes

import (
	"github.com/gofiber/fiber/v2"

	"studypal_server/src/controllers"
)

// PartnerRoutes sets up the partner directory endpoints and the matching
// workflow endpoint nested under a partner id.
func PartnerRoutes(app *fiber.App, partners *controllers.PartnerController, match *controllers.MatchController) {
	group := app.Group("/partners")

	group.Post("/", partners.CreatePartner)
	group.Get("/", partners.ListPartners)
	group.Get("/:id", partners.GetPartner)
	group.Post("/:id/request", match.SubmitRequest)
}
