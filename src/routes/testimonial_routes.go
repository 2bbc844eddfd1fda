package routes

import (
	"github.com/gofiber/fiber/v2"

	"studypal_server/src/controllers"
)

func TestimonialRoutes(app *fiber.App, testimonials *controllers.TestimonialController) {
	group := app.Group("/testimonials")

	group.Post("/", testimonials.CreateTestimonial)
	group.Get("/", testimonials.ListTestimonials)
}
