package controllers

import (
	"github.com/gofiber/fiber/v2"

	"studypal_server/src/lib"
	"studypal_server/src/models"
	"studypal_server/src/services"
)

// TestimonialController handles the pass-through testimonial endpoints.
type TestimonialController struct {
	Service *services.TestimonialService
}

func NewTestimonialController(service *services.TestimonialService) *TestimonialController {
	return &TestimonialController{Service: service}
}

func (ctl *TestimonialController) CreateTestimonial(c *fiber.Ctx) error {
	var t models.Testimonial
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err))
	}

	id, err := ctl.Service.Insert(c.Context(), t)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Testimonial saved successfully",
		"testimonialId": id.Hex(),
	})
}

func (ctl *TestimonialController) ListTestimonials(c *fiber.Ctx) error {
	testimonials, err := ctl.Service.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(err))
	}
	return c.JSON(testimonials)
}
