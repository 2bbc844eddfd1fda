package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studypal_server/src/lib"
	"studypal_server/src/models"
	"studypal_server/src/services"
)

// MatchController handles the matching workflow endpoint.
type MatchController struct {
	Service *services.MatchService
}

func NewMatchController(service *services.MatchService) *MatchController {
	return &MatchController{Service: service}
}

// SubmitRequest records a connection request against the partner in the
// path and returns the created request.
func (ctl *MatchController) SubmitRequest(c *fiber.Ctx) error {
	var payload models.ConnectionRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err))
	}

	created, err := ctl.Service.SubmitRequest(c.Context(), c.Params("id"), payload)
	if errors.Is(err, services.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(err))
	}

	return c.JSON(fiber.Map{
		"message": "Connection request sent successfully",
		"data":    created,
	})
}
