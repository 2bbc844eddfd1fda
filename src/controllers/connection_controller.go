package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studypal_server/src/lib"
	"studypal_server/src/services"
)

// ConnectionController lets a requester manage their outgoing connection
// requests: list by sender email, partial update, delete.
type ConnectionController struct {
	Service *services.RequestService
}

func NewConnectionController(service *services.RequestService) *ConnectionController {
	return &ConnectionController{Service: service}
}

// MyConnections returns every request sent by the email in the path.
func (ctl *ConnectionController) MyConnections(c *fiber.Ctx) error {
	requests, err := ctl.Service.ListBySender(c.Context(), c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(err))
	}
	return c.JSON(requests)
}

// UpdateConnection overwrites the fields present in the body on the request
// with the id in the path and returns the updated document.
func (ctl *ConnectionController) UpdateConnection(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err))
	}

	updated, err := ctl.Service.Update(c.Context(), c.Params("id"), fields)
	if errors.Is(err, services.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err))
	}
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse(err))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(err))
	}
	return c.JSON(updated)
}

// DeleteConnection removes the request with the id in the path and reports
// how many documents were removed.
func (ctl *ConnectionController) DeleteConnection(c *fiber.Ctx) error {
	count, err := ctl.Service.Delete(c.Context(), c.Params("id"))
	if errors.Is(err, services.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(err))
	}

	return c.JSON(fiber.Map{
		"message":      "Connection request deleted",
		"deletedCount": count,
	})
}
