package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studypal_server/src/lib"
	"studypal_server/src/services"
)

// PartnerController handles requests related to partner profiles.
type PartnerController struct {
	Service *services.PartnerService
}

func NewPartnerController(service *services.PartnerService) *PartnerController {
	return &PartnerController{Service: service}
}

// CreatePartner stores a new partner profile and returns its id.
func (ctl *PartnerController) CreatePartner(c *fiber.Ctx) error {
	var profile map[string]interface{}
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err))
	}
	if profile == nil {
		profile = map[string]interface{}{}
	}

	id, err := ctl.Service.Create(c.Context(), profile)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Partner created successfully",
		"partnerId": id.Hex(),
	})
}

// ListPartners returns all partner profiles, optionally filtered by the
// search query and ordered by the sort query.
func (ctl *PartnerController) ListPartners(c *fiber.Ctx) error {
	partners, err := ctl.Service.List(c.Context(), c.Query("search"), c.Query("sort"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(err))
	}
	return c.JSON(partners)
}

// GetPartner returns a single partner profile by id.
func (ctl *PartnerController) GetPartner(c *fiber.Ctx) error {
	partner, err := ctl.Service.GetByID(c.Context(), c.Params("id"))
	if errors.Is(err, services.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err))
	}
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(lib.ErrorResponse(err))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(err))
	}
	return c.JSON(partner)
}
