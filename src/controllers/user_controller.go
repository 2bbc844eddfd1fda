package controllers

import (
	"github.com/gofiber/fiber/v2"

	"studypal_server/src/lib"
	"studypal_server/src/models"
	"studypal_server/src/services"
)

// UserController handles the pass-through user endpoints.
type UserController struct {
	Service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{Service: service}
}

func (ctl *UserController) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.ErrorResponse(err))
	}

	id, err := ctl.Service.Insert(c.Context(), user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"userId":  id.Hex(),
	})
}

func (ctl *UserController) ListUsers(c *fiber.Ctx) error {
	users, err := ctl.Service.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(lib.ErrorResponse(err))
	}
	return c.JSON(users)
}
