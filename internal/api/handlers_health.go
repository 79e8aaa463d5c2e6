package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mindmentor/mindmentor/internal/db"
)

func (handler *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"name": "MindMentor API", "ok": true})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HealthDB reflects database reachability, not application correctness.
func (handler *Handler) HealthDB(c *fiber.Ctx) error {
	if err := db.Ping(handler.db); err != nil {
		return apiError(c, fiber.StatusServiceUnavailable, "database unreachable")
	}
	return c.JSON(fiber.Map{"ok": true})
}
