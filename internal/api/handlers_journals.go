package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mindmentor/mindmentor/internal/services"
)

func (handler *Handler) CreateJournal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := journalInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.journalService.Create(user.ID, input.Content, input.Mood, input.Tags)
	if err != nil {
		var validation *services.ValidationError
		if errors.As(err, &validation) {
			return apiError(c, fiber.StatusBadRequest, validation.Message)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create journal")
	}

	return c.Status(fiber.StatusCreated).JSON(newJournalOut(entry))
}

func (handler *Handler) ListJournals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)

	entries, err := handler.journalService.List(user.ID, limit, offset)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list journals")
	}

	out := make([]journalOut, 0, len(entries))
	for _, entry := range entries {
		out = append(out, newJournalOut(entry))
	}
	return c.JSON(out)
}

func (handler *Handler) DeleteJournal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	journalID := strings.TrimSpace(c.Params("id"))
	if journalID == "" {
		return apiError(c, fiber.StatusNotFound, "journal not found")
	}

	if err := handler.journalService.Delete(user.ID, journalID); err != nil {
		if errors.Is(err, services.ErrJournalNotFound) {
			return apiError(c, fiber.StatusNotFound, "journal not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete journal")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
