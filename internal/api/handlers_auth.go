package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mindmentor/mindmentor/internal/services"
)

const (
	loginAttemptsLimit  = 10
	loginAttemptsWindow = 15 * time.Minute
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(input.Email, input.DisplayName, input.Password)
	if err != nil {
		var validation *services.ValidationError
		if errors.As(err, &validation) {
			return apiError(c, fiber.StatusBadRequest, validation.Message)
		}
		if errors.Is(err, services.ErrDuplicateEmail) {
			return apiError(c, fiber.StatusBadRequest, "email already registered")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	return c.Status(fiber.StatusCreated).JSON(newUserOut(&user))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	now := time.Now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	token, err := handler.authService.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to log in")
	}

	handler.loginLimiter.reset(limiterKey)
	return c.JSON(tokenOut{AccessToken: token, TokenType: "bearer"})
}
